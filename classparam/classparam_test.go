package classparam_test

import (
	"testing"

	"github.com/katalvlaran/rainflow/classparam"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		p       classparam.Params
		wantErr error
	}{
		{"ok", classparam.Params{Count: 6, Width: 1, Offset: 0}, nil},
		{"zero count disables quantization", classparam.Params{Count: 0, Width: 1}, nil},
		{"negative count", classparam.Params{Count: -1, Width: 1}, classparam.ErrNegativeCount},
		{"too many classes", classparam.Params{Count: 513, Width: 1}, classparam.ErrTooManyClasses},
		{"zero width", classparam.Params{Count: 6, Width: 0}, classparam.ErrBadWidth},
		{"negative width", classparam.Params{Count: 6, Width: -1}, classparam.ErrBadWidth},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.p.Validate()
			if c.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.wantErr)
			}
		})
	}
}

func TestClassOf(t *testing.T) {
	p := classparam.Params{Count: 6, Width: 1, Offset: 0}

	class, ok := p.ClassOf(2.5)
	require.True(t, ok)
	require.Equal(t, 2, class)

	// Upper bound falls into the next class (floor semantics).
	class, ok = p.ClassOf(3.0)
	require.True(t, ok)
	require.Equal(t, 3, class)

	disabled := classparam.Params{Count: 0, Width: 1}
	_, ok = disabled.ClassOf(1.0)
	require.False(t, ok)
}

func TestMeanAndUpper(t *testing.T) {
	p := classparam.Params{Count: 6, Width: 1, Offset: 0}
	for c := 0; c < p.Count; c++ {
		require.InDelta(t, float64(c)+0.5, p.Mean(c), 1e-12)
		require.InDelta(t, float64(c+1), p.Upper(c), 1e-12)
		require.InDelta(t, float64(c), p.Lower(c), 1e-12)
	}
}

func TestClassClippedAndInRange(t *testing.T) {
	p := classparam.Params{Count: 6, Width: 1, Offset: 0}
	require.Equal(t, 0, p.ClassClipped(-5))
	require.Equal(t, 5, p.ClassClipped(99))
	require.True(t, p.InRange(0))
	require.True(t, p.InRange(5))
	require.False(t, p.InRange(6))
	require.False(t, p.InRange(-1))
}

func TestRange(t *testing.T) {
	p := classparam.Params{Count: 6, Width: 1, Offset: 0}
	require.InDelta(t, 6.0, p.Range(), 1e-12)
}
