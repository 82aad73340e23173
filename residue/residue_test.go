package residue_test

import (
	"testing"

	"github.com/katalvlaran/rainflow/hysteresis"
	"github.com/katalvlaran/rainflow/residue"
	"github.com/stretchr/testify/require"
)

func pt(v float64, pos int64) residue.Point {
	return residue.Point{Sample: hysteresis.Sample{Value: v, Pos: pos}}
}

func TestBufferPushAndTail(t *testing.T) {
	b := residue.NewBuffer(0)
	require.NoError(t, b.Push(pt(0, 1)))
	require.NoError(t, b.Push(pt(5, 2)))
	require.NoError(t, b.Push(pt(1, 3)))
	require.Equal(t, 3, b.Len())

	tail := b.Tail(2)
	require.Len(t, tail, 2)
	require.Equal(t, 5.0, tail[0].Sample.Value)
	require.Equal(t, 1.0, tail[1].Sample.Value)
}

func TestBufferCapacityEnforced(t *testing.T) {
	b := residue.NewBuffer(2)
	require.NoError(t, b.Push(pt(0, 1)))
	require.NoError(t, b.Push(pt(1, 2)))
	require.ErrorIs(t, b.Push(pt(2, 3)), residue.ErrBufferFull)
}

func TestBufferReplaceLast(t *testing.T) {
	b := residue.NewBuffer(0)
	require.NoError(t, b.Push(pt(0, 1)))
	require.NoError(t, b.Push(pt(5, 2)))
	require.NoError(t, b.ReplaceLast(pt(7, 3)))
	last, ok := b.Last()
	require.True(t, ok)
	require.Equal(t, 7.0, last.Sample.Value)
	require.Equal(t, 2, b.Len())
}

func TestBufferReplaceLastOnEmptyErrors(t *testing.T) {
	b := residue.NewBuffer(0)
	require.ErrorIs(t, b.ReplaceLast(pt(1, 1)), residue.ErrIndexOutOfRange)
}

func TestBufferRemoveInner(t *testing.T) {
	// Four-point pattern A,B,C,D: RemoveInner drops the inner pair B,C.
	b := residue.NewBuffer(0)
	require.NoError(t, b.Push(pt(0, 1))) // A
	require.NoError(t, b.Push(pt(5, 2))) // B
	require.NoError(t, b.Push(pt(1, 3))) // C
	require.NoError(t, b.Push(pt(4, 4))) // D

	require.NoError(t, b.RemoveInner(1, 2))
	require.Equal(t, 2, b.Len())
	a, _ := b.At(0)
	d, _ := b.At(1)
	require.Equal(t, 0.0, a.Sample.Value)
	require.Equal(t, 4.0, d.Sample.Value)
}

func TestBufferRemoveInnerRejectsBadIndices(t *testing.T) {
	b := residue.NewBuffer(0)
	require.NoError(t, b.Push(pt(0, 1)))
	require.ErrorIs(t, b.RemoveInner(0, 0), residue.ErrIndexOutOfRange)
	require.ErrorIs(t, b.RemoveInner(2, 3), residue.ErrIndexOutOfRange)
}

func TestBufferPopBackAndClear(t *testing.T) {
	b := residue.NewBuffer(0)
	require.NoError(t, b.Push(pt(0, 1)))
	require.NoError(t, b.Push(pt(5, 2)))
	p, ok := b.PopBack()
	require.True(t, ok)
	require.Equal(t, 5.0, p.Sample.Value)
	require.Equal(t, 1, b.Len())

	b.Clear()
	require.Equal(t, 0, b.Len())
	_, ok = b.PopBack()
	require.False(t, ok)
}

func TestBufferAppendAllRespectsCapacity(t *testing.T) {
	b := residue.NewBuffer(2)
	require.NoError(t, b.Push(pt(0, 1)))
	err := b.AppendAll([]residue.Point{pt(1, 2), pt(2, 3)})
	require.ErrorIs(t, err, residue.ErrBufferFull)
	require.Equal(t, 1, b.Len())
}
