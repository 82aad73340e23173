package cyclefind

import "github.com/katalvlaran/rainflow/residue"

// Cycle is a closed rainflow cycle: the inner pair From/To plus the
// point following them in the stream, needed by damage spreading (C10)
// to locate the window it acts over.
type Cycle struct {
	From, To, Next residue.Point
}

// Method selects which closure strategy a Finder implements.
type Method int

const (
	FourPoint Method = iota
	HCM
)

// Finder consumes confirmed turning points from a residue buffer,
// emitting every cycle it can close and removing the points it
// consumes.
type Finder interface {
	Drain(buf *residue.Buffer) []Cycle
}

// New builds the Finder for method. eps is only used by HCM; pass the
// counting epsilon (class_width/100) there and ignore it for FourPoint.
func New(method Method, eps float64) (Finder, error) {
	switch method {
	case FourPoint:
		return &FourPointFinder{}, nil
	case HCM:
		return NewHCMStack(eps)
	default:
		return nil, ErrInvalidMethod
	}
}

// FourPointFinder implements the classical four-point method: it looks
// only at the residue's tail and is otherwise stateless.
type FourPointFinder struct{}

// Drain repeatedly tests the residue's last four points A,B,C,D: sort
// inner pair B,C and outer pair A,D by value; if the inner pair's range
// is nested inside the outer pair's, B-C closes as a cycle. The inner
// pair is removed and the test retried until it fails or fewer than
// four points remain.
func (*FourPointFinder) Drain(buf *residue.Buffer) []Cycle {
	var cycles []Cycle
	for buf.Len() >= 4 {
		n := buf.Len()
		a, _ := buf.At(n - 4)
		b, _ := buf.At(n - 3)
		c, _ := buf.At(n - 2)
		d, _ := buf.At(n - 1)

		bs, cs := minmax(b.Sample.Value, c.Sample.Value)
		as, ds := minmax(a.Sample.Value, d.Sample.Value)
		if as > bs || cs > ds {
			break
		}

		cycles = append(cycles, Cycle{From: b, To: c, Next: d})
		_ = buf.RemoveInner(n-3, n-2)
	}
	return cycles
}

func minmax(x, y float64) (lo, hi float64) {
	if x <= y {
		return x, y
	}
	return y, x
}
