package cyclefind

import (
	"math"

	"github.com/katalvlaran/rainflow/residue"
)

// HCMStack implements the HCM (Clormann–Seeger) three-point method: an
// auxiliary stack of not-yet-closed turning points, consumed head-first
// from the residue one point at a time. eps absorbs quantization wobble
// around the two comparisons (typically class_width/100).
type HCMStack struct {
	eps   float64
	stack []residue.Point
	ir    int // 1-based index of the earliest point still eligible to close
}

// NewHCMStack builds an empty HCM stack with the given tolerance.
func NewHCMStack(eps float64) (*HCMStack, error) {
	if eps < 0 {
		return nil, ErrInvalidTolerance
	}
	return &HCMStack{eps: eps, ir: 1}, nil
}

// Drain pulls every point currently in buf (oldest first), pushes it
// onto the internal stack, and repeatedly tests the top three entries
// I,J,K: if K and J move the same way relative to J and I (product of
// differences non-negative within eps), J was never a turning point and
// is discarded; else if the K-J swing is at least the J-I swing less eps,
// I-J closes as a cycle and both leave the stack, K remains on top.
// Points still on the stack when buf runs dry stay there for the next
// Drain call (or, at finalize, are returned via Flush).
func (h *HCMStack) Drain(buf *residue.Buffer) []Cycle {
	var cycles []Cycle
	for {
		k, ok := buf.PopFront()
		if !ok {
			break
		}
		h.stack = append(h.stack, k)

		for len(h.stack) >= 3 {
			n := len(h.stack)
			i, j, kk := h.stack[n-3], h.stack[n-2], h.stack[n-1]
			dKJ := kk.Sample.Value - j.Sample.Value
			dJI := j.Sample.Value - i.Sample.Value

			if dKJ*dJI >= -h.eps {
				// j is not a genuine reversal; drop it and keep testing.
				h.stack = append(h.stack[:n-2], kk)
				if h.ir > n-1 {
					h.ir--
				}
				continue
			}
			if math.Abs(dKJ)+h.eps >= math.Abs(dJI) {
				cycles = append(cycles, Cycle{From: i, To: j, Next: kk})
				h.stack = append(h.stack[:n-3], kk)
				if h.ir > n-2 {
					h.ir -= 2
				}
				continue
			}
			break
		}
		if h.ir < 1 || h.ir > len(h.stack) {
			h.ir = 1
		}
	}
	return cycles
}

// Len reports how many points the stack currently holds unconsumed.
func (h *HCMStack) Len() int { return len(h.stack) }

// Flush empties the stack and returns its remaining points in stream
// order, for the caller to fold back into the residue at finalize time.
func (h *HCMStack) Flush() []residue.Point {
	out := h.stack
	h.stack = nil
	h.ir = 1
	return out
}
