package damagelut

import (
	"math"

	"github.com/katalvlaran/rainflow/classparam"
	"github.com/katalvlaran/rainflow/haigh"
	"github.com/katalvlaran/rainflow/wohler"
)

// Table holds precomputed damage (and, if amplitude transform is
// enabled, transformed amplitude) for every (from,to) class-index pair,
// row-major: index = from*N + to.
type Table struct {
	N                int
	Damage           []float64
	Amplitude        []float64
	TransformEnabled bool

	// Inapt counts outstanding reasons the table must not be trusted
	// (spec §4.4). Lookup returns ok=false while Inapt>0; callers must
	// fall through to wohler/haigh directly.
	Inapt int
}

// Build fills an N*N table from the class model, Wöhler curve and an
// optional amplitude transformer. Amplitude for a (from,to) pair is
// derived from the class means: half the class-mean range, at the
// class-mean midpoint; transformer, if non-nil, is applied before the
// Wöhler lookup.
func Build(params classparam.Params, curve *wohler.Curve, transformer *haigh.Transformer) (*Table, error) {
	if !params.Enabled() {
		return nil, ErrQuantizationDisabled
	}
	n := params.Count
	t := &Table{
		N:                n,
		Damage:           make([]float64, n*n),
		Amplitude:        make([]float64, n*n),
		TransformEnabled: transformer != nil,
	}
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			idx := from*n + to
			if from == to {
				continue
			}
			mFrom, mTo := params.Mean(from), params.Mean(to)
			sa := math.Abs(mTo-mFrom) / 2
			sm := (mTo + mFrom) / 2
			if transformer != nil {
				var err error
				sa, err = transformer.Transform(sa, sm)
				if err != nil {
					return nil, err
				}
			}
			t.Amplitude[idx] = sa
			d, err := curve.Damage(sa)
			if err != nil {
				return nil, err
			}
			t.Damage[idx] = d
		}
	}
	return t, nil
}

// Disable increments Inapt, marking the table untrustworthy until a
// matching Enable call. Safe to nest.
func (t *Table) Disable() { t.Inapt++ }

// Enable decrements Inapt, re-enabling the table once every outstanding
// Disable call has been matched.
func (t *Table) Enable() {
	if t.Inapt > 0 {
		t.Inapt--
	}
}

// Invalidate discards the table's contents; callers must Build again
// before Lookup can succeed. Used when class parameters or the Wöhler
// curve change after the table was built.
func (t *Table) Invalidate() {
	t.Damage = nil
	t.Amplitude = nil
	t.N = 0
}

// Lookup returns the precomputed damage and amplitude for (from,to).
// ok is false when the table is disabled (Inapt>0), invalidated, or
// indices are out of range — in every such case the caller must fall
// through to direct wohler/haigh computation.
func (t *Table) Lookup(from, to int) (damage, amplitude float64, ok bool) {
	if t.Inapt > 0 || t.N == 0 {
		return 0, 0, false
	}
	if from < 0 || from >= t.N || to < 0 || to >= t.N {
		return 0, 0, false
	}
	idx := from*t.N + to
	return t.Damage[idx], t.Amplitude[idx], true
}
