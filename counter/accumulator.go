package counter

import (
	"math"

	"github.com/katalvlaran/rainflow/classparam"
	"github.com/katalvlaran/rainflow/cyclefind"
	"github.com/katalvlaran/rainflow/damagelut"
	"github.com/katalvlaran/rainflow/haigh"
	"github.com/katalvlaran/rainflow/wohler"
)

// RangePairDamageMethod selects how DamageFromRP interprets a range-pair
// histogram's entries against a Wöhler curve (spec §6).
type RangePairDamageMethod int

const (
	RPDefault RangePairDamageMethod = iota
	RPElementary
	RPModified
	RPConsequent
)

// Accumulator wires the class model, damage lookup table (or direct
// Wöhler/Haigh calls), and the three histograms together, turning each
// closed cyclefind.Cycle into counts and cumulative damage (spec §4.8).
type Accumulator struct {
	Params      classparam.Params
	Curve       *wohler.Curve
	Transformer *haigh.Transformer
	Table       *damagelut.Table

	Matrix *Matrix
	RP     *RangePair
	LC     *LevelCrossing

	Damage float64

	consequent bool
	dCon       float64
	impaired   *wohler.Curve
}

// Option configures an Accumulator at construction time.
type Option func(*Accumulator) error

// WithTable attaches a precomputed damage lookup table.
func WithTable(t *damagelut.Table) Option {
	return func(a *Accumulator) error {
		a.Table = t
		return nil
	}
}

// WithTransformer attaches a Haigh mean-stress transformer used for the
// direct (non-table) damage path.
func WithTransformer(tr *haigh.Transformer) Option {
	return func(a *Accumulator) error {
		a.Transformer = tr
		return nil
	}
}

// WithRangePair enables range-pair counting.
func WithRangePair() Option {
	return func(a *Accumulator) error {
		rp, err := NewRangePair(a.Params.Count)
		if err != nil {
			return err
		}
		a.RP = rp
		return nil
	}
}

// WithLevelCrossing enables level-crossing counting in the requested
// directions.
func WithLevelCrossing(up, down bool) Option {
	return func(a *Accumulator) error {
		lc, err := NewLevelCrossing(a.Params.Count, up, down)
		if err != nil {
			return err
		}
		a.LC = lc
		return nil
	}
}

// WithMinerConsequent enables the Miner-consequent endurance depression
// (spec §4.8): as damage accumulates, the parameters of a private copy
// of the curve (the impaired curve) shift to reflect an already-damaged
// specimen; the unimpaired Curve is left unchanged.
func WithMinerConsequent() Option {
	return func(a *Accumulator) error {
		a.consequent = true
		return nil
	}
}

// NewAccumulator builds an Accumulator over params and curve, applying
// opts in order.
func NewAccumulator(params classparam.Params, curve *wohler.Curve, opts ...Option) (*Accumulator, error) {
	if curve == nil {
		return nil, ErrNilCurve
	}
	if !params.Enabled() {
		return nil, ErrClassesDisabled
	}
	m, err := NewMatrix(params.Count)
	if err != nil {
		return nil, err
	}
	a := &Accumulator{Params: params, Curve: curve, Matrix: m}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.consequent {
		cp := *curve
		a.impaired = &cp
	}
	return a, nil
}

// amplitudeFor returns the damage and amplitude for a (from,to) class
// pair, preferring the lookup table and falling through to a direct
// wohler/haigh computation when it is disabled or absent. With
// Miner-consequent depression on, the table (built from the unimpaired
// curve) is bypassed and the impaired curve is evaluated directly.
func (a *Accumulator) amplitudeFor(from, to int) (damage, sa float64, err error) {
	if a.Table != nil && !a.consequent {
		if d, s, ok := a.Table.Lookup(from, to); ok {
			return d, s, nil
		}
	}
	mFrom, mTo := a.Params.Mean(from), a.Params.Mean(to)
	sa = math.Abs(mTo-mFrom) / 2
	sm := (mTo + mFrom) / 2
	if a.Transformer != nil {
		sa, err = a.Transformer.Transform(sa, sm)
		if err != nil {
			return 0, 0, err
		}
	}
	curve := a.Curve
	if a.consequent {
		curve = a.impaired
	}
	damage, err = curve.Damage(sa)
	if err != nil {
		return 0, 0, err
	}
	return damage, sa, nil
}

// DamageOf returns the damage and amplitude Count would attribute to
// cyc, without mutating any histogram or the cumulative Damage total.
// Used by the damage-spreading step (C10), which needs a cycle's
// damage share before deciding how to distribute it across turning
// points.
func (a *Accumulator) DamageOf(cyc cyclefind.Cycle) (damage, amplitude float64, err error) {
	cf, ct := cyc.From.Sample.Class, cyc.To.Sample.Class
	if cf == ct {
		return 0, 0, nil
	}
	return a.amplitudeFor(cf, ct)
}

// Count applies one closed cycle to the matrix, range-pair, level
// crossing and damage state (spec §4.8). cf==ct cycles (zero range) are
// skipped entirely.
func (a *Accumulator) Count(cyc cyclefind.Cycle, kind IncKind) error {
	cf, ct := cyc.From.Sample.Class, cyc.To.Sample.Class
	if cf == ct {
		return nil
	}

	inc := kind.Units()
	if err := a.Matrix.Add(cf, ct, inc); err != nil {
		return err
	}
	if a.RP != nil {
		r := ct - cf
		if r < 0 {
			r = -r
		}
		if err := a.RP.Add(r, inc); err != nil {
			return err
		}
	}
	if a.LC != nil {
		if err := a.LC.addCrossing(cf, ct, FullInc); err != nil {
			return err
		}
	}

	di, sai, err := a.amplitudeFor(cf, ct)
	if err != nil {
		return err
	}
	weight := float64(inc) / float64(FullInc)
	a.Damage += di * weight

	if a.consequent {
		if err := a.applyConsequent(di, sai, weight); err != nil {
			return err
		}
	}
	return nil
}

// applyConsequent implements the Miner-consequent endurance depression:
// once a cycle's amplitude reaches the impaired curve's endurance limit
// Sd, its damage share is folded into D_con and the impaired curve's
// Sx (and Nx, to keep it on the same log-log slope) is depressed. Sd
// itself is not depressed.
func (a *Accumulator) applyConsequent(di, sai, weight float64) error {
	if a.impaired.Sd > 0 && sai < a.impaired.Sd {
		return nil
	}
	a.dCon += di * weight
	if a.dCon >= 1 {
		a.dCon = 1
	}
	if a.impaired.Q <= 0 {
		return nil
	}
	newSx := a.impaired.Sx * math.Pow(1-a.dCon, 1/a.impaired.Q)
	if newSx <= 0 {
		return nil
	}
	a.impaired.Nx = a.impaired.Nx * math.Pow(a.impaired.Sx/newSx, math.Abs(a.impaired.K))
	a.impaired.Sx = newSx
	return nil
}

// DamageFromRFM recomputes total damage by walking every non-zero
// matrix cell through amplitudeFor (damage_from_rfm) — independent of
// the incremental Damage accumulated by Count, used to audit or
// recompute after a matrix was restored via Set/Poke.
func (a *Accumulator) DamageFromRFM() (float64, error) {
	var total float64
	for from := 0; from < a.Matrix.N; from++ {
		for to := 0; to < a.Matrix.N; to++ {
			c := a.Matrix.Cells[from*a.Matrix.N+to]
			if c == 0 || from == to {
				continue
			}
			di, _, err := a.amplitudeFor(from, to)
			if err != nil {
				return 0, err
			}
			total += di * float64(c) / float64(FullInc)
		}
	}
	return total, nil
}

// EffectiveCurve returns the curve Count is currently applying: the
// Miner-consequent impaired curve once WithMinerConsequent has started
// depressing it, otherwise the curve the Accumulator was built with.
func (a *Accumulator) EffectiveCurve() *wohler.Curve {
	if a.consequent {
		return a.impaired
	}
	return a.Curve
}

// DamageFromRP recomputes total damage from a range-pair histogram
// alone (damage_from_rp): each range r is treated as a cycle of
// amplitude r*Width/2 with no mean-stress information. method selects
// which Wöhler interpretation that amplitude is run through (spec §6).
func DamageFromRP(rp *RangePair, params classparam.Params, curve *wohler.Curve, method RangePairDamageMethod) (float64, error) {
	curve, err := curveForMethod(curve, method)
	if err != nil {
		return 0, err
	}
	var total float64
	for r, c := range rp.Cells {
		if c == 0 {
			continue
		}
		sa := float64(r) * params.Width / 2
		if sa <= 0 {
			continue
		}
		d, err := curve.Damage(sa)
		if err != nil {
			return 0, err
		}
		total += d * float64(c) / float64(FullInc)
	}
	return total, nil
}

// curveForMethod builds the curve variant RPElementary/RPModified force,
// falling through to curve itself for RPDefault/RPConsequent (the
// consequent depression is already baked into the curve the caller
// passes via EffectiveCurve).
func curveForMethod(curve *wohler.Curve, method RangePairDamageMethod) (*wohler.Curve, error) {
	switch method {
	case RPElementary:
		return wohler.NewElementary(curve.Sx, curve.Nx, curve.K)
	case RPModified:
		if curve.Sd <= 0 {
			return curve, nil
		}
		return wohler.NewModified(curve.Sx, curve.Nx, curve.K, curve.K2, curve.Sd, curve.Nd)
	default:
		return curve, nil
	}
}
