package hysteresis

import "math"

// Sample is one point of the input stream, carrying its 1-based absolute
// stream position (spec §3). Class is filled in by the caller (the class
// model lives in classparam, not here) before or after filtering.
type Sample struct {
	Value float64
	Class int
	Pos   int64
}

// state is the filter's internal phase, private: callers only observe
// Filter's behavior through Feed's return value.
type state int

const (
	stateInit state = iota
	stateBusy
	stateBusyInterim
)

// Filter is the peak-valley hysteresis state machine of spec §4.5.
// The zero value is not usable; construct with NewFilter.
type Filter struct {
	hyst   float64
	st     state
	lo, hi Sample

	slope   int // +1 (rising into interim) or -1 (falling into interim)
	interim Sample
}

// NewFilter builds a Filter with the given hysteresis band.
func NewFilter(hyst float64) (*Filter, error) {
	if hyst < 0 {
		return nil, ErrNegativeHysteresis
	}
	return &Filter{hyst: hyst, st: stateInit}, nil
}

// Result reports what a single Feed call did to the filter's state.
type Result struct {
	// Confirmed and HasConfirmed: a turning point was permanently
	// confirmed this call (it leaves the tentative/interim slot).
	Confirmed    Sample
	HasConfirmed bool

	// Interim and HasInterim: the filter's current tentative turning
	// point after this call. Callers mirror it as the residue's tail,
	// replacing any previous interim unless HasConfirmed is also true
	// (in which case it is a brand new tail entry).
	Interim    Sample
	HasInterim bool
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Feed advances the filter by one sample. ok is false when the sample
// was skipped (non-finite) or produced no change worth reporting (still
// seeding, or ignored as inside-band noise); callers should only act on
// the returned Result when ok is true.
func (f *Filter) Feed(p Sample) (Result, bool) {
	if !isFinite(p.Value) {
		return Result{}, false
	}

	switch f.st {
	case stateInit:
		f.lo, f.hi = p, p
		f.st = stateBusy
		return Result{}, false

	case stateBusy:
		if p.Value < f.lo.Value {
			f.lo = p
		}
		if p.Value > f.hi.Value {
			f.hi = p
		}
		if f.hi.Value-f.lo.Value <= f.hyst {
			return Result{}, false
		}
		var confirmed Sample
		if f.lo.Pos < f.hi.Pos {
			confirmed, f.interim, f.slope = f.lo, f.hi, 1
		} else {
			confirmed, f.interim, f.slope = f.hi, f.lo, -1
		}
		f.st = stateBusyInterim
		return Result{Confirmed: confirmed, HasConfirmed: true, Interim: f.interim, HasInterim: true}, true

	default: // stateBusyInterim
		delta := p.Value - f.interim.Value
		s := sign(delta)
		switch {
		case s == f.slope:
			// Continuation: the interim was not a genuine extremum yet.
			f.interim = p
			return Result{Interim: f.interim, HasInterim: true}, true
		case math.Abs(delta) > f.hyst:
			confirmed := f.interim
			f.interim = p
			f.slope = -f.slope
			return Result{Confirmed: confirmed, HasConfirmed: true, Interim: f.interim, HasInterim: true}, true
		default:
			// Inside the band: noise, ignored entirely.
			return Result{}, false
		}
	}
}

// HasInterim reports whether the filter currently holds a tentative
// turning point (true once the first hysteresis band has been crossed).
func (f *Filter) HasInterim() bool {
	return f.st == stateBusyInterim
}

// CurrentInterim returns the filter's tentative point, if any.
func (f *Filter) CurrentInterim() (Sample, bool) {
	if f.st != stateBusyInterim {
		return Sample{}, false
	}
	return f.interim, true
}

// Slope reports the current direction into the interim point: +1 rising,
// -1 falling, 0 before any interim exists.
func (f *Filter) Slope() int {
	if f.st != stateBusyInterim {
		return 0
	}
	return f.slope
}
