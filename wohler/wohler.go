package wohler

import "math"

// Shape identifies which of the three standard Wöhler curve shapes a Curve
// represents. It is derived, not stored, from the parameters supplied to
// the constructors.
type Shape int

const (
	// Elementary is a single log-log slope through (Sx,Nx), no endurance.
	Elementary Shape = iota
	// Original has endurance (Sd,Nd) == (Sx,Nx): damage is zero below it.
	Original
	// Modified has a distinct shallower slope k2 between Sx and a
	// separate endurance point (Sd,Nd).
	Modified
)

// Curve holds the parameters of a Wöhler (S-N) curve, per spec §3:
// (Sx, Nx, k, k2, Sd, Nd, q, q2, omission).
//
// Q is the Miner-consequent exponent the counter package's consequent
// path uses to depress Sx (and Nx) as cumulative damage grows (spec
// §4.8); Sd is not depressed, and Q2 is carried but never consulted.
// Both are inert for plain Damage calls.
type Curve struct {
	Sx, Nx   float64
	K, K2    float64
	Sd, Nd   float64
	Q, Q2    float64
	Omission float64
	shape    Shape
}

// NewElementary builds a single-slope Miner-elementary curve: damage is
// computed from slope k through (Sx,Nx) for every amplitude above the
// omission limit, with no endurance cutoff.
func NewElementary(sx, nx, k float64) (*Curve, error) {
	c := &Curve{Sx: sx, Nx: nx, K: k, K2: k, shape: Elementary}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewOriginal builds a Miner-original curve: a single slope k through
// (Sx,Nx) with Sx==Sd and Nx==Nd acting as the endurance limit — damage
// is zero for Sa < Sd.
func NewOriginal(sd, nd, k float64) (*Curve, error) {
	c := &Curve{Sx: sd, Nx: nd, K: k, K2: k, Sd: sd, Nd: nd, shape: Original}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewModified builds a Miner-modified curve: slope k above Sx, a
// shallower slope k2 between Sx and the endurance point (Sd,Nd), and
// zero damage below Sd.
func NewModified(sx, nx, k, k2, sd, nd float64) (*Curve, error) {
	c := &Curve{Sx: sx, Nx: nx, K: k, K2: k2, Sd: sd, Nd: nd, shape: Modified}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewAny builds a Curve directly from a fully populated parameter set,
// inferring its Shape from whether Sd/Nd are set and whether they equal
// Sx/Nx. Useful for callers (e.g. wl_init_any) that already hold a
// parameter struct rather than calling a specific constructor.
func NewAny(p Curve) (*Curve, error) {
	c := p
	switch {
	case c.Sd == 0 && c.Nd == 0:
		c.shape = Elementary
		if c.K2 == 0 {
			c.K2 = c.K
		}
	case c.Sd == c.Sx && c.Nd == c.Nx:
		c.shape = Original
		if c.K2 == 0 {
			c.K2 = c.K
		}
	default:
		c.shape = Modified
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Shape reports which of the three standard curve shapes this Curve is.
func (c *Curve) Shape() Shape { return c.shape }

// Validate checks the invariants of spec §3: Sx>0, Nx>0, k<0, k2<0,
// Sd>=0, and Nd>=Nx whenever Sd>0.
func (c *Curve) Validate() error {
	if c.Sx <= 0 {
		return ErrBadSx
	}
	if c.Nx <= 0 {
		return ErrBadNx
	}
	if c.K >= 0 {
		return ErrBadSlope
	}
	if c.K2 >= 0 {
		return ErrBadSlope
	}
	if c.Sd < 0 {
		return ErrBadSd
	}
	if c.Sd > 0 && c.Nd < c.Nx {
		return ErrBadEndurance
	}
	return nil
}

// hasEndurance reports whether this curve applies an endurance cutoff
// (Original and Modified both do; Elementary never does).
func (c *Curve) hasEndurance() bool {
	return c.shape == Original || c.shape == Modified
}

// Damage computes the single-cycle damage D(Sa) per spec §4.2:
// zero below the omission limit or below the endurance limit (Original/
// Modified), otherwise exp(|slope|*(ln Sa - ln Sx) - ln Nx) using k above
// Sx and k2 at or below it.
func (c *Curve) Damage(sa float64) (float64, error) {
	if sa <= 0 {
		return 0, ErrNonPositiveInput
	}
	if sa <= c.Omission {
		return 0, nil
	}
	if c.hasEndurance() && sa < c.Sd {
		return 0, nil
	}
	slope := c.slopeFor(sa)
	return math.Exp(math.Abs(slope)*(math.Log(sa)-math.Log(c.Sx)) - math.Log(c.Nx)), nil
}

// slopeFor picks k for amplitudes above Sx, k2 at or below it.
func (c *Curve) slopeFor(sa float64) float64 {
	if sa > c.Sx {
		return c.K
	}
	return c.K2
}

// N computes the cycles-to-failure at constant amplitude Sa: the
// reciprocal of Damage(Sa). Returns ErrNonPositiveInput for sa<=0 and
// +Inf when Damage(Sa)==0 (below omission/endurance — the curve never
// fails at that amplitude).
func (c *Curve) N(sa float64) (float64, error) {
	d, err := c.Damage(sa)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return math.Inf(1), nil
	}
	return 1 / d, nil
}

// Sa computes the amplitude that would fail in exactly n cycles at
// constant amplitude, inverting the slope appropriate to n relative to
// Nx (k for n<Nx, k2 for n>=Nx).
func (c *Curve) Sa(n float64) (float64, error) {
	if n <= 0 {
		return 0, ErrNonPositiveInput
	}
	slope := c.K
	if n >= c.Nx {
		slope = c.K2
	}
	// N(Sa) = Nx * (Sx/Sa)^|slope|  =>  Sa = Sx * (Nx/n)^(1/|slope|)
	return c.Sx * math.Pow(c.Nx/n, 1/math.Abs(slope)), nil
}

// K2FromSx fits a slope k2 for a line passing through (sx,nx) and
// (sd,nd) in log-log space: k2 = (ln(nd)-ln(nx)) / (ln(sd)-ln(sx)).
func K2FromSx(sx, nx, sd, nd float64) (float64, error) {
	if sx <= 0 || nx <= 0 || sd <= 0 || nd <= 0 {
		return 0, ErrNonPositiveInput
	}
	return (math.Log(nd) - math.Log(nx)) / (math.Log(sd) - math.Log(sx)), nil
}

// SxFromK2 solves for the amplitude Sx at which a k2-sloped line through
// (sd,nd) reaches the life nx: Sx = sd * (nd/nx)^(1/|k2|).
func SxFromK2(sd, nd, k2, nx float64) (float64, error) {
	if sd <= 0 || nd <= 0 || nx <= 0 {
		return 0, ErrNonPositiveInput
	}
	return sd * math.Pow(nd/nx, 1/math.Abs(k2)), nil
}
