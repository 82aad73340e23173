package haigh

import (
	"math"
	"sort"
)

// Curve is an ordered Haigh reference curve: point i is (Sa[i], Sm[i]),
// and ratio[i] = Sm[i]/Sa[i] is non-decreasing across the list (spec §3).
type Curve struct {
	sa, sm, ratio []float64
}

// NewCurve validates and builds a Curve from parallel Sa/Sm slices.
func NewCurve(sa, sm []float64) (*Curve, error) {
	if len(sa) != len(sm) {
		return nil, ErrMismatchedLength
	}
	if len(sa) < 2 {
		return nil, ErrEmptyCurve
	}
	ratio := make([]float64, len(sa))
	for i := range sa {
		if sa[i] <= 0 {
			return nil, ErrBadAmplitude
		}
		if i > 0 && sm[i] < sm[i-1] {
			return nil, ErrNotMonotoneMean
		}
		ratio[i] = sm[i] / sa[i]
		if i > 0 && ratio[i] < ratio[i-1] {
			return nil, ErrNotMonotoneRatio
		}
	}
	return &Curve{sa: append([]float64(nil), sa...), sm: append([]float64(nil), sm...), ratio: ratio}, nil
}

// NewFKMDefault builds the FKM-standard reference curve for a mean-stress
// sensitivity M, per spec §4.3:
//
//	Sa(R=∞)  = 1/(1-M)               at Sm/Sa = -1
//	Sa(R=0)  = 1/(1+M)               at Sm/Sa =  1
//	Sa(R=0.5)= Sa(R=0)*(1+M/3)/(1+M) at Sm/Sa =  3
//
// (using Sm/Sa = (1+R)/(1-R), so R=0 -> ratio 1, R=0.5 -> ratio 3, and the
// R=∞ limit -> ratio -1). The three points already satisfy the curve's
// monotonicity invariants for any M in (-1,1).
func NewFKMDefault(m float64) (*Curve, error) {
	if m <= -1 || m >= 1 {
		return nil, ErrBadSensitivity
	}
	saR0 := 1 / (1 + m)
	saRInf := 1 / (1 - m)
	saR05 := saR0 * (1 + m/3) / (1 + m)

	sa := []float64{saRInf, saR0, saR05}
	sm := []float64{-saRInf, saR0, 3 * saR05}
	return NewCurve(sa, sm)
}

// Symmetric returns a new Curve mirrored around Sm=0: for every existing
// point (Sa,Sm) with Sm≠0, a reflected point (Sa,-Sm) is added (spec §4.3
// "symmetric mode mirrors the curve around Sm=0"). Points are re-sorted
// by ratio to preserve the monotonicity invariant.
func (c *Curve) Symmetric() *Curve {
	n := len(c.sa)
	sa := make([]float64, 0, 2*n)
	sm := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		sa = append(sa, c.sa[i])
		sm = append(sm, c.sm[i])
		if c.sm[i] != 0 {
			sa = append(sa, c.sa[i])
			sm = append(sm, -c.sm[i])
		}
	}
	type pt struct{ sa, sm, ratio float64 }
	pts := make([]pt, len(sa))
	for i := range sa {
		pts[i] = pt{sa[i], sm[i], sm[i] / sa[i]}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].ratio < pts[j].ratio })
	out := &Curve{sa: make([]float64, len(pts)), sm: make([]float64, len(pts)), ratio: make([]float64, len(pts))}
	for i, p := range pts {
		out.sa[i], out.sm[i], out.ratio[i] = p.sa, p.sm, p.ratio
	}
	return out
}

// alpha returns the curve's alleviation amplitude at normalized ratio
// ratioNorm = Sm/Sa, per spec §4.3 step (2): locate the bracketing
// segment via the monotone ratio sequence, then intersect the constant-R
// ray (Sm = ratioNorm*Sa) with that segment. Out-of-range ratios clip to
// the first/last curve point.
func (c *Curve) alpha(ratioNorm float64) float64 {
	n := len(c.ratio)
	if ratioNorm <= c.ratio[0] {
		return c.sa[0]
	}
	if ratioNorm >= c.ratio[n-1] {
		return c.sa[n-1]
	}
	i := sort.Search(n, func(i int) bool { return c.ratio[i] >= ratioNorm })
	// ratio[i-1] <= ratioNorm <= ratio[i]; bracket the segment [i-1,i].
	lo, hi := i-1, i
	dSm := c.sm[hi] - c.sm[lo]
	dSa := c.sa[hi] - c.sa[lo]
	denom := dSm - ratioNorm*dSa
	if denom == 0 {
		// Degenerate segment (collinear with the ray): fall back to the
		// nearer endpoint rather than divide by zero.
		return c.sa[lo]
	}
	u := (ratioNorm*c.sa[lo] - c.sm[lo]) / denom
	return c.sa[lo] + u*dSa
}

// scaledSa returns the absolute amplitude on the curve, scaled so that
// its own point at ratioNorm equals anchorSa, interpolated at absolute
// mean smRig (spec §4.3 step (4), pinned-Sm). Endpoints clip.
func (c *Curve) scaledSa(ratioNorm, anchorSa, smRig float64) float64 {
	a := c.alpha(ratioNorm)
	if a == 0 {
		return 0
	}
	scale := anchorSa / a
	n := len(c.sa)
	smScaled := make([]float64, n)
	saScaled := make([]float64, n)
	for i := 0; i < n; i++ {
		smScaled[i] = c.sm[i] * scale
		saScaled[i] = c.sa[i] * scale
	}
	if smRig <= smScaled[0] {
		return saScaled[0]
	}
	if smRig >= smScaled[n-1] {
		return saScaled[n-1]
	}
	i := sort.Search(n, func(i int) bool { return smScaled[i] >= smRig })
	lo, hi := i-1, i
	if smScaled[hi] == smScaled[lo] {
		return saScaled[lo]
	}
	t := (smRig - smScaled[lo]) / (smScaled[hi] - smScaled[lo])
	return saScaled[lo] + t*(saScaled[hi]-saScaled[lo])
}

// PinMode selects which rig mean-stress condition the transform targets.
type PinMode int

const (
	// PinnedR targets a constant stress ratio R_rig.
	PinnedR PinMode = iota
	// PinnedSm targets a constant absolute mean stress Sm_rig.
	PinnedSm
)

// Transformer holds a resolved configuration for repeated at_transform
// calls: the reference curve plus the rig's target mean-stress condition.
type Transformer struct {
	curve     *Curve
	pinned    PinMode
	smRig     float64
	rRig      float64
	symmetric bool
}

// NewTransformer builds a Transformer, mirroring the curve first if
// symmetric is requested (spec §4.3).
func NewTransformer(curve *Curve, pinned PinMode, smRig, rRig float64, symmetric bool) *Transformer {
	c := curve
	if symmetric {
		c = curve.Symmetric()
	}
	return &Transformer{curve: c, pinned: pinned, smRig: smRig, rRig: rRig, symmetric: symmetric}
}

// ratioFromR converts a stress ratio R to the Sm/Sa ratio (1+R)/(1-R).
// R==1 (zero amplitude, undefined ratio) maps to +Inf so callers clip to
// the curve's last point, matching a fully-static load.
func ratioFromR(r float64) float64 {
	if r == 1 {
		return math.Inf(1)
	}
	return (1 + r) / (1 - r)
}

// Transform computes Sa' for a cycle of amplitude sa and mean sm, per
// spec §4.3: zero amplitude passes through unchanged; otherwise the
// cycle's own alleviation factor is computed, then either the pinned-R
// target factor (scaled ratio) or the pinned-Sm target amplitude
// (absolute interpolation) is applied.
func (t *Transformer) Transform(sa, sm float64) (float64, error) {
	if sa < 0 {
		return 0, ErrNegativeAmplitude
	}
	if sa == 0 {
		return 0, nil
	}
	ratioNorm := sm / sa
	alpha := t.curve.alpha(ratioNorm)

	switch t.pinned {
	case PinnedSm:
		return t.curve.scaledSa(ratioNorm, sa, t.smRig), nil
	default: // PinnedR
		ratioTarget := ratioFromR(t.rRig)
		alphaTarget := t.curve.alpha(ratioTarget)
		if alpha == 0 {
			return 0, nil
		}
		return sa * alphaTarget / alpha, nil
	}
}
