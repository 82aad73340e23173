package classparam

import "math"

// MaxClasses is the hard ceiling on Params.Count (spec §3: "N<=512 by design").
const MaxClasses = 512

// Params describes the quantization of real values into class indices.
// A value v is assigned class floor((v-Offset)/Width); Count==0 disables
// quantization entirely (peak/valley filtering still runs, but no class
// index, histogram or damage is computed).
type Params struct {
	Count  int
	Width  float64
	Offset float64
}

// New builds Params and validates it immediately.
func New(count int, width, offset float64) (Params, error) {
	p := Params{Count: count, Width: width, Offset: offset}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks the invariants from spec §3/§4.1: Count in [0,512],
// Width>0. Offset carries no constraint of its own.
func (p Params) Validate() error {
	if p.Count < 0 {
		return ErrNegativeCount
	}
	if p.Count > MaxClasses {
		return ErrTooManyClasses
	}
	if p.Width <= 0 {
		return ErrBadWidth
	}
	return nil
}

// Enabled reports whether quantization is active (Count>0).
func (p Params) Enabled() bool {
	return p.Count > 0
}

// ClassOf computes the raw class index for v, without clipping.
// ok is false when quantization is disabled (Count==0).
func (p Params) ClassOf(v float64) (class int, ok bool) {
	if !p.Enabled() {
		return 0, false
	}
	return int(math.Floor((v - p.Offset) / p.Width)), true
}

// ClassClipped returns ClassOf(v) clipped into [0, Count). Per spec §4.1
// this clipping is only valid when writing into an N-sized container
// (e.g. LUT population, synthetic sample generation); feeding a live
// stream must instead treat an out-of-range class as ErrClassOutOfRange
// (see InRange).
func (p Params) ClassClipped(v float64) int {
	c, ok := p.ClassOf(v)
	if !ok {
		return 0
	}
	if c < 0 {
		return 0
	}
	if c >= p.Count {
		return p.Count - 1
	}
	return c
}

// InRange reports whether class index c is a valid index for this Params
// (0 <= c < Count). Used by feed paths that must reject out-of-range
// classes rather than silently clip them.
func (p Params) InRange(c int) bool {
	return c >= 0 && c < p.Count
}

// Mean returns the class mean: Offset + Width*(c+0.5).
func (p Params) Mean(c int) float64 {
	return p.Offset + p.Width*(float64(c)+0.5)
}

// Upper returns the class upper bound: Offset + Width*(c+1).
func (p Params) Upper(c int) float64 {
	return p.Offset + p.Width*(float64(c)+1)
}

// Lower returns the class lower bound: Offset + Width*c.
func (p Params) Lower(c int) float64 {
	return p.Offset + p.Width*float64(c)
}

// Range returns the largest representable value: Offset + Count*Width.
// Values at or above this bound are rejected by feed paths (spec §4.1).
func (p Params) Range() float64 {
	return p.Offset + float64(p.Count)*p.Width
}
