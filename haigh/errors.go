package haigh

import "errors"

var (
	// ErrEmptyCurve indicates a curve with fewer than two points was supplied.
	ErrEmptyCurve = errors.New("haigh: curve needs at least two points")
	// ErrMismatchedLength indicates Sa and Sm slices differ in length.
	ErrMismatchedLength = errors.New("haigh: Sa and Sm must have equal length")
	// ErrBadAmplitude indicates a non-positive Sa_i in the curve definition.
	ErrBadAmplitude = errors.New("haigh: curve amplitudes must be > 0")
	// ErrNotMonotoneMean indicates Sm_i is not monotonically non-decreasing.
	ErrNotMonotoneMean = errors.New("haigh: curve means must be non-decreasing")
	// ErrNotMonotoneRatio indicates Sm_i/Sa_i is not monotonically
	// non-decreasing across the curve.
	ErrNotMonotoneRatio = errors.New("haigh: curve Sm/Sa ratio must be non-decreasing")
	// ErrNegativeAmplitude indicates Transform was asked to process a
	// negative cycle amplitude (amplitudes are magnitudes, never negative).
	ErrNegativeAmplitude = errors.New("haigh: amplitude must be >= 0")
	// ErrBadSensitivity indicates M is outside (-1,1), the domain in which
	// the FKM default construction remains well-defined.
	ErrBadSensitivity = errors.New("haigh: mean-stress sensitivity M must be in (-1,1)")
)
