package counter

import "errors"

var (
	// ErrBadSize indicates a non-positive class count was given to a
	// histogram constructor.
	ErrBadSize = errors.New("counter: size must be > 0")
	// ErrIndexOutOfRange indicates a class index or index pair fell
	// outside [0,N).
	ErrIndexOutOfRange = errors.New("counter: index out of range")
	// ErrSaturated indicates a counter addition would exceed
	// SaturationLimit; the addition is rejected rather than wrapped.
	ErrSaturated = errors.New("counter: saturation limit reached")
	// ErrHistogramDisabled indicates an operation was attempted against
	// a histogram the Accumulator was not configured to maintain.
	ErrHistogramDisabled = errors.New("counter: histogram not enabled")
	// ErrNilCurve indicates an Accumulator was built without a Wöhler
	// curve, which damage accumulation always requires.
	ErrNilCurve = errors.New("counter: wohler curve is required")
	// ErrClassesDisabled indicates counting was attempted while the
	// class model has quantization disabled (Count==0).
	ErrClassesDisabled = errors.New("counter: class quantization is disabled")
)
