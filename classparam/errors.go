package classparam

import "errors"

var (
	// ErrTooManyClasses indicates Count exceeds the design limit of 512.
	ErrTooManyClasses = errors.New("classparam: class count must be <= 512")

	// ErrBadWidth indicates Width is not strictly positive.
	ErrBadWidth = errors.New("classparam: class width must be > 0")

	// ErrNegativeCount indicates Count is negative.
	ErrNegativeCount = errors.New("classparam: class count must be >= 0")

	// ErrClassOutOfRange indicates a class index fell outside [0, Count)
	// at a call site that requires quantization to be enabled and the
	// value to land inside the configured range.
	ErrClassOutOfRange = errors.New("classparam: class index out of range")
)
