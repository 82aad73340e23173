package cyclefind

import "errors"

var (
	// ErrInvalidTolerance indicates a negative epsilon was supplied to an
	// HCM finder.
	ErrInvalidTolerance = errors.New("cyclefind: tolerance must be >= 0")
	// ErrInvalidMethod indicates New was called with an unrecognized Method.
	ErrInvalidMethod = errors.New("cyclefind: invalid method")
)
