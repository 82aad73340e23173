package spread

import "errors"

var (
	// ErrInvalidMethod indicates Spread was called with an unrecognized
	// Method value.
	ErrInvalidMethod = errors.New("spread: invalid method")
	// ErrUnsupported indicates a reserved method (TRANSIENT_23,
	// TRANSIENT_23c) was selected; these are accepted as configuration
	// but never produce output.
	ErrUnsupported = errors.New("spread: method is reserved and unimplemented")
	// ErrNilStore indicates a method that walks the turning-point store
	// was invoked without one.
	ErrNilStore = errors.New("spread: turning-point store is required")
)
