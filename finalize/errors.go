package finalize

import "errors"

var (
	// ErrInvalidPolicy indicates Finalize was called with an unrecognized
	// Policy value.
	ErrInvalidPolicy = errors.New("finalize: invalid policy")
	// ErrNilAccumulator indicates a policy that counts cycles was invoked
	// without an Accumulator to count them into.
	ErrNilAccumulator = errors.New("finalize: accumulator is required")
	// ErrNilFinder indicates the REPEATED policy was invoked without a
	// cycle finder to replay the doubled residue through.
	ErrNilFinder = errors.New("finalize: cycle finder is required")
)
