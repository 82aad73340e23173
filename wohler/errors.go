package wohler

import "errors"

var (
	// ErrBadSx indicates Sx is not strictly positive.
	ErrBadSx = errors.New("wohler: Sx must be > 0")
	// ErrBadNx indicates Nx is not strictly positive.
	ErrBadNx = errors.New("wohler: Nx must be > 0")
	// ErrBadSlope indicates k (or k2) is not strictly negative.
	ErrBadSlope = errors.New("wohler: slope must be < 0")
	// ErrBadSd indicates Sd is negative.
	ErrBadSd = errors.New("wohler: Sd must be >= 0")
	// ErrBadEndurance indicates Nd < Nx while Sd > 0.
	ErrBadEndurance = errors.New("wohler: Nd must be >= Nx when Sd > 0")
	// ErrNonPositiveInput indicates a damage/life computation was asked to
	// evaluate a non-positive amplitude or cycle count.
	ErrNonPositiveInput = errors.New("wohler: input must be > 0")
)
