package damagelut

import "errors"

var (
	// ErrQuantizationDisabled indicates Build was called with a class
	// model that has Count==0; a LUT is meaningless without classes.
	ErrQuantizationDisabled = errors.New("damagelut: cannot build a table without quantization")
	// ErrOutOfRange indicates Lookup was called with a class index
	// outside [0, N).
	ErrOutOfRange = errors.New("damagelut: class index out of range")
)
