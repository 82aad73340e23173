package rainflow

import "errors"

// ErrorKind classifies why a Context operation failed (spec §7).
type ErrorKind int

const (
	NoError ErrorKind = iota
	InvArg
	Unsupported
	Memory
	AT
	TP
	LUT
)

// String renders the kind's name, used by Error.Error.
func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "NOERROR"
	case InvArg:
		return "INVARG"
	case Unsupported:
		return "UNSUPPORTED"
	case Memory:
		return "MEMORY"
	case AT:
		return "AT"
	case TP:
		return "TP"
	case LUT:
		return "LUT"
	default:
		return "UNKNOWN"
	}
}

// Error is the error type every Context operation returns on failure.
// It wraps an ErrorKind and the underlying cause; once set on a
// Context, the context latches into StateError (spec §7: "single-shot
// after ERROR").
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "rainflow: " + e.Kind.String()
	}
	return "rainflow: " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

var (
	// ErrNotInitialized indicates an operation was attempted on a
	// Context that has not been initialized (or was already deinited).
	ErrNotInitialized = errors.New("rainflow: context not initialized")
	// ErrWrongState indicates an operation was attempted in a lifecycle
	// state that does not permit it (e.g. Feed after Finalize).
	ErrWrongState = errors.New("rainflow: operation not permitted in current state")
	// ErrNoWohlerCurve indicates damage-dependent functionality was used
	// before a Wöhler curve was configured.
	ErrNoWohlerCurve = errors.New("rainflow: no wohler curve configured")
	// ErrHistogramNotEnabled indicates a histogram accessor was called
	// for a histogram the Context's CountFlags did not request.
	ErrHistogramNotEnabled = errors.New("rainflow: histogram not enabled by flags")
	// ErrNoTurningPointStore indicates a tp_* operation was attempted
	// before tp_init configured a store.
	ErrNoTurningPointStore = errors.New("rainflow: turning-point store not initialized")
	// ErrNoDamageHistory indicates a dh_* operation was attempted before
	// dh_init configured a buffer.
	ErrNoDamageHistory = errors.New("rainflow: damage history not initialized")
	// ErrNoTransform indicates Transform was called before at_init
	// configured an amplitude transformer.
	ErrNoTransform = errors.New("rainflow: amplitude transform not initialized")
	// ErrIndexOutOfRange indicates an accessor index fell outside the
	// bounds of the buffer it addresses.
	ErrIndexOutOfRange = errors.New("rainflow: index out of range")
)
