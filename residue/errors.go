package residue

import "errors"

var (
	// ErrBufferFull indicates Push was called on a Buffer already at its
	// configured capacity.
	ErrBufferFull = errors.New("residue: buffer is at capacity")
	// ErrIndexOutOfRange indicates RemoveInner, At, ReplaceLast or a
	// store's At/SetDamage was given an invalid index (or, for
	// ReplaceLast, called on an empty buffer).
	ErrIndexOutOfRange = errors.New("residue: index out of range")
	// ErrStoreNotInitialized indicates AppendPoint was called on a
	// borrowed TurningPointStore created without a backing buffer.
	ErrStoreNotInitialized = errors.New("residue: turning-point store not initialized")
	// ErrBadCapacity indicates a non-positive capacity was requested.
	ErrBadCapacity = errors.New("residue: capacity must be > 0")
	// ErrBadThreshold indicates an auto-prune threshold smaller than the
	// target size was requested.
	ErrBadThreshold = errors.New("residue: auto-prune threshold must be >= target size")
)
