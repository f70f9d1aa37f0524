package text

import "errors"

// Errors returned by text operations.
var (
	// ErrLineOutOfRange indicates a line index outside [0, LineCount-1].
	// This is a programming-contract violation by the caller, not a
	// user-facing condition.
	ErrLineOutOfRange = errors.New("line index out of range")

	// ErrUnsupportedComposition indicates an attempt to combine two
	// deltas whose snapping semantics do not compose. Only two Offset
	// deltas may be combined.
	ErrUnsupportedComposition = errors.New("unsupported delta composition")
)
