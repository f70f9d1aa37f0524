package script

import (
	"errors"
	"fmt"
)

// Script host errors.
var (
	// ErrHostClosed indicates an operation on a closed host.
	ErrHostClosed = errors.New("script: host closed")

	// ErrDuplicateMotion indicates a motion name was registered twice.
	ErrDuplicateMotion = errors.New("script: motion already registered")

	// ErrMotionNotFound indicates no motion with the name exists.
	ErrMotionNotFound = errors.New("script: motion not found")

	// ErrBadResult indicates the script did not return two numbers.
	ErrBadResult = errors.New("script: motion must return line, char")
)

// MotionError wraps a failure inside a scripted motion.
type MotionError struct {
	// Host identifies the script host.
	Host string
	// Motion is the registered motion name.
	Motion string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *MotionError) Error() string {
	return fmt.Sprintf("script motion %q on %s: %v", e.Motion, e.Host, e.Err)
}

// Unwrap returns the underlying error.
func (e *MotionError) Unwrap() error {
	return e.Err
}
