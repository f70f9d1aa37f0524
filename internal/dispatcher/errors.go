package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnknownAction indicates the action name is not in the catalog.
	ErrUnknownAction = errors.New("dispatcher: unknown action")

	// ErrUnboundKeys indicates no binding exists for the key sequence.
	ErrUnboundKeys = errors.New("dispatcher: no binding for key sequence")

	// ErrDuplicateBinding indicates the key sequence is already bound in
	// the mode.
	ErrDuplicateBinding = errors.New("dispatcher: key sequence already bound")

	// ErrDuplicateAction indicates the action name is already in the
	// catalog.
	ErrDuplicateAction = errors.New("dispatcher: action already registered")

	// ErrPendingChar indicates the action needs a target character that
	// was not supplied.
	ErrPendingChar = errors.New("dispatcher: action requires a target character")

	// ErrKeymapParse indicates the keymap file could not be parsed.
	ErrKeymapParse = errors.New("dispatcher: invalid keymap")
)
