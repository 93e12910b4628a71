package mode

import "errors"

// Registry errors.
var (
	// ErrInvalidMode indicates a mode without an ID or name.
	ErrInvalidMode = errors.New("invalid mode: must have id and name")

	// ErrDuplicateMode indicates a mode ID that is already registered.
	ErrDuplicateMode = errors.New("mode already registered")

	// ErrUnknownMode indicates a mode ID that is not registered.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrNoModes indicates an operation that needs at least one mode.
	ErrNoModes = errors.New("no modes registered")
)
