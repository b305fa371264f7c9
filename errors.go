package paint

import "errors"

// Errors returned by buffers, commands and sessions. They are always wrapped
// with context; test for them with errors.Is.
var (
	// ErrIndexOutOfRange is returned when a pixel coordinate or flat index
	// lies outside the buffer. Collaborators must clamp pointer coordinates
	// before addressing pixels directly.
	ErrIndexOutOfRange = errors.New("paint: index out of range")

	// ErrSizeMismatch is returned when a snapshot does not match the buffer
	// it is restored into, typically a stale snapshot applied to a resized
	// buffer.
	ErrSizeMismatch = errors.New("paint: size mismatch")

	// ErrInvalidDimensions is returned when a buffer is created with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("paint: invalid dimensions")

	// ErrCommandState is returned when a command is executed twice or undone
	// before it was executed.
	ErrCommandState = errors.New("paint: invalid command state")

	// ErrNoBuffer is returned by session operations that need a loaded buffer.
	ErrNoBuffer = errors.New("paint: no buffer loaded")

	// ErrStrokeInProgress is returned by session operations that cannot run
	// between pointer-down and pointer-up.
	ErrStrokeInProgress = errors.New("paint: stroke in progress")
)
