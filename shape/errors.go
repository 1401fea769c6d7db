package shape

import "errors"

// Sentinel errors for the shape package.
var (
	// ErrUnknownFont is returned when a FontID was not issued by this Context.
	ErrUnknownFont = errors.New("shape: unknown font id")

	// ErrFaceIndex is returned when a collection does not contain the
	// requested face index.
	ErrFaceIndex = errors.New("shape: face index out of range")
)
