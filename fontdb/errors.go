package fontdb

import "errors"

// Sentinel errors for the fontdb package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontdb: empty font data")

	// ErrNoFaces is returned when font data parses but contains no usable face.
	ErrNoFaces = errors.New("fontdb: font data contains no usable face")
)
