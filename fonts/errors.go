package fonts

import "errors"

// ErrNoFontFound is returned when neither the requested family nor the
// generic sans-serif fallback resolves to a registered face.
var ErrNoFontFound = errors.New("fonts: no font found")
