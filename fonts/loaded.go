package fonts

import (
	"github.com/akiross/slint/fontdb"
	"github.com/akiross/slint/shape"
)

// LoadedFont is a face registered with both the database and the shaping
// context. Its metrics are in design units; scale by pixelSize / Upem.
type LoadedFont struct {
	Face fontdb.FaceID
	Font shape.FontID

	metrics shape.Metrics
}

// Metrics returns the design-unit metrics of the face.
func (f *LoadedFont) Metrics() shape.Metrics { return f.metrics }

// ScaledFont is a loaded font at a concrete pixel size.
type ScaledFont struct {
	Loaded    *LoadedFont
	PixelSize float64
}

func (s ScaledFont) scale() float64 {
	return s.PixelSize / float64(s.Loaded.metrics.Upem)
}

// Ascent is the scaled ascent in pixels, positive upward.
func (s ScaledFont) Ascent() float64 { return s.Loaded.metrics.Ascent * s.scale() }

// Descent is the scaled descent in pixels, typically negative.
func (s ScaledFont) Descent() float64 { return s.Loaded.metrics.Descent * s.scale() }

// Height is the scaled ascent-to-descent extent in pixels.
func (s ScaledFont) Height() float64 {
	return (s.Loaded.metrics.Ascent - s.Loaded.metrics.Descent) * s.scale()
}
