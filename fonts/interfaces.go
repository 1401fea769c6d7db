package fonts

import (
	"github.com/akiross/slint/fontdb"
	"github.com/akiross/slint/shape"
)

// Database answers family and weight queries and hands out raw face data.
// *fontdb.Database implements it; tests substitute fakes.
type Database interface {
	Query(families []string, weight fontdb.Weight) (fontdb.FaceID, bool)
	FaceData(id fontdb.FaceID) (data []byte, index int, ok bool)
	SansSerifFamily() string
	LoadFontData(data []byte) error
	LoadFontFile(path string) error
}

// TextContext shapes and measures text for registered faces.
// *shape.Context implements it; tests substitute fakes.
type TextContext interface {
	RegisterFace(data []byte, index int) (shape.FontID, error)
	FaceMetrics(id shape.FontID) (shape.Metrics, error)
	HasGlyph(id shape.FontID, r rune) bool
	GlyphForChar(id shape.FontID, r rune, pixelSize float64) (shape.Glyph, bool)
	ShapeText(params shape.Params, text string) []shape.Glyph
	MeasureText(params shape.Params, text string) shape.TextMetrics
	BreakText(params shape.Params, text string, available float64) int
}

// FallbackEnumerator lists the families to try, in order, when the
// requested font does not cover all characters of the text. Unregistered
// families in the list are skipped silently.
type FallbackEnumerator interface {
	FallbackFamilies(req FontRequest, text string) []string
}
