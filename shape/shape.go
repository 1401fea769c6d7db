package shape

import (
	"math"
	"strconv"
	"strings"
)

// FontID identifies one registered font within a Context.
// IDs are only meaningful for the Context that issued them.
type FontID uint32

// Metrics are the vertical design-unit metrics of a font face.
// Ascent is positive upward, Descent is typically negative.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
	Upem    uint16
}

// Glyph is one positioned glyph produced by shaping.
type Glyph struct {
	// Font is the font the glyph was taken from. With multiple fonts in
	// Params this may differ per glyph.
	Font FontID

	// GID is the glyph index within its font.
	GID uint32

	// OffsetX and OffsetY are fine positioning adjustments relative to the
	// pen position, in pixels.
	OffsetX float64
	OffsetY float64

	// Advance is how far the pen moves after this glyph, in pixels.
	// Letter spacing is already folded in.
	Advance float64

	// ByteOffset is the byte index of the glyph's cluster in the shaped
	// string.
	ByteOffset int
}

// Params selects the fonts and scale for a shaping call.
type Params struct {
	// Fonts is the ordered font list. For each character the first font
	// that covers it wins; characters no font covers fall back to Fonts[0].
	// Must not be empty.
	Fonts []FontID

	// PixelSize is the em size in pixels.
	PixelSize float64

	// LetterSpacing is added to the advance of every cluster, in pixels.
	LetterSpacing float64
}

// TextMetrics is the result of measuring a shaped string.
type TextMetrics struct {
	// Width is the sum of all glyph advances, in pixels.
	Width float64

	// Glyphs are the shaped glyphs the width was derived from.
	Glyphs []Glyph
}

// memoKey identifies one shaping result. Two calls with equal keys are
// guaranteed to produce the same glyphs.
type memoKey struct {
	text    string
	fonts   string
	size    uint64
	spacing uint64
}

func (p Params) key(text string) memoKey {
	var b strings.Builder
	for _, f := range p.Fonts {
		b.WriteString(strconv.FormatUint(uint64(f), 36))
		b.WriteByte(',')
	}
	return memoKey{
		text:    text,
		fonts:   b.String(),
		size:    math.Float64bits(p.PixelSize),
		spacing: math.Float64bits(p.LetterSpacing),
	}
}
