package fonts

import "github.com/akiross/slint/shape"

// Font is a composite font: an ordered chain of scaled fonts sharing one
// pixel size. The first entry is the requested font; the rest extend its
// character coverage. Shaping picks, per character, the first chain entry
// that covers it.
type Font struct {
	ctx           TextContext
	fonts         []ScaledFont
	letterSpacing float64
}

// NewFont builds a composite font over the given chain. The chain must
// not be empty, and all entries must share the same pixel size.
func NewFont(ctx TextContext, chain []ScaledFont, letterSpacing float64) *Font {
	if len(chain) == 0 {
		panic("fonts: composite font needs at least one font")
	}
	return &Font{ctx: ctx, fonts: chain, letterSpacing: letterSpacing}
}

// PixelSize returns the em size of the composite, in pixels.
func (f *Font) PixelSize() float64 { return f.fonts[0].PixelSize }

// LetterSpacing returns the extra per-cluster advance, in pixels.
func (f *Font) LetterSpacing() float64 { return f.letterSpacing }

// Chain returns the underlying fonts, primary first.
// The returned slice must not be modified.
func (f *Font) Chain() []ScaledFont { return f.fonts }

// Ascent is the largest ascent in the chain, in pixels.
func (f *Font) Ascent() float64 {
	ascent := f.fonts[0].Ascent()
	for _, sf := range f.fonts[1:] {
		if a := sf.Ascent(); a > ascent {
			ascent = a
		}
	}
	return ascent
}

// Descent is the lowest descent in the chain, in pixels (negative).
func (f *Font) Descent() float64 {
	descent := f.fonts[0].Descent()
	for _, sf := range f.fonts[1:] {
		if d := sf.Descent(); d < descent {
			descent = d
		}
	}
	return descent
}

// LineHeight is the tallest ascent-to-descent extent in the chain.
func (f *Font) LineHeight() float64 {
	height := f.fonts[0].Height()
	for _, sf := range f.fonts[1:] {
		if h := sf.Height(); h > height {
			height = h
		}
	}
	return height
}

func (f *Font) params() shape.Params {
	ids := make([]shape.FontID, len(f.fonts))
	for i, sf := range f.fonts {
		ids[i] = sf.Loaded.Font
	}
	return shape.Params{
		Fonts:         ids,
		PixelSize:     f.PixelSize(),
		LetterSpacing: f.letterSpacing,
	}
}

// ShapeText shapes text against the chain.
func (f *Font) ShapeText(text string) []shape.Glyph {
	return f.ctx.ShapeText(f.params(), text)
}

// MeasureText shapes text and returns its total advance width.
func (f *Font) MeasureText(text string) shape.TextMetrics {
	return f.ctx.MeasureText(f.params(), text)
}

// BreakText returns how many bytes of text fit into available pixels,
// cut at a break opportunity. See shape.Context.BreakText.
func (f *Font) BreakText(text string, available float64) int {
	return f.ctx.BreakText(f.params(), text, available)
}

// GlyphForChar returns the glyph for r from the first chain entry that
// covers it, falling back to the primary font's missing glyph.
func (f *Font) GlyphForChar(r rune) (shape.Glyph, bool) {
	for _, sf := range f.fonts {
		if g, ok := f.ctx.GlyphForChar(sf.Loaded.Font, r, f.PixelSize()); ok {
			return g, true
		}
	}
	g, _ := f.ctx.GlyphForChar(f.fonts[0].Loaded.Font, r, f.PixelSize())
	return g, false
}
