package textlayout

import (
	"math"

	"github.com/akiross/slint/fonts"
	"github.com/akiross/slint/shape"
)

// TextSize returns the width and height text occupies when laid out with
// the given font. A positive maxWidth enables word wrapping at that
// width; zero or negative disables wrapping.
func TextSize(font Font, text string, maxWidth float64) (width, height float64) {
	opts := Options{MaxWidth: math.MaxFloat64, MaxHeight: math.MaxFloat64}
	if maxWidth > 0 {
		opts.MaxWidth = maxWidth
		opts.Wrap = WordWrap
	}
	lines := 0
	LayoutLines(font, text, opts, func(_ string, _, _ float64, _ int, m shape.TextMetrics) {
		lines++
		if m.Width > width {
			width = m.Width
		}
	})
	return width, float64(lines) * font.LineHeight()
}

// TextSizeForRequest resolves req against cache and measures text with
// the result. maxWidth and the returned size are in logical pixels; the
// measurement itself happens at the physical size given by scaleFactor.
func TextSizeForRequest(cache *fonts.Cache, req fonts.FontRequest, scaleFactor float64,
	text string, maxWidth float64) (width, height float64) {

	font := cache.Font(req, scaleFactor, text)
	physMax := maxWidth
	if physMax > 0 {
		physMax *= scaleFactor
	}
	w, h := TextSize(font, text, physMax)
	return w / scaleFactor, h / scaleFactor
}
