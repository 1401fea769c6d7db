// Package slint provides font resolution, multi-script font fallback and
// text line layout for UI toolkits.
//
// # Overview
//
// The module turns a logical font request (family, weight, pixel size) plus
// a body of text into a renderable set of shaped glyphs, and lays those
// glyphs out as wrapped, aligned, optionally elided lines inside a bounding
// box. Shaping is backed by HarfBuzz via go-text/typesetting.
//
// The work is split across four packages:
//
//   - fontdb: font face registry and family/weight queries
//   - shape: shaping and measurement (glyphs, widths, line breaks)
//   - fonts: the font cache, glyph-coverage table and fallback chains
//   - textlayout: line breaking, alignment, elision
//
// # Quick start
//
//	cache := fonts.DefaultCache()
//	font := cache.Font(fonts.FontRequest{Family: "DejaVu Sans"}, 1.0, "Hello 世界")
//	textlayout.LayoutLines(font, "Hello 世界", textlayout.Options{
//		MaxWidth:  200,
//		MaxHeight: 100,
//		Wrap:      textlayout.WordWrap,
//	}, func(line string, x, y float64, start int, m shape.TextMetrics) {
//		// draw line at (x, y)
//	})
//
// This package itself only hosts module-wide concerns such as logging; the
// functionality lives in the sub-packages.
package slint
