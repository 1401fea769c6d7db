package textlayout

import (
	"math"
	"strings"

	"github.com/akiross/slint/shape"
)

// Font is the measuring surface the layout works against.
// *fonts.Font implements it.
type Font interface {
	PixelSize() float64
	Ascent() float64
	Descent() float64
	LineHeight() float64
	ShapeText(text string) []shape.Glyph
	MeasureText(text string) shape.TextMetrics
	BreakText(text string, available float64) int
}

// Options describes the box the text is laid out in.
type Options struct {
	MaxWidth  float64
	MaxHeight float64

	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
	Wrap       Wrap
	Overflow   Overflow

	// SingleLine disables hard breaks and wrapping; the whole text is
	// one line.
	SingleLine bool
}

// LineSink receives one laid-out line. x and y are the top-left corner of
// the line box, start is the byte offset of the line within the laid-out
// text, and metrics holds the shaped glyphs and width of the line.
type LineSink func(line string, x, y float64, start int, metrics shape.TextMetrics)

const ellipsis = "…"

// LayoutLines lays text out into the box described by opts and feeds the
// resulting lines to sink, top to bottom. It returns the y offset of the
// first line, as chosen by the vertical alignment.
//
// Trailing whitespace never counts toward a line's width. Lines that
// would extend past the bottom of the box are not emitted. Without
// wrapping, a line wider than the box is cut at the last glyph cluster
// that fits; with OverflowElide the cut line is terminated with an
// ellipsis, and once the next line would overflow the box height the
// whole remaining text collapses into the current, elided line.
func LayoutLines(font Font, text string, opts Options, sink LineSink) float64 {
	fontHeight := font.LineHeight()
	wrap := opts.Wrap == WordWrap && !opts.SingleLine
	elide := opts.Overflow == OverflowElide

	startY := 0.0
	switch opts.Vertical {
	case VerticalAlignmentCenter:
		startY = (opts.MaxHeight - textHeight(font, text, opts)) / 2
	case VerticalAlignmentBottom:
		startY = opts.MaxHeight - textHeight(font, text, opts)
	}

	y := startY
	emit := func(line string, start int) {
		line = strings.TrimRight(line, " \t\r")
		m := font.MeasureText(line)
		sink(line, alignX(opts, m.Width), y, start, m)
		y += fontHeight
	}

	lines := splitHardLines(text, opts.SingleLine)
	for li, hl := range lines {
		rest, restStart := hl.text, hl.start
		for {
			if y+fontHeight > opts.MaxHeight {
				return startY
			}
			consumed := len(rest)
			if wrap {
				if n := font.BreakText(rest, opts.MaxWidth); n > 0 && n <= len(rest) {
					consumed = n
				}
			}
			lineText := rest[:consumed]

			moreFollows := consumed < len(rest) || li < len(lines)-1
			if elide && moreFollows && y+2*fontHeight > opts.MaxHeight {
				emit(elideLine(font, rest, opts.MaxWidth), restStart)
				return startY
			}
			if !wrap {
				trimmed := strings.TrimRight(lineText, " \t\r")
				if font.MeasureText(trimmed).Width > opts.MaxWidth {
					if elide {
						lineText = elideLine(font, trimmed, opts.MaxWidth)
					} else {
						lineText = truncateLine(font, trimmed, opts.MaxWidth)
					}
				}
			}

			emit(lineText, restStart)
			if consumed == len(rest) {
				break
			}
			rest = rest[consumed:]
			restStart += consumed
		}
	}
	return startY
}

type hardLine struct {
	text  string
	start int
}

func splitHardLines(text string, single bool) []hardLine {
	if single {
		return []hardLine{{text: text}}
	}
	var out []hardLine
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out = append(out, hardLine{text: text[start:i], start: start})
			start = i + 1
		}
	}
	return append(out, hardLine{text: text[start:], start: start})
}

// textHeight runs the wrapping pass without emitting lines, to know how
// tall the text block is before placing it vertically.
func textHeight(font Font, text string, opts Options) float64 {
	fontHeight := font.LineHeight()
	if opts.SingleLine {
		return fontHeight
	}
	wrap := opts.Wrap == WordWrap
	count := 0
	for _, hl := range splitHardLines(text, false) {
		rest := hl.text
		for {
			consumed := len(rest)
			if wrap {
				if n := font.BreakText(rest, opts.MaxWidth); n > 0 && n <= len(rest) {
					consumed = n
				}
			}
			count++
			if consumed == len(rest) {
				break
			}
			rest = rest[consumed:]
		}
	}
	return float64(count) * fontHeight
}

func alignX(opts Options, lineWidth float64) float64 {
	w := math.Min(opts.MaxWidth, lineWidth)
	switch opts.Horizontal {
	case AlignmentCenter:
		return opts.MaxWidth/2 - w/2
	case AlignmentRight:
		return opts.MaxWidth - w
	}
	return 0
}

// elideLine returns the widest prefix of text that, followed by an
// ellipsis, fits into maxWidth.
func elideLine(font Font, text string, maxWidth float64) string {
	if font.MeasureText(text).Width <= maxWidth {
		return text
	}
	available := maxWidth - font.MeasureText(ellipsis).Width
	if available <= 0 {
		return ellipsis
	}
	if cut := fitPrefix(font, text, available); cut < len(text) {
		return text[:cut] + ellipsis
	}
	return text
}

// truncateLine cuts text after the last glyph cluster that fits maxWidth,
// with no ellipsis appended.
func truncateLine(font Font, text string, maxWidth float64) string {
	return text[:fitPrefix(font, text, maxWidth)]
}

// fitPrefix returns the byte length of the widest prefix of text whose
// measured width stays within available. Cuts happen at glyph cluster
// boundaries.
func fitPrefix(font Font, text string, available float64) int {
	glyphs := font.ShapeText(text)
	width, cut := 0.0, 0
	clusterStart, clusterWidth := 0, 0.0
	for _, g := range glyphs {
		if g.ByteOffset != clusterStart {
			if width+clusterWidth > available {
				return cut
			}
			width += clusterWidth
			cut = g.ByteOffset
			clusterStart = g.ByteOffset
			clusterWidth = 0
		}
		clusterWidth += g.Advance
	}
	if width+clusterWidth <= available {
		return len(text)
	}
	return cut
}
