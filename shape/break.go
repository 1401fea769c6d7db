package shape

import (
	"strings"

	"github.com/go-text/typesetting/segmenter"
)

// BreakText returns the number of bytes of text that fit into available
// pixels, cut at the largest UAX#14 break opportunity.
//
// Whole break segments are consumed while they fit; trailing whitespace of
// the candidate segment does not count against the limit. When not even
// the first segment fits, the cut moves inside it and at least one cluster
// is consumed, so a caller looping over BreakText always makes progress.
// A mandatory break ends the line early.
func (c *Context) BreakText(params Params, text string, available float64) int {
	if text == "" {
		return 0
	}

	runes := []rune(text)
	seg := c.segPool.Get().(*segmenter.Segmenter)
	defer c.segPool.Put(seg)
	seg.Init(runes)

	consumed := 0 // bytes
	width := 0.0
	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		segText := string(line.Text)

		fitWidth := width + c.MeasureText(params, strings.TrimRight(segText, " \t\r\n")).Width
		if fitWidth > available {
			if consumed == 0 {
				return c.clusterPrefix(params, segText, available)
			}
			return consumed
		}

		width += c.MeasureText(params, segText).Width
		consumed += len(segText)
		if line.IsMandatoryBreak {
			return consumed
		}
	}
	return consumed
}

// clusterPrefix returns the byte length of the widest glyph-cluster prefix
// of text fitting into available pixels, never less than one cluster.
func (c *Context) clusterPrefix(params Params, text string, available float64) int {
	glyphs := c.ShapeText(params, text)
	if len(glyphs) == 0 {
		return len(text)
	}

	width := 0.0
	cut := 0
	clusterWidth := 0.0
	clusterStart := 0
	flush := func(end int) bool {
		if cut > 0 && width+clusterWidth > available {
			return false
		}
		width += clusterWidth
		cut = end
		return true
	}
	for _, g := range glyphs {
		if g.ByteOffset != clusterStart {
			if !flush(g.ByteOffset) {
				return cut
			}
			clusterStart = g.ByteOffset
			clusterWidth = 0
		}
		clusterWidth += g.Advance
	}
	flush(len(text))
	return cut
}
