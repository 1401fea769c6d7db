package shape

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/segmenter"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/akiross/slint"
)

// registeredFont is one parsed font and its registration-time metrics.
// The *font.Font is read-only and safe for concurrent use; font.Face is
// not, so faces are created per operation.
type registeredFont struct {
	font    *font.Font
	metrics Metrics
}

// Context owns parsed fonts and shaping state.
//
// Context is safe for concurrent use. HarfbuzzShaper and segmenter.Segmenter
// carry internal buffers and are not, so both are pooled.
type Context struct {
	mu    sync.RWMutex
	fonts []registeredFont

	shaperPool sync.Pool
	segPool    sync.Pool

	memo *memoCache
}

// NewContext creates an empty shaping context.
func NewContext() *Context {
	return &Context{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		segPool: sync.Pool{
			New: func() any { return new(segmenter.Segmenter) },
		},
		memo: newMemoCache(defaultMemoCapacity),
	}
}

// RegisterFace parses the face at the given collection index of data and
// returns its FontID. Index 0 addresses plain TTF/OTF files.
//
// The Context keeps a reference to the parsed font forever; callers are
// expected to deduplicate registrations of the same face.
func (c *Context) RegisterFace(data []byte, index int) (FontID, error) {
	fnt, err := parseFaceAt(data, index)
	if err != nil {
		return 0, err
	}

	face := font.NewFace(fnt)
	metrics := Metrics{Upem: fnt.Upem()}
	if ext, ok := face.FontHExtents(); ok {
		metrics.Ascent = float64(ext.Ascender)
		metrics.Descent = float64(ext.Descender)
		metrics.LineGap = float64(ext.LineGap)
	} else {
		// No usable hhea/OS.2 metrics. Treat the whole em as ascent so
		// text is at least positioned sanely.
		metrics.Ascent = float64(metrics.Upem)
	}

	c.mu.Lock()
	id := FontID(len(c.fonts))
	c.fonts = append(c.fonts, registeredFont{font: fnt, metrics: metrics})
	c.mu.Unlock()

	slint.Logger().Debug("shape: registered face",
		"font", uint32(id), "upem", metrics.Upem)
	return id, nil
}

// parseFaceAt parses one face out of data, which may be a single font or a
// TrueType collection.
func parseFaceAt(data []byte, index int) (*font.Font, error) {
	if len(data) >= 4 && binary.BigEndian.Uint32(data) == 0x74746366 { // 'ttcf'
		faces, err := font.ParseTTC(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("shape: failed to parse collection: %w", err)
		}
		if index < 0 || index >= len(faces) {
			return nil, fmt.Errorf("%w: %d of %d", ErrFaceIndex, index, len(faces))
		}
		return faces[index].Font, nil
	}
	if index != 0 {
		return nil, fmt.Errorf("%w: %d in a single font", ErrFaceIndex, index)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("shape: failed to parse font: %w", err)
	}
	return face.Font, nil
}

// FaceMetrics returns the design-unit metrics of a registered font.
func (c *Context) FaceMetrics(id FontID) (Metrics, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if int(id) >= len(c.fonts) {
		return Metrics{}, ErrUnknownFont
	}
	return c.fonts[id].metrics, nil
}

// HasGlyph reports whether the font maps r in its character map.
func (c *Context) HasGlyph(id FontID, r rune) bool {
	fnt := c.fontAt(id)
	if fnt == nil {
		return false
	}
	_, ok := font.NewFace(fnt).NominalGlyph(r)
	return ok
}

// GlyphForChar returns the single glyph for r at the given pixel size,
// without shaping and without letter spacing. The second return value is
// false when the font does not cover r.
func (c *Context) GlyphForChar(id FontID, r rune, pixelSize float64) (Glyph, bool) {
	c.mu.RLock()
	if int(id) >= len(c.fonts) {
		c.mu.RUnlock()
		return Glyph{}, false
	}
	reg := c.fonts[id]
	c.mu.RUnlock()

	face := font.NewFace(reg.font)
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return Glyph{}, false
	}
	advance := float64(face.HorizontalAdvance(gid)) * pixelSize / float64(reg.metrics.Upem)
	return Glyph{Font: id, GID: uint32(gid), Advance: advance}, true
}

// ShapeText shapes text with the given parameters. Results are memoized.
//
// The text is split into runs of consecutive characters resolving to the
// same font, and each run is shaped independently with HarfBuzz. Glyph
// byte offsets refer to the original string.
func (c *Context) ShapeText(params Params, text string) []Glyph {
	if text == "" || len(params.Fonts) == 0 {
		return nil
	}
	return c.memo.getOrCreate(params.key(text), func() []Glyph {
		return c.shapeUncached(params, text)
	})
}

// MeasureText shapes text and sums the glyph advances.
func (c *Context) MeasureText(params Params, text string) TextMetrics {
	glyphs := c.ShapeText(params, text)
	width := 0.0
	for _, g := range glyphs {
		width += g.Advance
	}
	return TextMetrics{Width: width, Glyphs: glyphs}
}

func (c *Context) shapeUncached(params Params, text string) []Glyph {
	runes := []rune(text)

	// Byte offset of each rune within text.
	byteOff := make([]int, len(runes)+1)
	for i, r := range runes {
		byteOff[i+1] = byteOff[i] + len(string(r))
	}

	fonts := c.selectFonts(params.Fonts, runes)

	faces := make(map[FontID]*font.Face, len(params.Fonts))
	faceFor := func(id FontID) *font.Face {
		if f, ok := faces[id]; ok {
			return f
		}
		fnt := c.fontAt(id)
		if fnt == nil {
			return nil
		}
		f := font.NewFace(fnt)
		faces[id] = f
		return f
	}

	shaper := c.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer c.shaperPool.Put(shaper)

	var out []Glyph
	for start := 0; start < len(runes); {
		end := start + 1
		for end < len(runes) && fonts[end] == fonts[start] {
			end++
		}
		face := faceFor(fonts[start])
		if face == nil {
			start = end
			continue
		}

		output := shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  start,
			RunEnd:    end,
			Direction: di.DirectionLTR,
			Face:      face,
			Size:      fixed.Int26_6(params.PixelSize * 64),
			Script:    runScript(runes[start:end]),
			Language:  language.NewLanguage("en"),
		})

		for i, g := range output.Glyphs {
			glyph := Glyph{
				Font:       fonts[start],
				GID:        uint32(g.GlyphID),
				OffsetX:    fixedToFloat(g.XOffset),
				OffsetY:    fixedToFloat(g.YOffset),
				Advance:    fixedToFloat(g.Advance),
				ByteOffset: byteOff[g.TextIndex()],
			}
			// Letter spacing applies per cluster, after its last glyph.
			if params.LetterSpacing != 0 {
				last := i == len(output.Glyphs)-1
				if last || output.Glyphs[i+1].TextIndex() != g.TextIndex() {
					glyph.Advance += params.LetterSpacing
				}
			}
			out = append(out, glyph)
		}
		start = end
	}
	return out
}

// selectFonts resolves, per rune, the first font covering it. Whitespace
// and control characters inherit the selection of their neighbors so runs
// are not split at spaces; characters nothing covers use the primary font.
func (c *Context) selectFonts(candidates []FontID, runes []rune) []FontID {
	const inherit = FontID(^uint32(0))

	out := make([]FontID, len(runes))
	for i, r := range runes {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			out[i] = inherit
			continue
		}
		out[i] = candidates[0]
		for _, id := range candidates {
			if c.HasGlyph(id, r) {
				out[i] = id
				break
			}
		}
	}
	for i := 1; i < len(runes); i++ {
		if out[i] == inherit {
			out[i] = out[i-1]
		}
	}
	for i := len(runes) - 2; i >= 0; i-- {
		if out[i] == inherit {
			out[i] = out[i+1]
		}
	}
	if len(runes) > 0 && out[0] == inherit { // all-whitespace text
		for i := range out {
			out[i] = candidates[0]
		}
	}
	return out
}

func (c *Context) fontAt(id FontID) *font.Font {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if int(id) >= len(c.fonts) {
		return nil
	}
	return c.fonts[id].font
}

// runScript returns the script of the first non-space rune of a run,
// defaulting to Latin.
func runScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// MemoStats returns the cumulative hit and miss counts of the shaping memo.
func (c *Context) MemoStats() (hits, misses uint64) {
	return c.memo.stats()
}
