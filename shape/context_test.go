package shape

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func newTestContext(t *testing.T) (*Context, FontID) {
	t.Helper()
	ctx := NewContext()
	id, err := ctx.RegisterFace(goregular.TTF, 0)
	if err != nil {
		t.Fatalf("RegisterFace() error = %v", err)
	}
	return ctx, id
}

func TestRegisterFace(t *testing.T) {
	ctx, id := newTestContext(t)

	m, err := ctx.FaceMetrics(id)
	if err != nil {
		t.Fatalf("FaceMetrics() error = %v", err)
	}
	if m.Upem == 0 {
		t.Error("Upem should be non-zero")
	}
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent >= 0 {
		t.Errorf("Descent = %v, want < 0", m.Descent)
	}
}

func TestRegisterFaceErrors(t *testing.T) {
	ctx := NewContext()

	if _, err := ctx.RegisterFace([]byte("not a font"), 0); err == nil {
		t.Error("expected error for garbage data")
	}
	if _, err := ctx.RegisterFace(goregular.TTF, 3); !errors.Is(err, ErrFaceIndex) {
		t.Errorf("error = %v, want ErrFaceIndex", err)
	}
}

func TestFaceMetricsUnknown(t *testing.T) {
	ctx := NewContext()
	if _, err := ctx.FaceMetrics(FontID(7)); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("error = %v, want ErrUnknownFont", err)
	}
}

func TestHasGlyph(t *testing.T) {
	ctx, id := newTestContext(t)

	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"latin letter", 'A', true},
		{"digit", '7', true},
		{"cjk ideograph", '世', false},
		{"unknown font id", 'A', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fid := id
			if tt.name == "unknown font id" {
				fid = FontID(42)
			}
			if got := ctx.HasGlyph(fid, tt.r); got != tt.want {
				t.Errorf("HasGlyph(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestGlyphForChar(t *testing.T) {
	ctx, id := newTestContext(t)

	g12, ok := ctx.GlyphForChar(id, 'm', 12)
	if !ok {
		t.Fatal("GlyphForChar('m') not found")
	}
	if g12.Advance <= 0 {
		t.Errorf("Advance = %v, want > 0", g12.Advance)
	}

	// The advance scales linearly with the pixel size.
	g24, _ := ctx.GlyphForChar(id, 'm', 24)
	if math.Abs(g24.Advance-2*g12.Advance) > 1e-9 {
		t.Errorf("advance at 24px = %v, want %v", g24.Advance, 2*g12.Advance)
	}

	if _, ok := ctx.GlyphForChar(id, '世', 12); ok {
		t.Error("GlyphForChar should report uncovered characters")
	}
}

func TestShapeText(t *testing.T) {
	ctx, id := newTestContext(t)
	params := Params{Fonts: []FontID{id}, PixelSize: 16}

	glyphs := ctx.ShapeText(params, "Hello")
	if len(glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(glyphs))
	}
	for i, g := range glyphs {
		if g.Font != id {
			t.Errorf("glyph %d font = %d, want %d", i, g.Font, id)
		}
		if g.ByteOffset != i {
			t.Errorf("glyph %d byte offset = %d, want %d", i, g.ByteOffset, i)
		}
		if g.Advance <= 0 {
			t.Errorf("glyph %d advance = %v, want > 0", i, g.Advance)
		}
	}
}

func TestShapeTextEmpty(t *testing.T) {
	ctx, id := newTestContext(t)
	if got := ctx.ShapeText(Params{Fonts: []FontID{id}, PixelSize: 16}, ""); got != nil {
		t.Errorf("shaping empty text = %v, want nil", got)
	}
}

func TestShapeTextMultiByte(t *testing.T) {
	ctx, id := newTestContext(t)
	params := Params{Fonts: []FontID{id}, PixelSize: 16}

	// 'é' is two bytes in UTF-8; offsets must be byte-based.
	glyphs := ctx.ShapeText(params, "éa")
	if len(glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(glyphs))
	}
	if glyphs[0].ByteOffset != 0 || glyphs[1].ByteOffset != 2 {
		t.Errorf("byte offsets = %d, %d, want 0, 2",
			glyphs[0].ByteOffset, glyphs[1].ByteOffset)
	}
}

func TestShapeTextLetterSpacing(t *testing.T) {
	ctx, id := newTestContext(t)
	plain := Params{Fonts: []FontID{id}, PixelSize: 16}
	spaced := Params{Fonts: []FontID{id}, PixelSize: 16, LetterSpacing: 3}

	base := ctx.MeasureText(plain, "Hello").Width
	wide := ctx.MeasureText(spaced, "Hello").Width
	if math.Abs(wide-(base+5*3)) > 1e-9 {
		t.Errorf("spaced width = %v, want %v", wide, base+15)
	}
}

func TestShapeTextMemoized(t *testing.T) {
	ctx, id := newTestContext(t)
	params := Params{Fonts: []FontID{id}, PixelSize: 16}

	ctx.ShapeText(params, "memoized")
	_, missesBefore := ctx.MemoStats()
	ctx.ShapeText(params, "memoized")
	hits, misses := ctx.MemoStats()

	if misses != missesBefore {
		t.Errorf("second shape missed the memo (misses %d -> %d)", missesBefore, misses)
	}
	if hits == 0 {
		t.Error("second shape should be a memo hit")
	}

	// A different pixel size is a different entry.
	ctx.ShapeText(Params{Fonts: []FontID{id}, PixelSize: 17}, "memoized")
	_, misses2 := ctx.MemoStats()
	if misses2 != misses+1 {
		t.Errorf("distinct size should miss (misses %d -> %d)", misses, misses2)
	}
}

func TestMeasureText(t *testing.T) {
	ctx, id := newTestContext(t)
	params := Params{Fonts: []FontID{id}, PixelSize: 16}

	m := ctx.MeasureText(params, "abc")
	sum := 0.0
	for _, g := range m.Glyphs {
		sum += g.Advance
	}
	if math.Abs(m.Width-sum) > 1e-9 {
		t.Errorf("Width = %v, want sum of advances %v", m.Width, sum)
	}

	// Width grows with the text.
	if ctx.MeasureText(params, "abcabc").Width <= m.Width {
		t.Error("longer text should measure wider")
	}
}

func TestBreakText(t *testing.T) {
	ctx, id := newTestContext(t)
	params := Params{Fonts: []FontID{id}, PixelSize: 16}

	text := "hello world"
	full := ctx.MeasureText(params, text).Width
	hello := ctx.MeasureText(params, "hello").Width

	t.Run("everything fits", func(t *testing.T) {
		if got := ctx.BreakText(params, text, full+1); got != len(text) {
			t.Errorf("BreakText = %d, want %d", got, len(text))
		}
	})

	t.Run("breaks at the space", func(t *testing.T) {
		// "hello " is consumed; its trailing space does not count
		// against the limit.
		if got := ctx.BreakText(params, text, hello+0.5); got != len("hello ") {
			t.Errorf("BreakText = %d, want %d", got, len("hello "))
		}
	})

	t.Run("unbreakable word still advances", func(t *testing.T) {
		got := ctx.BreakText(params, "unbreakable", 1)
		if got < 1 || got >= len("unbreakable") {
			t.Errorf("BreakText = %d, want a proper non-empty prefix", got)
		}
	})

	t.Run("mandatory break wins", func(t *testing.T) {
		if got := ctx.BreakText(params, "ab\ncd", full*10); got != len("ab\n") {
			t.Errorf("BreakText = %d, want %d", got, len("ab\n"))
		}
	})

	t.Run("empty text", func(t *testing.T) {
		if got := ctx.BreakText(params, "", 100); got != 0 {
			t.Errorf("BreakText = %d, want 0", got)
		}
	})
}
