package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/akiross/slint/fontdb"
)

// newRealCache wires a Cache to a real database and shaping context
// seeded with the Go fonts.
func newRealCache(t *testing.T) *Cache {
	t.Helper()
	db := fontdb.New()
	if err := db.LoadFontData(goregular.TTF); err != nil {
		t.Fatalf("loading Go Regular: %v", err)
	}
	if err := db.LoadFontData(gobold.TTF); err != nil {
		t.Fatalf("loading Go Bold: %v", err)
	}
	return NewCache(WithDatabase(db), WithFallbackEnumerator(NewStaticEnumerator()))
}

func TestRealStackResolve(t *testing.T) {
	cache := newRealCache(t)

	regular := cache.ResolveFont(FontRequest{Family: "Go"})
	bold := cache.ResolveFont(FontRequest{Family: "Go", Weight: fontdb.WeightBold})
	if regular == bold {
		t.Error("regular and bold should resolve to distinct faces")
	}
	if regular.Metrics().Upem == 0 {
		t.Error("loaded font should carry metrics")
	}

	// An unregistered family resolves through the sans-serif default.
	if cache.ResolveFont(FontRequest{Family: "Comic Sans"}) != regular {
		t.Error("unknown family should fall back to the Go face")
	}
}

func TestRealStackShaping(t *testing.T) {
	cache := newRealCache(t)
	font := cache.Font(FontRequest{Family: "Go", PixelSize: 16}, 1, "Hello")

	if len(font.Chain()) != 1 {
		t.Fatalf("chain length = %d, want 1", len(font.Chain()))
	}
	if font.Ascent() <= 0 || font.Descent() >= 0 {
		t.Errorf("ascent %v / descent %v have unexpected signs",
			font.Ascent(), font.Descent())
	}

	m := font.MeasureText("Hello")
	if m.Width <= 0 || len(m.Glyphs) != 5 {
		t.Errorf("MeasureText = width %v, %d glyphs", m.Width, len(m.Glyphs))
	}

	// Scale factor 2 doubles the measured width.
	big := cache.Font(FontRequest{Family: "Go", PixelSize: 16}, 2, "Hello")
	if got := big.MeasureText("Hello").Width; got < 1.9*m.Width || got > 2.1*m.Width {
		t.Errorf("width at scale 2 = %v, want about %v", got, 2*m.Width)
	}
}
