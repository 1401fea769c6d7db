package fonts

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// staticEnumerator serves a fixed family list regardless of request or text.
type staticEnumerator struct{ families []string }

func (e staticEnumerator) FallbackFamilies(FontRequest, string) []string { return e.families }

// NewStaticEnumerator returns an enumerator over a fixed family list.
func NewStaticEnumerator(families ...string) FallbackEnumerator {
	return staticEnumerator{families: families}
}

// cjkFallbackOrder orders the CJK fallback families so the user's locale
// comes first. Han glyph shapes differ between Chinese, Japanese and
// Korean typography, and the first covering font wins.
func cjkFallbackOrder(locale string, sc, tc, jp, kr string) []string {
	out := []string{sc, tc, jp, kr}
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return out
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ja":
		out = []string{jp, sc, tc, kr}
	case "ko":
		out = []string{kr, jp, sc, tc}
	case "zh":
		if script, _ := tag.Script(); script.String() == "Hant" {
			out = []string{tc, sc, jp, kr}
		}
	}
	return out
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

func currentLocale() string {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(env); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return ""
}
