//go:build linux

package fonts

// platformEnumerator lists families commonly shipped by Linux
// distributions, broad-coverage Noto faces last.
func platformEnumerator() FallbackEnumerator {
	families := []string{
		"Noto Sans",
		"DejaVu Sans",
		"Liberation Sans",
		"FreeSans",
	}
	families = append(families, cjkFallbackOrder(currentLocale(),
		"Noto Sans CJK SC", "Noto Sans CJK TC", "Noto Sans CJK JP", "Noto Sans CJK KR")...)
	families = append(families,
		"Noto Sans Arabic",
		"Noto Sans Hebrew",
		"Noto Sans Devanagari",
		"Noto Sans Thai",
		"Noto Color Emoji",
		"Noto Sans Symbols",
		"Noto Sans Symbols 2",
	)
	return staticEnumerator{families: families}
}
