//go:build !linux && !darwin && !windows

package fonts

// platformEnumerator falls back to widely available family names on
// platforms without a curated list.
func platformEnumerator() FallbackEnumerator {
	families := []string{
		"Noto Sans",
		"DejaVu Sans",
		"Arial",
		"Helvetica",
	}
	families = append(families, cjkFallbackOrder(currentLocale(),
		"Noto Sans CJK SC", "Noto Sans CJK TC", "Noto Sans CJK JP", "Noto Sans CJK KR")...)
	return staticEnumerator{families: families}
}
