//go:build darwin

package fonts

// platformEnumerator lists families shipped with macOS.
func platformEnumerator() FallbackEnumerator {
	families := []string{
		"Helvetica Neue",
		"Helvetica",
	}
	families = append(families, cjkFallbackOrder(currentLocale(),
		"PingFang SC", "PingFang TC", "Hiragino Sans", "Apple SD Gothic Neo")...)
	families = append(families,
		"Geeza Pro",
		"Thonburi",
		"Kohinoor Devanagari",
		"Apple Color Emoji",
		"Apple Symbols",
		"Arial Unicode MS",
	)
	return staticEnumerator{families: families}
}
