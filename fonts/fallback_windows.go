//go:build windows

package fonts

// platformEnumerator lists families shipped with Windows.
func platformEnumerator() FallbackEnumerator {
	families := []string{
		"Segoe UI",
		"Arial",
	}
	families = append(families, cjkFallbackOrder(currentLocale(),
		"Microsoft YaHei", "Microsoft JhengHei", "Yu Gothic UI", "Malgun Gothic")...)
	families = append(families,
		"Segoe UI Historic",
		"Nirmala UI",
		"Leelawadee UI",
		"Segoe UI Emoji",
		"Segoe UI Symbol",
	)
	return staticEnumerator{families: families}
}
