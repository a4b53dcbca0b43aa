// Package formatting provides defensive parsing and string helpers for
// content produced by external model providers.
package formatting

// Truncate shortens s to at most max runes, appending an ellipsis marker
// when content was cut. Used to bound diagnostic samples of provider
// responses before they appear in errors or logs.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max]) + "…"
}
