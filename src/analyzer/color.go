package analyzer

import "strings"

// NormalizeColor canonicalises a free-text coat colour into lowercase segments
// joined by "_". Both "," and "_" are accepted as separators and empty
// segments are dropped ("Orange, White" -> "orange_white"). Absent or blank
// input normalises to "unknown".
func NormalizeColor(catColor string) string {
	if catColor == "" {
		return "unknown"
	}

	parts := strings.Split(strings.ReplaceAll(catColor, ",", "_"), "_")
	colors := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			colors = append(colors, p)
		}
	}

	if len(colors) == 0 {
		return "unknown"
	}
	return strings.Join(colors, "_")
}
