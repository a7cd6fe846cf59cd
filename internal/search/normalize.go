package search

import "strings"

// normalize lowercases a name and collapses the separators that appear
// in asset identifiers and user input (hyphens, underscores, slashes,
// apostrophes, runs of whitespace) into single spaces, so "Sheet Metal
// Wall" and "sheet-metal-wall" compare equal.
func normalize(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}

	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}

func tokenize(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}
