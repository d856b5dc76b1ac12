package sqlite

import "strings"

// SafeMatchQuery rewrites free text into an FTS5 expression that cannot
// fail to parse: every token is double-quoted and tokens are OR-ed.
// Used as the degradation path for queries the FTS parser rejects, so a
// stray quote or operator falls back to a literal-token search.
func SafeMatchQuery(query string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '(', ')', ':', '^', '*':
			return ' '
		}
		return r
	}, query)

	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return ""
	}

	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = `"` + t + `"`
	}
	return strings.Join(quoted, " OR ")
}
