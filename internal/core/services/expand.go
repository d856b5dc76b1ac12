package services

import (
	"strings"

	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
	"github.com/custodia-labs/bootdocs/internal/logger"
)

// expandQuery turns free text into an FTS5 expression with synonym
// expansion. The original terms form one AND group; each synonym is
// OR-ed onto it, so expansion is additive and literal-term matches are
// never lost. Every term is quoted, which also neutralises malformed
// operator syntax in the input.
func expandQuery(catalog driven.Catalog, query string) string {
	tokens := queryTokens(query)
	if len(tokens) == 0 {
		return ""
	}

	quoted := make([]string, len(tokens))
	original := make(map[string]struct{}, len(tokens))
	for i, t := range tokens {
		quoted[i] = `"` + t + `"`
		original[t] = struct{}{}
	}

	parts := make([]string, 0, len(tokens)+4)
	if len(quoted) == 1 {
		parts = append(parts, quoted[0])
	} else {
		parts = append(parts, "("+strings.Join(quoted, " ")+")")
	}

	if catalog != nil {
		seen := make(map[string]struct{})
		for _, t := range tokens {
			for _, syn := range catalog.Synonyms(t) {
				syn = strings.ToLower(syn)
				if _, dup := original[syn]; dup {
					continue
				}
				if _, dup := seen[syn]; dup {
					continue
				}
				seen[syn] = struct{}{}
				parts = append(parts, `"`+syn+`"`)
			}
		}
		if len(seen) > 0 {
			logger.Debug("Expanded query %q with %d synonym(s)", query, len(seen))
		}
	}

	return strings.Join(parts, " OR ")
}

// queryTokens lower-cases the query and strips characters with FTS5
// operator meaning, leaving bare searchable tokens.
func queryTokens(query string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '(', ')', ':', '^', '*', ',':
			return ' '
		}
		return r
	}, strings.ToLower(query))
	return strings.Fields(cleaned)
}
