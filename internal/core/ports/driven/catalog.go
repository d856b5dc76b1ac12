package driven

import "github.com/custodia-labs/bootdocs/internal/core/domain"

// TemplateMeta is the curated metadata for one known template name.
type TemplateMeta struct {
	Category    domain.Category
	Description string
	Complexity  domain.Complexity
	Components  []string
}

// Catalog exposes the static configuration tables: template metadata,
// use-case patterns and query synonyms. The tables are external data,
// fixed at build time, never derived from the corpus.
type Catalog interface {
	// TemplateMeta returns curated metadata for a template name.
	TemplateMeta(name string) (TemplateMeta, bool)

	// Pattern returns the recommendation for a use-case identifier.
	Pattern(useCase string) (domain.Pattern, bool)

	// UseCases lists every known use-case identifier, sorted.
	UseCases() []string

	// Synonyms returns additional search terms for an exact token,
	// matched case-insensitively. Nil when the token has none.
	Synonyms(token string) []string
}
