package driving

import (
	"context"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
)

// DocService answers queries over the documents collection.
// All methods are read-only and safe for concurrent use.
type DocService interface {
	// Search returns ranked documents matching the query after synonym
	// expansion. Order is deterministic for a fixed query and corpus.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.DocumentResult, error)

	// GetBySlug returns the document whose filename stem or alias equals
	// slug. Returns domain.ErrNotFound when no document matches.
	GetBySlug(ctx context.Context, slug string) (*domain.DocumentRecord, error)

	// GetByComponent returns the best-matching component page.
	// Returns domain.ErrNotFound when the component is unknown.
	GetByComponent(ctx context.Context, name string) (*domain.DocumentRecord, error)

	// GetBySection returns all documents in a section, ordered by title.
	GetBySection(ctx context.Context, section string) ([]domain.DocumentRecord, error)

	// GetByUtilityClass returns documents whose utility set contains a
	// class matching token. A trailing "*" makes token a prefix-family
	// pattern; otherwise membership is exact.
	GetByUtilityClass(ctx context.Context, token string) ([]domain.DocumentRecord, error)

	// GetExamples returns code examples from ranked matching documents,
	// truncated to the option limit.
	GetExamples(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.ExampleResult, error)

	// ListSections returns every section with its page count.
	ListSections(ctx context.Context) ([]domain.SectionSummary, error)
}
