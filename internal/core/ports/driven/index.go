package driven

import (
	"context"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
)

// DocumentIndex is the searchable documents collection.
//
// Reads may run concurrently with each other and with a rebuild;
// readers observe either the pre-rebuild or post-rebuild collection in
// full, never an interleaving. Rebuild replaces the collection
// wholesale and is idempotent for unchanged input.
type DocumentIndex interface {
	// Rebuild replaces every record in the collection. An empty slice
	// yields an empty, queryable collection.
	Rebuild(ctx context.Context, records []domain.DocumentRecord) error

	// Search runs ranked full-text search. The query has already been
	// synonym-expanded by the caller. Ties break on filepath.
	Search(ctx context.Context, query string, limit int) ([]domain.DocumentResult, error)

	// SearchExamples runs ranked full-text search restricted to
	// documents carrying at least one code example. Ranking and tie
	// breaks match Search.
	SearchExamples(ctx context.Context, query string, limit int) ([]domain.DocumentResult, error)

	// GetBySlug matches the filename stem or any alias exactly.
	GetBySlug(ctx context.Context, slug string) (*domain.DocumentRecord, error)

	// GetByComponent returns the page for one component name.
	GetByComponent(ctx context.Context, name string) (*domain.DocumentRecord, error)

	// GetBySection returns all pages of a section ordered by title.
	GetBySection(ctx context.Context, section string) ([]domain.DocumentRecord, error)

	// GetByUtilityClass returns pages whose utility set contains the
	// exact token, ordered by filepath.
	GetByUtilityClass(ctx context.Context, token string) ([]domain.DocumentRecord, error)

	// GetByUtilityPrefix returns pages with any utility token sharing
	// the given prefix, ordered by filepath.
	GetByUtilityPrefix(ctx context.Context, prefix string) ([]domain.DocumentRecord, error)

	// ListSections returns section names with counts, ordered by name.
	ListSections(ctx context.Context) ([]domain.SectionSummary, error)

	// All returns every record, ordered by filepath. Used by derived
	// views that scan the whole collection.
	All(ctx context.Context) ([]domain.DocumentRecord, error)

	// Count returns the number of indexed documents.
	Count(ctx context.Context) (int, error)
}

// TemplateIndex is the searchable templates collection.
type TemplateIndex interface {
	// Rebuild replaces every record in the collection.
	Rebuild(ctx context.Context, records []domain.TemplateRecord) error

	// Search runs ranked full-text search, optionally filtered to one
	// category. Ties break on name.
	Search(ctx context.Context, query string, category domain.Category, limit int) ([]domain.TemplateResult, error)

	// GetByName matches the template name exactly.
	GetByName(ctx context.Context, name string) (*domain.TemplateRecord, error)

	// ListCategories returns category counts and members, ordered by
	// category then name.
	ListCategories(ctx context.Context) ([]domain.CategorySummary, error)

	// All returns every record, ordered by name.
	All(ctx context.Context) ([]domain.TemplateRecord, error)

	// Count returns the number of indexed templates.
	Count(ctx context.Context) (int, error)
}
