package driving

import (
	"context"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
)

// TemplateService answers queries over the templates collection.
type TemplateService interface {
	// Search returns ranked templates matching the query, optionally
	// restricted to opts.Category.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.TemplateResult, error)

	// GetByName returns one template. Returns domain.ErrNotFound when
	// the name is unknown.
	GetByName(ctx context.Context, name string) (*domain.TemplateRecord, error)

	// ListCategories returns every category with counts and member names.
	ListCategories(ctx context.Context) ([]domain.CategorySummary, error)

	// GetPreview extracts a bounded markup fragment of the named
	// template. The fragment ends on a structural tag boundary.
	GetPreview(ctx context.Context, name string, section domain.PreviewSection) (*domain.TemplatePreview, error)
}
