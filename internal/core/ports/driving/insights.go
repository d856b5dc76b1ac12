package driving

import (
	"context"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
)

// InsightService computes derived views over the indexed collections.
// Views are recomputed per call; nothing is persisted.
type InsightService interface {
	// RelatedComponents returns components co-occurring with name in the
	// same document, ranked by descending count then alphabetically.
	// The named component is never included in its own result. An empty
	// result is not an error.
	RelatedComponents(ctx context.Context, name string) ([]domain.RelatedComponent, error)

	// Patterns returns the curated recommendation for a use case.
	// Returns domain.ErrNotFound for use cases outside the fixed set.
	Patterns(ctx context.Context, useCase string) (*domain.Pattern, error)

	// Stats returns aggregate counts over both collections.
	Stats(ctx context.Context) (*domain.Stats, error)
}

// RefreshService re-derives both collections from the corpus.
type RefreshService interface {
	// Refresh synchronises the corpus from upstream and rebuilds both
	// collections. At most one refresh runs at a time; a second call
	// while one is in flight returns domain.ErrRebuildInProgress.
	// On sync failure the previous collections stay live and queryable.
	Refresh(ctx context.Context) (*domain.RefreshResult, error)
}
