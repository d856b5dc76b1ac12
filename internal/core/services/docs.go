package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driving"
	"github.com/custodia-labs/bootdocs/internal/logger"
)

// Ensure DocsService implements the interface.
var _ driving.DocService = (*DocsService)(nil)

// DefaultSearchLimit applies when the caller passes no limit.
const DefaultSearchLimit = 10

// DocsService is the query engine over the documents collection.
type DocsService struct {
	index   driven.DocumentIndex
	catalog driven.Catalog
}

// NewDocsService creates a new documents query service.
func NewDocsService(index driven.DocumentIndex, catalog driven.Catalog) *DocsService {
	return &DocsService{
		index:   index,
		catalog: catalog,
	}
}

// Search performs ranked full-text search with synonym expansion.
func (s *DocsService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.DocumentResult, error) {
	logger.Section("Document Search")
	logger.Debug("Query: %q", query)

	match := expandQuery(s.catalog, query)
	if match == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.DocumentResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	results, err := s.index.Search(ctx, match, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	logger.Debug("Results: %d", len(results))
	return results, nil
}

// GetBySlug returns the document whose stem or alias equals slug.
func (s *DocsService) GetBySlug(ctx context.Context, slug string) (*domain.DocumentRecord, error) {
	return s.index.GetBySlug(ctx, slug)
}

// GetByComponent returns the best-matching component page. The lookup
// normalises the name and tolerates a singular/plural mismatch, so
// "button" still finds the buttons page.
func (s *DocsService) GetByComponent(ctx context.Context, name string) (*domain.DocumentRecord, error) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	for _, candidate := range componentCandidates(name) {
		rec, err := s.index.GetByComponent(ctx, candidate)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return nil, domain.ErrNotFound
}

// componentCandidates lists lookup names in preference order: the exact
// name first, then the opposite plural form.
func componentCandidates(name string) []string {
	candidates := []string{name}
	if trimmed, ok := strings.CutSuffix(name, "s"); ok {
		candidates = append(candidates, trimmed)
	} else {
		candidates = append(candidates, name+"s")
	}
	return candidates
}

// GetBySection returns all documents in a section, ordered by title.
func (s *DocsService) GetBySection(ctx context.Context, section string) ([]domain.DocumentRecord, error) {
	return s.index.GetBySection(ctx, strings.ToLower(strings.TrimSpace(section)))
}

// GetByUtilityClass returns documents using the utility class. A
// trailing "*" turns the token into a prefix-family pattern; plain
// tokens require exact set membership, so "d-flex" never matches
// "d-flex-sm" by substring accident.
func (s *DocsService) GetByUtilityClass(ctx context.Context, token string) ([]domain.DocumentRecord, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrInvalidInput
	}

	if prefix, ok := strings.CutSuffix(token, "*"); ok {
		prefix = strings.TrimSuffix(prefix, "-")
		if prefix == "" {
			return nil, domain.ErrInvalidInput
		}
		return s.index.GetByUtilityPrefix(ctx, prefix)
	}
	return s.index.GetByUtilityClass(ctx, token)
}

// GetExamples returns code examples from ranked matching documents.
// Ranking matches Search; the index only considers documents that
// carry examples, so a rich example page deep in the ranking is never
// crowded out by example-less hits.
func (s *DocsService) GetExamples(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.ExampleResult, error) {
	logger.Section("Example Search")

	match := expandQuery(s.catalog, query)
	if match == "" {
		return []domain.ExampleResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	hits, err := s.index.SearchExamples(ctx, match, limit)
	if err != nil {
		return nil, fmt.Errorf("search examples: %w", err)
	}

	results := make([]domain.ExampleResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, domain.ExampleResult{
			Filepath:      hit.Record.Filepath,
			Title:         hit.Record.Title,
			Section:       hit.Record.Section,
			ComponentName: hit.Record.ComponentName,
			URL:           hit.Record.URL,
			Examples:      hit.Record.CodeExamples,
		})
	}
	return results, nil
}

// ListSections returns every section with its page count.
func (s *DocsService) ListSections(ctx context.Context) ([]domain.SectionSummary, error) {
	return s.index.ListSections(ctx)
}
