package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driving"
	"github.com/custodia-labs/bootdocs/internal/extract/templates"
	"github.com/custodia-labs/bootdocs/internal/logger"
)

var _ driving.InsightService = (*InsightsService)(nil)

// TopComponentCount bounds the component ranking in Stats.
const TopComponentCount = 10

// InsightsService computes derived views over both collections. Every
// view is recomputed from the live index on each call.
type InsightsService struct {
	docs      driven.DocumentIndex
	templates driven.TemplateIndex
	catalog   driven.Catalog
}

// NewInsightsService creates a new derived-view service.
func NewInsightsService(docs driven.DocumentIndex, tmpl driven.TemplateIndex, catalog driven.Catalog) *InsightsService {
	return &InsightsService{
		docs:      docs,
		templates: tmpl,
		catalog:   catalog,
	}
}

// RelatedComponents ranks components that appear in the same documents
// as name. A document contributes its own component page identity plus
// every component detected in its example markup. The queried component
// is excluded from its own neighbours.
func (s *InsightsService) RelatedComponents(ctx context.Context, name string) ([]domain.RelatedComponent, error) {
	logger.Section("Related Components")

	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	all, err := s.docs.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}

	counts := make(map[string]int)
	for _, doc := range all {
		present := documentComponents(doc)
		if _, ok := present[name]; !ok {
			continue
		}
		for other := range present {
			if other != name {
				counts[other]++
			}
		}
	}

	related := make([]domain.RelatedComponent, 0, len(counts))
	for c, n := range counts {
		related = append(related, domain.RelatedComponent{Name: c, Count: n})
	}
	sort.Slice(related, func(i, j int) bool {
		if related[i].Count != related[j].Count {
			return related[i].Count > related[j].Count
		}
		return related[i].Name < related[j].Name
	})

	logger.Debug("Component %q: %d neighbours", name, len(related))
	return related, nil
}

// documentComponents is the co-occurrence set of one document: its page
// component plus everything detected inside its example markup.
func documentComponents(doc domain.DocumentRecord) map[string]struct{} {
	present := make(map[string]struct{})
	if doc.ComponentName != "" {
		present[doc.ComponentName] = struct{}{}
	}
	for _, ex := range doc.CodeExamples {
		for _, c := range templates.DetectInMarkup(ex.Content) {
			present[c] = struct{}{}
		}
	}
	return present
}

// Patterns returns the curated recommendation for a use case.
func (s *InsightsService) Patterns(ctx context.Context, useCase string) (*domain.Pattern, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(useCase)), " ", "-")
	pattern, ok := s.catalog.Pattern(key)
	if !ok {
		return nil, fmt.Errorf("%w: unknown use case %q (known: %s)",
			domain.ErrNotFound, useCase, strings.Join(s.catalog.UseCases(), ", "))
	}
	return &pattern, nil
}

// Stats aggregates counts over both collections.
func (s *InsightsService) Stats(ctx context.Context) (*domain.Stats, error) {
	logger.Section("Statistics")

	docCount, err := s.docs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}
	sections, err := s.docs.ListSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	allDocs, err := s.docs.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}
	allTemplates, err := s.templates.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan templates: %w", err)
	}

	stats := &domain.Stats{
		TotalDocuments:        docCount,
		BySection:             sections,
		TopComponents:         topComponents(allDocs, TopComponentCount),
		UseCases:              s.catalog.UseCases(),
		TotalTemplates:        len(allTemplates),
		TemplatesByCategory:   make(map[domain.Category]int),
		TemplatesByComplexity: make(map[domain.Complexity]int),
	}
	for _, t := range allTemplates {
		stats.TemplatesByCategory[t.Category]++
		stats.TemplatesByComplexity[t.Complexity]++
	}
	return stats, nil
}

// topComponents ranks component pages by documentation weight: utility
// token count plus example count. Ties break alphabetically.
func topComponents(docs []domain.DocumentRecord, limit int) []domain.ComponentUsage {
	usage := make([]domain.ComponentUsage, 0, len(docs))
	for _, doc := range docs {
		if doc.ComponentName == "" {
			continue
		}
		usage = append(usage, domain.ComponentUsage{
			Name:   doc.ComponentName,
			Weight: len(doc.UtilityClasses) + len(doc.CodeExamples),
		})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Weight != usage[j].Weight {
			return usage[i].Weight > usage[j].Weight
		}
		return usage[i].Name < usage[j].Name
	})
	if len(usage) > limit {
		usage = usage[:limit]
	}
	return usage
}
