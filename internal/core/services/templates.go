package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driving"
	"github.com/custodia-labs/bootdocs/internal/logger"
)

var _ driving.TemplateService = (*TemplatesService)(nil)

// FullPreviewMaxLines caps the "full" preview section.
const FullPreviewMaxLines = 500

// TemplatesService is the query engine over the templates collection.
type TemplatesService struct {
	index   driven.TemplateIndex
	catalog driven.Catalog
}

// NewTemplatesService creates a new templates query service.
func NewTemplatesService(index driven.TemplateIndex, catalog driven.Catalog) *TemplatesService {
	return &TemplatesService{
		index:   index,
		catalog: catalog,
	}
}

// Search performs ranked full-text search over templates. opts.Category
// restricts results to one category; an unknown category is rejected.
func (s *TemplatesService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.TemplateResult, error) {
	logger.Section("Template Search")
	logger.Debug("Query: %q", query)

	var category domain.Category
	if opts.Category != "" {
		category = domain.Category(strings.ToLower(strings.TrimSpace(opts.Category)))
		if !category.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, opts.Category)
		}
	}

	match := expandQuery(s.catalog, query)
	if match == "" {
		return []domain.TemplateResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	results, err := s.index.Search(ctx, match, category, limit)
	if err != nil {
		return nil, fmt.Errorf("search templates: %w", err)
	}
	logger.Debug("Results: %d", len(results))
	return results, nil
}

// GetByName returns one template by its directory name.
func (s *TemplatesService) GetByName(ctx context.Context, name string) (*domain.TemplateRecord, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.index.GetByName(ctx, name)
}

// ListCategories returns every category with counts and member names.
func (s *TemplatesService) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	return s.index.ListCategories(ctx)
}

// GetPreview extracts a bounded markup fragment of the named template.
// Structural sections render the first matching element; "full" returns
// a line-capped prefix that ends on a complete tag.
func (s *TemplatesService) GetPreview(ctx context.Context, name string, section domain.PreviewSection) (*domain.TemplatePreview, error) {
	if !section.Valid() {
		return nil, fmt.Errorf("%w: unknown preview section %q", domain.ErrInvalidInput, section)
	}

	rec, err := s.index.GetByName(ctx, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return nil, err
	}

	var preview string
	if section == domain.PreviewFull {
		preview = capMarkup(rec.HTMLContent, FullPreviewMaxLines)
	} else {
		preview, err = extractSection(rec.HTMLContent, section)
		if err != nil {
			return nil, fmt.Errorf("preview %s: %w", rec.Name, err)
		}
		if preview == "" {
			return nil, fmt.Errorf("%w: template %q has no %s section", domain.ErrNotFound, rec.Name, section)
		}
	}

	return &domain.TemplatePreview{
		Name:    rec.Name,
		Title:   rec.Title,
		Section: section,
		Preview: preview,
		URL:     rec.URL,
	}, nil
}

// sectionSelectors maps a preview section to its element selectors, in
// preference order.
var sectionSelectors = map[domain.PreviewSection][]string{
	domain.PreviewHeader: {"header"},
	domain.PreviewNav:    {"nav", ".navbar"},
	domain.PreviewMain:   {"main", ".container", ".container-fluid"},
	domain.PreviewFooter: {"footer"},
}

// extractSection renders the first element matching the section's
// selectors, or "" when the template has no such element.
func extractSection(markup string, section domain.PreviewSection) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parse markup: %w", err)
	}

	for _, selector := range sectionSelectors[section] {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		fragment, err := goquery.OuterHtml(sel)
		if err != nil {
			return "", fmt.Errorf("render fragment: %w", err)
		}
		return strings.TrimSpace(fragment), nil
	}
	return "", nil
}

// capMarkup truncates markup to at most maxLines lines, then trims the
// tail back to the last line ending in ">" so the fragment never stops
// mid-tag.
func capMarkup(markup string, maxLines int) string {
	lines := strings.Split(markup, "\n")
	if len(lines) <= maxLines {
		return strings.TrimRight(markup, "\n")
	}
	capped := lines[:maxLines]

	// Walk back to a line that closes a tag.
	for len(capped) > 0 {
		tail := strings.TrimSpace(capped[len(capped)-1])
		if strings.HasSuffix(tail, ">") {
			break
		}
		capped = capped[:len(capped)-1]
	}
	if len(capped) == 0 {
		// No tag boundary anywhere in the prefix; the raw cap beats an
		// empty preview.
		capped = lines[:maxLines]
	}
	return strings.Join(capped, "\n")
}
