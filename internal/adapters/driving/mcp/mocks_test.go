package mcp

import (
	"context"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driving"
)

// mockDocService is a canned-answer DocService.
type mockDocService struct {
	results  []domain.DocumentResult
	record   *domain.DocumentRecord
	records  []domain.DocumentRecord
	examples []domain.ExampleResult
	sections []domain.SectionSummary
	err      error

	lastQuery string
	lastOpts  domain.SearchOptions
}

var _ driving.DocService = (*mockDocService)(nil)

func (m *mockDocService) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.DocumentResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, m.err
}

func (m *mockDocService) GetBySlug(_ context.Context, _ string) (*domain.DocumentRecord, error) {
	return m.record, m.err
}

func (m *mockDocService) GetByComponent(_ context.Context, _ string) (*domain.DocumentRecord, error) {
	return m.record, m.err
}

func (m *mockDocService) GetBySection(_ context.Context, _ string) ([]domain.DocumentRecord, error) {
	return m.records, m.err
}

func (m *mockDocService) GetByUtilityClass(_ context.Context, _ string) ([]domain.DocumentRecord, error) {
	return m.records, m.err
}

func (m *mockDocService) GetExamples(_ context.Context, query string, opts domain.SearchOptions) ([]domain.ExampleResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.examples, m.err
}

func (m *mockDocService) ListSections(_ context.Context) ([]domain.SectionSummary, error) {
	return m.sections, m.err
}

// mockTemplateService is a canned-answer TemplateService.
type mockTemplateService struct {
	results    []domain.TemplateResult
	record     *domain.TemplateRecord
	categories []domain.CategorySummary
	preview    *domain.TemplatePreview
	err        error
}

var _ driving.TemplateService = (*mockTemplateService)(nil)

func (m *mockTemplateService) Search(_ context.Context, _ string, _ domain.SearchOptions) ([]domain.TemplateResult, error) {
	return m.results, m.err
}

func (m *mockTemplateService) GetByName(_ context.Context, _ string) (*domain.TemplateRecord, error) {
	return m.record, m.err
}

func (m *mockTemplateService) ListCategories(_ context.Context) ([]domain.CategorySummary, error) {
	return m.categories, m.err
}

func (m *mockTemplateService) GetPreview(_ context.Context, _ string, _ domain.PreviewSection) (*domain.TemplatePreview, error) {
	return m.preview, m.err
}

// mockInsightService is a canned-answer InsightService.
type mockInsightService struct {
	related []domain.RelatedComponent
	pattern *domain.Pattern
	stats   *domain.Stats
	err     error
}

var _ driving.InsightService = (*mockInsightService)(nil)

func (m *mockInsightService) RelatedComponents(_ context.Context, _ string) ([]domain.RelatedComponent, error) {
	return m.related, m.err
}

func (m *mockInsightService) Patterns(_ context.Context, _ string) (*domain.Pattern, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.pattern, nil
}

func (m *mockInsightService) Stats(_ context.Context) (*domain.Stats, error) {
	return m.stats, nil
}

// mockRefreshService is a canned-answer RefreshService.
type mockRefreshService struct {
	result *domain.RefreshResult
	err    error
}

var _ driving.RefreshService = (*mockRefreshService)(nil)

func (m *mockRefreshService) Refresh(_ context.Context) (*domain.RefreshResult, error) {
	return m.result, m.err
}

func testPorts() *Ports {
	return &Ports{
		Docs:      &mockDocService{},
		Templates: &mockTemplateService{},
		Insights:  &mockInsightService{},
		Refresh:   &mockRefreshService{},
	}
}
