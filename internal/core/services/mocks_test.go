package services

import (
	"context"
	"errors"
	"strings"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
)

// mockDocIndex is an in-memory implementation of driven.DocumentIndex.
type mockDocIndex struct {
	records    []domain.DocumentRecord
	searchHits []domain.DocumentResult
	err        error

	lastQuery string
	lastLimit int
	rebuilds  int
}

var _ driven.DocumentIndex = (*mockDocIndex)(nil)

func (m *mockDocIndex) Rebuild(_ context.Context, records []domain.DocumentRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = records
	m.rebuilds++
	return nil
}

func (m *mockDocIndex) Search(_ context.Context, query string, limit int) ([]domain.DocumentResult, error) {
	m.lastQuery = query
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	hits := m.searchHits
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (m *mockDocIndex) SearchExamples(_ context.Context, query string, limit int) ([]domain.DocumentResult, error) {
	m.lastQuery = query
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	var hits []domain.DocumentResult
	for _, hit := range m.searchHits {
		if len(hit.Record.CodeExamples) > 0 {
			hits = append(hits, hit)
		}
		if len(hits) == limit {
			break
		}
	}
	return hits, nil
}

func (m *mockDocIndex) GetBySlug(_ context.Context, slug string) (*domain.DocumentRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].MatchesSlug(slug) {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocIndex) GetByComponent(_ context.Context, name string) (*domain.DocumentRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].ComponentName == name {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocIndex) GetBySection(_ context.Context, section string) ([]domain.DocumentRecord, error) {
	var out []domain.DocumentRecord
	for _, rec := range m.records {
		if rec.Section == section {
			out = append(out, rec)
		}
	}
	return out, m.err
}

func (m *mockDocIndex) GetByUtilityClass(_ context.Context, token string) ([]domain.DocumentRecord, error) {
	var out []domain.DocumentRecord
	for _, rec := range m.records {
		if rec.HasUtilityClass(token) {
			out = append(out, rec)
		}
	}
	return out, m.err
}

func (m *mockDocIndex) GetByUtilityPrefix(_ context.Context, prefix string) ([]domain.DocumentRecord, error) {
	var out []domain.DocumentRecord
	for _, rec := range m.records {
		for _, class := range rec.UtilityClasses {
			if strings.HasPrefix(class, prefix) {
				out = append(out, rec)
				break
			}
		}
	}
	return out, m.err
}

func (m *mockDocIndex) ListSections(_ context.Context) ([]domain.SectionSummary, error) {
	counts := make(map[string]int)
	var order []string
	for _, rec := range m.records {
		if counts[rec.Section] == 0 {
			order = append(order, rec.Section)
		}
		counts[rec.Section]++
	}
	out := make([]domain.SectionSummary, 0, len(order))
	for _, s := range order {
		out = append(out, domain.SectionSummary{Section: s, Count: counts[s]})
	}
	return out, m.err
}

func (m *mockDocIndex) All(_ context.Context) ([]domain.DocumentRecord, error) {
	return m.records, m.err
}

func (m *mockDocIndex) Count(_ context.Context) (int, error) {
	return len(m.records), m.err
}

// mockTemplateIndex is an in-memory implementation of driven.TemplateIndex.
type mockTemplateIndex struct {
	records    []domain.TemplateRecord
	searchHits []domain.TemplateResult
	err        error

	lastQuery    string
	lastCategory domain.Category
	rebuilds     int
}

var _ driven.TemplateIndex = (*mockTemplateIndex)(nil)

func (m *mockTemplateIndex) Rebuild(_ context.Context, records []domain.TemplateRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = records
	m.rebuilds++
	return nil
}

func (m *mockTemplateIndex) Search(_ context.Context, query string, category domain.Category, limit int) ([]domain.TemplateResult, error) {
	m.lastQuery = query
	m.lastCategory = category
	if m.err != nil {
		return nil, m.err
	}
	hits := m.searchHits
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (m *mockTemplateIndex) GetByName(_ context.Context, name string) (*domain.TemplateRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].Name == name {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockTemplateIndex) ListCategories(_ context.Context) ([]domain.CategorySummary, error) {
	return nil, m.err
}

func (m *mockTemplateIndex) All(_ context.Context) ([]domain.TemplateRecord, error) {
	return m.records, m.err
}

func (m *mockTemplateIndex) Count(_ context.Context) (int, error) {
	return len(m.records), m.err
}

// mockSyncer is a CorpusSyncer over fixed directories with an
// injectable failure.
type mockSyncer struct {
	docsDir     string
	examplesDir string
	err         error
	syncs       int
}

var _ driven.CorpusSyncer = (*mockSyncer)(nil)

func (m *mockSyncer) Sync(_ context.Context) error {
	m.syncs++
	return m.err
}

func (m *mockSyncer) DocsDir() string     { return m.docsDir }
func (m *mockSyncer) ExamplesDir() string { return m.examplesDir }

var errIndexDown = errors.New("index unavailable")
