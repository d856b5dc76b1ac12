package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
)

func templateFixtures() []domain.TemplateRecord {
	return []domain.TemplateRecord{
		{
			Name:            "dashboard",
			Title:           "Dashboard Template",
			Category:        domain.CategoryAdmin,
			Description:     "An admin dashboard shell with sidebar and charts",
			Complexity:      domain.ComplexityComplex,
			HTMLPath:        "dashboard/index.html",
			CSSFiles:        []string{"dashboard/dashboard.css"},
			JSFiles:         []string{"dashboard/dashboard.js"},
			Components:      []string{"navbar", "card", "table"},
			UtilityClasses:  []string{"d-flex", "bg-dark"},
			HasRTLVariant:   true,
			RTLTemplateName: "dashboard-rtl",
			HTMLContent:     "<html><body><main>dash</main></body></html>",
			URL:             "https://getbootstrap.com/docs/5.3/examples/dashboard/",
		},
		{
			Name:            "dashboard-rtl",
			Title:           "Dashboard RTL",
			Category:        domain.CategoryAdmin,
			Description:     "Right-to-left dashboard variant",
			Complexity:      domain.ComplexityComplex,
			HTMLPath:        "dashboard-rtl/index.html",
			Components:      []string{"navbar", "card"},
			RTLTemplateName: "dashboard",
			IsRTL:           true,
			HTMLContent:     "<html dir=\"rtl\"></html>",
			URL:             "https://getbootstrap.com/docs/5.3/examples/dashboard-rtl/",
		},
		{
			Name:        "sign-in",
			Title:       "Signin Template",
			Category:    domain.CategoryForms,
			Description: "A clean sign-in form layout",
			Complexity:  domain.ComplexitySimple,
			HTMLPath:    "sign-in/index.html",
			Components:  []string{"forms", "button"},
			HTMLContent: "<html><body><form></form></body></html>",
			URL:         "https://getbootstrap.com/docs/5.3/examples/sign-in/",
		},
	}
}

func newTemplateIndex(t *testing.T) driven.TemplateIndex {
	t.Helper()

	index := newTestStore(t).TemplateIndex()
	require.NoError(t, index.Rebuild(context.Background(), templateFixtures()))
	return index
}

func TestTemplateIndex_RebuildAndCount(t *testing.T) {
	index := newTemplateIndex(t)

	n, err := index.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestTemplateIndex_Search(t *testing.T) {
	index := newTemplateIndex(t)

	results, err := index.Search(context.Background(), `"dashboard"`, "", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "dashboard", results[0].Record.BaseName())
	assert.Greater(t, results[0].Score, 0.0)
}

func TestTemplateIndex_SearchCategoryFilter(t *testing.T) {
	index := newTemplateIndex(t)
	ctx := context.Background()

	results, err := index.Search(ctx, `"form"`, domain.CategoryForms, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "sign-in", results[0].Record.Name)

	results, err = index.Search(ctx, `"form"`, domain.CategoryAdmin, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTemplateIndex_SearchMalformedQueryDegrades(t *testing.T) {
	index := newTemplateIndex(t)

	results, err := index.Search(context.Background(), `dashboard"`, "", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestTemplateIndex_GetByName(t *testing.T) {
	index := newTemplateIndex(t)
	ctx := context.Background()

	rec, err := index.GetByName(ctx, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryAdmin, rec.Category)
	assert.True(t, rec.HasRTLVariant)
	assert.Equal(t, "dashboard-rtl", rec.RTLTemplateName)
	assert.Equal(t, []string{"navbar", "card", "table"}, rec.Components)
	assert.NotEmpty(t, rec.HTMLContent)

	_, err = index.GetByName(ctx, "no-such-template")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplateIndex_ListCategories(t *testing.T) {
	index := newTemplateIndex(t)

	categories, err := index.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, domain.CategoryAdmin, categories[0].Category)
	assert.Equal(t, 2, categories[0].Count)
	assert.Equal(t, []string{"dashboard", "dashboard-rtl"}, categories[0].Templates)

	assert.Equal(t, domain.CategoryForms, categories[1].Category)
	assert.Equal(t, []string{"sign-in"}, categories[1].Templates)
}

func TestTemplateIndex_DuplicateNameLastWins(t *testing.T) {
	index := newTestStore(t).TemplateIndex()
	ctx := context.Background()

	records := []domain.TemplateRecord{
		{Name: "album", Title: "Old", Category: domain.CategoryContent},
		{Name: "album", Title: "New", Category: domain.CategoryContent},
	}
	require.NoError(t, index.Rebuild(ctx, records))

	rec, err := index.GetByName(ctx, "album")
	require.NoError(t, err)
	assert.Equal(t, "New", rec.Title)
}

func TestTemplateIndex_All(t *testing.T) {
	index := newTemplateIndex(t)

	all, err := index.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "dashboard", all[0].Name)
	assert.Equal(t, "sign-in", all[2].Name)
}
