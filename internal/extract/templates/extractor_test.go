package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
)

const dashboardHTML = `<!doctype html>
<html lang="en">
<head>
  <title>Dashboard Template</title>
  <link href="dashboard.css" rel="stylesheet">
  <link href="https://cdn.example.com/remote.css" rel="stylesheet">
  <link href="dashboard.rtl.css" rel="stylesheet">
</head>
<body>
  <nav class="navbar navbar-dark bg-dark p-2">
    <a class="navbar-brand" href="#">Company</a>
  </nav>
  <main class="d-flex">
    <div class="card mt-3">
      <div class="card-body">
        <button class="btn btn-primary" data-bs-toggle="tooltip" title="Hi">Go</button>
      </div>
    </div>
    <table class="table table-striped"><tr><td>1</td></tr></table>
    <form><input class="form-control"></form>
  </main>
  <script src="dashboard.js"></script>
  <script src="../assets/shared.js"></script>
</body>
</html>`

func TestExtract_DetectsComponents(t *testing.T) {
	rec, err := Extract("dashboard", []byte(dashboardHTML), nil)
	require.NoError(t, err)

	for _, want := range []string{"navbar", "card", "button", "tooltip", "table", "forms"} {
		assert.True(t, rec.UsesComponent(want), want)
	}
	// nav-* classes belong to navbar here, not the nav component.
	assert.False(t, rec.UsesComponent("modal"))
}

func TestExtract_Title(t *testing.T) {
	rec, err := Extract("dashboard", []byte(dashboardHTML), nil)
	require.NoError(t, err)
	assert.Equal(t, "Dashboard Template", rec.Title)
}

func TestExtract_TitleDefault(t *testing.T) {
	rec, err := Extract("bare", []byte("<html><body></body></html>"), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, rec.Title)
}

func TestExtract_CustomAssets(t *testing.T) {
	rec, err := Extract("dashboard", []byte(dashboardHTML), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"dashboard/dashboard.css"}, rec.CSSFiles)
	assert.Equal(t, []string{"dashboard/dashboard.js"}, rec.JSFiles)
}

func TestExtract_UtilityClasses(t *testing.T) {
	rec, err := Extract("dashboard", []byte(dashboardHTML), nil)
	require.NoError(t, err)

	assert.Contains(t, rec.UtilityClasses, "d-flex")
	assert.Contains(t, rec.UtilityClasses, "bg-dark")
	assert.Contains(t, rec.UtilityClasses, "mt-3")
	assert.NotContains(t, rec.UtilityClasses, "card")
}

func TestExtract_CuratedMetadataWins(t *testing.T) {
	curated := &driven.TemplateMeta{
		Category:    domain.CategoryAdmin,
		Description: "Admin dashboard shell",
		Complexity:  domain.ComplexityComplex,
		Components:  []string{"sidebar-nav"},
	}
	rec, err := Extract("dashboard", []byte(dashboardHTML), curated)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryAdmin, rec.Category)
	assert.Equal(t, "Admin dashboard shell", rec.Description)
	assert.Equal(t, domain.ComplexityComplex, rec.Complexity)
	// Curated components merge with detected ones.
	assert.True(t, rec.UsesComponent("sidebar-nav"))
	assert.True(t, rec.UsesComponent("navbar"))
}

func TestExtract_FallbackWithoutCuratedEntry(t *testing.T) {
	rec, err := Extract("my-new-page", []byte("<html><title>X</title><body><p>hi</p></body></html>"), nil)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryOther, rec.Category)
	assert.Equal(t, "My New Page template", rec.Description)
	assert.Equal(t, domain.ComplexitySimple, rec.Complexity)
}

func TestExtract_RTLNameDetection(t *testing.T) {
	rec, err := Extract("checkout-rtl", []byte("<html><body></body></html>"), nil)
	require.NoError(t, err)

	assert.True(t, rec.IsRTL)
	assert.Equal(t, "checkout", rec.BaseName())
}

func TestExtract_EmptyNameRejected(t *testing.T) {
	_, err := Extract("", []byte("<html></html>"), nil)
	assert.Error(t, err)
}

func TestClassifyComplexity(t *testing.T) {
	small := strings.Repeat("<p>x</p>\n", 20)
	big := strings.Repeat("<p>x</p>\n", 500)

	assert.Equal(t, domain.ComplexitySimple, classifyComplexity(small, 2))
	assert.Equal(t, domain.ComplexityComplex, classifyComplexity(big, 2))
	assert.Equal(t, domain.ComplexityComplex, classifyComplexity(small, 9))
	assert.Equal(t, domain.ComplexityIntermediate, classifyComplexity(small, 5))
}

func TestLinkRTLVariants(t *testing.T) {
	records := []domain.TemplateRecord{
		{Name: "checkout"},
		{Name: "checkout-rtl", IsRTL: true},
		{Name: "album"},
	}
	LinkRTLVariants(records)

	assert.True(t, records[0].HasRTLVariant)
	assert.Equal(t, "checkout-rtl", records[0].RTLTemplateName)
	assert.Equal(t, "checkout", records[1].RTLTemplateName)
	assert.False(t, records[2].HasRTLVariant)
	assert.Empty(t, records[2].RTLTemplateName)
}

func TestDetectInMarkup(t *testing.T) {
	markup := `<div class="alert alert-warning">Careful!</div>
<button class="btn btn-sm">OK</button>`

	components := DetectInMarkup(markup)
	assert.Contains(t, components, "alert")
	assert.Contains(t, components, "button")
	assert.NotContains(t, components, "modal")
}

func TestDetectInMarkup_Empty(t *testing.T) {
	assert.Empty(t, DetectInMarkup("plain text, no markup"))
}
