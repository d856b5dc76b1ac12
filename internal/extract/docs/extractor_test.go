package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modalPage = `---
title: Modal
description: Use Bootstrap's JavaScript modal plugin to add dialogs.
toc: true
aliases:
  - "/docs/5.3/components/modals/"
  - "/components/modal/"
---

Modals are built with HTML, CSS, and JavaScript.

<Example class="bd-example">
<div class="modal d-block p-3" tabindex="-1">
  <div class="modal-dialog">
    <button type="button" class="btn btn-primary">Save changes</button>
  </div>
</div>
</Example>

Outside the block <span class="mt-4">this utility does not count</span>.
`

func TestExtract_FrontMatter(t *testing.T) {
	rec, err := Extract("components/modal.mdx", []byte(modalPage))
	require.NoError(t, err)

	assert.Equal(t, "Modal", rec.Title)
	assert.Contains(t, rec.Description, "modal plugin")
	assert.True(t, rec.TOC)
	assert.Equal(t, "components", rec.Section)
	assert.Equal(t, "modal", rec.ComponentName)
	assert.Equal(t, "https://getbootstrap.com/docs/5.3/components/modal/", rec.URL)
}

func TestExtract_AliasesKeepLastSegment(t *testing.T) {
	rec, err := Extract("components/modal.mdx", []byte(modalPage))
	require.NoError(t, err)

	assert.Equal(t, []string{"modals", "modal"}, rec.Aliases)
}

func TestExtract_ScalarAlias(t *testing.T) {
	page := "---\ntitle: Toasts\naliases: /components/toast/\n---\nBody.\n"
	rec, err := Extract("components/toasts.mdx", []byte(page))
	require.NoError(t, err)

	assert.Equal(t, []string{"toast"}, rec.Aliases)
}

func TestExtract_CodeExamples(t *testing.T) {
	rec, err := Extract("components/modal.mdx", []byte(modalPage))
	require.NoError(t, err)

	require.Len(t, rec.CodeExamples, 1)
	assert.Equal(t, "example_1", rec.CodeExamples[0].ID)
	assert.Contains(t, rec.CodeExamples[0].Content, "modal-dialog")
}

func TestExtract_UtilityClassesOnlyInsideExamples(t *testing.T) {
	rec, err := Extract("components/modal.mdx", []byte(modalPage))
	require.NoError(t, err)

	assert.Contains(t, rec.UtilityClasses, "d-block")
	assert.Contains(t, rec.UtilityClasses, "p-3")
	// mt-4 only appears outside the example block.
	assert.NotContains(t, rec.UtilityClasses, "mt-4")
	// btn and modal are component classes, not utilities.
	assert.NotContains(t, rec.UtilityClasses, "btn")
	assert.NotContains(t, rec.UtilityClasses, "modal")
}

func TestExtract_EmptyExampleBlockSkipped(t *testing.T) {
	page := "---\ntitle: Empty\n---\n<Example>\n   \n</Example>\n"
	rec, err := Extract("components/empty.mdx", []byte(page))
	require.NoError(t, err)

	assert.Empty(t, rec.CodeExamples)
}

func TestExtract_MalformedFrontMatterDegrades(t *testing.T) {
	page := "---\ntitle: [unclosed\n---\nThe body survives.\n"
	rec, err := Extract("utilities/spacing.mdx", []byte(page))
	require.NoError(t, err)

	assert.Empty(t, rec.Title)
	assert.Contains(t, rec.Content, "body survives")
	assert.Equal(t, "utilities", rec.Section)
}

func TestExtract_NoFrontMatter(t *testing.T) {
	rec, err := Extract("getting-started/download.mdx", []byte("Just content.\n"))
	require.NoError(t, err)

	assert.Empty(t, rec.Title)
	assert.Equal(t, "Just content.\n", rec.Content)
}

func TestExtract_UnterminatedFrontMatter(t *testing.T) {
	page := "---\ntitle: Broken\nNo closing fence here.\n"
	rec, err := Extract("components/broken.mdx", []byte(page))
	require.NoError(t, err)

	assert.Empty(t, rec.Title)
	assert.Equal(t, page, rec.Content)
}

func TestExtract_SectionDefaults(t *testing.T) {
	rec, err := Extract("index.mdx", []byte("Top-level page.\n"))
	require.NoError(t, err)

	assert.Equal(t, "general", rec.Section)
	assert.Empty(t, rec.ComponentName)
}

func TestExtract_ComponentNameOnlyInComponents(t *testing.T) {
	rec, err := Extract("utilities/borders.mdx", []byte("---\ntitle: Borders\n---\nBody.\n"))
	require.NoError(t, err)

	assert.Empty(t, rec.ComponentName)
}

func TestExtract_EmptyPathRejected(t *testing.T) {
	_, err := Extract("", []byte("content"))
	assert.Error(t, err)
}

func TestIndexable(t *testing.T) {
	assert.True(t, Indexable("components/modal.mdx"))
	assert.True(t, Indexable("components/MODAL.MDX"))
	assert.False(t, Indexable("components/modal.md"))
	assert.False(t, Indexable("assets/app.js"))
}

func TestIsUtilityClass_Grammar(t *testing.T) {
	utilities := []string{
		"mt-4", "p-0", "mx-auto", "pb-5",
		"d-flex", "d-md-none", "d-inline-block",
		"flex-column", "flex-lg-row", "justify-content-center",
		"align-items-md-stretch",
		"col", "col-6", "col-md-4", "col-auto",
		"text-primary", "bg-dark", "text-center", "text-uppercase",
		"border", "border-0", "rounded-circle",
		"w-100", "h-auto", "position-sticky",
		"fw-bold", "fs-3",
	}
	for _, token := range utilities {
		assert.True(t, IsUtilityClass(token), token)
	}

	notUtilities := []string{
		"btn", "modal", "navbar", "collapse",
		"mt-6",      // spacing scale ends at 5
		"col-13",    // grid ends at 12
		"d-banana",  // not a display value
		"text-btn",  // not a colour or alignment
		"fs-7",      // size scale ends at 6
		"m-",        // no value
		"container", // layout, not utility
	}
	for _, token := range notUtilities {
		assert.False(t, IsUtilityClass(token), token)
	}
}
