package domain

import (
	"path"
	"strings"
)

// DocsBaseURL is the published documentation base for generated page URLs.
const DocsBaseURL = "https://getbootstrap.com/docs/5.3"

// DefaultSection is assigned to pages whose path carries no section
// directory, so classification never fails a build.
const DefaultSection = "general"

// CodeExample is one raw markup snippet extracted from an example block.
type CodeExample struct {
	// ID is the ordinal identifier within the page ("example_1", ...).
	ID string `json:"id"`

	// Content is the raw markup, whitespace-trimmed but otherwise intact.
	Content string `json:"content"`
}

// DocumentRecord is the extracted representation of one documentation page.
// Records are created fresh on every index rebuild and never mutated.
type DocumentRecord struct {
	// Filepath is the path relative to the docs root. Unique key.
	Filepath string `json:"filepath"`

	// Title and Description come from front matter; empty if absent.
	Title       string `json:"title"`
	Description string `json:"description"`

	// Section is the first path segment under the docs root, lower-cased.
	Section string `json:"section"`

	// ComponentName is set only for pages in the components section.
	ComponentName string `json:"component_name,omitempty"`

	// UtilityClasses is the sorted set of utility class tokens found in
	// example regions of the page.
	UtilityClasses []string `json:"utility_classes"`

	// CodeExamples are the example blocks in page order.
	CodeExamples []CodeExample `json:"code_examples"`

	// Aliases are alternate slugs this page answers to.
	Aliases []string `json:"aliases"`

	// TOC mirrors the front matter toc flag.
	TOC bool `json:"toc"`

	// Content is the page body with front matter stripped.
	Content string `json:"content"`

	// URL is the published documentation URL derived from Filepath.
	URL string `json:"url"`
}

// Slug returns the filename stem used for exact lookups.
func (d DocumentRecord) Slug() string {
	base := path.Base(d.Filepath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// MatchesSlug reports whether slug equals the record's stem or one of
// its aliases. Comparison is case-insensitive.
func (d DocumentRecord) MatchesSlug(slug string) bool {
	if strings.EqualFold(d.Slug(), slug) {
		return true
	}
	for _, a := range d.Aliases {
		if strings.EqualFold(a, slug) {
			return true
		}
	}
	return false
}

// HasUtilityClass reports whether token is in the record's utility set.
func (d DocumentRecord) HasUtilityClass(token string) bool {
	for _, c := range d.UtilityClasses {
		if c == token {
			return true
		}
	}
	return false
}

// DocURL derives the published URL for a docs-relative filepath.
func DocURL(filepath string) string {
	dir := path.Dir(filepath)
	stem := strings.TrimSuffix(path.Base(filepath), path.Ext(filepath))
	if dir == "." {
		return DocsBaseURL + "/" + stem + "/"
	}
	return DocsBaseURL + "/" + dir + "/" + stem + "/"
}

// SearchOptions configures a full-text query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means the default.
	Limit int

	// Category restricts template search to one category. Empty means all.
	Category string
}

// DocumentResult is a single ranked hit from the documents collection.
type DocumentResult struct {
	Record DocumentRecord `json:"record"`

	// Score is the relevance score, higher is better.
	Score float64 `json:"score"`

	// Snippet is a highlighted fragment of the matched content.
	Snippet string `json:"snippet,omitempty"`
}

// ExampleResult pairs a matched document with its code examples.
type ExampleResult struct {
	Filepath      string        `json:"filepath"`
	Title         string        `json:"title"`
	Section       string        `json:"section"`
	ComponentName string        `json:"component_name,omitempty"`
	URL           string        `json:"url"`
	Examples      []CodeExample `json:"examples"`
}

// SectionSummary is one documentation section with its page count.
type SectionSummary struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}
