// Package catalog provides the static configuration tables: curated
// template metadata, use-case patterns and query synonyms. The tables
// are embedded at compile time and parsed once; lookups never touch
// the filesystem.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
)

//go:embed catalog.toml
var catalogTOML []byte

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog is the TOML-backed implementation of driven.Catalog.
type Catalog struct {
	templates map[string]driven.TemplateMeta
	patterns  map[string]domain.Pattern
	synonyms  map[string][]string
}

// fileFormat mirrors the embedded TOML document.
type fileFormat struct {
	Templates map[string]templateEntry `toml:"templates"`
	Patterns  map[string]patternEntry  `toml:"patterns"`
	Synonyms  map[string][]string      `toml:"synonyms"`
}

type templateEntry struct {
	Category    string   `toml:"category"`
	Description string   `toml:"description"`
	Complexity  string   `toml:"complexity"`
	Components  []string `toml:"components"`
}

type patternEntry struct {
	Description string   `toml:"description"`
	Components  []string `toml:"components"`
	Utilities   []string `toml:"utilities"`
	Templates   []string `toml:"templates"`
	Sections    []string `toml:"sections"`
}

// New parses the embedded tables. It fails only on a corrupt embed,
// which is a build defect rather than a runtime condition.
func New() (*Catalog, error) {
	var file fileFormat
	if err := toml.Unmarshal(catalogTOML, &file); err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}

	c := &Catalog{
		templates: make(map[string]driven.TemplateMeta, len(file.Templates)),
		patterns:  make(map[string]domain.Pattern, len(file.Patterns)),
		synonyms:  make(map[string][]string, len(file.Synonyms)),
	}

	for name, entry := range file.Templates {
		category := domain.Category(entry.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("catalog template %q: unknown category %q", name, entry.Category)
		}
		c.templates[name] = driven.TemplateMeta{
			Category:    category,
			Description: entry.Description,
			Complexity:  domain.Complexity(entry.Complexity),
			Components:  entry.Components,
		}
	}

	for useCase, entry := range file.Patterns {
		c.patterns[useCase] = domain.Pattern{
			UseCase:     useCase,
			Description: entry.Description,
			Components:  entry.Components,
			Utilities:   entry.Utilities,
			Templates:   entry.Templates,
			Sections:    entry.Sections,
		}
	}

	for token, terms := range file.Synonyms {
		c.synonyms[strings.ToLower(token)] = terms
	}

	return c, nil
}

// TemplateMeta returns curated metadata for a template name.
func (c *Catalog) TemplateMeta(name string) (driven.TemplateMeta, bool) {
	meta, ok := c.templates[name]
	return meta, ok
}

// Pattern returns the recommendation for a use-case identifier.
func (c *Catalog) Pattern(useCase string) (domain.Pattern, bool) {
	p, ok := c.patterns[strings.ToLower(useCase)]
	return p, ok
}

// UseCases lists every known use-case identifier, sorted.
func (c *Catalog) UseCases() []string {
	out := make([]string, 0, len(c.patterns))
	for useCase := range c.patterns {
		out = append(out, useCase)
	}
	sort.Strings(out)
	return out
}

// Synonyms returns additional search terms for an exact token.
func (c *Catalog) Synonyms(token string) []string {
	return c.synonyms[strings.ToLower(token)]
}
