package domain

// RelatedComponent is one co-occurrence neighbour of a component.
type RelatedComponent struct {
	// Name is the related component.
	Name string `json:"name"`

	// Count is the number of documents in which both components appear.
	Count int `json:"count"`
}

// Pattern is a curated use-case recommendation: which components,
// utility families, templates and doc sections serve a given use case.
// Patterns are external configuration data, not derived from the corpus.
type Pattern struct {
	UseCase     string   `json:"use_case"`
	Description string   `json:"description"`
	Components  []string `json:"components"`
	Utilities   []string `json:"utilities"`
	Templates   []string `json:"templates"`
	Sections    []string `json:"sections"`
}

// ComponentUsage ranks a component by how much material documents it.
type ComponentUsage struct {
	Name string `json:"name"`

	// Weight is utility-class count plus example count for the
	// component's page.
	Weight int `json:"weight"`
}

// Stats aggregates read-only counts over both collections.
type Stats struct {
	TotalDocuments int              `json:"total_documents"`
	BySection      []SectionSummary `json:"by_section"`
	TopComponents  []ComponentUsage `json:"top_components"`
	UseCases       []string         `json:"use_cases"`

	TotalTemplates        int                `json:"total_templates"`
	TemplatesByCategory   map[Category]int   `json:"templates_by_category"`
	TemplatesByComplexity map[Complexity]int `json:"templates_by_complexity"`
}

// RefreshResult reports the outcome of a corpus refresh.
type RefreshResult struct {
	// DocumentsIndexed and TemplatesIndexed count successfully rebuilt
	// records.
	DocumentsIndexed int `json:"documents_indexed"`
	TemplatesIndexed int `json:"templates_indexed"`

	// FilesSkipped counts corpus files that failed extraction and were
	// excluded. A refresh with skips still succeeds.
	FilesSkipped int `json:"files_skipped"`
}
