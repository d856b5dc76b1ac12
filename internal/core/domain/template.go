package domain

import "strings"

// ExamplesBaseURL is the published base for template page URLs.
const ExamplesBaseURL = DocsBaseURL + "/examples"

// RTLSuffix marks the right-to-left variant of a template name.
const RTLSuffix = "-rtl"

// Category classifies a template. The set is closed; extraction falls
// back to CategoryOther rather than failing.
type Category string

// Template categories.
const (
	CategoryAdmin      Category = "admin"
	CategoryComponents Category = "components"
	CategoryContent    Category = "content"
	CategoryForms      Category = "forms"
	CategoryLayouts    Category = "layouts"
	CategoryNavigation Category = "navigation"
	CategoryReference  Category = "reference"
	CategoryOther      Category = "other"
)

// Categories lists every valid category in stable order.
func Categories() []Category {
	return []Category{
		CategoryAdmin,
		CategoryComponents,
		CategoryContent,
		CategoryForms,
		CategoryLayouts,
		CategoryNavigation,
		CategoryReference,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Complexity grades a template by size and structure.
type Complexity string

// Complexity grades.
const (
	ComplexitySimple       Complexity = "simple"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityComplex      Complexity = "complex"
)

// TemplateRecord is the extracted representation of one page template.
// Lifecycle matches DocumentRecord: full rebuild, no partial updates.
type TemplateRecord struct {
	// Name is the template directory name. Unique key.
	Name string `json:"name"`

	Title       string     `json:"title"`
	Category    Category   `json:"category"`
	Description string     `json:"description"`
	Complexity  Complexity `json:"complexity"`

	// HTMLPath is the primary markup file relative to the examples root.
	HTMLPath string `json:"html_path"`

	// CSSFiles and JSFiles are same-directory companion files.
	CSSFiles []string `json:"css_files"`
	JSFiles  []string `json:"js_files"`

	// Components is the sorted set of framework components detected in
	// the markup.
	Components []string `json:"components"`

	// UtilityClasses is the sorted set of utility tokens in the markup.
	UtilityClasses []string `json:"utility_classes"`

	// RTL linkage. The link is symmetric: a base template names its RTL
	// variant and the variant points back at the base.
	HasRTLVariant   bool   `json:"has_rtl_variant"`
	RTLTemplateName string `json:"rtl_template_name,omitempty"`
	IsRTL           bool   `json:"is_rtl"`

	// HTMLContent is the full markup, kept for previews.
	HTMLContent string `json:"-"`

	// URL is the published example URL derived from Name.
	URL string `json:"url"`
}

// BaseName returns the template name with the RTL suffix stripped.
func (t TemplateRecord) BaseName() string {
	return strings.TrimSuffix(t.Name, RTLSuffix)
}

// UsesComponent reports whether name is in the template's component set.
func (t TemplateRecord) UsesComponent(name string) bool {
	for _, c := range t.Components {
		if c == name {
			return true
		}
	}
	return false
}

// TemplateURL derives the published URL for a template name.
func TemplateURL(name string) string {
	return ExamplesBaseURL + "/" + name + "/"
}

// TemplateResult is a single ranked hit from the templates collection.
type TemplateResult struct {
	Record TemplateRecord `json:"record"`

	// Score is the relevance score, higher is better.
	Score float64 `json:"score"`

	// Snippet is a highlighted fragment of the matched description.
	Snippet string `json:"snippet,omitempty"`
}

// CategorySummary is one category with its member templates.
type CategorySummary struct {
	Category  Category `json:"category"`
	Count     int      `json:"count"`
	Templates []string `json:"templates"`
}

// PreviewSection selects which structural region of a template to return.
type PreviewSection string

// Preview sections. SectionFull returns a line-capped prefix of the
// whole document, truncated on an element boundary.
const (
	PreviewHeader PreviewSection = "header"
	PreviewNav    PreviewSection = "nav"
	PreviewMain   PreviewSection = "main"
	PreviewFooter PreviewSection = "footer"
	PreviewFull   PreviewSection = "full"
)

// Valid reports whether s names a known preview section.
func (s PreviewSection) Valid() bool {
	switch s {
	case PreviewHeader, PreviewNav, PreviewMain, PreviewFooter, PreviewFull:
		return true
	}
	return false
}

// TemplatePreview is a bounded markup fragment of one template.
type TemplatePreview struct {
	Name    string         `json:"name"`
	Title   string         `json:"title"`
	Section PreviewSection `json:"section"`
	Preview string         `json:"preview"`
	URL     string         `json:"url"`
}
