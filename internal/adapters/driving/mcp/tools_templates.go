package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
)

// TemplateOutput is the shared template shape returned by template
// tools. Markup never crosses the wire; previews go through the
// dedicated preview tool.
type TemplateOutput struct {
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Complexity      string   `json:"complexity"`
	Components      []string `json:"components,omitempty"`
	UtilityClasses  []string `json:"utility_classes,omitempty"`
	CSSFiles        []string `json:"css_files,omitempty"`
	JSFiles         []string `json:"js_files,omitempty"`
	HasRTLVariant   bool     `json:"has_rtl_variant"`
	RTLTemplateName string   `json:"rtl_template_name,omitempty"`
	IsRTL           bool     `json:"is_rtl"`
	URL             string   `json:"url"`
}

func templateOutput(rec domain.TemplateRecord) TemplateOutput {
	return TemplateOutput{
		Name:            rec.Name,
		Title:           rec.Title,
		Category:        string(rec.Category),
		Description:     rec.Description,
		Complexity:      string(rec.Complexity),
		Components:      rec.Components,
		UtilityClasses:  rec.UtilityClasses,
		CSSFiles:        rec.CSSFiles,
		JSFiles:         rec.JSFiles,
		HasRTLVariant:   rec.HasRTLVariant,
		RTLTemplateName: rec.RTLTemplateName,
		IsRTL:           rec.IsRTL,
		URL:             rec.URL,
	}
}

// SearchTemplatesInput is the input schema for the search_templates tool.
type SearchTemplatesInput struct {
	Query    string `json:"query" jsonschema:"the search query"`
	Category string `json:"category,omitempty" jsonschema:"restrict to one category: admin, components, content, forms, layouts, navigation, reference, other"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchTemplatesOutput is the output schema for the search_templates tool.
type SearchTemplatesOutput struct {
	Results []TemplateResult `json:"results"`
	Count   int              `json:"count"`
}

// TemplateResult is a single ranked template hit.
type TemplateResult struct {
	TemplateOutput
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet,omitempty"`
}

// TemplateNameInput names one template.
type TemplateNameInput struct {
	Name string `json:"name" jsonschema:"template directory name, e.g. dashboard or checkout-rtl"`
}

// TemplateLookupOutput wraps one template lookup.
type TemplateLookupOutput struct {
	Found    bool            `json:"found"`
	Template *TemplateOutput `json:"template,omitempty"`
}

// CategoriesOutput lists template categories with members.
type CategoriesOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Count      int              `json:"count"`
}

// CategoryOutput is one category summary.
type CategoryOutput struct {
	Category  string   `json:"category"`
	Count     int      `json:"count"`
	Templates []string `json:"templates"`
}

// PreviewInput is the input schema for the get_template_preview tool.
type PreviewInput struct {
	Name    string `json:"name" jsonschema:"template directory name"`
	Section string `json:"section,omitempty" jsonschema:"which region to preview: header, nav, main, footer or full (default full)"`
}

// PreviewOutput is a bounded markup fragment of one template.
type PreviewOutput struct {
	Found   bool   `json:"found"`
	Name    string `json:"name,omitempty"`
	Title   string `json:"title,omitempty"`
	Section string `json:"section,omitempty"`
	Preview string `json:"preview,omitempty"`
	URL     string `json:"url,omitempty"`
}

// registerTemplateTools registers the template tool handlers.
func (s *Server) registerTemplateTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_templates",
		Description: "Search starter page templates by keyword, optionally filtered by category",
	}, s.handleSearchTemplates)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_template",
		Description: "Get metadata for one starter template: category, components, assets and RTL variant",
	}, s.handleGetTemplate)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_template_categories",
		Description: "List template categories with member template names",
	}, s.handleListTemplateCategories)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_template_preview",
		Description: "Get a bounded HTML fragment of a template: one structural region or a line-capped full preview",
	}, s.handleGetTemplatePreview)
}

func (s *Server) handleSearchTemplates(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchTemplatesInput,
) (*mcp.CallToolResult, SearchTemplatesOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit, Category: input.Category}
	results, err := s.ports.Templates.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchTemplatesOutput{}, err
	}

	output := SearchTemplatesOutput{
		Results: make([]TemplateResult, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = TemplateResult{
			TemplateOutput: templateOutput(results[i].Record),
			Score:          results[i].Score,
			Snippet:        results[i].Snippet,
		}
	}
	return nil, output, nil
}

func (s *Server) handleGetTemplate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TemplateNameInput,
) (*mcp.CallToolResult, TemplateLookupOutput, error) {
	rec, err := s.ports.Templates.GetByName(ctx, input.Name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, TemplateLookupOutput{Found: false}, nil
	}
	if err != nil {
		return nil, TemplateLookupOutput{}, err
	}
	tmpl := templateOutput(*rec)
	return nil, TemplateLookupOutput{Found: true, Template: &tmpl}, nil
}

func (s *Server) handleListTemplateCategories(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, CategoriesOutput, error) {
	categories, err := s.ports.Templates.ListCategories(ctx)
	if err != nil {
		return nil, CategoriesOutput{}, err
	}

	output := CategoriesOutput{
		Categories: make([]CategoryOutput, len(categories)),
		Count:      len(categories),
	}
	for i, cat := range categories {
		output.Categories[i] = CategoryOutput{
			Category:  string(cat.Category),
			Count:     cat.Count,
			Templates: cat.Templates,
		}
	}
	return nil, output, nil
}

func (s *Server) handleGetTemplatePreview(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PreviewInput,
) (*mcp.CallToolResult, PreviewOutput, error) {
	section := domain.PreviewSection(input.Section)
	if input.Section == "" {
		section = domain.PreviewFull
	}

	preview, err := s.ports.Templates.GetPreview(ctx, input.Name, section)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, PreviewOutput{Found: false}, nil
	}
	if err != nil {
		return nil, PreviewOutput{}, err
	}
	return nil, PreviewOutput{
		Found:   true,
		Name:    preview.Name,
		Title:   preview.Title,
		Section: string(preview.Section),
		Preview: preview.Preview,
		URL:     preview.URL,
	}, nil
}
