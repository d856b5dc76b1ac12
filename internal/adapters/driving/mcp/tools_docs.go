package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
)

// DocOutput is the shared document shape returned by doc tools.
// Content and examples are only populated by the full-document tools.
type DocOutput struct {
	Filepath       string          `json:"filepath"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Section        string          `json:"section"`
	ComponentName  string          `json:"component_name,omitempty"`
	URL            string          `json:"url"`
	UtilityClasses []string        `json:"utility_classes,omitempty"`
	Content        string          `json:"content,omitempty"`
	Examples       []ExampleOutput `json:"examples,omitempty"`
}

// ExampleOutput is one code example.
type ExampleOutput struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

func docSummary(rec domain.DocumentRecord) DocOutput {
	return DocOutput{
		Filepath:      rec.Filepath,
		Title:         rec.Title,
		Description:   rec.Description,
		Section:       rec.Section,
		ComponentName: rec.ComponentName,
		URL:           rec.URL,
	}
}

func docFull(rec domain.DocumentRecord) DocOutput {
	out := docSummary(rec)
	out.UtilityClasses = rec.UtilityClasses
	out.Content = rec.Content
	out.Examples = examplesOutput(rec.CodeExamples)
	return out
}

func examplesOutput(examples []domain.CodeExample) []ExampleOutput {
	out := make([]ExampleOutput, len(examples))
	for i, ex := range examples {
		out[i] = ExampleOutput{ID: ex.ID, Content: ex.Content}
	}
	return out
}

// SearchDocsInput is the input schema for the search_docs tool.
type SearchDocsInput struct {
	Query string `json:"query" jsonschema:"the search query; synonyms are expanded automatically"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchDocsOutput is the output schema for the search_docs tool.
type SearchDocsOutput struct {
	Results []SearchDocResult `json:"results"`
	Count   int               `json:"count"`
}

// SearchDocResult is a single ranked hit.
type SearchDocResult struct {
	DocOutput
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet,omitempty"`
}

// ComponentInput names one framework component.
type ComponentInput struct {
	Name string `json:"name" jsonschema:"component name, e.g. modal, navbar, buttons"`
}

// DocLookupOutput wraps one document lookup. Found is false when no
// document matched.
type DocLookupOutput struct {
	Found    bool       `json:"found"`
	Document *DocOutput `json:"document,omitempty"`
}

// UtilityClassInput names a utility class token.
type UtilityClassInput struct {
	Class string `json:"class" jsonschema:"utility class token; a trailing * matches the whole prefix family, e.g. d-* or mt-*"`
}

// DocListOutput is a list of document summaries.
type DocListOutput struct {
	Documents []DocOutput `json:"documents"`
	Count     int         `json:"count"`
}

// SectionsOutput lists documentation sections with page counts.
type SectionsOutput struct {
	Sections []SectionOutput `json:"sections"`
	Count    int             `json:"count"`
}

// SectionOutput is one section summary.
type SectionOutput struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}

// SectionInput names one documentation section.
type SectionInput struct {
	Section string `json:"section" jsonschema:"section name, e.g. components, utilities, forms"`
}

// SlugInput identifies one page by filename stem or alias.
type SlugInput struct {
	Slug string `json:"slug" jsonschema:"page slug, e.g. modal or buttons"`
}

// GetExamplesInput is the input schema for the get_examples tool.
type GetExamplesInput struct {
	Query string `json:"query" jsonschema:"the search query to find pages with code examples"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of pages to return (default 10)"`
}

// GetExamplesOutput groups examples by source page.
type GetExamplesOutput struct {
	Results []PageExamples `json:"results"`
	Count   int            `json:"count"`
}

// PageExamples is one page and its code examples.
type PageExamples struct {
	Filepath      string          `json:"filepath"`
	Title         string          `json:"title"`
	Section       string          `json:"section"`
	ComponentName string          `json:"component_name,omitempty"`
	URL           string          `json:"url"`
	Examples      []ExampleOutput `json:"examples"`
}

// registerDocTools registers the documentation tool handlers.
func (s *Server) registerDocTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_docs",
		Description: "Search Bootstrap documentation by keyword, with relevance ranking and synonym expansion",
	}, s.handleSearchDocs)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_component",
		Description: "Get the full documentation page for a Bootstrap component",
	}, s.handleGetComponent)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_utility_class",
		Description: "Find documentation pages that use a utility class (trailing * matches a prefix family)",
	}, s.handleGetUtilityClass)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sections",
		Description: "List all documentation sections with page counts",
	}, s.handleListSections)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_section_docs",
		Description: "List all documentation pages in one section",
	}, s.handleGetSectionDocs)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_full_doc",
		Description: "Get the complete content of a documentation page by slug",
	}, s.handleGetFullDoc)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_examples",
		Description: "Get code examples from documentation pages matching a query",
	}, s.handleGetExamples)
}

func (s *Server) handleSearchDocs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchDocsInput,
) (*mcp.CallToolResult, SearchDocsOutput, error) {
	results, err := s.ports.Docs.Search(ctx, input.Query, domain.SearchOptions{Limit: input.Limit})
	if err != nil {
		return nil, SearchDocsOutput{}, err
	}

	output := SearchDocsOutput{
		Results: make([]SearchDocResult, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchDocResult{
			DocOutput: docSummary(results[i].Record),
			Score:     results[i].Score,
			Snippet:   results[i].Snippet,
		}
	}
	return nil, output, nil
}

func (s *Server) handleGetComponent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ComponentInput,
) (*mcp.CallToolResult, DocLookupOutput, error) {
	rec, err := s.ports.Docs.GetByComponent(ctx, input.Name)
	return docLookup(rec, err)
}

func (s *Server) handleGetFullDoc(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SlugInput,
) (*mcp.CallToolResult, DocLookupOutput, error) {
	rec, err := s.ports.Docs.GetBySlug(ctx, input.Slug)
	return docLookup(rec, err)
}

// docLookup maps a single-document result: not-found becomes
// found:false rather than a tool error.
func docLookup(rec *domain.DocumentRecord, err error) (*mcp.CallToolResult, DocLookupOutput, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return nil, DocLookupOutput{Found: false}, nil
	}
	if err != nil {
		return nil, DocLookupOutput{}, err
	}
	doc := docFull(*rec)
	return nil, DocLookupOutput{Found: true, Document: &doc}, nil
}

func (s *Server) handleGetUtilityClass(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UtilityClassInput,
) (*mcp.CallToolResult, DocListOutput, error) {
	docs, err := s.ports.Docs.GetByUtilityClass(ctx, input.Class)
	if err != nil {
		return nil, DocListOutput{}, err
	}
	return nil, docList(docs), nil
}

func (s *Server) handleGetSectionDocs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SectionInput,
) (*mcp.CallToolResult, DocListOutput, error) {
	docs, err := s.ports.Docs.GetBySection(ctx, input.Section)
	if err != nil {
		return nil, DocListOutput{}, err
	}
	return nil, docList(docs), nil
}

func docList(docs []domain.DocumentRecord) DocListOutput {
	output := DocListOutput{
		Documents: make([]DocOutput, len(docs)),
		Count:     len(docs),
	}
	for i := range docs {
		output.Documents[i] = docSummary(docs[i])
	}
	return output
}

func (s *Server) handleListSections(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, SectionsOutput, error) {
	sections, err := s.ports.Docs.ListSections(ctx)
	if err != nil {
		return nil, SectionsOutput{}, err
	}

	output := SectionsOutput{
		Sections: make([]SectionOutput, len(sections)),
		Count:    len(sections),
	}
	for i, sec := range sections {
		output.Sections[i] = SectionOutput{Section: sec.Section, Count: sec.Count}
	}
	return nil, output, nil
}

func (s *Server) handleGetExamples(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetExamplesInput,
) (*mcp.CallToolResult, GetExamplesOutput, error) {
	results, err := s.ports.Docs.GetExamples(ctx, input.Query, domain.SearchOptions{Limit: input.Limit})
	if err != nil {
		return nil, GetExamplesOutput{}, err
	}

	output := GetExamplesOutput{
		Results: make([]PageExamples, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = PageExamples{
			Filepath:      results[i].Filepath,
			Title:         results[i].Title,
			Section:       results[i].Section,
			ComponentName: results[i].ComponentName,
			URL:           results[i].URL,
			Examples:      examplesOutput(results[i].Examples),
		}
	}
	return nil, output, nil
}
