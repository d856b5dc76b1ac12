package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
)

// RelatedInput names the component whose neighbours are requested.
type RelatedInput struct {
	Name string `json:"name" jsonschema:"component name, e.g. modal or navbar"`
}

// RelatedOutput lists co-occurring components.
type RelatedOutput struct {
	Component string         `json:"component"`
	Related   []RelatedEntry `json:"related"`
	Count     int            `json:"count"`
}

// RelatedEntry is one co-occurrence neighbour.
type RelatedEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PatternsInput names a use case.
type PatternsInput struct {
	UseCase string `json:"use_case" jsonschema:"use case identifier, e.g. dashboard, blog, e-commerce, landing-page"`
}

// PatternsOutput is the curated recommendation for a use case.
type PatternsOutput struct {
	Found       bool     `json:"found"`
	UseCase     string   `json:"use_case,omitempty"`
	Description string   `json:"description,omitempty"`
	Components  []string `json:"components,omitempty"`
	Utilities   []string `json:"utilities,omitempty"`
	Templates   []string `json:"templates,omitempty"`
	Sections    []string `json:"sections,omitempty"`
	KnownCases  []string `json:"known_use_cases,omitempty"`
}

// StatsOutput aggregates counts over both collections.
type StatsOutput struct {
	TotalDocuments        int               `json:"total_documents"`
	BySection             []SectionOutput   `json:"by_section"`
	TopComponents         []ComponentWeight `json:"top_components"`
	UseCases              []string          `json:"use_cases"`
	TotalTemplates        int               `json:"total_templates"`
	TemplatesByCategory   map[string]int    `json:"templates_by_category"`
	TemplatesByComplexity map[string]int    `json:"templates_by_complexity"`
}

// ComponentWeight ranks one component by documentation weight.
type ComponentWeight struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// RefreshOutput reports the outcome of a corpus refresh.
type RefreshOutput struct {
	DocumentsIndexed int `json:"documents_indexed"`
	TemplatesIndexed int `json:"templates_indexed"`
	FilesSkipped     int `json:"files_skipped"`
}

// registerInsightTools registers the derived-view and refresh handlers.
func (s *Server) registerInsightTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_related_components",
		Description: "Find components that co-occur with a component in the documentation",
	}, s.handleGetRelatedComponents)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_patterns",
		Description: "Get recommended components, utilities and templates for a use case",
	}, s.handleGetPatterns)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get aggregate statistics over the indexed documentation and templates",
	}, s.handleGetStats)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "refresh_docs",
		Description: "Re-sync the documentation corpus from upstream and rebuild the index",
	}, s.handleRefresh)
}

func (s *Server) handleGetRelatedComponents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RelatedInput,
) (*mcp.CallToolResult, RelatedOutput, error) {
	related, err := s.ports.Insights.RelatedComponents(ctx, input.Name)
	if err != nil {
		return nil, RelatedOutput{}, err
	}

	output := RelatedOutput{
		Component: input.Name,
		Related:   make([]RelatedEntry, len(related)),
		Count:     len(related),
	}
	for i, r := range related {
		output.Related[i] = RelatedEntry{Name: r.Name, Count: r.Count}
	}
	return nil, output, nil
}

func (s *Server) handleGetPatterns(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PatternsInput,
) (*mcp.CallToolResult, PatternsOutput, error) {
	pattern, err := s.ports.Insights.Patterns(ctx, input.UseCase)
	if errors.Is(err, domain.ErrNotFound) {
		stats, statsErr := s.ports.Insights.Stats(ctx)
		out := PatternsOutput{Found: false}
		if statsErr == nil {
			out.KnownCases = stats.UseCases
		}
		return nil, out, nil
	}
	if err != nil {
		return nil, PatternsOutput{}, err
	}

	return nil, PatternsOutput{
		Found:       true,
		UseCase:     pattern.UseCase,
		Description: pattern.Description,
		Components:  pattern.Components,
		Utilities:   pattern.Utilities,
		Templates:   pattern.Templates,
		Sections:    pattern.Sections,
	}, nil
}

func (s *Server) handleGetStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, StatsOutput, error) {
	stats, err := s.ports.Insights.Stats(ctx)
	if err != nil {
		return nil, StatsOutput{}, err
	}

	output := StatsOutput{
		TotalDocuments:        stats.TotalDocuments,
		BySection:             make([]SectionOutput, len(stats.BySection)),
		TopComponents:         make([]ComponentWeight, len(stats.TopComponents)),
		UseCases:              stats.UseCases,
		TotalTemplates:        stats.TotalTemplates,
		TemplatesByCategory:   make(map[string]int, len(stats.TemplatesByCategory)),
		TemplatesByComplexity: make(map[string]int, len(stats.TemplatesByComplexity)),
	}
	for i, sec := range stats.BySection {
		output.BySection[i] = SectionOutput{Section: sec.Section, Count: sec.Count}
	}
	for i, c := range stats.TopComponents {
		output.TopComponents[i] = ComponentWeight{Name: c.Name, Weight: c.Weight}
	}
	for cat, n := range stats.TemplatesByCategory {
		output.TemplatesByCategory[string(cat)] = n
	}
	for cx, n := range stats.TemplatesByComplexity {
		output.TemplatesByComplexity[string(cx)] = n
	}
	return nil, output, nil
}

func (s *Server) handleRefresh(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, RefreshOutput, error) {
	result, err := s.ports.Refresh.Refresh(ctx)
	if err != nil {
		return nil, RefreshOutput{}, err
	}
	return nil, RefreshOutput{
		DocumentsIndexed: result.DocumentsIndexed,
		TemplatesIndexed: result.TemplatesIndexed,
		FilesSkipped:     result.FilesSkipped,
	}, nil
}
