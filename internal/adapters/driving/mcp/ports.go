package mcp

import (
	"github.com/custodia-labs/bootdocs/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP
// server. This provides a single injection point.
type Ports struct {
	// Docs answers documentation queries.
	Docs driving.DocService

	// Templates answers template queries.
	Templates driving.TemplateService

	// Insights computes derived views.
	Insights driving.InsightService

	// Refresh re-derives the collections from the corpus.
	Refresh driving.RefreshService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Docs == nil {
		return ErrMissingDocService
	}
	if p.Templates == nil {
		return ErrMissingTemplateService
	}
	if p.Insights == nil {
		return ErrMissingInsightService
	}
	if p.Refresh == nil {
		return ErrMissingRefreshService
	}
	return nil
}
