// Package mcp provides an MCP (Model Context Protocol) server adapter
// exposing the documentation index to AI assistants.
package mcp

import "errors"

// Errors for missing required ports.
var (
	ErrMissingDocService      = errors.New("mcp: doc service is required")
	ErrMissingTemplateService = errors.New("mcp: template service is required")
	ErrMissingInsightService  = errors.New("mcp: insight service is required")
	ErrMissingRefreshService  = errors.New("mcp: refresh service is required")
)
