// Package driving defines the service interfaces exposed to adapters
// (CLI, MCP). Adapters depend on these interfaces, never on the
// concrete services.
package driving
