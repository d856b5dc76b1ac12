// Package driven defines the interfaces the core depends on: the two
// searchable collections, the corpus syncer and the static catalog.
// Adapters implement these; services consume them.
package driven
