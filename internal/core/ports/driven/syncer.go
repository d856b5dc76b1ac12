package driven

import "context"

// CorpusSyncer fetches the corpus from its upstream source onto local
// disk. Mechanics (protocol, authentication, timeouts) live entirely
// behind this interface; the core only observes success or failure.
//
// Sync must be non-destructive on failure: an error leaves whatever
// corpus is already on disk intact.
type CorpusSyncer interface {
	// Sync brings the local corpus up to date with upstream.
	Sync(ctx context.Context) error

	// DocsDir returns the local documentation subtree root.
	DocsDir() string

	// ExamplesDir returns the local template subtree root.
	ExamplesDir() string
}
