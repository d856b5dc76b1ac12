// Package localfs serves an already-on-disk corpus. It is the syncer
// for air-gapped setups and for tests: Sync only verifies the corpus
// exists, nothing is fetched.
package localfs

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
)

var _ driven.CorpusSyncer = (*Syncer)(nil)

// Syncer points at fixed docs and examples directories.
type Syncer struct {
	docsDir     string
	examplesDir string
}

// NewSyncer creates a syncer over a static local corpus.
func NewSyncer(docsDir, examplesDir string) *Syncer {
	return &Syncer{docsDir: docsDir, examplesDir: examplesDir}
}

// Sync verifies the docs directory exists. The examples directory is
// optional; a docs-only corpus still indexes.
func (s *Syncer) Sync(_ context.Context) error {
	info, err := os.Stat(s.docsDir)
	if err != nil {
		return fmt.Errorf("local corpus: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("local corpus: %s is not a directory", s.docsDir)
	}
	return nil
}

// DocsDir returns the documentation subtree root.
func (s *Syncer) DocsDir() string { return s.docsDir }

// ExamplesDir returns the template subtree root.
func (s *Syncer) ExamplesDir() string { return s.examplesDir }
