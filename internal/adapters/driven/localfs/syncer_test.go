package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSync_ExistingCorpus(t *testing.T) {
	docs := t.TempDir()
	examples := t.TempDir()
	s := NewSyncer(docs, examples)

	require.NoError(t, s.Sync(context.Background()))
	assert.Equal(t, docs, s.DocsDir())
	assert.Equal(t, examples, s.ExamplesDir())
}

func TestSync_MissingDocsDir(t *testing.T) {
	s := NewSyncer(filepath.Join(t.TempDir(), "absent"), "")
	assert.Error(t, s.Sync(context.Background()))
}

func TestSync_DocsPathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	s := NewSyncer(path, "")
	assert.ErrorContains(t, s.Sync(context.Background()), "not a directory")
}

func TestSync_MissingExamplesDirTolerated(t *testing.T) {
	s := NewSyncer(t.TempDir(), filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, s.Sync(context.Background()))
}
