package github

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSyncer_Defaults(t *testing.T) {
	s := NewSyncer(Options{CorpusDir: "/tmp/corpus"})

	assert.Equal(t, DefaultOwner, s.opts.Owner)
	assert.Equal(t, DefaultRepo, s.opts.Repo)
	assert.Equal(t, DefaultRef, s.opts.Ref)
	assert.Equal(t, filepath.Join("/tmp/corpus", "docs"), s.DocsDir())
	assert.Equal(t, filepath.Join("/tmp/corpus", "examples"), s.ExamplesDir())
}

func TestCorpusPath(t *testing.T) {
	s := NewSyncer(Options{})

	tests := []struct {
		entry string
		want  string
		ok    bool
	}{
		{"bootstrap-abc123/site/content/docs/5.3/components/modal.mdx", "docs/components/modal.mdx", true},
		{"bootstrap-abc123/site/content/examples/dashboard/index.html", "examples/dashboard/index.html", true},
		{"bootstrap-abc123/site/content/docs/4.0/components/modal.mdx", "", false},
		{"bootstrap-abc123/js/src/modal.js", "", false},
		{"bootstrap-abc123/site/content/docs/5.3/../../../etc/passwd", "", false},
		{"no-prefix-directory", "", false},
	}
	for _, tc := range tests {
		got, ok := s.corpusPath(tc.entry)
		assert.Equal(t, tc.ok, ok, tc.entry)
		assert.Equal(t, tc.want, got, tc.entry)
	}
}

// buildArchive assembles a gzipped tarball from entry name to content.
func buildArchive(t *testing.T, entries map[string]string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return &buf
}

func TestExtractArchive_KeepsOnlyCorpusSubtrees(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"repo-sha/site/content/docs/5.3/components/modal.mdx": "modal docs",
		"repo-sha/site/content/examples/album/index.html":     "<html></html>",
		"repo-sha/README.md":                                  "ignored",
		"repo-sha/js/src/modal.js":                            "ignored",
	})
	s := NewSyncer(Options{})
	staging := t.TempDir()

	count, err := s.extractArchive(archive, staging)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	content, err := os.ReadFile(filepath.Join(staging, "docs", "components", "modal.mdx"))
	require.NoError(t, err)
	assert.Equal(t, "modal docs", string(content))

	_, err = os.Stat(filepath.Join(staging, "examples", "album", "index.html"))
	assert.NoError(t, err)
}

func TestExtractArchive_NoCorpusEntriesYieldsZero(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"repo-sha/README.md":             "ignored",
		"repo-sha/site/assets/js/app.js": "ignored",
	})
	s := NewSyncer(Options{})

	count, err := s.extractArchive(archive, t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExtractArchive_NotGzip(t *testing.T) {
	s := NewSyncer(Options{})
	_, err := s.extractArchive(bytes.NewBufferString("plain text"), t.TempDir())
	assert.ErrorContains(t, err, "gzip")
}

func TestSwapCorpus_ReplacesLiveCorpus(t *testing.T) {
	root := t.TempDir()
	corpusDir := filepath.Join(root, "corpus")
	require.NoError(t, os.MkdirAll(filepath.Join(corpusDir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(corpusDir, "docs", "old.mdx"), []byte("old"), 0o644))

	staging := filepath.Join(root, ".corpus-staging")
	require.NoError(t, os.MkdirAll(filepath.Join(staging, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staging, "docs", "new.mdx"), []byte("new"), 0o644))

	s := NewSyncer(Options{CorpusDir: corpusDir})
	require.NoError(t, s.swapCorpus(staging))

	_, err := os.Stat(filepath.Join(corpusDir, "docs", "new.mdx"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(corpusDir, "docs", "old.mdx"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(corpusDir + ".previous")
	assert.True(t, os.IsNotExist(err))
}

func TestSwapCorpus_FirstSyncNoPreviousCorpus(t *testing.T) {
	root := t.TempDir()
	corpusDir := filepath.Join(root, "corpus")

	staging := filepath.Join(root, ".corpus-staging")
	require.NoError(t, os.MkdirAll(filepath.Join(staging, "docs"), 0o755))

	s := NewSyncer(Options{CorpusDir: corpusDir})
	require.NoError(t, s.swapCorpus(staging))

	info, err := os.Stat(filepath.Join(corpusDir, "docs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
