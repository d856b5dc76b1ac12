package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()

	settings, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data"), settings.DataDir)
	assert.Equal(t, filepath.Join(dir, "corpus"), settings.CorpusDir)
	assert.Equal(t, "github", settings.Source)
	assert.Empty(t, settings.GitHub.Owner)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	config := `
source = "local"
data_dir = "/srv/bootdocs/data"

[github]
owner = "acme"
repo = "docs"
ref = "v1.2.3"
token = "secret"

[local]
docs_dir = "/srv/corpus/docs"
examples_dir = "/srv/corpus/examples"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(config), 0o644))

	settings, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "local", settings.Source)
	assert.Equal(t, "/srv/bootdocs/data", settings.DataDir)
	// Unset keys still default.
	assert.Equal(t, filepath.Join(dir, "corpus"), settings.CorpusDir)
	assert.Equal(t, "acme", settings.GitHub.Owner)
	assert.Equal(t, "v1.2.3", settings.GitHub.Ref)
	assert.Equal(t, "/srv/corpus/docs", settings.Local.DocsDir)
	assert.Equal(t, "/srv/corpus/examples", settings.Local.ExamplesDir)
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("source = [unterminated"), 0o644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "parse config.toml")
}
