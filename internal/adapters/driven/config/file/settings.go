// Package file loads tool settings from a TOML file in the user's
// config directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultDirName is the per-user directory holding config and data.
const DefaultDirName = ".bootdocs"

// Settings is the on-disk configuration. Every field has a working
// zero-config default; the file only overrides.
type Settings struct {
	// DataDir holds the search index database.
	DataDir string `toml:"data_dir"`

	// CorpusDir holds the synced documentation corpus.
	CorpusDir string `toml:"corpus_dir"`

	// Source selects the corpus syncer: "github" (default) or "local".
	Source string `toml:"source"`

	GitHub GitHubSettings `toml:"github"`
	Local  LocalSettings  `toml:"local"`
}

// GitHubSettings configures the upstream repository sync.
type GitHubSettings struct {
	Owner string `toml:"owner"`
	Repo  string `toml:"repo"`
	Ref   string `toml:"ref"`

	// Token is an optional personal access token.
	Token string `toml:"token"`
}

// LocalSettings points at an already-on-disk corpus.
type LocalSettings struct {
	DocsDir     string `toml:"docs_dir"`
	ExamplesDir string `toml:"examples_dir"`
}

// Load reads settings from configDir/config.toml, filling defaults for
// anything unset. A missing file yields pure defaults. If configDir is
// empty, ~/.bootdocs is used.
func Load(configDir string) (*Settings, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		configDir = filepath.Join(home, DefaultDirName)
	}

	settings := &Settings{}

	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	if err == nil {
		if err := toml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parse config.toml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config.toml: %w", err)
	}

	settings.applyDefaults(configDir)
	return settings, nil
}

func (s *Settings) applyDefaults(configDir string) {
	if s.DataDir == "" {
		s.DataDir = filepath.Join(configDir, "data")
	}
	if s.CorpusDir == "" {
		s.CorpusDir = filepath.Join(configDir, "corpus")
	}
	if s.Source == "" {
		s.Source = "github"
	}
}
