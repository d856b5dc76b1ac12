// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bootdocs/internal/adapters/driven/catalog"
	configfile "github.com/custodia-labs/bootdocs/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bootdocs/internal/adapters/driven/github"
	"github.com/custodia-labs/bootdocs/internal/adapters/driven/localfs"
	"github.com/custodia-labs/bootdocs/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driving"
	"github.com/custodia-labs/bootdocs/internal/core/services"
	"github.com/custodia-labs/bootdocs/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Wired services, populated by wire() on first use.
var (
	docService      driving.DocService
	templateService driving.TemplateService
	insightService  driving.InsightService
	refreshService  driving.RefreshService

	wireOnce sync.Once
	wireErr  error
)

var rootCmd = &cobra.Command{
	Use:   "bootdocs",
	Short: "Bootstrap documentation search and retrieval",
	Long: `bootdocs indexes the Bootstrap documentation and starter templates
into a local full-text search index, and serves structured queries over
them from the command line or as an MCP server.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.bootdocs)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// wire builds the service graph once: settings, store, catalog, syncer,
// services. Commands that need services call it from their RunE.
func wire() error {
	wireOnce.Do(func() {
		wireErr = doWire()
	})
	return wireErr
}

func doWire() error {
	settings, err := configfile.Load(configDir)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("opening index store: %w", err)
	}

	cat, err := catalog.New()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	var syncer driven.CorpusSyncer
	switch settings.Source {
	case "local":
		syncer = localfs.NewSyncer(settings.Local.DocsDir, settings.Local.ExamplesDir)
	case "github":
		syncer = github.NewSyncer(github.Options{
			Owner:     settings.GitHub.Owner,
			Repo:      settings.GitHub.Repo,
			Ref:       settings.GitHub.Ref,
			Token:     settings.GitHub.Token,
			CorpusDir: settings.CorpusDir,
		})
	default:
		return fmt.Errorf("unknown corpus source %q (want github or local)", settings.Source)
	}

	docIndex := store.DocumentIndex()
	templateIndex := store.TemplateIndex()

	docService = services.NewDocsService(docIndex, cat)
	templateService = services.NewTemplatesService(templateIndex, cat)
	insightService = services.NewInsightsService(docIndex, templateIndex, cat)
	refreshService = services.NewRefreshOrchestrator(syncer, docIndex, templateIndex, cat)
	return nil
}
