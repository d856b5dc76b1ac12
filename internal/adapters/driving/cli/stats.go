package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over the index",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if err := wire(); err != nil {
		return err
	}

	stats, err := insightService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	if statsJSON {
		return printJSON(cmd, stats)
	}

	cmd.Printf("Documents: %d\n", stats.TotalDocuments)
	for _, sec := range stats.BySection {
		cmd.Printf("  %s: %d\n", sec.Section, sec.Count)
	}
	cmd.Printf("Templates: %d\n", stats.TotalTemplates)
	for category, count := range stats.TemplatesByCategory {
		cmd.Printf("  %s: %d\n", category, count)
	}
	if len(stats.TopComponents) > 0 {
		cmd.Println("Top components:")
		for _, c := range stats.TopComponents {
			cmd.Printf("  %s (%d)\n", c.Name, c.Weight)
		}
	}
	return nil
}
