package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Sync the documentation corpus and rebuild the search index",
	Long: `Downloads the documentation corpus from the configured source and
rebuilds both search collections. The previous index stays queryable
until the rebuild commits.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if err := wire(); err != nil {
		return err
	}

	result, err := refreshService.Refresh(cmd.Context())
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	cmd.Printf("Indexed %d documents and %d templates", result.DocumentsIndexed, result.TemplatesIndexed)
	if result.FilesSkipped > 0 {
		cmd.Printf(" (%d files skipped)", result.FilesSkipped)
	}
	cmd.Println()
	return nil
}
