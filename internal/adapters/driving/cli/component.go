package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
)

var (
	componentJSON    bool
	componentRelated bool
)

var componentCmd = &cobra.Command{
	Use:   "component [name]",
	Short: "Show the documentation page for a component",
	Args:  cobra.ExactArgs(1),
	RunE:  runComponent,
}

func init() {
	componentCmd.Flags().BoolVar(&componentJSON, "json", false, "output as JSON")
	componentCmd.Flags().BoolVar(&componentRelated, "related", false, "also list co-occurring components")
	rootCmd.AddCommand(componentCmd)
}

func runComponent(cmd *cobra.Command, args []string) error {
	if err := wire(); err != nil {
		return err
	}

	rec, err := docService.GetByComponent(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no component named %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("component lookup failed: %w", err)
	}

	if componentJSON {
		return printJSON(cmd, rec)
	}

	cmd.Printf("%s\n", rec.Title)
	if rec.Description != "" {
		cmd.Printf("%s\n", rec.Description)
	}
	cmd.Printf("URL: %s\n", rec.URL)
	cmd.Printf("Examples: %d\n", len(rec.CodeExamples))
	if len(rec.UtilityClasses) > 0 {
		cmd.Printf("Utilities: %s\n", strings.Join(rec.UtilityClasses, ", "))
	}

	if componentRelated {
		related, err := insightService.RelatedComponents(cmd.Context(), rec.ComponentName)
		if err != nil {
			return fmt.Errorf("related components failed: %w", err)
		}
		if len(related) > 0 {
			cmd.Println()
			cmd.Println("Related components:")
			for _, r := range related {
				cmd.Printf("  %s (%d)\n", r.Name, r.Count)
			}
		}
	}
	return nil
}
