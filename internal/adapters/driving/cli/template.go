package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
)

var (
	templateLimit    int
	templateCategory string
	templateJSON     bool
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Query the starter page templates",
}

var templateSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search starter templates",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateSearch,
}

var templateShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one template's metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

var templateCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List template categories",
	RunE:  runTemplateCategories,
}

func init() {
	templateSearchCmd.Flags().IntVarP(&templateLimit, "limit", "n", 10, "maximum number of results")
	templateSearchCmd.Flags().StringVarP(&templateCategory, "category", "c", "", "restrict to one category")
	templateSearchCmd.Flags().BoolVar(&templateJSON, "json", false, "output as JSON")
	templateShowCmd.Flags().BoolVar(&templateJSON, "json", false, "output as JSON")

	templateCmd.AddCommand(templateSearchCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateCategoriesCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateSearch(cmd *cobra.Command, args []string) error {
	if err := wire(); err != nil {
		return err
	}

	opts := domain.SearchOptions{Limit: templateLimit, Category: templateCategory}
	results, err := templateService.Search(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("template search failed: %w", err)
	}

	if templateJSON {
		return printJSON(cmd, results)
	}
	if len(results) == 0 {
		cmd.Println("No templates found.")
		return nil
	}
	for i := range results {
		rec := results[i].Record
		cmd.Printf("  [%d] %s (%s, %s)\n", i+1, rec.Name, rec.Category, rec.Complexity)
		cmd.Printf("      %s\n", rec.Description)
	}
	return nil
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	if err := wire(); err != nil {
		return err
	}

	rec, err := templateService.GetByName(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no template named %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("template lookup failed: %w", err)
	}

	if templateJSON {
		return printJSON(cmd, rec)
	}

	cmd.Printf("%s - %s\n", rec.Name, rec.Title)
	cmd.Printf("Category: %s  Complexity: %s\n", rec.Category, rec.Complexity)
	cmd.Printf("%s\n", rec.Description)
	cmd.Printf("URL: %s\n", rec.URL)
	if len(rec.Components) > 0 {
		cmd.Printf("Components: %s\n", strings.Join(rec.Components, ", "))
	}
	if rec.HasRTLVariant {
		cmd.Printf("RTL variant: %s\n", rec.RTLTemplateName)
	}
	return nil
}

func runTemplateCategories(cmd *cobra.Command, _ []string) error {
	if err := wire(); err != nil {
		return err
	}

	categories, err := templateService.ListCategories(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing categories failed: %w", err)
	}
	for _, cat := range categories {
		cmd.Printf("%s (%d): %s\n", cat.Category, cat.Count, strings.Join(cat.Templates, ", "))
	}
	return nil
}
