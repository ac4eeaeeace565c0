package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
)

var guidesCmd = &cobra.Command{
	Use:   "guides",
	Short: "Inspect and maintain the guide library",
}

var guidesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List guides, optionally for a single category",
	RunE:  runGuidesList,
}

var guidesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a guide's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runGuidesShow,
}

var guidesContextCmd = &cobra.Command{
	Use:   "context <description...>",
	Short: "Find the guides matching a free-text task description",
	Long: `Resolve a description of what you are building or debugging against
the how-to guides, the same way the MCP get_guides_by_context tool does.

Examples:
  chainguide guides context wallet connection
  chainguide guides context "gas costs too high"`,
	RunE: runGuidesContext,
}

var guidesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the starter guides into the guide root",
	Long: `Write the embedded starter guide set under the guide root. Existing
files are never overwritten, so it is safe to run after editing guides.`,
	RunE: runGuidesInit,
}

func init() {
	guidesListCmd.Flags().StringP("category", "c", "", "limit to one category")
	guidesShowCmd.Flags().StringP("category", "c", string(domain.CategoryHowTo), "category to look in")

	guidesCmd.AddCommand(guidesListCmd)
	guidesCmd.AddCommand(guidesShowCmd)
	guidesCmd.AddCommand(guidesContextCmd)
	guidesCmd.AddCommand(guidesInitCmd)
	rootCmd.AddCommand(guidesCmd)
}

func runGuidesList(cmd *cobra.Command, _ []string) error {
	flagCategory, err := cmd.Flags().GetString("category")
	if err != nil {
		return err
	}

	categories := domain.AllCategories()
	if flagCategory != "" {
		category, err := domain.ParseCategory(flagCategory)
		if err != nil {
			return fmt.Errorf("%w (valid: %s)", err, categoryNames())
		}
		categories = []domain.Category{category}
	}

	for _, category := range categories {
		names, err := libraryService.ListGuides(cmd.Context(), category)
		if err != nil {
			return fmt.Errorf("listing %s: %w", category, err)
		}

		cmd.Printf("%s (%d)\n", category.DisplayName(), len(names))
		for _, name := range names {
			cmd.Printf("  %s\n", name)
		}
	}

	return nil
}

func runGuidesShow(cmd *cobra.Command, args []string) error {
	flagCategory, err := cmd.Flags().GetString("category")
	if err != nil {
		return err
	}
	category, err := domain.ParseCategory(flagCategory)
	if err != nil {
		return fmt.Errorf("%w (valid: %s)", err, categoryNames())
	}

	guide, err := libraryService.GetGuide(cmd.Context(), category, args[0])
	if err != nil {
		return err
	}

	cmd.Println(guide.Content)
	return nil
}

func runGuidesContext(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	result, err := libraryService.ResolveContext(cmd.Context(), query)
	if err != nil {
		return err
	}

	switch {
	case result.IsSingle():
		guide, err := libraryService.GetGuide(cmd.Context(), domain.CategoryHowTo, result.Names[0])
		if err != nil {
			return err
		}
		cmd.Println(guide.Content)

	case result.IsMultiple():
		cmd.Println("Several guides match:")
		for _, name := range result.Names {
			cmd.Printf("  %s\n", name)
		}

	default:
		cmd.Println("No guide matched. Available guides:")
		names, err := libraryService.ListGuides(cmd.Context(), domain.CategoryHowTo)
		if err != nil {
			return err
		}
		for _, name := range names {
			cmd.Printf("  %s\n", name)
		}
	}

	return nil
}

func runGuidesInit(cmd *cobra.Command, _ []string) error {
	if err := guideStore.Seed(); err != nil {
		return fmt.Errorf("installing starter guides: %w", err)
	}
	cmd.Printf("Starter guides installed under %s\n", guideStore.Root())
	return nil
}

// categoryNames renders the valid category list for error messages.
func categoryNames() string {
	names := make([]string, 0, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
