package cmd

import (
	"github.com/huangsam/armory/core"
	"github.com/huangsam/armory/internal/contract"
	"github.com/spf13/cobra"
)

// categoriesCmd lists every chartable category.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the chartable categories.",
	Long: `List every category with its unit and whether armor target bonuses apply.

Use the category names with -c/--category, e.g. -c "Windup - Overhead".

Examples:
  armory categories
  armory categories --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCategories(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list categories", err)
		}
	},
}
