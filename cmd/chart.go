package cmd

import (
	"github.com/huangsam/armory/core"
	"github.com/huangsam/armory/internal/contract"
	"github.com/spf13/cobra"
)

// chartCmd renders the radar and bar charts of a selection.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart a weapon selection.",
	Long: `Build the radar chart and one bar chart per category for a weapon selection.

The selection comes from the selection flags or from a share query:
- Weapons that do not exist are skipped with a warning
- With no valid weapon, --random-count weapons are picked at random
- With no category, Speed, Range and Damage averages are charted
- Damage values are adjusted for the armor target

The radar chart normalizes every value against the whole catalog, so the
scores line up across categories. Bar charts keep raw values, except speed.

Examples:
  # Compare two weapons against heavy armor
  armory chart -w Longsword -w Messer --target Heavy

  # Restore a share link
  armory chart --query "https://example.com/compare?weapon=Dagger&weapon=Zweihander"

  # Only stabbing damage, as JSON
  armory chart -w Dagger -w Longsword -c "Damage - Stab" --output json

  # Every weapon, exported to a spreadsheet
  armory chart --all --output xlsx --output-file armory.xlsx`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot chart selection", err)
		}
	},
}
