package cmd

import (
	"github.com/huangsam/armory/core"
	"github.com/huangsam/armory/internal/contract"
	"github.com/spf13/cobra"
)

// searchCmd lists the weapons that can still be added to a selection.
var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Find weapons by name.",
	Long: `List catalog weapons whose name contains the text, ignoring case.

Weapons already in the selection are left out, so the results are exactly
the weapons that could still be added. An empty text lists every weapon.

Examples:
  # Every sword
  armory search sword

  # Axes that are not selected yet
  armory search axe -w "Hand Axe"

  # The whole catalog as CSV
  armory search --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		text := ""
		if len(args) == 1 {
			text = args[0]
		}
		if err := core.ExecuteSearch(rootCtx, cfg, text); err != nil {
			contract.LogFatal("Cannot search weapons", err)
		}
	},
}
