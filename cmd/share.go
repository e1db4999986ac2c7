package cmd

import (
	"github.com/huangsam/armory/core"
	"github.com/huangsam/armory/internal/contract"
	"github.com/spf13/cobra"
)

// shareCmd prints the share link of a selection.
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the share link of a weapon selection.",
	Long: `Encode a weapon selection as a share link.

The link lists the target, then every weapon, then every category, in order.
Opening it with --query restores the same selection.

Examples:
  # Link for two weapons against light armor
  armory share -w Dagger -w Messer --target Light

  # Canonical form of an existing link
  armory share --query "weapon=Dagger&target=Heavy"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteShare(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build share link", err)
		}
	},
}
