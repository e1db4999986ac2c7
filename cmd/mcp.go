package cmd

import (
	"github.com/huangsam/armory/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the Armory MCP server",
	Long:    `Launch an MCP server on stdio that lets AI agents search weapons, build charts, share links and edit a selection kept for the whole session.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}
