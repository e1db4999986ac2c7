package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/armory/core"
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/internal/iostore"
	"github.com/huangsam/armory/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// linkSetup loads minimal configuration needed for link store maintenance.
// It does not open the store, since opening applies every pending migration.
func linkSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("link-backend")))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidLinkBackends[backend]; !ok {
		return fmt.Errorf("invalid link backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("link-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.LinkBackend = backend
	cfg.LinkDBConnect = connStr
	return nil
}

// linkSetupWrapper wraps linkSetup to provide PreRunE for link maintenance commands.
func linkSetupWrapper(_ *cobra.Command, _ []string) error {
	return linkSetup()
}

// linkCmd focused on saved share links.
//
// Note: status, clear and migrate use the minimal linkSetup instead of the
// full sharedSetup, so they work without a valid selection or output config.
var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Save and reopen named share links",
	Long: `Keep named share links in a local or shared database.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  save    - Save the current selection under a name
  open    - Chart a saved link
  list    - List saved links
  delete  - Delete a saved link
  status  - Show link store statistics and connection info
  clear   - Remove every saved link
  migrate - Move the link schema to a migration version

Examples:
  # Save a comparison and chart it later
  armory link save duel -w Longsword -w Messer --target Heavy
  armory link open duel

  # Use a shared PostgreSQL database
  ARMORY_LINK_BACKEND=postgresql ARMORY_LINK_DB_CONNECT="host=... dbname=armory" armory link list`,
}

// linkSaveCmd saves the selection under a name.
var linkSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the selection as a named link",
	Long: `Store the share query of the selection under a name.

Saving an existing name replaces its query and keeps its id.

Examples:
  armory link save duel -w Longsword -w Messer
  armory link save shared --query "https://example.com/compare?weapon=Dagger"`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		link, err := core.ExecuteLinkSave(rootCtx, cfg, storeManager, args[0])
		if err != nil {
			contract.LogFatal("Cannot save link", err)
		}
		fmt.Printf("Saved link %q (%s)\n", link.Name, link.ID)
		fmt.Printf("🔗 %s?%s\n", cfg.BaseURL, link.Query)
	},
}

// linkOpenCmd charts a saved link.
var linkOpenCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Chart a saved link",
	Long: `Restore the selection of a saved link and chart it like 'armory chart'.

Output flags apply as usual; selection flags are ignored.

Examples:
  armory link open duel
  armory link open duel --chart radar --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteLinkOpen(rootCtx, cfg, storeManager, args[0]); err != nil {
			contract.LogFatal("Cannot open link", err)
		}
	},
}

// linkListCmd lists saved links.
var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved links, most recent first",
	Long: `List every saved link with its save time and share query.

Examples:
  armory link list
  armory link list --output parquet --output-file links.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLinkList(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list links", err)
		}
	},
}

// linkDeleteCmd deletes a saved link.
var linkDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Short:   "Delete a saved link",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteLinkDelete(rootCtx, cfg, storeManager, args[0]); err != nil {
			contract.LogFatal("Cannot delete link", err)
		}
		fmt.Printf("Deleted link %q\n", args[0])
	},
}

// linkStatusCmd shows link store status.
var linkStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display link store statistics and connection details",
	Long: `Show detailed information about the link store.

Displays:
- Backend type and connection status
- Total number of saved links
- Last and oldest save timestamps

Examples:
  armory link status`,
	PreRunE: linkSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.InitStores(cfg.LinkBackend, cfg.LinkDBConnect); err != nil {
			contract.LogFatal("Failed to open link store", err)
		}
		status, err := iostore.Manager.GetLinkStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get link store status", err)
		}
		iostore.PrintLinkStatus(os.Stdout, status)
	},
}

// linkClearCmd clears the link store.
var linkClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved link",
	Long: `Delete every saved link from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the link table and its migration history

Examples:
  # Clear the SQLite store (default)
  armory link clear

  # Clear a MySQL store (set connection string via env variable)
  ARMORY_LINK_BACKEND=mysql ARMORY_LINK_DB_CONNECT="..." armory link clear`,
	PreRunE: linkSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ClearLinks(cfg.LinkBackend, cfg.LinkDBConnect, cfg.LinkDBConnect); err != nil {
			contract.LogFatal("Failed to clear links", err)
		}
		fmt.Println("Links cleared successfully.")
	},
}

// linkMigrateCmd applies or rolls back link schema migrations.
var linkMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the link store schema",
	Long: `Apply or roll back the schema migrations of the link store.

Opening the store always applies pending migrations, so this is mostly
useful to roll back before downgrading, or to prepare a shared database.

Examples:
  # Apply every migration
  armory link migrate

  # Roll back to the first version
  armory link migrate --version 1

  # Remove the schema entirely
  armory link migrate --version 0`,
	PreRunE: linkSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		target, err := cmd.Flags().GetInt("version")
		if err != nil {
			contract.LogFatal("Invalid --version", err)
		}
		if err := iostore.MigrateLinks(cfg.LinkBackend, cfg.LinkDBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate links", err)
		}
	},
}
