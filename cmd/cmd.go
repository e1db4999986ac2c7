// Package cmd defines the command-line interface for armory.
package cmd

import (
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the link subcommands to the parent link command
	linkCmd.AddCommand(linkSaveCmd)
	linkCmd.AddCommand(linkOpenCmd)
	linkCmd.AddCommand(linkListCmd)
	linkCmd.AddCommand(linkDeleteCmd)
	linkCmd.AddCommand(linkStatusCmd)
	linkCmd.AddCommand(linkClearCmd)
	linkCmd.AddCommand(linkMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet or xlsx")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("base-url", contract.DefaultBaseURL, "Base URL that share queries are appended to")
	rootCmd.PersistentFlags().Int("random-count", contract.DefaultRandomCount, "Weapons picked at random when no selected weapon exists")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for the random picks (0 = different every run)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a weapon catalog YAML file (default: embedded catalog)")
	rootCmd.PersistentFlags().StringArrayP("weapon", "w", nil, "Weapon to select, repeatable and in order")
	rootCmd.PersistentFlags().StringArrayP("category", "c", nil, "Category to chart such as 'Speed - Average', repeatable")
	rootCmd.PersistentFlags().StringP("target", "t", "", "Armor target: Average or Light or Medium or Heavy")
	rootCmd.PersistentFlags().StringP("query", "q", "", "Share query or full share link to restore")
	rootCmd.PersistentFlags().Bool("all", false, "Select every weapon of the catalog")
	rootCmd.PersistentFlags().String("chart", contract.ChartAll, "Charts to print: all or radar or bar")
	rootCmd.PersistentFlags().String("link-backend", string(schema.SQLiteBackend), "Link store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("link-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address the HTTP server listens on")
	serveCmd.Flags().Float64("rate-limit", contract.DefaultRateLimit, "Requests per second allowed (0 = unlimited)")
	serveCmd.Flags().Int("rate-burst", contract.DefaultRateBurst, "Requests allowed in a single burst")
	serveCmd.Flags().Bool("debug", false, "Use the development logger")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// linkMigrateCmd reads its flag directly; "version" is not a config key.
	linkMigrateCmd.Flags().Int("version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
}
