package contract

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/huangsam/armory/core/algo"
	"github.com/huangsam/armory/schema"
)

// Default values for configuration.
const (
	DefaultPrecision   = schema.DefaultPrecision
	MaxPrecision       = 4
	DefaultRandomCount = schema.DefaultRandomCount
	DefaultBaseURL     = schema.DefaultBaseURL
	DefaultAddr        = "127.0.0.1:8080"
	DefaultRateLimit   = 10.0
	DefaultRateBurst   = 20
)

// Chart filters accepted by --chart.
const (
	ChartAll   = "all"
	ChartRadar = string(schema.RadarChart)
	ChartBar   = string(schema.BarChart)
)

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	BaseURL     string
	RandomCount int
	Seed        uint64 // 0 picks a fresh seed per run
	CatalogPath string // Empty uses the embedded catalog

	// Query is a share query or full share link given through --query
	Query string
	// Selection holds the share pairs assembled from the selection flags
	Selection []schema.Pair
	SelectAll bool
	Chart     string

	LinkBackend   schema.DatabaseBackend
	LinkDBConnect string // Please use env var as this is plaintext

	Addr      string
	RateLimit float64
	RateBurst int
	Debug     bool

	// CustomBonuses holds only the overrides from the config file
	CustomBonuses algo.BonusTable

	// Bonuses is the final table: defaults with custom overrides applied
	Bonuses algo.BonusTable
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Output        string  `mapstructure:"output"`
	OutputFile    string  `mapstructure:"output-file"`
	Precision     int     `mapstructure:"precision"`
	Width         int     `mapstructure:"width"`
	Color         string  `mapstructure:"color"`
	BaseURL       string  `mapstructure:"base-url"`
	RandomCount   int     `mapstructure:"random-count"`
	Seed          uint64  `mapstructure:"seed"`
	Catalog       string  `mapstructure:"catalog"`
	LinkBackend   string  `mapstructure:"link-backend"`
	LinkDBConnect string  `mapstructure:"link-db-connect"`
	Addr          string  `mapstructure:"addr"`
	RateLimit     float64 `mapstructure:"rate-limit"`
	RateBurst     int     `mapstructure:"rate-burst"`
	Debug         bool    `mapstructure:"debug"`

	// --- Selection flags shared by chart, share and link save ---
	Weapons    []string `mapstructure:"weapon"`
	Categories []string `mapstructure:"category"`
	Target     string   `mapstructure:"target"`
	Query      string   `mapstructure:"query"`
	All        bool     `mapstructure:"all"`
	Chart      string   `mapstructure:"chart"`

	// --- Custom bonuses from config file, as bonus.<target>.<damage type> ---
	Bonus map[string]map[string]float64 `mapstructure:"bonus"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Selection = slices.Clone(c.Selection)
	if c.CustomBonuses != nil {
		clone.CustomBonuses = algo.BonusTable{}.Merge(c.CustomBonuses)
	}
	if c.Bonuses != nil {
		clone.Bonuses = algo.BonusTable{}.Merge(c.Bonuses)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := validateServerInputs(cfg, input); err != nil {
		return err
	}
	if err := processSelection(cfg, input); err != nil {
		return err
	}
	if err := processCustomBonuses(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("link-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("link-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Seed = input.Seed
	cfg.CatalogPath = input.Catalog
	cfg.Debug = input.Debug

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx", input.Output)
	}
	if (cfg.Output == schema.ParquetOut || cfg.Output == schema.XLSXOut) && cfg.OutputFile == "" {
		return fmt.Errorf("%s output requires --output-file", cfg.Output)
	}

	// --- 2. Random fallback size ---
	if input.RandomCount < 0 {
		return fmt.Errorf("random-count cannot be negative (received %d)", input.RandomCount)
	}
	cfg.RandomCount = input.RandomCount

	// --- 3. Share link base ---
	cfg.BaseURL = input.BaseURL
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base-url '%s'. must be an absolute URL", input.BaseURL)
	}

	return nil
}

// validateBackendConfigs validates the link store backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.LinkBackend = schema.DatabaseBackend(strings.ToLower(input.LinkBackend))
	if cfg.LinkBackend == "" {
		cfg.LinkBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidLinkBackends[cfg.LinkBackend]; !ok {
		return fmt.Errorf("invalid link backend '%s'. must be sqlite, mysql, postgresql, none", input.LinkBackend)
	}
	cfg.LinkDBConnect = input.LinkDBConnect
	return ValidateDatabaseConnectionString(cfg.LinkBackend, cfg.LinkDBConnect)
}

// validateServerInputs validates the HTTP listener and its rate limiter.
func validateServerInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Addr = input.Addr
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if input.RateLimit < 0 {
		return fmt.Errorf("rate-limit cannot be negative (received %g)", input.RateLimit)
	}
	cfg.RateLimit = input.RateLimit
	if input.RateBurst < 1 && input.RateLimit > 0 {
		return fmt.Errorf("rate-burst must be at least 1 when rate-limit is set (received %d)", input.RateBurst)
	}
	cfg.RateBurst = input.RateBurst
	return nil
}

// processSelection keeps --query as is or turns the selection flags into share pairs.
// Flags use the same keys as a share link so both paths decode identically.
func processSelection(cfg *Config, input *ConfigRawInput) error {
	cfg.SelectAll = input.All

	cfg.Chart = strings.ToLower(input.Chart)
	switch cfg.Chart {
	case "":
		cfg.Chart = ChartAll
	case ChartAll, ChartRadar, ChartBar:
	default:
		return fmt.Errorf("invalid chart '%s'. must be all, radar, bar", input.Chart)
	}

	hasFlags := input.Target != "" || len(input.Weapons) > 0 || len(input.Categories) > 0
	if input.Query != "" {
		if hasFlags {
			return fmt.Errorf("--query cannot be combined with --target, --weapon or --category")
		}
		cfg.Query = input.Query
		return nil
	}

	var pairs []schema.Pair
	if input.Target != "" {
		t, ok := schema.ParseTarget(input.Target)
		if !ok {
			return fmt.Errorf("invalid target '%s'. must be one of %s", input.Target, targetChoices())
		}
		pairs = append(pairs, schema.Pair{Key: "target", Value: t.String()})
	}
	for _, w := range input.Weapons {
		if strings.TrimSpace(w) != "" {
			pairs = append(pairs, schema.Pair{Key: "weapon", Value: w})
		}
	}
	for _, raw := range input.Categories {
		c, ok := schema.ParseCategory(raw)
		if !ok {
			return fmt.Errorf("invalid category '%s'. run 'armory categories' for the list", raw)
		}
		pairs = append(pairs, schema.Pair{Key: "category", Value: c.String()})
	}
	cfg.Selection = pairs
	return nil
}

// ProcessBonusRawInput converts bonus.<target>.<damage type> entries into a table.
func ProcessBonusRawInput(raw map[string]map[string]float64) (algo.BonusTable, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	table := make(algo.BonusTable, len(raw))
	for targetText, byType := range raw {
		t, ok := schema.ParseTarget(targetText)
		if !ok {
			return nil, fmt.Errorf("invalid bonus target '%s'. must be one of %s", targetText, targetChoices())
		}
		for typeText, multiplier := range byType {
			dt, ok := schema.ParseDamageType(typeText)
			if !ok {
				return nil, fmt.Errorf("invalid bonus damage type '%s' for target %s", typeText, t)
			}
			if multiplier <= 0 {
				return nil, fmt.Errorf("bonus for %s/%s must be positive (received %g)", t, dt, multiplier)
			}
			if table[t] == nil {
				table[t] = make(map[schema.DamageType]float64)
			}
			table[t][dt] = multiplier
		}
	}
	return table, nil
}

// processCustomBonuses converts the raw input into the final bonus tables.
func processCustomBonuses(cfg *Config, input *ConfigRawInput) error {
	custom, err := ProcessBonusRawInput(input.Bonus)
	if err != nil {
		return err
	}
	cfg.CustomBonuses = custom
	cfg.Bonuses = algo.GetDefaultBonuses().Merge(custom)
	return nil
}

func targetChoices() string {
	names := make([]string, len(schema.AllTargets))
	for i, t := range schema.AllTargets {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// RevalidateSelection replaces the selection of cfg with the given inputs,
// validated the same way as the selection flags.
func RevalidateSelection(cfg *Config, query, target string, weapons, categories []string, chart string) error {
	input := &ConfigRawInput{
		Query:      query,
		Target:     target,
		Weapons:    weapons,
		Categories: categories,
		Chart:      chart,
	}
	cfg.Query, cfg.Selection = "", nil
	return processSelection(cfg, input)
}
