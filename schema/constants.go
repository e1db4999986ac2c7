package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// ChartKind represents the shape of a rendered dataset.
	ChartKind string

	// DatabaseBackend represents the database backend for the link store.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
)

// All chart kinds supported.
const (
	RadarChart ChartKind = "radar"
	BarChart   ChartKind = "bar"
)

// All link store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}

// ValidLinkBackends lists all valid link store backends.
var ValidLinkBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Defaults shared by the CLI, the HTTP server and the MCP tools.
const (
	DefaultRandomCount = 3
	DefaultPrecision   = 2
	DefaultBaseURL     = "https://armory.local/"
)
