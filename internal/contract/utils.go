package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/armory/schema"
)

// Score label constants.
const (
	TopValue  = "Top"  // Top value
	HighValue = "High" // High value
	MidValue  = "Mid"  // Mid value
	LowValue  = "Low"  // Low value
)

// Color variables for console output.
var (
	TopColor  = color.New(color.FgGreen, color.Bold) // TopColor marks the strongest weapons.
	HighColor = color.New(color.FgCyan, color.Bold)  // HighColor marks strong weapons.
	MidColor  = color.New(color.FgYellow)            // MidColor marks middling values, not bold.
	LowColor  = color.New(color.FgRed)               // LowColor marks the weakest values.
)

// GetColorLabel returns a colored text label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := schema.GetPlainLabel(score)

	switch text {
	case TopValue:
		return TopColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case MidValue:
		return MidColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetLinkDBFilePath returns the path to the SQLite DB file for link storage.
func GetLinkDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".armory_links.db"
	}
	return filepath.Join(homeDir, ".armory_links.db")
}

// TruncateText shortens text to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
