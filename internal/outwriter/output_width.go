package outwriter

import (
	"os"

	"github.com/huangsam/armory/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableTextWidth calculates the maximum width for a free text column
// given how many other columns the table carries.
func GetMaxTableTextWidth(cfg *contract.Config, otherColumns int) int {
	termWidth := cfg.Width
	if termWidth <= 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Each fixed column with borders and padding
	available := termWidth - otherColumns*14 - 4
	if available < 12 {
		return 12
	}
	if available > 90 {
		return 90
	}
	return available
}
