package iostore

import (
	"fmt"
	"io"

	"github.com/huangsam/armory/schema"
)

// PrintLinkStatus prints link store status information.
func PrintLinkStatus(w io.Writer, status schema.LinkStatus) {
	_, _ = fmt.Fprintf(w, "Link Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Links: %d\n", status.TotalLinks)
	if status.TotalLinks > 0 {
		_, _ = fmt.Fprintf(w, "Last Saved: %s\n", status.LastSavedTime.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintf(w, "Oldest Saved: %s\n", status.OldestSaveTime.Format("2006-01-02 15:04:05"))
	}
}
