package output

import (
	"fmt"
	"io"
	"time"

	"github.com/sdejongh/foldercompare/pkg/models"
)

// PrintSummary writes a short human-readable account of a finished comparison
func PrintSummary(w io.Writer, s *models.Summary) {
	if w == nil || s == nil {
		return
	}

	fmt.Fprintf(w, "Compared in %s\n", formatDuration(s.Duration))
	fmt.Fprintf(w, "  Folder 1:          %s\n", s.Folder1)
	fmt.Fprintf(w, "  Folder 2:          %s\n", s.Folder2)
	fmt.Fprintf(w, "  Directories:       %d\n", s.Stats.DirsVisited)
	fmt.Fprintf(w, "  Only in folder 1:  %d\n", s.Stats.LeftOnly)
	fmt.Fprintf(w, "  Only in folder 2:  %d\n", s.Stats.RightOnly)
	fmt.Fprintf(w, "  In both folders:   %d\n", s.Stats.InBoth)
	if s.Stats.Mismatched > 0 {
		fmt.Fprintf(w, "  File/dir mismatch: %d\n", s.Stats.Mismatched)
	}

	if len(s.Outputs) > 0 {
		fmt.Fprintf(w, "\nReports:\n")
		for _, path := range s.Outputs {
			fmt.Fprintf(w, "  %s\n", path)
		}
	}
}

// formatDuration formats duration in human-readable format
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
