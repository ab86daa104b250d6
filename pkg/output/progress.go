package output

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

const progressTemplate = `{{ green "Comparing" }} {{ counters . }} directories {{ etime . }}`

// ProgressBar shows a running count of directories walked.
// It satisfies compare.Progress.
type ProgressBar struct {
	bar *pb.ProgressBar
}

// NewProgressBar starts a counter on w. Total is unknown up front, so the bar only counts.
func NewProgressBar(w io.Writer) *ProgressBar {
	bar := pb.ProgressBarTemplate(progressTemplate).New(0)
	bar.SetWriter(w)
	bar.Start()
	return &ProgressBar{bar: bar}
}

// Visit counts one directory pair
func (p *ProgressBar) Visit(string) {
	p.bar.Increment()
}

// Finish stops the counter and leaves the final line on screen
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
