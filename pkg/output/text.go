package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sdejongh/foldercompare/pkg/models"
)

// TextWriter writes the fixed-layout plain-text report
type TextWriter struct{}

// NewTextWriter creates a new plain-text writer
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Format returns models.FormatText
func (w *TextWriter) Format() models.OutputFormat {
	return models.FormatText
}

// Write creates <base>.txt
func (w *TextWriter) Write(base string, in *Input) (string, error) {
	file, path, err := createReport(base, models.FormatText)
	if err != nil {
		return path, err
	}

	buf := bufio.NewWriter(file)
	err = writeText(buf, in)
	if err == nil {
		err = buf.Flush()
	}
	return path, finishReport(file, path, err)
}

func writeText(w io.Writer, in *Input) error {
	tw := &textWriter{w: w}
	leftRoot, rightRoot := in.Left.Root(), in.Right.Root()

	tw.printf("COMPARISON OF FILES BETWEEN FOLDERS:\n")
	tw.printf("\tFOLDER 1: %s\t\t%s\n", leftRoot, ResolveSize(in.Left, "."))
	tw.printf("\tFOLDER 2: %s\t\t%s\n", rightRoot, ResolveSize(in.Right, "."))
	tw.printf("\n\n")

	tw.printf("FILES ONLY IN: %s\n", leftRoot)
	for _, rel := range in.Record.Left {
		tw.line(in.LeftPath(rel), ResolveSize(in.Left, rel))
	}
	tw.none(len(in.Record.Left))
	tw.printf("\n\n")

	tw.printf("FILES ONLY IN: %s\n", rightRoot)
	for _, rel := range in.Record.Right {
		tw.line(in.RightPath(rel), ResolveSize(in.Right, rel))
	}
	tw.none(len(in.Record.Right))
	tw.printf("\n\n")

	tw.printf("FILES IN BOTH FOLDERS:\n")
	for _, p := range in.Record.Both {
		tw.line(in.LeftPath(p.Left), ResolveSize(in.Left, p.Left))
		tw.line(in.RightPath(p.Right), ResolveSize(in.Right, p.Right))
	}
	tw.none(len(in.Record.Both))

	// only present when some name is a file on one side and a directory on the other
	if len(in.Record.Mismatched) > 0 {
		tw.printf("\n\n")
		tw.printf("FILE IN ONE FOLDER, DIRECTORY IN THE OTHER:\n")
		for _, p := range in.Record.Mismatched {
			tw.line(in.LeftPath(p.Left), ResolveSize(in.Left, p.Left))
			tw.line(in.RightPath(p.Right), ResolveSize(in.Right, p.Right))
		}
	}

	return tw.err
}

// textWriter keeps the first write error so the layout code stays linear
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// line writes one entry: path padded to 100, size right-aligned to 20
func (t *textWriter) line(path, size string) {
	t.printf("\t%-100s|%20s\n", path, size)
}

func (t *textWriter) none(count int) {
	if count == 0 {
		t.printf("\tNone\n")
	}
}
