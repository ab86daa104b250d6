package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdejongh/foldercompare/pkg/models"
)

// JSONWriter writes the machine-readable report, including mismatched entries
type JSONWriter struct {
	now func() time.Time
}

// NewJSONWriter creates a new JSON writer
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{now: time.Now}
}

// Format returns models.FormatJSON
func (w *JSONWriter) Format() models.OutputFormat {
	return models.FormatJSON
}

type jsonEntry struct {
	Path string `json:"path"`
	Size string `json:"size"`
}

type jsonPair struct {
	Folder1 jsonEntry `json:"folder1"`
	Folder2 jsonEntry `json:"folder2"`
}

type jsonReport struct {
	Generated   string      `json:"generated"`
	OperationID string      `json:"operation_id,omitempty"`
	Folder1     string      `json:"folder1"`
	Folder2     string      `json:"folder2"`
	Left        []jsonEntry `json:"left"`
	Right       []jsonEntry `json:"right"`
	Both        []jsonPair  `json:"both"`
	Mismatched  []jsonPair  `json:"mismatched"`
}

// Write creates <base>.json
func (w *JSONWriter) Write(base string, in *Input) (string, error) {
	file, path, err := createReport(base, models.FormatJSON)
	if err != nil {
		return path, err
	}

	err = w.encode(file, in)
	return path, finishReport(file, path, err)
}

func (w *JSONWriter) encode(out io.Writer, in *Input) error {
	report := jsonReport{
		Generated:   w.now().Format(time.RFC3339),
		OperationID: in.OperationID,
		Folder1:     in.Left.Root(),
		Folder2:     in.Right.Root(),
		Left:        make([]jsonEntry, 0, len(in.Record.Left)),
		Right:       make([]jsonEntry, 0, len(in.Record.Right)),
		Both:        make([]jsonPair, 0, len(in.Record.Both)),
		Mismatched:  make([]jsonPair, 0, len(in.Record.Mismatched)),
	}

	for _, rel := range in.Record.Left {
		report.Left = append(report.Left, jsonEntry{Path: in.LeftPath(rel), Size: ResolveSize(in.Left, rel)})
	}
	for _, rel := range in.Record.Right {
		report.Right = append(report.Right, jsonEntry{Path: in.RightPath(rel), Size: ResolveSize(in.Right, rel)})
	}
	for _, p := range in.Record.Both {
		report.Both = append(report.Both, pairEntry(in, p))
	}
	for _, p := range in.Record.Mismatched {
		report.Mismatched = append(report.Mismatched, pairEntry(in, p))
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func pairEntry(in *Input, p models.Pair) jsonPair {
	return jsonPair{
		Folder1: jsonEntry{Path: in.LeftPath(p.Left), Size: ResolveSize(in.Left, p.Left)},
		Folder2: jsonEntry{Path: in.RightPath(p.Right), Size: ResolveSize(in.Right, p.Right)},
	}
}
