// Package engine runs a folder comparison end to end: it acquires both roots
// (extracting zip archives), walks them, writes the requested reports and
// releases any extraction directory on every exit path.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/foldercompare/pkg/archive"
	"github.com/sdejongh/foldercompare/pkg/compare"
	"github.com/sdejongh/foldercompare/pkg/logging"
	"github.com/sdejongh/foldercompare/pkg/models"
	"github.com/sdejongh/foldercompare/pkg/output"
	"github.com/sdejongh/foldercompare/pkg/storage"
)

// Engine orchestrates comparison operations
type Engine struct {
	logger   logging.Logger
	progress compare.Progress
	now      func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger. The engine never closes it.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithProgress sets the observer told about every directory pair walked
func WithProgress(p compare.Progress) Option {
	return func(e *Engine) {
		e.progress = p
	}
}

// New creates an engine with a null logger and no progress observer
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.NewNullLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compare classifies the entries of path1 and path2 and writes <outputBase>.txt
// and/or <outputBase>.csv. Either path may be a zip archive.
func Compare(ctx context.Context, path1, path2, outputBase string, text, csv bool) (*models.Summary, error) {
	op := &models.Operation{
		Folder1:    path1,
		Folder2:    path2,
		OutputBase: outputBase,
	}
	if text {
		op.Formats = append(op.Formats, models.FormatText)
	}
	if csv {
		op.Formats = append(op.Formats, models.FormatCSV)
	}
	return New().Run(ctx, op)
}

// Run executes one operation. A nil Ignore list selects compare.DefaultIgnore;
// an empty one disables ignoring.
func (e *Engine) Run(ctx context.Context, op *models.Operation) (*models.Summary, error) {
	if op == nil {
		return nil, &models.ValidationError{Field: "Operation", Message: "operation is required"}
	}
	if err := op.Validate(); err != nil {
		e.logger.Error(ctx, "Invalid operation", err, nil)
		return nil, err
	}

	id := op.ID
	if id == "" {
		id = uuid.NewString()
	}
	logger := e.logger.WithFields(logging.Fields{"operation_id": id})

	start := e.now()
	logger.Info(ctx, "Comparison started", logging.Fields{
		"folder1": op.Folder1,
		"folder2": op.Folder2,
		"formats": op.Formats,
	})

	ws1, err := e.acquire(ctx, logger, op.Folder1)
	if err != nil {
		return nil, err
	}
	defer e.release(ctx, logger, ws1)

	ws2, err := e.acquire(ctx, logger, op.Folder2)
	if err != nil {
		return nil, err
	}
	defer e.release(ctx, logger, ws2)

	left, err := openRoot(ws1)
	if err != nil {
		logger.Error(ctx, "Cannot open folder", err, logging.Fields{"path": ws1.Source})
		return nil, err
	}
	defer left.Close()

	right, err := openRoot(ws2)
	if err != nil {
		logger.Error(ctx, "Cannot open folder", err, logging.Fields{"path": ws2.Source})
		return nil, err
	}
	defer right.Close()

	counter := &visitCounter{next: e.progress}
	opts := []compare.Option{compare.WithProgress(counter)}
	if op.Ignore != nil {
		opts = append(opts, compare.WithIgnore(op.Ignore))
	}

	record, err := compare.NewComparator(opts...).Compare(left, right)
	if err != nil {
		logger.Error(ctx, "Comparison failed", err, nil)
		return nil, err
	}

	for _, m := range record.Mismatched {
		logger.Warn(ctx, "Entry is a file on one side and a directory on the other", logging.Fields{
			"folder1_path": m.Left,
			"folder2_path": m.Right,
		})
	}

	summary := &models.Summary{
		OperationID: id,
		Folder1:     op.Folder1,
		Folder2:     op.Folder2,
		StartTime:   start,
		Record:      record,
	}
	summary.Stats.DirsVisited = counter.visited
	summary.Stats.Tally(record)

	if len(op.Formats) > 0 {
		in := &output.Input{OperationID: id, Left: left, Right: right, Record: record}
		outputs, err := output.WriteAll(op.OutputBase, in, op.Formats)
		summary.Outputs = outputs
		if err != nil {
			logger.Error(ctx, "Report write failed", err, logging.Fields{"written": outputs})
			return nil, err
		}
	}

	summary.EndTime = e.now()
	summary.Duration = summary.EndTime.Sub(start)

	logger.Info(ctx, "Comparison complete", logging.Fields{
		"dirs_visited": summary.Stats.DirsVisited,
		"left_only":    summary.Stats.LeftOnly,
		"right_only":   summary.Stats.RightOnly,
		"in_both":      summary.Stats.InBoth,
		"mismatched":   summary.Stats.Mismatched,
		"outputs":      summary.Outputs,
		"duration_ms":  summary.Duration.Milliseconds(),
	})

	return summary, nil
}

func (e *Engine) acquire(ctx context.Context, logger logging.Logger, path string) (*archive.Workspace, error) {
	ws, err := archive.Acquire(path)
	if err != nil {
		logger.Error(ctx, "Cannot open archive", err, logging.Fields{"path": path})
		return nil, err
	}
	if ws.Extracted() {
		logger.Debug(ctx, "Archive extracted", logging.Fields{"archive": path, "root": ws.Root})
	}
	return ws, nil
}

func (e *Engine) release(ctx context.Context, logger logging.Logger, ws *archive.Workspace) {
	if err := ws.Release(); err != nil {
		logger.Warn(ctx, "Extraction directory left behind", logging.Fields{
			"root":  ws.Root,
			"error": err.Error(),
		})
	}
}

// openRoot mounts the workspace root. Extracted archives are reported under the
// archive path so reports do not depend on the extraction directory name.
func openRoot(ws *archive.Workspace) (*storage.Local, error) {
	var opts []storage.LocalOption
	if ws.Extracted() {
		opts = append(opts, storage.WithDisplayRoot(ws.Source))
	}
	local, err := storage.NewLocal(ws.Root, opts...)
	if err != nil {
		return nil, models.NewOperationError(models.KindFilesystemAccess, ws.Source, err)
	}
	return local, nil
}

// visitCounter counts directory pairs and forwards them to an optional observer
type visitCounter struct {
	next    compare.Progress
	visited int
}

func (c *visitCounter) Visit(relativeDir string) {
	c.visited++
	if c.next != nil {
		c.next.Visit(relativeDir)
	}
}
