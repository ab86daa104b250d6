package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Config holds logger settings
type Config struct {
	// Path is the log file; empty logs to stderr
	Path string
	// Format is the line encoding (json or text)
	Format Format
	// Level is the minimum level written
	Level Level
	// MaxSize rotates the file once it reaches this many bytes (0 = never)
	MaxSize int64
	// MaxBackups is the number of rotated files kept
	MaxBackups int
}

// StreamLogger writes one line per entry to a writer
type StreamLogger struct {
	out    io.Writer
	closer io.Closer
	format Format
	level  Level
	fields Fields
	now    func() time.Time
	mu     *sync.Mutex
}

// New builds a logger from config: a rotating file when Path is set, stderr otherwise
func New(cfg Config) (*StreamLogger, error) {
	if cfg.Path == "" {
		return NewStreamLogger(os.Stderr, cfg.Format, cfg.Level), nil
	}

	file, err := openRotatingFile(cfg.Path, cfg.MaxSize, cfg.MaxBackups)
	if err != nil {
		return nil, err
	}

	l := NewStreamLogger(file, cfg.Format, cfg.Level)
	l.closer = file
	return l, nil
}

// NewStreamLogger creates a logger writing to w. The caller keeps ownership of w.
func NewStreamLogger(w io.Writer, format Format, level Level) *StreamLogger {
	return &StreamLogger{
		out:    w,
		format: format,
		level:  level,
		now:    time.Now,
		mu:     &sync.Mutex{},
	}
}

// Debug logs a debug message
func (l *StreamLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.log(DebugLevel, msg, nil, fields)
}

// Info logs an info message
func (l *StreamLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.log(InfoLevel, msg, nil, fields)
}

// Warn logs a warning message
func (l *StreamLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.log(WarnLevel, msg, nil, fields)
}

// Error logs an error message
func (l *StreamLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.log(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger sharing the output and adding fields to every entry
func (l *StreamLogger) WithFields(fields Fields) Logger {
	child := *l
	child.fields = merge(l.fields, fields)
	child.closer = nil
	return &child
}

// Close closes the underlying file, if the logger owns one
func (l *StreamLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer != nil {
		err := l.closer.Close()
		l.closer = nil
		return err
	}
	return nil
}

func (l *StreamLogger) log(level Level, msg string, err error, fields Fields) {
	if level < l.level {
		return
	}

	all := merge(l.fields, fields)
	var line []byte
	if l.format == FormatJSON {
		line = l.encodeJSON(level, msg, err, all)
	} else {
		line = l.encodeText(level, msg, err, all)
	}
	if line == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Write(line)
}

func (l *StreamLogger) encodeJSON(level Level, msg string, err error, fields Fields) []byte {
	entry := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	entry["timestamp"] = l.now().UTC().Format(time.RFC3339)
	entry["level"] = level.String()
	entry["message"] = msg
	if err != nil {
		entry["error"] = err.Error()
	}

	data, jsonErr := json.Marshal(entry)
	if jsonErr != nil {
		return nil
	}
	return append(data, '\n')
}

func (l *StreamLogger) encodeText(level Level, msg string, err error, fields Fields) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", l.now().UTC().Format("2006-01-02T15:04:05.000Z"), level, msg)
	if err != nil {
		fmt.Fprintf(&b, " error=%q", err.Error())
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}

	b.WriteByte('\n')
	return []byte(b.String())
}

func merge(base, extra Fields) Fields {
	out := make(Fields, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
