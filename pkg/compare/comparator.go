package compare

import (
	"path/filepath"
	"sort"

	"github.com/sdejongh/foldercompare/pkg/models"
	"github.com/sdejongh/foldercompare/pkg/storage"
)

// DefaultIgnore lists names skipped on both sides unless configured otherwise
var DefaultIgnore = []string{"RCS", "CVS", "tags", ".git", ".hg", ".bzr", "_darcs", "__pycache__"}

// Progress receives a notification for every directory pair walked
type Progress interface {
	Visit(relativeDir string)
}

// Comparator walks two trees in lock-step and classifies their entries by name
type Comparator struct {
	ignore   []string
	progress Progress
}

// Option configures a Comparator
type Option func(*Comparator)

// WithIgnore replaces the ignore patterns
func WithIgnore(patterns []string) Option {
	return func(c *Comparator) {
		c.ignore = append([]string{}, patterns...)
	}
}

// WithProgress sets the walk observer
func WithProgress(p Progress) Option {
	return func(c *Comparator) {
		c.progress = p
	}
}

// NewComparator creates a comparator using DefaultIgnore
func NewComparator(opts ...Option) *Comparator {
	c := &Comparator{ignore: DefaultIgnore}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare classifies every entry reachable from either root.
// Directories present on both sides are recursed into; one-sided directories are
// recorded once, at their top.
func (c *Comparator) Compare(left, right storage.Backend) (*models.Record, error) {
	return c.compareDir(left, right, "", "")
}

func (c *Comparator) compareDir(left, right storage.Backend, prefix1, prefix2 string) (*models.Record, error) {
	if c.progress != nil {
		c.progress.Visit(prefix1)
	}

	leftEntries, err := c.list(left, prefix1)
	if err != nil {
		return nil, err
	}
	rightEntries, err := c.list(right, prefix2)
	if err != nil {
		return nil, err
	}

	record := models.NewRecord()
	var commonDirs []string

	for name, l := range leftEntries {
		r, ok := rightEntries[name]
		switch {
		case !ok:
			record.Left = append(record.Left, filepath.Join(prefix1, name))
		case l.IsDir && r.IsDir:
			commonDirs = append(commonDirs, name)
		case !l.IsDir && !r.IsDir:
			record.Both = append(record.Both, models.Pair{
				Left:  filepath.Join(prefix1, name),
				Right: filepath.Join(prefix2, name),
			})
		default:
			record.Mismatched = append(record.Mismatched, models.Pair{
				Left:  filepath.Join(prefix1, name),
				Right: filepath.Join(prefix2, name),
			})
		}
	}
	for name := range rightEntries {
		if _, ok := leftEntries[name]; !ok {
			record.Right = append(record.Right, filepath.Join(prefix2, name))
		}
	}

	sort.Strings(commonDirs)
	for _, name := range commonDirs {
		sub, err := c.compareDir(left, right,
			filepath.Clean(filepath.Join(prefix1, name)),
			filepath.Clean(filepath.Join(prefix2, name)))
		if err != nil {
			return nil, err
		}
		record.Merge(sub)
	}

	record.Sort()
	return record, nil
}

// list reads one directory level, dropping ignored names
func (c *Comparator) list(b storage.Backend, dir string) (map[string]storage.FileInfo, error) {
	entries, err := b.ReadDir(dir)
	if err != nil {
		return nil, models.NewOperationError(models.KindFilesystemAccess, filepath.Join(b.Root(), dir), err)
	}

	byName := make(map[string]storage.FileInfo, len(entries))
	for _, e := range entries {
		if shouldIgnore(filepath.Join(dir, e.Name), e.IsDir, c.ignore) {
			continue
		}
		byName[e.Name] = e
	}
	return byName, nil
}
