package output

import (
	"fmt"

	"github.com/sdejongh/foldercompare/pkg/storage"
)

var sizeUnits = []string{"bytes", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with two decimals, dividing by 1024 while the
// value does not fit the current unit. TB is the last unit.
func FormatSize(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}

// ResolveSize stats a path through the backend at call time.
// Anything that is not an existing regular file yields an empty string.
func ResolveSize(b storage.Backend, relativePath string) string {
	info, err := b.Stat(relativePath)
	if err != nil || !info.IsRegular {
		return ""
	}
	return FormatSize(info.Size)
}
