package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// RowSource yields a header followed by data rows. Next returns io.EOF after
// the last row; Row reports the 1-based position of the last returned row.
type RowSource interface {
	Header() []string
	Next() ([]string, error)
	Row() int
	Close() error
}

// Format derives the source format from the file extension.
func Format(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func Open(path string) (RowSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceUnavailable, path)
	}

	switch Format(path) {
	case FormatCSV:
		return openCSV(path)
	case FormatXLSX:
		return openXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
