package loader

import (
	"errors"
	"fmt"
)

var (
	ErrSourceUnavailable = errors.New("log source unavailable")
	ErrUnsupportedFormat = errors.New("unsupported log source format")
	ErrDataFormat        = errors.New("malformed log data")
)

var (
	errEmptySource      = errors.New("source has no header row")
	errUnknownColumn    = errors.New("unknown column")
	errDuplicateColumn  = errors.New("duplicate column")
	errMissingTimestamp = errors.New("TIMESTAMP is required")
	errNotInteger       = errors.New("value is not an integer")
	errTooManyCells     = errors.New("row has more cells than the header")
)

// FormatError points at the row (1-based, header is row 1) and column that
// could not be coerced. It matches ErrDataFormat with errors.Is.
type FormatError struct {
	Row    int
	Column string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *FormatError) Unwrap() []error {
	return []error{ErrDataFormat, e.Err}
}
