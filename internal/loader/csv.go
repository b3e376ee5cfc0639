package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\ufeff"

type csvSource struct {
	file   *os.File
	reader *csv.Reader
	header []string
}

func openCSV(path string) (*csvSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	r := csv.NewReader(f)
	// short rows are padded with NULL by the mapper
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		f.Close()
		if errors.Is(err, io.EOF) {
			return nil, &FormatError{Row: 1, Err: errEmptySource}
		}
		return nil, csvError(err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	return &csvSource{file: f, reader: r, header: header}, nil
}

func (s *csvSource) Header() []string {
	return s.header
}

func (s *csvSource) Next() ([]string, error) {
	row, err := s.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, csvError(err)
	}
	return row, nil
}

// Row is the line the last returned record started on.
func (s *csvSource) Row() int {
	line, _ := s.reader.FieldPos(0)
	return line
}

func (s *csvSource) Close() error {
	return s.file.Close()
}

func csvError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &FormatError{Row: parseErr.StartLine, Err: parseErr.Err}
	}
	return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
}
