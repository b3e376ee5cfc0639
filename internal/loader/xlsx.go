package loader

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// xlsxSource streams the first sheet of a workbook.
type xlsxSource struct {
	file   *excelize.File
	rows   *excelize.Rows
	header []string
	rowNum int
}

func openXLSX(path string) (*xlsxSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		closeWorkbook(f)
		return nil, &FormatError{Row: 1, Err: errEmptySource}
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		closeWorkbook(f)
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	s := &xlsxSource{file: f, rows: rows}
	header, err := s.Next()
	if err != nil {
		s.Close()
		if err == io.EOF {
			return nil, &FormatError{Row: 1, Err: errEmptySource}
		}
		return nil, err
	}
	s.header = header

	return s, nil
}

func (s *xlsxSource) Header() []string {
	return s.header
}

// Next skips rows whose cells are all empty.
func (s *xlsxSource) Next() ([]string, error) {
	for s.rows.Next() {
		s.rowNum++
		cells, err := s.rows.Columns()
		if err != nil {
			return nil, &FormatError{Row: s.rowNum, Err: err}
		}
		if !isBlank(cells) {
			return cells, nil
		}
	}
	if err := s.rows.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return nil, io.EOF
}

func (s *xlsxSource) Row() int {
	return s.rowNum
}

func (s *xlsxSource) Close() error {
	if err := s.rows.Close(); err != nil {
		log.WithError(err).Warn("Failed to close xlsx row iterator")
	}
	return s.file.Close()
}

func closeWorkbook(f *excelize.File) {
	if err := f.Close(); err != nil {
		log.WithError(err).Warn("Failed to close xlsx workbook")
	}
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
