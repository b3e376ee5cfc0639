package loader

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Egor213/LogiGraph/internal/domain"
)

type setter func(rec *domain.LogRecord, value string) error

func text(field func(*domain.LogRecord) **string) setter {
	return func(rec *domain.LogRecord, value string) error {
		if value == "" {
			*field(rec) = nil
			return nil
		}
		v := value
		*field(rec) = &v
		return nil
	}
}

func integer(field func(*domain.LogRecord) **int) setter {
	return func(rec *domain.LogRecord, value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			*field(rec) = nil
			return nil
		}
		v, err := parseInt(value)
		if err != nil {
			return err
		}
		*field(rec) = &v
		return nil
	}
}

// parseInt also accepts integral floats such as "200.0", which spreadsheet
// exports produce for integer columns that contain blanks.
func parseInt(value string) (int, error) {
	if v, err := strconv.ParseInt(value, 10, 32); err == nil {
		return int(v), nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%w: %q", errNotInteger, value)
	}
	return int(f), nil
}

const timestampColumn = "TIMESTAMP"

var setters = map[string]setter{
	timestampColumn: func(rec *domain.LogRecord, value string) error {
		if value == "" {
			return errMissingTimestamp
		}
		rec.Timestamp = value
		return nil
	},
	"REQUEST_ID":       text(func(r *domain.LogRecord) **string { return &r.RequestID }),
	"METHOD":           text(func(r *domain.LogRecord) **string { return &r.Method }),
	"PATH":             text(func(r *domain.LogRecord) **string { return &r.Path }),
	"QUERY_PARAMETERS": text(func(r *domain.LogRecord) **string { return &r.QueryParameters }),
	"PROTOCOL":         text(func(r *domain.LogRecord) **string { return &r.Protocol }),
	"SOURCE_IP":        text(func(r *domain.LogRecord) **string { return &r.SourceIP }),
	"USER_AGENT":       text(func(r *domain.LogRecord) **string { return &r.UserAgent }),
	"REFERER":          text(func(r *domain.LogRecord) **string { return &r.Referer }),
	"USER_ID":          text(func(r *domain.LogRecord) **string { return &r.UserID }),
	"SESSION_ID":       text(func(r *domain.LogRecord) **string { return &r.SessionID }),
	"REQUEST_HEADERS":  text(func(r *domain.LogRecord) **string { return &r.RequestHeaders }),
	"REQUEST_BODY":     text(func(r *domain.LogRecord) **string { return &r.RequestBody }),
	"CONTENT_LENGTH":   integer(func(r *domain.LogRecord) **int { return &r.ContentLength }),
	"STATUS_CODE":      integer(func(r *domain.LogRecord) **int { return &r.StatusCode }),
	"RESPONSE_TIME_MS": integer(func(r *domain.LogRecord) **int { return &r.ResponseTimeMs }),
	"RESPONSE_HEADERS": text(func(r *domain.LogRecord) **string { return &r.ResponseHeaders }),
	"RESPONSE_BODY":    text(func(r *domain.LogRecord) **string { return &r.ResponseBody }),
	"LOG_LEVEL":        text(func(r *domain.LogRecord) **string { return &r.LogLevel }),
	"SERVICE_NAME":     text(func(r *domain.LogRecord) **string { return &r.ServiceName }),
	"ENV":              text(func(r *domain.LogRecord) **string { return &r.Env }),
	"ERROR_MESSAGE":    text(func(r *domain.LogRecord) **string { return &r.ErrorMessage }),
	"STACK_TRACE":      text(func(r *domain.LogRecord) **string { return &r.StackTrace }),
}

// Mapper converts source rows into records using the column order of a header.
type Mapper struct {
	columns []string
	setters []setter
}

func NewMapper(header []string) (*Mapper, error) {
	m := &Mapper{
		columns: make([]string, 0, len(header)),
		setters: make([]setter, 0, len(header)),
	}
	seen := make(map[string]struct{}, len(header))

	for _, raw := range header {
		name := strings.ToUpper(strings.TrimSpace(raw))
		set, ok := setters[name]
		if !ok {
			return nil, &FormatError{Row: 1, Column: raw, Err: errUnknownColumn}
		}
		if _, dup := seen[name]; dup {
			return nil, &FormatError{Row: 1, Column: raw, Err: errDuplicateColumn}
		}
		seen[name] = struct{}{}
		m.columns = append(m.columns, name)
		m.setters = append(m.setters, set)
	}

	if _, ok := seen[timestampColumn]; !ok {
		return nil, &FormatError{Row: 1, Column: timestampColumn, Err: errMissingTimestamp}
	}

	return m, nil
}

// Record coerces one row. Cells missing at the end of a short row are NULL.
func (m *Mapper) Record(row []string, rowNum int) (domain.LogRecord, error) {
	if len(row) > len(m.columns) {
		return domain.LogRecord{}, &FormatError{Row: rowNum, Err: errTooManyCells}
	}

	var rec domain.LogRecord
	for i, set := range m.setters {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		if err := set(&rec, value); err != nil {
			return domain.LogRecord{}, &FormatError{Row: rowNum, Column: m.columns[i], Err: err}
		}
	}
	return rec, nil
}
