package domain

import "time"

// LogRecord is one row of the logs table. Nullable columns are pointers.
type LogRecord struct {
	ID              int64     `db:"id"`
	Timestamp       string    `db:"timestamp"`
	RequestID       *string   `db:"request_id"`
	Method          *string   `db:"method"`
	Path            *string   `db:"path"`
	QueryParameters *string   `db:"query_parameters"`
	Protocol        *string   `db:"protocol"`
	SourceIP        *string   `db:"source_ip"`
	UserAgent       *string   `db:"user_agent"`
	Referer         *string   `db:"referer"`
	UserID          *string   `db:"user_id"`
	SessionID       *string   `db:"session_id"`
	RequestHeaders  *string   `db:"request_headers"`
	RequestBody     *string   `db:"request_body"`
	ContentLength   *int      `db:"content_length"`
	StatusCode      *int      `db:"status_code"`
	ResponseTimeMs  *int      `db:"response_time_ms"`
	ResponseHeaders *string   `db:"response_headers"`
	ResponseBody    *string   `db:"response_body"`
	LogLevel        *string   `db:"log_level"`
	ServiceName     *string   `db:"service_name"`
	Env             *string   `db:"env"`
	ErrorMessage    *string   `db:"error_message"`
	StackTrace      *string   `db:"stack_trace"`
	CreatedAt       time.Time `db:"created_at"`
}

type KeyCount[K comparable] struct {
	Key   K
	Count int
}

type LogStats struct {
	TotalLogs int
	ByLevel   []KeyCount[string]
	ByService []KeyCount[string]
	ByStatus  []KeyCount[int]
	ByEnv     []KeyCount[string]
}

type LoadResult struct {
	BatchID  string
	Source   string
	Inserted int
}
