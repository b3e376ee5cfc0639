package pgdb

import (
	"github.com/Egor213/LogiGraph/internal/domain"
	"github.com/Egor213/LogiGraph/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

const logsTable = "logs"

var (
	logColumns = []string{
		"id", "timestamp", "request_id", "method", "path", "query_parameters",
		"protocol", "source_ip", "user_agent", "referer", "user_id", "session_id",
		"request_headers", "request_body", "content_length", "status_code",
		"response_time_ms", "response_headers", "response_body", "log_level",
		"service_name", "env", "error_message", "stack_trace", "created_at",
	}

	// id and created_at are assigned by postgres.
	insertColumns = logColumns[1 : len(logColumns)-1]
)

// BuildLogQueryFilters turns a filter into one equality predicate per present field.
func BuildLogQueryFilters(filter repotypes.LogFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	if filter.Level != "" {
		conds = append(conds, sq.Eq{"log_level": filter.Level})
	}
	if filter.Service != "" {
		conds = append(conds, sq.Eq{"service_name": filter.Service})
	}
	if filter.StatusCode != 0 {
		conds = append(conds, sq.Eq{"status_code": filter.StatusCode})
	}
	if filter.Env != "" {
		conds = append(conds, sq.Eq{"env": filter.Env})
	}

	return conds
}

// applyLogFilter is the only place filter predicates are attached, so row
// and count queries for the same filter always share one WHERE clause.
func applyLogFilter(query sq.SelectBuilder, filter repotypes.LogFilter) sq.SelectBuilder {
	conds := BuildLogQueryFilters(filter)
	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	return query
}

func logsQuery(b sq.StatementBuilderType, filter repotypes.LogFilter) sq.SelectBuilder {
	return applyLogFilter(b.Select(logColumns...).From(logsTable), filter).
		OrderBy("timestamp DESC", "id DESC")
}

func countQuery(b sq.StatementBuilderType, filter repotypes.LogFilter) sq.SelectBuilder {
	return applyLogFilter(b.Select("COUNT(*)").From(logsTable), filter)
}

// groupCountQuery ignores NULL keys; equal counts are ordered by key.
func groupCountQuery(b sq.StatementBuilderType, column string) sq.SelectBuilder {
	return b.Select(column, "COUNT(*) AS count").
		From(logsTable).
		Where(sq.NotEq{column: nil}).
		GroupBy(column).
		OrderBy("count DESC", column+" ASC")
}

func recordValues(rec domain.LogRecord) []any {
	return []any{
		rec.Timestamp, rec.RequestID, rec.Method, rec.Path, rec.QueryParameters,
		rec.Protocol, rec.SourceIP, rec.UserAgent, rec.Referer, rec.UserID, rec.SessionID,
		rec.RequestHeaders, rec.RequestBody, rec.ContentLength, rec.StatusCode,
		rec.ResponseTimeMs, rec.ResponseHeaders, rec.ResponseBody, rec.LogLevel,
		rec.ServiceName, rec.Env, rec.ErrorMessage, rec.StackTrace,
	}
}
