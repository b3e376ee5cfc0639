package graphqlv1

import (
	"strconv"

	"github.com/Egor213/LogiGraph/internal/domain"
	"github.com/Egor213/LogiGraph/internal/repo/repotypes"
)

const createdAtLayout = "2006-01-02 15:04:05"

func text(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func integer(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func ToLogMap(rec domain.LogRecord) map[string]any {
	return map[string]any{
		"id":               strconv.FormatInt(rec.ID, 10),
		"TIMESTAMP":        rec.Timestamp,
		"REQUEST_ID":       text(rec.RequestID),
		"METHOD":           text(rec.Method),
		"PATH":             text(rec.Path),
		"QUERY_PARAMETERS": text(rec.QueryParameters),
		"PROTOCOL":         text(rec.Protocol),
		"SOURCE_IP":        text(rec.SourceIP),
		"USER_AGENT":       text(rec.UserAgent),
		"REFERER":          text(rec.Referer),
		"USER_ID":          text(rec.UserID),
		"SESSION_ID":       text(rec.SessionID),
		"REQUEST_HEADERS":  text(rec.RequestHeaders),
		"REQUEST_BODY":     text(rec.RequestBody),
		"CONTENT_LENGTH":   integer(rec.ContentLength),
		"STATUS_CODE":      integer(rec.StatusCode),
		"RESPONSE_TIME_MS": integer(rec.ResponseTimeMs),
		"RESPONSE_HEADERS": text(rec.ResponseHeaders),
		"RESPONSE_BODY":    text(rec.ResponseBody),
		"LOG_LEVEL":        text(rec.LogLevel),
		"SERVICE_NAME":     text(rec.ServiceName),
		"ENV":              text(rec.Env),
		"ERROR_MESSAGE":    text(rec.ErrorMessage),
		"STACK_TRACE":      text(rec.StackTrace),
		"created_at":       rec.CreatedAt.UTC().Format(createdAtLayout),
	}
}

func ToLogsConnection(page domain.LogsPage) map[string]any {
	logs := make([]map[string]any, 0, len(page.Logs))
	for _, rec := range page.Logs {
		logs = append(logs, ToLogMap(rec))
	}
	return map[string]any{
		"logs":              logs,
		"total_count":       page.TotalCount,
		"has_next_page":     page.HasNextPage,
		"has_previous_page": page.HasPreviousPage,
	}
}

func keyCounts[K comparable](counts []domain.KeyCount[K], keyField string) []map[string]any {
	out := make([]map[string]any, 0, len(counts))
	for _, c := range counts {
		out = append(out, map[string]any{
			keyField: c.Key,
			"count":  c.Count,
		})
	}
	return out
}

func ToLogStats(stats domain.LogStats) map[string]any {
	return map[string]any{
		"total_logs":      stats.TotalLogs,
		"logs_by_level":   keyCounts(stats.ByLevel, "level"),
		"logs_by_service": keyCounts(stats.ByService, "service"),
		"logs_by_status":  keyCounts(stats.ByStatus, "status_code"),
		"logs_by_env":     keyCounts(stats.ByEnv, "env"),
	}
}

// NewLogFilterFromArgs reads the optional filter arguments of the logs query.
// Absent arguments, empty strings and a zero status code leave the field unset.
func NewLogFilterFromArgs(args map[string]any) repotypes.LogFilter {
	var lf repotypes.LogFilter
	if v, ok := args["log_level"].(string); ok {
		lf.Level = v
	}
	if v, ok := args["service_name"].(string); ok {
		lf.Service = v
	}
	if v, ok := args["status_code"].(int); ok {
		lf.StatusCode = v
	}
	if v, ok := args["env"].(string); ok {
		lf.Env = v
	}
	return lf
}

func intArg(args map[string]any, name string, def int) int {
	if v, ok := args[name].(int); ok {
		return v
	}
	return def
}
