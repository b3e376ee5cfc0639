package domain

type LogsPage struct {
	Logs            []LogRecord
	TotalCount      int
	HasNextPage     bool
	HasPreviousPage bool
}

// NewLogsPage fills in the page flags for a window of limit rows starting at offset.
func NewLogsPage(logs []LogRecord, total int, limit, offset uint64) LogsPage {
	if logs == nil {
		logs = []LogRecord{}
	}
	return LogsPage{
		Logs:            logs,
		TotalCount:      total,
		HasNextPage:     offset+limit < uint64(total),
		HasPreviousPage: offset > 0,
	}
}
