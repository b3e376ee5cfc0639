package logginghelper

import (
	"github.com/Egor213/LogiGraph/internal/repo/repotypes"
	log "github.com/sirupsen/logrus"
)

func LogQuery(operation string, fields log.Fields) {
	log.WithField("operation", operation).WithFields(fields).Debug("GraphQL query received")
}

func LogFilter(filter repotypes.LogFilter, page repotypes.Page) log.Fields {
	return log.Fields{
		"log_level":    filter.Level,
		"service_name": filter.Service,
		"status_code":  filter.StatusCode,
		"env":          filter.Env,
		"limit":        page.Limit,
		"offset":       page.Offset,
	}
}

func LogMutation(operation string, value int32) {
	log.WithFields(log.Fields{
		"operation": operation,
		"value":     value,
	}).Info("Counter changed")
}

func LogError(operation string, err error) {
	log.WithFields(log.Fields{
		"operation": operation,
		"error":     err,
	}).Error("GraphQL resolver failed")
}
