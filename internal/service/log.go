package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Egor213/LogiGraph/internal/domain"
	"github.com/Egor213/LogiGraph/internal/repo"
	"github.com/Egor213/LogiGraph/internal/repo/repoerrs"
	"github.com/Egor213/LogiGraph/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiGraph/pkg/errors"
)

type LogService struct {
	logRepo repo.Log
}

func NewLogService(lr repo.Log) *LogService {
	return &LogService{
		logRepo: lr,
	}
}

// GetLogs returns one page of matching rows and the total for the same filter.
func (s *LogService) GetLogs(ctx context.Context, filter repotypes.LogFilter, page repotypes.Page) (domain.LogsPage, error) {
	logs, err := s.logRepo.GetLogs(ctx, filter, page)
	if err != nil {
		return domain.LogsPage{}, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrStorage, err))
	}

	total, err := s.logRepo.CountLogs(ctx, filter)
	if err != nil {
		return domain.LogsPage{}, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrStorage, err))
	}

	return domain.NewLogsPage(logs, total, page.Limit, page.Offset), nil
}

// GetLog returns nil without an error when no row has the id.
func (s *LogService) GetLog(ctx context.Context, id int64) (*domain.LogRecord, error) {
	rec, err := s.logRepo.GetLogByID(ctx, id)
	if errors.Is(err, repoerrs.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrStorage, err))
	}
	return &rec, nil
}

func (s *LogService) GetStats(ctx context.Context) (domain.LogStats, error) {
	stats, err := s.logRepo.GetStats(ctx)
	if err != nil {
		return domain.LogStats{}, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrStorage, err))
	}
	return stats, nil
}
