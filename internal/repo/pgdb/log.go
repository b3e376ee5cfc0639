package pgdb

import (
	"context"
	"errors"

	"github.com/Egor213/LogiGraph/internal/domain"
	"github.com/Egor213/LogiGraph/internal/repo/repoerrs"
	"github.com/Egor213/LogiGraph/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiGraph/pkg/errors"
	"github.com/Egor213/LogiGraph/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

// scanLogRecord maps a row to a record for every read path.
var scanLogRecord = pgx.RowToStructByName[domain.LogRecord]

func (r *LogRepo) GetLogs(ctx context.Context, filter repotypes.LogFilter, page repotypes.Page) ([]domain.LogRecord, error) {
	sql, args, err := logsQuery(r.Builder, filter).
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, scanLogRecord)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return logs, nil
}

func (r *LogRepo) CountLogs(ctx context.Context, filter repotypes.LogFilter) (int, error) {
	sql, args, err := countQuery(r.Builder, filter).ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var count int
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return count, nil
}

func (r *LogRepo) GetLogByID(ctx context.Context, id int64) (domain.LogRecord, error) {
	sql, args, err := r.Builder.
		Select(logColumns...).
		From(logsTable).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return domain.LogRecord{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.LogRecord{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	rec, err := pgx.CollectExactlyOneRow(rows, scanLogRecord)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.LogRecord{}, repoerrs.ErrNotFound
	}
	if err != nil {
		return domain.LogRecord{}, errorsUtils.WrapPathErr(err)
	}
	return rec, nil
}

// InsertLogs appends records with a single COPY and returns how many were written.
func (r *LogRepo) InsertLogs(ctx context.Context, records []domain.LogRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	n, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).CopyFrom(
		ctx,
		pgx.Identifier{logsTable},
		insertColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			return recordValues(records[i]), nil
		}),
	)
	if err != nil {
		if errorsUtils.IsDataViolation(err) {
			return 0, errorsUtils.WrapPathErr(errors.Join(repoerrs.ErrInvalidData, err))
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return int(n), nil
}

// GetStats runs the total and the four grouped counts one after another;
// the first failing query aborts the whole report.
func (r *LogRepo) GetStats(ctx context.Context) (domain.LogStats, error) {
	var (
		stats domain.LogStats
		err   error
	)

	if stats.TotalLogs, err = r.CountLogs(ctx, repotypes.LogFilter{}); err != nil {
		return domain.LogStats{}, err
	}
	if stats.ByLevel, err = groupCounts[string](ctx, r, "log_level"); err != nil {
		return domain.LogStats{}, err
	}
	if stats.ByService, err = groupCounts[string](ctx, r, "service_name"); err != nil {
		return domain.LogStats{}, err
	}
	if stats.ByStatus, err = groupCounts[int](ctx, r, "status_code"); err != nil {
		return domain.LogStats{}, err
	}
	if stats.ByEnv, err = groupCounts[string](ctx, r, "env"); err != nil {
		return domain.LogStats{}, err
	}

	return stats, nil
}

func groupCounts[K comparable](ctx context.Context, r *LogRepo, column string) ([]domain.KeyCount[K], error) {
	sql, args, err := groupCountQuery(r.Builder, column).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	counts := []domain.KeyCount[K]{}
	for rows.Next() {
		var kc domain.KeyCount[K]
		if err := rows.Scan(&kc.Key, &kc.Count); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		counts = append(counts, kc)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return counts, nil
}

func (r *LogRepo) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
