package repo

import (
	"context"

	"github.com/Egor213/LogiGraph/internal/domain"
	"github.com/Egor213/LogiGraph/internal/repo/pgdb"
	"github.com/Egor213/LogiGraph/internal/repo/repotypes"
	"github.com/Egor213/LogiGraph/pkg/postgres"
)

//go:generate mockgen -source=./repo.go -destination=../mocks/repository/mock.go -package=repomocks

type Log interface {
	GetLogs(ctx context.Context, filter repotypes.LogFilter, page repotypes.Page) ([]domain.LogRecord, error)
	CountLogs(ctx context.Context, filter repotypes.LogFilter) (int, error)
	GetLogByID(ctx context.Context, id int64) (domain.LogRecord, error)
	InsertLogs(ctx context.Context, records []domain.LogRecord) (int, error)
	GetStats(ctx context.Context) (domain.LogStats, error)
	Ping(ctx context.Context) error
}

type Repositories struct {
	Log
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Log: pgdb.NewLogRepo(pg),
	}
}
