package service

import (
	"context"

	"github.com/Egor213/LogiGraph/internal/broker"
	"github.com/Egor213/LogiGraph/internal/domain"
	"github.com/Egor213/LogiGraph/internal/metrics"
	"github.com/Egor213/LogiGraph/internal/repo"
	"github.com/Egor213/LogiGraph/internal/repo/repotypes"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

//go:generate mockgen -source=./service.go -destination=../mocks/service/mock.go -package=servicemocks

type Log interface {
	GetLogs(ctx context.Context, filter repotypes.LogFilter, page repotypes.Page) (domain.LogsPage, error)
	GetLog(ctx context.Context, id int64) (*domain.LogRecord, error)
	GetStats(ctx context.Context) (domain.LogStats, error)
}

type Loader interface {
	Load(ctx context.Context, path string) (domain.LoadResult, error)
}

type Counter interface {
	Get() int32
	Increment() int32
	Set(value int32) int32
}

type Greeter interface {
	Hello(name string) string
	Ping() string
}

type Health interface {
	Check(ctx context.Context) error
}

type Services struct {
	Log
	Loader
	Counter
	Greeter
	Health
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	TxManager      trm.Manager
	LoadOptions    LoadOptions
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Log:     NewLogService(deps.Repos.Log),
		Loader:  NewLoaderService(deps.Repos.Log, deps.TxManager, deps.BrokerProducer, deps.Counters, deps.LoadOptions),
		Counter: NewCounterService(),
		Greeter: NewGreeterService(),
		Health:  NewHealthService(deps.Repos.Log),
	}
}
