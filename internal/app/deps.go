package app

import (
	"github.com/Egor213/LogiGraph/internal/broker"
	kafkabroker "github.com/Egor213/LogiGraph/internal/broker/kafka"
	"github.com/Egor213/LogiGraph/internal/config"
	"github.com/Egor213/LogiGraph/internal/metrics"
	"github.com/Egor213/LogiGraph/internal/repo"
	"github.com/Egor213/LogiGraph/internal/service"
	errorsUtils "github.com/Egor213/LogiGraph/pkg/errors"
	"github.com/Egor213/LogiGraph/pkg/logger"
	"github.com/Egor213/LogiGraph/pkg/postgres"
	log "github.com/sirupsen/logrus"
)

// bootstrap holds everything both binaries build before they diverge.
type bootstrap struct {
	cfg      *config.Config
	pg       *postgres.Postgres
	producer broker.Producer
	services *service.Services
}

func (r *bootstrap) close() {
	if err := r.producer.Close(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	r.pg.Close()
}

func newProducer(cfg config.Kafka) broker.Producer {
	if len(cfg.Brokers) == 0 {
		log.Info("Kafka brokers are not configured, load events are disabled")
		return broker.NopProducer{}
	}
	log.WithField("topic", cfg.Topic).Info("Publishing load events to Kafka")
	return kafkabroker.NewProducer(kafkabroker.ProducerConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
}

func setup(counters *metrics.Counters) (*bootstrap, error) {
	// Config
	cfg, err := config.New()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Migrations
	if err := Migrate(cfg.PG.URL, cfg.PG.MigrationsPath); err != nil {
		return nil, err
	}

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL,
		postgres.MaxPoolSize(cfg.PG.MaxPoolSize),
		postgres.ConnAttempts(cfg.PG.ConnAttempts),
		postgres.ConnTimeout(cfg.PG.ConnTimeout),
	)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	log.Info("Connected to DB")

	// Broker
	producer := newProducer(cfg.Kafka)

	// Repos
	repositories := repo.NewRepositories(pg)

	// Services
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       counters,
		BrokerProducer: producer,
		TxManager:      pg.TxManager(),
		LoadOptions: service.LoadOptions{
			BatchSize: cfg.Loader.BatchSize,
			Atomic:    cfg.Loader.Atomic,
		},
	}

	return &bootstrap{
		cfg:      cfg,
		pg:       pg,
		producer: producer,
		services: service.NewServices(deps),
	}, nil
}
