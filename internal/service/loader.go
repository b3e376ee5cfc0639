package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Egor213/LogiGraph/internal/broker"
	"github.com/Egor213/LogiGraph/internal/domain"
	"github.com/Egor213/LogiGraph/internal/loader"
	"github.com/Egor213/LogiGraph/internal/metrics"
	"github.com/Egor213/LogiGraph/internal/repo"
	"github.com/Egor213/LogiGraph/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogiGraph/pkg/errors"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const DefaultBatchSize = 500

type LoadOptions struct {
	BatchSize int
	// Atomic runs the whole load in one transaction. Otherwise batches are
	// committed as they go and a failure keeps the rows already written.
	Atomic bool
}

type LoaderService struct {
	logRepo        repo.Log
	trManager      trm.Manager
	brokerProducer broker.Producer
	counters       *metrics.Counters
	opts           LoadOptions
}

func NewLoaderService(lr repo.Log, trManager trm.Manager, p broker.Producer, cnt *metrics.Counters, opts LoadOptions) *LoaderService {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Atomic && trManager == nil {
		log.Warn("Atomic bulk load requested without a transaction manager, loading in batches")
		opts.Atomic = false
	}
	if p == nil {
		p = broker.NopProducer{}
	}
	return &LoaderService{
		logRepo:        lr,
		trManager:      trManager,
		brokerProducer: p,
		counters:       cnt,
		opts:           opts,
	}
}

type logsLoadedEvent struct {
	BatchID  string    `json:"batch_id"`
	Source   string    `json:"source"`
	Format   string    `json:"format"`
	Inserted int       `json:"inserted"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Load appends every row of the source at path. On failure the returned
// result still reports how many rows were committed.
func (s *LoaderService) Load(ctx context.Context, path string) (domain.LoadResult, error) {
	format := loader.Format(path)
	result := domain.LoadResult{
		BatchID: uuid.NewString(),
		Source:  path,
	}
	logger := log.WithFields(log.Fields{
		"batch_id": result.BatchID,
		"source":   path,
	})

	src, err := loader.Open(path)
	if err != nil {
		s.counters.LogLoads.Inc(format, "failed")
		logger.WithError(err).Error("Cannot open log source")
		return result, errorsUtils.WrapPathErr(err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close log source")
		}
	}()

	load := func(ctx context.Context) error {
		n, err := s.copyRows(ctx, src)
		result.Inserted = n
		return err
	}

	if s.opts.Atomic {
		err = s.trManager.Do(ctx, load)
		if err != nil {
			result.Inserted = 0
		}
	} else {
		err = load(ctx)
	}

	if err != nil {
		s.counters.LogLoads.Inc(format, "failed")
		logger.WithError(err).WithField("inserted", result.Inserted).Error("Bulk load failed")
		return result, errorsUtils.WrapPathErr(err)
	}

	s.counters.LogLoads.Inc(format, "ok")
	logger.WithField("inserted", result.Inserted).Info("Bulk load finished")
	s.publishLoaded(ctx, result, format)

	return result, nil
}

func (s *LoaderService) copyRows(ctx context.Context, src loader.RowSource) (int, error) {
	mapper, err := loader.NewMapper(src.Header())
	if err != nil {
		return 0, err
	}

	inserted := 0
	batch := make([]domain.LogRecord, 0, s.opts.BatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := s.logRepo.InsertLogs(ctx, batch)
		inserted += n
		batch = make([]domain.LogRecord, 0, s.opts.BatchSize)
		if errors.Is(err, repoerrs.ErrInvalidData) {
			return fmt.Errorf("%w: %w", loader.ErrDataFormat, err)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStorage, err)
		}
		return nil
	}

	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		var rec domain.LogRecord
		if err == nil {
			rec, err = mapper.Record(row, src.Row())
		}
		if err != nil {
			// rows read before the bad one are still written
			if flushErr := flush(); flushErr != nil {
				return inserted, flushErr
			}
			return inserted, err
		}

		batch = append(batch, rec)
		if len(batch) >= s.opts.BatchSize {
			if err := flush(); err != nil {
				return inserted, err
			}
		}
	}

	if err := flush(); err != nil {
		return inserted, err
	}
	return inserted, nil
}

func (s *LoaderService) publishLoaded(ctx context.Context, result domain.LoadResult, format string) {
	payload, err := json.Marshal(logsLoadedEvent{
		BatchID:  result.BatchID,
		Source:   result.Source,
		Format:   format,
		Inserted: result.Inserted,
		LoadedAt: time.Now().UTC(),
	})
	if err != nil {
		log.WithError(err).Warn("Cannot encode logs.loaded event")
		return
	}

	if err := s.brokerProducer.SendMessage(ctx, []byte(result.BatchID), payload); err != nil {
		log.WithError(err).WithField("batch_id", result.BatchID).Warn("logs.loaded event was not published")
	}
}
