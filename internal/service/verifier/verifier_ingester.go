// Package verifier follows the node tip and records a consensus verdict for every block.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/consensus"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/batcher"
)

// Config scopes an IngesterService to one chain and sizes its batches.
type Config struct {
	Coin        model.Coin
	Network     model.Network
	StartHeight uint64
	BatchSize   uint64
	WorkerCount int
}

// IngesterService verifies blocks in height order and stores their verdicts.
type IngesterService struct {
	logger            *zap.Logger
	coin              model.Coin
	network           model.Network
	metrics           IngesterMetrics
	wait              func(context.Context, time.Duration, <-chan struct{}) error
	sleepDuration     time.Duration
	idleSleepDuration time.Duration
	heightFetcher     HeightFetcher
	blockProcessor    BlockProcessor
	verdictWriter     VerdictWriter
	blockSignal       <-chan struct{}
}

// NewIngesterService builds an IngesterService with dependencies. blockSignal may be nil,
// in which case idle periods end on a timer only.
func NewIngesterService(
	repo ClickhouseRepository,
	source BlockSource,
	params *consensus.Params,
	metrics IngesterMetrics,
	verifierMetrics VerifierMetrics,
	cfg Config,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*IngesterService, error) {
	logger = logger.With(
		zap.String("coin", string(cfg.Coin)),
		zap.String("network", string(cfg.Network)),
	)

	if metrics == nil {
		return nil, errors.New("verifier ingester metrics is required")
	}
	if verifierMetrics == nil {
		return nil, errors.New("verifier metrics is required")
	}
	if params == nil {
		return nil, errors.New("consensus params are required")
	}

	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = defaultBatchSize
	}
	workerCount := cfg.WorkerCount
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}

	vw := newVerdictWriter(repo, logger)

	return &IngesterService{
		logger:            logger,
		coin:              cfg.Coin,
		network:           cfg.Network,
		metrics:           metrics,
		wait:              clock.WaitOrSignal,
		sleepDuration:     sleepDuration,
		idleSleepDuration: idleSleepDuration,
		blockSignal:       blockSignal,
		heightFetcher: &heightFetcher{
			source:      source,
			repository:  repo,
			coin:        cfg.Coin,
			network:     cfg.Network,
			startHeight: cfg.StartHeight,
			limit:       batchSize,
		},
		verdictWriter: vw,
		blockProcessor: &blockProcessor{
			workerCount:     workerCount,
			source:          source,
			verdictWriter:   vw,
			params:          params,
			coin:            cfg.Coin,
			network:         cfg.Network,
			metrics:         metrics,
			verifierMetrics: verifierMetrics,
			logger:          logger.Named("blockProcessor"),
			now:             time.Now,
		},
	}, nil
}

// Run starts the verification loop until the context is canceled. Buffered verdicts are
// flushed before it returns.
func (s *IngesterService) Run(ctx context.Context) error {
	s.verdictWriter.Start(ctx)
	defer s.verdictWriter.Stop()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, batcher.ErrStopped) {
				return err
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.wait(ctx, s.sleepDuration, nil); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *IngesterService) run(ctx context.Context) error {
	if err := s.verdictWriter.Err(); err != nil {
		s.heightFetcher.Reset()
		return fmt.Errorf("persist verdicts: %w", err)
	}

	started := time.Now()
	heights, err := s.heightFetcher.Fetch(ctx)
	s.metrics.ObserveFetchHeights(err, started)
	if err != nil {
		s.logger.Error("fetch heights failed", zap.Error(err))
		return err
	}

	if len(heights) == 0 {
		s.logger.Debug("verified up to tip; waiting for a new block", zap.Duration("sleep", s.idleSleepDuration))
		return s.wait(ctx, s.idleSleepDuration, s.blockSignal)
	}

	s.logger.Info("verifying batch",
		zap.Int("height_count", len(heights)),
		zap.Uint64("from", heights[0]),
		zap.Uint64("to", heights[len(heights)-1]),
	)
	started = time.Now()
	if err = s.blockProcessor.Process(ctx, heights); err != nil {
		s.metrics.ObserveProcessBatch(err, len(heights), started)
		s.heightFetcher.Reset()
		s.logger.Error("process batch failed", zap.Int("height_count", len(heights)), zap.Error(err))
		return err
	}
	s.metrics.ObserveProcessBatch(nil, len(heights), started)

	return nil
}
