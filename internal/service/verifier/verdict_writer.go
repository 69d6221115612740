package verifier

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/batcher"
)

// verdictWriter buffers verdicts and persists them in rate-limited batches. The first
// flush failure is kept until Err collects it.
type verdictWriter struct {
	repo           ClickhouseRepository
	logger         *zap.Logger
	verdictBatcher *batcher.Batcher[model.BlockVerdict]

	mu  sync.Mutex
	err error
}

func newVerdictWriter(repo ClickhouseRepository, logger *zap.Logger) *verdictWriter {
	w := &verdictWriter{
		repo:   repo,
		logger: logger,
	}

	w.verdictBatcher = batcher.New[model.BlockVerdict](
		logger.Named("verdictBatcher"),
		w.flush,
		batcher.Config{
			Size:     verdictBatcherCapacity,
			Interval: verdictBatcherFlushInterval,
			RPS:      verdictBatcherRPS,
		},
	)
	return w
}

func (w *verdictWriter) Start(ctx context.Context) {
	w.verdictBatcher.Start(ctx)
}

func (w *verdictWriter) Stop() {
	w.verdictBatcher.Stop()
}

func (w *verdictWriter) WriteVerdict(ctx context.Context, v model.BlockVerdict) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.verdictBatcher.Add(ctx, v)
}

// Err returns and clears the first flush failure since the previous call.
func (w *verdictWriter) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.err
	w.err = nil
	return err
}

func (w *verdictWriter) flush(ctx context.Context, verdicts []model.BlockVerdict) error {
	for start := 0; start < len(verdicts); start += verdictInsertChunk {
		end := min(start+verdictInsertChunk, len(verdicts))
		if err := w.repo.InsertVerdicts(ctx, verdicts[start:end]); err != nil {
			w.record(err)
			return err
		}
		w.logger.Debug("InsertVerdicts", zap.Int("count", end-start))
	}
	return nil
}

func (w *verdictWriter) record(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err == nil {
		w.err = err
	}
}
