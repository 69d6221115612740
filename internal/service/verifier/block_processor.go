package verifier

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/consensus"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/verification"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/workerpool"
)

type blockProcessor struct {
	workerCount     int
	source          BlockSource
	verdictWriter   VerdictWriter
	params          *consensus.Params
	coin            model.Coin
	network         model.Network
	metrics         IngesterMetrics
	verifierMetrics VerifierMetrics
	logger          *zap.Logger
	now             func() time.Time
}

func (p *blockProcessor) Process(ctx context.Context, heights []uint64) error {
	return workerpool.Process(ctx, p.workerCount, heights, p.processHeight, func() {
		p.logger.Warn("aborting batch", zap.Int("height_count", len(heights)), zap.Uint64("from", heights[0]))
	})
}

func (p *blockProcessor) processHeight(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveProcessHeight(err, height, started)
	}()

	block, err := p.source.FetchBlock(ctx, height)
	if err != nil {
		p.logger.Error("fetch block failed", zap.Uint64("height", height), zap.Error(err))
		return fmt.Errorf("fetch block height %d: %w", height, err)
	}

	checkStarted := time.Now()
	checkErr := verification.NewBlockVerifier(block, p.params).Check()
	verdict := verification.Verdict(block, p.coin, p.network, height, checkErr, p.now())
	p.verifierMetrics.ObserveVerdict(verdict, checkStarted)

	if checkErr != nil {
		p.logger.Warn("block rejected",
			zap.Uint64("height", height),
			zap.String("hash", verdict.Hash),
			zap.String("rule", verdict.Rule),
			zap.Error(checkErr),
		)
	}

	if err = p.verdictWriter.WriteVerdict(ctx, verdict); err != nil {
		p.logger.Error("write verdict failed", zap.Uint64("height", height), zap.Error(err))
		return fmt.Errorf("write verdict height %d: %w", height, err)
	}
	return nil
}
