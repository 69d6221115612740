package verifier

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeightFetcher interface {
		Fetch(ctx context.Context) ([]uint64, error)
		Reset()
	}
	BlockProcessor interface {
		Process(ctx context.Context, heights []uint64) error
	}
	VerdictWriter interface {
		Start(ctx context.Context)
		Stop()
		WriteVerdict(ctx context.Context, v model.BlockVerdict) error
		Err() error
	}
	IngesterMetrics interface {
		ObserveFetchHeights(err error, started time.Time)
		ObserveProcessBatch(err error, heights int, started time.Time)
		ObserveProcessHeight(err error, height uint64, started time.Time)
	}
	VerifierMetrics interface {
		ObserveVerdict(verdict model.BlockVerdict, started time.Time)
	}
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*chain.IndexedBlock, error)
	}
	ClickhouseRepository interface {
		MaxContiguousVerifiedHeight(ctx context.Context, coin model.Coin, network model.Network, from uint64) (uint64, bool, error)
		InsertVerdicts(ctx context.Context, verdicts []model.BlockVerdict) error
	}
)
