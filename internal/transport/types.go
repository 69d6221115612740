package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Pinger interface {
		Ping(ctx context.Context) error
	}
	VerdictReader interface {
		VerdictByHash(ctx context.Context, coin model.Coin, network model.Network, hash string) (*model.BlockVerdict, error)
		VerdictsByHeight(ctx context.Context, coin model.Coin, network model.Network, height uint64) ([]model.BlockVerdict, error)
	}
	CacheMetrics interface {
		ObserveLookup(hit bool)
	}
)
