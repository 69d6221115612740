package verifier

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
)

// heightFetcher hands out consecutive heights from an in-memory cursor. The cursor is
// seeded lazily from the highest contiguously verified height and reseeded after Reset.
type heightFetcher struct {
	source      BlockSource
	repository  ClickhouseRepository
	coin        model.Coin
	network     model.Network
	startHeight uint64
	limit       uint64

	next   uint64
	seeded bool
}

func (f *heightFetcher) Fetch(ctx context.Context) ([]uint64, error) {
	if !f.seeded {
		if err := f.seed(ctx); err != nil {
			return nil, err
		}
	}

	latest, err := f.source.LatestHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest height: %w", err)
	}
	if f.next > latest {
		return nil, nil
	}

	end := latest
	if f.limit > 0 && latest-f.next >= f.limit {
		end = f.next + f.limit - 1
	}

	heights := make([]uint64, 0, end-f.next+1)
	for h := f.next; h <= end; h++ {
		heights = append(heights, h)
	}
	f.next = end + 1
	return heights, nil
}

func (f *heightFetcher) Reset() {
	f.seeded = false
}

func (f *heightFetcher) seed(ctx context.Context) error {
	height, ok, err := f.repository.MaxContiguousVerifiedHeight(ctx, f.coin, f.network, f.startHeight)
	if err != nil {
		return fmt.Errorf("load verification cursor: %w", err)
	}
	f.next = f.startHeight
	if ok {
		f.next = height + 1
	}
	f.seeded = true
	return nil
}
