package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
)

func maxContiguousVerifiedHeightQuery() string {
	return `WITH data AS (
    SELECT
        height,
        row_number() OVER (ORDER BY height) - 1 AS rn
    FROM block_verdicts
    WHERE coin = ? AND network = ? AND height >= ?
    GROUP BY height
)
SELECT max(height) AS max_contiguous_height, count() AS contiguous
FROM data
WHERE rn + ? = height`
}

// MaxContiguousVerifiedHeight returns the highest height h such that every height in
// [from, h] has a verdict. ok is false when from itself has none.
func (r *Repository) MaxContiguousVerifiedHeight(
	ctx context.Context,
	coin model.Coin,
	network model.Network,
	from uint64,
) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_contiguous_verified_height", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxContiguousVerifiedHeightQuery(), string(coin), string(network), from, from)
	if err != nil {
		return 0, false, fmt.Errorf("query max contiguous verified height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, false, rows.Err()
	}

	var count uint64
	if err = rows.Scan(&height, &count); err != nil {
		return 0, false, fmt.Errorf("scan max contiguous verified height: %w", err)
	}
	if count == 0 {
		return 0, false, nil
	}
	return height, true, nil
}
