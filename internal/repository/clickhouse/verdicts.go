package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
)

const verdictColumns = `
	coin,
	network,
	height,
	hash,
	merkleroot,
	size,
	tx_count,
	sigops,
	status,
	rule,
	reason,
	tx_index,
	verified_at`

func verdictByHashQuery() string {
	return `SELECT` + verdictColumns + `
FROM block_verdicts FINAL
WHERE coin = ? AND network = ? AND hash = ?
LIMIT 1`
}

func verdictsByHeightQuery() string {
	return `SELECT` + verdictColumns + `
FROM block_verdicts FINAL
WHERE coin = ? AND network = ? AND height = ?
ORDER BY verified_at DESC`
}

// VerdictByHash returns the verdict recorded for the block hash, or ErrNotFound.
func (r *Repository) VerdictByHash(
	ctx context.Context,
	coin model.Coin,
	network model.Network,
	hash string,
) (verdict *model.BlockVerdict, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("verdict_by_hash", coin, network, err, start)
	}()

	verdicts, err := r.queryVerdicts(ctx, verdictByHashQuery(), string(coin), string(network), hash)
	if err != nil {
		return nil, fmt.Errorf("query verdict %s: %w", hash, err)
	}
	if len(verdicts) == 0 {
		return nil, ErrNotFound
	}
	return &verdicts[0], nil
}

// VerdictsByHeight returns every verdict recorded at height, newest first. Competing
// blocks seen across reorganisations yield more than one.
func (r *Repository) VerdictsByHeight(
	ctx context.Context,
	coin model.Coin,
	network model.Network,
	height uint64,
) (verdicts []model.BlockVerdict, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("verdicts_by_height", coin, network, err, start)
	}()

	verdicts, err = r.queryVerdicts(ctx, verdictsByHeightQuery(), string(coin), string(network), height)
	if err != nil {
		return nil, fmt.Errorf("query verdicts at height %d: %w", height, err)
	}
	return verdicts, nil
}

func (r *Repository) queryVerdicts(ctx context.Context, query string, args ...any) (verdicts []model.BlockVerdict, err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			v       model.BlockVerdict
			coin    string
			network string
			status  string
		)
		if err = rows.Scan(
			&coin,
			&network,
			&v.Height,
			&v.Hash,
			&v.MerkleRoot,
			&v.Size,
			&v.TXCount,
			&v.SigOps,
			&status,
			&v.Rule,
			&v.Reason,
			&v.TxIndex,
			&v.VerifiedAt,
		); err != nil {
			return nil, fmt.Errorf("scan verdict: %w", err)
		}
		v.Coin = model.Coin(coin)
		v.Network = model.Network(network)
		v.Status = model.VerdictStatus(status)
		verdicts = append(verdicts, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verdicts: %w", err)
	}
	return verdicts, nil
}
