package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
)

func insertVerdictsQuery() string {
	return `
INSERT INTO block_verdicts (
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
	verified_at
) VALUES`
}

// InsertVerdicts stores verdict rows in ClickHouse.
func (r *Repository) InsertVerdicts(ctx context.Context, verdicts []model.BlockVerdict) (err error) {
	start := time.Now()
	coin, network := firstScope(verdicts)
	defer func() {
		r.metrics.Observe("insert_verdicts", coin, network, err, start)
	}()

	if len(verdicts) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertVerdictsQuery())
	if err != nil {
		return fmt.Errorf("prepare verdicts batch: %w", err)
	}

	for _, v := range verdicts {
		if err = batch.Append(
			string(v.Coin),
			string(v.Network),
			v.Height,
			v.Hash,
			v.MerkleRoot,
			v.Size,
			v.TXCount,
			v.SigOps,
			string(v.Status),
			v.Rule,
			v.Reason,
			v.TxIndex,
			v.VerifiedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append verdict %s: %w", v.Hash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert verdicts: %w", err)
	}
	return nil
}

func firstScope(verdicts []model.BlockVerdict) (model.Coin, model.Network) {
	if len(verdicts) == 0 {
		return "", ""
	}
	return verdicts[0].Coin, verdicts[0].Network
}
