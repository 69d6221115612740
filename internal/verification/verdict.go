package verification

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/sigops"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/safe"
)

// Verdict summarises the outcome of Check for block at height.
func Verdict(
	block *chain.IndexedBlock,
	coin model.Coin,
	network model.Network,
	height uint64,
	checkErr error,
	verifiedAt time.Time,
) model.BlockVerdict {
	v := model.BlockVerdict{
		Coin:       coin,
		Network:    network,
		Height:     height,
		Hash:       block.Hash().String(),
		MerkleRoot: block.HeaderMerkleRoot().String(),
		Size:       safe.ClampUint32(block.Size()),
		TXCount:    safe.ClampUint32(len(block.Transactions())),
		SigOps:     safe.ClampUint32(sigops.BlockSigOps(block, sigops.NoopResolver{}, false)),
		Status:     model.VerdictValid,
		TxIndex:    model.NoTxIndex,
		VerifiedAt: verifiedAt.UTC(),
	}
	if checkErr == nil {
		return v
	}

	v.Status = model.VerdictInvalid
	v.Rule = Rule(checkErr)
	v.Reason = checkErr.Error()
	if index, ok := TransactionIndex(checkErr); ok {
		v.TxIndex = safe.ClampInt32(index)
	}
	return v
}
