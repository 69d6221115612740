// Package verification implements the context-free consensus checks of a single block.
package verification

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/consensus"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/sigops"
)

// BlockVerifier runs the structural consensus checks against one indexed block.
// It holds borrowed references only and never mutates the block.
type BlockVerifier struct {
	block  *chain.IndexedBlock
	params *consensus.Params
}

// NewBlockVerifier binds a verifier to block and params.
func NewBlockVerifier(block *chain.IndexedBlock, params *consensus.Params) *BlockVerifier {
	return &BlockVerifier{
		block:  block,
		params: params,
	}
}

// Check runs every rule in order and returns the first violation, or nil.
// The order is part of the consensus contract: it decides which error a block
// breaking several rules is rejected with.
func (v *BlockVerifier) Check() error {
	if err := CheckEmpty(v.block); err != nil {
		return err
	}
	if err := CheckCoinbase(v.block); err != nil {
		return err
	}
	if err := CheckSerializedSize(v.block, v.params.MaxBlockSize()); err != nil {
		return err
	}
	if err := CheckExtraCoinbases(v.block); err != nil {
		return err
	}
	if err := CheckTransactionsUniqueness(v.block); err != nil {
		return err
	}
	if err := CheckSigOps(v.block, v.params.MaxBlockSigOps()); err != nil {
		return err
	}
	return CheckMerkleRoot(v.block)
}

// CheckEmpty fails with ErrEmpty when the block has no transactions.
func CheckEmpty(block *chain.IndexedBlock) error {
	if len(block.Transactions()) == 0 {
		return ErrEmpty
	}
	return nil
}

// CheckCoinbase fails with ErrCoinbase unless the first transaction is a coinbase.
func CheckCoinbase(block *chain.IndexedBlock) error {
	txs := block.Transactions()
	if len(txs) == 0 || !txs[0].IsCoinbase() {
		return ErrCoinbase
	}
	return nil
}

// CheckSerializedSize fails with a SizeError when the block is larger than maxSize bytes.
func CheckSerializedSize(block *chain.IndexedBlock, maxSize int) error {
	if size := block.Size(); size > maxSize {
		return &SizeError{Size: size}
	}
	return nil
}

// CheckExtraCoinbases fails on the first coinbase found after position 0.
func CheckExtraCoinbases(block *chain.IndexedBlock) error {
	txs := block.Transactions()
	for i := 1; i < len(txs); i++ {
		if txs[i].IsCoinbase() {
			return &TransactionError{Index: i, Err: ErrMisplacedCoinbase}
		}
	}
	return nil
}

// CheckTransactionsUniqueness fails when two transactions share an identity hash.
// Duplicates make the Merkle root ambiguous (CVE-2012-2459).
func CheckTransactionsUniqueness(block *chain.IndexedBlock) error {
	txs := block.Transactions()
	seen := make(map[chainhash.Hash]struct{}, len(txs))
	for _, tx := range txs {
		seen[tx.Hash()] = struct{}{}
	}
	if len(seen) != len(txs) {
		return ErrDuplicatedTransactions
	}
	return nil
}

// CheckSigOps fails when the block's signature operations exceed maxSigOps.
// No previous outputs can be resolved at this stage, so redeem scripts are not
// counted; the precise count belongs to contextual validation.
func CheckSigOps(block *chain.IndexedBlock, maxSigOps int) error {
	if sigops.BlockSigOps(block, sigops.NoopResolver{}, false) > maxSigOps {
		return ErrMaximumSigops
	}
	return nil
}

// CheckMerkleRoot fails when the recomputed Merkle root differs from the header's.
func CheckMerkleRoot(block *chain.IndexedBlock) error {
	if block.MerkleRoot() != block.HeaderMerkleRoot() {
		return ErrMerkleRoot
	}
	return nil
}
