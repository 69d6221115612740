// Package sigops counts signature operations implied by transaction scripts.
package sigops

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/chain"
)

// OutputResolver resolves previous outputs spent by transaction inputs.
type OutputResolver interface {
	ResolveOutput(outpoint wire.OutPoint) (*wire.TxOut, bool)
}

// NoopResolver resolves no outputs. It is used where no UTXO set is available.
type NoopResolver struct{}

// ResolveOutput always reports the output as unknown.
func (NoopResolver) ResolveOutput(wire.OutPoint) (*wire.TxOut, bool) {
	return nil, false
}

// MapResolver resolves outputs from an in-memory snapshot.
type MapResolver map[wire.OutPoint]*wire.TxOut

// ResolveOutput looks the outpoint up in the snapshot.
func (r MapResolver) ResolveOutput(outpoint wire.OutPoint) (*wire.TxOut, bool) {
	out, ok := r[outpoint]
	return out, ok
}

// TransactionSigOps returns the signature operations of tx. Output scripts and, for
// non-coinbase transactions, input signature scripts are counted the legacy way (every
// CHECKMULTISIG counts as 20). With bip16 set, inputs spending a resolved
// pay-to-script-hash output additionally count the precise sigops of their redeem script.
func TransactionSigOps(tx *wire.MsgTx, resolver OutputResolver, bip16 bool) int {
	count := 0
	for _, out := range tx.TxOut {
		count += txscript.GetSigOpCount(out.PkScript)
	}

	if blockchain.IsCoinBaseTx(tx) {
		return count
	}

	for _, in := range tx.TxIn {
		count += txscript.GetSigOpCount(in.SignatureScript)
		if !bip16 {
			continue
		}
		prevOut, ok := resolver.ResolveOutput(in.PreviousOutPoint)
		if !ok || prevOut == nil || !txscript.IsPayToScriptHash(prevOut.PkScript) {
			continue
		}
		count += txscript.GetPreciseSigOpCount(in.SignatureScript, prevOut.PkScript, true)
	}
	return count
}

// BlockSigOps sums TransactionSigOps over every transaction of the block.
func BlockSigOps(block *chain.IndexedBlock, resolver OutputResolver, bip16 bool) int {
	total := 0
	for _, tx := range block.Transactions() {
		total += TransactionSigOps(tx.Raw(), resolver, bip16)
	}
	return total
}
