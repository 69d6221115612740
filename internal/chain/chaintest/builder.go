// Package chaintest builds small deterministic blocks and transactions for tests.
package chaintest

import (
	"bytes"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// AnyoneCanSpend is an output script with no signature operations.
var AnyoneCanSpend = []byte{txscript.OP_TRUE}

// CoinbaseTx builds a coinbase transaction paying value to AnyoneCanSpend.
// Distinct extraNonce values yield distinct transaction hashes.
func CoinbaseTx(value int64, extraNonce int64) *wire.MsgTx {
	script, err := txscript.NewScriptBuilder().
		AddInt64(extraNonce).
		AddData([]byte("chaintest")).
		Script()
	if err != nil {
		panic(err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		SignatureScript:  script,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(value, AnyoneCanSpend))
	return tx
}

// SpendTx builds a transaction spending prev:index into a single output.
func SpendTx(prev chainhash.Hash, index uint32, value int64, pkScript []byte) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prev, index), []byte{txscript.OP_TRUE}, nil))
	tx.AddTxOut(wire.NewTxOut(value, pkScript))
	return tx
}

// RepeatScript returns a script consisting of n copies of opcode.
func RepeatScript(opcode byte, n int) []byte {
	return bytes.Repeat([]byte{opcode}, n)
}

// Block assembles txs into a block whose header commits to their Merkle root.
func Block(txs ...*wire.MsgTx) *wire.MsgBlock {
	msg := wire.NewMsgBlock(&wire.BlockHeader{
		Version:   1,
		Timestamp: time.Unix(1_700_000_000, 0),
		Bits:      0x207fffff,
	})
	for _, tx := range txs {
		if err := msg.AddTransaction(tx); err != nil {
			panic(err)
		}
	}
	Remerkle(msg)
	return msg
}

// Remerkle recomputes and stores the header Merkle root of msg.
func Remerkle(msg *wire.MsgBlock) {
	if len(msg.Transactions) == 0 {
		msg.Header.MerkleRoot = chainhash.Hash{}
		return
	}
	txs := make([]*btcutil.Tx, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		txs = append(txs, btcutil.NewTx(tx))
	}
	msg.Header.MerkleRoot = blockchain.CalcMerkleRoot(txs, false)
}
