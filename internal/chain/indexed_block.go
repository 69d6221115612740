// Package chain provides the hash-indexed block representation consumed by validation.
package chain

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// IndexedTransaction pairs a raw transaction with its precomputed identity hash.
type IndexedTransaction struct {
	tx *btcutil.Tx
}

// Hash returns the transaction identity hash (double SHA-256 of the witness-free serialization).
func (t IndexedTransaction) Hash() chainhash.Hash {
	return *t.tx.Hash()
}

// Raw returns the underlying wire transaction. Callers must not modify it.
func (t IndexedTransaction) Raw() *wire.MsgTx {
	return t.tx.MsgTx()
}

// IsCoinbase reports whether the transaction has a single input spending the null outpoint.
func (t IndexedTransaction) IsCoinbase() bool {
	return blockchain.IsCoinBaseTx(t.tx.MsgTx())
}

// IndexedBlock is an immutable snapshot of a parsed block with every transaction hash
// computed up front. Size and Merkle root are derived lazily and cached; all methods are
// safe for concurrent use.
type IndexedBlock struct {
	header       wire.BlockHeader
	transactions []IndexedTransaction
	txs          []*btcutil.Tx

	hashOnce   sync.Once
	hash       chainhash.Hash
	sizeOnce   sync.Once
	size       int
	merkleOnce sync.Once
	merkleRoot chainhash.Hash
}

// NewIndexedBlock indexes a wire block.
func NewIndexedBlock(msg *wire.MsgBlock) *IndexedBlock {
	txs := make([]*btcutil.Tx, 0, len(msg.Transactions))
	for i, msgTx := range msg.Transactions {
		tx := btcutil.NewTx(msgTx)
		tx.SetIndex(i)
		txs = append(txs, tx)
	}
	return newIndexedBlock(msg.Header, txs)
}

// FromBlock indexes a btcutil block, reusing hashes it has already cached.
func FromBlock(block *btcutil.Block) *IndexedBlock {
	return newIndexedBlock(block.MsgBlock().Header, block.Transactions())
}

// ParseIndexedBlock decodes a block from its wire serialization and indexes it.
func ParseIndexedBlock(raw []byte) (*IndexedBlock, error) {
	var msg wire.MsgBlock
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserialize block: %w", err)
	}
	return NewIndexedBlock(&msg), nil
}

// ParseIndexedBlockHex decodes a hex encoded block, as returned by getblock with verbosity 0.
func ParseIndexedBlockHex(raw string) (*IndexedBlock, error) {
	decoded, err := hex.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("decode block hex: %w", err)
	}
	return ParseIndexedBlock(decoded)
}

func newIndexedBlock(header wire.BlockHeader, txs []*btcutil.Tx) *IndexedBlock {
	transactions := make([]IndexedTransaction, 0, len(txs))
	for _, tx := range txs {
		// Hash caches on first call; doing it here keeps later reads free of writes.
		tx.Hash()
		transactions = append(transactions, IndexedTransaction{tx: tx})
	}
	return &IndexedBlock{
		header:       header,
		transactions: transactions,
		txs:          txs,
	}
}

// Header returns a copy of the block header.
func (b *IndexedBlock) Header() wire.BlockHeader {
	return b.header
}

// Hash returns the block header hash.
func (b *IndexedBlock) Hash() chainhash.Hash {
	b.hashOnce.Do(func() {
		b.hash = b.header.BlockHash()
	})
	return b.hash
}

// Transactions returns the indexed transactions in wire order.
func (b *IndexedBlock) Transactions() []IndexedTransaction {
	return b.transactions
}

// HeaderMerkleRoot returns the Merkle root claimed by the header.
func (b *IndexedBlock) HeaderMerkleRoot() chainhash.Hash {
	return b.header.MerkleRoot
}

// MerkleRoot returns the Merkle root recomputed from the transaction hashes.
func (b *IndexedBlock) MerkleRoot() chainhash.Hash {
	b.merkleOnce.Do(func() {
		if len(b.txs) == 0 {
			return
		}
		b.merkleRoot = blockchain.CalcMerkleRoot(b.txs, false)
	})
	return b.merkleRoot
}

// Size returns the canonical witness-free serialized size of the block in bytes.
func (b *IndexedBlock) Size() int {
	b.sizeOnce.Do(func() {
		size := wire.MaxBlockHeaderPayload + wire.VarIntSerializeSize(uint64(len(b.txs)))
		for _, tx := range b.txs {
			size += tx.MsgTx().SerializeSizeStripped()
		}
		b.size = size
	})
	return b.size
}

// MsgBlock rebuilds a wire block sharing the indexed transactions.
func (b *IndexedBlock) MsgBlock() *wire.MsgBlock {
	msg := wire.NewMsgBlock(&b.header)
	msg.Transactions = make([]*wire.MsgTx, 0, len(b.txs))
	for _, tx := range b.txs {
		msg.Transactions = append(msg.Transactions, tx.MsgTx())
	}
	return msg
}
