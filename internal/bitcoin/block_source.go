// Package bitcoin reads blocks from a Bitcoin node over JSON-RPC.
package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/safe"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the node API the block source depends on.
	RPCClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error)
		GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
	}
)

// BlockSource fetches raw blocks and indexes them for verification.
type BlockSource struct {
	rpc RPCClient
}

// NewBlockSource creates a BlockSource backed by rpc.
func NewBlockSource(rpc RPCClient) *BlockSource {
	return &BlockSource{rpc: rpc}
}

// LatestHeight returns the height of the node's best block.
func (s *BlockSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves the block at height on the node's best chain.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (*chain.IndexedBlock, error) {
	rpcHeight, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.rpc.GetBlockHash(rpcHeight)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return s.fetch(ctx, hash)
}

// FetchBlockByHash retrieves the block with the given hash together with its height.
func (s *BlockSource) FetchBlockByHash(ctx context.Context, hash chainhash.Hash) (*chain.IndexedBlock, uint64, error) {
	header, err := s.rpc.GetBlockHeaderVerbose(&hash)
	if err != nil {
		return nil, 0, fmt.Errorf("get block header %s: %w", hash, err)
	}
	height, err := safe.Uint64(header.Height)
	if err != nil {
		return nil, 0, fmt.Errorf("block %s height: %w", hash, err)
	}
	block, err := s.fetch(ctx, &hash)
	if err != nil {
		return nil, 0, err
	}
	return block, height, nil
}

func (s *BlockSource) fetch(ctx context.Context, hash *chainhash.Hash) (*chain.IndexedBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	msg, err := s.rpc.GetBlock(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	block := chain.NewIndexedBlock(msg)
	if got := block.Hash(); !got.IsEqual(hash) {
		return nil, fmt.Errorf("node returned block %s for hash %s", got, hash)
	}
	return block, nil
}
