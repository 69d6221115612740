package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
)

// ChainParams maps a network name to its btcd chain parameters.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch network {
	case model.Mainnet:
		return &chaincfg.MainNetParams, nil
	case model.Testnet:
		return &chaincfg.TestNet3Params, nil
	case model.Regtest:
		return &chaincfg.RegressionNetParams, nil
	case model.Signet:
		return &chaincfg.SigNetParams, nil
	case model.Simnet:
		return &chaincfg.SimNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// CheckGenesis fails unless the node's genesis block is the one of params.
func (s *BlockSource) CheckGenesis(ctx context.Context, params *chaincfg.Params) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hash, err := s.rpc.GetBlockHash(0)
	if err != nil {
		return fmt.Errorf("get genesis hash: %w", err)
	}
	if !hash.IsEqual(params.GenesisHash) {
		return fmt.Errorf("node genesis %s does not match %s genesis %s", hash, params.Name, params.GenesisHash)
	}
	return nil
}
