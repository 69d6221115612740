// Command verify-block runs the structural consensus checks against a single block,
// fetched from a node by hash or height or read from a hex file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/consensus"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/logging"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/verification"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/safe"
)

const (
	exitFailure  = 1
	exitRejected = 2
)

type config struct {
	Coin      model.Coin         `long:"coin" env:"VERIFY_BLOCK_COIN" description:"coin name" default:"BTC"`
	Network   model.Network      `long:"network" env:"VERIFY_BLOCK_NETWORK" description:"network name" default:"mainnet"`
	Hash      string             `long:"hash" description:"block hash to fetch from the node"`
	Height    int64              `long:"height" description:"block height to fetch from the node" default:"-1"`
	BlockFile string             `long:"block-file" description:"file holding the hex encoded block, - for stdin"`
	RPC       bitcoin.RPCOptions `group:"rpc" namespace:"" env-namespace:"VERIFY_BLOCK"`
	Log       logging.Options    `group:"log" namespace:"" env-namespace:"VERIFY_BLOCK"`
}

// blockFetcher is the part of bitcoin.BlockSource used here.
type blockFetcher interface {
	FetchBlock(ctx context.Context, height uint64) (*chain.IndexedBlock, error)
	FetchBlockByHash(ctx context.Context, hash chainhash.Hash) (*chain.IndexedBlock, uint64, error)
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "can't initialize zap logger:", err)
		return exitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	verdict, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Error("verify block failed", zap.Error(err))
		return exitFailure
	}
	return report(logger, verdict)
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (model.BlockVerdict, error) {
	if err := validate(cfg); err != nil {
		return model.BlockVerdict{}, err
	}
	if _, err := bitcoin.ChainParams(cfg.Network); err != nil {
		return model.BlockVerdict{}, err
	}

	if cfg.BlockFile != "" {
		block, err := readBlockFile(cfg.BlockFile)
		if err != nil {
			return model.BlockVerdict{}, err
		}
		return verify(cfg, block, 0), nil
	}

	rpcClient, err := bitcoin.NewRPCClient(cfg.RPC)
	if err != nil {
		return model.BlockVerdict{}, fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	logger.Debug("fetching block", zap.String("hash", cfg.Hash), zap.Int64("height", cfg.Height))
	block, height, err := fetch(ctx, cfg, bitcoin.NewBlockSource(rpcClient))
	if err != nil {
		return model.BlockVerdict{}, err
	}
	return verify(cfg, block, height), nil
}

func validate(cfg config) error {
	sources := 0
	if cfg.Hash != "" {
		sources++
	}
	if cfg.Height >= 0 {
		sources++
	}
	if cfg.BlockFile != "" {
		sources++
	}
	if sources != 1 {
		return errors.New("exactly one of --hash, --height or --block-file is required")
	}
	return nil
}

func fetch(ctx context.Context, cfg config, source blockFetcher) (*chain.IndexedBlock, uint64, error) {
	if cfg.Hash != "" {
		hash, err := chainhash.NewHashFromStr(cfg.Hash)
		if err != nil {
			return nil, 0, fmt.Errorf("parse block hash: %w", err)
		}
		return source.FetchBlockByHash(ctx, *hash)
	}

	height, err := safe.Uint64(cfg.Height)
	if err != nil {
		return nil, 0, fmt.Errorf("block height: %w", err)
	}
	block, err := source.FetchBlock(ctx, height)
	return block, height, err
}

func readBlockFile(path string) (*chain.IndexedBlock, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read block file: %w", err)
	}
	return chain.ParseIndexedBlockHex(string(raw))
}

func verify(cfg config, block *chain.IndexedBlock, height uint64) model.BlockVerdict {
	checkErr := verification.NewBlockVerifier(block, consensus.Main()).Check()
	return verification.Verdict(block, cfg.Coin, cfg.Network, height, checkErr, time.Now())
}

func report(logger *zap.Logger, v model.BlockVerdict) int {
	fields := []zap.Field{
		zap.String("hash", v.Hash),
		zap.Uint64("height", v.Height),
		zap.Uint32("size", v.Size),
		zap.Uint32("tx_count", v.TXCount),
		zap.Uint32("sigops", v.SigOps),
	}
	if v.Valid() {
		logger.Info("block valid", fields...)
		return 0
	}

	fields = append(fields, zap.String("rule", v.Rule), zap.String("reason", v.Reason))
	if v.TxIndex != model.NoTxIndex {
		fields = append(fields, zap.Int32("tx_index", v.TxIndex))
	}
	logger.Warn("block rejected", fields...)
	return exitRejected
}
