// Command verifier follows a Bitcoin node and records a structural consensus verdict for
// every block in ClickHouse.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/consensus"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/logging"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
	rpcclient2 "github.com/goodnatureofminers/blockinsight7000-verifier/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/service/verifier"
)

type config struct {
	ClickhouseDSN string             `long:"clickhouse-dsn" env:"VERIFIER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Coin          model.Coin         `long:"coin" env:"VERIFIER_COIN" description:"coin name" default:"BTC"`
	Network       model.Network      `long:"network" env:"VERIFIER_NETWORK" description:"network name" required:"true"`
	StartHeight   uint64             `long:"start-height" env:"VERIFIER_START_HEIGHT" description:"first height to verify when nothing is stored yet"`
	BatchSize     uint64             `long:"batch-size" env:"VERIFIER_BATCH_SIZE" description:"heights verified per batch" default:"500"`
	Workers       int                `long:"workers" env:"VERIFIER_WORKERS" description:"blocks fetched and verified concurrently" default:"8"`
	ZMQAddr       string             `long:"zmq-addr" env:"VERIFIER_ZMQ_ADDR" description:"node ZMQ endpoint publishing hashblock"`
	MetricsAddr   string             `long:"metrics-addr" env:"VERIFIER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	RPC           bitcoin.RPCOptions `group:"rpc" namespace:"" env-namespace:"VERIFIER"`
	Log           logging.Options    `group:"log" namespace:"" env-namespace:"VERIFIER"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("verifier failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	chainParams, err := bitcoin.ChainParams(cfg.Network)
	if err != nil {
		return err
	}

	metrics.Serve(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	rpcClient, err := bitcoin.NewRPCClient(cfg.RPC)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := rpcclient2.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))
	source := bitcoin.NewBlockSource(rpc)

	if err := source.CheckGenesis(ctx, chainParams); err != nil {
		return err
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger.Named("zmq"))
	if err != nil {
		return err
	}

	svc, err := verifier.NewIngesterService(
		repo,
		source,
		consensus.Main(),
		metrics.NewVerifierIngester(cfg.Coin, cfg.Network),
		metrics.NewVerifier(cfg.Coin, cfg.Network),
		verifier.Config{
			Coin:        cfg.Coin,
			Network:     cfg.Network,
			StartHeight: cfg.StartHeight,
			BatchSize:   cfg.BatchSize,
			WorkerCount: cfg.Workers,
		},
		logger,
		blockSignal,
	)
	if err != nil {
		return err
	}

	logger.Info("verifier started",
		zap.String("network", string(cfg.Network)),
		zap.Uint64("start_height", cfg.StartHeight),
	)
	return svc.Run(ctx)
}
