// Command snapshot captures pool state of the configured venues into the
// SQLite file the server reads with state_source: snapshot.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/fleshka4/v2-aggregator/internal/config"
	"github.com/fleshka4/v2-aggregator/internal/infra/snapshot"
	"github.com/fleshka4/v2-aggregator/internal/infra/uniswap"
	"github.com/fleshka4/v2-aggregator/internal/logging"
)

func main() {
	tokensFlag := flag.String("tokens", "", "comma separated token addresses to capture pools between")
	outFlag := flag.String("out", "", "snapshot file, defaults to snapshot_path from config")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("godotenv.Load: %v", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	// The snapshot is always captured from RPC regardless of state_source.
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}
	if cfg.RPCURL == "" {
		log.Fatal("rpc_url is required to capture a snapshot")
	}

	out := *outFlag
	if out == "" {
		out = cfg.SnapshotPath
	}
	if out == "" {
		log.Fatal("no snapshot file: pass -out or set snapshot_path")
	}

	var tokens []common.Address
	for _, s := range strings.Split(*tokensFlag, ",") {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		if !common.IsHexAddress(s) {
			log.Fatalf("bad token address %q", s)
		}
		tokens = append(tokens, common.HexToAddress(s))
	}
	if len(tokens) < 2 {
		log.Fatal("at least two -tokens are required")
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logging.NewLogger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var factories []common.Address
	slots, _ := cfg.CandidateSet()
	for _, slot := range slots {
		if f, ok := slot.Get(); ok {
			factories = append(factories, f)
		}
	}

	client, err := uniswap.NewClient(cfg.RPCURL, cfg.CallTimeout)
	if err != nil {
		logger.Fatal("uniswap.NewClient", zap.Error(err))
	}
	store, err := snapshot.Open(out)
	if err != nil {
		logger.Fatal("snapshot.Open", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	n, syncErr := snapshot.NewSyncer(client, store, logger).Sync(ctx, factories, tokens)
	for _, e := range multierr.Errors(syncErr) {
		logger.Warn("pool skipped", zap.Error(e))
	}
	if err := store.Close(); err != nil {
		logger.Error("store.Close", zap.Error(err))
	}

	logger.Info("snapshot written", zap.String("path", out), zap.Int("pools", n))
	if n == 0 && syncErr != nil {
		os.Exit(1)
	}
}
