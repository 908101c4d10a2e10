package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/fleshka4/v2-aggregator/internal/config"
	"github.com/fleshka4/v2-aggregator/internal/infra/pairs"
	"github.com/fleshka4/v2-aggregator/internal/infra/snapshot"
	"github.com/fleshka4/v2-aggregator/internal/infra/uniswap"
	"github.com/fleshka4/v2-aggregator/internal/logging"
	"github.com/fleshka4/v2-aggregator/internal/service"
	httptransport "github.com/fleshka4/v2-aggregator/internal/transport/http"
	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("godotenv.Load: %v", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logging.NewLogger: %v", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) (err error) {
	defer func() {
		// Sync fails on non-syncable stderr; that is not worth reporting.
		_ = logger.Sync()
	}()

	state, closeState, err := newStateReader(cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, closeState())
	}()

	if size := cfg.CacheSize(); size > 0 {
		cached, err := pairs.NewCachedReader(state, size)
		if err != nil {
			return errors.Wrap(err, "pairs.NewCachedReader")
		}
		state = cached
	}

	factories, fees := cfg.CandidateSet()
	lib := uniswapv2.NewLibrary(state, logger.Named("uniswapv2"))
	svc := service.NewRouterService(lib, factories, fees, logger.Named("service"))
	srv := httptransport.NewServer(svc, cfg, logger.Named("http"))

	logger.Info("starting",
		zap.String("state_source", cfg.StateSource),
		zap.Int("venues", len(cfg.Venues)),
		zap.Int("pair_cache_size", cfg.CacheSize()),
	)

	return errors.Wrap(srv.ListenAndServe(cfg.ListenAddr), "srv.ListenAndServe")
}

func newStateReader(cfg config.Config) (uniswapv2.StateReader, func() error, error) {
	switch cfg.StateSource {
	case config.StateSourceSnapshot:
		store, err := snapshot.Open(cfg.SnapshotPath)
		if err != nil {
			return nil, nil, errors.Wrap(err, "snapshot.Open")
		}
		return store, store.Close, nil
	default:
		client, err := uniswap.NewClient(cfg.RPCURL, cfg.CallTimeout)
		if err != nil {
			return nil, nil, errors.Wrap(err, "uniswap.NewClient")
		}
		return client, func() error { return nil }, nil
	}
}
