package snapshot

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

// Source is the live state a snapshot is captured from.
type Source interface {
	uniswapv2.StateReader
	GetPairTokens(ctx context.Context, pair common.Address) (common.Address, common.Address, error)
}

// Syncer copies pair and reserve state from a Source into a Store.
type Syncer struct {
	source Source
	store  *Store
	logger *zap.Logger
}

// NewSyncer creates a Syncer. A nil logger disables logging.
func NewSyncer(source Source, store *Store, logger *zap.Logger) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Syncer{source: source, store: store, logger: logger}
}

// Sync captures every pool the factories hold between any two of tokens.
// A failing pool does not stop the others; all failures are returned together
// with the number of pools stored.
func (s *Syncer) Sync(ctx context.Context, factories, tokens []common.Address) (int, error) {
	var (
		stored int
		errs   error
	)

	for _, factory := range factories {
		for i := range tokens {
			for j := i + 1; j < len(tokens); j++ {
				if err := ctx.Err(); err != nil {
					return stored, multierr.Append(errs, err)
				}

				ok, err := s.syncPair(ctx, factory, tokens[i], tokens[j])
				if err != nil {
					errs = multierr.Append(errs, errors.Wrapf(err, "factory %s pair %s/%s", factory.Hex(), tokens[i].Hex(), tokens[j].Hex()))
					continue
				}
				if ok {
					stored++
				}
			}
		}
	}

	s.logger.Info("snapshot sync finished",
		zap.Int("pools", stored),
		zap.Int("errors", len(multierr.Errors(errs))),
	)
	return stored, errs
}

func (s *Syncer) syncPair(ctx context.Context, factory, tokenA, tokenB common.Address) (bool, error) {
	token0, token1, err := uniswapv2.SortTokens(tokenA, tokenB)
	if err != nil {
		return false, err
	}

	pair, err := s.source.GetPair(ctx, factory, token0, token1)
	if err != nil {
		return false, errors.Wrap(err, "s.source.GetPair")
	}
	if pair == (common.Address{}) {
		return false, nil
	}

	got0, got1, err := s.source.GetPairTokens(ctx, pair)
	if err != nil {
		return false, errors.Wrap(err, "s.source.GetPairTokens")
	}
	if got0 != token0 || got1 != token1 {
		return false, errors.Errorf("pair %s holds %s/%s", pair.Hex(), got0.Hex(), got1.Hex())
	}

	res, err := s.source.GetReserves(ctx, pair)
	if err != nil {
		return false, errors.Wrap(err, "s.source.GetReserves")
	}

	if err := s.store.PutPair(ctx, factory, token0, token1, pair); err != nil {
		return false, err
	}
	if err := s.store.PutReserves(ctx, pair, res); err != nil {
		return false, err
	}

	s.logger.Debug("pool captured",
		zap.Stringer("factory", factory),
		zap.Stringer("pair", pair),
		zap.String("reserve0", res.Reserve0.Dec()),
		zap.String("reserve1", res.Reserve1.Dec()),
	)
	return true, nil
}
