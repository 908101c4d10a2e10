package uniswapv2

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
)

const (
	directionOut = "out"
	directionIn  = "in"
)

// FactorySlot is a candidate venue that is either enabled with a factory
// address or disabled. Disabled slots are skipped without any state read.
type FactorySlot struct {
	factory common.Address
	enabled bool
}

// Enabled returns a slot for factory.
func Enabled(factory common.Address) FactorySlot {
	return FactorySlot{factory: factory, enabled: true}
}

// Disabled returns a slot that is never queried.
func Disabled() FactorySlot {
	return FactorySlot{}
}

// SlotFromAddress maps the zero address to a disabled slot and any other
// address to an enabled one.
func SlotFromAddress(factory common.Address) FactorySlot {
	if factory == (common.Address{}) {
		return Disabled()
	}
	return Enabled(factory)
}

// Get returns the factory and whether the slot is enabled.
func (s FactorySlot) Get() (common.Address, bool) {
	return s.factory, s.enabled
}

// Address returns the factory, or the zero address for a disabled slot.
func (s FactorySlot) Address() common.Address {
	return s.factory
}

// CandidateSet lists the venues considered for every hop of an aggregated route.
//
// Factories and Fees are parallel: Fees[j] is the retained numerator out of
// 10000 applied when Factories[j] quotes a hop. MinAmounts is parallel to the
// path: hop i is accepted from a venue only if that venue's reserveIn is at
// least MinAmounts[i] and its reserveOut is at least MinAmounts[i+1].
type CandidateSet struct {
	Factories  []FactorySlot
	Fees       []uint64
	MinAmounts []*uint256.Int
}

func (c CandidateSet) validate(path []common.Address) error {
	if len(path) < 2 {
		return errors.Wrapf(apperrors.ErrInvalidPath, "path length %d", len(path))
	}
	if len(c.Factories) != len(c.Fees) {
		return errors.Wrapf(apperrors.ErrMismatchedLengths, "%d factories, %d fees", len(c.Factories), len(c.Fees))
	}
	if len(path) != len(c.MinAmounts) {
		return errors.Wrapf(apperrors.ErrMismatchedLengths, "path length %d, %d min amounts", len(path), len(c.MinAmounts))
	}
	if len(c.Factories) == 0 {
		return apperrors.ErrEmptyFactoryList
	}
	return nil
}

func meetsFloor(reserve, floor *uint256.Int) bool {
	return floor == nil || reserve.Cmp(floor) >= 0
}

// GetAggregationAmountsOut chains swaps over path choosing a venue per hop.
//
// For every hop the enabled candidates are scanned in order. Each scanned
// candidate overwrites the hop's amount and venue; the scan stops at the first
// candidate whose reserves meet both liquidity floors. If none does, the hop is
// recomputed with Factories[0] and Fees[0].
//
// It returns the amount chain and the factory used for each hop.
func (l *Library) GetAggregationAmountsOut(ctx context.Context, set CandidateSet, amountIn *uint256.Int, path []common.Address) ([]*uint256.Int, []common.Address, error) {
	if err := set.validate(path); err != nil {
		return nil, nil, err
	}

	amounts := make([]*uint256.Int, len(path))
	used := make([]common.Address, len(path)-1)
	amounts[0] = orZero(amountIn).Clone()

	for i := 0; i < len(path)-1; i++ {
		accepted := false
		for j, slot := range set.Factories {
			factory, ok := slot.Get()
			if !ok {
				continue
			}

			reserveIn, reserveOut, err := l.GetReserves(ctx, factory, path[i], path[i+1])
			if err != nil {
				return nil, nil, errors.Wrapf(err, "hop %d", i)
			}
			out, err := GetAmountOutWithFee(amounts[i], reserveIn, reserveOut, set.Fees[j])
			if err != nil {
				return nil, nil, errors.Wrapf(err, "hop %d venue %s", i, factory.Hex())
			}
			amounts[i+1], used[i] = out, factory

			if meetsFloor(reserveIn, set.MinAmounts[i]) && meetsFloor(reserveOut, set.MinAmounts[i+1]) {
				accepted = true
				break
			}
		}

		if !accepted {
			factory, ok := set.Factories[0].Get()
			if !ok {
				return nil, nil, errors.Wrapf(apperrors.ErrInsufficientLiquidity, "hop %d: no venue met the liquidity floors and the first venue is disabled", i)
			}

			l.logger.Debug("aggregation hop falls back to first venue",
				zap.Int("hop", i),
				zap.Stringer("factory", factory),
				zap.Stringer("token_in", path[i]),
				zap.Stringer("token_out", path[i+1]),
			)
			aggregationFallbackCounter.WithLabelValues(factory.Hex()).Inc()

			reserveIn, reserveOut, err := l.GetReserves(ctx, factory, path[i], path[i+1])
			if err != nil {
				return nil, nil, errors.Wrapf(err, "hop %d", i)
			}
			out, err := GetAmountOutWithFee(amounts[i], reserveIn, reserveOut, set.Fees[0])
			if err != nil {
				return nil, nil, errors.Wrapf(err, "hop %d venue %s", i, factory.Hex())
			}
			amounts[i+1], used[i] = out, factory
		}

		aggregationVenueCounter.WithLabelValues(directionOut, used[i].Hex()).Inc()
	}

	return amounts, used, nil
}

// GetAggregationAmountsIn mirrors GetAggregationAmountsOut for a desired output,
// walking hops from the end of path and using GetAmountInWithFee.
//
// There is no fallback to Factories[0]: when no candidate meets the floors the
// last scanned candidate stands. A hop whose candidates are all disabled fails
// with ErrInsufficientLiquidity.
func (l *Library) GetAggregationAmountsIn(ctx context.Context, set CandidateSet, amountOut *uint256.Int, path []common.Address) ([]*uint256.Int, []common.Address, error) {
	if err := set.validate(path); err != nil {
		return nil, nil, err
	}

	amounts := make([]*uint256.Int, len(path))
	used := make([]common.Address, len(path)-1)
	amounts[len(amounts)-1] = orZero(amountOut).Clone()

	for i := len(path) - 1; i > 0; i-- {
		scanned := false
		for j, slot := range set.Factories {
			factory, ok := slot.Get()
			if !ok {
				continue
			}
			scanned = true

			reserveIn, reserveOut, err := l.GetReserves(ctx, factory, path[i-1], path[i])
			if err != nil {
				return nil, nil, errors.Wrapf(err, "hop %d", i-1)
			}
			in, err := GetAmountInWithFee(amounts[i], reserveIn, reserveOut, set.Fees[j])
			if err != nil {
				return nil, nil, errors.Wrapf(err, "hop %d venue %s", i-1, factory.Hex())
			}
			amounts[i-1], used[i-1] = in, factory

			if meetsFloor(reserveIn, set.MinAmounts[i-1]) && meetsFloor(reserveOut, set.MinAmounts[i]) {
				break
			}
		}

		if !scanned {
			return nil, nil, errors.Wrapf(apperrors.ErrInsufficientLiquidity, "hop %d: every venue is disabled", i-1)
		}

		aggregationVenueCounter.WithLabelValues(directionIn, used[i-1].Hex()).Inc()
	}

	return amounts, used, nil
}
