package uniswapv2

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
)

// GetAmountsOut chains GetAmountOut over path through pairs of a single factory.
// amounts[0] is amountIn and amounts[i+1] is the output of hop i.
func (l *Library) GetAmountsOut(ctx context.Context, factory common.Address, amountIn *uint256.Int, path []common.Address) ([]*uint256.Int, error) {
	if len(path) < 2 {
		return nil, errors.Wrapf(apperrors.ErrInvalidPath, "path length %d", len(path))
	}

	amounts := make([]*uint256.Int, len(path))
	amounts[0] = orZero(amountIn).Clone()
	for i := 0; i < len(path)-1; i++ {
		reserveIn, reserveOut, err := l.GetReserves(ctx, factory, path[i], path[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "hop %d", i)
		}
		amounts[i+1], err = GetAmountOut(amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, errors.Wrapf(err, "hop %d", i)
		}
	}

	return amounts, nil
}

// GetAmountsIn chains GetAmountIn backwards over path through pairs of a single
// factory. The last element is amountOut and amounts[i-1] is the input of hop i-1.
func (l *Library) GetAmountsIn(ctx context.Context, factory common.Address, amountOut *uint256.Int, path []common.Address) ([]*uint256.Int, error) {
	if len(path) < 2 {
		return nil, errors.Wrapf(apperrors.ErrInvalidPath, "path length %d", len(path))
	}

	amounts := make([]*uint256.Int, len(path))
	amounts[len(amounts)-1] = orZero(amountOut).Clone()
	for i := len(path) - 1; i > 0; i-- {
		reserveIn, reserveOut, err := l.GetReserves(ctx, factory, path[i-1], path[i])
		if err != nil {
			return nil, errors.Wrapf(err, "hop %d", i-1)
		}
		amounts[i-1], err = GetAmountIn(amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, errors.Wrapf(err, "hop %d", i-1)
		}
	}

	return amounts, nil
}
