package uniswapv2

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
)

// SortTokens returns tokenA and tokenB in canonical order, smaller address first.
// Pools key their reserves by this order.
func SortTokens(tokenA, tokenB common.Address) (token0, token1 common.Address, err error) {
	if tokenA == tokenB {
		return common.Address{}, common.Address{}, errors.Wrapf(apperrors.ErrIdenticalAddresses, "sort tokens %s", tokenA.Hex())
	}

	token0, token1 = tokenA, tokenB
	if tokenB.Cmp(tokenA) < 0 {
		token0, token1 = tokenB, tokenA
	}
	if token0 == (common.Address{}) {
		return common.Address{}, common.Address{}, errors.Wrap(apperrors.ErrZeroAddress, "sort tokens")
	}

	return token0, token1, nil
}
