package uniswapv2_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

func TestGetAmountsOut(t *testing.T) {
	t.Parallel()

	state := newFakeState()
	state.addPool(factory1, tokenA, tokenB, 1000, 1000)
	state.addPool(factory1, tokenB, tokenC, 5000, 2000)
	lib := uniswapv2.NewLibrary(state, nil)

	amounts, err := lib.GetAmountsOut(context.Background(), factory1, n(100), []common.Address{tokenA, tokenB, tokenC})
	require.NoError(t, err)
	require.Len(t, amounts, 3)

	hop1, err := uniswapv2.GetAmountOut(n(100), n(1000), n(1000))
	require.NoError(t, err)
	hop2, err := uniswapv2.GetAmountOut(hop1, n(5000), n(2000))
	require.NoError(t, err)

	require.Equal(t, []string{"100", hop1.Dec(), hop2.Dec()}, decs(amounts))
	require.Equal(t, "90", amounts[1].Dec())
}

func TestGetAmountsOut_ReverseDirection(t *testing.T) {
	t.Parallel()

	state := newFakeState()
	state.addPool(factory1, tokenA, tokenB, 1000, 4000)
	lib := uniswapv2.NewLibrary(state, nil)

	amounts, err := lib.GetAmountsOut(context.Background(), factory1, n(100), []common.Address{tokenB, tokenA})
	require.NoError(t, err)

	want, err := uniswapv2.GetAmountOut(n(100), n(4000), n(1000))
	require.NoError(t, err)
	require.Equal(t, want.Dec(), amounts[1].Dec())
}

func TestGetAmountsIn(t *testing.T) {
	t.Parallel()

	state := newFakeState()
	state.addPool(factory1, tokenA, tokenB, 1000, 1000)
	state.addPool(factory1, tokenB, tokenC, 5000, 2000)
	lib := uniswapv2.NewLibrary(state, nil)
	path := []common.Address{tokenA, tokenB, tokenC}

	amounts, err := lib.GetAmountsIn(context.Background(), factory1, n(50), path)
	require.NoError(t, err)
	require.Len(t, amounts, 3)

	hop2, err := uniswapv2.GetAmountIn(n(50), n(5000), n(2000))
	require.NoError(t, err)
	hop1, err := uniswapv2.GetAmountIn(hop2, n(1000), n(1000))
	require.NoError(t, err)
	require.Equal(t, []string{hop1.Dec(), hop2.Dec(), "50"}, decs(amounts))

	// Feeding the computed input forward yields at least the requested output.
	out, err := lib.GetAmountsOut(context.Background(), factory1, amounts[0], path)
	require.NoError(t, err)
	require.True(t, out[2].Cmp(n(50)) >= 0)
}

func TestGetAmounts_Errors(t *testing.T) {
	t.Parallel()

	state := newFakeState()
	state.addPool(factory1, tokenA, tokenB, 1000, 1000)
	lib := uniswapv2.NewLibrary(state, nil)
	ctx := context.Background()

	_, err := lib.GetAmountsOut(ctx, factory1, n(1), []common.Address{tokenA})
	require.ErrorIs(t, err, apperrors.ErrInvalidPath)

	_, err = lib.GetAmountsIn(ctx, factory1, n(1), nil)
	require.ErrorIs(t, err, apperrors.ErrInvalidPath)

	_, err = lib.GetAmountsOut(ctx, factory1, n(0), []common.Address{tokenA, tokenB})
	require.ErrorIs(t, err, apperrors.ErrInsufficientInputAmount)

	_, err = lib.GetAmountsOut(ctx, factory1, n(10), []common.Address{tokenA, tokenC})
	require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)

	_, err = lib.GetAmountsIn(ctx, factory1, n(1000), []common.Address{tokenA, tokenB})
	require.ErrorIs(t, err, apperrors.ErrArithmeticRange)

	_, err = lib.GetAmountsIn(ctx, factory1, n(0), []common.Address{tokenA, tokenB})
	require.ErrorIs(t, err, apperrors.ErrInsufficientOutputAmount)

	_, err = lib.GetAmountsOut(ctx, factory1, n(10), []common.Address{tokenA, tokenA})
	require.ErrorIs(t, err, apperrors.ErrIdenticalAddresses)
}

func TestGetAmountsOut_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	state := newFakeState()
	state.addPool(factory1, tokenA, tokenB, 1000, 1000)
	lib := uniswapv2.NewLibrary(state, nil)

	amountIn := n(100)
	amounts, err := lib.GetAmountsOut(context.Background(), factory1, amountIn, []common.Address{tokenA, tokenB})
	require.NoError(t, err)

	amounts[0].SetUint64(1)
	require.Equal(t, "100", amountIn.Dec())
}
