package uniswapv2_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
	"github.com/fleshka4/v2-aggregator/internal/uniswapv2/mock"
)

func TestGetReserves_Direction(t *testing.T) {
	t.Parallel()

	state := newFakeState()
	state.addPool(factory1, tokenB, tokenA, 200, 100)
	lib := uniswapv2.NewLibrary(state, nil)

	reserveIn, reserveOut, err := lib.GetReserves(context.Background(), factory1, tokenA, tokenB)
	require.NoError(t, err)
	require.Equal(t, "100", reserveIn.Dec())
	require.Equal(t, "200", reserveOut.Dec())

	reserveIn, reserveOut, err = lib.GetReserves(context.Background(), factory1, tokenB, tokenA)
	require.NoError(t, err)
	require.Equal(t, "200", reserveIn.Dec())
	require.Equal(t, "100", reserveOut.Dec())
}

func TestGetReserves_CanonicalPairLookup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	state := mock.NewMockStateReader(ctrl)
	lib := uniswapv2.NewLibrary(state, nil)

	pair := common.HexToAddress("0x0000000000000000000000000000000000001234")
	state.EXPECT().GetPair(gomock.Any(), factory1, tokenA, tokenB).Return(pair, nil)
	state.EXPECT().GetReserves(gomock.Any(), pair).Return(uniswapv2.Reserves{Reserve0: n(7), Reserve1: n(9)}, nil)

	reserveIn, reserveOut, err := lib.GetReserves(context.Background(), factory1, tokenB, tokenA)
	require.NoError(t, err)
	require.Equal(t, "9", reserveIn.Dec())
	require.Equal(t, "7", reserveOut.Dec())
}

func TestGetReserves_MissingPairIsEmpty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	state := mock.NewMockStateReader(ctrl)
	lib := uniswapv2.NewLibrary(state, nil)

	state.EXPECT().GetPair(gomock.Any(), factory1, tokenA, tokenB).Return(common.Address{}, nil)

	reserveIn, reserveOut, err := lib.GetReserves(context.Background(), factory1, tokenA, tokenB)
	require.NoError(t, err)
	require.True(t, reserveIn.IsZero())
	require.True(t, reserveOut.IsZero())
}

func TestGetReserves_Errors(t *testing.T) {
	t.Parallel()

	t.Run("identical tokens", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		lib := uniswapv2.NewLibrary(mock.NewMockStateReader(ctrl), nil)

		_, _, err := lib.GetReserves(context.Background(), factory1, tokenA, tokenA)
		require.ErrorIs(t, err, apperrors.ErrIdenticalAddresses)
	})

	t.Run("get pair fails", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		state := mock.NewMockStateReader(ctrl)
		lib := uniswapv2.NewLibrary(state, nil)

		state.EXPECT().GetPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(common.Address{}, errors.New("RPC error"))

		_, _, err := lib.GetReserves(context.Background(), factory1, tokenA, tokenB)
		require.ErrorIs(t, err, apperrors.ErrStateRead)

		var readErr *apperrors.StateReadError
		require.ErrorAs(t, err, &readErr)
		require.Contains(t, readErr.Op, "getPair")
	})

	t.Run("get reserves fails", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		state := mock.NewMockStateReader(ctrl)
		lib := uniswapv2.NewLibrary(state, nil)

		pair := common.HexToAddress("0x0000000000000000000000000000000000001234")
		state.EXPECT().GetPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(pair, nil)
		state.EXPECT().GetReserves(gomock.Any(), pair).Return(uniswapv2.Reserves{}, errors.New("RPC error"))

		_, _, err := lib.GetReserves(context.Background(), factory1, tokenA, tokenB)
		require.ErrorIs(t, err, apperrors.ErrStateRead)
		require.False(t, apperrors.IsLibraryError(err))
	})
}
