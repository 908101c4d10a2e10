package uniswapv2

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
)

// StateReader defines the factory and pair reads the library depends on.
// Implementations must be safe for concurrent use.
type StateReader interface {
	// GetPair returns the pair registered by factory for the two tokens,
	// or the zero address if no pair exists.
	GetPair(ctx context.Context, factory, tokenA, tokenB common.Address) (common.Address, error)

	// GetReserves returns the reserves of pair keyed by its canonical token order.
	GetReserves(ctx context.Context, pair common.Address) (Reserves, error)
}

// Reserves is a snapshot of a pair's balances as reported by the pool.
type Reserves struct {
	Reserve0           *uint256.Int
	Reserve1           *uint256.Int
	BlockTimestampLast uint32
}

// Library computes swap amounts and routes over pool state read through a StateReader.
// It holds no mutable state and is safe for concurrent use.
type Library struct {
	state  StateReader
	logger *zap.Logger
}

// NewLibrary creates a Library. A nil logger disables logging.
func NewLibrary(state StateReader, logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{state: state, logger: logger}
}

// PairFor resolves the pair for tokenA and tokenB through the factory.
// No address derivation is done locally.
func (l *Library) PairFor(ctx context.Context, factory, tokenA, tokenB common.Address) (common.Address, error) {
	pair, err := l.state.GetPair(ctx, factory, tokenA, tokenB)
	if err != nil {
		return common.Address{}, &apperrors.StateReadError{Op: "getPair " + factory.Hex(), Err: err}
	}
	return pair, nil
}

// GetReserves returns the reserves of the tokenA/tokenB pair ordered as
// (reserveIn, reserveOut) relative to tokenA. A missing pair reads as zero reserves.
func (l *Library) GetReserves(ctx context.Context, factory, tokenA, tokenB common.Address) (reserveIn, reserveOut *uint256.Int, err error) {
	token0, token1, err := SortTokens(tokenA, tokenB)
	if err != nil {
		return nil, nil, err
	}

	pair, err := l.PairFor(ctx, factory, token0, token1)
	if err != nil {
		return nil, nil, err
	}
	if pair == (common.Address{}) {
		return new(uint256.Int), new(uint256.Int), nil
	}

	reserveReadsCounter.Inc()
	res, err := l.state.GetReserves(ctx, pair)
	if err != nil {
		return nil, nil, &apperrors.StateReadError{Op: "getReserves " + pair.Hex(), Err: err}
	}

	reserve0, reserve1 := orZero(res.Reserve0), orZero(res.Reserve1)
	if tokenA == token0 {
		return reserve0, reserve1, nil
	}
	return reserve1, reserve0, nil
}

func orZero(x *uint256.Int) *uint256.Int {
	if x == nil {
		return new(uint256.Int)
	}
	return x
}

func isZero(x *uint256.Int) bool {
	return x == nil || x.IsZero()
}
