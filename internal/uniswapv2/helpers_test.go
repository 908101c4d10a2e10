package uniswapv2_test

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

var (
	tokenA = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	tokenB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	tokenC = common.HexToAddress("0x00000000000000000000000000000000000000cc")

	factory1 = common.HexToAddress("0x00000000000000000000000000000000000000f1")
	factory2 = common.HexToAddress("0x00000000000000000000000000000000000000f2")
	factory3 = common.HexToAddress("0x00000000000000000000000000000000000000f3")
)

// fakeState is an in-memory StateReader that records which factories were queried.
type fakeState struct {
	mu       sync.Mutex
	pairs    map[[3]common.Address]common.Address
	reserves map[common.Address]uniswapv2.Reserves
	queried  map[common.Address]int
}

func newFakeState() *fakeState {
	return &fakeState{
		pairs:    make(map[[3]common.Address]common.Address),
		reserves: make(map[common.Address]uniswapv2.Reserves),
		queried:  make(map[common.Address]int),
	}
}

func (f *fakeState) addPool(factory, tokenX, tokenY common.Address, reserveX, reserveY uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if tokenY.Cmp(tokenX) < 0 {
		tokenX, tokenY = tokenY, tokenX
		reserveX, reserveY = reserveY, reserveX
	}
	pair := common.BigToAddress(big.NewInt(int64(0x10000 + len(f.reserves))))
	f.pairs[[3]common.Address{factory, tokenX, tokenY}] = pair
	f.reserves[pair] = uniswapv2.Reserves{
		Reserve0: uint256.NewInt(reserveX),
		Reserve1: uint256.NewInt(reserveY),
	}
}

func (f *fakeState) queries(factory common.Address) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queried[factory]
}

func (f *fakeState) GetPair(_ context.Context, factory, tokenX, tokenY common.Address) (common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queried[factory]++
	if tokenY.Cmp(tokenX) < 0 {
		tokenX, tokenY = tokenY, tokenX
	}
	return f.pairs[[3]common.Address{factory, tokenX, tokenY}], nil
}

func (f *fakeState) GetReserves(_ context.Context, pair common.Address) (uniswapv2.Reserves, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res, ok := f.reserves[pair]
	if !ok {
		return uniswapv2.Reserves{}, errors.New("execution reverted")
	}
	return res, nil
}

func n(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func decs(amounts []*uint256.Int) []string {
	out := make([]string, len(amounts))
	for i, a := range amounts {
		out[i] = a.Dec()
	}
	return out
}
