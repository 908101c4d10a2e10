package uniswap

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

const factoryABIJSON = `[
	{"inputs":[{"internalType":"address","name":"","type":"address"},{"internalType":"address","name":"","type":"address"}],"name":"getPair","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const pairABIJSON = `[
	{"inputs":[],"name":"token0","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"token1","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getReserves","outputs":[{"internalType":"uint112","name":"_reserve0","type":"uint112"},{"internalType":"uint112","name":"_reserve1","type":"uint112"},{"internalType":"uint32","name":"_blockTimestampLast","type":"uint32"}],"stateMutability":"view","type":"function"}
]`

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client reads Uniswap V2 factory and pair state over eth_call.
// It implements uniswapv2.StateReader.
type Client struct {
	caller     EthCaller
	factoryABI abi.ABI
	pairABI    abi.ABI

	callTimeout time.Duration
}

var _ uniswapv2.StateReader = (*Client)(nil)

// NewClient creates a Client backed by an Ethereum RPC connection.
func NewClient(rpcURL string, callTimeout time.Duration) (*Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}

	return newClientWithCaller(caller, callTimeout)
}

func newClientWithCaller(caller EthCaller, callTimeout time.Duration) (*Client, error) {
	factoryABI, err := abi.JSON(strings.NewReader(factoryABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON factory")
	}
	pairABI, err := abi.JSON(strings.NewReader(pairABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON pair")
	}

	return &Client{
		caller:     caller,
		factoryABI: factoryABI,
		pairABI:    pairABI,

		callTimeout: callTimeout,
	}, nil
}

func (c *Client) call(ctx context.Context, contract abi.ABI, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrap(err, "contract.Pack")
	}

	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	res, err := c.caller.CallContract(
		ctx,
		ethereum.CallMsg{
			To:   &to,
			Data: data,
		},
		nil,
	)
	if err != nil {
		return nil, errors.Wrap(err, "c.caller.CallContract")
	}

	out, err := contract.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(err, "contract.Unpack")
	}

	return out, nil
}

// GetPair returns the pair the factory registered for tokenA and tokenB,
// or the zero address when there is none.
func (c *Client) GetPair(ctx context.Context, factory, tokenA, tokenB common.Address) (common.Address, error) {
	out, err := c.call(ctx, c.factoryABI, factory, "getPair", tokenA, tokenB)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "c.call getPair")
	}
	if len(out) == 0 {
		return common.Address{}, errors.New("empty output from getPair call")
	}

	pair, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, errors.New("failed to cast getPair result to address")
	}

	return pair, nil
}

// GetPairTokens returns the addresses of token0 and token1 for a given pair contract.
func (c *Client) GetPairTokens(ctx context.Context, pair common.Address) (common.Address, common.Address, error) {
	const (
		numTokens    = 2
		token0Method = "token0"
		token1Method = "token1"
	)

	type tokenResult struct {
		token common.Address
		err   error
		name  string
	}

	var wg sync.WaitGroup
	ch := make(chan tokenResult, numTokens)

	getToken := func(method string) {
		defer wg.Done()

		out, err := c.call(ctx, c.pairABI, pair, method)
		if err != nil {
			ch <- tokenResult{err: errors.Wrapf(err, "failed to call %s", method)}
			return
		}

		addr, ok := out[0].(common.Address)
		if !ok {
			ch <- tokenResult{err: errors.Errorf("failed to cast %s result to address", method)}
			return
		}

		ch <- tokenResult{token: addr, name: method}
	}

	wg.Add(numTokens)
	go getToken(token0Method)
	go getToken(token1Method)

	go func() {
		wg.Wait()
		close(ch)
	}()

	var (
		token0, token1 common.Address
		combinedErr    error
	)

	for result := range ch {
		if result.err != nil {
			combinedErr = multierr.Append(combinedErr, result.err)
			continue
		}

		switch result.name {
		case token0Method:
			token0 = result.token
		case token1Method:
			token1 = result.token
		}
	}

	if combinedErr != nil {
		return common.Address{}, common.Address{}, errors.Wrap(combinedErr, "failed to get pair tokens")
	}

	return token0, token1, nil
}

// GetReserves returns the pair's reserves in canonical token order.
func (c *Client) GetReserves(ctx context.Context, pair common.Address) (uniswapv2.Reserves, error) {
	out, err := c.call(ctx, c.pairABI, pair, "getReserves")
	if err != nil {
		return uniswapv2.Reserves{}, errors.Wrap(err, "c.call getReserves")
	}

	const requiredSize = 3
	if len(out) < requiredSize {
		return uniswapv2.Reserves{}, errors.Errorf("insufficient outputs from getReserves call: expected %d, got %d", requiredSize, len(out))
	}

	reserves := make([]*uint256.Int, 2)
	reserveNames := []string{"reserve0", "reserve1"}

	for i := range reserves {
		reserve, ok := out[i].(*big.Int)
		if !ok {
			return uniswapv2.Reserves{}, errors.Errorf("failed to cast %s to *big.Int", reserveNames[i])
		}
		v, overflow := uint256.FromBig(reserve)
		if overflow {
			return uniswapv2.Reserves{}, errors.Errorf("%s does not fit 256 bits", reserveNames[i])
		}
		reserves[i] = v
	}

	ts, ok := out[2].(uint32)
	if !ok {
		return uniswapv2.Reserves{}, errors.New("failed to cast blockTimestampLast to uint32")
	}

	return uniswapv2.Reserves{
		Reserve0:           reserves[0],
		Reserve1:           reserves[1],
		BlockTimestampLast: ts,
	}, nil
}
