// Package pairs caches factory pair lookups in front of a state reader.
package pairs

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

var (
	// v2aggregator_pair_cache_hits_total
	//
	// counter of GetPair lookups answered from the cache
	cacheHitsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "v2aggregator_pair_cache_hits_total",
			Help: "Pair lookups served from the cache",
		},
	)

	// v2aggregator_pair_cache_misses_total
	//
	// counter of GetPair lookups forwarded to the underlying reader
	cacheMissesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "v2aggregator_pair_cache_misses_total",
			Help: "Pair lookups forwarded to the underlying reader",
		},
	)
)

func init() {
	prometheus.MustRegister(cacheHitsCounter)
	prometheus.MustRegister(cacheMissesCounter)
}

type pairKey struct {
	factory, token0, token1 common.Address
}

// CachedReader remembers the pair address a factory reports for a token pair.
// A pool address never changes once created, so only non-zero answers are
// cached: a missing pair may be created later. Reserves are never cached.
type CachedReader struct {
	next  uniswapv2.StateReader
	cache *lru.Cache[pairKey, common.Address]
}

var _ uniswapv2.StateReader = (*CachedReader)(nil)

// NewCachedReader wraps next with an LRU of the given size.
func NewCachedReader(next uniswapv2.StateReader, size int) (*CachedReader, error) {
	cache, err := lru.New[pairKey, common.Address](size)
	if err != nil {
		return nil, errors.Wrap(err, "lru.New")
	}
	return &CachedReader{next: next, cache: cache}, nil
}

// GetPair implements uniswapv2.StateReader.
func (r *CachedReader) GetPair(ctx context.Context, factory, tokenA, tokenB common.Address) (common.Address, error) {
	k := pairKey{factory: factory, token0: tokenA, token1: tokenB}
	if tokenB.Cmp(tokenA) < 0 {
		k.token0, k.token1 = tokenB, tokenA
	}

	if pair, ok := r.cache.Get(k); ok {
		cacheHitsCounter.Inc()
		return pair, nil
	}
	cacheMissesCounter.Inc()

	pair, err := r.next.GetPair(ctx, factory, tokenA, tokenB)
	if err != nil {
		return common.Address{}, err
	}
	if pair != (common.Address{}) {
		r.cache.Add(k, pair)
	}
	return pair, nil
}

// GetReserves implements uniswapv2.StateReader.
func (r *CachedReader) GetReserves(ctx context.Context, pair common.Address) (uniswapv2.Reserves, error) {
	return r.next.GetReserves(ctx, pair)
}

// Len returns the number of cached pairs.
func (r *CachedReader) Len() int {
	return r.cache.Len()
}
