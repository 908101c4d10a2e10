// Package snapshot serves pool state from a SQLite file so amounts can be
// computed offline against a captured block.
package snapshot

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

const schema = `
CREATE TABLE IF NOT EXISTS pairs (
	factory TEXT NOT NULL,
	token0  TEXT NOT NULL,
	token1  TEXT NOT NULL,
	pair    TEXT NOT NULL,
	PRIMARY KEY (factory, token0, token1)
);
CREATE TABLE IF NOT EXISTS reserves (
	pair         TEXT PRIMARY KEY,
	reserve0     TEXT NOT NULL,
	reserve1     TEXT NOT NULL,
	last_updated INTEGER NOT NULL
);`

// ErrUnknownPair is returned by GetReserves for a pair without stored reserves.
var ErrUnknownPair = errors.New("pair not in snapshot")

// Store is a SQLite-backed uniswapv2.StateReader.
type Store struct {
	db *sql.DB
}

var _ uniswapv2.StateReader = (*Store)(nil)

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "db.Exec schema")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutPair records pair as the factory's pool for the two tokens.
// Tokens are stored in canonical order.
func (s *Store) PutPair(ctx context.Context, factory, tokenA, tokenB, pair common.Address) error {
	token0, token1, err := uniswapv2.SortTokens(tokenA, tokenB)
	if err != nil {
		return errors.Wrap(err, "uniswapv2.SortTokens")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO pairs (factory, token0, token1, pair) VALUES (?, ?, ?, ?)
		 ON CONFLICT (factory, token0, token1) DO UPDATE SET pair = excluded.pair`,
		key(factory), key(token0), key(token1), key(pair),
	)
	return errors.Wrap(err, "s.db.ExecContext pairs")
}

// PutReserves stores the pair's reserves, replacing any previous snapshot.
func (s *Store) PutReserves(ctx context.Context, pair common.Address, res uniswapv2.Reserves) error {
	if res.Reserve0 == nil || res.Reserve1 == nil {
		return errors.New("reserves must be set")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reserves (pair, reserve0, reserve1, last_updated) VALUES (?, ?, ?, ?)
		 ON CONFLICT (pair) DO UPDATE SET
			reserve0 = excluded.reserve0,
			reserve1 = excluded.reserve1,
			last_updated = excluded.last_updated`,
		key(pair), res.Reserve0.Dec(), res.Reserve1.Dec(), res.BlockTimestampLast,
	)
	return errors.Wrap(err, "s.db.ExecContext reserves")
}

// GetPair returns the stored pair for the two tokens in either order,
// or the zero address when the snapshot has none.
func (s *Store) GetPair(ctx context.Context, factory, tokenA, tokenB common.Address) (common.Address, error) {
	if tokenB.Cmp(tokenA) < 0 {
		tokenA, tokenB = tokenB, tokenA
	}

	var pair string
	err := s.db.QueryRowContext(ctx,
		`SELECT pair FROM pairs WHERE factory = ? AND token0 = ? AND token1 = ?`,
		key(factory), key(tokenA), key(tokenB),
	).Scan(&pair)
	if errors.Is(err, sql.ErrNoRows) {
		return common.Address{}, nil
	}
	if err != nil {
		return common.Address{}, errors.Wrap(err, "s.db.QueryRowContext pairs")
	}

	return common.HexToAddress(pair), nil
}

// GetReserves returns the stored reserves of pair.
func (s *Store) GetReserves(ctx context.Context, pair common.Address) (uniswapv2.Reserves, error) {
	var (
		raw0, raw1 string
		updated    uint32
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT reserve0, reserve1, last_updated FROM reserves WHERE pair = ?`,
		key(pair),
	).Scan(&raw0, &raw1, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return uniswapv2.Reserves{}, errors.Wrap(ErrUnknownPair, pair.Hex())
	}
	if err != nil {
		return uniswapv2.Reserves{}, errors.Wrap(err, "s.db.QueryRowContext reserves")
	}

	reserve0, err := uint256.FromDecimal(raw0)
	if err != nil {
		return uniswapv2.Reserves{}, errors.Wrapf(err, "reserve0 %q", raw0)
	}
	reserve1, err := uint256.FromDecimal(raw1)
	if err != nil {
		return uniswapv2.Reserves{}, errors.Wrapf(err, "reserve1 %q", raw1)
	}

	return uniswapv2.Reserves{
		Reserve0:           reserve0,
		Reserve1:           reserve1,
		BlockTimestampLast: updated,
	}, nil
}

func key(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}
