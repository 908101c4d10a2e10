package config

import (
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

// State sources.
const (
	StateSourceRPC      = "rpc"
	StateSourceSnapshot = "snapshot"
)

const maxFee = 10000

// Venue is a default aggregation candidate.
type Venue struct {
	Name    string `yaml:"name"`
	Factory string `yaml:"factory"`
	// Fee is the retained numerator out of 10000, e.g. 9970 for 0.3%.
	Fee uint64 `yaml:"fee"`
}

// Config holds application configuration loaded from file.
type Config struct {
	RPCURL            string        `yaml:"rpc_url"`
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	CallTimeout       time.Duration `yaml:"call_timeout"`
	LogLevel          string        `yaml:"log_level"`

	StateSource   string `yaml:"state_source"`
	SnapshotPath  string `yaml:"snapshot_path"`
	PairCacheSize *int   `yaml:"pair_cache_size"`

	Venues []Venue `yaml:"venues"`
}

// Load reads the config from a YAML file path, applies fallbacks and validates it.
func Load(path string) (cfg Config, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "os.Open")
	}
	defer func() {
		err = multierr.Append(err, errors.Wrap(f.Close(), "f.Close"))
	}()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoder.Decode")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	const (
		defaultTimeout   = 5 * time.Second
		defaultCacheSize = 1024
	)

	if c.ListenAddr == "" {
		c.ListenAddr = ":1337"
	}
	if c.GraceTimeout == 0 {
		c.GraceTimeout = defaultTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultTimeout
	}
	if c.CallTimeout == 0 {
		c.CallTimeout = defaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.StateSource == "" {
		c.StateSource = StateSourceRPC
	}
	if c.PairCacheSize == nil {
		size := defaultCacheSize
		c.PairCacheSize = &size
	}
}

// Validate reports every problem in the config at once.
func (c Config) Validate() error {
	var err error

	switch c.StateSource {
	case StateSourceRPC:
		if c.RPCURL == "" {
			err = multierr.Append(err, errors.New("rpc_url is required for state_source rpc"))
		}
	case StateSourceSnapshot:
		if c.SnapshotPath == "" {
			err = multierr.Append(err, errors.New("snapshot_path is required for state_source snapshot"))
		}
	default:
		err = multierr.Append(err, errors.Errorf("unknown state_source %q", c.StateSource))
	}

	if c.PairCacheSize != nil && *c.PairCacheSize < 0 {
		err = multierr.Append(err, errors.New("pair_cache_size must not be negative"))
	}

	for i, v := range c.Venues {
		if !common.IsHexAddress(v.Factory) {
			err = multierr.Append(err, errors.Errorf("venues[%d] %q: factory %q is not an address", i, v.Name, v.Factory))
		}
		if v.Fee == 0 || v.Fee > maxFee {
			err = multierr.Append(err, errors.Errorf("venues[%d] %q: fee %d out of range 1..%d", i, v.Name, v.Fee, maxFee))
		}
	}

	return err
}

// CacheSize returns the configured pair cache size; 0 disables the cache.
func (c Config) CacheSize() int {
	if c.PairCacheSize == nil {
		return 0
	}
	return *c.PairCacheSize
}

// CandidateSet returns the configured venues as factory slots and fees.
// A zero factory address yields a disabled slot.
func (c Config) CandidateSet() ([]uniswapv2.FactorySlot, []uint64) {
	factories := make([]uniswapv2.FactorySlot, len(c.Venues))
	fees := make([]uint64, len(c.Venues))
	for i, v := range c.Venues {
		factories[i] = uniswapv2.SlotFromAddress(common.HexToAddress(v.Factory))
		fees[i] = v.Fee
	}
	return factories, fees
}
