package cmd

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/viper"

	"gamechain/x/dex/types"
)

const envPrefix = "DEXSIM"

// Config is the simulator input. Amounts are decimal strings so values above
// 64 bits survive TOML, YAML and environment variables.
type Config struct {
	FeeNumerator   uint64        `mapstructure:"fee-numerator"`
	FeeDenominator uint64        `mapstructure:"fee-denominator"`
	Pool           PoolConfig    `mapstructure:"pool"`
	Trades         []TradeConfig `mapstructure:"trades"`
}

type PoolConfig struct {
	BaseDenom    string `mapstructure:"base-denom"`
	QuoteDenom   string `mapstructure:"quote-denom"`
	BaseReserve  string `mapstructure:"base-reserve"`
	QuoteReserve string `mapstructure:"quote-reserve"`
}

type TradeConfig struct {
	DenomIn string `mapstructure:"denom-in"`
	Amount  string `mapstructure:"amount"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.SetDefault("fee-numerator", types.DefaultFeeNumerator)
	v.SetDefault("fee-denominator", types.DefaultFeeDenominator)
	return v
}

// loadConfig reads the optional config file and decodes the merged settings.
func loadConfig(v *viper.Viper) (Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (c Config) Params() (types.Params, error) {
	p := types.Params{FeeNumerator: c.FeeNumerator, FeeDenominator: c.FeeDenominator}
	if err := p.Validate(); err != nil {
		return types.Params{}, err
	}
	return p, nil
}

// BuildPool returns a funded pool carrying the configured reserves. Shares
// are irrelevant to pricing and mirror the base reserve.
func (pc PoolConfig) BuildPool() (types.Pool, error) {
	base, err := parseAmount("base-reserve", pc.BaseReserve)
	if err != nil {
		return types.Pool{}, err
	}
	quote, err := parseAmount("quote-reserve", pc.QuoteReserve)
	if err != nil {
		return types.Pool{}, err
	}
	pool := types.NewPool(0, pc.BaseDenom, pc.QuoteDenom, "simulated", "dexsim", 0)
	pool.BaseReserve, pool.QuoteReserve, pool.TotalShares = base, quote, base
	if err := pool.Validate(); err != nil {
		return types.Pool{}, err
	}
	return pool, nil
}

func parseAmount(field, s string) (math.Int, error) {
	amt, ok := math.NewIntFromString(strings.TrimSpace(s))
	if !ok {
		return math.Int{}, fmt.Errorf("%s: invalid amount %q", field, s)
	}
	if err := types.CheckPositiveAmount(amt); err != nil {
		return math.Int{}, fmt.Errorf("%s: %w", field, err)
	}
	return amt, nil
}
