package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"gamechain/x/dex/types"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQuoteCmd(t *testing.T) {
	out, err := run(t, "quote", "1000", "2000", "100")
	require.NoError(t, err)
	require.JSONEq(t, `{"amount_in":"100","amount_out":"180"}`, out)

	out, err = run(t, "quote", "1000", "2000", "180", "--exact-out")
	require.NoError(t, err)
	require.JSONEq(t, `{"amount_in":"100","amount_out":"180"}`, out)

	out, err = run(t, "quote", "1000", "2000", "100", "--fee-numerator", "0", "--fee-denominator", "1")
	require.NoError(t, err)
	require.JSONEq(t, `{"amount_in":"100","amount_out":"181"}`, out)

	_, err = run(t, "quote", "1000", "2000", "abc")
	require.Error(t, err)
	_, err = run(t, "quote", "1000", "2000", "2000", "--exact-out")
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestQuoteCmdFeeFromEnv(t *testing.T) {
	t.Setenv("DEXSIM_FEE_NUMERATOR", "0")
	t.Setenv("DEXSIM_FEE_DENOMINATOR", "1")

	out, err := run(t, "quote", "1000", "2000", "100")
	require.NoError(t, err)
	require.JSONEq(t, `{"amount_in":"100","amount_out":"181"}`, out)
}

const simConfig = `
fee-numerator = 3
fee-denominator = 1000

[pool]
base-denom = "gold"
quote-denom = "silver"
base-reserve = "1000"
quote-reserve = "2000"

[[trades]]
denom-in = "gold"
amount = "100"

[[trades]]
denom-in = "silver"
amount = "180"
`

func TestSimulateCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.toml")
	require.NoError(t, os.WriteFile(path, []byte(simConfig), 0o600))

	out, err := run(t, "simulate", "--config", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `"amount_out":"180"`)
	require.Contains(t, lines[0], `"base_reserve":"1100"`)
	require.Contains(t, lines[0], `"quote_reserve":"1820"`)
	require.Contains(t, lines[1], `"denom_out":"gold"`)
}

func TestSimulateStopsAtFailingTrade(t *testing.T) {
	pool := types.NewPool(0, "gold", "silver", "lp", "me", 0)
	pool.BaseReserve, pool.QuoteReserve, pool.TotalShares = math.NewInt(1000), math.NewInt(2000), math.NewInt(1000)

	results, err := simulate(pool, types.DefaultParams(), []TradeConfig{
		{DenomIn: "gold", Amount: "100"},
		{DenomIn: "copper", Amount: "1"},
		{DenomIn: "gold", Amount: "100"},
	})
	require.ErrorIs(t, err, types.ErrInvalidDenom)
	require.Len(t, results, 1)
	require.Equal(t, math.NewInt(180), results[0].AmountOut)

	_, err = simulate(pool, types.DefaultParams(), []TradeConfig{{DenomIn: "gold", Amount: "1"}})
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
}

func TestBuildPoolRejects(t *testing.T) {
	_, err := PoolConfig{BaseDenom: "gold", QuoteDenom: "gold", BaseReserve: "1", QuoteReserve: "1"}.BuildPool()
	require.ErrorIs(t, err, types.ErrInvalidPair)
	_, err = PoolConfig{BaseDenom: "gold", QuoteDenom: "silver", BaseReserve: "0", QuoteReserve: "1"}.BuildPool()
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}
