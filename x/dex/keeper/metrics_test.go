package keeper_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"gamechain/x/dex/keeper"
)

func TestMetricsCountCommittedOperations(t *testing.T) {
	f := initFixture(t)
	reg := prometheus.NewRegistry()
	f.keeper = f.keeper.WithMetrics(keeper.NewMetrics(reg))

	alice := testAddr("alice")
	pool := f.seedPool(t, alice, 1000, 2000)

	f.fund(alice, "gold", 200)
	_, err := f.keeper.Swap(f.ctx, alice, pool.ID, "gold", math.NewInt(100), math.ZeroInt(), 0)
	require.NoError(t, err)

	// Failed and CheckTx swaps are not counted.
	_, err = f.keeper.Swap(f.ctx, alice, pool.ID, "gold", math.NewInt(100), math.NewInt(1_000_000), 0)
	require.Error(t, err)
	_, err = f.keeper.Swap(f.ctx.WithIsCheckTx(true), alice, pool.ID, "gold", math.NewInt(100), math.ZeroInt(), 0)
	require.NoError(t, err)

	_, _, err = f.keeper.RemoveLiquidity(f.ctx, alice, pool.ID, math.NewInt(10), math.ZeroInt(), math.ZeroInt(), 0)
	require.NoError(t, err)

	expected := `
# HELP dex_pools_created_total Number of exchanges created.
# TYPE dex_pools_created_total counter
dex_pools_created_total 1
# HELP dex_swaps_total Number of executed swaps by pool and input denom.
# TYPE dex_swaps_total counter
dex_swaps_total{denom_in="gold",pool_id="0"} 1
# HELP dex_liquidity_changes_total Number of liquidity deposits and withdrawals by pool.
# TYPE dex_liquidity_changes_total counter
dex_liquidity_changes_total{action="add",pool_id="0"} 1
dex_liquidity_changes_total{action="remove",pool_id="0"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"dex_pools_created_total", "dex_swaps_total", "dex_liquidity_changes_total"))
}
