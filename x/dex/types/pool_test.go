package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"gamechain/x/dex/types"
)

func fundedPool() types.Pool {
	p := types.NewPool(0, "gold", "silver", "factory/dex/pool0", "creator", 1)
	p.BaseReserve, p.QuoteReserve, p.TotalShares = math.NewInt(1000), math.NewInt(2000), math.NewInt(1000)
	return p
}

func TestPoolSwapReserves(t *testing.T) {
	p := fundedPool()

	in, out, denomOut, err := p.SwapReserves("gold")
	require.NoError(t, err)
	require.Equal(t, "silver", denomOut)
	require.Equal(t, math.NewInt(1000), in)
	require.Equal(t, math.NewInt(2000), out)

	in, out, denomOut, err = p.SwapReserves("silver")
	require.NoError(t, err)
	require.Equal(t, "gold", denomOut)
	require.Equal(t, math.NewInt(2000), in)
	require.Equal(t, math.NewInt(1000), out)

	_, _, _, err = p.SwapReserves("copper")
	require.ErrorIs(t, err, types.ErrInvalidDenom)
}

func TestPoolApplySwap(t *testing.T) {
	p := fundedPool()

	next, err := p.ApplySwap("gold", math.NewInt(100), math.NewInt(180))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1100), next.BaseReserve)
	require.Equal(t, math.NewInt(1820), next.QuoteReserve)
	require.Equal(t, math.NewInt(1000), p.BaseReserve, "receiver must not be mutated")

	next, err = p.ApplySwap("silver", math.NewInt(200), math.NewInt(90))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(910), next.BaseReserve)
	require.Equal(t, math.NewInt(2200), next.QuoteReserve)

	_, err = p.ApplySwap("gold", math.NewInt(1), math.NewInt(2001))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	p.BaseReserve = types.MaxAmount
	_, err = p.ApplySwap("gold", math.NewInt(1), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestPoolDepositWithdraw(t *testing.T) {
	p := types.NewPool(3, "gold", "silver", "lp", "creator", 1)
	require.True(t, p.IsEmpty())
	require.NoError(t, p.Validate())

	p, err := p.Deposit(math.NewInt(10), math.NewInt(20), math.NewInt(10))
	require.NoError(t, err)
	require.False(t, p.IsEmpty())
	require.NoError(t, p.Validate())

	p, err = p.Withdraw(math.NewInt(10), math.NewInt(20), math.NewInt(10))
	require.NoError(t, err)
	require.True(t, p.IsEmpty())
	require.NoError(t, p.Validate())

	_, err = p.Withdraw(math.NewInt(1), math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestPoolValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Pool)
	}{
		{"same denoms", func(p *types.Pool) { p.QuoteDenom = p.BaseDenom }},
		{"missing lp denom", func(p *types.Pool) { p.LPDenom = "" }},
		{"reserves without shares", func(p *types.Pool) { p.TotalShares = math.ZeroInt() }},
		{"shares without reserves", func(p *types.Pool) { p.BaseReserve, p.QuoteReserve = math.ZeroInt(), math.ZeroInt() }},
		{"one-sided", func(p *types.Pool) { p.QuoteReserve = math.ZeroInt() }},
		{"negative reserve", func(p *types.Pool) { p.BaseReserve = math.NewInt(-1) }},
		{"oversized shares", func(p *types.Pool) { p.TotalShares = types.MaxAmount.AddRaw(1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := fundedPool()
			require.NoError(t, p.Validate())
			tc.mutate(&p)
			require.Error(t, p.Validate())
		})
	}
}

func TestValidatePair(t *testing.T) {
	require.NoError(t, types.ValidatePair("gold", "silver"))
	require.ErrorIs(t, types.ValidatePair("gold", "gold"), types.ErrInvalidPair)
	require.ErrorIs(t, types.ValidatePair("", "gold"), types.ErrInvalidPair)
	require.Equal(t, "pool7", types.LPSubdenom(7))
}
