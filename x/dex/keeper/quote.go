package keeper

import (
	"context"

	"cosmossdk.io/math"

	"gamechain/x/dex/types"
)

// GetAmountOut quotes an exact-input swap at the current reserves and fee.
// It reads state only.
func (k Keeper) GetAmountOut(ctx context.Context, poolID uint64, denomIn string, amountIn math.Int) (math.Int, string, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, "", err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, "", err
	}
	reserveIn, reserveOut, denomOut, err := pool.SwapReserves(denomIn)
	if err != nil {
		return math.Int{}, "", err
	}
	out, err := types.GetAmountOut(amountIn, reserveIn, reserveOut, params.Fee())
	if err != nil {
		return math.Int{}, "", err
	}
	return out, denomOut, nil
}

// GetAmountIn returns the smallest input that buys at least amountOut of
// denomOut, along with the input denom.
func (k Keeper) GetAmountIn(ctx context.Context, poolID uint64, denomOut string, amountOut math.Int) (math.Int, string, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, "", err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, "", err
	}
	// Reserves seen from the output side, so reserveOut belongs to denomOut.
	reserveOut, reserveIn, denomIn, err := pool.SwapReserves(denomOut)
	if err != nil {
		return math.Int{}, "", err
	}
	in, err := types.GetAmountIn(amountOut, reserveIn, reserveOut, params.Fee())
	if err != nil {
		return math.Int{}, "", err
	}
	return in, denomIn, nil
}

// SimulateSwap returns the output of a swap and the pool as it would look
// afterwards, without writing anything.
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, denomIn string, amountIn math.Int) (math.Int, types.Pool, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, types.Pool{}, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, types.Pool{}, err
	}
	out, _, updated, err := simulateSwap(pool, params.Fee(), denomIn, amountIn)
	if err != nil {
		return math.Int{}, types.Pool{}, err
	}
	return out, updated, nil
}
