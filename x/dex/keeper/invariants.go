package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"gamechain/x/dex/types"
)

// RegisterInvariants registers the exchange invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserves-backed", ReservesBackedInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-shares", PoolSharesInvariant(k))
}

// AllInvariants runs every exchange invariant.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := ReservesBackedInvariant(k)(ctx); broken {
			return msg, broken
		}
		return PoolSharesInvariant(k)(ctx)
	}
}

// ReservesBackedInvariant checks that the module account holds at least the
// sum of all pool reserves in every denom.
func ReservesBackedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		owed, denoms, err := k.reservesByDenom(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserves-backed", err.Error()), true
		}

		var (
			msg    string
			broken bool
		)
		moduleAddr := k.ModuleAddress()
		for _, denom := range denoms {
			held := k.ledger.BalanceOf(ctx, denom, moduleAddr)
			if held.LT(owed[denom]) {
				broken = true
				msg += fmt.Sprintf("\t%s: reserves %s, module balance %s\n", denom, owed[denom], held)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "reserves-backed",
			fmt.Sprintf("unbacked reserves\n%s", msg)), broken
	}
}

// PoolSharesInvariant checks that every pool is empty exactly when it has
// no shares outstanding and that LP supply matches total_shares.
func PoolSharesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)
		pools, err := k.ListPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-shares", err.Error()), true
		}
		for _, p := range pools {
			if err := p.Validate(); err != nil {
				broken = true
				msg += fmt.Sprintf("\tpool %d: %s\n", p.ID, err)
				continue
			}
			if supply := k.ledger.Supply(ctx, p.LPDenom); !supply.Equal(p.TotalShares) {
				broken = true
				msg += fmt.Sprintf("\tpool %d: total_shares %s, %s supply %s\n", p.ID, p.TotalShares, p.LPDenom, supply)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "pool-shares",
			fmt.Sprintf("inconsistent pools\n%s", msg)), broken
	}
}

func (k Keeper) reservesByDenom(ctx context.Context) (map[string]math.Int, []string, error) {
	owed := make(map[string]math.Int)
	var denoms []string
	add := func(denom string, amt math.Int) {
		cur, ok := owed[denom]
		if !ok {
			denoms = append(denoms, denom)
			cur = math.ZeroInt()
		}
		owed[denom] = cur.Add(amt)
	}

	pools, err := k.ListPools(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range pools {
		add(p.BaseDenom, p.BaseReserve)
		add(p.QuoteDenom, p.QuoteReserve)
	}
	return owed, denoms, nil
}
