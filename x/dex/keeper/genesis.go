package keeper

import (
	"context"

	"cosmossdk.io/collections"

	"gamechain/x/dex/types"
)

// InitGenesis loads params, pools, the pair index and the id sequence.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}

	for _, p := range gs.Pools {
		if err := k.Pools.Set(ctx, p.ID, p); err != nil {
			return err
		}
		if err := k.PairIndex.Set(ctx, collections.Join(p.BaseDenom, p.QuoteDenom), p.ID); err != nil {
			return err
		}
	}

	return k.PoolSeq.Set(ctx, gs.NextPoolID)
}

// ExportGenesis dumps module state. The pair index is rebuilt from pools on
// import.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	pools, err := k.ListPools(ctx)
	if err != nil {
		return nil, err
	}
	next, err := k.PoolSeq.Peek(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Params:     params,
		Pools:      pools,
		NextPoolID: next,
	}, nil
}
