package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"

	"gamechain/x/tokenfactory/types"
)

// InitGenesis restores denom admins and the creator index. Every index entry
// must name the account embedded in its denom.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	for _, da := range gs.DenomAuthorities {
		if _, err := k.addressCodec.StringToBytes(da.Admin); err != nil {
			return fmt.Errorf("denom %s: invalid admin %q: %w", da.Denom, da.Admin, err)
		}
		if err := k.DenomAdmin.Set(ctx, da.Denom, da.Admin); err != nil {
			return err
		}
	}

	for _, cd := range gs.CreatorDenoms {
		creator, _, err := types.ParseFactoryDenom(cd.Denom)
		if err != nil {
			return err
		}
		if creator != cd.Creator {
			return fmt.Errorf("creator_denoms: %s indexed under %s", cd.Denom, cd.Creator)
		}
		if err := k.CreatorDenoms.Set(ctx, collections.Join(cd.Creator, cd.Denom), true); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("tokenfactory genesis imported", "denoms", len(gs.DenomAuthorities))
	return nil
}

// ExportGenesis dumps both collections in key order.
func (k Keeper) ExportGenesis(ctx context.Context) (types.GenesisState, error) {
	gen := *types.DefaultGenesis()

	if err := k.DenomAdmin.Walk(ctx, nil, func(denom, admin string) (bool, error) {
		gen.DenomAuthorities = append(gen.DenomAuthorities, types.DenomAuthority{Denom: denom, Admin: admin})
		return false, nil
	}); err != nil {
		return types.GenesisState{}, err
	}

	if err := k.CreatorDenoms.Walk(ctx, nil, func(key collections.Pair[string, string], _ bool) (bool, error) {
		gen.CreatorDenoms = append(gen.CreatorDenoms, types.CreatorDenom{Creator: key.K1(), Denom: key.K2()})
		return false, nil
	}); err != nil {
		return types.GenesisState{}, err
	}

	return gen, nil
}
