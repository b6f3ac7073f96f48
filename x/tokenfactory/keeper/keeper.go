package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"gamechain/x/tokenfactory/types"
)

type Keeper struct {
	storeService store.KVStoreService
	addressCodec address.Codec
	authority    []byte

	bankKeeper types.BankKeeper

	DenomAdmin    collections.Map[string, string]
	CreatorDenoms collections.Map[collections.Pair[string, string], bool]
}

func NewKeeper(
	storeService store.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		authority:    authority,
		bankKeeper:   bankKeeper,
		DenomAdmin:   collections.NewMap(sb, types.DenomAdminKeyPrefix, "denom_admin", collections.StringKey, collections.StringValue),
		CreatorDenoms: collections.NewMap(
			sb,
			types.CreatorDenomsKeyPrefix,
			"creator_denoms",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collections.BoolValue,
		),
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return k
}

func (k Keeper) GetAuthority() []byte { return k.authority }

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) GetAdmin(ctx context.Context, denom string) (string, error) {
	admin, err := k.DenomAdmin.Get(ctx, denom)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", types.ErrUnknownDenom.Wrap(denom)
		}
		return "", err
	}
	return admin, nil
}

func (k Keeper) HasDenom(ctx context.Context, denom string) (bool, error) {
	return k.DenomAdmin.Has(ctx, denom)
}

// createDenom registers factory/<creator>/<subdenom> with creator as admin
// and publishes its bank metadata.
func (k Keeper) createDenom(ctx context.Context, creator, subdenom, name string) (string, error) {
	denom, err := types.BuildFactoryDenom(creator, subdenom)
	if err != nil {
		return "", err
	}

	exists, err := k.HasDenom(ctx, denom)
	if err != nil {
		return "", err
	}
	if exists {
		return "", types.ErrDenomAlreadyExists.Wrap(denom)
	}

	if err := k.DenomAdmin.Set(ctx, denom, creator); err != nil {
		return "", err
	}
	if err := k.CreatorDenoms.Set(ctx, collections.Join(creator, denom), true); err != nil {
		return "", err
	}

	if name == "" {
		name = denom
	}
	k.bankKeeper.SetDenomMetaData(ctx, banktypes.Metadata{
		Description: name,
		DenomUnits:  []*banktypes.DenomUnit{{Denom: denom, Exponent: 0}},
		Base:        denom,
		Display:     denom,
		Name:        name,
		Symbol:      subdenom,
	})

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventDenomCreated,
			sdk.NewAttribute(types.AttrDenom, denom),
			sdk.NewAttribute(types.AttrCreator, creator),
		),
	)
	k.Logger(ctx).Info("factory denom created", "denom", denom, "creator", creator)
	return denom, nil
}
