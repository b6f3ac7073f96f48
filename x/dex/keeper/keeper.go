package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"gamechain/x/dex/types"
)

// Keeper owns the exchange's pool table and pair index and moves funds
// through the injected ledger.
type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec
	// Address capable of executing a MsgUpdateParams message.
	// Typically, this should be the x/gov module account.
	authority []byte

	ledger  types.LedgerKeeper
	metrics *Metrics

	Schema    collections.Schema
	Params    collections.Item[types.Params]
	PoolSeq   collections.Sequence
	Pools     collections.Map[uint64, types.Pool]
	PairIndex collections.Map[collections.Pair[string, string], uint64]
}

var (
	_ collcodec.ValueCodec[types.Params] = jsonValueCodec[types.Params]{}
	_ collcodec.ValueCodec[types.Pool]   = jsonValueCodec[types.Pool]{}
)

// jsonValueCodec stores hand-written (non-protobuf) module types as JSON.
type jsonValueCodec[T any] struct {
	name string
}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }
func (jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var v T
	if err := json.Unmarshal(bz, &v); err != nil {
		return v, err
	}
	return v, nil
}
func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }
func (jsonValueCodec[T]) Stringify(value T) string               { return fmt.Sprintf("%+v", value) }
func (c jsonValueCodec[T]) ValueType() string                    { return c.name }

// NewKeeper creates a new dex Keeper instance.
func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
	ledger types.LedgerKeeper,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		authority:    authority,
		ledger:       ledger,

		Params:  collections.NewItem(sb, types.ParamsKey, "params", jsonValueCodec[types.Params]{name: "dex/Params"}),
		PoolSeq: collections.NewSequence(sb, types.PoolSeqKey, "pool_seq"),
		Pools:   collections.NewMap(sb, types.PoolKeyPrefix, "pools", collections.Uint64Key, jsonValueCodec[types.Pool]{name: "dex/Pool"}),
		PairIndex: collections.NewMap(
			sb,
			types.PairIndexKeyPrefix,
			"pair_index",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collections.Uint64Value,
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// WithMetrics returns a copy of the keeper that reports to m.
func (k Keeper) WithMetrics(m *Metrics) Keeper {
	k.metrics = m
	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// Logger returns a module-scoped logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// ModuleAddress is the account holding every pool's reserves.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetParams returns current params or defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	p, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return p, nil
}

// SetParams stores module params.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}
	return k.Params.Set(ctx, p)
}

// GetPool returns a pool by id.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, error) {
	pool, err := k.Pools.Get(ctx, poolID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
		}
		return types.Pool{}, err
	}
	return pool, nil
}

// GetPoolByPair returns the pool trading baseDenom against quoteDenom in
// either orientation.
func (k Keeper) GetPoolByPair(ctx context.Context, baseDenom, quoteDenom string) (types.Pool, error) {
	for _, pair := range []collections.Pair[string, string]{
		collections.Join(baseDenom, quoteDenom),
		collections.Join(quoteDenom, baseDenom),
	} {
		id, err := k.PairIndex.Get(ctx, pair)
		if err == nil {
			return k.GetPool(ctx, id)
		}
		if !errors.Is(err, collections.ErrNotFound) {
			return types.Pool{}, err
		}
	}
	return types.Pool{}, types.ErrPoolNotFound.Wrapf("pair %s/%s", baseDenom, quoteDenom)
}

// ListPools returns every pool ordered by id.
func (k Keeper) ListPools(ctx context.Context) ([]types.Pool, error) {
	pools := make([]types.Pool, 0)
	err := k.Pools.Walk(ctx, nil, func(_ uint64, p types.Pool) (bool, error) {
		pools = append(pools, p)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return pools, nil
}

// atomically runs fn on a cached branch of the state and commits it only
// when fn succeeds.
func (k Keeper) atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func (k Keeper) checkDeadline(ctx context.Context, deadline uint64) error {
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	if height > 0 && uint64(height) > deadline {
		return types.ErrDeadlineExpired.Wrapf("deadline %d, current height %d", deadline, height)
	}
	return nil
}

func (k Keeper) requireBalance(ctx context.Context, account sdk.AccAddress, denom string, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	if held := k.ledger.BalanceOf(ctx, denom, account); held.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("%s%s required, %s%s held", amount, denom, held, denom)
	}
	return nil
}
