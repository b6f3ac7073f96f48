package keeper_test

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/core/address"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"gamechain/x/dex/keeper"
	"gamechain/x/dex/types"
)

// mockLedger is an in-memory fungible ledger keyed by denom then address.
type mockLedger struct {
	balances map[string]map[string]math.Int
	supply   map[string]math.Int
	tokens   map[string]string
}

func newMockLedger() *mockLedger {
	return &mockLedger{
		balances: make(map[string]map[string]math.Int),
		supply:   make(map[string]math.Int),
		tokens:   make(map[string]string),
	}
}

func (m *mockLedger) CreateToken(_ context.Context, owner sdk.AccAddress, subdenom, name string) (string, error) {
	denom := fmt.Sprintf("factory/%s/%s", owner.String(), subdenom)
	if _, ok := m.tokens[denom]; ok {
		return "", fmt.Errorf("token %s exists", denom)
	}
	m.tokens[denom] = name
	return denom, nil
}

func (m *mockLedger) BalanceOf(_ context.Context, denom string, account sdk.AccAddress) math.Int {
	if bal, ok := m.balances[denom][account.String()]; ok {
		return bal
	}
	return math.ZeroInt()
}

func (m *mockLedger) Supply(_ context.Context, denom string) math.Int {
	if s, ok := m.supply[denom]; ok {
		return s
	}
	return math.ZeroInt()
}

func (m *mockLedger) credit(denom string, account sdk.AccAddress, amount math.Int) {
	if m.balances[denom] == nil {
		m.balances[denom] = make(map[string]math.Int)
	}
	m.balances[denom][account.String()] = m.BalanceOf(context.Background(), denom, account).Add(amount)
}

func (m *mockLedger) debit(denom string, account sdk.AccAddress, amount math.Int) error {
	held := m.BalanceOf(context.Background(), denom, account)
	if amount.IsZero() {
		return nil
	}
	if held.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("%s has %s%s", account, held, denom)
	}
	m.balances[denom][account.String()] = held.Sub(amount)
	return nil
}

func (m *mockLedger) Mint(_ context.Context, denom string, to sdk.AccAddress, amount math.Int) error {
	m.credit(denom, to, amount)
	m.supply[denom] = m.Supply(context.Background(), denom).Add(amount)
	return nil
}

func (m *mockLedger) Burn(_ context.Context, denom string, from sdk.AccAddress, amount math.Int) error {
	if err := m.debit(denom, from, amount); err != nil {
		return err
	}
	m.supply[denom] = m.Supply(context.Background(), denom).Sub(amount)
	return nil
}

func (m *mockLedger) Transfer(_ context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error {
	if err := m.debit(denom, from, amount); err != nil {
		return err
	}
	m.credit(denom, to, amount)
	return nil
}

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	addressCodec address.Codec
	ledger       *mockLedger
	authority    sdk.AccAddress
}

func initFixture(t *testing.T) *fixture {
	t.Helper()
	return initFixtureWithCodec(t, addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()))
}

func initFixtureWithCodec(t *testing.T, addressCodec address.Codec) *fixture {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx

	authority := authtypes.NewModuleAddress(types.GovModuleName)
	ledger := newMockLedger()

	k := keeper.NewKeeper(
		storeService,
		addressCodec,
		authority,
		ledger,
	)

	if err := k.Params.Set(ctx, types.DefaultParams()); err != nil {
		t.Fatalf("failed to set params: %v", err)
	}

	return &fixture{
		ctx:          ctx,
		keeper:       k,
		addressCodec: addressCodec,
		ledger:       ledger,
		authority:    authority,
	}
}

func testAddr(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress("test-" + name)
}

// fund credits amount of denom to addr outside of any supply accounting
// the exchange cares about.
func (f *fixture) fund(addr sdk.AccAddress, denom string, amount int64) {
	f.ledger.credit(denom, addr, math.NewInt(amount))
}

func (f *fixture) balance(addr sdk.AccAddress, denom string) math.Int {
	return f.ledger.BalanceOf(f.ctx, denom, addr)
}

// seedPool creates a gold/silver pool and deposits base/quote from a funded
// provider.
func (f *fixture) seedPool(t *testing.T, provider sdk.AccAddress, base, quote int64) types.Pool {
	t.Helper()
	pool, err := f.keeper.CreateExchange(f.ctx, provider, "gold", "silver")
	require.NoError(t, err)
	f.fund(provider, "gold", base)
	f.fund(provider, "silver", quote)
	_, _, err = f.keeper.AddLiquidity(f.ctx, provider, pool.ID, math.NewInt(base), math.NewInt(quote), math.ZeroInt(), 0)
	require.NoError(t, err)
	pool, err = f.keeper.GetPool(f.ctx, pool.ID)
	require.NoError(t, err)
	return pool
}

func TestParamsDefaults(t *testing.T) {
	f := initFixture(t)

	p, err := f.keeper.GetParams(f.ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), p)

	require.ErrorIs(t, f.keeper.SetParams(f.ctx, types.Params{FeeNumerator: 5, FeeDenominator: 5}), types.ErrInvalidParams)

	require.NoError(t, f.keeper.SetParams(f.ctx, types.Params{FeeNumerator: 1, FeeDenominator: 100}))
	p, err = f.keeper.GetParams(f.ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), p.FeeNumerator)
}
