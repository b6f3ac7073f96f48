package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"gamechain/x/tokenfactory/keeper"
	"gamechain/x/tokenfactory/types"
)

// MockBankKeeper is a mock implementation of the BankKeeper interface.
// Module accounts are keyed by module name.
type MockBankKeeper struct {
	Balances map[string]sdk.Coins
	Supply   sdk.Coins
	Metadata map[string]banktypes.Metadata
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		Balances: make(map[string]sdk.Coins),
		Metadata: make(map[string]banktypes.Metadata),
	}
}

func (m *MockBankKeeper) move(from, to string, amt sdk.Coins) error {
	balance := m.Balances[from]
	if !balance.IsAllGTE(amt) {
		return sdkerrors.ErrInsufficientFunds
	}
	m.Balances[from] = balance.Sub(amt...)
	m.Balances[to] = m.Balances[to].Add(amt...)
	return nil
}

func (m *MockBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	m.Balances[moduleName] = m.Balances[moduleName].Add(amt...)
	m.Supply = m.Supply.Add(amt...)
	return nil
}

func (m *MockBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	balance := m.Balances[moduleName]
	if !balance.IsAllGTE(amt) {
		return sdkerrors.ErrInsufficientFunds
	}
	m.Balances[moduleName] = balance.Sub(amt...)
	m.Supply = m.Supply.Sub(amt...)
	return nil
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.move(senderAddr.String(), recipientModule, amt)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.move(senderModule, recipientAddr.String(), amt)
}

func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.move(fromAddr.String(), toAddr.String(), amt)
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.Balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.Supply.AmountOf(denom))
}

func (m *MockBankKeeper) SetDenomMetaData(_ context.Context, md banktypes.Metadata) {
	m.Metadata[md.Base] = md
}

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	addressCodec address.Codec
	bankKeeper   *MockBankKeeper
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	addressCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx

	authority := authtypes.NewModuleAddress(types.GovModuleName)
	bankKeeper := NewMockBankKeeper()

	k := keeper.NewKeeper(
		storeService,
		addressCodec,
		authority,
		bankKeeper,
	)

	return &fixture{
		ctx:          ctx,
		keeper:       k,
		addressCodec: addressCodec,
		bankKeeper:   bankKeeper,
	}
}

func testAddr(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress("test-" + name)
}
