package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"gamechain/x/tokenfactory/keeper"
	"gamechain/x/tokenfactory/types"
)

func TestLedgerCreateToken(t *testing.T) {
	f := initFixture(t)
	ledger := keeper.NewLedger(f.keeper)
	owner := testAddr("owner")

	denom, err := ledger.CreateToken(f.ctx, owner, "pool0", "gold/silver LP")
	require.NoError(t, err)
	require.Equal(t, "factory/"+owner.String()+"/pool0", denom)

	admin, err := f.keeper.GetAdmin(f.ctx, denom)
	require.NoError(t, err)
	require.Equal(t, owner.String(), admin)
	require.Equal(t, "gold/silver LP", f.bankKeeper.Metadata[denom].Name)

	_, err = ledger.CreateToken(f.ctx, owner, "pool0", "again")
	require.ErrorIs(t, err, types.ErrDenomAlreadyExists)
	_, err = ledger.CreateToken(f.ctx, owner, "a/b", "")
	require.ErrorIs(t, err, types.ErrInvalidSubdenom)
}

func TestLedgerMintBurnTransfer(t *testing.T) {
	f := initFixture(t)
	ledger := keeper.NewLedger(f.keeper)
	owner, alice, bob := testAddr("owner"), testAddr("alice"), testAddr("bob")

	denom, err := ledger.CreateToken(f.ctx, owner, "lp", "")
	require.NoError(t, err)

	require.NoError(t, ledger.Mint(f.ctx, denom, alice, math.NewInt(100)))
	require.Equal(t, math.NewInt(100), ledger.BalanceOf(f.ctx, denom, alice))
	require.Equal(t, math.NewInt(100), ledger.Supply(f.ctx, denom))

	require.NoError(t, ledger.Transfer(f.ctx, denom, alice, bob, math.NewInt(40)))
	require.Equal(t, math.NewInt(60), ledger.BalanceOf(f.ctx, denom, alice))
	require.Equal(t, math.NewInt(40), ledger.BalanceOf(f.ctx, denom, bob))

	require.NoError(t, ledger.Burn(f.ctx, denom, bob, math.NewInt(40)))
	require.True(t, ledger.BalanceOf(f.ctx, denom, bob).IsZero())
	require.Equal(t, math.NewInt(60), ledger.Supply(f.ctx, denom))

	// Plain bank denoms can be moved but not minted.
	f.bankKeeper.Balances[alice.String()] = sdk.NewCoins(sdk.NewInt64Coin("gold", 10))
	require.NoError(t, ledger.Transfer(f.ctx, "gold", alice, bob, math.NewInt(10)))
	require.Equal(t, math.NewInt(10), ledger.BalanceOf(f.ctx, "gold", bob))
	require.ErrorIs(t, ledger.Mint(f.ctx, "gold", alice, math.NewInt(1)), types.ErrUnknownDenom)
	require.ErrorIs(t, ledger.Burn(f.ctx, "gold", bob, math.NewInt(1)), types.ErrUnknownDenom)
}

func TestLedgerRejects(t *testing.T) {
	f := initFixture(t)
	ledger := keeper.NewLedger(f.keeper)
	owner, alice := testAddr("owner"), testAddr("alice")

	denom, err := ledger.CreateToken(f.ctx, owner, "lp", "")
	require.NoError(t, err)
	require.NoError(t, ledger.Mint(f.ctx, denom, alice, math.NewInt(5)))

	require.ErrorIs(t, ledger.Burn(f.ctx, denom, alice, math.NewInt(6)), types.ErrInsufficientBalance)
	require.ErrorIs(t, ledger.Transfer(f.ctx, denom, alice, owner, math.NewInt(6)), types.ErrInsufficientBalance)
	require.ErrorIs(t, ledger.Transfer(f.ctx, denom, alice, owner, math.ZeroInt()), types.ErrInvalidAmount)
	require.ErrorIs(t, ledger.Mint(f.ctx, denom, alice, math.NewInt(-1)), types.ErrInvalidAmount)
	require.ErrorIs(t, ledger.Mint(f.ctx, denom, alice, math.Int{}), types.ErrInvalidAmount)

	require.Equal(t, math.NewInt(5), ledger.BalanceOf(f.ctx, denom, alice))
}
