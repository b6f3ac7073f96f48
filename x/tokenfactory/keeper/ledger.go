package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"gamechain/x/tokenfactory/types"
)

// Ledger exposes the keeper as the fungible ledger other modules move funds
// through. Token creation, mint and burn are limited to factory denoms;
// transfers and balances cover every bank denom.
type Ledger struct {
	k Keeper
}

// NewLedger returns the ledger capability backed by k.
func NewLedger(k Keeper) Ledger {
	return Ledger{k: k}
}

// CreateToken registers factory/<owner>/<subdenom> with owner as admin.
func (l Ledger) CreateToken(ctx context.Context, owner sdk.AccAddress, subdenom, name string) (string, error) {
	ownerStr, err := l.k.addressCodec.BytesToString(owner)
	if err != nil {
		return "", errorsmod.Wrap(err, "invalid owner address")
	}
	return l.k.createDenom(ctx, ownerStr, subdenom, name)
}

// Mint creates amount of a registered factory denom in to's account.
func (l Ledger) Mint(ctx context.Context, denom string, to sdk.AccAddress, amount math.Int) error {
	coin, err := positiveCoin(denom, amount)
	if err != nil {
		return err
	}
	if err := l.k.requireFactoryDenom(ctx, denom); err != nil {
		return err
	}
	return l.k.mint(ctx, coin, to)
}

// Burn destroys amount of a registered factory denom held by from.
func (l Ledger) Burn(ctx context.Context, denom string, from sdk.AccAddress, amount math.Int) error {
	coin, err := positiveCoin(denom, amount)
	if err != nil {
		return err
	}
	if err := l.k.requireFactoryDenom(ctx, denom); err != nil {
		return err
	}
	return l.k.burn(ctx, coin, from)
}

// Transfer moves amount of any denom between accounts.
func (l Ledger) Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error {
	coin, err := positiveCoin(denom, amount)
	if err != nil {
		return err
	}
	if err := l.k.requireBalance(ctx, from, coin); err != nil {
		return err
	}
	return l.k.bankKeeper.SendCoins(ctx, from, to, sdk.NewCoins(coin))
}

func (l Ledger) BalanceOf(ctx context.Context, denom string, account sdk.AccAddress) math.Int {
	return l.k.bankKeeper.GetBalance(ctx, account, denom).Amount
}

func (l Ledger) Supply(ctx context.Context, denom string) math.Int {
	return l.k.bankKeeper.GetSupply(ctx, denom).Amount
}

func positiveCoin(denom string, amount math.Int) (sdk.Coin, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrapf("%s must be positive", amount)
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrap(err.Error())
	}
	return sdk.NewCoin(denom, amount), nil
}

func (k Keeper) requireFactoryDenom(ctx context.Context, denom string) error {
	ok, err := k.HasDenom(ctx, denom)
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrUnknownDenom.Wrap(denom)
	}
	return nil
}

func (k Keeper) requireBalance(ctx context.Context, account sdk.AccAddress, coin sdk.Coin) error {
	if held := k.bankKeeper.GetBalance(ctx, account, coin.Denom); held.Amount.LT(coin.Amount) {
		return types.ErrInsufficientBalance.Wrapf("%s required, %s held", coin, held)
	}
	return nil
}

func (k Keeper) mint(ctx context.Context, coin sdk.Coin, to sdk.AccAddress) error {
	if !coin.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("%s must be positive", coin)
	}
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(coin)); err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, sdk.NewCoins(coin)); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventMint,
			sdk.NewAttribute(types.AttrAmount, coin.String()),
			sdk.NewAttribute(types.AttrAccount, to.String()),
		),
	)
	return nil
}

func (k Keeper) burn(ctx context.Context, coin sdk.Coin, from sdk.AccAddress) error {
	if !coin.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("%s must be positive", coin)
	}
	if err := k.requireBalance(ctx, from, coin); err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, from, types.ModuleName, sdk.NewCoins(coin)); err != nil {
		return err
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, sdk.NewCoins(coin)); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventBurn,
			sdk.NewAttribute(types.AttrAmount, coin.String()),
			sdk.NewAttribute(types.AttrAccount, from.String()),
		),
	)
	return nil
}
