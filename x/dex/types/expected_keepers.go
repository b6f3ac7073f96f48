package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LedgerKeeper is the fungible ledger the exchange moves reserves and LP
// shares through. x/tokenfactory provides it on top of the bank module.
type LedgerKeeper interface {
	CreateToken(ctx context.Context, owner sdk.AccAddress, subdenom, name string) (string, error)
	Mint(ctx context.Context, denom string, to sdk.AccAddress, amount math.Int) error
	Burn(ctx context.Context, denom string, from sdk.AccAddress, amount math.Int) error
	Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error
	BalanceOf(ctx context.Context, denom string, account sdk.AccAddress) math.Int
	Supply(ctx context.Context, denom string) math.Int
}
