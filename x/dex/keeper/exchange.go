package keeper

import (
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"gamechain/x/dex/types"
)

// CreateExchange opens an empty pool for baseDenom/quoteDenom and creates its
// LP token. A pair can be listed once, in either orientation.
func (k Keeper) CreateExchange(ctx context.Context, creator sdk.AccAddress, baseDenom, quoteDenom string) (types.Pool, error) {
	if err := types.ValidatePair(baseDenom, quoteDenom); err != nil {
		return types.Pool{}, err
	}
	creatorStr, err := k.addressCodec.BytesToString(creator)
	if err != nil {
		return types.Pool{}, errorsmod.Wrapf(types.ErrInvalidAddress, "creator: %s", err)
	}

	for _, pair := range []collections.Pair[string, string]{
		collections.Join(baseDenom, quoteDenom),
		collections.Join(quoteDenom, baseDenom),
	} {
		has, err := k.PairIndex.Has(ctx, pair)
		if err != nil {
			return types.Pool{}, err
		}
		if has {
			return types.Pool{}, types.ErrAlreadyExists.Wrapf("%s/%s", baseDenom, quoteDenom)
		}
	}

	var pool types.Pool
	err = k.atomically(ctx, func(ctx context.Context) error {
		id, err := k.PoolSeq.Next(ctx)
		if err != nil {
			return err
		}
		lpDenom, err := k.ledger.CreateToken(ctx, k.ModuleAddress(), types.LPSubdenom(id), fmt.Sprintf("%s/%s LP", baseDenom, quoteDenom))
		if err != nil {
			return errorsmod.Wrap(err, "failed to create lp token")
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		pool = types.NewPool(id, baseDenom, quoteDenom, lpDenom, creatorStr, sdkCtx.BlockHeight())
		if err := k.Pools.Set(ctx, id, pool); err != nil {
			return err
		}
		if err := k.PairIndex.Set(ctx, collections.Join(baseDenom, quoteDenom), id); err != nil {
			return err
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventExchangeCreated,
				sdk.NewAttribute(types.AttrPoolID, strconv.FormatUint(id, 10)),
				sdk.NewAttribute(types.AttrSender, creatorStr),
				sdk.NewAttribute(types.AttrBaseDenom, baseDenom),
				sdk.NewAttribute(types.AttrQuoteDenom, quoteDenom),
				sdk.NewAttribute(types.AttrLPDenom, lpDenom),
			),
		)
		return nil
	})
	if err != nil {
		return types.Pool{}, err
	}

	k.metrics.poolCreated(ctx)
	k.Logger(ctx).Info("exchange created", "pool_id", pool.ID, "base", baseDenom, "quote", quoteDenom, "lp_denom", pool.LPDenom)
	return pool, nil
}

// AddLiquidity deposits baseAmount and the matching quote amount into a pool
// and mints LP shares to the provider.
//
// On an empty pool the provider sets the price: maxQuoteAmount is deposited as
// is and baseAmount shares are minted. Otherwise the quote charged is
// ceil(quoteReserve*baseAmount/baseReserve) and the shares minted are
// floor(totalShares*baseAmount/baseReserve).
func (k Keeper) AddLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	poolID uint64,
	baseAmount, maxQuoteAmount, minLiquidity math.Int,
	deadline uint64,
) (shares, quoteAmount math.Int, err error) {
	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.Int{}, math.Int{}, err
	}
	providerStr, err := k.addressCodec.BytesToString(provider)
	if err != nil {
		return math.Int{}, math.Int{}, errorsmod.Wrapf(types.ErrInvalidAddress, "provider: %s", err)
	}
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := types.CheckPositiveAmount(baseAmount); err != nil {
		return math.Int{}, math.Int{}, errorsmod.Wrap(err, "base amount")
	}
	if err := types.CheckPositiveAmount(maxQuoteAmount); err != nil {
		return math.Int{}, math.Int{}, errorsmod.Wrap(err, "quote amount")
	}
	minLiquidity = types.OrZero(minLiquidity)

	if pool.IsEmpty() {
		shares, quoteAmount = baseAmount, maxQuoteAmount
	} else {
		quoteAmount, err = types.DepositQuote(baseAmount, pool.BaseReserve, pool.QuoteReserve)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		if quoteAmount.GT(maxQuoteAmount) {
			return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf("quote required %s exceeds max %s", quoteAmount, maxQuoteAmount)
		}
		shares, err = types.DepositShares(baseAmount, pool.BaseReserve, pool.TotalShares)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
	}
	if shares.IsZero() || shares.LT(minLiquidity) {
		return math.Int{}, math.Int{}, types.ErrInsufficientLiquidityMinted.Wrapf("minted %s, min %s", shares, minLiquidity)
	}

	updated, err := pool.Deposit(baseAmount, quoteAmount, shares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.requireBalance(ctx, provider, pool.BaseDenom, baseAmount); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.requireBalance(ctx, provider, pool.QuoteDenom, quoteAmount); err != nil {
		return math.Int{}, math.Int{}, err
	}

	err = k.atomically(ctx, func(ctx context.Context) error {
		if err := k.ledger.Transfer(ctx, pool.BaseDenom, provider, k.ModuleAddress(), baseAmount); err != nil {
			return errorsmod.Wrap(err, "failed to transfer base deposit")
		}
		if err := k.ledger.Transfer(ctx, pool.QuoteDenom, provider, k.ModuleAddress(), quoteAmount); err != nil {
			return errorsmod.Wrap(err, "failed to transfer quote deposit")
		}
		if err := k.ledger.Mint(ctx, pool.LPDenom, provider, shares); err != nil {
			return errorsmod.Wrap(err, "failed to mint lp shares")
		}
		if err := k.Pools.Set(ctx, poolID, updated); err != nil {
			return err
		}

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventLiquidityAdded,
				sdk.NewAttribute(types.AttrPoolID, strconv.FormatUint(poolID, 10)),
				sdk.NewAttribute(types.AttrSender, providerStr),
				sdk.NewAttribute(types.AttrBaseAmount, baseAmount.String()),
				sdk.NewAttribute(types.AttrQuoteAmount, quoteAmount.String()),
				sdk.NewAttribute(types.AttrShares, shares.String()),
			),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.metrics.liquidityChanged(ctx, poolID, "add")
	k.Logger(ctx).Debug("liquidity added", "pool_id", poolID, "provider", providerStr, "base", baseAmount, "quote", quoteAmount, "shares", shares)
	return shares, quoteAmount, nil
}

// RemoveLiquidity burns shares of a pool's LP token and pays out the
// proportional reserves, each rounded down.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	poolID uint64,
	shares, minBase, minQuote math.Int,
	deadline uint64,
) (baseOut, quoteOut math.Int, err error) {
	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.Int{}, math.Int{}, err
	}
	providerStr, err := k.addressCodec.BytesToString(provider)
	if err != nil {
		return math.Int{}, math.Int{}, errorsmod.Wrapf(types.ErrInvalidAddress, "provider: %s", err)
	}
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := types.CheckPositiveAmount(shares); err != nil {
		return math.Int{}, math.Int{}, errorsmod.Wrap(err, "shares")
	}
	if pool.IsEmpty() {
		return math.Int{}, math.Int{}, types.ErrEmptyPool.Wrapf("pool %d", poolID)
	}
	if err := k.requireBalance(ctx, provider, pool.LPDenom, shares); err != nil {
		return math.Int{}, math.Int{}, err
	}

	baseOut, quoteOut, err = types.WithdrawAmounts(shares, pool.BaseReserve, pool.QuoteReserve, pool.TotalShares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if baseOut.IsZero() && quoteOut.IsZero() {
		return math.Int{}, math.Int{}, types.ErrInsufficientLiquidityBurned.Wrapf("burning %s shares releases nothing", shares)
	}
	minBase, minQuote = types.OrZero(minBase), types.OrZero(minQuote)
	if baseOut.LT(minBase) || quoteOut.LT(minQuote) {
		return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf("released (%s, %s), min (%s, %s)", baseOut, quoteOut, minBase, minQuote)
	}

	updated, err := pool.Withdraw(baseOut, quoteOut, shares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	err = k.atomically(ctx, func(ctx context.Context) error {
		if err := k.ledger.Burn(ctx, pool.LPDenom, provider, shares); err != nil {
			return errorsmod.Wrap(err, "failed to burn lp shares")
		}
		if baseOut.IsPositive() {
			if err := k.ledger.Transfer(ctx, pool.BaseDenom, k.ModuleAddress(), provider, baseOut); err != nil {
				return errorsmod.Wrap(err, "failed to release base reserve")
			}
		}
		if quoteOut.IsPositive() {
			if err := k.ledger.Transfer(ctx, pool.QuoteDenom, k.ModuleAddress(), provider, quoteOut); err != nil {
				return errorsmod.Wrap(err, "failed to release quote reserve")
			}
		}
		if err := k.Pools.Set(ctx, poolID, updated); err != nil {
			return err
		}

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventLiquidityRemoved,
				sdk.NewAttribute(types.AttrPoolID, strconv.FormatUint(poolID, 10)),
				sdk.NewAttribute(types.AttrSender, providerStr),
				sdk.NewAttribute(types.AttrBaseAmount, baseOut.String()),
				sdk.NewAttribute(types.AttrQuoteAmount, quoteOut.String()),
				sdk.NewAttribute(types.AttrShares, shares.String()),
			),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.metrics.liquidityChanged(ctx, poolID, "remove")
	k.Logger(ctx).Debug("liquidity removed", "pool_id", poolID, "provider", providerStr, "base", baseOut, "quote", quoteOut, "shares", shares)
	return baseOut, quoteOut, nil
}

// Swap sells amountIn of denomIn to the pool for the other side. The whole
// input, fee included, is added to the input reserve.
func (k Keeper) Swap(
	ctx context.Context,
	trader sdk.AccAddress,
	poolID uint64,
	denomIn string,
	amountIn, minAmountOut math.Int,
	deadline uint64,
) (math.Int, error) {
	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.Int{}, err
	}
	traderStr, err := k.addressCodec.BytesToString(trader)
	if err != nil {
		return math.Int{}, errorsmod.Wrapf(types.ErrInvalidAddress, "trader: %s", err)
	}
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	if pool.IsEmpty() {
		return math.Int{}, types.ErrEmptyPool.Wrapf("pool %d", poolID)
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}

	amountOut, denomOut, updated, err := simulateSwap(pool, params.Fee(), denomIn, amountIn)
	if err != nil {
		return math.Int{}, err
	}
	minAmountOut = types.OrZero(minAmountOut)
	if amountOut.IsZero() {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf("%s%s buys nothing", amountIn, denomIn)
	}
	if amountOut.LT(minAmountOut) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf("output %s%s, min %s", amountOut, denomOut, minAmountOut)
	}
	if err := k.requireBalance(ctx, trader, denomIn, amountIn); err != nil {
		return math.Int{}, err
	}

	err = k.atomically(ctx, func(ctx context.Context) error {
		if err := k.ledger.Transfer(ctx, denomIn, trader, k.ModuleAddress(), amountIn); err != nil {
			return errorsmod.Wrap(err, "failed to transfer swap input")
		}
		if err := k.ledger.Transfer(ctx, denomOut, k.ModuleAddress(), trader, amountOut); err != nil {
			return errorsmod.Wrap(err, "failed to transfer swap output")
		}
		if err := k.Pools.Set(ctx, poolID, updated); err != nil {
			return err
		}

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventSwap,
				sdk.NewAttribute(types.AttrPoolID, strconv.FormatUint(poolID, 10)),
				sdk.NewAttribute(types.AttrSender, traderStr),
				sdk.NewAttribute(types.AttrDenomIn, denomIn),
				sdk.NewAttribute(types.AttrAmountIn, amountIn.String()),
				sdk.NewAttribute(types.AttrDenomOut, denomOut),
				sdk.NewAttribute(types.AttrAmountOut, amountOut.String()),
			),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	k.metrics.swapped(ctx, poolID, denomIn)
	k.Logger(ctx).Debug("swap executed", "pool_id", poolID, "trader", traderStr, "in", amountIn, "denom_in", denomIn, "out", amountOut, "denom_out", denomOut)
	return amountOut, nil
}

func simulateSwap(pool types.Pool, fee types.Fee, denomIn string, amountIn math.Int) (math.Int, string, types.Pool, error) {
	reserveIn, reserveOut, denomOut, err := pool.SwapReserves(denomIn)
	if err != nil {
		return math.Int{}, "", types.Pool{}, err
	}
	amountOut, err := types.GetAmountOut(amountIn, reserveIn, reserveOut, fee)
	if err != nil {
		return math.Int{}, "", types.Pool{}, err
	}
	updated, err := pool.ApplySwap(denomIn, amountIn, amountOut)
	if err != nil {
		return math.Int{}, "", types.Pool{}, err
	}
	return amountOut, denomOut, updated, nil
}
