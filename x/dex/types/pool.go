package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is the reserve state of one trading pair plus its LP-share bookkeeping.
// TotalShares mirrors the supply of LPDenom held by liquidity providers.
type Pool struct {
	ID            uint64   `json:"id"`
	BaseDenom     string   `json:"base_denom"`
	QuoteDenom    string   `json:"quote_denom"`
	BaseReserve   math.Int `json:"base_reserve"`
	QuoteReserve  math.Int `json:"quote_reserve"`
	LPDenom       string   `json:"lp_denom"`
	TotalShares   math.Int `json:"total_shares"`
	Creator       string   `json:"creator"`
	CreatedHeight int64    `json:"created_height"`
}

// NewPool returns an empty pool for the pair.
func NewPool(id uint64, baseDenom, quoteDenom, lpDenom, creator string, height int64) Pool {
	return Pool{
		ID:            id,
		BaseDenom:     baseDenom,
		QuoteDenom:    quoteDenom,
		BaseReserve:   math.ZeroInt(),
		QuoteReserve:  math.ZeroInt(),
		LPDenom:       lpDenom,
		TotalShares:   math.ZeroInt(),
		Creator:       creator,
		CreatedHeight: height,
	}
}

// IsEmpty reports whether the pool holds no liquidity.
func (p Pool) IsEmpty() bool {
	return p.TotalShares.IsZero()
}

// HasDenom reports whether denom is one side of the pair.
func (p Pool) HasDenom(denom string) bool {
	return denom == p.BaseDenom || denom == p.QuoteDenom
}

// SwapReserves orders the reserves for a trade selling denomIn.
func (p Pool) SwapReserves(denomIn string) (reserveIn, reserveOut math.Int, denomOut string, err error) {
	switch denomIn {
	case p.BaseDenom:
		return p.BaseReserve, p.QuoteReserve, p.QuoteDenom, nil
	case p.QuoteDenom:
		return p.QuoteReserve, p.BaseReserve, p.BaseDenom, nil
	default:
		return math.Int{}, math.Int{}, "", ErrInvalidDenom.Wrapf("%s not in pool %d (%s/%s)", denomIn, p.ID, p.BaseDenom, p.QuoteDenom)
	}
}

// ApplySwap returns the pool after amountIn of denomIn entered and amountOut
// of the other side left. The full input, fee included, stays in the pool.
func (p Pool) ApplySwap(denomIn string, amountIn, amountOut math.Int) (Pool, error) {
	reserveIn, reserveOut, _, err := p.SwapReserves(denomIn)
	if err != nil {
		return Pool{}, err
	}
	newIn, err := checkedAdd(reserveIn, amountIn)
	if err != nil {
		return Pool{}, err
	}
	if amountOut.GT(reserveOut) {
		return Pool{}, ErrInsufficientLiquidity.Wrapf("output %s exceeds reserve %s", amountOut, reserveOut)
	}
	newOut := reserveOut.Sub(amountOut)
	if denomIn == p.BaseDenom {
		p.BaseReserve, p.QuoteReserve = newIn, newOut
	} else {
		p.QuoteReserve, p.BaseReserve = newIn, newOut
	}
	return p, nil
}

// Deposit returns the pool after a liquidity deposit.
func (p Pool) Deposit(baseAmount, quoteAmount, shares math.Int) (Pool, error) {
	var err error
	if p.BaseReserve, err = checkedAdd(p.BaseReserve, baseAmount); err != nil {
		return Pool{}, err
	}
	if p.QuoteReserve, err = checkedAdd(p.QuoteReserve, quoteAmount); err != nil {
		return Pool{}, err
	}
	if p.TotalShares, err = checkedAdd(p.TotalShares, shares); err != nil {
		return Pool{}, err
	}
	return p, nil
}

// Withdraw returns the pool after shares were burned for the given amounts.
func (p Pool) Withdraw(baseAmount, quoteAmount, shares math.Int) (Pool, error) {
	if baseAmount.GT(p.BaseReserve) || quoteAmount.GT(p.QuoteReserve) || shares.GT(p.TotalShares) {
		return Pool{}, ErrInsufficientLiquidity.Wrapf("withdraw (%s, %s, %s) from pool %d", baseAmount, quoteAmount, shares, p.ID)
	}
	p.BaseReserve = p.BaseReserve.Sub(baseAmount)
	p.QuoteReserve = p.QuoteReserve.Sub(quoteAmount)
	p.TotalShares = p.TotalShares.Sub(shares)
	return p, nil
}

// Validate checks the pool's stored invariants.
func (p Pool) Validate() error {
	if err := ValidatePair(p.BaseDenom, p.QuoteDenom); err != nil {
		return err
	}
	if p.LPDenom == "" {
		return fmt.Errorf("pool %d: lp_denom required", p.ID)
	}
	if err := CheckAmount(p.BaseReserve); err != nil {
		return fmt.Errorf("pool %d: base_reserve: %w", p.ID, err)
	}
	if err := CheckAmount(p.QuoteReserve); err != nil {
		return fmt.Errorf("pool %d: quote_reserve: %w", p.ID, err)
	}
	if err := CheckAmount(p.TotalShares); err != nil {
		return fmt.Errorf("pool %d: total_shares: %w", p.ID, err)
	}
	reservesEmpty := p.BaseReserve.IsZero() && p.QuoteReserve.IsZero()
	if reservesEmpty != p.TotalShares.IsZero() {
		return fmt.Errorf("pool %d: reserves (%s, %s) inconsistent with total shares %s", p.ID, p.BaseReserve, p.QuoteReserve, p.TotalShares)
	}
	if !p.TotalShares.IsZero() && (p.BaseReserve.IsZero() || p.QuoteReserve.IsZero()) {
		return fmt.Errorf("pool %d: one-sided reserves (%s, %s)", p.ID, p.BaseReserve, p.QuoteReserve)
	}
	return nil
}

// ValidatePair checks that both denoms are valid and distinct.
func ValidatePair(baseDenom, quoteDenom string) error {
	if err := sdk.ValidateDenom(baseDenom); err != nil {
		return ErrInvalidPair.Wrapf("base denom: %s", err)
	}
	if err := sdk.ValidateDenom(quoteDenom); err != nil {
		return ErrInvalidPair.Wrapf("quote denom: %s", err)
	}
	if baseDenom == quoteDenom {
		return ErrInvalidPair.Wrap("cannot create pool with identical denoms")
	}
	return nil
}

// LPSubdenom is the ledger subdenom of the share token of pool poolID.
func LPSubdenom(poolID uint64) string {
	return fmt.Sprintf("%s%d", LPSubdenomPrefix, poolID)
}
