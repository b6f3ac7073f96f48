package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// MaxAmount is the largest reserve, share or transfer amount the exchange
// accepts (2^128 - 1). Products of two such amounts stay within math.Int's
// 256-bit range, so intermediate results never panic.
var MaxAmount = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// Fee is a proportional swap fee of Numerator/Denominator.
type Fee struct {
	Numerator   uint64
	Denominator uint64
}

func (f Fee) validate() error {
	if f.Denominator == 0 || f.Numerator >= f.Denominator {
		return ErrInvalidParams.Wrapf("fee %d/%d", f.Numerator, f.Denominator)
	}
	return nil
}

// CheckAmount rejects nil, negative and out of range amounts.
func CheckAmount(amt math.Int) error {
	if amt.IsNil() || amt.IsNegative() {
		return ErrInvalidAmount.Wrap("amount must be non-negative")
	}
	if amt.GT(MaxAmount) {
		return ErrOverflow.Wrapf("%s exceeds 128 bits", amt)
	}
	return nil
}

// CheckPositiveAmount is CheckAmount that also rejects zero.
func CheckPositiveAmount(amt math.Int) error {
	if err := CheckAmount(amt); err != nil {
		return err
	}
	if amt.IsZero() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

func checkedAdd(a, b math.Int) (math.Int, error) {
	sum := a.Add(b)
	if sum.GT(MaxAmount) {
		return math.Int{}, ErrOverflow.Wrapf("%s + %s exceeds 128 bits", a, b)
	}
	return sum, nil
}

// mulDivDown returns floor(a*b/c).
func mulDivDown(a, b, c math.Int) math.Int {
	return a.Mul(b).Quo(c)
}

// mulDivUp returns ceil(a*b/c).
func mulDivUp(a, b, c math.Int) math.Int {
	num := a.Mul(b)
	q := num.Quo(c)
	if !num.Mod(c).IsZero() {
		q = q.AddRaw(1)
	}
	return q
}

func checkReserves(reserveIn, reserveOut math.Int) error {
	if err := CheckAmount(reserveIn); err != nil {
		return err
	}
	if err := CheckAmount(reserveOut); err != nil {
		return err
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return ErrEmptyPool
	}
	return nil
}

// GetAmountOut prices an exact-input trade on a constant-product pool:
//
//	effectiveIn = floor(amountIn * (den - num) / den)
//	amountOut   = floor(reserveOut * effectiveIn / (reserveIn + effectiveIn))
//
// Both steps round down, in favor of the pool.
func GetAmountOut(amountIn, reserveIn, reserveOut math.Int, fee Fee) (math.Int, error) {
	if err := fee.validate(); err != nil {
		return math.Int{}, err
	}
	if err := CheckPositiveAmount(amountIn); err != nil {
		return math.Int{}, err
	}
	if err := checkReserves(reserveIn, reserveOut); err != nil {
		return math.Int{}, err
	}
	effectiveIn := mulDivDown(amountIn, math.NewIntFromUint64(fee.Denominator-fee.Numerator), math.NewIntFromUint64(fee.Denominator))
	return mulDivDown(reserveOut, effectiveIn, reserveIn.Add(effectiveIn)), nil
}

// GetAmountIn returns the smallest input for which GetAmountOut yields at
// least amountOut. Both steps round up, in favor of the pool.
func GetAmountIn(amountOut, reserveIn, reserveOut math.Int, fee Fee) (math.Int, error) {
	if err := fee.validate(); err != nil {
		return math.Int{}, err
	}
	if err := CheckPositiveAmount(amountOut); err != nil {
		return math.Int{}, err
	}
	if err := checkReserves(reserveIn, reserveOut); err != nil {
		return math.Int{}, err
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, ErrInsufficientLiquidity.Wrapf("output %s, reserve %s", amountOut, reserveOut)
	}
	effectiveIn := mulDivUp(amountOut, reserveIn, reserveOut.Sub(amountOut))
	if err := CheckAmount(effectiveIn); err != nil {
		return math.Int{}, err
	}
	amountIn := mulDivUp(effectiveIn, math.NewIntFromUint64(fee.Denominator), math.NewIntFromUint64(fee.Denominator-fee.Numerator))
	if err := CheckAmount(amountIn); err != nil {
		return math.Int{}, err
	}
	return amountIn, nil
}

// DepositQuote returns the quote amount charged for depositing baseAmount
// into a funded pool: ceil(quoteReserve * baseAmount / baseReserve). Rounding
// up charges the depositor and protects existing providers.
func DepositQuote(baseAmount, baseReserve, quoteReserve math.Int) (math.Int, error) {
	if err := CheckPositiveAmount(baseAmount); err != nil {
		return math.Int{}, err
	}
	if err := checkReserves(baseReserve, quoteReserve); err != nil {
		return math.Int{}, err
	}
	quote := mulDivUp(quoteReserve, baseAmount, baseReserve)
	if err := CheckAmount(quote); err != nil {
		return math.Int{}, err
	}
	return quote, nil
}

// DepositShares returns the shares minted for depositing baseAmount into a
// funded pool: floor(totalShares * baseAmount / baseReserve). Rounding down
// protects existing holders from dilution.
func DepositShares(baseAmount, baseReserve, totalShares math.Int) (math.Int, error) {
	if err := CheckPositiveAmount(baseAmount); err != nil {
		return math.Int{}, err
	}
	if err := CheckPositiveAmount(baseReserve); err != nil {
		return math.Int{}, ErrEmptyPool
	}
	if err := CheckAmount(totalShares); err != nil {
		return math.Int{}, err
	}
	shares := mulDivDown(totalShares, baseAmount, baseReserve)
	if err := CheckAmount(shares); err != nil {
		return math.Int{}, err
	}
	return shares, nil
}

// WithdrawAmounts returns the reserves released by burning shares, each
// rounded down so the pool never underpays remaining providers.
func WithdrawAmounts(shares, baseReserve, quoteReserve, totalShares math.Int) (baseOut, quoteOut math.Int, err error) {
	if err := CheckPositiveAmount(shares); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := CheckPositiveAmount(totalShares); err != nil {
		return math.Int{}, math.Int{}, ErrEmptyPool
	}
	if shares.GT(totalShares) {
		return math.Int{}, math.Int{}, ErrInsufficientBalance.Wrapf("shares %s exceed total %s", shares, totalShares)
	}
	return mulDivDown(baseReserve, shares, totalShares), mulDivDown(quoteReserve, shares, totalShares), nil
}
