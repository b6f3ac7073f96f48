package types

import (
	"context"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// MsgServer defines the exchange message handlers.
type MsgServer interface {
	CreateExchange(context.Context, *MsgCreateExchange) (*MsgCreateExchangeResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgCreateExchange opens an empty pool for BaseDenom/QuoteDenom.
type MsgCreateExchange struct {
	Sender     string `json:"sender"`
	BaseDenom  string `json:"base_denom"`
	QuoteDenom string `json:"quote_denom"`
}

type MsgCreateExchangeResponse struct {
	PoolID  uint64 `json:"pool_id"`
	LPDenom string `json:"lp_denom"`
}

// MsgAddLiquidity deposits BaseAmount and at most MaxQuoteAmount into a pool.
// On an empty pool MaxQuoteAmount is deposited as is and sets the price.
type MsgAddLiquidity struct {
	Sender         string   `json:"sender"`
	PoolID         uint64   `json:"pool_id"`
	BaseAmount     math.Int `json:"base_amount"`
	MaxQuoteAmount math.Int `json:"max_quote_amount"`
	MinLiquidity   math.Int `json:"min_liquidity"`
	Deadline       uint64   `json:"deadline"`
}

type MsgAddLiquidityResponse struct {
	Shares      math.Int `json:"shares"`
	QuoteAmount math.Int `json:"quote_amount"`
}

// MsgRemoveLiquidity burns Shares of a pool's LP token.
type MsgRemoveLiquidity struct {
	Sender   string   `json:"sender"`
	PoolID   uint64   `json:"pool_id"`
	Shares   math.Int `json:"shares"`
	MinBase  math.Int `json:"min_base"`
	MinQuote math.Int `json:"min_quote"`
	Deadline uint64   `json:"deadline"`
}

type MsgRemoveLiquidityResponse struct {
	BaseAmount  math.Int `json:"base_amount"`
	QuoteAmount math.Int `json:"quote_amount"`
}

// MsgSwap sells AmountIn of DenomIn for the other side of the pool.
type MsgSwap struct {
	Sender       string   `json:"sender"`
	PoolID       uint64   `json:"pool_id"`
	DenomIn      string   `json:"denom_in"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	Deadline     uint64   `json:"deadline"`
}

type MsgSwapResponse struct {
	DenomOut  string   `json:"denom_out"`
	AmountOut math.Int `json:"amount_out"`
}

// MsgUpdateParams is the authority-gated params update.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func requireSender(sender string) error {
	if strings.TrimSpace(sender) == "" {
		return errorsmod.Wrap(ErrInvalidRequest, "sender required")
	}
	return nil
}

// optionalAmount validates a bound that may be left unset.
func optionalAmount(amt math.Int) error {
	if amt.IsNil() {
		return nil
	}
	return CheckAmount(amt)
}

// OrZero returns amt, or zero when it is unset.
func OrZero(amt math.Int) math.Int {
	if amt.IsNil() {
		return math.ZeroInt()
	}
	return amt
}

func (m *MsgCreateExchange) ValidateBasic() error {
	if err := requireSender(m.Sender); err != nil {
		return err
	}
	return ValidatePair(m.BaseDenom, m.QuoteDenom)
}

func (m *MsgAddLiquidity) ValidateBasic() error {
	if err := requireSender(m.Sender); err != nil {
		return err
	}
	if err := CheckPositiveAmount(m.BaseAmount); err != nil {
		return errorsmod.Wrap(err, "base_amount")
	}
	if err := CheckPositiveAmount(m.MaxQuoteAmount); err != nil {
		return errorsmod.Wrap(err, "max_quote_amount")
	}
	return optionalAmount(m.MinLiquidity)
}

func (m *MsgRemoveLiquidity) ValidateBasic() error {
	if err := requireSender(m.Sender); err != nil {
		return err
	}
	if err := CheckPositiveAmount(m.Shares); err != nil {
		return errorsmod.Wrap(err, "shares")
	}
	if err := optionalAmount(m.MinBase); err != nil {
		return errorsmod.Wrap(err, "min_base")
	}
	return optionalAmount(m.MinQuote)
}

func (m *MsgSwap) ValidateBasic() error {
	if err := requireSender(m.Sender); err != nil {
		return err
	}
	if strings.TrimSpace(m.DenomIn) == "" {
		return ErrInvalidDenom.Wrap("denom_in required")
	}
	if err := CheckPositiveAmount(m.AmountIn); err != nil {
		return errorsmod.Wrap(err, "amount_in")
	}
	return optionalAmount(m.MinAmountOut)
}

func (m *MsgUpdateParams) ValidateBasic() error {
	if strings.TrimSpace(m.Authority) == "" {
		return ErrInvalidSigner
	}
	if err := m.Params.Validate(); err != nil {
		return ErrInvalidParams.Wrap(err.Error())
	}
	return nil
}
