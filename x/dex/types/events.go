package types

const (
	EventExchangeCreated  = "dex.exchange_created"
	EventLiquidityAdded   = "dex.liquidity_added"
	EventLiquidityRemoved = "dex.liquidity_removed"
	EventSwap             = "dex.swap"
	EventParamsUpdated    = "dex.params_updated"
)

const (
	AttrPoolID       = "pool_id"
	AttrSender       = "sender"
	AttrBaseDenom    = "base_denom"
	AttrQuoteDenom   = "quote_denom"
	AttrLPDenom      = "lp_denom"
	AttrBaseAmount   = "base_amount"
	AttrQuoteAmount  = "quote_amount"
	AttrShares       = "shares"
	AttrDenomIn      = "denom_in"
	AttrDenomOut     = "denom_out"
	AttrAmountIn     = "amount_in"
	AttrAmountOut    = "amount_out"
	AttrFeeNumerator = "fee_numerator"
	AttrFeeDenom     = "fee_denominator"
)
