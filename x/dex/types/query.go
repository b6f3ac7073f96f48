package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the exchange read-only endpoints.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	PoolByPair(context.Context, *QueryPoolByPairRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	AmountOut(context.Context, *QueryAmountOutRequest) (*QueryAmountOutResponse, error)
	AmountIn(context.Context, *QueryAmountInRequest) (*QueryAmountInResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryPoolRequest struct {
	PoolID uint64 `json:"pool_id"`
}

type QueryPoolByPairRequest struct {
	BaseDenom  string `json:"base_denom"`
	QuoteDenom string `json:"quote_denom"`
}

type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

type QueryPoolsRequest struct{}

type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

type QueryAmountOutRequest struct {
	PoolID   uint64   `json:"pool_id"`
	DenomIn  string   `json:"denom_in"`
	AmountIn math.Int `json:"amount_in"`
}

type QueryAmountOutResponse struct {
	DenomOut  string   `json:"denom_out"`
	AmountOut math.Int `json:"amount_out"`
}

type QueryAmountInRequest struct {
	PoolID    uint64   `json:"pool_id"`
	DenomOut  string   `json:"denom_out"`
	AmountOut math.Int `json:"amount_out"`
}

type QueryAmountInResponse struct {
	DenomIn  string   `json:"denom_in"`
	AmountIn math.Int `json:"amount_in"`
}
