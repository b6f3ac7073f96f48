package keeper

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gamechain/x/dex/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = (*queryServer)(nil)

// queryError maps module errors onto gRPC status codes.
func queryError(err error) error {
	switch {
	case errors.Is(err, types.ErrPoolNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, types.ErrInvalidAmount),
		errors.Is(err, types.ErrInvalidDenom),
		errors.Is(err, types.ErrOverflow):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, types.ErrEmptyPool),
		errors.Is(err, types.ErrInsufficientLiquidity):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) Pool(ctx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	pool, err := q.GetPool(ctx, req.PoolID)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

func (q queryServer) PoolByPair(ctx context.Context, req *types.QueryPoolByPairRequest) (*types.QueryPoolResponse, error) {
	if req == nil || strings.TrimSpace(req.BaseDenom) == "" || strings.TrimSpace(req.QuoteDenom) == "" {
		return nil, status.Error(codes.InvalidArgument, "base_denom and quote_denom required")
	}
	pool, err := q.GetPoolByPair(ctx, req.BaseDenom, req.QuoteDenom)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

func (q queryServer) Pools(ctx context.Context, _ *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	pools, err := q.ListPools(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryPoolsResponse{Pools: pools}, nil
}

func (q queryServer) AmountOut(ctx context.Context, req *types.QueryAmountOutRequest) (*types.QueryAmountOutResponse, error) {
	if req == nil || req.AmountIn.IsNil() {
		return nil, status.Error(codes.InvalidArgument, "amount_in required")
	}
	out, denomOut, err := q.GetAmountOut(ctx, req.PoolID, req.DenomIn, req.AmountIn)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryAmountOutResponse{DenomOut: denomOut, AmountOut: out}, nil
}

func (q queryServer) AmountIn(ctx context.Context, req *types.QueryAmountInRequest) (*types.QueryAmountInResponse, error) {
	if req == nil || req.AmountOut.IsNil() {
		return nil, status.Error(codes.InvalidArgument, "amount_out required")
	}
	in, denomIn, err := q.GetAmountIn(ctx, req.PoolID, req.DenomOut, req.AmountOut)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryAmountInResponse{DenomIn: denomIn, AmountIn: in}, nil
}
