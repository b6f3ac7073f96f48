package keeper

import (
	"context"
	"errors"
	"strings"

	"cosmossdk.io/collections"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gamechain/x/tokenfactory/types"
)

type queryServer struct {
	k Keeper
}

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{k: k}
}

func (q queryServer) DenomAuthorityMetadata(ctx context.Context, req *types.QueryDenomAuthorityMetadataRequest) (*types.QueryDenomAuthorityMetadataResponse, error) {
	if req == nil || strings.TrimSpace(req.Denom) == "" {
		return nil, status.Error(codes.InvalidArgument, "denom required")
	}
	if _, _, err := types.ParseFactoryDenom(req.Denom); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	admin, err := q.k.GetAdmin(ctx, req.Denom)
	if err != nil {
		if errors.Is(err, types.ErrUnknownDenom) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryDenomAuthorityMetadataResponse{AuthorityMetadata: &types.DenomAuthorityMetadata{Admin: admin}}, nil
}

// DenomsFromCreator lists denoms in creation-index order, which is
// lexicographic by denom.
func (q queryServer) DenomsFromCreator(ctx context.Context, req *types.QueryDenomsFromCreatorRequest) (*types.QueryDenomsFromCreatorResponse, error) {
	if req == nil || strings.TrimSpace(req.Creator) == "" {
		return nil, status.Error(codes.InvalidArgument, "creator required")
	}

	denoms := make([]string, 0)
	rng := collections.NewPrefixedPairRange[string, string](req.Creator)
	err := q.k.CreatorDenoms.Walk(ctx, rng, func(key collections.Pair[string, string], _ bool) (bool, error) {
		denoms = append(denoms, key.K2())
		return false, nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryDenomsFromCreatorResponse{Denoms: denoms}, nil
}

func (q queryServer) DenomSupply(ctx context.Context, req *types.QueryDenomSupplyRequest) (*types.QueryDenomSupplyResponse, error) {
	if req == nil || strings.TrimSpace(req.Denom) == "" {
		return nil, status.Error(codes.InvalidArgument, "denom required")
	}
	if err := q.k.requireFactoryDenom(ctx, req.Denom); err != nil {
		if errors.Is(err, types.ErrUnknownDenom) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryDenomSupplyResponse{Denom: req.Denom, Amount: NewLedger(q.k).Supply(ctx, req.Denom)}, nil
}
