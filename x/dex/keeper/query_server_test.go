package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gamechain/x/dex/keeper"
	"gamechain/x/dex/types"
)

func TestQueryServer(t *testing.T) {
	f := initFixture(t)
	qs := keeper.NewQueryServerImpl(f.keeper)
	pool := f.seedPool(t, testAddr("alice"), 1000, 2000)

	params, err := qs.Params(f.ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params.Params)

	got, err := qs.Pool(f.ctx, &types.QueryPoolRequest{PoolID: pool.ID})
	require.NoError(t, err)
	require.Equal(t, pool.LPDenom, got.Pool.LPDenom)
	require.True(t, got.Pool.BaseReserve.Equal(math.NewInt(1000)))

	byPair, err := qs.PoolByPair(f.ctx, &types.QueryPoolByPairRequest{BaseDenom: "silver", QuoteDenom: "gold"})
	require.NoError(t, err)
	require.Equal(t, pool.ID, byPair.Pool.ID)

	all, err := qs.Pools(f.ctx, &types.QueryPoolsRequest{})
	require.NoError(t, err)
	require.Len(t, all.Pools, 1)

	out, err := qs.AmountOut(f.ctx, &types.QueryAmountOutRequest{PoolID: pool.ID, DenomIn: "gold", AmountIn: math.NewInt(100)})
	require.NoError(t, err)
	require.Equal(t, "silver", out.DenomOut)
	require.Equal(t, math.NewInt(180), out.AmountOut)

	in, err := qs.AmountIn(f.ctx, &types.QueryAmountInRequest{PoolID: pool.ID, DenomOut: "silver", AmountOut: math.NewInt(180)})
	require.NoError(t, err)
	require.Equal(t, "gold", in.DenomIn)
	require.Equal(t, math.NewInt(100), in.AmountIn)
}

func TestQueryServerErrors(t *testing.T) {
	f := initFixture(t)
	qs := keeper.NewQueryServerImpl(f.keeper)
	pool := f.seedPool(t, testAddr("alice"), 1000, 2000)

	tests := []struct {
		name string
		run  func() error
		code codes.Code
	}{
		{"nil pool request", func() error { _, err := qs.Pool(f.ctx, nil); return err }, codes.InvalidArgument},
		{"missing pool", func() error { _, err := qs.Pool(f.ctx, &types.QueryPoolRequest{PoolID: 7}); return err }, codes.NotFound},
		{"missing pair", func() error {
			_, err := qs.PoolByPair(f.ctx, &types.QueryPoolByPairRequest{BaseDenom: "gold", QuoteDenom: "bronze"})
			return err
		}, codes.NotFound},
		{"empty pair", func() error { _, err := qs.PoolByPair(f.ctx, &types.QueryPoolByPairRequest{}); return err }, codes.InvalidArgument},
		{"unset amount", func() error {
			_, err := qs.AmountOut(f.ctx, &types.QueryAmountOutRequest{PoolID: pool.ID, DenomIn: "gold"})
			return err
		}, codes.InvalidArgument},
		{"foreign denom", func() error {
			_, err := qs.AmountOut(f.ctx, &types.QueryAmountOutRequest{PoolID: pool.ID, DenomIn: "copper", AmountIn: math.NewInt(1)})
			return err
		}, codes.InvalidArgument},
		{"output above reserve", func() error {
			_, err := qs.AmountIn(f.ctx, &types.QueryAmountInRequest{PoolID: pool.ID, DenomOut: "silver", AmountOut: math.NewInt(2000)})
			return err
		}, codes.FailedPrecondition},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok)
			require.Equal(t, tc.code, st.Code())
		})
	}
}
