package keeper

import (
	"bytes"
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"gamechain/x/dex/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (s msgServer) signer(addr string) (sdk.AccAddress, error) {
	bz, err := s.addressCodec.StringToBytes(addr)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidAddress, "sender %q", addr)
	}
	return sdk.AccAddress(bz), nil
}

func (s msgServer) CreateExchange(ctx context.Context, msg *types.MsgCreateExchange) (*types.MsgCreateExchangeResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := s.signer(msg.Sender)
	if err != nil {
		return nil, err
	}

	pool, err := s.Keeper.CreateExchange(ctx, sender, msg.BaseDenom, msg.QuoteDenom)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateExchangeResponse{PoolID: pool.ID, LPDenom: pool.LPDenom}, nil
}

func (s msgServer) AddLiquidity(ctx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := s.signer(msg.Sender)
	if err != nil {
		return nil, err
	}

	shares, quote, err := s.Keeper.AddLiquidity(ctx, sender, msg.PoolID, msg.BaseAmount, msg.MaxQuoteAmount, msg.MinLiquidity, msg.Deadline)
	if err != nil {
		return nil, err
	}
	return &types.MsgAddLiquidityResponse{Shares: shares, QuoteAmount: quote}, nil
}

func (s msgServer) RemoveLiquidity(ctx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := s.signer(msg.Sender)
	if err != nil {
		return nil, err
	}

	base, quote, err := s.Keeper.RemoveLiquidity(ctx, sender, msg.PoolID, msg.Shares, msg.MinBase, msg.MinQuote, msg.Deadline)
	if err != nil {
		return nil, err
	}
	return &types.MsgRemoveLiquidityResponse{BaseAmount: base, QuoteAmount: quote}, nil
}

func (s msgServer) Swap(ctx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := s.signer(msg.Sender)
	if err != nil {
		return nil, err
	}

	out, err := s.Keeper.Swap(ctx, sender, msg.PoolID, msg.DenomIn, msg.AmountIn, msg.MinAmountOut, msg.Deadline)
	if err != nil {
		return nil, err
	}
	pool, err := s.GetPool(ctx, msg.PoolID)
	if err != nil {
		return nil, err
	}
	_, _, denomOut, err := pool.SwapReserves(msg.DenomIn)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapResponse{DenomOut: denomOut, AmountOut: out}, nil
}

func (s msgServer) UpdateParams(ctx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidSigner, "empty request")
	}

	signer, err := s.addressCodec.StringToBytes(req.Authority)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidSigner, "invalid authority address")
	}
	if !bytes.Equal(signer, s.GetAuthority()) {
		return nil, errorsmod.Wrap(types.ErrInvalidSigner, "unauthorized")
	}

	if err := s.SetParams(ctx, req.Params); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventParamsUpdated,
			sdk.NewAttribute(types.AttrFeeNumerator, strconv.FormatUint(req.Params.FeeNumerator, 10)),
			sdk.NewAttribute(types.AttrFeeDenom, strconv.FormatUint(req.Params.FeeDenominator, 10)),
		),
	)
	s.Logger(ctx).Info("params updated", "fee_numerator", req.Params.FeeNumerator, "fee_denominator", req.Params.FeeDenominator)
	return &types.MsgUpdateParamsResponse{}, nil
}
