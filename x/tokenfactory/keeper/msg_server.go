package keeper

import (
	"bytes"
	"context"
	"errors"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gamechain/x/tokenfactory/types"
)

type msgServer struct {
	k Keeper
}

var _ types.MsgServer = msgServer{}

func NewMsgServerImpl(k Keeper) types.MsgServer {
	return msgServer{k: k}
}

func (m msgServer) CreateDenom(ctx context.Context, msg *types.MsgCreateDenom) (*types.MsgCreateDenomResponse, error) {
	if msg == nil || strings.TrimSpace(msg.Sender) == "" {
		return nil, status.Error(codes.InvalidArgument, "sender required")
	}
	creatorBytes, err := m.k.addressCodec.StringToBytes(msg.Sender)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid sender address")
	}
	creatorStr, _ := m.k.addressCodec.BytesToString(creatorBytes)

	newDenom, err := m.k.createDenom(ctx, creatorStr, msg.Subdenom, "")
	switch {
	case errors.Is(err, types.ErrInvalidSubdenom):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, types.ErrDenomAlreadyExists):
		return nil, status.Error(codes.AlreadyExists, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.MsgCreateDenomResponse{NewDenom: newDenom}, nil
}

// adminCoin parses amount and checks that sender administers its denom.
func (m msgServer) adminCoin(ctx context.Context, sender, amount string) (sdk.Coin, error) {
	coin, err := sdk.ParseCoinNormalized(amount)
	if err != nil {
		return sdk.Coin{}, status.Error(codes.InvalidArgument, "invalid amount")
	}
	if !coin.IsPositive() {
		return sdk.Coin{}, status.Error(codes.InvalidArgument, "amount must be > 0")
	}

	admin, err := m.k.GetAdmin(ctx, coin.Denom)
	if err != nil {
		return sdk.Coin{}, status.Error(codes.NotFound, err.Error())
	}
	if admin != sender {
		return sdk.Coin{}, status.Error(codes.PermissionDenied, types.ErrUnauthorized.Error())
	}
	return coin, nil
}

func (m msgServer) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	if msg == nil || strings.TrimSpace(msg.Sender) == "" {
		return nil, status.Error(codes.InvalidArgument, "sender required")
	}
	coin, err := m.adminCoin(ctx, msg.Sender, msg.Amount)
	if err != nil {
		return nil, err
	}

	mintTo := msg.MintToAddress
	if strings.TrimSpace(mintTo) == "" {
		mintTo = msg.Sender
	}
	toAddrBytes, err := m.k.addressCodec.StringToBytes(mintTo)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid mint_to_address")
	}

	if err := m.k.mint(ctx, coin, sdk.AccAddress(toAddrBytes)); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.MsgMintResponse{}, nil
}

func (m msgServer) Burn(ctx context.Context, msg *types.MsgBurn) (*types.MsgBurnResponse, error) {
	if msg == nil || strings.TrimSpace(msg.Sender) == "" {
		return nil, status.Error(codes.InvalidArgument, "sender required")
	}
	coin, err := m.adminCoin(ctx, msg.Sender, msg.Amount)
	if err != nil {
		return nil, err
	}

	senderBytes, err := m.k.addressCodec.StringToBytes(msg.Sender)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid sender address")
	}
	// Admins burn only their own holdings. Balances of other accounts,
	// module accounts holding pool reserves included, are out of reach.
	if burnFrom := strings.TrimSpace(msg.BurnFromAddress); burnFrom != "" {
		fromAddrBytes, err := m.k.addressCodec.StringToBytes(burnFrom)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid burn_from_address")
		}
		if !bytes.Equal(fromAddrBytes, senderBytes) {
			return nil, status.Error(codes.PermissionDenied, types.ErrUnauthorized.Wrap("burn_from_address must be the sender").Error())
		}
	}

	if err := m.k.burn(ctx, coin, sdk.AccAddress(senderBytes)); err != nil {
		if errors.Is(err, types.ErrInsufficientBalance) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.MsgBurnResponse{}, nil
}

func (m msgServer) ChangeAdmin(ctx context.Context, msg *types.MsgChangeAdmin) (*types.MsgChangeAdminResponse, error) {
	if msg == nil || strings.TrimSpace(msg.Sender) == "" {
		return nil, status.Error(codes.InvalidArgument, "sender required")
	}
	if strings.TrimSpace(msg.Denom) == "" {
		return nil, status.Error(codes.InvalidArgument, "denom required")
	}
	if strings.TrimSpace(msg.NewAdmin) == "" {
		return nil, status.Error(codes.InvalidArgument, "new_admin required")
	}

	admin, err := m.k.GetAdmin(ctx, msg.Denom)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	if admin != msg.Sender {
		return nil, status.Error(codes.PermissionDenied, types.ErrUnauthorized.Error())
	}

	if _, err := m.k.addressCodec.StringToBytes(msg.NewAdmin); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid new_admin")
	}
	if err := m.k.DenomAdmin.Set(ctx, msg.Denom, msg.NewAdmin); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventChangeAdmin,
			sdk.NewAttribute(types.AttrDenom, msg.Denom),
			sdk.NewAttribute(types.AttrNewAdmin, msg.NewAdmin),
		),
	)
	return &types.MsgChangeAdminResponse{}, nil
}
