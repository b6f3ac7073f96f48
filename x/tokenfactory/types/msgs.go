package types

import "context"

// MsgServer defines the tokenfactory message handlers.
type MsgServer interface {
	CreateDenom(context.Context, *MsgCreateDenom) (*MsgCreateDenomResponse, error)
	Mint(context.Context, *MsgMint) (*MsgMintResponse, error)
	Burn(context.Context, *MsgBurn) (*MsgBurnResponse, error)
	ChangeAdmin(context.Context, *MsgChangeAdmin) (*MsgChangeAdminResponse, error)
}

type MsgCreateDenom struct {
	Sender   string `json:"sender"`
	Subdenom string `json:"subdenom"`
}

type MsgCreateDenomResponse struct {
	NewDenom string `json:"new_denom"`
}

// MsgMint mints Amount (a coin string) to MintToAddress, or to Sender when empty.
type MsgMint struct {
	Sender        string `json:"sender"`
	Amount        string `json:"amount"`
	MintToAddress string `json:"mint_to_address"`
}

type MsgMintResponse struct{}

// MsgBurn burns Amount (a coin string) from Sender. BurnFromAddress may be
// left empty or set to Sender; any other account is rejected.
type MsgBurn struct {
	Sender          string `json:"sender"`
	Amount          string `json:"amount"`
	BurnFromAddress string `json:"burn_from_address"`
}

type MsgBurnResponse struct{}

type MsgChangeAdmin struct {
	Sender   string `json:"sender"`
	Denom    string `json:"denom"`
	NewAdmin string `json:"new_admin"`
}

type MsgChangeAdminResponse struct{}
