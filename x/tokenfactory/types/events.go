package types

const (
	EventDenomCreated = "tokenfactory.denom_created"
	EventMint         = "tokenfactory.mint"
	EventBurn         = "tokenfactory.burn"
	EventChangeAdmin  = "tokenfactory.change_admin"

	AttrDenom    = "denom"
	AttrCreator  = "creator"
	AttrAmount   = "amount"
	AttrAccount  = "account"
	AttrNewAdmin = "new_admin"
)
