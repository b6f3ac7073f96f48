package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the tokenfactory read endpoints.
type QueryServer interface {
	DenomAuthorityMetadata(context.Context, *QueryDenomAuthorityMetadataRequest) (*QueryDenomAuthorityMetadataResponse, error)
	DenomsFromCreator(context.Context, *QueryDenomsFromCreatorRequest) (*QueryDenomsFromCreatorResponse, error)
	DenomSupply(context.Context, *QueryDenomSupplyRequest) (*QueryDenomSupplyResponse, error)
}

type DenomAuthorityMetadata struct {
	Admin string `json:"admin"`
}

type QueryDenomAuthorityMetadataRequest struct {
	Denom string `json:"denom"`
}

type QueryDenomAuthorityMetadataResponse struct {
	AuthorityMetadata *DenomAuthorityMetadata `json:"authority_metadata"`
}

type QueryDenomsFromCreatorRequest struct {
	Creator string `json:"creator"`
}

type QueryDenomsFromCreatorResponse struct {
	Denoms []string `json:"denoms"`
}

type QueryDenomSupplyRequest struct {
	Denom string `json:"denom"`
}

type QueryDenomSupplyResponse struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}
