package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "tokenfactory"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	GovModuleName = "gov"
)

// Store prefixes. They are disjoint from every x/dex prefix so both modules
// can share one store in tests.
var (
	DenomAdminKeyPrefix    = collections.NewPrefix("tf_admin")
	CreatorDenomsKeyPrefix = collections.NewPrefix("tf_creator_denoms")
)
