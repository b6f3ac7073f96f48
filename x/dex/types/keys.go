package types

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "dex"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	GovModuleName = "gov"

	// LPSubdenomPrefix prefixes the ledger subdenom of every pool's share token.
	LPSubdenomPrefix = "pool"
)

var (
	ParamsKey          = collections.NewPrefix("p_dex")
	PoolSeqKey         = collections.NewPrefix("seq_dex_pool")
	PoolKeyPrefix      = collections.NewPrefix("pool_dex")
	PairIndexKeyPrefix = collections.NewPrefix("pair_dex")
)

// PoolStoreKey returns the raw store key of a pool as laid out by the Pools collection.
func PoolStoreKey(poolID uint64) []byte {
	return append(append([]byte{}, PoolKeyPrefix.Bytes()...), sdk.Uint64ToBigEndian(poolID)...)
}
