package types

import (
	"fmt"
)

// GenesisState is the exchange's exported state.
type GenesisState struct {
	Params     Params `json:"params"`
	Pools      []Pool `json:"pools"`
	NextPoolID uint64 `json:"next_pool_id"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Pools:  []Pool{},
	}
}

// Validate checks params, per-pool invariants, and id and pair uniqueness.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("params: %w", err)
	}

	seenIDs := make(map[uint64]struct{}, len(gs.Pools))
	seenPairs := make(map[[2]string]struct{}, len(gs.Pools))
	for _, p := range gs.Pools {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("pools: %w", err)
		}
		if _, ok := seenIDs[p.ID]; ok {
			return fmt.Errorf("pools: duplicate id %d", p.ID)
		}
		seenIDs[p.ID] = struct{}{}

		pair := [2]string{p.BaseDenom, p.QuoteDenom}
		reversed := [2]string{p.QuoteDenom, p.BaseDenom}
		if _, ok := seenPairs[pair]; ok {
			return fmt.Errorf("pools: duplicate pair %s/%s", p.BaseDenom, p.QuoteDenom)
		}
		if _, ok := seenPairs[reversed]; ok {
			return fmt.Errorf("pools: duplicate pair %s/%s", p.BaseDenom, p.QuoteDenom)
		}
		seenPairs[pair] = struct{}{}

		if p.ID >= gs.NextPoolID {
			return fmt.Errorf("pools: id %d not below next_pool_id %d", p.ID, gs.NextPoolID)
		}
	}
	return nil
}
