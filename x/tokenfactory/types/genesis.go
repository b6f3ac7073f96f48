package types

import (
	"fmt"
)

// DenomAuthority records the admin of a factory denom.
type DenomAuthority struct {
	Denom string `json:"denom"`
	Admin string `json:"admin"`
}

// CreatorDenom indexes a factory denom under the account that created it.
type CreatorDenom struct {
	Creator string `json:"creator"`
	Denom   string `json:"denom"`
}

type GenesisState struct {
	DenomAuthorities []DenomAuthority `json:"denom_authorities"`
	CreatorDenoms    []CreatorDenom   `json:"creator_denoms"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		DenomAuthorities: []DenomAuthority{},
		CreatorDenoms:    []CreatorDenom{},
	}
}

func (gs GenesisState) Validate() error {
	// Address validation happens when initializing.
	seenDenoms := make(map[string]struct{}, len(gs.DenomAuthorities))
	for _, da := range gs.DenomAuthorities {
		if da.Denom == "" {
			return fmt.Errorf("denom_authorities: denom required")
		}
		if da.Admin == "" {
			return fmt.Errorf("denom_authorities: admin required")
		}
		if _, _, err := ParseFactoryDenom(da.Denom); err != nil {
			return fmt.Errorf("denom_authorities: %w", err)
		}
		if _, ok := seenDenoms[da.Denom]; ok {
			return fmt.Errorf("denom_authorities: duplicate denom %q", da.Denom)
		}
		seenDenoms[da.Denom] = struct{}{}
	}

	for _, cd := range gs.CreatorDenoms {
		if cd.Creator == "" {
			return fmt.Errorf("creator_denoms: creator required")
		}
		if cd.Denom == "" {
			return fmt.Errorf("creator_denoms: denom required")
		}
		if _, ok := seenDenoms[cd.Denom]; !ok {
			return fmt.Errorf("creator_denoms: %q has no admin", cd.Denom)
		}
	}

	return nil
}
