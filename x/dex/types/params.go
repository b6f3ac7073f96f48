package types

import (
	"fmt"
)

const (
	DefaultFeeNumerator   uint64 = 3
	DefaultFeeDenominator uint64 = 1000
)

// Params defines the exchange configuration. The swap fee is
// FeeNumerator/FeeDenominator of every input amount and stays in the pool.
type Params struct {
	FeeNumerator   uint64 `json:"fee_numerator" yaml:"fee_numerator"`
	FeeDenominator uint64 `json:"fee_denominator" yaml:"fee_denominator"`
}

// DefaultParams returns a 0.3% swap fee.
func DefaultParams() Params {
	return Params{
		FeeNumerator:   DefaultFeeNumerator,
		FeeDenominator: DefaultFeeDenominator,
	}
}

// Validate checks param bounds.
func (p Params) Validate() error {
	if p.FeeDenominator == 0 {
		return fmt.Errorf("fee_denominator must be positive")
	}
	if p.FeeNumerator >= p.FeeDenominator {
		return fmt.Errorf("fee_numerator must be lower than fee_denominator")
	}
	return nil
}

// Fee returns the swap fee carried by the params.
func (p Params) Fee() Fee {
	return Fee{Numerator: p.FeeNumerator, Denominator: p.FeeDenominator}
}
