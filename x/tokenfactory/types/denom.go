package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const FactoryDenomPrefix = "factory/"

func BuildFactoryDenom(creator, subdenom string) (string, error) {
	subdenom = strings.TrimSpace(subdenom)
	if err := ValidateSubdenom(subdenom); err != nil {
		return "", err
	}
	denom := fmt.Sprintf("%s%s/%s", FactoryDenomPrefix, creator, subdenom)
	if err := sdk.ValidateDenom(denom); err != nil {
		return "", ErrInvalidSubdenom.Wrap(err.Error())
	}
	return denom, nil
}

// ParseFactoryDenom splits a factory denom into its creator and subdenom.
func ParseFactoryDenom(denom string) (creator, subdenom string, err error) {
	rest, ok := strings.CutPrefix(denom, FactoryDenomPrefix)
	if !ok {
		return "", "", ErrUnknownDenom.Wrapf("%s is not a factory denom", denom)
	}
	creator, subdenom, ok = strings.Cut(rest, "/")
	if !ok || creator == "" {
		return "", "", ErrUnknownDenom.Wrapf("malformed factory denom %s", denom)
	}
	if err := ValidateSubdenom(subdenom); err != nil {
		return "", "", err
	}
	return creator, subdenom, nil
}

func ValidateSubdenom(subdenom string) error {
	if subdenom == "" {
		return ErrInvalidSubdenom
	}
	// No path separators; sdk.ValidateDenom enforces length and charset once embedded.
	if strings.Contains(subdenom, "/") {
		return ErrInvalidSubdenom
	}
	return nil
}
