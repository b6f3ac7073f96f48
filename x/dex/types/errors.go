package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidSigner               = errorsmod.Register(ModuleName, 1, "expected gov account as only signer for proposal message")
	ErrAlreadyExists               = errorsmod.Register(ModuleName, 2, "pool already exists for pair")
	ErrPoolNotFound                = errorsmod.Register(ModuleName, 3, "pool not found")
	ErrInsufficientLiquidityMinted = errorsmod.Register(ModuleName, 4, "insufficient liquidity minted")
	ErrSlippageExceeded            = errorsmod.Register(ModuleName, 5, "slippage exceeded")
	ErrDeadlineExpired             = errorsmod.Register(ModuleName, 6, "deadline expired")
	ErrOverflow                    = errorsmod.Register(ModuleName, 7, "arithmetic overflow")
	ErrInsufficientBalance         = errorsmod.Register(ModuleName, 8, "insufficient balance")
	ErrInvalidAmount               = errorsmod.Register(ModuleName, 9, "invalid amount")
	ErrInvalidPair                 = errorsmod.Register(ModuleName, 10, "invalid pair")
	ErrInvalidDenom                = errorsmod.Register(ModuleName, 11, "denom is not part of the pool")
	ErrEmptyPool                   = errorsmod.Register(ModuleName, 12, "pool has no liquidity")
	ErrInsufficientLiquidity       = errorsmod.Register(ModuleName, 13, "insufficient liquidity for requested output")
	ErrInsufficientLiquidityBurned = errorsmod.Register(ModuleName, 14, "insufficient liquidity burned")
	ErrInvalidParams               = errorsmod.Register(ModuleName, 15, "invalid params")
	ErrInvalidRequest              = errorsmod.Register(ModuleName, 16, "invalid request")
	ErrInvalidAddress              = errorsmod.Register(ModuleName, 17, "invalid address")
)
