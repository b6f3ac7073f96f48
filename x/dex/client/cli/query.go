package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"gamechain/x/dex/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the dex module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		getParamsCmd(),
		getPoolCmd(),
		getQuoteCmd(),
	)
	return cmd
}

func queryParams(clientCtx client.Context) (types.Params, error) {
	bz, _, err := clientCtx.QueryStore(types.ParamsKey.Bytes(), types.StoreKey)
	if err != nil {
		return types.Params{}, fmt.Errorf("query params: %w", err)
	}
	return decodeParams(bz)
}

// decodeParams decodes stored params. An absent entry means the chain runs
// on defaults.
func decodeParams(bz []byte) (types.Params, error) {
	if len(bz) == 0 {
		return types.DefaultParams(), nil
	}
	var p types.Params
	if err := json.Unmarshal(bz, &p); err != nil {
		return types.Params{}, fmt.Errorf("decode params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return types.Params{}, types.ErrInvalidParams.Wrap(err.Error())
	}
	return p, nil
}

func queryPool(clientCtx client.Context, poolID uint64) (types.Pool, error) {
	bz, _, err := clientCtx.QueryStore(types.PoolStoreKey(poolID), types.StoreKey)
	if err != nil {
		return types.Pool{}, err
	}
	if len(bz) == 0 {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	// Stored as JSON (collections codec).
	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, err
	}
	return pool, nil
}

func printJSON(clientCtx client.Context, v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(out) + "\n")
}

func getParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			params, err := queryParams(clientCtx)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, params)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getPoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Shows a pool's reserves and share supply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id %q: %w", args[0], err)
			}
			pool, err := queryPool(clientCtx, poolID)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote [pool-id] [denom-in] [amount]",
		Short: "Quotes the output of selling amount of denom-in to a pool",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			poolID, amountIn, err := parseQuoteArgs(args[0], args[2])
			if err != nil {
				return err
			}
			pool, err := queryPool(clientCtx, poolID)
			if err != nil {
				return err
			}
			params, err := queryParams(clientCtx)
			if err != nil {
				return err
			}
			out, denomOut, err := quote(pool, params, args[1], amountIn)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, types.QueryAmountOutResponse{DenomOut: denomOut, AmountOut: out})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func parseQuoteArgs(poolArg, amountArg string) (uint64, math.Int, error) {
	poolID, err := strconv.ParseUint(poolArg, 10, 64)
	if err != nil {
		return 0, math.Int{}, fmt.Errorf("invalid pool id %q: %w", poolArg, err)
	}
	amount, ok := math.NewIntFromString(amountArg)
	if !ok {
		return 0, math.Int{}, fmt.Errorf("invalid amount %q", amountArg)
	}
	return poolID, amount, nil
}

func quote(pool types.Pool, params types.Params, denomIn string, amountIn math.Int) (math.Int, string, error) {
	reserveIn, reserveOut, denomOut, err := pool.SwapReserves(denomIn)
	if err != nil {
		return math.Int{}, "", err
	}
	out, err := types.GetAmountOut(amountIn, reserveIn, reserveOut, params.Fee())
	if err != nil {
		return math.Int{}, "", err
	}
	return out, denomOut, nil
}
