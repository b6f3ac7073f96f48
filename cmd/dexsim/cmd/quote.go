package cmd

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gamechain/x/dex/types"
)

type quoteResult struct {
	AmountIn  math.Int `json:"amount_in"`
	AmountOut math.Int `json:"amount_out"`
}

func newQuoteCmd(v *viper.Viper) *cobra.Command {
	var exactOut bool

	cmd := &cobra.Command{
		Use:   "quote [reserve-in] [reserve-out] [amount]",
		Short: "Prices a single trade against the given reserves",
		Long: `Prices a trade against reserve-in/reserve-out.

By default amount is the exact input and the output is computed. With
--exact-out amount is the desired output and the smallest input is computed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			params, err := cfg.Params()
			if err != nil {
				return err
			}

			reserveIn, err := parseAmount("reserve-in", args[0])
			if err != nil {
				return err
			}
			reserveOut, err := parseAmount("reserve-out", args[1])
			if err != nil {
				return err
			}
			amount, err := parseAmount("amount", args[2])
			if err != nil {
				return err
			}

			res := quoteResult{AmountIn: amount, AmountOut: amount}
			if exactOut {
				res.AmountIn, err = types.GetAmountIn(amount, reserveIn, reserveOut, params.Fee())
			} else {
				res.AmountOut, err = types.GetAmountOut(amount, reserveIn, reserveOut, params.Fee())
			}
			if err != nil {
				return err
			}

			bz, err := json.Marshal(res)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}

	cmd.Flags().BoolVar(&exactOut, "exact-out", false, "treat amount as the desired output")
	return cmd
}
