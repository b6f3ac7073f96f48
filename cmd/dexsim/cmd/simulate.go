package cmd

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gamechain/x/dex/types"
)

type tradeResult struct {
	Step         int      `json:"step"`
	DenomIn      string   `json:"denom_in"`
	AmountIn     math.Int `json:"amount_in"`
	DenomOut     string   `json:"denom_out"`
	AmountOut    math.Int `json:"amount_out"`
	BaseReserve  math.Int `json:"base_reserve"`
	QuoteReserve math.Int `json:"quote_reserve"`
}

func newSimulateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Replays the trades of the config file against its pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			params, err := cfg.Params()
			if err != nil {
				return err
			}
			pool, err := cfg.Pool.BuildPool()
			if err != nil {
				return err
			}

			logger := log.NewLogger(cmd.ErrOrStderr()).With("module", "dexsim")
			results, err := simulate(pool, params, cfg.Trades)
			for _, r := range results {
				bz, mErr := json.Marshal(r)
				if mErr != nil {
					return mErr
				}
				if _, wErr := fmt.Fprintln(cmd.OutOrStdout(), string(bz)); wErr != nil {
					return wErr
				}
			}
			if err != nil {
				logger.Error("simulation stopped", "step", len(results)+1, "err", err)
				return err
			}
			logger.Info("simulation finished", "trades", len(results))
			return nil
		},
	}
}

// simulate applies trades in order and stops at the first failing one,
// returning the results of the trades before it.
func simulate(pool types.Pool, params types.Params, trades []TradeConfig) ([]tradeResult, error) {
	results := make([]tradeResult, 0, len(trades))
	for i, trade := range trades {
		amountIn, err := parseAmount(fmt.Sprintf("trades[%d].amount", i), trade.Amount)
		if err != nil {
			return results, err
		}
		reserveIn, reserveOut, denomOut, err := pool.SwapReserves(trade.DenomIn)
		if err != nil {
			return results, err
		}
		out, err := types.GetAmountOut(amountIn, reserveIn, reserveOut, params.Fee())
		if err != nil {
			return results, err
		}
		if out.IsZero() {
			return results, types.ErrSlippageExceeded.Wrapf("trade %d buys nothing", i)
		}
		if pool, err = pool.ApplySwap(trade.DenomIn, amountIn, out); err != nil {
			return results, err
		}

		results = append(results, tradeResult{
			Step:         i + 1,
			DenomIn:      trade.DenomIn,
			AmountIn:     amountIn,
			DenomOut:     denomOut,
			AmountOut:    out,
			BaseReserve:  pool.BaseReserve,
			QuoteReserve: pool.QuoteReserve,
		})
	}
	return results, nil
}
