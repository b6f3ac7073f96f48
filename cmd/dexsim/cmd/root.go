package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the dexsim command tree. Settings resolve from flags,
// then DEXSIM_* environment variables, then the --config file.
func NewRootCmd() *cobra.Command {
	v := newViper()

	rootCmd := &cobra.Command{
		Use:           "dexsim",
		Short:         "Offline pricing and trade simulation for dex pools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (toml, yaml or json)")
	rootCmd.PersistentFlags().Uint64("fee-numerator", 0, "swap fee numerator")
	rootCmd.PersistentFlags().Uint64("fee-denominator", 0, "swap fee denominator")

	rootCmd.AddCommand(
		newQuoteCmd(v),
		newSimulateCmd(v),
	)
	return rootCmd
}
