package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdStatus)
}

// `aghctl status` — asks the control binary first; if that fails, the
// process table decides.
var cmdStatus = &cobra.Command{
	Use:   "status",
	Short: "Show whether the AdGuard Home daemon is running",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		queryAndPrintStatus(cmd.Context(), controller())
		return nil
	},
}
