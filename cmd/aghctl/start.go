package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdStart)
	rootCmd.AddCommand(cmdStop)
}

var cmdStart = &cobra.Command{
	Use:   "start",
	Short: "Start the AdGuard Home daemon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		runAndPrint(cmd.Context(), ctrl.Start, "Starting AdGuard Home...")
		return nil
	},
}

var cmdStop = &cobra.Command{
	Use:   "stop",
	Short: "Stop the AdGuard Home daemon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		runAndPrint(cmd.Context(), ctrl.Stop, "Stopping AdGuard Home...")
		return nil
	},
}
