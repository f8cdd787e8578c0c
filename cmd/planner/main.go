// Command planner runs the packing engine and inspects the view route table
// without a server, database, or storage backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "Offline tools for the vehicle load planner",
		Long: `Planner packs a product catalog into a vehicle locally and prints
the browser application's route table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		packCmd(),
		routesCmd(),
	)

	return rootCmd
}
