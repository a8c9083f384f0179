// Package cli implements chargectl, an offline tool for computing seat charges from a JSON file.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the chargectl command tree
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chargectl",
		Short: "Compute prorated per-seat subscription charges",
		Long: `chargectl computes the monthly charge of a seat subscription from a JSON
description of the plan and its users, without a database or server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newChargeCmd())
	rootCmd.AddCommand(newMonthCmd())
	return rootCmd
}
