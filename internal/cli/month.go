package cli

import (
	"fmt"

	"seatbill/internal/billing"

	"github.com/spf13/cobra"
)

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month YYYY-MM",
		Short: "Show the date range and length of a billing month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := billing.ParseMonth(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s to %s, %d days\n", m, m.Start(), m.End(), m.Days())
			return nil
		},
	}
}
