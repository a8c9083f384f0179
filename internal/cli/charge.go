package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"seatbill/internal/billing"
	"seatbill/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ChargeInput is the file format read by the charge command
type ChargeInput struct {
	Subscription *models.Subscription `json:"subscription"`
	Users        []models.User        `json:"users"`
}

func newChargeCmd() *cobra.Command {
	var (
		month   string
		input   string
		asJSON  bool
		details bool
	)

	cmd := &cobra.Command{
		Use:   "charge",
		Short: "Compute the charge for one month",
		Example: `  chargectl charge --month 2022-04 --input seats.json
  cat seats.json | chargectl charge --month 2022-04 --input - --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readChargeInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}

			m, err := billing.ParseMonth(month)
			if err != nil {
				return err
			}
			statement, err := billing.BuildStatement(m, in.Subscription, in.Users)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(statement)
			}
			printStatement(out, statement, details)
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "billing month (YYYY-MM)")
	cmd.Flags().StringVarP(&input, "input", "i", "-", "JSON file with subscription and users, - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the statement as JSON")
	cmd.Flags().BoolVarP(&details, "details", "d", false, "list every billed user")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func readChargeInput(stdin io.Reader, path string) (*ChargeInput, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var in ChargeInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return &in, nil
}

func printStatement(w io.Writer, st *billing.Statement, details bool) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	bold.Fprintf(w, "Month %s (%s to %s)\n", st.Month, st.Month.Start(), st.Month.End())
	if details && len(st.Lines) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "USER\tFROM\tTO\tDAYS\tCENTS")
		for _, l := range st.Lines {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", l.Name, l.From, l.To, l.ActiveDays, l.AmountCents)
		}
		tw.Flush()
	}
	fmt.Fprintf(w, "Billed users: %d\n", st.BilledUsers())
	green.Fprintf(w, "Total: %d cents\n", st.TotalCents)
}
