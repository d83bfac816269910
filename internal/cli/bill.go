package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/report"
)

// NewBillCommand creates the bill command and its subcommands.
func NewBillCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Inspect bills",
	}
	cmd.AddCommand(newBillShowCommand(rootOpts))
	return cmd
}

func newBillShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a bill as a receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("bad bill id %q", args[0]), err)
			}

			r, cleanup, err := rootOpts.openRepo()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			bill, err := r.BillByID(ctx, id)
			if err != nil {
				return WrapExitError(ExitFailure, "load bill", err)
			}
			if bill == nil {
				return NewExitError(ExitFailure, fmt.Sprintf("bill %d not found", id))
			}
			items, err := r.BillItems(ctx, id)
			if err != nil {
				return WrapExitError(ExitFailure, "load bill items", err)
			}

			party := bill.VendorName
			if bill.Type == ledger.BillSale && bill.CustomerID != 0 {
				c, err := r.CustomerByID(ctx, bill.CustomerID)
				if err != nil {
					return WrapExitError(ExitFailure, "load customer", err)
				}
				if c != nil {
					party = c.Name
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), report.RenderReceipt(*bill, items, party))
			return nil
		},
	}
}
