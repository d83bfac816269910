package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/munimji/ledger/internal/finance"
	"github.com/munimji/ledger/internal/report"
)

// NewReportCommand creates the report command and its subcommands.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render financial reports",
	}

	cmd.AddCommand(newPnlCommand(rootOpts))
	cmd.AddCommand(newGSTCommand(rootOpts))
	cmd.AddCommand(newStockCommand(rootOpts))
	cmd.AddCommand(newRiskCommand(rootOpts))

	return cmd
}

func newPnlCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pnl",
		Short: "Profit and loss from all transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := rootOpts.openRepo()
			if err != nil {
				return err
			}
			defer cleanup()

			txns, err := r.Transactions(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "load transactions", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderProfitLoss(finance.ComputeProfitLoss(txns)))
			return nil
		},
	}
}

func newGSTCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gst",
		Short: "GST collected, paid and net payable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := rootOpts.openRepo()
			if err != nil {
				return err
			}
			defer cleanup()

			txns, err := r.Transactions(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "load transactions", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderGST(finance.GSTSummary(txns)))
			return nil
		},
	}
}

func newStockCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stock",
		Short: "Inventory valuation at cost and at sale price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := rootOpts.openRepo()
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := r.Items(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "load inventory", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderValuation(finance.ValueInventory(items)))
			return nil
		},
	}
}

func newRiskCommand(rootOpts *RootOptions) *cobra.Command {
	var dueOn string

	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Pending cheques against cash in hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := rootOpts.openRepo()
			if err != nil {
				return err
			}
			defer cleanup()

			cheques, err := r.Cheques(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "load cheques", err)
			}
			cash := decimal.Zero
			if w, err := r.Wallet(cmd.Context()); err != nil {
				return WrapExitError(ExitFailure, "load wallet", err)
			} else if w != nil {
				cash = w.Amount
			}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderRisk(finance.AssessChequeRisk(cheques, cash, dueOn)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dueOn, "due", "", "only count cheques due on this date (as entered, e.g. 2026-09-02)")
	return cmd
}
