package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/munimji/ledger/internal/export"
)

// NewExportCommand creates the export command and its subcommands.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data to CSV or XLSX files",
	}
	cmd.AddCommand(newExportInventoryCommand(rootOpts))
	cmd.AddCommand(newExportTransactionsCommand(rootOpts))
	return cmd
}

func newExportInventoryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory <file.csv|file.xlsx>",
		Short: "Export the inventory, format chosen by file extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".csv" && ext != ".xlsx" {
				return NewExitError(ExitCommandError, fmt.Sprintf("unsupported extension %q: use .csv or .xlsx", ext))
			}

			r, cleanup, err := rootOpts.openRepo()
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := r.Items(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "load inventory", err)
			}

			if ext == ".xlsx" {
				if err := export.WriteInventoryXLSX(path, items); err != nil {
					return WrapExitError(ExitFailure, "write workbook", err)
				}
			} else {
				f, err := os.Create(path)
				if err != nil {
					return WrapExitError(ExitCommandError, "create file", err)
				}
				defer f.Close()
				if err := export.WriteInventoryCSV(f, items); err != nil {
					return WrapExitError(ExitFailure, "write csv", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d item(s) to %s\n", len(items), path)
			return nil
		},
	}
}

func newExportTransactionsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions <file.csv>",
		Short: "Export all transactions as CSV",
		Args:  cobra.ExactArgs(1),
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

			f, err := os.Create(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "create file", err)
			}
			defer f.Close()
			if err := export.WriteTransactionsCSV(f, txns); err != nil {
				return WrapExitError(ExitFailure, "write csv", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d transaction(s) to %s\n", len(txns), args[0])
			return nil
		},
	}
}
