package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/munimji/ledger/internal/export"
)

// NewImportCommand creates the import command and its subcommands.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import data from CSV or XLSX files",
	}
	cmd.AddCommand(newImportInventoryCommand(rootOpts))
	cmd.AddCommand(newImportTransactionsCommand(rootOpts))
	return cmd
}

func newImportInventoryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory <file.csv|file.xlsx>",
		Short: "Import inventory rows, format chosen by file extension",
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

			var n int
			if ext == ".xlsx" {
				n, err = export.ReadInventoryXLSX(cmd.Context(), r, path)
			} else {
				f, openErr := os.Open(path)
				if openErr != nil {
					return WrapExitError(ExitCommandError, "open file", openErr)
				}
				defer f.Close()
				n, err = export.ReadInventoryCSV(cmd.Context(), r, f)
			}
			if err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("import stopped after %d item(s)", n), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d item(s) from %s\n", n, path)
			return nil
		},
	}
}

func newImportTransactionsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions <file.csv>",
		Short: "Import transactions from CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := rootOpts.openRepo()
			if err != nil {
				return err
			}
			defer cleanup()

			f, err := os.Open(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "open file", err)
			}
			defer f.Close()

			n, err := export.ReadTransactionsCSV(cmd.Context(), r, f)
			if err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("import stopped after %d transaction(s)", n), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d transaction(s) from %s\n", n, args[0])
			return nil
		},
	}
}
