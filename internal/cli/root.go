// Package cli wires the ledger's repositories and reports into a cobra
// command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/munimji/ledger/internal/config"
	"github.com/munimji/ledger/internal/repo"
	"github.com/munimji/ledger/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	DB         string // overrides the configured database path
	Verbose    bool
}

// NewRootCommand creates the root command for the munim CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "munim",
		Short:         "Munim - small business ledger",
		Long:          "A bookkeeping tool for small traders: GST, cheques, inventory and billing.",
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default munim.yaml in working directory)")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "database file (overrides config)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewBillCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))

	return cmd
}

// openRepo loads configuration, opens the store and wraps it in a
// repository. The returned func closes the store.
func (o *RootOptions) openRepo() (*repo.Repo, func(), error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "load config", err)
	}

	path := cfg.Database.Path
	if o.DB != "" {
		path = o.DB
	}

	st, err := store.Open(path, store.WithLogger(o.logger(cfg.Log.Level)))
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "open database", err)
	}
	return repo.New(st), func() { st.Close() }, nil
}

func (o *RootOptions) logger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if o.Verbose {
		lvl = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
