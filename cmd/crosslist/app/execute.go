package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/sellerstack/crosslist/cmd/crosslist/cmd"
)

// Execute runs the crosslist CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "crosslist",
		Short:   "Storefront and marketplace catalog reconciliation",
		Version: a.version,
		Long: `Crosslist keeps a storefront catalog in sync with a marketplace
CSV export. It fetches both catalogs, matches items by name identity,
and publishes active marketplace listings the storefront is missing.`,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			verbose := mustGetBool(c, "verbose")
			quiet := mustGetBool(c, "quiet")
			noColor := mustGetBool(c, "no-color")
			format := mustGetString(c, "output")
			level := mustGetString(c, "log-level")

			a.config.UpdateFromFlags(verbose, quiet, noColor, format, level)

			logger := NewLogger(a.config)
			a.logger = &logger
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false,
		"verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false,
		"minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false,
		"disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Output, "output", "o", "",
		"output format: table, json, yaml, wide")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("crosslist {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(cmd.NewFetchCommand(a))
	rootCmd.AddCommand(cmd.NewScanCommand(a))
	rootCmd.AddCommand(cmd.NewReconcileCommand(a))
	rootCmd.AddCommand(cmd.NewPublishCommand(a))
	rootCmd.AddCommand(cmd.NewVersionCommand(a))
}

// ExitOnError prints an error and exits with status 1. Meant for
// top-level error handling in main.go.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag or panics if the flag does not
// exist. Only for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag or panics if the flag does not
// exist. Only for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
