package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xraykit/xraykit/cmd/xraykit/commands"
	"github.com/xraykit/xraykit/config"
	"github.com/xraykit/xraykit/logger"
)

var rootCmd = &cobra.Command{
	Use:   "xraykit",
	Short: "xraykit - X-ray spectroscopy reference data",
	Long: `xraykit - Lookup service for X-ray spectroscopy reference data.

xraykit stores elements, atomic shells and subshells, X-ray transitions,
and their notations and literature properties in a SQLite database, and
answers lookups by flexible identifiers: atomic numbers, symbols, names,
quantum numbers, or notation labels.

Examples:
  xraykit db migrate              # Apply schema migrations
  xraykit db seed                 # Seed the builtin reference dataset
  xraykit lookup element Fe       # Element properties
  xraykit lookup transition K-L3 --element Fe
  xraykit version                 # Show build information`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if verbosity == 0 {
			verbosity = cfg.Log.Verbosity
		}
		if err := logger.InitializeWithVerbosity(cfg.Log.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.LookupCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
