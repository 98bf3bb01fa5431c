package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xraykit/xraykit/config"
	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/ingest"
	"github.com/xraykit/xraykit/logger"
)

// DbCmd represents the db (database) command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the xraykit database",
	Long: `db — Manage xraykit database operations

Examples:
  xraykit db migrate              # Apply pending schema migrations
  xraykit db seed                 # Seed the builtin reference dataset
  xraykit db stats                # Show row counts per entity kind`,
}

var dbPathFlag string

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runDbMigrate,
}

var dbSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the builtin reference dataset",
	Long: "Populate a migrated database with the unattributed reference data:" +
		" element symbols and names, shells, subshells, transitions, and their notations.",
	RunE: runDbSeed,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	RunE:  runDbStats,
}

func init() {
	DbCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Database path (defaults to configuration)")
	DbCmd.AddCommand(dbMigrateCmd)
	DbCmd.AddCommand(dbSeedCmd)
	DbCmd.AddCommand(dbStatsCmd)
}

func runDbMigrate(cmd *cobra.Command, args []string) error {
	database, err := openDatabase(dbPathFlag)
	if err != nil {
		return err
	}
	defer database.Close()

	fmt.Println("Database schema is up to date")
	return nil
}

func runDbSeed(cmd *cobra.Command, args []string) error {
	database, err := openDatabase(dbPathFlag)
	if err != nil {
		return err
	}
	defer database.Close()

	w := ingest.NewWriter(database, logger.Logger)
	if err := ingest.WriteBuiltin(w); err != nil {
		return errors.Wrap(err, "failed to seed builtin dataset")
	}

	fmt.Println("Builtin reference dataset seeded")
	return nil
}

func runDbStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	database, err := openDatabase(dbPathFlag)
	if err != nil {
		return err
	}
	defer database.Close()

	path := dbPathFlag
	if path == "" {
		path = cfg.Database.Path
	}

	fmt.Printf("Database Statistics\n")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")
	fmt.Printf("Database Path: %s\n\n", path)

	tables := []struct {
		label string
		table string
	}{
		{"Elements", "element"},
		{"Atomic shells", "atomic_shell"},
		{"Atomic subshells", "atomic_subshell"},
		{"Transitions", "xray_transition"},
		{"Transition sets", "xray_transitionset"},
		{"Notations", "notation"},
		{"References", "ref"},
		{"Transition energies", "xray_transition_energy"},
		{"Subshell binding energies", "atomic_subshell_binding_energy"},
	}
	for _, entry := range tables {
		var n int
		if err := database.QueryRow("SELECT COUNT(*) FROM " + entry.table).Scan(&n); err != nil {
			return errors.Wrapf(err, "failed to count %s", entry.table)
		}
		fmt.Printf("%-26s %d\n", entry.label+":", n)
	}
	return nil
}
