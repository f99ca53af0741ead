// Package cli implements the command-line interface for pocketcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/santanusen/pocketcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pocketcube",
	Short: "Pocket cube optimal solver",
	Long: `Pocket cube optimal solver - model a 2x2x2 cube, scramble it, and find
shortest solutions by breadth-first search over the reachable state graph.

Solutions are provably minimal in the F/F'/L/L'/D/D' move basis. Solver
runs can be recorded to a local SQLite history.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.pocketcube/pocketcube.db)")
}

// openDB opens the solve-history database from the --db flag or the
// default location and applies pending migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if dbPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(dbPath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
