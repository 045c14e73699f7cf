// Package cli defines the cobra command tree for uninest.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uninest/uninest/internal/db"
)

var flagDB string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "uninest",
		Short:         "Student housing marketplace server",
		Long:          "Run the uninest API server: property listings, bookmarks, location-match alerts, and subscription checkout.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.uninest/uninest.db)")

	root.AddCommand(
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag, the UNINEST_DB
// environment variable, or the default path, in that order.
func openDB(envPath string) (*sql.DB, error) {
	path := flagDB
	if path == "" {
		path = envPath
	}
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
