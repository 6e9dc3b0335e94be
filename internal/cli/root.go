// Package cli defines the cobra command tree for ressido.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ressido/ressido/internal/client"
	"github.com/ressido/ressido/internal/db"
	"github.com/ressido/ressido/internal/property"
)

var (
	flagFormat   string
	flagDB       string
	flagIdentity string
	flagServer   string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ressido",
		Short:         "Manage PG and hostel properties",
		Long:          "A tool to manage PG and hostel properties. Onboard a property with its floor/room/bed structure, track tenants, and browse occupancy via CLI or the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.ressido/ressido.db)")
	root.PersistentFlags().StringVar(&flagIdentity, "identity", "", "identity key namespacing the property collection")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "API server URL (default: local database)")

	root.AddCommand(
		newAddCmd(),
		newListCmd(),
		newShowCmd(),
		newSelectCmd(),
		newCurrentCmd(),
		newBlueprintCmd(),
		newTenantsCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag or default path.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		if v := os.Getenv("RESSIDO_DB"); v != "" {
			path = v
		} else {
			var err error
			path, err = db.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
	}
	return db.Open(path)
}

// newPropertyRepo opens the database and wraps it in a property repository.
func newPropertyRepo() (*property.Repository, *sql.DB, error) {
	database, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	return property.NewRepository(database), database, nil
}

// useServer reports whether commands should go through the HTTP API
// instead of the local database.
func useServer() bool {
	return getServerURL() != ""
}

// newAPIClient creates an HTTP client for the ressido API.
func newAPIClient() *client.Client {
	return client.New(getServerURL(), getIdentity())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
