package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ressido/ressido/internal/logging"
	"github.com/ressido/ressido/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Start the REST API server backed by the local database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&dev, "dev", false, "developer-friendly text logs")

	return cmd
}

func runServe(port int, dev bool) error {
	logging.Setup(dev)

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	server := web.NewServer(database)

	fmt.Printf("Listening on http://localhost:%d\n", port)
	return server.ListenAndServe(port)
}
