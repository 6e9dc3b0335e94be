package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List properties",
		Long:  "List the properties in this identity's collection.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	if useServer() {
		props, err := newAPIClient().ListProperties()
		if err != nil {
			return fmt.Errorf("listing properties: %w", err)
		}
		if isJSON() {
			return printJSON(props)
		}
		return printPropertyTable(props)
	}

	repo, database, err := newPropertyRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	props, err := repo.List(getIdentity())
	if err != nil {
		return fmt.Errorf("listing properties: %w", err)
	}

	if isJSON() {
		return printJSON(props)
	}

	return printPropertyTable(props)
}
