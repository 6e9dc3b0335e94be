package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Select the working property",
		Long:  "Select the property that subsequent commands operate on by default. The selection persists across invocations.",
		Args:  cobra.ExactArgs(1),
		RunE:  runSelect,
	}
}

func runSelect(cmd *cobra.Command, args []string) error {
	id := args[0]

	if useServer() {
		if err := newAPIClient().SelectProperty(id); err != nil {
			return fmt.Errorf("selecting property: %w", err)
		}
		if !isJSON() {
			fmt.Printf("Selecting property %s...\n", id)
		}
		return nil
	}

	repo, database, err := newPropertyRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	p, err := repo.Get(getIdentity(), id)
	if err != nil {
		return err
	}

	if err := repo.SaveSelected(p.ID); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(p)
	}

	fmt.Printf("Selected %s (%s)\n", p.Name, p.ID)
	return nil
}
