package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the selected property",
		Args:  cobra.NoArgs,
		RunE:  runCurrent,
	}
}

func runCurrent(cmd *cobra.Command, args []string) error {
	if useServer() {
		cur, err := newAPIClient().Current()
		if err != nil {
			return fmt.Errorf("fetching current selection: %w", err)
		}
		if isJSON() {
			return printJSON(cur)
		}
		if cur.Property == nil {
			fmt.Println("No property selected.")
			return nil
		}
		if cur.Loading {
			fmt.Println("(selection in progress)")
		}
		printPropertySummary(cur.Property)
		return nil
	}

	repo, database, err := newPropertyRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	id, err := repo.LoadSelected()
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Println("No property selected.")
		return nil
	}

	p, err := repo.Get(getIdentity(), id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(p)
	}

	printPropertySummary(p)
	return nil
}
