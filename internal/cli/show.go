package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show property details",
		Long:  "Show full details for a property, including its floors and caretakers.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	if useServer() {
		p, err := newAPIClient().GetProperty(id)
		if err != nil {
			return err
		}
		if isJSON() {
			return printJSON(p)
		}
		printPropertySummary(p)
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

	if isJSON() {
		return printJSON(p)
	}

	printPropertySummary(p)
	return nil
}
