package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ressido/ressido/internal/occupancy"
	"github.com/ressido/ressido/internal/tenant"
)

func newBlueprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blueprint [id]",
		Short: "Show the occupancy blueprint",
		Long:  "Render the floor/room/bed occupancy view of a property. Defaults to the selected property when no id is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBlueprint,
	}
}

func runBlueprint(cmd *cobra.Command, args []string) error {
	if useServer() {
		c := newAPIClient()

		id := ""
		if len(args) > 0 {
			id = args[0]
		} else {
			cur, err := c.Current()
			if err != nil {
				return fmt.Errorf("fetching current selection: %w", err)
			}
			if cur.Property == nil {
				return fmt.Errorf("no property selected; pass an id or run select first")
			}
			id = cur.Property.ID
		}

		bp, err := c.GetBlueprint(id)
		if err != nil {
			return fmt.Errorf("fetching blueprint: %w", err)
		}
		if isJSON() {
			return printJSON(bp)
		}
		printBlueprint(bp.Floors, bp.Stats)
		return nil
	}

	repo, database, err := newPropertyRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	id := ""
	if len(args) > 0 {
		id = args[0]
	} else {
		id, err = repo.LoadSelected()
		if err != nil {
			return err
		}
		if id == "" {
			return fmt.Errorf("no property selected; pass an id or run select first")
		}
	}

	p, err := repo.Get(getIdentity(), id)
	if err != nil {
		return err
	}

	tenants, err := tenant.NewRepository(database).ListByProperty(p.ID)
	if err != nil {
		return fmt.Errorf("listing tenants: %w", err)
	}

	floors := occupancy.Snapshot(p, tenants)
	stats := occupancy.Compute(p, tenants)

	if isJSON() {
		return printJSON(map[string]interface{}{"floors": floors, "stats": stats})
	}

	printBlueprint(floors, stats)
	return nil
}
