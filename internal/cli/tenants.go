package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ressido/ressido/internal/tenant"
)

func newTenantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "Manage a property's tenants",
	}

	cmd.AddCommand(newTenantsListCmd(), newTenantsAddCmd())

	return cmd
}

func newTenantsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <property-id>",
		Short: "List a property's tenants",
		Args:  cobra.ExactArgs(1),
		RunE:  runTenantsList,
	}
}

func runTenantsList(cmd *cobra.Command, args []string) error {
	propertyID := args[0]

	if useServer() {
		tenants, err := newAPIClient().ListTenants(propertyID)
		if err != nil {
			return fmt.Errorf("listing tenants: %w", err)
		}
		if isJSON() {
			return printJSON(tenants)
		}
		return printTenantTable(tenants)
	}

	repo, database, err := newPropertyRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	// Resolve through the property repo so an unknown id fails loudly
	// instead of returning an empty list.
	p, err := repo.Get(getIdentity(), propertyID)
	if err != nil {
		return err
	}

	tenants, err := tenant.NewRepository(database).ListByProperty(p.ID)
	if err != nil {
		return fmt.Errorf("listing tenants: %w", err)
	}

	if isJSON() {
		return printJSON(tenants)
	}

	return printTenantTable(tenants)
}

func newTenantsAddCmd() *cobra.Command {
	var (
		name    string
		age     int
		gender  string
		contact string
		roomID  string
		bedID   string
		moveIn  string
	)

	cmd := &cobra.Command{
		Use:   "add <property-id>",
		Short: "Register a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &tenant.Tenant{
				PropertyID: args[0],
				Name:       name,
				Age:        age,
				Gender:     tenant.Gender(gender),
				Contact:    contact,
				RoomID:     roomID,
				BedID:      bedID,
				MoveInDate: moveIn,
			}
			return runTenantsAdd(t)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "tenant name")
	cmd.Flags().IntVar(&age, "age", 0, "tenant age")
	cmd.Flags().StringVar(&gender, "gender", "", "gender (male|female|other)")
	cmd.Flags().StringVar(&contact, "contact", "", "phone number")
	cmd.Flags().StringVar(&roomID, "room", "", "assigned room id")
	cmd.Flags().StringVar(&bedID, "bed", "", "assigned bed id")
	cmd.Flags().StringVar(&moveIn, "move-in", time.Now().Format("2006-01-02"), "move-in date (YYYY-MM-DD)")

	return cmd
}

func runTenantsAdd(t *tenant.Tenant) error {
	if useServer() {
		saved, err := newAPIClient().AddTenant(t.PropertyID, t)
		if err != nil {
			return fmt.Errorf("adding tenant: %w", err)
		}
		if isJSON() {
			return printJSON(saved)
		}
		fmt.Printf("Tenant %s added (%s)\n", saved.Name, saved.ID)
		return nil
	}

	repo, database, err := newPropertyRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	if _, err := repo.Get(getIdentity(), t.PropertyID); err != nil {
		return err
	}

	saved, err := tenant.NewRepository(database).Add(t)
	if err != nil {
		return fmt.Errorf("adding tenant: %w", err)
	}

	if isJSON() {
		return printJSON(saved)
	}

	fmt.Printf("Tenant %s added (%s)\n", saved.Name, saved.ID)
	return nil
}
