package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ressido/ressido/internal/occupancy"
	"github.com/ressido/ressido/internal/property"
	"github.com/ressido/ressido/internal/tenant"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPropertySummary prints a single property summary in text format.
func printPropertySummary(p *property.Property) {
	fmt.Printf("Property %s\n", p.ID)
	fmt.Printf("  Name:     %s\n", p.Name)
	fmt.Printf("  Address:  %s\n", p.Address)
	fmt.Printf("  Type:     %s\n", p.Type.Label())
	fmt.Printf("  Rooms:    %d\n", p.RoomCount)
	fmt.Printf("  Tenants:  %d\n", p.TenantCount)
	if len(p.Floors) > 0 {
		fmt.Printf("  Floors:   %d\n", len(p.Floors))
	}
	for _, c := range p.Caretakers {
		fmt.Printf("  Caretaker: %s (%s)\n", c.Name, c.Contact)
	}
}

// printPropertyTable prints a list of properties as a formatted table.
func printPropertyTable(props []*property.Property) error {
	if len(props) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tADDRESS\tTYPE\tROOMS\tTENANTS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t-------\t----\t-----\t-------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range props {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			truncate(p.ID, 8), truncate(p.Name, 24), truncate(p.Address, 32),
			p.Type.Label(), p.RoomCount, p.TenantCount); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d properties\n", len(props))
	return nil
}

// printTenantTable prints tenants as a formatted table.
func printTenantTable(tenants []*tenant.Tenant) error {
	if len(tenants) == 0 {
		fmt.Println("No tenants found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tAGE\tCONTACT\tROOM\tBED\tMOVE-IN"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, t := range tenants {
		room := t.RoomID
		if room == "" {
			room = "-"
		}
		bed := t.BedID
		if bed == "" {
			bed = "-"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			truncate(t.ID, 8), truncate(t.Name, 24), t.Age, t.Contact, room, bed, t.MoveInDate); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d tenants\n", len(tenants))
	return nil
}

// printBlueprint prints the per-floor occupancy view in text format.
func printBlueprint(floors []occupancy.FloorPlan, stats occupancy.Stats) {
	for _, f := range floors {
		label := f.Label
		if label == "" {
			label = fmt.Sprintf("Floor %d", f.Number)
		}
		fmt.Printf("%s\n", label)
		if len(f.Rooms) == 0 {
			fmt.Println("  (no rooms)")
			continue
		}
		for _, r := range f.Rooms {
			marks := make([]string, len(r.Beds))
			for i, b := range r.Beds {
				if b.Status == occupancy.Occupied {
					if b.Tenant != "" {
						marks[i] = "[x " + b.Tenant + "]"
					} else {
						marks[i] = "[x]"
					}
				} else {
					marks[i] = "[ ]"
				}
			}
			washroom := ""
			if r.AttachedWashroom {
				washroom = " +washroom"
			}
			fmt.Printf("  Room %s%s  %s\n", r.Label, washroom, strings.Join(marks, " "))
		}
	}

	fmt.Printf("\nBeds: %d/%d occupied (%.0f%%)  Rooms available: %d  Tenants: %d\n",
		stats.OccupiedBeds, stats.TotalBeds, stats.OccupancyPct, stats.AvailableRooms, stats.Tenants)
}

// truncate shortens a string to max characters with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
