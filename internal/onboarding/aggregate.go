package onboarding

import (
	"strings"

	"github.com/ressido/ressido/internal/property"
	"github.com/ressido/ressido/internal/structure"
)

// Aggregate flattens a draft into the persisted property shape:
// floors are numbered by position, room occupancy is derived from bed
// flags, and the caretaker is attached with a fresh id. The property id
// stays empty; the repository assigns it (and backfills the caretaker's
// PropertyID) on insert.
//
// The transform is deterministic given the same draft and id source, so
// it can run repeatedly for previews without side effects. TenantCount
// is zero at creation; tenants are assigned after onboarding.
func Aggregate(d Details, t structure.Tree, newID structure.IDSource) property.Property {
	d = d.trimmed()

	floors := make([]property.Floor, len(t.Floors))
	roomCount := 0
	for i, f := range t.Floors {
		rooms := make([]property.Room, len(f.Rooms))
		for j, r := range f.Rooms {
			beds := make([]property.Bed, len(r.Beds))
			for k, b := range r.Beds {
				beds[k] = property.Bed{ID: b.ID, Label: b.Label, Occupied: b.Occupied}
			}
			rooms[j] = property.Room{
				ID:               r.ID,
				Label:            r.Label,
				AttachedWashroom: r.AttachedWashroom,
				IsOccupied:       r.IsOccupied(),
				Beds:             beds,
			}
		}
		floors[i] = property.Floor{
			ID:     f.ID,
			Number: i + 1,
			Label:  f.Label,
			Rooms:  rooms,
		}
		roomCount += len(f.Rooms)
	}

	return property.Property{
		Name:        d.Name,
		Address:     joinAddress(d.Address, d.City),
		Type:        d.Type,
		Photo:       d.Photo,
		RoomCount:   roomCount,
		TenantCount: 0,
		Floors:      floors,
		Caretakers: []property.Caretaker{{
			ID:      newID(),
			Name:    d.CaretakerName,
			Contact: d.CaretakerContact,
		}},
	}
}

func joinAddress(address, city string) string {
	if city == "" {
		return address
	}
	return strings.TrimSuffix(address, ",") + ", " + city
}
