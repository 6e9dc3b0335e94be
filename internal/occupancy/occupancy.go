// Package occupancy derives blueprint views and dashboard statistics
// from a persisted property and its tenants.
package occupancy

import (
	"github.com/ressido/ressido/internal/property"
	"github.com/ressido/ressido/internal/tenant"
)

// BedStatus is the display state of a bed in the blueprint.
type BedStatus string

const (
	Available BedStatus = "available"
	Occupied  BedStatus = "occupied"
)

// BedPlan is one bed cell in the blueprint, with the occupying tenant's
// name when an assignment exists.
type BedPlan struct {
	ID     string    `json:"id"`
	Label  string    `json:"label"`
	Status BedStatus `json:"status"`
	Tenant string    `json:"tenant,omitempty"`
}

// RoomPlan is one room in the blueprint.
type RoomPlan struct {
	ID               string    `json:"id"`
	Label            string    `json:"label"`
	AttachedWashroom bool      `json:"attached_washroom"`
	Capacity         int       `json:"capacity"`
	Occupied         bool      `json:"occupied"`
	Beds             []BedPlan `json:"beds"`
}

// FloorPlan is one floor in the blueprint.
type FloorPlan struct {
	Number int        `json:"number"`
	Label  string     `json:"label"`
	Rooms  []RoomPlan `json:"rooms"`
}

// Snapshot renders the blueprint for a property. Room occupancy is
// recomputed from the bed flags rather than trusting the stored
// snapshot, so a partially edited structure still renders consistently;
// a room with zero beds falls back to its stored flag.
func Snapshot(p *property.Property, tenants []*tenant.Tenant) []FloorPlan {
	byBed := map[string]string{}
	for _, t := range tenants {
		if t.BedID != "" {
			byBed[t.BedID] = t.Name
		}
	}

	floors := make([]FloorPlan, len(p.Floors))
	for i, f := range p.Floors {
		rooms := make([]RoomPlan, len(f.Rooms))
		for j, r := range f.Rooms {
			beds := make([]BedPlan, len(r.Beds))
			occupied := false
			for k, b := range r.Beds {
				status := Available
				if b.Occupied {
					status = Occupied
					occupied = true
				}
				beds[k] = BedPlan{
					ID:     b.ID,
					Label:  b.Label,
					Status: status,
					Tenant: byBed[b.ID],
				}
			}
			if len(r.Beds) == 0 {
				occupied = r.IsOccupied
			}
			rooms[j] = RoomPlan{
				ID:               r.ID,
				Label:            r.Label,
				AttachedWashroom: r.AttachedWashroom,
				Capacity:         len(r.Beds),
				Occupied:         occupied,
				Beds:             beds,
			}
		}
		floors[i] = FloorPlan{Number: f.Number, Label: f.Label, Rooms: rooms}
	}
	return floors
}

// Stats are the dashboard headline numbers for one property.
type Stats struct {
	TotalFloors    int     `json:"total_floors"`
	TotalRooms     int     `json:"total_rooms"`
	TotalBeds      int     `json:"total_beds"`
	OccupiedBeds   int     `json:"occupied_beds"`
	AvailableBeds  int     `json:"available_beds"`
	AvailableRooms int     `json:"available_rooms"`
	Tenants        int     `json:"tenants"`
	OccupancyPct   float64 `json:"occupancy_pct"`
}

// Compute derives dashboard stats from a property and its tenant list.
// The tenant figure is the live record count, not the snapshot taken at
// onboarding.
func Compute(p *property.Property, tenants []*tenant.Tenant) Stats {
	s := Stats{TotalFloors: len(p.Floors), Tenants: len(tenants)}
	for _, f := range p.Floors {
		s.TotalRooms += len(f.Rooms)
		for _, r := range f.Rooms {
			s.TotalBeds += len(r.Beds)
			roomOccupied := false
			for _, b := range r.Beds {
				if b.Occupied {
					s.OccupiedBeds++
					roomOccupied = true
				}
			}
			if len(r.Beds) == 0 {
				roomOccupied = r.IsOccupied
			}
			if !roomOccupied {
				s.AvailableRooms++
			}
		}
	}
	s.AvailableBeds = s.TotalBeds - s.OccupiedBeds
	if s.TotalBeds > 0 {
		s.OccupancyPct = float64(s.OccupiedBeds) / float64(s.TotalBeds) * 100
	}
	return s
}
