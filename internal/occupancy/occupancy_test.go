package occupancy

import (
	"testing"

	"github.com/ressido/ressido/internal/property"
	"github.com/ressido/ressido/internal/tenant"
)

func testProperty() *property.Property {
	return &property.Property{
		ID:   "p-1",
		Name: "Sunshine PG",
		Floors: []property.Floor{
			{
				ID: "f-1", Number: 1, Label: "Ground",
				Rooms: []property.Room{
					{
						ID: "r-101", Label: "101", IsOccupied: true,
						Beds: []property.Bed{
							{ID: "b-1", Label: "A", Occupied: true},
							{ID: "b-2", Label: "B"},
						},
					},
					{
						ID: "r-102", Label: "102",
						Beds: []property.Bed{{ID: "b-3", Label: "A"}},
					},
				},
			},
			{
				ID: "f-2", Number: 2, Label: "First",
				Rooms: []property.Room{
					{ID: "r-201", Label: "201"},
				},
			},
		},
	}
}

func TestSnapshot(t *testing.T) {
	tenants := []*tenant.Tenant{
		{ID: "t-1", Name: "Rahul Kumar", BedID: "b-1"},
		{ID: "t-2", Name: "Unassigned"},
	}

	floors := Snapshot(testProperty(), tenants)

	if len(floors) != 2 {
		t.Fatalf("floors = %d, want 2", len(floors))
	}
	if floors[0].Number != 1 || floors[1].Number != 2 {
		t.Errorf("floor numbers = %d, %d", floors[0].Number, floors[1].Number)
	}

	room := floors[0].Rooms[0]
	if !room.Occupied || room.Capacity != 2 {
		t.Errorf("room 101 = %+v", room)
	}
	if room.Beds[0].Status != Occupied || room.Beds[0].Tenant != "Rahul Kumar" {
		t.Errorf("bed b-1 = %+v", room.Beds[0])
	}
	if room.Beds[1].Status != Available || room.Beds[1].Tenant != "" {
		t.Errorf("bed b-2 = %+v", room.Beds[1])
	}

	if floors[0].Rooms[1].Occupied {
		t.Error("room 102 should be available")
	}
}

func TestSnapshotZeroBedRoomFallsBackToStoredFlag(t *testing.T) {
	p := testProperty()
	p.Floors[1].Rooms[0].IsOccupied = true

	floors := Snapshot(p, nil)

	if !floors[1].Rooms[0].Occupied {
		t.Error("zero-bed room should use the stored occupancy flag")
	}
	if floors[1].Rooms[0].Capacity != 0 {
		t.Errorf("capacity = %d, want 0", floors[1].Rooms[0].Capacity)
	}
}

func TestCompute(t *testing.T) {
	tenants := []*tenant.Tenant{
		{ID: "t-1", Name: "Rahul", BedID: "b-1"},
		{ID: "t-2", Name: "Priya"},
	}

	s := Compute(testProperty(), tenants)

	if s.TotalFloors != 2 {
		t.Errorf("floors = %d, want 2", s.TotalFloors)
	}
	if s.TotalRooms != 3 {
		t.Errorf("rooms = %d, want 3", s.TotalRooms)
	}
	if s.TotalBeds != 3 {
		t.Errorf("beds = %d, want 3", s.TotalBeds)
	}
	if s.OccupiedBeds != 1 || s.AvailableBeds != 2 {
		t.Errorf("occupied/available = %d/%d, want 1/2", s.OccupiedBeds, s.AvailableBeds)
	}
	// 101 is occupied; 102 and the bed-less 201 are available.
	if s.AvailableRooms != 2 {
		t.Errorf("available rooms = %d, want 2", s.AvailableRooms)
	}
	if s.Tenants != 2 {
		t.Errorf("tenants = %d, want 2", s.Tenants)
	}
	if s.OccupancyPct < 33.3 || s.OccupancyPct > 33.4 {
		t.Errorf("occupancy = %f, want ~33.3", s.OccupancyPct)
	}
}

func TestComputeEmptyProperty(t *testing.T) {
	s := Compute(&property.Property{}, nil)

	if s.TotalBeds != 0 || s.OccupancyPct != 0 {
		t.Errorf("stats = %+v, want zeros", s)
	}
}
