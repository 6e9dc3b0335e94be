// Package structure models the in-progress physical layout of a property
// as a Floor → Room → Bed tree built during onboarding.
package structure

// Bed is the leaf unit of a property layout. Occupancy is a flag set by
// the operator during onboarding, not derived from a tenant record.
type Bed struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Occupied bool   `json:"occupied"`
}

// Room holds an ordered list of beds.
type Room struct {
	ID               string `json:"id"`
	Label            string `json:"label"`
	AttachedWashroom bool   `json:"attached_washroom"`
	Beds             []Bed  `json:"beds"`
}

// Floor holds an ordered list of rooms. A floor carries no stored number;
// its display number is its 1-based position at aggregation time.
type Floor struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Rooms []Room `json:"rooms"`
}

// Tree is the root of one editing session's draft layout.
type Tree struct {
	Floors []Floor `json:"floors"`
}

// FloorCount returns the number of floors in the tree.
func (t Tree) FloorCount() int {
	return len(t.Floors)
}

// RoomCount returns the total number of rooms across all floors.
func (t Tree) RoomCount() int {
	n := 0
	for _, f := range t.Floors {
		n += len(f.Rooms)
	}
	return n
}

// BedCount returns the total number of beds across all rooms.
func (t Tree) BedCount() int {
	n := 0
	for _, f := range t.Floors {
		for _, r := range f.Rooms {
			n += len(r.Beds)
		}
	}
	return n
}

// HasCompleteStructure reports whether the tree has at least one floor
// with at least one room containing at least one bed.
func (t Tree) HasCompleteStructure() bool {
	for _, f := range t.Floors {
		for _, r := range f.Rooms {
			if len(r.Beds) > 0 {
				return true
			}
		}
	}
	return false
}

// IsOccupied reports whether any bed in the room is occupied.
// A room with no beds is not occupied.
func (r Room) IsOccupied() bool {
	for _, b := range r.Beds {
		if b.Occupied {
			return true
		}
	}
	return false
}
