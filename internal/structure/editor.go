package structure

import "github.com/google/uuid"

// IDSource generates identifiers for new floors, rooms and beds.
// Ids only need to be unique within one editing session.
type IDSource func() string

// Editor applies layout mutations. Every operation returns a new tree;
// the input tree is never modified, and branches the operation does not
// touch are shared between the old and new trees. Operations addressing
// an id that no longer exists (a stale reference from rapid UI
// interaction) return the tree unchanged.
type Editor struct {
	NewID IDSource
}

// NewEditor returns an editor using random UUIDs for new entities.
func NewEditor() Editor {
	return Editor{NewID: uuid.NewString}
}

// RoomPatch is a partial update to a room. Nil fields are left unchanged.
type RoomPatch struct {
	Label            *string
	AttachedWashroom *bool
}

// BedPatch is a partial update to a bed. Nil fields are left unchanged.
type BedPatch struct {
	Label    *string
	Occupied *bool
}

// AddFloor appends a new empty floor.
func (e Editor) AddFloor(t Tree) Tree {
	floors := make([]Floor, len(t.Floors), len(t.Floors)+1)
	copy(floors, t.Floors)
	floors = append(floors, Floor{ID: e.NewID()})
	return Tree{Floors: floors}
}

// RemoveFloor removes the floor with the given id.
func (e Editor) RemoveFloor(t Tree, floorID string) Tree {
	idx := -1
	for i, f := range t.Floors {
		if f.ID == floorID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return t
	}
	floors := make([]Floor, 0, len(t.Floors)-1)
	floors = append(floors, t.Floors[:idx]...)
	floors = append(floors, t.Floors[idx+1:]...)
	return Tree{Floors: floors}
}

// UpdateFloor renames the floor with the given id.
func (e Editor) UpdateFloor(t Tree, floorID, label string) Tree {
	return withFloor(t, floorID, func(f Floor) Floor {
		f.Label = label
		return f
	})
}

// AddRoom appends a new empty room to the given floor.
func (e Editor) AddRoom(t Tree, floorID string) Tree {
	return withFloor(t, floorID, func(f Floor) Floor {
		rooms := make([]Room, len(f.Rooms), len(f.Rooms)+1)
		copy(rooms, f.Rooms)
		f.Rooms = append(rooms, Room{ID: e.NewID()})
		return f
	})
}

// RemoveRoom removes a room from the given floor.
func (e Editor) RemoveRoom(t Tree, floorID, roomID string) Tree {
	return withFloor(t, floorID, func(f Floor) Floor {
		idx := -1
		for i, r := range f.Rooms {
			if r.ID == roomID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return f
		}
		rooms := make([]Room, 0, len(f.Rooms)-1)
		rooms = append(rooms, f.Rooms[:idx]...)
		rooms = append(rooms, f.Rooms[idx+1:]...)
		f.Rooms = rooms
		return f
	})
}

// UpdateRoom applies a partial update to a room on the given floor.
func (e Editor) UpdateRoom(t Tree, floorID, roomID string, patch RoomPatch) Tree {
	return withRoom(t, floorID, roomID, func(r Room) Room {
		if patch.Label != nil {
			r.Label = *patch.Label
		}
		if patch.AttachedWashroom != nil {
			r.AttachedWashroom = *patch.AttachedWashroom
		}
		return r
	})
}

// AddBed appends a new vacant bed to a room on the given floor.
func (e Editor) AddBed(t Tree, floorID, roomID string) Tree {
	return withRoom(t, floorID, roomID, func(r Room) Room {
		beds := make([]Bed, len(r.Beds), len(r.Beds)+1)
		copy(beds, r.Beds)
		r.Beds = append(beds, Bed{ID: e.NewID()})
		return r
	})
}

// RemoveBed removes a bed from a room on the given floor.
func (e Editor) RemoveBed(t Tree, floorID, roomID, bedID string) Tree {
	return withRoom(t, floorID, roomID, func(r Room) Room {
		idx := -1
		for i, b := range r.Beds {
			if b.ID == bedID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return r
		}
		beds := make([]Bed, 0, len(r.Beds)-1)
		beds = append(beds, r.Beds[:idx]...)
		beds = append(beds, r.Beds[idx+1:]...)
		r.Beds = beds
		return r
	})
}

// UpdateBed applies a partial update to a bed in a room on the given floor.
func (e Editor) UpdateBed(t Tree, floorID, roomID, bedID string, patch BedPatch) Tree {
	return withRoom(t, floorID, roomID, func(r Room) Room {
		idx := -1
		for i, b := range r.Beds {
			if b.ID == bedID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return r
		}
		beds := make([]Bed, len(r.Beds))
		copy(beds, r.Beds)
		if patch.Label != nil {
			beds[idx].Label = *patch.Label
		}
		if patch.Occupied != nil {
			beds[idx].Occupied = *patch.Occupied
		}
		r.Beds = beds
		return r
	})
}

// withFloor rebuilds the tree with fn applied to the matching floor.
// Returns the tree unchanged when the floor is absent. fn receives a
// by-value copy of the floor but must not modify its Rooms slice in
// place; it replaces the slice when rooms change.
func withFloor(t Tree, floorID string, fn func(Floor) Floor) Tree {
	for i, f := range t.Floors {
		if f.ID != floorID {
			continue
		}
		updated := fn(f)
		if sameFloor(f, updated) {
			return t
		}
		floors := make([]Floor, len(t.Floors))
		copy(floors, t.Floors)
		floors[i] = updated
		return Tree{Floors: floors}
	}
	return t
}

// withRoom rebuilds the tree with fn applied to the matching room under
// the matching floor. A room id under a non-matching floor is a no-op.
func withRoom(t Tree, floorID, roomID string, fn func(Room) Room) Tree {
	return withFloor(t, floorID, func(f Floor) Floor {
		for i, r := range f.Rooms {
			if r.ID != roomID {
				continue
			}
			updated := fn(r)
			if sameRoom(r, updated) {
				return f
			}
			rooms := make([]Room, len(f.Rooms))
			copy(rooms, f.Rooms)
			rooms[i] = updated
			f.Rooms = rooms
			return f
		}
		return f
	})
}

// sameFloor reports whether fn left the floor untouched, comparing the
// scalar fields and slice identity rather than deep contents.
func sameFloor(a, b Floor) bool {
	return a.ID == b.ID && a.Label == b.Label && sameSliceRooms(a.Rooms, b.Rooms)
}

func sameRoom(a, b Room) bool {
	return a.ID == b.ID && a.Label == b.Label &&
		a.AttachedWashroom == b.AttachedWashroom && sameSliceBeds(a.Beds, b.Beds)
}

func sameSliceRooms(a, b []Room) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}

func sameSliceBeds(a, b []Bed) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}
