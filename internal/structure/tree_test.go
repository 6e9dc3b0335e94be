package structure

import "testing"

func TestCountsEmptyTree(t *testing.T) {
	var tree Tree

	if got := tree.FloorCount(); got != 0 {
		t.Errorf("floor count = %d, want 0", got)
	}
	if got := tree.RoomCount(); got != 0 {
		t.Errorf("room count = %d, want 0", got)
	}
	if got := tree.BedCount(); got != 0 {
		t.Errorf("bed count = %d, want 0", got)
	}
}

func TestCountsAcrossFloors(t *testing.T) {
	tree := Tree{Floors: []Floor{
		{ID: "f1", Rooms: []Room{
			{ID: "r1", Beds: []Bed{{ID: "b1"}, {ID: "b2"}}},
			{ID: "r2", Beds: []Bed{{ID: "b3"}}},
			{ID: "r3"},
		}},
		{ID: "f2", Rooms: []Room{
			{ID: "r4", Beds: []Bed{{ID: "b4"}}},
			{ID: "r5"},
		}},
	}}

	if got := tree.FloorCount(); got != 2 {
		t.Errorf("floor count = %d, want 2", got)
	}
	if got := tree.RoomCount(); got != 5 {
		t.Errorf("room count = %d, want 5", got)
	}
	if got := tree.BedCount(); got != 4 {
		t.Errorf("bed count = %d, want 4", got)
	}
}

func TestHasCompleteStructure(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
		want bool
	}{
		{
			name: "empty tree",
			tree: Tree{},
			want: false,
		},
		{
			name: "floor without rooms",
			tree: Tree{Floors: []Floor{{ID: "f1"}}},
			want: false,
		},
		{
			name: "room without beds",
			tree: Tree{Floors: []Floor{{ID: "f1", Rooms: []Room{{ID: "r1"}}}}},
			want: false,
		},
		{
			name: "one floor one room one bed",
			tree: Tree{Floors: []Floor{
				{ID: "f1", Rooms: []Room{{ID: "r1", Beds: []Bed{{ID: "b1"}}}}},
			}},
			want: true,
		},
		{
			name: "complete structure on second floor only",
			tree: Tree{Floors: []Floor{
				{ID: "f1"},
				{ID: "f2", Rooms: []Room{{ID: "r1", Beds: []Bed{{ID: "b1"}}}}},
			}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tree.HasCompleteStructure(); got != tt.want {
				t.Errorf("HasCompleteStructure() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoomIsOccupied(t *testing.T) {
	tests := []struct {
		name string
		room Room
		want bool
	}{
		{"no beds", Room{ID: "r1"}, false},
		{"all vacant", Room{ID: "r1", Beds: []Bed{{Occupied: false}}}, false},
		{"one occupied", Room{ID: "r1", Beds: []Bed{{Occupied: false}, {Occupied: true}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.room.IsOccupied(); got != tt.want {
				t.Errorf("IsOccupied() = %v, want %v", got, tt.want)
			}
		})
	}
}
