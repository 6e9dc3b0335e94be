// Package property provides the persisted property model and data access.
package property

import (
	"encoding/json"
	"time"
)

// Type classifies a property.
type Type string

const (
	TypeBoysPG   Type = "boys_pg"
	TypeGirlsPG  Type = "girls_pg"
	TypeCoLiving Type = "co_living"
	TypeHostel   Type = "hostel"
)

// ValidTypes is the set of allowed property types.
var ValidTypes = []Type{TypeBoysPG, TypeGirlsPG, TypeCoLiving, TypeHostel}

// IsValid checks if a property type is recognized.
func (t Type) IsValid() bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the property type.
func (t Type) Label() string {
	switch t {
	case TypeBoysPG:
		return "Boys PG"
	case TypeGirlsPG:
		return "Girls PG"
	case TypeCoLiving:
		return "Co-living"
	case TypeHostel:
		return "Hostel"
	default:
		return string(t)
	}
}

// Bed is a persisted bed with its occupancy snapshot.
type Bed struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Occupied bool   `json:"occupied"`
}

// Room is a persisted room. IsOccupied is derived at submission time:
// true iff any contained bed was occupied.
type Room struct {
	ID               string `json:"id"`
	Label            string `json:"label"`
	AttachedWashroom bool   `json:"attached_washroom"`
	IsOccupied       bool   `json:"is_occupied"`
	Beds             []Bed  `json:"beds"`
}

// Floor is a persisted floor. Number is the floor's 1-based position in
// the structure at submission time.
type Floor struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Label  string `json:"label"`
	Rooms  []Room `json:"rooms"`
}

// Caretaker is the contact person attached to a property at submission.
type Caretaker struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	PropertyID string `json:"property_id"`
}

// Property is the persisted aggregate. RoomCount and TenantCount are
// snapshots taken when the property was submitted, not live values.
type Property struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Type        Type        `json:"type"`
	Photo       string      `json:"photo,omitempty"`
	RoomCount   int         `json:"room_count"`
	TenantCount int         `json:"tenant_count"`
	Floors      []Floor     `json:"floors"`
	Caretakers  []Caretaker `json:"caretakers"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// layout is the JSON document stored in the layout_json column.
type layout struct {
	Floors     []Floor     `json:"floors"`
	Caretakers []Caretaker `json:"caretakers"`
}

func (p *Property) layoutJSON() (string, error) {
	data, err := json.Marshal(layout{Floors: p.Floors, Caretakers: p.Caretakers})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// scanProperty scans a property from a database row.
func scanProperty(row interface{ Scan(...interface{}) error }) (*Property, error) {
	var p Property
	var typ, layoutJSON string

	err := row.Scan(
		&p.ID, &p.Name, &p.Address, &typ, &p.Photo,
		&p.RoomCount, &p.TenantCount, &layoutJSON,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Type = Type(typ)

	var l layout
	if err := json.Unmarshal([]byte(layoutJSON), &l); err != nil {
		return nil, err
	}
	p.Floors = l.Floors
	p.Caretakers = l.Caretakers

	return &p, nil
}
