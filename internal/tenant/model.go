// Package tenant provides the tenant domain model and data access.
package tenant

import "time"

// Gender of a tenant record.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// ValidGenders is the set of allowed gender values.
var ValidGenders = []Gender{Male, Female, Other}

// IsValid checks if a gender value is recognized.
func (g Gender) IsValid() bool {
	for _, v := range ValidGenders {
		if g == v {
			return true
		}
	}
	return false
}

// Tenant is a resident of a property. RoomID and BedID are set when the
// tenant has been placed; both empty means unassigned.
type Tenant struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Gender     Gender    `json:"gender"`
	Contact    string    `json:"contact"`
	RoomID     string    `json:"room_id,omitempty"`
	BedID      string    `json:"bed_id,omitempty"`
	MoveInDate string    `json:"move_in_date"` // YYYY-MM-DD
	CreatedAt  time.Time `json:"created_at"`
}
