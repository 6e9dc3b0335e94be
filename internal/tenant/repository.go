package tenant

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository provides CRUD operations for tenants.
type Repository struct {
	db    *sql.DB
	newID func() string
}

// NewRepository creates a tenant repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, newID: uuid.NewString}
}

// SetIDSource replaces the generator used for new tenant ids.
func (r *Repository) SetIDSource(fn func() string) {
	r.newID = fn
}

const selectColumns = `id, property_id, name, age, gender, contact, room_id, bed_id, move_in_date, created_at`

// Add registers a tenant against a property.
func (r *Repository) Add(t *Tenant) (*Tenant, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if !t.Gender.IsValid() {
		return nil, fmt.Errorf("invalid gender: %q", t.Gender)
	}
	if _, err := time.Parse("2006-01-02", t.MoveInDate); err != nil {
		return nil, fmt.Errorf("invalid move-in date (use YYYY-MM-DD): %w", err)
	}

	id := r.newID()
	_, err := r.db.Exec(
		`INSERT INTO tenants (id, property_id, name, age, gender, contact, room_id, bed_id, move_in_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, t.PropertyID, t.Name, t.Age, string(t.Gender), t.Contact, t.RoomID, t.BedID, t.MoveInDate,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting tenant: %w", err)
	}

	return r.get(id)
}

func (r *Repository) get(id string) (*Tenant, error) {
	var t Tenant
	var gender string
	err := r.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM tenants WHERE id = ?", selectColumns), id,
	).Scan(&t.ID, &t.PropertyID, &t.Name, &t.Age, &gender, &t.Contact, &t.RoomID, &t.BedID, &t.MoveInDate, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("reading back tenant: %w", err)
	}
	t.Gender = Gender(gender)
	return &t, nil
}

// ListByProperty returns a property's tenants, oldest move-in first.
func (r *Repository) ListByProperty(propertyID string) ([]*Tenant, error) {
	rows, err := r.db.Query(
		fmt.Sprintf("SELECT %s FROM tenants WHERE property_id = ? ORDER BY move_in_date, id", selectColumns),
		propertyID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var tenants []*Tenant
	for rows.Next() {
		var t Tenant
		var gender string
		if err := rows.Scan(&t.ID, &t.PropertyID, &t.Name, &t.Age, &gender, &t.Contact, &t.RoomID, &t.BedID, &t.MoveInDate, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning tenant: %w", err)
		}
		t.Gender = Gender(gender)
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tenants: %w", err)
	}

	return tenants, nil
}

// AssignBed places a tenant in a room and bed.
func (r *Repository) AssignBed(id, roomID, bedID string) error {
	result, err := r.db.Exec(
		"UPDATE tenants SET room_id = ?, bed_id = ? WHERE id = ?",
		roomID, bedID, id,
	)
	if err != nil {
		return fmt.Errorf("assigning bed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("tenant %s not found", id)
	}

	return nil
}

// Remove deletes a tenant record.
func (r *Repository) Remove(id string) error {
	result, err := r.db.Exec("DELETE FROM tenants WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("tenant %s not found", id)
	}

	return nil
}
