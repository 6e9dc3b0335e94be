package property

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Repository owns the property collections, namespaced per identity.
// The identity is an opaque key supplied by the auth collaborator; the
// repository never inspects its structure.
type Repository struct {
	db    *sql.DB
	newID func() string
}

// NewRepository creates a property repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, newID: uuid.NewString}
}

// SetIDSource replaces the generator used for assigned property ids.
func (r *Repository) SetIDSource(fn func() string) {
	r.newID = fn
}

const selectColumns = `id, name, address, type, photo, room_count, tenant_count, layout_json, created_at, updated_at`

// List returns the persisted properties for the identity in insertion
// order. A first call for an identity with no stored properties seeds
// the two sample properties so the dashboard has something to show.
func (r *Repository) List(identity string) ([]*Property, error) {
	props, err := r.list(identity)
	if err != nil {
		return nil, err
	}
	if len(props) > 0 {
		return props, nil
	}

	if err := r.seed(identity); err != nil {
		return nil, fmt.Errorf("seeding sample properties: %w", err)
	}
	return r.list(identity)
}

func (r *Repository) list(identity string) ([]*Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE identity = ? ORDER BY created_at, id", selectColumns)
	rows, err := r.db.Query(query, identity)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var props []*Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		props = append(props, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}

	return props, nil
}

// seed inserts the first-run sample set for an identity.
func (r *Repository) seed(identity string) error {
	samples := []*Property{
		{
			Name:        "Sunshine PG",
			Address:     "Koramangala, Bangalore",
			Type:        TypeBoysPG,
			RoomCount:   30,
			TenantCount: 24,
		},
		{
			Name:        "Elite Hostel",
			Address:     "HSR Layout, Bangalore",
			Type:        TypeHostel,
			RoomCount:   45,
			TenantCount: 38,
		},
	}
	for _, s := range samples {
		if _, err := r.Add(identity, s); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a property by id within the identity's collection.
func (r *Repository) Get(identity, id string) (*Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE identity = ? AND id = ?", selectColumns)
	row := r.db.QueryRow(query, identity, id)

	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("property %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying property %s: %w", id, err)
	}

	return p, nil
}

// Add assigns a fresh id, stamps it onto the caretaker records, appends
// the property to the identity's collection and returns the stored record.
func (r *Repository) Add(identity string, p *Property) (*Property, error) {
	stored := *p
	stored.ID = r.newID()

	caretakers := make([]Caretaker, len(p.Caretakers))
	for i, c := range p.Caretakers {
		c.PropertyID = stored.ID
		caretakers[i] = c
	}
	stored.Caretakers = caretakers

	layoutJSON, err := stored.layoutJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding layout: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO properties (id, identity, name, address, type, photo, room_count, tenant_count, layout_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.ID, identity, stored.Name, stored.Address, string(stored.Type),
		stored.Photo, stored.RoomCount, stored.TenantCount, layoutJSON,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting property: %w", err)
	}

	return r.Get(identity, stored.ID)
}

// Update replaces the stored record matching p.ID in full (last writer
// wins, no field merge). An unknown id is silently ignored; it means the
// caller acted on a stale view, not that anything is broken.
func (r *Repository) Update(identity string, p *Property) error {
	layoutJSON, err := p.layoutJSON()
	if err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}

	result, err := r.db.Exec(
		`UPDATE properties
		 SET name = ?, address = ?, type = ?, photo = ?, room_count = ?, tenant_count = ?,
		     layout_json = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE identity = ? AND id = ?`,
		p.Name, p.Address, string(p.Type), p.Photo, p.RoomCount, p.TenantCount,
		layoutJSON, identity, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		slog.Debug("update for unknown property ignored", "id", p.ID)
	}

	return nil
}

// SaveSelected persists the last-selected property id. The pointer is a
// single session-scoped scalar, not namespaced by identity.
func (r *Repository) SaveSelected(id string) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value) VALUES ('selected_property_id', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		id,
	)
	if err != nil {
		return fmt.Errorf("saving selected property: %w", err)
	}
	return nil
}

// LoadSelected returns the last-selected property id, or "" if none.
func (r *Repository) LoadSelected() (string, error) {
	var id string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = 'selected_property_id'`).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading selected property: %w", err)
	}
	return id, nil
}
