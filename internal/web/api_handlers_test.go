package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ressido/ressido/internal/db"
	"github.com/ressido/ressido/internal/property"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})

	srv := NewServer(d)
	srv.SetSelectDelay(50 * time.Millisecond)
	return srv
}

// doRequest runs a request with the identity header set.
func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	r.Header.Set(IdentityHeader, "user-a")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

const validDraft = `{
	"details": {
		"name": "Sunshine PG",
		"address": "Koramangala",
		"city": "Bangalore",
		"type": "boys_pg",
		"caretaker_name": "Ramesh",
		"caretaker_contact": "98765"
	},
	"structure": {
		"floors": [
			{"id": "f1", "label": "Ground", "rooms": [
				{"id": "r1", "label": "101", "beds": [
					{"id": "b1", "occupied": true},
					{"id": "b2", "occupied": false}
				]}
			]}
		]
	}
}`

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	r := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want status ok", w.Body.String())
	}
}

func TestMissingIdentityRejected(t *testing.T) {
	srv := testServer(t)

	r := httptest.NewRequest("GET", "/api/properties", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestListPropertiesSeedsFirstRun(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, "GET", "/api/properties", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var props []*property.Property
	if err := json.Unmarshal(w.Body.Bytes(), &props); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(props) != 2 {
		t.Errorf("got %d properties, want 2 seeded", len(props))
	}
}

func TestSubmitDraft(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, "POST", "/api/properties", validDraft)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var p property.Property
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID == "" {
		t.Error("expected assigned id")
	}
	if p.RoomCount != 1 {
		t.Errorf("room count = %d, want 1", p.RoomCount)
	}
	if !p.Floors[0].Rooms[0].IsOccupied {
		t.Error("room should be occupied")
	}
	if len(p.Caretakers) != 1 || p.Caretakers[0].PropertyID != p.ID {
		t.Errorf("caretakers = %+v", p.Caretakers)
	}
}

func TestSubmitInvalidDraft(t *testing.T) {
	srv := testServer(t)

	body := `{"details": {"name": "Sunshine PG"}, "structure": {"floors": []}}`
	w := doRequest(t, srv, "POST", "/api/properties", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "at least one floor") {
		t.Errorf("body = %q, want structure message", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "address is required") {
		t.Errorf("body = %q, want details message", w.Body.String())
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, "GET", "/api/properties/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestUpdateUnknownPropertyIsNoOp(t *testing.T) {
	srv := testServer(t)

	body := `{"name": "Renamed", "address": "X", "type": "hostel"}`
	w := doRequest(t, srv, "PUT", "/api/properties/ghost", body)
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d: %s", w.Code, http.StatusNoContent, w.Body.String())
	}
}

func TestSelectAndCurrent(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, "GET", "/api/properties", "")
	var props []*property.Property
	if err := json.Unmarshal(w.Body.Bytes(), &props); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doRequest(t, srv, "POST", "/api/properties/"+props[0].ID+"/select", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("select status = %d, want %d", w.Code, http.StatusAccepted)
	}

	// During the transition the previous selection (none) holds.
	w = doRequest(t, srv, "GET", "/api/current", "")
	var cur CurrentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &cur); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cur.Property != nil {
		t.Errorf("property during transition = %+v, want nil", cur.Property)
	}
	if !cur.Loading {
		t.Error("expected loading during transition")
	}

	time.Sleep(200 * time.Millisecond)

	w = doRequest(t, srv, "GET", "/api/current", "")
	if err := json.Unmarshal(w.Body.Bytes(), &cur); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cur.Property == nil || cur.Property.ID != props[0].ID {
		t.Errorf("property after transition = %+v, want %s", cur.Property, props[0].ID)
	}
	if cur.Loading {
		t.Error("loading should clear after transition")
	}
}

func TestBlueprint(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, "POST", "/api/properties", validDraft)
	var p property.Property
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doRequest(t, srv, "GET", "/api/properties/"+p.ID+"/blueprint", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var bp BlueprintResponse
	if err := json.Unmarshal(w.Body.Bytes(), &bp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(bp.Floors) != 1 || bp.Floors[0].Number != 1 {
		t.Fatalf("floors = %+v", bp.Floors)
	}
	if bp.Stats.TotalBeds != 2 || bp.Stats.OccupiedBeds != 1 {
		t.Errorf("stats = %+v", bp.Stats)
	}
}

func TestTenantLifecycle(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, "POST", "/api/properties", validDraft)
	var p property.Property
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}

	body := `{"name": "Rahul Kumar", "age": 24, "gender": "male", "contact": "98765", "move_in_date": "2024-05-01"}`
	w = doRequest(t, srv, "POST", "/api/properties/"+p.ID+"/tenants", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("add tenant status = %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, srv, "GET", "/api/properties/"+p.ID+"/tenants", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list tenants status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Rahul Kumar") {
		t.Errorf("body = %q, want tenant name", w.Body.String())
	}

	// Invalid tenant payloads are client errors.
	w = doRequest(t, srv, "POST", "/api/properties/"+p.ID+"/tenants", `{"name": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid tenant status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestTenantsUnknownProperty(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, "GET", "/api/properties/ghost/tenants", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
