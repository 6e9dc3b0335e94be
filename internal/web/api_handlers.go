package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ressido/ressido/internal/occupancy"
	"github.com/ressido/ressido/internal/onboarding"
	"github.com/ressido/ressido/internal/property"
	"github.com/ressido/ressido/internal/structure"
	"github.com/ressido/ressido/internal/tenant"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// DraftRequest is the onboarding submission payload.
type DraftRequest struct {
	Details   onboarding.Details `json:"details"`
	Structure structure.Tree     `json:"structure"`
}

// handleAPIProperties routes /api/properties requests.
func (s *Server) handleAPIProperties(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.identity(w, r)
	if !ok {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/properties")
	path = strings.TrimPrefix(path, "/")

	// /api/properties — list or submit a draft
	if path == "" {
		switch r.Method {
		case http.MethodGet:
			s.apiListProperties(w, identity)
		case http.MethodPost:
			s.apiSubmitDraft(w, r, identity)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /api/properties/{id}/select
	if id, found := strings.CutSuffix(path, "/select"); found {
		if r.Method != http.MethodPost {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiSelectProperty(w, identity, id)
		return
	}

	// /api/properties/{id}/blueprint
	if id, found := strings.CutSuffix(path, "/blueprint"); found {
		if r.Method != http.MethodGet {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiBlueprint(w, identity, id)
		return
	}

	// /api/properties/{id}/tenants
	if id, found := strings.CutSuffix(path, "/tenants"); found {
		switch r.Method {
		case http.MethodGet:
			s.apiListTenants(w, identity, id)
		case http.MethodPost:
			s.apiAddTenant(w, r, identity, id)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /api/properties/{id} — show or update
	switch r.Method {
	case http.MethodGet:
		s.apiGetProperty(w, identity, path)
	case http.MethodPut:
		s.apiUpdateProperty(w, r, identity, path)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiListProperties returns the identity's properties.
func (s *Server) apiListProperties(w http.ResponseWriter, identity string) {
	props, err := s.propRepo.List(identity)
	if err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, props, http.StatusOK)
}

// apiSubmitDraft runs the submittability gate over a draft and persists
// the aggregated property.
func (s *Server) apiSubmitDraft(w http.ResponseWriter, r *http.Request, identity string) {
	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if verr := onboarding.ValidateDraft(req.Details, req.Structure); verr != nil {
		apiJSON(w, map[string]interface{}{
			"error":    "draft is not submittable",
			"messages": verr.Messages,
		}, http.StatusBadRequest)
		return
	}

	p := onboarding.Aggregate(req.Details, req.Structure, structure.NewEditor().NewID)
	saved, err := s.propRepo.Add(identity, &p)
	if err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	apiJSON(w, saved, http.StatusCreated)
}

// apiGetProperty returns one property.
func (s *Server) apiGetProperty(w http.ResponseWriter, identity, id string) {
	p, err := s.propRepo.Get(identity, id)
	if err != nil {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}
	apiJSON(w, p, http.StatusOK)
}

// apiUpdateProperty replaces a stored property. An unknown id is a
// benign no-op, mirroring the repository contract.
func (s *Server) apiUpdateProperty(w http.ResponseWriter, r *http.Request, identity, id string) {
	var p property.Property
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	p.ID = id

	if !p.Type.IsValid() {
		apiError(w, "invalid property type", http.StatusBadRequest)
		return
	}

	if err := s.propRepo.Update(identity, &p); err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// apiSelectProperty starts the selection transition.
func (s *Server) apiSelectProperty(w http.ResponseWriter, identity, id string) {
	s.session(identity).Select(id)
	apiJSON(w, map[string]bool{"loading": true}, http.StatusAccepted)
}

// CurrentResponse is the body of GET /api/current.
type CurrentResponse struct {
	Property *property.Property `json:"property"`
	Loading  bool               `json:"loading"`
}

// handleAPICurrent reports the current selection and its loading state.
func (s *Server) handleAPICurrent(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.identity(w, r)
	if !ok {
		return
	}
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := s.session(identity)
	apiJSON(w, CurrentResponse{Property: sess.Current(), Loading: sess.Loading()}, http.StatusOK)
}

// BlueprintResponse is the body of GET /api/properties/{id}/blueprint.
type BlueprintResponse struct {
	Floors []occupancy.FloorPlan `json:"floors"`
	Stats  occupancy.Stats       `json:"stats"`
}

// apiBlueprint renders the occupancy view for a property.
func (s *Server) apiBlueprint(w http.ResponseWriter, identity, id string) {
	p, err := s.propRepo.Get(identity, id)
	if err != nil {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}

	tenants, err := s.tenantRepo.ListByProperty(id)
	if err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	apiJSON(w, BlueprintResponse{
		Floors: occupancy.Snapshot(p, tenants),
		Stats:  occupancy.Compute(p, tenants),
	}, http.StatusOK)
}

// apiListTenants returns a property's tenants.
func (s *Server) apiListTenants(w http.ResponseWriter, identity, id string) {
	if _, err := s.propRepo.Get(identity, id); err != nil {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}

	tenants, err := s.tenantRepo.ListByProperty(id)
	if err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, tenants, http.StatusOK)
}

// apiAddTenant registers a tenant against a property.
func (s *Server) apiAddTenant(w http.ResponseWriter, r *http.Request, identity, id string) {
	if _, err := s.propRepo.Get(identity, id); err != nil {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}

	var t tenant.Tenant
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	t.PropertyID = id

	saved, err := s.tenantRepo.Add(&t)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	apiJSON(w, saved, http.StatusCreated)
}
