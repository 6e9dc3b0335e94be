// Package web provides the JSON HTTP API consumed by the dashboard views.
package web

import (
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ressido/ressido/internal/logging"
	"github.com/ressido/ressido/internal/property"
	"github.com/ressido/ressido/internal/tenant"
)

// IdentityHeader carries the opaque identity key that namespaces
// property collections. The server never inspects its structure.
const IdentityHeader = "X-Ressido-Identity"

// Server is the API HTTP server.
type Server struct {
	propRepo   *property.Repository
	tenantRepo *tenant.Repository
	mux        *http.ServeMux

	selectDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*property.Session
}

// NewServer creates an API server over the given database.
func NewServer(db *sql.DB) *Server {
	s := &Server{
		propRepo:    property.NewRepository(db),
		tenantRepo:  tenant.NewRepository(db),
		mux:         http.NewServeMux(),
		selectDelay: property.DefaultSelectDelay,
		sessions:    map[string]*property.Session{},
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/properties", s.handleAPIProperties)
	s.mux.HandleFunc("/api/properties/", s.handleAPIProperties)
	s.mux.HandleFunc("/api/current", s.handleAPICurrent)

	return s
}

// SetSelectDelay overrides the selection transition delay.
func (s *Server) SetSelectDelay(d time.Duration) {
	s.selectDelay = d
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting API on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

// session returns the selection session for an identity, creating and
// restoring it on first use.
func (s *Server) session(identity string) *property.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[identity]; ok {
		return sess
	}

	sess := property.NewSession(s.propRepo, identity, s.selectDelay)
	if err := sess.Restore(); err != nil {
		// A failed restore only loses the remembered selection.
		fmt.Printf("warning: restoring selection: %v\n", err)
	}
	s.sessions[identity] = sess
	return sess
}

// identity extracts the identity key, writing a 401 when missing.
func (s *Server) identity(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(IdentityHeader)
	if id == "" {
		apiError(w, "missing identity", http.StatusUnauthorized)
		return "", false
	}
	return id, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
