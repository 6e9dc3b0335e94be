package property

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultSelectDelay is the production selection delay. Selection is
// deliberately deferred so dependent views can show a transition state
// instead of flashing stale data.
const DefaultSelectDelay = 500 * time.Millisecond

// Session tracks the currently selected property for one identity.
// Select completes after a fixed delay; until then Current keeps
// returning the previous selection and Loading reports true. A second
// Select supersedes a pending one.
type Session struct {
	repo     *Repository
	identity string
	delay    time.Duration

	mu      sync.Mutex
	current *Property
	loading bool
	pending *time.Timer
}

// NewSession creates a selection session for an identity.
func NewSession(repo *Repository, identity string, delay time.Duration) *Session {
	return &Session{repo: repo, identity: identity, delay: delay}
}

// Restore resolves the persisted selection pointer against the
// identity's collection and applies it immediately, without the
// transition delay. A pointer to a property that no longer exists (or
// belongs to another identity) is ignored.
func (s *Session) Restore() error {
	id, err := s.repo.LoadSelected()
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	p, err := s.repo.Get(s.identity, id)
	if err != nil {
		slog.Debug("saved selection not restorable", "id", id)
		return nil
	}

	s.mu.Lock()
	s.current = p
	s.mu.Unlock()
	return nil
}

// Select marks a property as current after the session delay. An unknown
// id is silently ignored — it means the caller selected from a stale
// list. The new selection is persisted once it lands.
func (s *Session) Select(id string) {
	p, err := s.repo.Get(s.identity, id)
	if err != nil {
		slog.Debug("select for unknown property ignored", "id", id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.pending.Stop()
	}
	s.loading = true
	s.pending = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		s.current = p
		s.loading = false
		s.pending = nil
		s.mu.Unlock()

		if err := s.repo.SaveSelected(p.ID); err != nil {
			slog.Warn("persisting selection failed", "id", p.ID, "error", err)
		}
	})
}

// Current returns the selected property, or nil if none is selected yet.
func (s *Session) Current() *Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Loading reports whether a selection is still in transition.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
