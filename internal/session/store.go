// Package session keeps in-progress wizard state in memory between requests.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/billimpact/internal/domain"
)

// ErrNotFound is returned for unknown or expired session ids
var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long an untouched session survives
const DefaultTTL = 2 * time.Hour

// Session is one user's pass through the wizard
type Session struct {
	ID             string                `json:"sessionId"`
	FormData       domain.FormData       `json:"formData"`
	Results        *domain.PolicyResults `json:"results,omitempty"`
	CompletedSteps []string              `json:"completedSteps"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// MarkStep records a completed wizard step once
func (s *Session) MarkStep(step string) {
	for _, done := range s.CompletedSteps {
		if done == step {
			return
		}
	}
	s.CompletedSteps = append(s.CompletedSteps, step)
}

func (s *Session) clone() *Session {
	c := *s
	c.CompletedSteps = append([]string{}, s.CompletedSteps...)
	return &c
}

// Store is a process-local session map. Sessions are lost on restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty store; a non-positive ttl uses DefaultTTL
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// TTL returns the idle lifetime of a session
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create starts a new empty session with a random id
func (s *Store) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:             uuid.NewString(),
		CompletedSteps: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess.clone()
}

// Get returns a copy of the session
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, ErrNotFound
	}
	return sess.clone(), nil
}

// Update applies fn to the stored session under the write lock. Concurrent
// updates to one session are last-write-wins. An error from fn leaves the
// session unchanged.
func (s *Store) Update(id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, ErrNotFound
	}

	working := sess.clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	working.ID = sess.ID
	working.CreatedAt = sess.CreatedAt
	working.UpdatedAt = s.now()
	s.sessions[id] = working

	return working.clone(), nil
}

// Delete removes a session
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len reports the number of stored sessions, expired ones included
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops expired sessions and returns how many were removed
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is cancelled. The optional
// onSweep callback receives the number of sessions removed by each pass.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) error {
	if interval <= 0 {
		interval = s.ttl / 4
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed := s.Sweep()
			if onSweep != nil && removed > 0 {
				onSweep(removed)
			}
		}
	}
}

func (s *Store) expired(sess *Session) bool {
	return s.now().Sub(sess.UpdatedAt) > s.ttl
}
