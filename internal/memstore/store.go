// Package memstore provides an ephemeral, thread-safe, in-memory
// implementation of the sessionstore.Store interface.
//
// It is suitable for the CLI, tests and single-process deployments; a
// database-backed implementation substitutes transparently because callers
// only see the sessionstore contract. A single mutex guards all maps: the
// write pattern is one conditional write per wizard commit, so contention
// is not a concern and the simple locking keeps the compare-and-set
// obviously atomic.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vinetrade/pricecore/internal/breakdown"
	"github.com/vinetrade/pricecore/internal/session"
	"github.com/vinetrade/pricecore/internal/sessionstore"
)

// Store is the in-memory sessionstore.Store.
type Store struct {
	mu         sync.Mutex
	sessions   map[uuid.UUID]*session.Session
	breakdowns map[uuid.UUID][]*breakdown.Breakdown
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		sessions:   make(map[uuid.UUID]*session.Session),
		breakdowns: make(map[uuid.UUID][]*breakdown.Breakdown),
	}
}

func (s *Store) CreateSession(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.ID]; exists {
		return fmt.Errorf("%w: %s", sessionstore.ErrDuplicateSession, sess.ID)
	}
	s.sessions[sess.ID] = sess.Clone()
	return nil
}

func (s *Store) LoadSession(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sessionstore.ErrSessionNotFound, id)
	}
	return stored.Clone(), nil
}

// SaveSession implements the conditional write. The revision comparison and
// the write happen under one lock acquisition, which is what makes the
// compare-and-set atomic.
func (s *Store) SaveSession(ctx context.Context, sess *session.Session, expectedRevision int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[sess.ID]
	if !ok {
		return fmt.Errorf("%w: %s", sessionstore.ErrSessionNotFound, sess.ID)
	}
	if stored.Revision != expectedRevision {
		return fmt.Errorf("%w: stored revision %d, expected %d",
			sessionstore.ErrRevisionConflict, stored.Revision, expectedRevision)
	}
	s.sessions[sess.ID] = sess.Clone()
	return nil
}

func (s *Store) AppendBreakdown(ctx context.Context, b *breakdown.Breakdown) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[b.SessionID]; !ok {
		return fmt.Errorf("%w: %s", sessionstore.ErrSessionNotFound, b.SessionID)
	}
	s.breakdowns[b.SessionID] = append(s.breakdowns[b.SessionID], b.Clone())
	return nil
}

func (s *Store) LatestBreakdown(ctx context.Context, sessionID uuid.UUID) (*breakdown.Breakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("%w: %s", sessionstore.ErrSessionNotFound, sessionID)
	}
	history := s.breakdowns[sessionID]
	if len(history) == 0 {
		return nil, nil
	}
	return history[len(history)-1].Clone(), nil
}

func (s *Store) BreakdownHistory(ctx context.Context, sessionID uuid.UUID) ([]*breakdown.Breakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("%w: %s", sessionstore.ErrSessionNotFound, sessionID)
	}
	history := s.breakdowns[sessionID]
	out := make([]*breakdown.Breakdown, len(history))
	for i, b := range history {
		out[i] = b.Clone()
	}
	return out, nil
}
