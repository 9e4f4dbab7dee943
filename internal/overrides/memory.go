package overrides

import (
	"context"
	"sync"

	"github.com/vinetrade/pricecore/internal/value"
)

type pairKey struct {
	scopeID    string
	variableID string
}

// MemStore is an in-memory, thread-safe Store. It backs the CLI and the
// test suites; a deployment fronting a real database implements the same
// interface.
type MemStore struct {
	mu       sync.RWMutex
	partners map[pairKey]value.Value
	orgs     map[pairKey]value.Value
}

// NewMemStore creates an empty in-memory override store.
func NewMemStore() *MemStore {
	return &MemStore{
		partners: make(map[pairKey]value.Value),
		orgs:     make(map[pairKey]value.Value),
	}
}

func (s *MemStore) PartnerOverride(ctx context.Context, partnerID, variableID string) (value.Value, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.partners[pairKey{partnerID, variableID}]
	return v, ok, nil
}

func (s *MemStore) OrgDefault(ctx context.Context, orgID, variableID string) (value.Value, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.orgs[pairKey{orgID, variableID}]
	return v, ok, nil
}

func (s *MemStore) SetPartnerOverride(ctx context.Context, partnerID, variableID string, v value.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partners[pairKey{partnerID, variableID}] = v
	return nil
}

func (s *MemStore) DeletePartnerOverride(ctx context.Context, partnerID, variableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.partners, pairKey{partnerID, variableID})
	return nil
}

func (s *MemStore) SetOrgDefault(ctx context.Context, orgID, variableID string, v value.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgs[pairKey{orgID, variableID}] = v
	return nil
}

func (s *MemStore) DeleteOrgDefault(ctx context.Context, orgID, variableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orgs, pairKey{orgID, variableID})
	return nil
}

// MemDirectory is a fixed in-memory partner-to-organization mapping.
type MemDirectory struct {
	mu      sync.RWMutex
	orgByID map[string]string
}

// NewMemDirectory creates a directory from a partner → organization map.
func NewMemDirectory(orgByPartner map[string]string) *MemDirectory {
	d := &MemDirectory{orgByID: make(map[string]string, len(orgByPartner))}
	for partner, org := range orgByPartner {
		d.orgByID[partner] = org
	}
	return d
}

func (d *MemDirectory) OrganizationOf(ctx context.Context, partnerID string) (string, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	org, ok := d.orgByID[partnerID]
	return org, ok, nil
}
