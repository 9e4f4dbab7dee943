package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinetrade/pricecore/internal/value"
)

func TestStatusTransitions(t *testing.T) {
	all := []Status{StatusDraft, StatusComputed, StatusFinalized, StatusAbandoned}

	allowed := map[Status]map[Status]bool{
		StatusDraft:    {StatusDraft: true, StatusComputed: true, StatusAbandoned: true},
		StatusComputed: {StatusDraft: true, StatusComputed: true, StatusFinalized: true, StatusAbandoned: true},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusDraft.Terminal())
	assert.False(t, StatusComputed.Terminal())
	assert.True(t, StatusFinalized.Terminal())
	assert.True(t, StatusAbandoned.Terminal())
}

func TestNew(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := New("alice", "P", "v1", now)

	assert.NotEqual(t, s.ID.String(), New("alice", "P", "v1", now).ID.String())
	assert.Equal(t, "alice", s.OwnerID)
	assert.Equal(t, "P", s.PartnerID)
	assert.Equal(t, StatusDraft, s.Status)
	assert.Equal(t, "v1", s.CatalogVersion)
	assert.Equal(t, int64(0), s.Revision)
	assert.Empty(t, s.Inputs)
	assert.Equal(t, now, s.CreatedAt)
	assert.Equal(t, now, s.UpdatedAt)
}

func TestClone(t *testing.T) {
	s := New("alice", "", "v1", time.Now())
	s.Inputs["caseQuantity"] = value.NewInteger(12)

	c := s.Clone()
	require.Equal(t, s.ID, c.ID)
	require.Len(t, c.Inputs, 1)

	c.Inputs["caseQuantity"] = value.NewInteger(99)
	c.Revision = 7

	assert.True(t, s.Inputs["caseQuantity"].Equal(value.NewInteger(12)), "clone must not alias the input map")
	assert.Equal(t, int64(0), s.Revision)
}
