package breakdown

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinetrade/pricecore/internal/value"
)

func TestLineLookup(t *testing.T) {
	b := &Breakdown{
		Lines: []Line{
			{VariableID: "subtotal", Value: value.NewCurrency(decimal.NewFromInt(1200)), Source: value.ComputedSource()},
			{VariableID: "total", Value: value.NewCurrency(decimal.NewFromInt(1080)), Source: value.ComputedSource()},
		},
	}

	line, ok := b.Line("total")
	require.True(t, ok)
	assert.Equal(t, "1080.00", line.Value.String())

	_, ok = b.Line("ghost")
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	b := &Breakdown{
		ID:         uuid.New(),
		SessionID:  uuid.New(),
		Revision:   3,
		Lines:      []Line{{VariableID: "total", Value: value.NewCurrency(decimal.NewFromInt(1)), Source: value.ComputedSource()}},
		TotalPrice: decimal.NewFromInt(1),
		Currency:   "EUR",
		ComputedAt: time.Now(),
	}

	c := b.Clone()
	c.Lines[0].VariableID = "tampered"

	assert.Equal(t, "total", b.Lines[0].VariableID)
	assert.Equal(t, b.ID, c.ID)
}
