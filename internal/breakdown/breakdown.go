// Package breakdown defines the immutable, fully-sourced artifact of one
// evaluation. A breakdown records every variable's resolved value and the
// source that produced it, so a session priced last month can still explain
// exactly how its price was derived even after global pricing rules change.
//
// Breakdowns are append-only: recomputation produces a new breakdown tied
// to a new session revision and never mutates an existing one.
package breakdown

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinetrade/pricecore/internal/value"
)

// Line is one variable's entry in a breakdown: the resolved value and where
// it came from.
type Line struct {
	VariableID string
	Value      value.Value
	Source     value.Source
}

// Breakdown is the result of one evaluation of a session at a specific
// revision. Lines are ordered by the catalog's evaluation order, which
// makes two breakdowns of identical state compare equal line by line.
type Breakdown struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	// Revision matches the session revision the breakdown was computed
	// from.
	Revision   int64
	Lines      []Line
	TotalPrice decimal.Decimal
	Currency   string
	ComputedAt time.Time
}

// Line returns the entry for a variable id.
func (b *Breakdown) Line(variableID string) (Line, bool) {
	for _, l := range b.Lines {
		if l.VariableID == variableID {
			return l, true
		}
	}
	return Line{}, false
}

// Clone returns a deep copy. Stores hand out clones so the persisted
// artifact can never be mutated through a returned pointer.
func (b *Breakdown) Clone() *Breakdown {
	c := *b
	c.Lines = make([]Line, len(b.Lines))
	copy(c.Lines, b.Lines)
	return &c
}
