package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionPatch is a partial update for a stored transaction. Nil fields
// are left untouched; a non-nil OccurredAt replaces the stored date.
type TransactionPatch struct {
	Kind        *Kind
	Amount      *decimal.Decimal
	Category    *Category
	Description *string
	OccurredAt  *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Kind == nil && p.Amount == nil && p.Category == nil && p.Description == nil && p.OccurredAt == nil
}

// ApplyTo returns a copy of t with the patch applied.
func (p TransactionPatch) ApplyTo(t Transaction) Transaction {
	if p.Kind != nil {
		t.Kind = *p.Kind
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.OccurredAt != nil {
		t.OccurredAt = *p.OccurredAt
	}
	return t
}
