package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind indicates how a transaction moves money in or out of the account.
// The string values are the ones persisted by the store.
type Kind string

const (
	KindDeposit    Kind = "deposito"
	KindWithdrawal Kind = "saque"
	KindTransfer   Kind = "transferencia"
)

// Category classifies what a transaction was for.
type Category string

const (
	CategorySalary     Category = "salario"
	CategoryHousing    Category = "moradia"
	CategoryFood       Category = "alimentacao"
	CategoryHealth     Category = "saude"
	CategoryInvestment Category = "investimento"
	CategoryUtilities  Category = "utilidades"
)

// MaxDescriptionLength is the longest description accepted at the input boundary.
const MaxDescriptionLength = 140

// Transaction represents a single income or outflow record owned by one user.
// The store is the authority; the application only holds copies.
type Transaction struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerID"`
	Kind        Kind            `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	OccurredAt  time.Time       `json:"occurredAt"` // calendar date, no time-of-day semantics
	RecordedAt  time.Time       `json:"recordedAt"` // creation timestamp, informational only
}

// IsInflow reports whether the transaction increases the balance.
func (t Transaction) IsInflow() bool {
	return t.Kind == KindDeposit
}

// IsOutflow reports whether the transaction decreases the balance.
func (t Transaction) IsOutflow() bool {
	return t.Kind == KindWithdrawal || t.Kind == KindTransfer
}

// Magnitude returns the absolute amount of the transaction.
// Older records may have been persisted with a negative sign for outflows,
// so the sign of the stored amount is never trusted.
func (t Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}

// SignedAmount returns the transaction's contribution to the balance,
// derived from Kind rather than from the stored sign.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsInflow() {
		return t.Magnitude()
	}
	return t.Magnitude().Neg()
}

// ValidKind reports whether k is one of the known transaction kinds.
func ValidKind(k Kind) bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindTransfer:
		return true
	}
	return false
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategorySalary, CategoryHousing, CategoryFood, CategoryHealth, CategoryInvestment, CategoryUtilities:
		return true
	}
	return false
}

// Validate checks the invariants that must hold before a transaction
// reaches the store. Records with an unknown kind are rejected here so the
// aggregation engine never has to guess a classification.
func (t Transaction) Validate() error {
	if !ValidKind(t.Kind) {
		return fmt.Errorf("unknown transaction kind '%s'", t.Kind)
	}
	if !ValidCategory(t.Category) {
		return fmt.Errorf("unknown category '%s'", t.Category)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", t.Amount.String())
	}
	if len([]rune(t.Description)) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds %d characters", MaxDescriptionLength)
	}
	if t.Category == CategorySalary && t.IsOutflow() {
		return fmt.Errorf("salary category is not allowed on outflow transactions")
	}
	if t.OccurredAt.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}
