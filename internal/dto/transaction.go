package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is the shared validator instance for request DTOs.
var validate = validator.New()

// CreateTransactionRequest defines the input for recording a transaction.
// Amount is the magnitude; the classification comes from Kind.
type CreateTransactionRequest struct {
	Kind        string          `json:"kind" validate:"required,oneof=deposito saque transferencia"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Category    string          `json:"category" validate:"required,oneof=salario moradia alimentacao saude investimento utilidades"`
	Description string          `json:"description" validate:"max=140"`
	OccurredAt  *time.Time      `json:"occurredAt,omitempty"` // defaults to today
}

// Validate runs the tag-level checks. Cross-field rules (positive amount,
// salary/outflow combination) live in domain.Transaction.Validate.
func (r CreateTransactionRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateTransactionRequest defines a partial update; nil fields are untouched.
type UpdateTransactionRequest struct {
	Kind        *string          `json:"kind,omitempty" validate:"omitempty,oneof=deposito saque transferencia"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,oneof=salario moradia alimentacao saude investimento utilidades"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=140"`
	OccurredAt  *time.Time       `json:"occurredAt,omitempty"`
}

// Validate runs the tag-level checks on the patch.
func (r UpdateTransactionRequest) Validate() error {
	return validate.Struct(r)
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	OccurredAt  time.Time       `json:"occurredAt"`
	RecordedAt  time.Time       `json:"recordedAt"`
}

// ListTransactionsParams holds the pagination inputs for the history listing.
type ListTransactionsParams struct {
	PageSize  int     `json:"pageSize"`
	NextToken *string `json:"nextToken,omitempty"`
}

// ListTransactionsResponse is one page of the owner's history.
// NextToken is nil when the page is the last one.
type ListTransactionsResponse struct {
	Items     []TransactionResponse `json:"items"`
	NextToken *string               `json:"nextToken,omitempty"`
}
