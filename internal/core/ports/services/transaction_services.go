package services

import (
	"context"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
	"github.com/lakemi26/tech-challenge/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction records.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves one of the owner's transactions.
	GetTransactionByID(ctx context.Context, ownerID, txnID string) (*domain.Transaction, error)

	// ListTransactionsByMonth retrieves the owner's full month, newest first.
	ListTransactionsByMonth(ctx context.Context, ownerID string, period domain.Period) ([]domain.Transaction, error)

	// ListTransactions retrieves one page of the owner's history.
	ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for transaction records.
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new record.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction validates and applies a partial patch.
	UpdateTransaction(ctx context.Context, ownerID, txnID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a record.
	DeleteTransaction(ctx context.Context, ownerID, txnID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
// This is a facade for clients that need access to all operations.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
