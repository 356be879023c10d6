package repositories

import (
	"context"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
)

// Unsubscribe stops a live subscription. After it returns, the callback is
// not invoked again; failing to call it leaks the subscription.
type Unsubscribe func()

// SnapshotFunc receives the full current result set of a live subscription.
// It is invoked once immediately with the current snapshot and again after
// every change, in the store's emission order. No ordering is guaranteed
// across independent subscriptions.
type SnapshotFunc func(txns []domain.Transaction)

// TransactionReader defines read operations against the transaction store.
type TransactionReader interface {
	// FindTransactionByID retrieves one of the owner's transactions, or
	// apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, ownerID, txnID string) (*domain.Transaction, error)

	// ListTransactionsByMonth eagerly fetches the owner's full month,
	// ordered by occurrence date descending.
	ListTransactionsByMonth(ctx context.Context, ownerID string, period domain.Period) ([]domain.Transaction, error)

	// ListAllTransactionsPaged retrieves one page of the owner's entire
	// history ordered by occurrence date descending, using token-based
	// forward pagination. It returns the page, a token for the next page
	// (nil when this page is the last), and an error.
	ListAllTransactionsPaged(ctx context.Context, ownerID string, pageSize int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations against the transaction store.
type TransactionWriter interface {
	// CreateTransaction persists a new record and returns the store-minted ID.
	// Fails with apperrors.ErrUnauthenticated when ownerID is empty.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (string, error)

	// UpdateTransaction applies a partial patch to one of the owner's records.
	UpdateTransaction(ctx context.Context, ownerID, txnID string, patch domain.TransactionPatch) error

	// DeleteTransaction removes one of the owner's records.
	DeleteTransaction(ctx context.Context, ownerID, txnID string) error
}

// TransactionSubscriber defines the store's live read mode.
type TransactionSubscriber interface {
	// SubscribeByMonth registers a live feed over one month of the owner's
	// records, ordered by occurrence date descending.
	SubscribeByMonth(ctx context.Context, ownerID string, period domain.Period, fn SnapshotFunc) (Unsubscribe, error)

	// SubscribeAll registers a live feed over the owner's entire history.
	SubscribeAll(ctx context.Context, ownerID string, fn SnapshotFunc) (Unsubscribe, error)
}

// TransactionRepositoryFacade combines all transaction store interfaces.
// This is a facade for clients that need access to all operations.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionSubscriber
}
