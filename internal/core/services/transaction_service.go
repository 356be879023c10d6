package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lakemi26/tech-challenge/internal/apperrors"
	"github.com/lakemi26/tech-challenge/internal/core/domain"
	portsrepo "github.com/lakemi26/tech-challenge/internal/core/ports/repositories"
	portssvc "github.com/lakemi26/tech-challenge/internal/core/ports/services"
	"github.com/lakemi26/tech-challenge/internal/dto"
	"github.com/lakemi26/tech-challenge/internal/utils/mapping"
)

const defaultPageSize = 20

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	repo     portsrepo.TransactionRepositoryFacade
	pageSize int
	now      func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithPageSize overrides the default history page size.
func WithPageSize(size int) TransactionServiceOption {
	return func(s *transactionService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithClock overrides the wall clock, used by tests.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		repo:     repo,
		pageSize: defaultPageSize,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// startOfDay strips the time-of-day; transaction dates carry calendar-day
// semantics only.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CreateTransaction validates the request and persists a new record,
// returning it with the store-minted ID.
func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	now := s.now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	txn := domain.Transaction{
		OwnerID:     ownerID,
		Kind:        domain.Kind(req.Kind),
		Amount:      req.Amount,
		Category:    domain.Category(req.Category),
		Description: req.Description,
		OccurredAt:  startOfDay(occurredAt),
		RecordedAt:  now,
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	id, err := s.repo.CreateTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	txn.ID = id

	s.LogInfo(ctx, "Transaction created",
		slog.String("owner_id", ownerID),
		slog.String("txn_id", id),
		slog.String("kind", string(txn.Kind)))
	return &txn, nil
}

// UpdateTransaction applies a validated partial patch and returns the
// updated record.
func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID, txnID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	existing, err := s.repo.FindTransactionByID(ctx, ownerID, txnID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", txnID, err)
	}

	patch := mapping.ToTransactionPatch(req)
	if patch.IsEmpty() {
		return existing, nil
	}
	if patch.OccurredAt != nil {
		day := startOfDay(*patch.OccurredAt)
		patch.OccurredAt = &day
	}

	// Validate the patched result so a patch can't sneak in a combination
	// the create path rejects.
	updated := patch.ApplyTo(*existing)
	if err := updated.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if err := s.repo.UpdateTransaction(ctx, ownerID, txnID, patch); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("owner_id", ownerID),
			slog.String("txn_id", txnID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", txnID, err)
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("owner_id", ownerID),
		slog.String("txn_id", txnID))
	return &updated, nil
}

// DeleteTransaction removes one of the owner's records.
func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID, txnID string) error {
	if err := s.RequireOwner(ownerID); err != nil {
		return err
	}
	if err := s.repo.DeleteTransaction(ctx, ownerID, txnID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("owner_id", ownerID),
			slog.String("txn_id", txnID))
		return fmt.Errorf("failed to delete transaction %s: %w", txnID, err)
	}
	s.LogInfo(ctx, "Transaction deleted",
		slog.String("owner_id", ownerID),
		slog.String("txn_id", txnID))
	return nil
}

// GetTransactionByID retrieves a single record.
func (s *transactionService) GetTransactionByID(ctx context.Context, ownerID, txnID string) (*domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	txn, err := s.repo.FindTransactionByID(ctx, ownerID, txnID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", txnID, err)
	}
	return txn, nil
}

// ListTransactionsByMonth retrieves the owner's full month, newest first.
func (s *transactionService) ListTransactionsByMonth(ctx context.Context, ownerID string, period domain.Period) ([]domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	txns, err := s.repo.ListTransactionsByMonth(ctx, ownerID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list month transactions",
			slog.String("owner_id", ownerID),
			slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to list transactions for %s: %w", period, err)
	}
	return txns, nil
}

// ListTransactions retrieves one page of the owner's history.
func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	txns, nextToken, err := s.repo.ListAllTransactionsPaged(ctx, ownerID, pageSize, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions page", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Items:     mapping.ToTransactionResponses(txns),
		NextToken: nextToken,
	}, nil
}
