// Package memory provides an in-memory implementation of the transaction
// repository ports, used by tests and the demo binary.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lakemi26/tech-challenge/internal/apperrors"
	"github.com/lakemi26/tech-challenge/internal/core/domain"
	portsrepo "github.com/lakemi26/tech-challenge/internal/core/ports/repositories"
	"github.com/lakemi26/tech-challenge/internal/utils/pagination"
)

type monthSub struct {
	ownerID string
	period  domain.Period
	fn      portsrepo.SnapshotFunc
}

type allSub struct {
	ownerID string
	fn      portsrepo.SnapshotFunc
}

// TransactionRepository is a thread-safe in-memory store keyed by
// transaction ID. Amounts are persisted as positive magnitudes; direction
// lives in the kind.
type TransactionRepository struct {
	mu        sync.RWMutex
	txns      map[string]domain.Transaction
	monthSubs map[int]monthSub
	allSubs   map[int]allSub
	nextSubID int
}

// NewTransactionRepository creates an empty in-memory repository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		txns:      make(map[string]domain.Transaction),
		monthSubs: make(map[int]monthSub),
		allSubs:   make(map[int]allSub),
	}
}

// Ensure TransactionRepository implements the facade
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// sortNewestFirst orders by occurrence date desc, then recording time
// desc, then ID for a stable total order.
func sortNewestFirst(txns []domain.Transaction) {
	sort.Slice(txns, func(i, j int) bool {
		a, b := txns[i], txns[j]
		if !a.OccurredAt.Equal(b.OccurredAt) {
			return a.OccurredAt.After(b.OccurredAt)
		}
		if !a.RecordedAt.Equal(b.RecordedAt) {
			return a.RecordedAt.After(b.RecordedAt)
		}
		return a.ID < b.ID
	})
}

// afterCursor reports whether t sorts strictly after the cursor position
// in the newest-first ordering.
func afterCursor(t domain.Transaction, c pagination.Cursor) bool {
	if !t.OccurredAt.Equal(c.OccurredAt) {
		return t.OccurredAt.Before(c.OccurredAt)
	}
	if !t.RecordedAt.Equal(c.RecordedAt) {
		return t.RecordedAt.Before(c.RecordedAt)
	}
	return t.ID > c.ID
}

func (r *TransactionRepository) ownerTransactions(ownerID string) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range r.txns {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out
}

func (r *TransactionRepository) monthTransactions(ownerID string, period domain.Period) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range r.txns {
		if t.OwnerID == ownerID && period.Contains(t.OccurredAt) {
			out = append(out, t)
		}
	}
	sortNewestFirst(out)
	return out
}

// notifyLocked collects the callbacks affected by a change to ownerID's
// records, with fresh snapshots. Must be called with r.mu held; the
// returned closures are invoked after the lock is released.
func (r *TransactionRepository) notifyLocked(ownerID string) []func() {
	var pending []func()
	for _, sub := range r.monthSubs {
		if sub.ownerID != ownerID {
			continue
		}
		fn, snap := sub.fn, r.monthTransactions(ownerID, sub.period)
		pending = append(pending, func() { fn(snap) })
	}
	for _, sub := range r.allSubs {
		if sub.ownerID != ownerID {
			continue
		}
		snap := r.ownerTransactions(ownerID)
		sortNewestFirst(snap)
		fn := sub.fn
		pending = append(pending, func() { fn(snap) })
	}
	return pending
}

// CreateTransaction stores a new record and returns its minted ID.
func (r *TransactionRepository) CreateTransaction(_ context.Context, txn domain.Transaction) (string, error) {
	if txn.OwnerID == "" {
		return "", apperrors.ErrUnauthenticated
	}
	txn.ID = uuid.New().String()
	txn.Amount = txn.Amount.Abs()

	r.mu.Lock()
	r.txns[txn.ID] = txn
	pending := r.notifyLocked(txn.OwnerID)
	r.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return txn.ID, nil
}

// FindTransactionByID retrieves one of the owner's records.
func (r *TransactionRepository) FindTransactionByID(_ context.Context, ownerID, txnID string) (*domain.Transaction, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	txn, ok := r.txns[txnID]
	if !ok || txn.OwnerID != ownerID {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

// ListTransactionsByMonth returns the owner's records whose occurrence
// date falls inside period, newest first.
func (r *TransactionRepository) ListTransactionsByMonth(_ context.Context, ownerID string, period domain.Period) ([]domain.Transaction, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.monthTransactions(ownerID, period), nil
}

// ListAllTransactionsPaged returns one newest-first page of the owner's
// history. The returned token is nil on the last page.
func (r *TransactionRepository) ListAllTransactionsPaged(_ context.Context, ownerID string, pageSize int, nextToken *string) ([]domain.Transaction, *string, error) {
	if ownerID == "" {
		return nil, nil, apperrors.ErrUnauthenticated
	}
	if pageSize <= 0 {
		return nil, nil, apperrors.NewValidationError("page size must be positive")
	}

	r.mu.RLock()
	all := r.ownerTransactions(ownerID)
	r.mu.RUnlock()
	sortNewestFirst(all)

	start := 0
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid page token: %w", apperrors.ErrValidation, err)
		}
		for start < len(all) && !afterCursor(all[start], cursor) {
			start++
		}
	}

	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	page := all[start:end]

	var token *string
	if end < len(all) {
		last := page[len(page)-1]
		encoded := pagination.EncodeCursor(pagination.Cursor{
			OccurredAt: last.OccurredAt,
			RecordedAt: last.RecordedAt,
			ID:         last.ID,
		})
		token = &encoded
	}
	return page, token, nil
}

// UpdateTransaction applies a partial patch to one of the owner's records.
func (r *TransactionRepository) UpdateTransaction(_ context.Context, ownerID, txnID string, patch domain.TransactionPatch) error {
	if ownerID == "" {
		return apperrors.ErrUnauthenticated
	}
	r.mu.Lock()
	txn, ok := r.txns[txnID]
	if !ok || txn.OwnerID != ownerID {
		r.mu.Unlock()
		return apperrors.ErrNotFound
	}
	updated := patch.ApplyTo(txn)
	updated.Amount = updated.Amount.Abs()
	r.txns[txnID] = updated
	pending := r.notifyLocked(ownerID)
	r.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return nil
}

// DeleteTransaction removes one of the owner's records.
func (r *TransactionRepository) DeleteTransaction(_ context.Context, ownerID, txnID string) error {
	if ownerID == "" {
		return apperrors.ErrUnauthenticated
	}
	r.mu.Lock()
	txn, ok := r.txns[txnID]
	if !ok || txn.OwnerID != ownerID {
		r.mu.Unlock()
		return apperrors.ErrNotFound
	}
	delete(r.txns, txnID)
	pending := r.notifyLocked(ownerID)
	r.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return nil
}

// SubscribeByMonth registers fn for live snapshots of one month. The
// current snapshot is delivered before returning.
func (r *TransactionRepository) SubscribeByMonth(_ context.Context, ownerID string, period domain.Period, fn portsrepo.SnapshotFunc) (portsrepo.Unsubscribe, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.monthSubs[id] = monthSub{ownerID: ownerID, period: period, fn: fn}
	snap := r.monthTransactions(ownerID, period)
	r.mu.Unlock()

	fn(snap)
	return func() {
		r.mu.Lock()
		delete(r.monthSubs, id)
		r.mu.Unlock()
	}, nil
}

// SubscribeAll registers fn for live snapshots of the owner's full
// history. The current snapshot is delivered before returning.
func (r *TransactionRepository) SubscribeAll(_ context.Context, ownerID string, fn portsrepo.SnapshotFunc) (portsrepo.Unsubscribe, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.allSubs[id] = allSub{ownerID: ownerID, fn: fn}
	snap := r.ownerTransactions(ownerID)
	sortNewestFirst(snap)
	r.mu.Unlock()

	fn(snap)
	return func() {
		r.mu.Lock()
		delete(r.allSubs, id)
		r.mu.Unlock()
	}, nil
}
