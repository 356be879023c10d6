package services

import (
	"context"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
	portsrepo "github.com/lakemi26/tech-challenge/internal/core/ports/repositories"
)

// TransactionFeedSvc fans a single store subscription per (owner, period)
// out to any number of consumers, so several views of the same month share
// one upstream feed. Each consumer still gets the current snapshot
// immediately on subscribe, and unsubscribing the last consumer tears the
// upstream subscription down.
type TransactionFeedSvc interface {
	SubscribeByMonth(ctx context.Context, ownerID string, period domain.Period, fn portsrepo.SnapshotFunc) (portsrepo.Unsubscribe, error)
}
