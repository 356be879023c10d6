package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
	portsrepo "github.com/lakemi26/tech-challenge/internal/core/ports/repositories"
	portssvc "github.com/lakemi26/tech-challenge/internal/core/ports/services"
)

type feedKey struct {
	ownerID string
	period  domain.Period
}

// monthFeed fans one upstream store subscription out to any number of
// consumers of the same (owner, period) pair.
type monthFeed struct {
	mu       sync.Mutex
	subs     map[int]portsrepo.SnapshotFunc
	nextID   int
	snapshot []domain.Transaction
	hasSnap  bool
	stop     portsrepo.Unsubscribe
}

func (f *monthFeed) deliver(txns []domain.Transaction) {
	f.mu.Lock()
	f.snapshot = txns
	f.hasSnap = true
	fns := make([]portsrepo.SnapshotFunc, 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(txns)
	}
}

// feedService implements the TransactionFeedSvc interface
type feedService struct {
	BaseService
	sub portsrepo.TransactionSubscriber

	mu    sync.Mutex
	feeds map[feedKey]*monthFeed
	group singleflight.Group
}

// NewFeedService creates a new transaction feed service
func NewFeedService(sub portsrepo.TransactionSubscriber) portssvc.TransactionFeedSvc {
	return &feedService{
		sub:   sub,
		feeds: make(map[feedKey]*monthFeed),
	}
}

// Ensure feedService implements the TransactionFeedSvc interface
var _ portssvc.TransactionFeedSvc = (*feedService)(nil)

// SubscribeByMonth registers fn on the shared feed for (ownerID, period),
// opening the upstream subscription on first use. A consumer joining an
// already-open feed receives the cached snapshot immediately.
func (s *feedService) SubscribeByMonth(ctx context.Context, ownerID string, period domain.Period, fn portsrepo.SnapshotFunc) (portsrepo.Unsubscribe, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}

	key := feedKey{ownerID: ownerID, period: period}
	feed, err := s.acquireFeed(ctx, key)
	if err != nil {
		return nil, err
	}

	feed.mu.Lock()
	id := feed.nextID
	feed.nextID++
	feed.subs[id] = fn
	replay := feed.hasSnap
	snapshot := feed.snapshot
	feed.mu.Unlock()

	if replay {
		fn(snapshot)
	}

	var once sync.Once
	return func() {
		once.Do(func() { s.release(key, feed, id) })
	}, nil
}

// acquireFeed returns the feed for key, creating it and its upstream
// subscription exactly once even under concurrent first subscribers.
func (s *feedService) acquireFeed(ctx context.Context, key feedKey) (*monthFeed, error) {
	s.mu.Lock()
	if feed, ok := s.feeds[key]; ok {
		s.mu.Unlock()
		return feed, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(key.ownerID+"|"+key.period.String(), func() (any, error) {
		s.mu.Lock()
		if feed, ok := s.feeds[key]; ok {
			s.mu.Unlock()
			return feed, nil
		}
		s.mu.Unlock()

		feed := &monthFeed{subs: make(map[int]portsrepo.SnapshotFunc)}
		stop, err := s.sub.SubscribeByMonth(ctx, key.ownerID, key.period, feed.deliver)
		if err != nil {
			s.LogError(ctx, err, "Failed to open month feed",
				slog.String("owner_id", key.ownerID),
				slog.String("period", key.period.String()))
			return nil, fmt.Errorf("failed to open feed for %s: %w", key.period, err)
		}
		feed.stop = stop

		s.mu.Lock()
		s.feeds[key] = feed
		s.mu.Unlock()

		s.LogDebug(ctx, "Month feed opened",
			slog.String("owner_id", key.ownerID),
			slog.String("period", key.period.String()))
		return feed, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*monthFeed), nil
}

// release drops one consumer; the last one out closes the upstream
// subscription and forgets the feed.
func (s *feedService) release(key feedKey, feed *monthFeed, id int) {
	feed.mu.Lock()
	delete(feed.subs, id)
	empty := len(feed.subs) == 0
	stop := feed.stop
	feed.mu.Unlock()

	if !empty {
		return
	}

	s.mu.Lock()
	if current, ok := s.feeds[key]; ok && current == feed {
		delete(s.feeds, key)
	}
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
}
