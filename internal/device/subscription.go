package device

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// Subscription is the handle returned by Subscribe. Close is idempotent.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

type subscriberSet struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]Subscriber
}

// Subscriber receives alert responses. ctx is the context of the Publish call.
type Subscriber func(ctx context.Context, resp AlertResponse)

func (n *Notifier) Subscribe(fn Subscriber) *Subscription {
	n.subscribers.mu.Lock()
	defer n.subscribers.mu.Unlock()

	if n.subscribers.subs == nil {
		n.subscribers.subs = make(map[uint64]Subscriber)
	}
	id := n.subscribers.nextID
	n.subscribers.nextID++
	n.subscribers.subs[id] = fn

	return &Subscription{
		cancel: func() {
			n.subscribers.mu.Lock()
			defer n.subscribers.mu.Unlock()
			delete(n.subscribers.subs, id)
		},
	}
}

// Publish delivers resp with ctx to every live subscriber in subscription order and
// returns how many received it. Callbacks run outside the lock and may close their subscription.
func (n *Notifier) Publish(ctx context.Context, resp AlertResponse) int {
	n.subscribers.mu.Lock()
	ids := make([]uint64, 0, len(n.subscribers.subs))
	for id := range n.subscribers.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]Subscriber, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, n.subscribers.subs[id])
	}
	n.subscribers.mu.Unlock()

	slog.DebugContext(ctx, "publishing alert response",
		slog.String("local_id", resp.LocalID),
		slog.String("action_type", resp.ActionType.String()),
		slog.Int("subscribers", len(fns)),
	)

	for _, fn := range fns {
		fn(ctx, resp)
	}
	return len(fns)
}
