package memory

import (
	"context"
	"sync"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/notification"
)

type PushSubscriptionRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]notification.PushSubscription // user id -> endpoint -> sub
}

func NewPushSubscriptionRepository() *PushSubscriptionRepository {
	return &PushSubscriptionRepository{
		items: make(map[string]map[string]notification.PushSubscription),
	}
}

func (r *PushSubscriptionRepository) Upsert(_ context.Context, sub notification.PushSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byEndpoint, ok := r.items[sub.UserID]
	if !ok {
		byEndpoint = make(map[string]notification.PushSubscription)
		r.items[sub.UserID] = byEndpoint
	}
	byEndpoint[sub.Endpoint] = sub
	return nil
}

func (r *PushSubscriptionRepository) ListByUser(_ context.Context, userID string) ([]notification.PushSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notification.PushSubscription, 0, len(r.items[userID]))
	for _, sub := range r.items[userID] {
		out = append(out, sub)
	}

	return out, nil
}

func (r *PushSubscriptionRepository) DeleteByEndpoint(_ context.Context, userID, endpoint string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if byEndpoint, ok := r.items[userID]; ok {
		delete(byEndpoint, endpoint)
	}
	return nil
}
