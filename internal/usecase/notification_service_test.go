package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/notification"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/infrastructure/repository/memory"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
)

type recordingSender struct {
	mu    sync.Mutex
	sent  []notification.PushSubscription
	fail  map[string]error
}

func (s *recordingSender) Send(_ context.Context, sub notification.PushSubscription, _ PushPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.fail[sub.Endpoint]; ok {
		return err
	}
	s.sent = append(s.sent, sub)
	return nil
}

func (s *recordingSender) sentEndpoints() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.sent))
	for _, sub := range s.sent {
		out = append(out, sub.Endpoint)
	}
	return out
}

func TestNotificationService_SubscribeValidatesInput(t *testing.T) {
	repo := memory.NewPushSubscriptionRepository()
	service := NewNotificationService(repo, &recordingSender{}, nil, logging.NewNop())

	err := service.Subscribe(context.Background(), SubscribeInput{UserID: "user-1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	err = service.Subscribe(context.Background(), SubscribeInput{
		UserID:   "user-1",
		Endpoint: "https://push.example.com/ep1",
		P256DH:   "key",
		Auth:     "auth",
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	subs, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list subscriptions: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected one subscription, got %d", len(subs))
	}
}

func TestNotificationService_DeliverFansOutToAllDevices(t *testing.T) {
	repo := memory.NewPushSubscriptionRepository()
	sender := &recordingSender{}
	service := NewNotificationService(repo, sender, nil, logging.NewNop())

	for i := 1; i <= 3; i++ {
		if err := service.Subscribe(context.Background(), SubscribeInput{
			UserID:   "user-1",
			Endpoint: fmt.Sprintf("https://push.example.com/ep%d", i),
			P256DH:   "key",
			Auth:     "auth",
		}); err != nil {
			t.Fatalf("subscribe %d: %v", i, err)
		}
	}

	service.deliver(context.Background(), "user-1", PushPayload{Title: "League", Body: "You're on the clock."})

	if got := len(sender.sentEndpoints()); got != 3 {
		t.Fatalf("expected 3 deliveries, got %d", got)
	}
}

func TestNotificationService_DeliverPrunesGoneSubscriptions(t *testing.T) {
	repo := memory.NewPushSubscriptionRepository()
	sender := &recordingSender{
		fail: map[string]error{
			"https://push.example.com/gone": fmt.Errorf("status 410: %w", notification.ErrSubscriptionGone),
		},
	}
	service := NewNotificationService(repo, sender, nil, logging.NewNop())

	for _, endpoint := range []string{"https://push.example.com/gone", "https://push.example.com/live"} {
		if err := service.Subscribe(context.Background(), SubscribeInput{
			UserID:   "user-1",
			Endpoint: endpoint,
			P256DH:   "key",
			Auth:     "auth",
		}); err != nil {
			t.Fatalf("subscribe: %v", err)
		}
	}

	service.deliver(context.Background(), "user-1", PushPayload{Title: "League", Body: "Pick made."})

	subs, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list subscriptions: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected gone endpoint pruned, got %d subscriptions", len(subs))
	}
	if subs[0].Endpoint != "https://push.example.com/live" {
		t.Fatalf("wrong survivor: %s", subs[0].Endpoint)
	}
}

func TestNotificationService_UnsubscribeRemovesEndpoint(t *testing.T) {
	repo := memory.NewPushSubscriptionRepository()
	service := NewNotificationService(repo, &recordingSender{}, nil, logging.NewNop())

	if err := service.Subscribe(context.Background(), SubscribeInput{
		UserID:   "user-1",
		Endpoint: "https://push.example.com/ep1",
		P256DH:   "key",
		Auth:     "auth",
	}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := service.Unsubscribe(context.Background(), "user-1", "https://push.example.com/ep1"); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}

	subs, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list subscriptions: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("expected no subscriptions, got %d", len(subs))
	}
}
