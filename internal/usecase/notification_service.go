package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/notification"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
)

// PushPayload is the message rendered by the browser notification.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type pushSender interface {
	Send(ctx context.Context, sub notification.PushSubscription, payload PushPayload) error
}

type SubscribeInput struct {
	UserID   string
	Endpoint string
	P256DH   string
	Auth     string
}

// NotificationService stores per-device push subscriptions and fans
// deliveries out on a bounded worker pool so callers never block on the
// push service.
type NotificationService struct {
	subRepo notification.Repository
	sender  pushSender
	pool    *ants.Pool
	logger  *logging.Logger
	now     func() time.Time
}

func NewNotificationService(subRepo notification.Repository, sender pushSender, pool *ants.Pool, logger *logging.Logger) *NotificationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &NotificationService{
		subRepo: subRepo,
		sender:  sender,
		pool:    pool,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *NotificationService) Subscribe(ctx context.Context, input SubscribeInput) error {
	ctx, span := startUsecaseSpan(ctx, "NotificationService.Subscribe")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Endpoint = strings.TrimSpace(input.Endpoint)
	input.P256DH = strings.TrimSpace(input.P256DH)
	input.Auth = strings.TrimSpace(input.Auth)
	if input.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidInput)
	}
	if input.P256DH == "" || input.Auth == "" {
		return fmt.Errorf("%w: subscription keys are required", ErrInvalidInput)
	}

	sub := notification.PushSubscription{
		UserID:    input.UserID,
		Endpoint:  input.Endpoint,
		P256DH:    input.P256DH,
		Auth:      input.Auth,
		CreatedAt: s.now().UTC(),
	}
	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		return fmt.Errorf("upsert push subscription: %w", err)
	}

	return nil
}

func (s *NotificationService) Unsubscribe(ctx context.Context, userID, endpoint string) error {
	ctx, span := startUsecaseSpan(ctx, "NotificationService.Unsubscribe")
	defer span.End()

	userID = strings.TrimSpace(userID)
	endpoint = strings.TrimSpace(endpoint)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidInput)
	}

	if err := s.subRepo.DeleteByEndpoint(ctx, userID, endpoint); err != nil {
		return fmt.Errorf("delete push subscription: %w", err)
	}

	return nil
}

// NotifyUser delivers a push message to every device the user registered.
// Delivery is asynchronous and best effort; failures are logged, and
// endpoints the push service reports gone are pruned.
func (s *NotificationService) NotifyUser(ctx context.Context, userID, title, body string) {
	if s.sender == nil {
		return
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return
	}

	payload := PushPayload{Title: title, Body: body}
	task := func() {
		// Detached from the request lifecycle on purpose.
		taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		s.deliver(taskCtx, userID, payload)
	}

	if s.pool == nil {
		go task()
		return
	}
	if err := s.pool.Submit(task); err != nil {
		s.logger.WarnContext(ctx, "push delivery rejected by worker pool", "user_id", userID, "error", err)
	}
}

func (s *NotificationService) deliver(ctx context.Context, userID string, payload PushPayload) {
	subs, err := s.subRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list push subscriptions failed", "user_id", userID, "error", err)
		return
	}

	for _, sub := range subs {
		if err := s.sender.Send(ctx, sub, payload); err != nil {
			if errors.Is(err, notification.ErrSubscriptionGone) {
				if delErr := s.subRepo.DeleteByEndpoint(ctx, sub.UserID, sub.Endpoint); delErr != nil {
					s.logger.WarnContext(ctx, "prune gone push subscription failed", "user_id", userID, "error", delErr)
				}
				continue
			}
			s.logger.WarnContext(ctx, "push delivery failed", "user_id", userID, "error", err)
		}
	}
}
