package notification

import "context"

// Repository exposes push-subscription persistence operations.
type Repository interface {
	Upsert(ctx context.Context, sub PushSubscription) error
	ListByUser(ctx context.Context, userID string) ([]PushSubscription, error)
	DeleteByEndpoint(ctx context.Context, userID, endpoint string) error
}
