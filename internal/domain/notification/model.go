package notification

import (
	"errors"
	"time"
)

// ErrSubscriptionGone marks an endpoint the push service reports as expired
// or unsubscribed; callers should drop the stored subscription.
var ErrSubscriptionGone = errors.New("push subscription gone")

// PushSubscription is one browser push endpoint registered by a user.
// Subscriptions are durable rows keyed by (user, endpoint): a user may hold
// several (one per device) and they survive restarts.
type PushSubscription struct {
	UserID    string
	Endpoint  string
	P256DH    string
	Auth      string
	CreatedAt time.Time
}
