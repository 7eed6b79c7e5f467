package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/notification"
	qb "github.com/FutDrafts/futdrafts.com-sub001/internal/platform/querybuilder"
)

type PushSubscriptionRepository struct {
	db *sqlx.DB
}

func NewPushSubscriptionRepository(db *sqlx.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{db: db}
}

func (r *PushSubscriptionRepository) Upsert(ctx context.Context, sub notification.PushSubscription) error {
	insertModel := pushSubscriptionInsertModel{
		UserID:   sub.UserID,
		Endpoint: sub.Endpoint,
		P256DH:   sub.P256DH,
		Auth:     sub.Auth,
	}
	query, args, err := qb.InsertModel("push_subscriptions", insertModel,
		"ON CONFLICT (user_id, endpoint) DO UPDATE SET p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth")
	if err != nil {
		return fmt.Errorf("build upsert push subscription query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert push subscription: %w", err)
	}

	return nil
}

func (r *PushSubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]notification.PushSubscription, error) {
	query, args, err := qb.Select("*").From("push_subscriptions").
		Where(qb.Eq("user_id", userID)).
		OrderBy("created_at ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list push subscriptions query: %w", err)
	}

	var rows []pushSubscriptionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list push subscriptions by user: %w", err)
	}

	out := make([]notification.PushSubscription, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.FromRow())
	}

	return out, nil
}

func (r *PushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, userID, endpoint string) error {
	query, args, err := qb.DeleteFrom("push_subscriptions").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("endpoint", endpoint),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete push subscription query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete push subscription: %w", err)
	}

	return nil
}
