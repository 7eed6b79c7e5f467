package postgres

import (
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/notification"
)

type pushSubscriptionTableModel struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Endpoint  string    `db:"endpoint"`
	P256DH    string    `db:"p256dh"`
	Auth      string    `db:"auth"`
	CreatedAt time.Time `db:"created_at"`
}

func (m pushSubscriptionTableModel) FromRow() notification.PushSubscription {
	return notification.PushSubscription{
		UserID:    m.UserID,
		Endpoint:  m.Endpoint,
		P256DH:    m.P256DH,
		Auth:      m.Auth,
		CreatedAt: m.CreatedAt,
	}
}

type pushSubscriptionInsertModel struct {
	UserID   string `db:"user_id"`
	Endpoint string `db:"endpoint"`
	P256DH   string `db:"p256dh"`
	Auth     string `db:"auth"`
}
