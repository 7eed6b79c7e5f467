package postgres

import (
	"database/sql"
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/roster"
)

type participantTableModel struct {
	ID            int64         `db:"id"`
	PublicID      string        `db:"public_id"`
	LeagueID      string        `db:"league_public_id"`
	UserID        string        `db:"user_id"`
	Role          string        `db:"role"`
	Status        string        `db:"status"`
	DraftPosition sql.NullInt64 `db:"draft_position"`
	JoinedAt      time.Time     `db:"joined_at"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
	DeletedAt     *time.Time    `db:"deleted_at"`
}

func (m participantTableModel) FromRow() roster.Participant {
	p := roster.Participant{
		ID:       m.PublicID,
		LeagueID: m.LeagueID,
		UserID:   m.UserID,
		Role:     roster.Role(m.Role),
		Status:   roster.Status(m.Status),
		JoinedAt: m.JoinedAt,
	}
	if m.DraftPosition.Valid {
		position := int(m.DraftPosition.Int64)
		p.DraftPosition = &position
	}
	return p
}

type participantInsertModel struct {
	PublicID string    `db:"public_id"`
	LeagueID string    `db:"league_public_id"`
	UserID   string    `db:"user_id"`
	Role     string    `db:"role"`
	Status   string    `db:"status"`
	JoinedAt time.Time `db:"joined_at"`
}
