package postgres

import (
	"database/sql"
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
)

type pickTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	LeagueID      string         `db:"league_public_id"`
	ParticipantID string         `db:"participant_public_id"`
	Round         int            `db:"round"`
	PickNumber    int            `db:"pick_number"`
	PlayerID      sql.NullString `db:"player_public_id"`
	Status        string         `db:"status"`
	PickedAt      *time.Time     `db:"picked_at"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (m pickTableModel) FromRow() draft.PickSlot {
	slot := draft.PickSlot{
		ID:            m.PublicID,
		LeagueID:      m.LeagueID,
		ParticipantID: m.ParticipantID,
		Round:         m.Round,
		PickNumber:    m.PickNumber,
		Status:        draft.SlotStatus(m.Status),
		PickedAt:      m.PickedAt,
		CreatedAt:     m.CreatedAt,
	}
	if m.PlayerID.Valid {
		slot.PlayerID = m.PlayerID.String
	}
	return slot
}

type pickInsertModel struct {
	PublicID      string `db:"public_id"`
	LeagueID      string `db:"league_public_id"`
	ParticipantID string `db:"participant_public_id"`
	Round         int    `db:"round"`
	PickNumber    int    `db:"pick_number"`
	Status        string `db:"status"`
}
