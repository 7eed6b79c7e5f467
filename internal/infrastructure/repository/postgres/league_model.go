package postgres

import (
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/league"
)

type leagueTableModel struct {
	ID              int64      `db:"id"`
	PublicID        string     `db:"public_id"`
	Name            string     `db:"name"`
	OwnerUserID     string     `db:"owner_user_id"`
	Status          string     `db:"status"`
	DraftStatus     string     `db:"draft_status"`
	DraftStarted    bool       `db:"draft_started"`
	MaxParticipants int        `db:"max_participants"`
	DraftRounds     int        `db:"draft_rounds"`
	InviteCode      string     `db:"invite_code"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

func (m leagueTableModel) FromRow() league.FantasyLeague {
	return league.FantasyLeague{
		ID:              m.PublicID,
		Name:            m.Name,
		OwnerUserID:     m.OwnerUserID,
		Status:          league.Status(m.Status),
		DraftStatus:     league.DraftStatus(m.DraftStatus),
		DraftStarted:    m.DraftStarted,
		MaxParticipants: m.MaxParticipants,
		DraftRounds:     m.DraftRounds,
		InviteCode:      m.InviteCode,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

type leagueInsertModel struct {
	PublicID        string `db:"public_id"`
	Name            string `db:"name"`
	OwnerUserID     string `db:"owner_user_id"`
	Status          string `db:"status"`
	DraftStatus     string `db:"draft_status"`
	DraftStarted    bool   `db:"draft_started"`
	MaxParticipants int    `db:"max_participants"`
	DraftRounds     int    `db:"draft_rounds"`
	InviteCode      string `db:"invite_code"`
}
