package postgres

import (
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/player"
)

type playerTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Name        string     `db:"name"`
	Club        string     `db:"club"`
	Position    string     `db:"position"`
	PlayerRefID int64      `db:"player_ref_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

func (m playerTableModel) FromRow() player.Player {
	return player.Player{
		ID:          m.PublicID,
		Name:        m.Name,
		Club:        m.Club,
		Position:    player.Position(m.Position),
		PlayerRefID: m.PlayerRefID,
	}
}
