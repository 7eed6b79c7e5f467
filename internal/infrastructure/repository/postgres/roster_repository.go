package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/roster"
	qb "github.com/FutDrafts/futdrafts.com-sub001/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) Create(ctx context.Context, p roster.Participant) error {
	insertModel := participantInsertModel{
		PublicID: p.ID,
		LeagueID: p.LeagueID,
		UserID:   p.UserID,
		Role:     string(p.Role),
		Status:   string(p.Status),
		JoinedAt: p.JoinedAt,
	}
	query, args, err := qb.InsertModel("league_participants", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create participant query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create participant: %w", err)
	}

	return nil
}

func (r *RosterRepository) GetByID(ctx context.Context, participantID string) (roster.Participant, bool, error) {
	query, args, err := qb.Select("*").From("league_participants").
		Where(
			qb.Eq("public_id", participantID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return roster.Participant{}, false, fmt.Errorf("build get participant by id query: %w", err)
	}

	var row participantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Participant{}, false, nil
		}
		return roster.Participant{}, false, fmt.Errorf("get participant by id: %w", err)
	}

	return row.FromRow(), true, nil
}

func (r *RosterRepository) GetByLeagueAndUser(ctx context.Context, leagueID, userID string) (roster.Participant, bool, error) {
	query, args, err := qb.Select("*").From("league_participants").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return roster.Participant{}, false, fmt.Errorf("build get participant query: %w", err)
	}

	var row participantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Participant{}, false, nil
		}
		return roster.Participant{}, false, fmt.Errorf("get participant by league and user: %w", err)
	}

	return row.FromRow(), true, nil
}

func (r *RosterRepository) ListByLeague(ctx context.Context, leagueID string) ([]roster.Participant, error) {
	query, args, err := qb.Select("*").From("league_participants").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("joined_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list participants query: %w", err)
	}

	var rows []participantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list participants by league: %w", err)
	}

	out := make([]roster.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.FromRow())
	}

	return out, nil
}

func (r *RosterRepository) CountByLeague(ctx context.Context, leagueID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("league_participants").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("status", string(roster.StatusActive)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count participants query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count participants by league: %w", err)
	}

	return count, nil
}
