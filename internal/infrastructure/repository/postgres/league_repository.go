package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/league"
	qb "github.com/FutDrafts/futdrafts.com-sub001/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Create(ctx context.Context, l league.FantasyLeague) error {
	insertModel := leagueInsertModel{
		PublicID:        l.ID,
		Name:            l.Name,
		OwnerUserID:     l.OwnerUserID,
		Status:          string(l.Status),
		DraftStatus:     string(l.DraftStatus),
		DraftStarted:    l.DraftStarted,
		MaxParticipants: l.MaxParticipants,
		DraftRounds:     l.DraftRounds,
		InviteCode:      l.InviteCode,
	}
	query, args, err := qb.InsertModel("fantasy_leagues", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create league query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create league: %w", err)
	}

	return nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.FantasyLeague, bool, error) {
	query, args, err := qb.Select("*").From("fantasy_leagues").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.FantasyLeague{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.FantasyLeague{}, false, nil
		}
		return league.FantasyLeague{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return row.FromRow(), true, nil
}

func (r *LeagueRepository) GetByInviteCode(ctx context.Context, inviteCode string) (league.FantasyLeague, bool, error) {
	query, args, err := qb.Select("*").From("fantasy_leagues").
		Where(
			qb.Eq("invite_code", inviteCode),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.FantasyLeague{}, false, fmt.Errorf("build get league by invite code query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.FantasyLeague{}, false, nil
		}
		return league.FantasyLeague{}, false, fmt.Errorf("get league by invite code: %w", err)
	}

	return row.FromRow(), true, nil
}

func (r *LeagueRepository) ListByUser(ctx context.Context, userID string) ([]league.FantasyLeague, error) {
	query, args, err := qb.Select("*").From("fantasy_leagues").
		Where(
			qb.Expr("public_id IN (SELECT league_public_id FROM league_participants WHERE user_id = ? AND status = 'active' AND deleted_at IS NULL)", userID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues by user query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leagues by user: %w", err)
	}

	out := make([]league.FantasyLeague, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.FromRow())
	}

	return out, nil
}

func (r *LeagueRepository) SetDraftComplete(ctx context.Context, leagueID string) error {
	query, args, err := qb.Update("fantasy_leagues").
		Set("draft_status", string(league.DraftComplete)).
		Set("status", string(league.StatusCompleted)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set draft complete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set draft complete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected set draft complete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("set draft complete: league not found")
	}

	return nil
}
