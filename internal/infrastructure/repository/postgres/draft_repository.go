package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/league"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/roster"
	qb "github.com/FutDrafts/futdrafts.com-sub001/internal/platform/querybuilder"
)

type DraftRepository struct {
	db *sqlx.DB
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// SeedDraft flips the league's draft-started flag, stamps draft positions,
// and inserts the whole pick ledger in one transaction. The flag update is
// conditional on draft_started still being false, so a concurrent start
// loses cleanly instead of double-seeding.
func (r *DraftRepository) SeedDraft(ctx context.Context, seed draft.Seed) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx seed draft: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	flipQuery, flipArgs, err := qb.Update("fantasy_leagues").
		Set("draft_started", true).
		Set("draft_status", string(league.DraftInProgress)).
		Set("status", string(league.StatusActive)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", seed.LeagueID),
			qb.Eq("draft_started", false),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build draft started flip query: %w", err)
	}
	flipResult, err := tx.ExecContext(ctx, flipQuery, flipArgs...)
	if err != nil {
		return fmt.Errorf("flip draft started: %w", err)
	}
	affected, err := flipResult.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected draft started flip: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: league=%s", draft.ErrAlreadyStarted, seed.LeagueID)
	}

	// The roster was validated before the transaction opened. Locking the
	// participant rows and recounting closes the window where a join or
	// leave commits between that read and the ledger insert.
	lockQuery, lockArgs, err := participantLockQuery(seed.LeagueID)
	if err != nil {
		return fmt.Errorf("build participant lock query: %w", err)
	}
	var lockedIDs []string
	if err := tx.SelectContext(ctx, &lockedIDs, lockQuery, lockArgs...); err != nil {
		return fmt.Errorf("lock league participants: %w", err)
	}
	locked := make(map[string]struct{}, len(lockedIDs))
	for _, id := range lockedIDs {
		locked[id] = struct{}{}
	}
	for participantID := range seed.PositionsBy {
		if _, ok := locked[participantID]; !ok {
			return fmt.Errorf("participant %s left the league while the draft was starting", participantID)
		}
	}
	if len(lockedIDs) != len(seed.PositionsBy) {
		return fmt.Errorf("participant count changed while the draft was starting: have %d, seeding %d", len(lockedIDs), len(seed.PositionsBy))
	}

	positionQuery, positionArgs, err := participantPositionsQuery(seed.PositionsBy)
	if err != nil {
		return fmt.Errorf("build draft position query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, positionQuery, positionArgs...); err != nil {
		return fmt.Errorf("stamp draft positions: %w", err)
	}

	insertModels := make([]pickInsertModel, 0, len(seed.Slots))
	for _, slot := range seed.Slots {
		insertModels = append(insertModels, pickInsertModel{
			PublicID:      slot.ID,
			LeagueID:      slot.LeagueID,
			ParticipantID: slot.ParticipantID,
			Round:         slot.Round,
			PickNumber:    slot.PickNumber,
			Status:        string(slot.Status),
		})
	}
	insertQuery, insertArgs, err := qb.InsertModels("draft_picks", insertModels, "")
	if err != nil {
		return fmt.Errorf("build seed ledger query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("seed pick ledger: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed draft tx: %w", err)
	}

	return nil
}

func participantLockQuery(leagueID string) (string, []any, error) {
	return qb.Select("public_id").From("league_participants").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("status", string(roster.StatusActive)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("public_id ASC").
		ForUpdate().
		ToSQL()
}

// participantPositionsQuery stamps every draft position in one statement.
func participantPositionsQuery(positionsBy map[string]int) (string, []any, error) {
	if len(positionsBy) == 0 {
		return "", nil, fmt.Errorf("draft positions are required")
	}

	ids := make([]string, 0, len(positionsBy))
	for id := range positionsBy {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var caseExpr strings.Builder
	caseExpr.WriteString("CASE public_id")
	caseArgs := make([]any, 0, len(ids)*2)
	inValues := make([]any, 0, len(ids))
	for _, id := range ids {
		caseExpr.WriteString(" WHEN ? THEN ?")
		caseArgs = append(caseArgs, id, positionsBy[id])
		inValues = append(inValues, id)
	}
	caseExpr.WriteString(" END")

	return qb.Update("league_participants").
		SetExpr("draft_position", caseExpr.String(), caseArgs...).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.In("public_id", inValues),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
}

func (r *DraftRepository) FindNextPending(ctx context.Context, leagueID string) (draft.PickSlot, bool, error) {
	query, args, err := qb.Select("*").From("draft_picks").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("status", string(draft.SlotPending)),
		).
		OrderBy("pick_number ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return draft.PickSlot{}, false, fmt.Errorf("build find next pending query: %w", err)
	}

	var row pickTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.PickSlot{}, false, nil
		}
		return draft.PickSlot{}, false, fmt.Errorf("find next pending pick: %w", err)
	}

	return row.FromRow(), true, nil
}

func (r *DraftRepository) FindCompletedByPlayer(ctx context.Context, leagueID, playerID string) (draft.PickSlot, bool, error) {
	query, args, err := qb.Select("*").From("draft_picks").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("player_public_id", playerID),
			qb.Eq("status", string(draft.SlotCompleted)),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return draft.PickSlot{}, false, fmt.Errorf("build find completed by player query: %w", err)
	}

	var row pickTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.PickSlot{}, false, nil
		}
		return draft.PickSlot{}, false, fmt.Errorf("find completed pick by player: %w", err)
	}

	return row.FromRow(), true, nil
}

func (r *DraftRepository) ListByLeague(ctx context.Context, leagueID string) ([]draft.PickSlot, error) {
	query, args, err := qb.Select("*").From("draft_picks").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("pick_number ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks by league: %w", err)
	}

	out := make([]draft.PickSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.FromRow())
	}

	return out, nil
}

func (r *DraftRepository) CountPending(ctx context.Context, leagueID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("draft_picks").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("status", string(draft.SlotPending)),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count pending picks query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count pending picks: %w", err)
	}

	return count, nil
}

// CompletePick is the commit point of the pick flow. The status guard in the
// WHERE clause makes the transition atomic: whichever request gets there
// first flips pending to completed, every later one affects zero rows.
func (r *DraftRepository) CompletePick(ctx context.Context, pickSlotID, playerID string, expectedStatus draft.SlotStatus) (int64, error) {
	query, args, err := qb.Update("draft_picks").
		Set("player_public_id", playerID).
		Set("status", string(draft.SlotCompleted)).
		SetExpr("picked_at", "NOW()").
		Where(
			qb.Eq("public_id", pickSlotID),
			qb.Eq("status", string(expectedStatus)),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build complete pick query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("complete pick: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected complete pick: %w", err)
	}

	return affected, nil
}
