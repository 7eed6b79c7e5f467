package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelect_Basic(t *testing.T) {
	sql, args, err := Select("id", "name").
		From("fantasy_leagues").
		Where(Eq("status", "active"), IsNull("deleted_at")).
		OrderBy("created_at DESC").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "SELECT id, name FROM fantasy_leagues WHERE status = $1 AND deleted_at IS NULL ORDER BY created_at DESC LIMIT 5"
	if sql != wantSQL {
		t.Fatalf("sql mismatch:\ngot=%s\nwant=%s", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"active"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestSelect_ForUpdate(t *testing.T) {
	sql, _, err := Select("id", "status").
		From("draft_picks").
		Where(Eq("league_id", "lg_1"), Eq("status", "pending")).
		OrderBy("pick_number ASC").
		Limit(1).
		ForUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "SELECT id, status FROM draft_picks WHERE league_id = $1 AND status = $2 ORDER BY pick_number ASC LIMIT 1 FOR UPDATE"
	if sql != wantSQL {
		t.Fatalf("sql mismatch:\ngot=%s\nwant=%s", sql, wantSQL)
	}
}

func TestSelect_In(t *testing.T) {
	sql, args, err := Select("id").
		From("players").
		Where(In("position", []any{"GK", "DEF"})).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "SELECT id FROM players WHERE position IN ($1, $2)"
	if sql != wantSQL {
		t.Fatalf("sql mismatch:\ngot=%s\nwant=%s", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"GK", "DEF"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestSelect_InEmptyMatchesNothing(t *testing.T) {
	sql, args, err := Select("id").From("players").Where(In("position", nil)).ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sql != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("sql mismatch: %s", sql)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestInsert_MultiRow(t *testing.T) {
	sql, args, err := InsertInto("draft_picks").
		Columns("id", "pick_number").
		Values("pk_1", 1).
		Values("pk_2", 2).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "INSERT INTO draft_picks (id, pick_number) VALUES ($1, $2), ($3, $4)"
	if sql != wantSQL {
		t.Fatalf("sql mismatch:\ngot=%s\nwant=%s", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"pk_1", 1, "pk_2", 2}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestInsert_RowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("draft_picks").
		Columns("id", "pick_number").
		Values("pk_1").
		ToSQL()
	if err == nil {
		t.Fatal("expected arity error")
	}
}

func TestUpdate_ConditionalTransition(t *testing.T) {
	sql, args, err := Update("draft_picks").
		Set("status", "completed").
		Set("player_id", "pl_9").
		SetExpr("picked_at", "NOW()").
		Where(Eq("id", "pk_1"), Eq("status", "pending")).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "UPDATE draft_picks SET status = $1, player_id = $2, picked_at = NOW() WHERE id = $3 AND status = $4"
	if sql != wantSQL {
		t.Fatalf("sql mismatch:\ngot=%s\nwant=%s", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"completed", "pl_9", "pk_1", "pending"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestUpdate_ExprPlaceholdersAreRewritten(t *testing.T) {
	sql, args, err := Update("fantasy_leagues").
		SetExpr("draft_position", "CASE id WHEN ? THEN 1 WHEN ? THEN 2 END", "pt_a", "pt_b").
		Where(Eq("league_id", "lg_1")).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "UPDATE fantasy_leagues SET draft_position = CASE id WHEN $1 THEN 1 WHEN $2 THEN 2 END WHERE league_id = $3"
	if sql != wantSQL {
		t.Fatalf("sql mismatch:\ngot=%s\nwant=%s", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"pt_a", "pt_b", "lg_1"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestDelete_RequiresConditions(t *testing.T) {
	if _, _, err := DeleteFrom("push_subscriptions").ToSQL(); err == nil {
		t.Fatal("expected error for unconditional delete")
	}

	sql, args, err := DeleteFrom("push_subscriptions").
		Where(Eq("user_id", "user-1"), Eq("endpoint", "https://push.example.com/ep1")).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantSQL := "DELETE FROM push_subscriptions WHERE user_id = $1 AND endpoint = $2"
	if sql != wantSQL {
		t.Fatalf("sql mismatch:\ngot=%s\nwant=%s", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"user-1", "https://push.example.com/ep1"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

type pickRow struct {
	ID         string `db:"id"`
	PickNumber int    `db:"pick_number"`
	Internal   string `db:"-"`
	untagged   bool
}

func TestInsertModel(t *testing.T) {
	sql, args, err := InsertModel("draft_picks", pickRow{ID: "pk_1", PickNumber: 3}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "INSERT INTO draft_picks (id, pick_number) VALUES ($1, $2)"
	if sql != wantSQL {
		t.Fatalf("sql mismatch:\ngot=%s\nwant=%s", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"pk_1", 3}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestInsertModels_Bulk(t *testing.T) {
	rows := []pickRow{
		{ID: "pk_1", PickNumber: 1},
		{ID: "pk_2", PickNumber: 2},
		{ID: "pk_3", PickNumber: 3},
	}

	sql, args, err := InsertModels("draft_picks", rows, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "INSERT INTO draft_picks (id, pick_number) VALUES ($1, $2), ($3, $4), ($5, $6)"
	if sql != wantSQL {
		t.Fatalf("sql mismatch:\ngot=%s\nwant=%s", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"pk_1", 1, "pk_2", 2, "pk_3", 3}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestInsertModels_Empty(t *testing.T) {
	if _, _, err := InsertModels[pickRow]("draft_picks", nil, ""); err == nil {
		t.Fatal("expected error for empty slice")
	}
}
