package postgres

import (
	"reflect"
	"testing"
)

func TestParticipantLockQuery(t *testing.T) {
	query, args, err := participantLockQuery("lg-1")
	if err != nil {
		t.Fatalf("build lock query: %v", err)
	}

	want := "SELECT public_id FROM league_participants WHERE league_public_id = $1 AND status = $2 AND deleted_at IS NULL ORDER BY public_id ASC FOR UPDATE"
	if query != want {
		t.Fatalf("lock query:\n got=%s\nwant=%s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"lg-1", "active"}) {
		t.Fatalf("lock args: got=%v", args)
	}
}

func TestParticipantPositionsQuery_SingleStatement(t *testing.T) {
	query, args, err := participantPositionsQuery(map[string]int{
		"pt-b": 2,
		"pt-a": 1,
	})
	if err != nil {
		t.Fatalf("build positions query: %v", err)
	}

	want := "UPDATE league_participants SET draft_position = CASE public_id WHEN $1 THEN $2 WHEN $3 THEN $4 END, updated_at = NOW() WHERE public_id IN ($5, $6) AND deleted_at IS NULL"
	if query != want {
		t.Fatalf("positions query:\n got=%s\nwant=%s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"pt-a", 1, "pt-b", 2, "pt-a", "pt-b"}) {
		t.Fatalf("positions args: got=%v", args)
	}
}

func TestParticipantPositionsQuery_RequiresParticipants(t *testing.T) {
	if _, _, err := participantPositionsQuery(nil); err == nil {
		t.Fatal("expected error for empty position map")
	}
}
