package draft

import "testing"

func TestBuildSchedule_LedgerIsContiguous(t *testing.T) {
	participants := []string{"p1", "p2", "p3", "p4"}
	slots, err := BuildSchedule("league-1", participants, 3)
	if err != nil {
		t.Fatalf("build schedule: %v", err)
	}

	if len(slots) != 12 {
		t.Fatalf("unexpected slot count: got=%d want=12", len(slots))
	}
	for i, slot := range slots {
		if slot.PickNumber != i+1 {
			t.Fatalf("pick numbers not contiguous at index %d: got=%d", i, slot.PickNumber)
		}
		if slot.Status != SlotPending {
			t.Fatalf("slot %d not pending: %s", slot.PickNumber, slot.Status)
		}
		if slot.LeagueID != "league-1" {
			t.Fatalf("slot %d has wrong league: %s", slot.PickNumber, slot.LeagueID)
		}
	}
}

func TestBuildSchedule_SnakeOrderReversesEvenRounds(t *testing.T) {
	participants := []string{"p1", "p2", "p3", "p4"}
	slots, err := BuildSchedule("league-1", participants, 3)
	if err != nil {
		t.Fatalf("build schedule: %v", err)
	}

	wantOrder := []string{
		"p1", "p2", "p3", "p4", // round 1
		"p4", "p3", "p2", "p1", // round 2 reversed
		"p1", "p2", "p3", "p4", // round 3 forward again
	}
	for i, want := range wantOrder {
		if slots[i].ParticipantID != want {
			t.Fatalf("pick %d: got=%s want=%s", i+1, slots[i].ParticipantID, want)
		}
	}
}

func TestBuildSchedule_RoundNumbers(t *testing.T) {
	slots, err := BuildSchedule("league-1", []string{"a", "b"}, 2)
	if err != nil {
		t.Fatalf("build schedule: %v", err)
	}

	wantRounds := []int{1, 1, 2, 2}
	for i, want := range wantRounds {
		if slots[i].Round != want {
			t.Fatalf("pick %d round: got=%d want=%d", i+1, slots[i].Round, want)
		}
	}
}

// Four participants shuffled to positions A=2, B=4, C=1, D=3 over two rounds:
// picks 1-4 go C,A,D,B and picks 5-8 reverse to B,D,A,C.
func TestBuildSchedule_ShuffledPositions(t *testing.T) {
	byPosition := []string{"C", "A", "D", "B"}
	slots, err := BuildSchedule("league-1", byPosition, 2)
	if err != nil {
		t.Fatalf("build schedule: %v", err)
	}

	want := []string{"C", "A", "D", "B", "B", "D", "A", "C"}
	if len(slots) != len(want) {
		t.Fatalf("unexpected slot count: got=%d want=%d", len(slots), len(want))
	}
	for i, id := range want {
		if slots[i].ParticipantID != id {
			t.Fatalf("pick %d: got=%s want=%s", i+1, slots[i].ParticipantID, id)
		}
	}
}

func TestBuildSchedule_RejectsEmptyInput(t *testing.T) {
	if _, err := BuildSchedule("league-1", nil, 2); err == nil {
		t.Fatal("expected error for empty participants")
	}
	if _, err := BuildSchedule("league-1", []string{"a", "b"}, 0); err == nil {
		t.Fatal("expected error for zero rounds")
	}
	if _, err := BuildSchedule("league-1", []string{"a", ""}, 2); err == nil {
		t.Fatal("expected error for empty participant id")
	}
}
