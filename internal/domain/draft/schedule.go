package draft

import "fmt"

// BuildSchedule expands a seeded draft order into the full pick ledger.
//
// participantsByPosition holds participant ids indexed by draft position - 1,
// so participantsByPosition[0] picks first in round 1. Odd rounds run the
// order forward, even rounds run it in reverse (snake draft). The absolute
// pick number for the k-th pick of round r is (r-1)*N + k, giving one
// contiguous sequence 1..N*rounds.
//
// Slot IDs are left empty; the repository assigns them at insert time.
func BuildSchedule(leagueID string, participantsByPosition []string, rounds int) ([]PickSlot, error) {
	n := len(participantsByPosition)
	if n == 0 {
		return nil, fmt.Errorf("participants are required")
	}
	if rounds < 1 {
		return nil, fmt.Errorf("rounds must be >= 1")
	}
	for i, id := range participantsByPosition {
		if id == "" {
			return nil, fmt.Errorf("participant at position %d is empty", i+1)
		}
	}

	slots := make([]PickSlot, 0, n*rounds)
	for round := 1; round <= rounds; round++ {
		for rank := 1; rank <= n; rank++ {
			idx := rank - 1
			if round%2 == 0 {
				idx = n - rank
			}
			slots = append(slots, PickSlot{
				LeagueID:      leagueID,
				ParticipantID: participantsByPosition[idx],
				Round:         round,
				PickNumber:    (round-1)*n + rank,
				Status:        SlotPending,
			})
		}
	}

	return slots, nil
}
