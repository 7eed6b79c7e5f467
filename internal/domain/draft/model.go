package draft

import "time"

type SlotStatus string

const (
	SlotPending   SlotStatus = "pending"
	SlotCompleted SlotStatus = "completed"
)

// PickSlot is one reserved turn in the draft ledger. Exactly one slot exists
// per (league, pick number); pick numbers are contiguous starting at 1.
type PickSlot struct {
	ID            string
	LeagueID      string
	ParticipantID string
	Round         int
	PickNumber    int
	PlayerID      string
	Status        SlotStatus
	PickedAt      *time.Time
	CreatedAt     time.Time
}

func (s PickSlot) Completed() bool {
	return s.Status == SlotCompleted
}
