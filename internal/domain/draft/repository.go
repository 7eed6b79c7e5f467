package draft

import "context"

// Seed carries everything StartDraft persists in one shot: the shuffled
// position assignments and the full pending ledger. Implementations must
// apply it atomically together with the league's draft-started flip, so a
// concurrent reader never observes a partially seeded draft.
type Seed struct {
	LeagueID    string
	PositionsBy map[string]int // participant id -> draft position
	Slots       []PickSlot
}

// Repository exposes pick-ledger persistence operations.
type Repository interface {
	SeedDraft(ctx context.Context, seed Seed) error
	FindNextPending(ctx context.Context, leagueID string) (PickSlot, bool, error)
	FindCompletedByPlayer(ctx context.Context, leagueID, playerID string) (PickSlot, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]PickSlot, error)
	CountPending(ctx context.Context, leagueID string) (int, error)

	// CompletePick marks the slot completed with the given player iff its
	// current status still equals expectedStatus, and reports how many rows
	// changed. Zero means a concurrent caller won the race.
	CompletePick(ctx context.Context, pickSlotID, playerID string, expectedStatus SlotStatus) (int64, error)
}
