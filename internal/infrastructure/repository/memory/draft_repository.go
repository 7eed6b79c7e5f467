package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
)

// DraftRepository mirrors the SQL contract: SeedDraft applies positions,
// ledger, and the draft-started flip under one lock, and CompletePick is a
// conditional transition that reports whether it changed anything.
type DraftRepository struct {
	mu     sync.Mutex
	items  map[string]draft.PickSlot
	orders []string

	leagues *LeagueRepository
	roster  *RosterRepository
}

func NewDraftRepository(leagues *LeagueRepository, roster *RosterRepository) *DraftRepository {
	return &DraftRepository{
		items:   make(map[string]draft.PickSlot),
		orders:  make([]string, 0),
		leagues: leagues,
		roster:  roster,
	}
}

func (r *DraftRepository) SeedDraft(_ context.Context, seed draft.Seed) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, slot := range seed.Slots {
		if _, exists := r.items[slot.ID]; exists {
			return fmt.Errorf("pick slot %s: duplicate key value violates unique constraint", slot.ID)
		}
	}

	if r.leagues != nil {
		if err := r.leagues.markDraftStarted(seed.LeagueID); err != nil {
			return err
		}
	}
	if r.roster != nil {
		if err := r.roster.setDraftPositions(seed.PositionsBy); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	for _, slot := range seed.Slots {
		slot.CreatedAt = now
		r.items[slot.ID] = slot
		r.orders = append(r.orders, slot.ID)
	}

	return nil
}

func (r *DraftRepository) FindNextPending(_ context.Context, leagueID string) (draft.PickSlot, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	best := draft.PickSlot{}
	found := false
	for _, id := range r.orders {
		slot := r.items[id]
		if slot.LeagueID != leagueID || slot.Status != draft.SlotPending {
			continue
		}
		if !found || slot.PickNumber < best.PickNumber {
			best = slot
			found = true
		}
	}

	return best, found, nil
}

func (r *DraftRepository) FindCompletedByPlayer(_ context.Context, leagueID, playerID string) (draft.PickSlot, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.orders {
		slot := r.items[id]
		if slot.LeagueID == leagueID && slot.PlayerID == playerID && slot.Status == draft.SlotCompleted {
			return slot, true, nil
		}
	}

	return draft.PickSlot{}, false, nil
}

func (r *DraftRepository) ListByLeague(_ context.Context, leagueID string) ([]draft.PickSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]draft.PickSlot, 0)
	for _, id := range r.orders {
		if r.items[id].LeagueID == leagueID {
			out = append(out, r.items[id])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PickNumber < out[j].PickNumber })

	return out, nil
}

func (r *DraftRepository) CountPending(_ context.Context, leagueID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, id := range r.orders {
		slot := r.items[id]
		if slot.LeagueID == leagueID && slot.Status == draft.SlotPending {
			count++
		}
	}

	return count, nil
}

func (r *DraftRepository) CompletePick(_ context.Context, pickSlotID, playerID string, expectedStatus draft.SlotStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.items[pickSlotID]
	if !ok || slot.Status != expectedStatus {
		return 0, nil
	}

	now := time.Now().UTC()
	slot.PlayerID = playerID
	slot.Status = draft.SlotCompleted
	slot.PickedAt = &now
	r.items[pickSlotID] = slot

	return 1, nil
}
