package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/roster"
)

type RosterRepository struct {
	mu     sync.RWMutex
	items  map[string]roster.Participant
	orders []string
}

func NewRosterRepository(participants []roster.Participant) *RosterRepository {
	items := make(map[string]roster.Participant, len(participants))
	orders := make([]string, 0, len(participants))

	for _, p := range participants {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &RosterRepository{
		items:  items,
		orders: orders,
	}
}

func (r *RosterRepository) Create(_ context.Context, p roster.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[p.ID]; exists {
		return fmt.Errorf("participant %s: duplicate key value violates unique constraint", p.ID)
	}
	for _, id := range r.orders {
		existing := r.items[id]
		if existing.LeagueID == p.LeagueID && existing.UserID == p.UserID && existing.Status == roster.StatusActive {
			return fmt.Errorf("participant %s/%s: duplicate key value violates unique constraint", p.LeagueID, p.UserID)
		}
	}

	r.items[p.ID] = p
	r.orders = append(r.orders, p.ID)
	return nil
}

func (r *RosterRepository) GetByID(_ context.Context, participantID string) (roster.Participant, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[participantID]
	if !ok {
		return roster.Participant{}, false, nil
	}

	return p, true, nil
}

func (r *RosterRepository) GetByLeagueAndUser(_ context.Context, leagueID, userID string) (roster.Participant, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		p := r.items[id]
		if p.LeagueID == leagueID && p.UserID == userID {
			return p, true, nil
		}
	}

	return roster.Participant{}, false, nil
}

func (r *RosterRepository) ListByLeague(_ context.Context, leagueID string) ([]roster.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Participant, 0)
	for _, id := range r.orders {
		if r.items[id].LeagueID == leagueID {
			out = append(out, r.items[id])
		}
	}

	return out, nil
}

func (r *RosterRepository) CountByLeague(_ context.Context, leagueID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, id := range r.orders {
		p := r.items[id]
		if p.LeagueID == leagueID && p.Status == roster.StatusActive {
			count++
		}
	}

	return count, nil
}

func (r *RosterRepository) leagueIDsByUser(_ context.Context, userID string) (map[string]struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]struct{})
	for _, id := range r.orders {
		p := r.items[id]
		if p.UserID == userID && p.Status == roster.StatusActive {
			out[p.LeagueID] = struct{}{}
		}
	}

	return out, nil
}

// setDraftPositions is invoked by the draft repository while seeding.
func (r *RosterRepository) setDraftPositions(positions map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for participantID, position := range positions {
		p, ok := r.items[participantID]
		if !ok {
			return fmt.Errorf("participant %s not found", participantID)
		}
		pos := position
		p.DraftPosition = &pos
		r.items[participantID] = p
	}

	return nil
}
