package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.FantasyLeague
	orders []string
	roster *RosterRepository
}

func NewLeagueRepository(leagues []league.FantasyLeague) *LeagueRepository {
	items := make(map[string]league.FantasyLeague, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.ID] = l
		orders = append(orders, l.ID)
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
	}
}

func (r *LeagueRepository) Create(_ context.Context, l league.FantasyLeague) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[l.ID]; exists {
		return fmt.Errorf("league %s: duplicate key value violates unique constraint", l.ID)
	}
	for _, id := range r.orders {
		if r.items[id].InviteCode == l.InviteCode {
			return fmt.Errorf("invite code %s: duplicate key value violates unique constraint", l.InviteCode)
		}
	}

	r.items[l.ID] = l
	r.orders = append(r.orders, l.ID)
	return nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.FantasyLeague, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.FantasyLeague{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) GetByInviteCode(_ context.Context, inviteCode string) (league.FantasyLeague, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		if r.items[id].InviteCode == inviteCode {
			return r.items[id], true, nil
		}
	}

	return league.FantasyLeague{}, false, nil
}

// BindRoster wires the membership source used by ListByUser. The SQL
// implementation does this with a join; in memory the two stores cooperate.
func (r *LeagueRepository) BindRoster(roster *RosterRepository) {
	r.roster = roster
}

func (r *LeagueRepository) ListByUser(ctx context.Context, userID string) ([]league.FantasyLeague, error) {
	if r.roster == nil {
		return nil, nil
	}

	leagueIDs, err := r.roster.leagueIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.FantasyLeague, 0, len(leagueIDs))
	for _, id := range r.orders {
		if _, ok := leagueIDs[id]; ok {
			out = append(out, r.items[id])
		}
	}

	return out, nil
}

func (r *LeagueRepository) SetDraftComplete(_ context.Context, leagueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return fmt.Errorf("league %s not found", leagueID)
	}
	l.DraftStatus = league.DraftComplete
	l.Status = league.StatusCompleted
	l.UpdatedAt = time.Now().UTC()
	r.items[leagueID] = l
	return nil
}

// markDraftStarted is invoked by the draft repository while seeding, so the
// flag flips together with the ledger insert.
func (r *LeagueRepository) markDraftStarted(leagueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return fmt.Errorf("league %s not found", leagueID)
	}
	if l.DraftStarted {
		return fmt.Errorf("league %s draft already started", leagueID)
	}
	l.DraftStarted = true
	l.DraftStatus = league.DraftInProgress
	l.Status = league.StatusActive
	l.UpdatedAt = time.Now().UTC()
	r.items[leagueID] = l
	return nil
}
