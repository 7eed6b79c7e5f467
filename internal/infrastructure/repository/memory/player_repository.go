package memory

import (
	"context"
	"sync"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Player
	orders []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	orders := make([]string, 0, len(players))

	for _, p := range players {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PlayerRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return p, true, nil
}
