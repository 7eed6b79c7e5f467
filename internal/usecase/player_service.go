package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/player"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/cache"
)

const playerCatalogCacheKey = "players:catalog"

type PlayerService struct {
	playerRepo player.Repository
	draftRepo  draft.Repository
	store      *cache.Store
}

func NewPlayerService(playerRepo player.Repository, draftRepo draft.Repository, store *cache.Store) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		draftRepo:  draftRepo,
		store:      store,
	}
}

// ListPlayers returns the full catalog. The catalog changes rarely, so reads
// go through the TTL cache.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.ListPlayers")
	defer span.End()

	if s.store == nil {
		players, err := s.playerRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		return players, nil
	}

	value, err := s.store.GetOrLoad(ctx, playerCatalogCacheKey, func(ctx context.Context) (any, error) {
		players, err := s.playerRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		return players, nil
	})
	if err != nil {
		return nil, err
	}

	players, ok := value.([]player.Player)
	if !ok {
		return nil, fmt.Errorf("unexpected cached player catalog type %T", value)
	}
	return players, nil
}

// ListAvailablePlayers filters the catalog down to players not yet drafted
// in the given league.
func (s *PlayerService) ListAvailablePlayers(ctx context.Context, leagueID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.ListAvailablePlayers")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	catalog, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	slots, err := s.draftRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list picks by league: %w", err)
	}

	taken := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if slot.Completed() {
			taken[slot.PlayerID] = struct{}{}
		}
	}

	available := make([]player.Player, 0, len(catalog))
	for _, p := range catalog {
		if _, picked := taken[p.ID]; picked {
			continue
		}
		available = append(available, p)
	}

	return available, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	found, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return found, nil
}
