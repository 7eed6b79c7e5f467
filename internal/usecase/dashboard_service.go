package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/league"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/roster"
)

type LeagueSummary struct {
	League         league.FantasyLeague
	Participants   int
	PicksMade      int
	PicksRemaining int
	OnTheClock     bool
	CurrentPick    *draft.PickSlot
}

type Dashboard struct {
	Leagues []LeagueSummary
}

// DashboardService aggregates a user's leagues into one overview. Per-league
// lookups are independent, so they fan out concurrently.
type DashboardService struct {
	leagueRepo league.Repository
	rosterRepo roster.Repository
	draftRepo  draft.Repository
}

func NewDashboardService(leagueRepo league.Repository, rosterRepo roster.Repository, draftRepo draft.Repository) *DashboardService {
	return &DashboardService{
		leagueRepo: leagueRepo,
		rosterRepo: rosterRepo,
		draftRepo:  draftRepo,
	}
}

func (s *DashboardService) Get(ctx context.Context, userID string) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "DashboardService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Dashboard{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.ListByUser(ctx, userID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list leagues by user: %w", err)
	}
	if len(leagues) == 0 {
		return Dashboard{Leagues: []LeagueSummary{}}, nil
	}

	summaries := make([]LeagueSummary, len(leagues))
	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(4)
	for i, item := range leagues {
		p.Go(func(ctx context.Context) error {
			summary, err := s.buildSummary(ctx, userID, item)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Dashboard{}, fmt.Errorf("build league summaries: %w", err)
	}

	return Dashboard{Leagues: summaries}, nil
}

func (s *DashboardService) buildSummary(ctx context.Context, userID string, item league.FantasyLeague) (LeagueSummary, error) {
	summary := LeagueSummary{League: item}

	count, err := s.rosterRepo.CountByLeague(ctx, item.ID)
	if err != nil {
		return LeagueSummary{}, fmt.Errorf("count participants for league=%s: %w", item.ID, err)
	}
	summary.Participants = count

	if !item.DraftStarted {
		return summary, nil
	}

	pending, err := s.draftRepo.CountPending(ctx, item.ID)
	if err != nil {
		return LeagueSummary{}, fmt.Errorf("count pending picks for league=%s: %w", item.ID, err)
	}
	summary.PicksRemaining = pending
	summary.PicksMade = item.DraftRounds*count - pending

	if pending == 0 {
		return summary, nil
	}

	current, ok, err := s.draftRepo.FindNextPending(ctx, item.ID)
	if err != nil {
		return LeagueSummary{}, fmt.Errorf("find next pick for league=%s: %w", item.ID, err)
	}
	if !ok {
		return summary, nil
	}
	summary.CurrentPick = &current

	participant, enrolled, err := s.rosterRepo.GetByLeagueAndUser(ctx, item.ID, userID)
	if err != nil {
		return LeagueSummary{}, fmt.Errorf("get participant for league=%s: %w", item.ID, err)
	}
	summary.OnTheClock = enrolled && participant.ID == current.ParticipantID

	return summary, nil
}
