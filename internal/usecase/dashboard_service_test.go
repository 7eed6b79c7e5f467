package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestDashboardService_Get_EmptyForNewUser(t *testing.T) {
	env := newDraftTestEnv(t, 2, 1)
	service := NewDashboardService(env.leagueRepo, env.rosterRepo, env.draftRepo)

	dashboard, err := service.Get(context.Background(), "user-without-leagues")
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}
	if len(dashboard.Leagues) != 0 {
		t.Fatalf("expected empty dashboard, got %d leagues", len(dashboard.Leagues))
	}
}

func TestDashboardService_Get_ReportsOnTheClock(t *testing.T) {
	env := newDraftTestEnv(t, 2, 2)
	env.startDraft(t)
	service := NewDashboardService(env.leagueRepo, env.rosterRepo, env.draftRepo)

	dashboard, err := service.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}
	if len(dashboard.Leagues) != 1 {
		t.Fatalf("expected one league, got %d", len(dashboard.Leagues))
	}

	summary := dashboard.Leagues[0]
	if summary.Participants != 2 {
		t.Fatalf("participants: got=%d want=2", summary.Participants)
	}
	if summary.PicksRemaining != 4 || summary.PicksMade != 0 {
		t.Fatalf("pick counts wrong: remaining=%d made=%d", summary.PicksRemaining, summary.PicksMade)
	}
	if !summary.OnTheClock {
		t.Fatal("user-1 holds pick 1 and should be on the clock")
	}
	if summary.CurrentPick == nil || summary.CurrentPick.PickNumber != 1 {
		t.Fatalf("unexpected current pick: %+v", summary.CurrentPick)
	}

	// After pick 1 the clock moves to user-2.
	if _, err := env.service.MakePick(context.Background(), MakePickInput{
		UserID:             "user-1",
		LeagueID:           env.league.ID,
		ExpectedPickNumber: 1,
		PlayerID:           "pl-fwd-01",
	}); err != nil {
		t.Fatalf("make pick: %v", err)
	}

	dashboard, err = service.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get dashboard after pick: %v", err)
	}
	summary = dashboard.Leagues[0]
	if summary.OnTheClock {
		t.Fatal("user-1 should no longer be on the clock")
	}
	if summary.PicksMade != 1 || summary.PicksRemaining != 3 {
		t.Fatalf("pick counts wrong after pick: remaining=%d made=%d", summary.PicksRemaining, summary.PicksMade)
	}
}

func TestDashboardService_Get_RequiresUserID(t *testing.T) {
	env := newDraftTestEnv(t, 2, 1)
	service := NewDashboardService(env.leagueRepo, env.rosterRepo, env.draftRepo)

	_, err := service.Get(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDashboardService_Get_SkipsLedgerBeforeDraft(t *testing.T) {
	env := newDraftTestEnv(t, 4, 2)
	service := NewDashboardService(env.leagueRepo, env.rosterRepo, env.draftRepo)

	dashboard, err := service.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}

	summary := dashboard.Leagues[0]
	if summary.OnTheClock || summary.CurrentPick != nil {
		t.Fatalf("no clock before draft start: %+v", summary)
	}
	if summary.PicksRemaining != 0 {
		t.Fatalf("expected zero remaining before start, got %d", summary.PicksRemaining)
	}
}
