package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/league"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/roster"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/infrastructure/repository/memory"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
)

type draftTestEnv struct {
	service      *DraftService
	leagueRepo   *memory.LeagueRepository
	rosterRepo   *memory.RosterRepository
	draftRepo    *memory.DraftRepository
	league       league.FantasyLeague
	participants []roster.Participant
}

func newDraftTestEnv(t *testing.T, participantCount, rounds int) *draftTestEnv {
	t.Helper()

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	testLeague := league.FantasyLeague{
		ID:              "lg_test",
		Name:            "Test League",
		OwnerUserID:     "user-1",
		Status:          league.StatusPending,
		DraftStatus:     league.DraftNotStarted,
		MaxParticipants: 10,
		DraftRounds:     rounds,
		InviteCode:      "TESTCODE",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	participants := make([]roster.Participant, 0, participantCount)
	for i := 1; i <= participantCount; i++ {
		role := roster.RoleMember
		if i == 1 {
			role = roster.RoleOwner
		}
		participants = append(participants, roster.Participant{
			ID:       fmt.Sprintf("pt_%d", i),
			LeagueID: testLeague.ID,
			UserID:   fmt.Sprintf("user-%d", i),
			Role:     role,
			Status:   roster.StatusActive,
			JoinedAt: now,
		})
	}

	leagueRepo := memory.NewLeagueRepository([]league.FantasyLeague{testLeague})
	rosterRepo := memory.NewRosterRepository(participants)
	leagueRepo.BindRoster(rosterRepo)
	draftRepo := memory.NewDraftRepository(leagueRepo, rosterRepo)
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())

	service := NewDraftService(leagueRepo, rosterRepo, draftRepo, playerRepo, draft.DefaultRules(), nil, nil, logging.NewNop())
	// Identity order keeps position assignments predictable.
	service.shuffle = func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	return &draftTestEnv{
		service:      service,
		leagueRepo:   leagueRepo,
		rosterRepo:   rosterRepo,
		draftRepo:    draftRepo,
		league:       testLeague,
		participants: participants,
	}
}

func (env *draftTestEnv) startDraft(t *testing.T) StartDraftResult {
	t.Helper()

	result, err := env.service.StartDraft(context.Background(), StartDraftInput{
		UserID:   env.league.OwnerUserID,
		LeagueID: env.league.ID,
	})
	if err != nil {
		t.Fatalf("start draft: %v", err)
	}
	return result
}

func TestDraftService_StartDraft_SeedsSnakeLedger(t *testing.T) {
	env := newDraftTestEnv(t, 4, 3)
	result := env.startDraft(t)

	if len(result.Positions) != 4 {
		t.Fatalf("unexpected position count: %d", len(result.Positions))
	}
	if result.FirstSlot.PickNumber != 1 {
		t.Fatalf("first slot pick number: got=%d want=1", result.FirstSlot.PickNumber)
	}

	slots, err := env.draftRepo.ListByLeague(context.Background(), env.league.ID)
	if err != nil {
		t.Fatalf("list slots: %v", err)
	}
	if len(slots) != 12 {
		t.Fatalf("ledger size: got=%d want=12", len(slots))
	}
	for i, slot := range slots {
		if slot.PickNumber != i+1 {
			t.Fatalf("pick numbers not contiguous at %d: got=%d", i, slot.PickNumber)
		}
	}

	// Identity shuffle: pt_1..pt_4 forward in round 1, reversed in round 2.
	if slots[0].ParticipantID != "pt_1" || slots[3].ParticipantID != "pt_4" {
		t.Fatalf("round 1 order wrong: %s..%s", slots[0].ParticipantID, slots[3].ParticipantID)
	}
	if slots[4].ParticipantID != "pt_4" || slots[7].ParticipantID != "pt_1" {
		t.Fatalf("round 2 not reversed: %s..%s", slots[4].ParticipantID, slots[7].ParticipantID)
	}

	updated, _, err := env.leagueRepo.GetByID(context.Background(), env.league.ID)
	if err != nil {
		t.Fatalf("get league: %v", err)
	}
	if !updated.DraftStarted || updated.DraftStatus != league.DraftInProgress {
		t.Fatalf("league draft flags not flipped: started=%v status=%s", updated.DraftStarted, updated.DraftStatus)
	}

	first, _, err := env.rosterRepo.GetByID(context.Background(), "pt_1")
	if err != nil {
		t.Fatalf("get participant: %v", err)
	}
	if first.DraftPosition == nil || *first.DraftPosition != 1 {
		t.Fatalf("participant position not assigned: %v", first.DraftPosition)
	}
}

func TestDraftService_StartDraft_OwnerOnly(t *testing.T) {
	env := newDraftTestEnv(t, 4, 2)

	_, err := env.service.StartDraft(context.Background(), StartDraftInput{
		UserID:   "user-2",
		LeagueID: env.league.ID,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDraftService_StartDraft_RejectsSecondStart(t *testing.T) {
	env := newDraftTestEnv(t, 4, 2)
	env.startDraft(t)

	_, err := env.service.StartDraft(context.Background(), StartDraftInput{
		UserID:   env.league.OwnerUserID,
		LeagueID: env.league.ID,
	})
	if !errors.Is(err, draft.ErrAlreadyStarted) {
		t.Fatalf("expected ErrAlreadyStarted, got %v", err)
	}
}

func TestDraftService_StartDraft_RejectsOddParticipantCount(t *testing.T) {
	env := newDraftTestEnv(t, 3, 2)

	_, err := env.service.StartDraft(context.Background(), StartDraftInput{
		UserID:   env.league.OwnerUserID,
		LeagueID: env.league.ID,
	})
	if !errors.Is(err, draft.ErrOddParticipantCount) {
		t.Fatalf("expected ErrOddParticipantCount, got %v", err)
	}
}

func TestDraftService_MakePick_AdvancesTurn(t *testing.T) {
	env := newDraftTestEnv(t, 4, 2)
	env.startDraft(t)

	result, err := env.service.MakePick(context.Background(), MakePickInput{
		UserID:             "user-1",
		LeagueID:           env.league.ID,
		ExpectedPickNumber: 1,
		PlayerID:           "pl-fwd-01",
	})
	if err != nil {
		t.Fatalf("make pick: %v", err)
	}

	if result.Pick.PlayerID != "pl-fwd-01" || !result.Pick.Completed() {
		t.Fatalf("pick not committed: %+v", result.Pick)
	}
	if result.DraftComplete {
		t.Fatal("draft should not be complete after one pick")
	}
	if result.Next == nil || result.Next.PickNumber != 2 || result.Next.ParticipantID != "pt_2" {
		t.Fatalf("unexpected next slot: %+v", result.Next)
	}
}

func TestDraftService_MakePick_RejectsOutOfTurn(t *testing.T) {
	env := newDraftTestEnv(t, 4, 2)
	env.startDraft(t)

	_, err := env.service.MakePick(context.Background(), MakePickInput{
		UserID:             "user-2",
		LeagueID:           env.league.ID,
		ExpectedPickNumber: 1,
		PlayerID:           "pl-fwd-01",
	})
	if !errors.Is(err, draft.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
}

func TestDraftService_MakePick_RejectsStalePickNumber(t *testing.T) {
	env := newDraftTestEnv(t, 4, 2)
	env.startDraft(t)

	_, err := env.service.MakePick(context.Background(), MakePickInput{
		UserID:             "user-1",
		LeagueID:           env.league.ID,
		ExpectedPickNumber: 3,
		PlayerID:           "pl-fwd-01",
	})
	if !errors.Is(err, draft.ErrStalePickNumber) {
		t.Fatalf("expected ErrStalePickNumber, got %v", err)
	}
}

func TestDraftService_MakePick_RejectsUnknownPlayer(t *testing.T) {
	env := newDraftTestEnv(t, 4, 2)
	env.startDraft(t)

	_, err := env.service.MakePick(context.Background(), MakePickInput{
		UserID:             "user-1",
		LeagueID:           env.league.ID,
		ExpectedPickNumber: 1,
		PlayerID:           "pl-missing",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDraftService_MakePick_RejectsTakenPlayer(t *testing.T) {
	env := newDraftTestEnv(t, 4, 2)
	env.startDraft(t)

	if _, err := env.service.MakePick(context.Background(), MakePickInput{
		UserID:             "user-1",
		LeagueID:           env.league.ID,
		ExpectedPickNumber: 1,
		PlayerID:           "pl-fwd-01",
	}); err != nil {
		t.Fatalf("first pick: %v", err)
	}

	_, err := env.service.MakePick(context.Background(), MakePickInput{
		UserID:             "user-2",
		LeagueID:           env.league.ID,
		ExpectedPickNumber: 2,
		PlayerID:           "pl-fwd-01",
	})
	if !errors.Is(err, draft.ErrPlayerAlreadyTaken) {
		t.Fatalf("expected ErrPlayerAlreadyTaken, got %v", err)
	}
}

func TestDraftService_MakePick_CompletesDraft(t *testing.T) {
	env := newDraftTestEnv(t, 2, 1)
	env.startDraft(t)

	if _, err := env.service.MakePick(context.Background(), MakePickInput{
		UserID:             "user-1",
		LeagueID:           env.league.ID,
		ExpectedPickNumber: 1,
		PlayerID:           "pl-fwd-01",
	}); err != nil {
		t.Fatalf("pick 1: %v", err)
	}

	result, err := env.service.MakePick(context.Background(), MakePickInput{
		UserID:             "user-2",
		LeagueID:           env.league.ID,
		ExpectedPickNumber: 2,
		PlayerID:           "pl-fwd-02",
	})
	if err != nil {
		t.Fatalf("pick 2: %v", err)
	}
	if !result.DraftComplete {
		t.Fatal("expected draft complete after final pick")
	}
	if result.Next != nil {
		t.Fatalf("expected no next slot, got %+v", result.Next)
	}

	updated, _, err := env.leagueRepo.GetByID(context.Background(), env.league.ID)
	if err != nil {
		t.Fatalf("get league: %v", err)
	}
	if updated.DraftStatus != league.DraftComplete {
		t.Fatalf("league draft status: got=%s want=%s", updated.DraftStatus, league.DraftComplete)
	}
	if updated.Status != league.StatusCompleted {
		t.Fatalf("league status: got=%s want=%s", updated.Status, league.StatusCompleted)
	}

	_, err = env.service.MakePick(context.Background(), MakePickInput{
		UserID:             "user-1",
		LeagueID:           env.league.ID,
		ExpectedPickNumber: 3,
		PlayerID:           "pl-fwd-03",
	})
	if !errors.Is(err, draft.ErrDraftComplete) {
		t.Fatalf("expected ErrDraftComplete, got %v", err)
	}
}

// Two requests race for the same slot; the conditional write guarantees
// exactly one of them lands.
func TestDraftService_MakePick_ConcurrentRequestsExactlyOneWins(t *testing.T) {
	env := newDraftTestEnv(t, 2, 2)
	env.startDraft(t)

	players := []string{"pl-fwd-01", "pl-fwd-02"}
	results := make([]error, len(players))

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, playerID := range players {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := env.service.MakePick(context.Background(), MakePickInput{
				UserID:             "user-1",
				LeagueID:           env.league.ID,
				ExpectedPickNumber: 1,
				PlayerID:           playerID,
			})
			results[i] = err
		}()
	}
	close(start)
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		if !errors.Is(err, draft.ErrConcurrentPick) &&
			!errors.Is(err, draft.ErrStalePickNumber) &&
			!errors.Is(err, draft.ErrNotYourTurn) {
			t.Fatalf("loser failed with unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one winning pick, got %d", successes)
	}

	slots, err := env.draftRepo.ListByLeague(context.Background(), env.league.ID)
	if err != nil {
		t.Fatalf("list slots: %v", err)
	}
	if slots[0].Status != draft.SlotCompleted {
		t.Fatalf("slot 1 not completed: %s", slots[0].Status)
	}
	completed := 0
	for _, slot := range slots {
		if slot.Completed() {
			completed++
		}
	}
	if completed != 1 {
		t.Fatalf("expected exactly one completed slot, got %d", completed)
	}
}

func TestDraftService_GetBoard_RequiresMembership(t *testing.T) {
	env := newDraftTestEnv(t, 2, 1)
	env.startDraft(t)

	if _, err := env.service.GetBoard(context.Background(), "user-1", env.league.ID); err != nil {
		t.Fatalf("member board read: %v", err)
	}

	_, err := env.service.GetBoard(context.Background(), "stranger", env.league.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
