package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/league"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/player"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/roster"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/id"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
)

// DraftEvent is broadcast to live draft feed subscribers after a state change.
type DraftEvent struct {
	LeagueID      string          `json:"leagueId"`
	Type          string          `json:"type"`
	Pick          *draft.PickSlot `json:"pick,omitempty"`
	Next          *draft.PickSlot `json:"next,omitempty"`
	DraftComplete bool            `json:"draftComplete"`
}

const (
	DraftEventStarted  = "draft_started"
	DraftEventPickMade = "pick_made"
	DraftEventComplete = "draft_complete"
)

type draftFeedPublisher interface {
	Publish(ctx context.Context, event DraftEvent)
}

type pushNotifier interface {
	NotifyUser(ctx context.Context, userID, title, body string)
}

type StartDraftInput struct {
	UserID   string
	LeagueID string
}

type StartDraftResult struct {
	Positions map[string]int // participant id -> draft position
	FirstSlot draft.PickSlot
}

type MakePickInput struct {
	UserID             string
	LeagueID           string
	ExpectedPickNumber int
	PlayerID           string
}

type MakePickResult struct {
	Pick          draft.PickSlot
	Next          *draft.PickSlot
	DraftComplete bool
}

type DraftService struct {
	leagueRepo league.Repository
	rosterRepo roster.Repository
	draftRepo  draft.Repository
	playerRepo player.Repository
	rules      draft.Rules
	feed       draftFeedPublisher
	notifier   pushNotifier
	logger     *logging.Logger
	shuffle    func(n int) []int
}

func NewDraftService(
	leagueRepo league.Repository,
	rosterRepo roster.Repository,
	draftRepo draft.Repository,
	playerRepo player.Repository,
	rules draft.Rules,
	feed draftFeedPublisher,
	notifier pushNotifier,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DraftService{
		leagueRepo: leagueRepo,
		rosterRepo: rosterRepo,
		draftRepo:  draftRepo,
		playerRepo: playerRepo,
		rules:      rules,
		feed:       feed,
		notifier:   notifier,
		logger:     logger,
		shuffle:    rand.Perm,
	}
}

// StartDraft shuffles active participants into draft positions and seeds the
// full snake pick ledger in a single atomic write. Only the league owner may
// start the draft, and only once.
func (s *DraftService) StartDraft(ctx context.Context, input StartDraftInput) (StartDraftResult, error) {
	ctx, span := startUsecaseSpan(ctx, "DraftService.StartDraft")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	if input.UserID == "" {
		return StartDraftResult{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.LeagueID == "" {
		return StartDraftResult{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	found, exists, err := s.leagueRepo.GetByID(ctx, input.LeagueID)
	if err != nil {
		return StartDraftResult{}, fmt.Errorf("get league by id: %w", err)
	}
	if !exists {
		return StartDraftResult{}, fmt.Errorf("%w: league=%s", ErrNotFound, input.LeagueID)
	}
	if found.OwnerUserID != input.UserID {
		return StartDraftResult{}, fmt.Errorf("%w: only the league owner can start the draft", ErrForbidden)
	}
	if found.DraftStarted {
		return StartDraftResult{}, fmt.Errorf("%w: league=%s", draft.ErrAlreadyStarted, found.ID)
	}
	if found.Status != league.StatusPending && found.Status != league.StatusActive {
		return StartDraftResult{}, fmt.Errorf("%w: league status is %s", draft.ErrLeagueNotActive, found.Status)
	}

	participants, err := s.rosterRepo.ListByLeague(ctx, found.ID)
	if err != nil {
		return StartDraftResult{}, fmt.Errorf("list league participants: %w", err)
	}
	active := participants[:0:0]
	for _, p := range participants {
		if p.Status == roster.StatusActive {
			active = append(active, p)
		}
	}
	if err := draft.ValidateParticipantCount(len(active), found.MaxParticipants, s.rules); err != nil {
		return StartDraftResult{}, err
	}

	rounds := found.DraftRounds
	if rounds <= 0 {
		rounds = s.rules.Rounds
	}

	perm := s.shuffle(len(active))
	byPosition := make([]string, len(active))
	positions := make(map[string]int, len(active))
	for i, p := range active {
		position := perm[i] + 1
		positions[p.ID] = position
		byPosition[position-1] = p.ID
	}

	slots, err := draft.BuildSchedule(found.ID, byPosition, rounds)
	if err != nil {
		return StartDraftResult{}, fmt.Errorf("build draft schedule: %w", err)
	}
	for i := range slots {
		slots[i].ID = id.New(id.PrefixPick)
	}

	seed := draft.Seed{
		LeagueID:    found.ID,
		PositionsBy: positions,
		Slots:       slots,
	}
	if err := s.draftRepo.SeedDraft(ctx, seed); err != nil {
		return StartDraftResult{}, fmt.Errorf("seed draft: %w", err)
	}

	first := slots[0]
	s.logger.InfoContext(ctx, "draft started",
		"league_id", found.ID,
		"participants", len(active),
		"rounds", rounds,
		"total_picks", len(slots),
	)

	s.publish(ctx, DraftEvent{
		LeagueID: found.ID,
		Type:     DraftEventStarted,
		Next:     &first,
	})
	s.notifyParticipant(ctx, first.ParticipantID, found.Name, "You're on the clock with pick 1.")

	return StartDraftResult{Positions: positions, FirstSlot: first}, nil
}

// MakePick commits the next pick of the draft. The caller must own the
// current turn and echo the pick number it believes is current; the final
// write is conditional so two racing requests cannot both fill one slot.
func (s *DraftService) MakePick(ctx context.Context, input MakePickInput) (MakePickResult, error) {
	ctx, span := startUsecaseSpan(ctx, "DraftService.MakePick")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.UserID == "" {
		return MakePickResult{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.LeagueID == "" {
		return MakePickResult{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if input.PlayerID == "" {
		return MakePickResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if input.ExpectedPickNumber < 1 {
		return MakePickResult{}, fmt.Errorf("%w: pick number must be >= 1", ErrInvalidInput)
	}

	found, exists, err := s.leagueRepo.GetByID(ctx, input.LeagueID)
	if err != nil {
		return MakePickResult{}, fmt.Errorf("get league by id: %w", err)
	}
	if !exists {
		return MakePickResult{}, fmt.Errorf("%w: league=%s", ErrNotFound, input.LeagueID)
	}
	// Completion wins over the status gate: the final pick closes the league
	// as a whole, and later picks must still report the draft as complete.
	if found.DraftStatus == league.DraftComplete {
		return MakePickResult{}, fmt.Errorf("%w: league=%s", draft.ErrDraftComplete, found.ID)
	}
	if found.Status != league.StatusPending && found.Status != league.StatusActive {
		return MakePickResult{}, fmt.Errorf("%w: league status is %s", draft.ErrLeagueNotActive, found.Status)
	}
	if !found.DraftStarted || found.DraftStatus == league.DraftNotStarted {
		return MakePickResult{}, fmt.Errorf("%w: draft has not started", ErrInvalidInput)
	}

	slot, pending, err := s.draftRepo.FindNextPending(ctx, found.ID)
	if err != nil {
		return MakePickResult{}, fmt.Errorf("find next pending pick: %w", err)
	}
	if !pending {
		return MakePickResult{}, fmt.Errorf("%w: no pending picks remain", draft.ErrDraftComplete)
	}

	participant, enrolled, err := s.rosterRepo.GetByLeagueAndUser(ctx, found.ID, input.UserID)
	if err != nil {
		return MakePickResult{}, fmt.Errorf("get league participant: %w", err)
	}
	if !enrolled || participant.Status != roster.StatusActive {
		return MakePickResult{}, fmt.Errorf("%w: you are not a participant of this league", ErrForbidden)
	}
	if slot.ParticipantID != participant.ID {
		return MakePickResult{}, fmt.Errorf("%w: pick %d belongs to another participant", draft.ErrNotYourTurn, slot.PickNumber)
	}
	if input.ExpectedPickNumber != slot.PickNumber {
		return MakePickResult{}, fmt.Errorf("%w: current pick is %d, got %d", draft.ErrStalePickNumber, slot.PickNumber, input.ExpectedPickNumber)
	}

	if _, known, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return MakePickResult{}, fmt.Errorf("get player by id: %w", err)
	} else if !known {
		return MakePickResult{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	if taken, alreadyPicked, err := s.draftRepo.FindCompletedByPlayer(ctx, input.LeagueID, input.PlayerID); err != nil {
		return MakePickResult{}, fmt.Errorf("check player availability: %w", err)
	} else if alreadyPicked {
		return MakePickResult{}, fmt.Errorf("%w: taken at pick %d", draft.ErrPlayerAlreadyTaken, taken.PickNumber)
	}

	affected, err := s.draftRepo.CompletePick(ctx, slot.ID, input.PlayerID, draft.SlotPending)
	if err != nil {
		return MakePickResult{}, fmt.Errorf("complete pick: %w", err)
	}
	if affected == 0 {
		return MakePickResult{}, fmt.Errorf("%w: pick %d", draft.ErrConcurrentPick, slot.PickNumber)
	}

	slot.PlayerID = input.PlayerID
	slot.Status = draft.SlotCompleted
	now := time.Now().UTC()
	slot.PickedAt = &now

	result := MakePickResult{Pick: slot}

	remaining, err := s.draftRepo.CountPending(ctx, found.ID)
	if err != nil {
		return MakePickResult{}, fmt.Errorf("count pending picks: %w", err)
	}
	if remaining == 0 {
		if err := s.leagueRepo.SetDraftComplete(ctx, found.ID); err != nil {
			return MakePickResult{}, fmt.Errorf("mark draft complete: %w", err)
		}
		result.DraftComplete = true
	} else {
		next, ok, err := s.draftRepo.FindNextPending(ctx, found.ID)
		if err != nil {
			return MakePickResult{}, fmt.Errorf("find next pending pick: %w", err)
		}
		if ok {
			result.Next = &next
		}
	}

	s.logger.InfoContext(ctx, "pick committed",
		"league_id", found.ID,
		"pick_number", slot.PickNumber,
		"participant_id", slot.ParticipantID,
		"player_id", slot.PlayerID,
		"draft_complete", result.DraftComplete,
	)

	eventType := DraftEventPickMade
	if result.DraftComplete {
		eventType = DraftEventComplete
	}
	s.publish(ctx, DraftEvent{
		LeagueID:      found.ID,
		Type:          eventType,
		Pick:          &result.Pick,
		Next:          result.Next,
		DraftComplete: result.DraftComplete,
	})
	if result.Next != nil {
		s.notifyParticipant(ctx, result.Next.ParticipantID, found.Name,
			fmt.Sprintf("You're on the clock with pick %d.", result.Next.PickNumber))
	}

	return result, nil
}

// GetBoard returns the full pick ledger for a league the caller belongs to.
func (s *DraftService) GetBoard(ctx context.Context, userID, leagueID string) ([]draft.PickSlot, error) {
	ctx, span := startUsecaseSpan(ctx, "DraftService.GetBoard")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	if _, exists, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, fmt.Errorf("get league by id: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	if _, enrolled, err := s.rosterRepo.GetByLeagueAndUser(ctx, leagueID, userID); err != nil {
		return nil, fmt.Errorf("check league membership: %w", err)
	} else if !enrolled {
		return nil, fmt.Errorf("%w: you are not a participant of this league", ErrForbidden)
	}

	slots, err := s.draftRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list picks by league: %w", err)
	}

	return slots, nil
}

func (s *DraftService) publish(ctx context.Context, event DraftEvent) {
	if s.feed == nil {
		return
	}
	s.feed.Publish(ctx, event)
}

func (s *DraftService) notifyParticipant(ctx context.Context, participantID, leagueName, body string) {
	if s.notifier == nil {
		return
	}

	participant, exists, err := s.rosterRepo.GetByID(ctx, participantID)
	if err != nil || !exists {
		s.logger.WarnContext(ctx, "skip turn notification, participant lookup failed",
			"participant_id", participantID,
			"error", err,
		)
		return
	}
	s.notifier.NotifyUser(ctx, participant.UserID, leagueName, body)
}
