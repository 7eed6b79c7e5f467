package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/league"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/roster"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/id"
)

const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type CreateLeagueInput struct {
	UserID          string
	Name            string
	MaxParticipants int
	DraftRounds     int
}

type JoinLeagueByInviteInput struct {
	UserID     string
	InviteCode string
}

type LeagueService struct {
	leagueRepo league.Repository
	rosterRepo roster.Repository
	rules      draft.Rules
	now        func() time.Time
}

func NewLeagueService(leagueRepo league.Repository, rosterRepo roster.Repository, rules draft.Rules) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		rosterRepo: rosterRepo,
		rules:      rules,
		now:        time.Now,
	}
}

func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (league.FantasyLeague, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.CreateLeague")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)
	if input.UserID == "" {
		return league.FantasyLeague{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return league.FantasyLeague{}, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if input.MaxParticipants < s.rules.MinParticipants {
		return league.FantasyLeague{}, fmt.Errorf("%w: max participants must be at least %d", ErrInvalidInput, s.rules.MinParticipants)
	}
	if input.DraftRounds <= 0 {
		input.DraftRounds = s.rules.Rounds
	}

	inviteCode, err := generateInviteCode(8)
	if err != nil {
		return league.FantasyLeague{}, fmt.Errorf("generate invite code: %w", err)
	}

	now := s.now().UTC()
	created := league.FantasyLeague{
		ID:              id.New(id.PrefixLeague),
		Name:            input.Name,
		OwnerUserID:     input.UserID,
		Status:          league.StatusPending,
		DraftStatus:     league.DraftNotStarted,
		MaxParticipants: input.MaxParticipants,
		DraftRounds:     input.DraftRounds,
		InviteCode:      inviteCode,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := created.Validate(); err != nil {
		return league.FantasyLeague{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.leagueRepo.Create(ctx, created); err != nil {
		if isDuplicateConstraintError(err) {
			return league.FantasyLeague{}, fmt.Errorf("%w: duplicate league name or invite code", ErrInvalidInput)
		}
		return league.FantasyLeague{}, fmt.Errorf("create league: %w", err)
	}

	owner := roster.Participant{
		ID:       id.New(id.PrefixParticipant),
		LeagueID: created.ID,
		UserID:   input.UserID,
		Role:     roster.RoleOwner,
		Status:   roster.StatusActive,
		JoinedAt: now,
	}
	if err := s.rosterRepo.Create(ctx, owner); err != nil {
		return league.FantasyLeague{}, fmt.Errorf("enroll league owner: %w", err)
	}

	return created, nil
}

func (s *LeagueService) JoinByInviteCode(ctx context.Context, input JoinLeagueByInviteInput) (league.FantasyLeague, roster.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.JoinByInviteCode")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.InviteCode = strings.ToUpper(strings.TrimSpace(input.InviteCode))
	if input.UserID == "" {
		return league.FantasyLeague{}, roster.Participant{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.InviteCode == "" {
		return league.FantasyLeague{}, roster.Participant{}, fmt.Errorf("%w: invite code is required", ErrInvalidInput)
	}

	found, exists, err := s.leagueRepo.GetByInviteCode(ctx, input.InviteCode)
	if err != nil {
		return league.FantasyLeague{}, roster.Participant{}, fmt.Errorf("get league by invite code: %w", err)
	}
	if !exists {
		return league.FantasyLeague{}, roster.Participant{}, fmt.Errorf("%w: invite code not found", ErrNotFound)
	}
	if !found.Joinable() {
		return league.FantasyLeague{}, roster.Participant{}, fmt.Errorf("%w: league is no longer accepting participants", ErrInvalidInput)
	}

	if existing, enrolled, err := s.rosterRepo.GetByLeagueAndUser(ctx, found.ID, input.UserID); err != nil {
		return league.FantasyLeague{}, roster.Participant{}, fmt.Errorf("check existing membership: %w", err)
	} else if enrolled && existing.Status == roster.StatusActive {
		return found, existing, nil
	}

	count, err := s.rosterRepo.CountByLeague(ctx, found.ID)
	if err != nil {
		return league.FantasyLeague{}, roster.Participant{}, fmt.Errorf("count league participants: %w", err)
	}
	if found.MaxParticipants > 0 && count >= found.MaxParticipants {
		return league.FantasyLeague{}, roster.Participant{}, fmt.Errorf("%w: league is full", ErrInvalidInput)
	}

	joined := roster.Participant{
		ID:       id.New(id.PrefixParticipant),
		LeagueID: found.ID,
		UserID:   input.UserID,
		Role:     roster.RoleMember,
		Status:   roster.StatusActive,
		JoinedAt: s.now().UTC(),
	}
	if err := s.rosterRepo.Create(ctx, joined); err != nil {
		if isDuplicateConstraintError(err) {
			return league.FantasyLeague{}, roster.Participant{}, fmt.Errorf("%w: already a participant of this league", ErrInvalidInput)
		}
		return league.FantasyLeague{}, roster.Participant{}, fmt.Errorf("join league: %w", err)
	}

	return found, joined, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, userID, leagueID string) (league.FantasyLeague, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.GetLeague")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" {
		return league.FantasyLeague{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if leagueID == "" {
		return league.FantasyLeague{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	found, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.FantasyLeague{}, fmt.Errorf("get league by id: %w", err)
	}
	if !exists {
		return league.FantasyLeague{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	if _, enrolled, err := s.rosterRepo.GetByLeagueAndUser(ctx, leagueID, userID); err != nil {
		return league.FantasyLeague{}, fmt.Errorf("check league membership: %w", err)
	} else if !enrolled {
		return league.FantasyLeague{}, fmt.Errorf("%w: you are not a participant of this league", ErrForbidden)
	}

	return found, nil
}

func (s *LeagueService) ListMyLeagues(ctx context.Context, userID string) ([]league.FantasyLeague, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.ListMyLeagues")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list leagues by user: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) ListParticipants(ctx context.Context, userID, leagueID string) ([]roster.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.ListParticipants")
	defer span.End()

	if _, err := s.GetLeague(ctx, userID, leagueID); err != nil {
		return nil, err
	}

	participants, err := s.rosterRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list league participants: %w", err)
	}

	return participants, nil
}

func generateInviteCode(length int) (string, error) {
	if length < 6 {
		length = 6
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes for invite code: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	return string(out), nil
}

func isDuplicateConstraintError(err error) bool {
	if err == nil {
		return false
	}
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "duplicate key value violates unique constraint")
}
