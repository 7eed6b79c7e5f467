package httpapi

import (
	"context"
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/league"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/player"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/roster"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/usecase"
)

type createLeagueRequest struct {
	Name            string `json:"name" validate:"required,max=120"`
	MaxParticipants int    `json:"max_participants" validate:"required,gte=2,lte=20"`
	DraftRounds     int    `json:"draft_rounds" validate:"omitempty,gte=1,lte=30"`
}

type joinLeagueByInviteRequest struct {
	InviteCode string `json:"invite_code" validate:"required,min=6,max=32"`
}

type makePickRequest struct {
	PickNumber int    `json:"pick_number" validate:"required,gt=0"`
	PlayerID   string `json:"player_id" validate:"required"`
}

type subscribePushRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	P256DH   string `json:"p256dh" validate:"required"`
	Auth     string `json:"auth" validate:"required"`
}

type unsubscribePushRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
}

type leagueDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	OwnerUserID     string `json:"ownerUserId"`
	Status          string `json:"status"`
	DraftStatus     string `json:"draftStatus"`
	MaxParticipants int    `json:"maxParticipants"`
	DraftRounds     int    `json:"draftRounds"`
	InviteCode      string `json:"inviteCode"`
	CreatedAtUTC    string `json:"createdAtUtc"`
}

type participantDTO struct {
	ID            string `json:"id"`
	LeagueID      string `json:"leagueId"`
	UserID        string `json:"userId"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	DraftPosition *int   `json:"draftPosition,omitempty"`
	JoinedAtUTC   string `json:"joinedAtUtc"`
}

type pickSlotDTO struct {
	ID            string `json:"id"`
	LeagueID      string `json:"leagueId"`
	ParticipantID string `json:"participantId"`
	Round         int    `json:"round"`
	PickNumber    int    `json:"pickNumber"`
	PlayerID      string `json:"playerId,omitempty"`
	Status        string `json:"status"`
	PickedAtUTC   string `json:"pickedAtUtc,omitempty"`
}

type playerDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Club     string `json:"club"`
	Position string `json:"position"`
}

type startDraftResponse struct {
	Positions map[string]int `json:"positions"`
	FirstSlot pickSlotDTO    `json:"firstSlot"`
}

type makePickResponse struct {
	Pick          pickSlotDTO  `json:"pick"`
	Next          *pickSlotDTO `json:"next,omitempty"`
	DraftComplete bool         `json:"draftComplete"`
}

type leagueSummaryDTO struct {
	League         leagueDTO    `json:"league"`
	Participants   int          `json:"participants"`
	PicksMade      int          `json:"picksMade"`
	PicksRemaining int          `json:"picksRemaining"`
	OnTheClock     bool         `json:"onTheClock"`
	CurrentPick    *pickSlotDTO `json:"currentPick,omitempty"`
}

type dashboardDTO struct {
	Leagues []leagueSummaryDTO `json:"leagues"`
}

func leagueToDTO(ctx context.Context, v league.FantasyLeague) leagueDTO {
	ctx, span := startSpan(ctx, "httpapi.leagueToDTO")
	defer span.End()

	return leagueDTO{
		ID:              v.ID,
		Name:            v.Name,
		OwnerUserID:     v.OwnerUserID,
		Status:          string(v.Status),
		DraftStatus:     string(v.DraftStatus),
		MaxParticipants: v.MaxParticipants,
		DraftRounds:     v.DraftRounds,
		InviteCode:      v.InviteCode,
		CreatedAtUTC:    v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func participantToDTO(ctx context.Context, v roster.Participant) participantDTO {
	ctx, span := startSpan(ctx, "httpapi.participantToDTO")
	defer span.End()

	return participantDTO{
		ID:            v.ID,
		LeagueID:      v.LeagueID,
		UserID:        v.UserID,
		Role:          string(v.Role),
		Status:        string(v.Status),
		DraftPosition: v.DraftPosition,
		JoinedAtUTC:   v.JoinedAt.UTC().Format(time.RFC3339),
	}
}

func pickSlotToDTO(ctx context.Context, v draft.PickSlot) pickSlotDTO {
	ctx, span := startSpan(ctx, "httpapi.pickSlotToDTO")
	defer span.End()

	pickedAt := ""
	if v.PickedAt != nil {
		pickedAt = v.PickedAt.UTC().Format(time.RFC3339)
	}

	return pickSlotDTO{
		ID:            v.ID,
		LeagueID:      v.LeagueID,
		ParticipantID: v.ParticipantID,
		Round:         v.Round,
		PickNumber:    v.PickNumber,
		PlayerID:      v.PlayerID,
		Status:        string(v.Status),
		PickedAtUTC:   pickedAt,
	}
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:       v.ID,
		Name:     v.Name,
		Club:     v.Club,
		Position: string(v.Position),
	}
}

func leagueSummaryToDTO(ctx context.Context, v usecase.LeagueSummary) leagueSummaryDTO {
	ctx, span := startSpan(ctx, "httpapi.leagueSummaryToDTO")
	defer span.End()

	var current *pickSlotDTO
	if v.CurrentPick != nil {
		dto := pickSlotToDTO(ctx, *v.CurrentPick)
		current = &dto
	}

	return leagueSummaryDTO{
		League:         leagueToDTO(ctx, v.League),
		Participants:   v.Participants,
		PicksMade:      v.PicksMade,
		PicksRemaining: v.PicksRemaining,
		OnTheClock:     v.OnTheClock,
		CurrentPick:    current,
	}
}
