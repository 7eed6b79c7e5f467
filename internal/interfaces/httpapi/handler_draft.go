package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/usecase"
)

func (h *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartDraft")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	result, err := h.draftService.StartDraft(ctx, usecase.StartDraftInput{
		UserID:   principal.UserID,
		LeagueID: leagueID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "start draft failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, startDraftResponse{
		Positions: result.Positions,
		FirstSlot: pickSlotToDTO(ctx, result.FirstSlot),
	})
}

func (h *Handler) MakePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MakePick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req makePickRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.draftService.MakePick(ctx, usecase.MakePickInput{
		UserID:             principal.UserID,
		LeagueID:           leagueID,
		ExpectedPickNumber: req.PickNumber,
		PlayerID:           req.PlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "make pick failed",
			"league_id", leagueID,
			"user_id", principal.UserID,
			"pick_number", req.PickNumber,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	var next *pickSlotDTO
	if result.Next != nil {
		dto := pickSlotToDTO(ctx, *result.Next)
		next = &dto
	}

	writeSuccess(ctx, w, http.StatusOK, makePickResponse{
		Pick:          pickSlotToDTO(ctx, result.Pick),
		Next:          next,
		DraftComplete: result.DraftComplete,
	})
}

func (h *Handler) GetDraftBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftBoard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	slots, err := h.draftService.GetBoard(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft board failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]pickSlotDTO, 0, len(slots))
	for _, slot := range slots {
		items = append(items, pickSlotToDTO(ctx, slot))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// DraftFeed hands the connection to the websocket hub after a league
// membership check; everything past the upgrade belongs to the hub.
func (h *Handler) DraftFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DraftFeed")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	if _, err := h.leagueService.GetLeague(ctx, principal.UserID, leagueID); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.feed.Subscribe(w, r.WithContext(ctx), leagueID); err != nil {
		h.logger.WarnContext(ctx, "draft feed subscription ended", "league_id", leagueID, "error", err)
	}
}
