package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/usecase"
)

// DraftFeed upgrades an authorized request to a live draft event stream.
type DraftFeed interface {
	Subscribe(w http.ResponseWriter, r *http.Request, leagueID string) error
}

type Handler struct {
	leagueService       *usecase.LeagueService
	draftService        *usecase.DraftService
	playerService       *usecase.PlayerService
	notificationService *usecase.NotificationService
	dashboardService    *usecase.DashboardService
	feed                DraftFeed
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	draftService *usecase.DraftService,
	playerService *usecase.PlayerService,
	notificationService *usecase.NotificationService,
	dashboardService *usecase.DashboardService,
	feed DraftFeed,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:       leagueService,
		draftService:        draftService,
		playerService:       playerService,
		notificationService: notificationService,
		dashboardService:    dashboardService,
		feed:                feed,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
