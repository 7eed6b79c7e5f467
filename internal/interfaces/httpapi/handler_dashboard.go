package httpapi

import (
	"fmt"
	"net/http"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/usecase"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	dashboard, err := h.dashboardService.Get(ctx, principal.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueSummaryDTO, 0, len(dashboard.Leagues))
	for _, summary := range dashboard.Leagues {
		items = append(items, leagueSummaryToDTO(ctx, summary))
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardDTO{Leagues: items})
}
