package web

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/hoops-reference/internal/interfaces/web/view"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Home")
	defer span.End()

	out, err := h.homeService.Dashboard(ctx)
	if err != nil {
		h.fail(ctx, w, "build dashboard failed", err)
		return
	}

	writePage(ctx, w, http.StatusOK, view.HomePage(out))
}

func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Teams")
	defer span.End()

	out, err := h.teamService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}

	writePage(ctx, w, http.StatusOK, view.TeamsPage(out))
}

func (h *Handler) TeamDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.TeamDetail")
	defer span.End()

	req := entityPath{ID: strings.TrimSpace(r.PathValue("id"))}
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "invalid team id", err, "team_id", req.ID)
		return
	}

	out, err := h.teamService.Detail(ctx, req.ID)
	if err != nil {
		h.fail(ctx, w, "get team detail failed", err, "team_id", req.ID)
		return
	}

	writePage(ctx, w, http.StatusOK, view.TeamPage(out))
}
