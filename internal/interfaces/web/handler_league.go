package web

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/hoops-reference/internal/interfaces/web/view"
)

func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Seasons")
	defer span.End()

	out, err := h.seasonService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list seasons failed", err)
		return
	}

	writePage(ctx, w, http.StatusOK, view.SeasonsPage(out))
}

func (h *Handler) SeasonDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.SeasonDetail")
	defer span.End()

	req := entityPath{ID: strings.TrimSpace(r.PathValue("season_id"))}
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "invalid season id", err, "season_id", req.ID)
		return
	}

	out, err := h.seasonService.Detail(ctx, req.ID)
	if err != nil {
		h.fail(ctx, w, "get season detail failed", err, "season_id", req.ID)
		return
	}

	writePage(ctx, w, http.StatusOK, view.SeasonPage(out))
}

func (h *Handler) Draft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Draft")
	defer span.End()

	year := strings.TrimSpace(r.URL.Query().Get("year"))
	out, err := h.draftService.Class(ctx, year)
	if err != nil {
		h.fail(ctx, w, "get draft class failed", err, "year", year)
		return
	}

	writePage(ctx, w, http.StatusOK, view.DraftPage(out))
}

func (h *Handler) Contracts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Contracts")
	defer span.End()

	out, err := h.contractService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list contracts failed", err)
		return
	}

	writePage(ctx, w, http.StatusOK, view.ContractsPage(out))
}

func (h *Handler) Franchises(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Franchises")
	defer span.End()

	out, err := h.franchiseService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list franchises failed", err)
		return
	}

	writePage(ctx, w, http.StatusOK, view.FranchisesPage(out))
}
