package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/hoops-reference/internal/interfaces/web/view"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
)

func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Players")
	defer span.End()

	q := r.URL.Query()
	req := playersQuery{
		Search: strings.TrimSpace(q.Get("search")),
		Letter: strings.TrimSpace(q.Get("letter")),
		Page:   strings.TrimSpace(q.Get("page")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "invalid players query", err, "query", r.URL.RawQuery)
		return
	}

	page, _ := strconv.Atoi(req.Page)
	out, err := h.playerService.Search(ctx, usecase.PlayerSearchInput{
		Search: req.Search,
		Letter: req.Letter,
		Page:   page,
	})
	if err != nil {
		h.fail(ctx, w, "search players failed", err, "query", r.URL.RawQuery)
		return
	}

	writePage(ctx, w, http.StatusOK, view.PlayersPage(out))
}

func (h *Handler) PlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.PlayerProfile")
	defer span.End()

	req := entityPath{ID: strings.TrimSpace(r.PathValue("id"))}
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "invalid player id", err, "player_id", req.ID)
		return
	}

	out, err := h.playerService.Profile(ctx, req.ID)
	if err != nil {
		h.fail(ctx, w, "get player profile failed", err, "player_id", req.ID)
		return
	}

	writePage(ctx, w, http.StatusOK, view.PlayerPage(out))
}

func (h *Handler) PlayerGameLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.PlayerGameLog")
	defer span.End()

	req := entityPath{ID: strings.TrimSpace(r.PathValue("id"))}
	seasonID := strings.TrimSpace(r.URL.Query().Get("season"))
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "invalid player id", err, "player_id", req.ID)
		return
	}

	out, err := h.playerService.GameLog(ctx, req.ID, seasonID)
	if err != nil {
		h.fail(ctx, w, "get player game log failed", err, "player_id", req.ID, "season_id", seasonID)
		return
	}

	writePage(ctx, w, http.StatusOK, view.PlayerGameLogPage(out))
}

func (h *Handler) PlayerSplits(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.PlayerSplits")
	defer span.End()

	req := entityPath{ID: strings.TrimSpace(r.PathValue("id"))}
	seasonID := strings.TrimSpace(r.URL.Query().Get("season"))
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "invalid player id", err, "player_id", req.ID)
		return
	}

	out, err := h.playerService.Splits(ctx, req.ID, seasonID)
	if err != nil {
		h.fail(ctx, w, "get player splits failed", err, "player_id", req.ID, "season_id", seasonID)
		return
	}

	writePage(ctx, w, http.StatusOK, view.PlayerSplitsPage(out))
}
