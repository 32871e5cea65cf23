package web

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/hoops-reference/internal/interfaces/web/view"
)

func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Games")
	defer span.End()

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	out, err := h.gameService.Scoreboard(ctx, date)
	if err != nil {
		h.fail(ctx, w, "list games failed", err, "date", date)
		return
	}

	writePage(ctx, w, http.StatusOK, view.ScoreboardPage(out))
}

func (h *Handler) BoxScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.BoxScore")
	defer span.End()

	req := entityPath{ID: strings.TrimSpace(r.PathValue("game_id"))}
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "invalid game id", err, "game_id", req.ID)
		return
	}

	out, err := h.gameService.BoxScore(ctx, req.ID)
	if err != nil {
		h.fail(ctx, w, "get box score failed", err, "game_id", req.ID)
		return
	}

	writePage(ctx, w, http.StatusOK, view.BoxScorePage(out))
}
