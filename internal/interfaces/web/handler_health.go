package web

import (
	"net/http"

	"github.com/riskibarqy/hoops-reference/internal/platform/resilience"
)

type healthResponse struct {
	Status   string               `json:"status"`
	StatsAPI *resilience.Snapshot `json:"stats_api,omitempty"`
}

// Healthz reports the process as up even while the stats API circuit is
// open; pages still render with empty sections in that state.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Healthz")
	defer span.End()

	resp := healthResponse{Status: "ok"}
	if h.upstream != nil {
		snapshot := h.upstream.Breaker()
		resp.StatsAPI = &snapshot
		if snapshot.State != resilience.CircuitStateClosed {
			resp.Status = "degraded"
		}
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
