package web

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
)

type RouterConfig struct {
	ServiceName      string
	CompressionLevel int
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "hoops-reference"
	}
	if cfg.CompressionLevel < 1 || cfg.CompressionLevel > 9 {
		cfg.CompressionLevel = 5
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPageRoutes(mux, handler)

	var h http.Handler = recoverPanic(logger, mux)
	h = middleware.Compress(cfg.CompressionLevel, "text/html", "application/json")(h)
	h = RequestLogging(logger, h)
	h = middleware.RealIP(h)
	h = middleware.RequestID(h)
	return RequestTracing(cfg.ServiceName, h)
}
