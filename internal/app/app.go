package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/hoops-reference/external/statsapi"
	"github.com/riskibarqy/hoops-reference/internal/config"
	"github.com/riskibarqy/hoops-reference/internal/interfaces/web"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/resilience"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
)

// NewStatsClient builds the stats API client shared by the site and the CLI.
func NewStatsClient(cfg config.Config, logger *logging.Logger) *statsapi.Client {
	return statsapi.NewClient(statsapi.ClientConfig{
		BaseURL:    cfg.StatsAPIBaseURL,
		Timeout:    cfg.StatsAPITimeout,
		MaxRetries: cfg.StatsAPIMaxRetries,
		RateLimit:  cfg.StatsAPIRateLimit,
		RateBurst:  cfg.StatsAPIRateBurst,
		Logger:     logger.With("component", "statsapi"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.StatsAPICircuitEnabled,
			FailureThreshold: cfg.StatsAPICircuitFailureCount,
			OpenTimeout:      cfg.StatsAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.StatsAPICircuitHalfOpenMaxReq,
		},
	})
}

// NewHTTPServer wires the site. The returned func releases the fetch pool and
// must be called after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	pool, err := workpool.New(cfg.StatsAPIMaxConcurrency)
	if err != nil {
		return nil, nil, err
	}

	client := NewStatsClient(cfg, logger)
	playerRepo := statsapi.NewPlayerRepository(client)
	teamRepo := statsapi.NewTeamRepository(client)
	gameRepo := statsapi.NewGameRepository(client)
	seasonRepo := statsapi.NewSeasonRepository(client)
	draftRepo := statsapi.NewDraftRepository(client)
	contractRepo := statsapi.NewContractRepository(client)
	franchiseRepo := statsapi.NewFranchiseRepository(client)

	handler := web.NewHandler(
		usecase.NewHomeService(teamRepo, seasonRepo, pool, logger),
		usecase.NewPlayerService(playerRepo, contractRepo, pool, logger, cfg.PlayersPageSize),
		usecase.NewTeamService(teamRepo, gameRepo, pool, logger),
		usecase.NewGameService(gameRepo, teamRepo, pool, logger),
		usecase.NewSeasonService(seasonRepo, teamRepo, pool, logger),
		usecase.NewDraftService(draftRepo, teamRepo, pool, logger, cfg.DraftDefaultYear),
		usecase.NewContractService(contractRepo, teamRepo, pool, logger),
		usecase.NewFranchiseService(franchiseRepo, pool, logger),
		client,
		logger,
	)
	router := web.NewRouter(handler, logger, web.RouterConfig{
		ServiceName:      cfg.ServiceName,
		CompressionLevel: cfg.CompressionLevel,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, pool.Release, nil
}
