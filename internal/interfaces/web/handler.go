package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/resilience"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
)

// UpstreamHealth reports the stats API circuit state for /healthz.
type UpstreamHealth interface {
	Breaker() resilience.Snapshot
}

type Handler struct {
	homeService      *usecase.HomeService
	playerService    *usecase.PlayerService
	teamService      *usecase.TeamService
	gameService      *usecase.GameService
	seasonService    *usecase.SeasonService
	draftService     *usecase.DraftService
	contractService  *usecase.ContractService
	franchiseService *usecase.FranchiseService
	upstream         UpstreamHealth
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	homeService *usecase.HomeService,
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	gameService *usecase.GameService,
	seasonService *usecase.SeasonService,
	draftService *usecase.DraftService,
	contractService *usecase.ContractService,
	franchiseService *usecase.FranchiseService,
	upstream UpstreamHealth,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		homeService:      homeService,
		playerService:    playerService,
		teamService:      teamService,
		gameService:      gameService,
		seasonService:    seasonService,
		draftService:     draftService,
		contractService:  contractService,
		franchiseService: franchiseService,
		upstream:         upstream,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "web.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// fail logs a page failure and renders the matching error page. Missing
// entities are logged at info since they are usually bad links.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus == http.StatusNotFound {
		h.logger.InfoContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

// NotFound renders the 404 page for paths no route matches.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.NotFound")
	defer span.End()

	writeError(ctx, w, fmt.Errorf("%w: path=%s", usecase.ErrNotFound, r.URL.Path))
}

type entityPath struct {
	ID string `validate:"required"`
}

type playersQuery struct {
	Search string
	Letter string
	Page   string `validate:"omitempty,number"`
}
