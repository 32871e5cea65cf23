package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/riskibarqy/hoops-reference/internal/domain/contract"
	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
)

const defaultLetter = "A"

type PlayerSearchInput struct {
	Search string
	Letter string
	Page   int
}

type PlayerSearchPage struct {
	Players []player.Player
	Search  string
	Letter  string
	Page    int
	HasNext bool
	Failed  []string
}

type PlayerProfile struct {
	Player           player.Player
	SeasonStats      []player.SeasonStats
	Advanced         []player.AdvancedStats
	Shooting         []player.ShootingStats
	AdjustedShooting []player.AdjustedShooting
	PlayByPlay       []player.PlayByPlayStats
	Awards           []player.Award
	Contracts        []contract.Contract
	Failed           []string
}

type PlayerGameLogPage struct {
	Player   player.Player
	SeasonID string
	Seasons  []string
	Logs     []player.GameLog
	Failed   []string
}

type PlayerSplitsPage struct {
	Player   player.Player
	SeasonID string
	Seasons  []string
	Splits   []player.Split
	Failed   []string
}

type PlayerService struct {
	playerRepo   player.Repository
	contractRepo contract.Repository
	pool         *workpool.Pool
	logger       *logging.Logger
	pageSize     int
}

func NewPlayerService(
	playerRepo player.Repository,
	contractRepo contract.Repository,
	pool *workpool.Pool,
	logger *logging.Logger,
	pageSize int,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	if pageSize < 1 {
		pageSize = 50
	}
	return &PlayerService{
		playerRepo:   playerRepo,
		contractRepo: contractRepo,
		pool:         pool,
		logger:       logger,
		pageSize:     pageSize,
	}
}

// Search lists players by name, or by last-name initial when no name is
// given. One extra row is requested to detect a following page.
func (s *PlayerService) Search(ctx context.Context, input PlayerSearchInput) (PlayerSearchPage, error) {
	ctx, span := startPage(ctx, "players", "usecase.PlayerService.Search")
	defer span.End()

	page := PlayerSearchPage{
		Search: strings.TrimSpace(input.Search),
		Letter: strings.ToUpper(strings.TrimSpace(input.Letter)),
		Page:   max(input.Page, 1),
	}
	if page.Letter == "" {
		page.Letter = defaultLetter
	}
	if !isLetter(page.Letter) {
		return PlayerSearchPage{}, fmt.Errorf("%w: letter must be a single letter, got %q", ErrInvalidInput, input.Letter)
	}

	query := player.SearchQuery{
		Limit:  s.pageSize + 1,
		Offset: (page.Page - 1) * s.pageSize,
	}
	if page.Search != "" {
		query.Search = page.Search
	} else {
		query.Letter = page.Letter
	}

	var players []player.Player
	g := s.pool.Group(ctx)
	fetchInto(g, "players", &players, func(ctx context.Context) ([]player.Player, error) {
		return s.playerRepo.Search(ctx, query)
	})
	page.Failed = settle(ctx, s.logger, g)

	if len(players) > s.pageSize {
		page.HasNext = true
		players = players[:s.pageSize]
	}
	page.Players = players
	return page, nil
}

func isLetter(v string) bool {
	r := []rune(v)
	return len(r) == 1 && unicode.IsLetter(r[0])
}

func (s *PlayerService) get(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

// Profile loads the player and every season view. Only a missing player fails
// the page; any other section that cannot be loaded is left empty.
func (s *PlayerService) Profile(ctx context.Context, playerID string) (PlayerProfile, error) {
	ctx, span := startPage(ctx, "player_profile", "usecase.PlayerService.Profile", entityAttr("player", playerID))
	defer span.End()

	item, err := s.get(ctx, playerID)
	if err != nil {
		return PlayerProfile{}, err
	}

	out := PlayerProfile{Player: item}
	id := item.ID
	g := s.pool.Group(ctx)
	fetchInto(g, "season_stats", &out.SeasonStats, func(ctx context.Context) ([]player.SeasonStats, error) {
		return s.playerRepo.ListSeasonStats(ctx, id)
	})
	fetchInto(g, "advanced", &out.Advanced, func(ctx context.Context) ([]player.AdvancedStats, error) {
		return s.playerRepo.ListAdvancedStats(ctx, id)
	})
	fetchInto(g, "shooting", &out.Shooting, func(ctx context.Context) ([]player.ShootingStats, error) {
		return s.playerRepo.ListShootingStats(ctx, id)
	})
	fetchInto(g, "adjusted_shooting", &out.AdjustedShooting, func(ctx context.Context) ([]player.AdjustedShooting, error) {
		return s.playerRepo.ListAdjustedShooting(ctx, id)
	})
	fetchInto(g, "play_by_play", &out.PlayByPlay, func(ctx context.Context) ([]player.PlayByPlayStats, error) {
		return s.playerRepo.ListPlayByPlayStats(ctx, id)
	})
	fetchInto(g, "awards", &out.Awards, func(ctx context.Context) ([]player.Award, error) {
		return s.playerRepo.ListAwards(ctx, id)
	})
	fetchInto(g, "contracts", &out.Contracts, func(ctx context.Context) ([]contract.Contract, error) {
		return s.contractRepo.ListByPlayer(ctx, id)
	})
	out.Failed = settle(ctx, s.logger, g)

	return out, nil
}

// GameLog loads one season of games. An empty seasonID leaves the choice of
// season to the stats API.
func (s *PlayerService) GameLog(ctx context.Context, playerID, seasonID string) (PlayerGameLogPage, error) {
	ctx, span := startPage(ctx, "player_gamelog", "usecase.PlayerService.GameLog", entityAttr("player", playerID))
	defer span.End()

	item, err := s.get(ctx, playerID)
	if err != nil {
		return PlayerGameLogPage{}, err
	}

	out := PlayerGameLogPage{Player: item, SeasonID: strings.TrimSpace(seasonID)}
	g := s.pool.Group(ctx)
	fetchInto(g, "seasons", &out.Seasons, func(ctx context.Context) ([]string, error) {
		return s.playerRepo.ListSeasonIDs(ctx, item.ID)
	})
	fetchInto(g, "game_log", &out.Logs, func(ctx context.Context) ([]player.GameLog, error) {
		return s.playerRepo.ListGameLogs(ctx, item.ID, out.SeasonID)
	})
	out.Failed = settle(ctx, s.logger, g)

	return out, nil
}

func (s *PlayerService) Splits(ctx context.Context, playerID, seasonID string) (PlayerSplitsPage, error) {
	ctx, span := startPage(ctx, "player_splits", "usecase.PlayerService.Splits", entityAttr("player", playerID))
	defer span.End()

	item, err := s.get(ctx, playerID)
	if err != nil {
		return PlayerSplitsPage{}, err
	}

	out := PlayerSplitsPage{Player: item, SeasonID: strings.TrimSpace(seasonID)}
	g := s.pool.Group(ctx)
	fetchInto(g, "seasons", &out.Seasons, func(ctx context.Context) ([]string, error) {
		return s.playerRepo.ListSeasonIDs(ctx, item.ID)
	})
	fetchInto(g, "splits", &out.Splits, func(ctx context.Context) ([]player.Split, error) {
		return s.playerRepo.ListSplits(ctx, item.ID, out.SeasonID)
	})
	out.Failed = settle(ctx, s.logger, g)

	return out, nil
}
