package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-reference/internal/domain/game"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
)

const scoreboardLimit = 50

type ScoreboardPage struct {
	Date   string
	Games  []game.Game
	Teams  []team.Team
	Failed []string
}

type BoxScorePage struct {
	Game      game.Game
	Lines     []game.BoxScoreLine
	TeamStats *game.TeamGameStats
	Home      team.Team
	Away      team.Team
	Teams     []team.Team
	Failed    []string
}

type GameService struct {
	gameRepo game.Repository
	teamRepo team.Repository
	pool     *workpool.Pool
	logger   *logging.Logger
}

func NewGameService(gameRepo game.Repository, teamRepo team.Repository, pool *workpool.Pool, logger *logging.Logger) *GameService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameService{
		gameRepo: gameRepo,
		teamRepo: teamRepo,
		pool:     pool,
		logger:   logger,
	}
}

// Scoreboard lists games on date (YYYY-MM-DD). An empty date lists the most
// recent games without a date filter.
func (s *GameService) Scoreboard(ctx context.Context, date string) (ScoreboardPage, error) {
	ctx, span := startPage(ctx, "scoreboard", "usecase.GameService.Scoreboard")
	defer span.End()

	date = strings.TrimSpace(date)
	if date != "" {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return ScoreboardPage{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, date)
		}
	}

	out := ScoreboardPage{Date: date}
	g := s.pool.Group(ctx)
	fetchInto(g, "games", &out.Games, func(ctx context.Context) ([]game.Game, error) {
		return s.gameRepo.List(ctx, game.Filter{Date: date, Limit: scoreboardLimit})
	})
	fetchInto(g, "teams", &out.Teams, s.teamRepo.List)
	out.Failed = settle(ctx, s.logger, g)

	return out, nil
}

// BoxScore loads a game with its player lines, team stats and both teams.
func (s *GameService) BoxScore(ctx context.Context, gameID string) (BoxScorePage, error) {
	ctx, span := startPage(ctx, "box_score", "usecase.GameService.BoxScore", entityAttr("game", gameID))
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return BoxScorePage{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return BoxScorePage{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return BoxScorePage{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	out := BoxScorePage{
		Game: item,
		Home: team.Team{ID: item.HomeTeamID, Abbreviation: item.HomeTeamID},
		Away: team.Team{ID: item.AwayTeamID, Abbreviation: item.AwayTeamID},
	}
	g := s.pool.Group(ctx)
	fetchInto(g, "box_score", &out.Lines, func(ctx context.Context) ([]game.BoxScoreLine, error) {
		return s.gameRepo.ListBoxScores(ctx, item.ID)
	})
	fetchInto(g, "team_stats", &out.TeamStats, func(ctx context.Context) (*game.TeamGameStats, error) {
		stats, exists, err := s.gameRepo.GetStats(ctx, item.ID)
		if err != nil || !exists {
			return nil, err
		}
		return &stats, nil
	})
	fetchInto(g, "home_team", &out.Home, s.teamOrPlaceholder(item.HomeTeamID))
	fetchInto(g, "away_team", &out.Away, s.teamOrPlaceholder(item.AwayTeamID))
	fetchInto(g, "teams", &out.Teams, s.teamRepo.List)
	out.Failed = settle(ctx, s.logger, g)

	return out, nil
}

// teamOrPlaceholder resolves a team, falling back to its id as the name when
// the API does not know it.
func (s *GameService) teamOrPlaceholder(teamID string) func(context.Context) (team.Team, error) {
	return func(ctx context.Context) (team.Team, error) {
		item, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return team.Team{}, err
		}
		if !exists {
			return team.Team{ID: teamID, Abbreviation: teamID}, nil
		}
		return item, nil
	}
}
