package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/hoops-reference/internal/domain/game"
	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
)

const teamScheduleLimit = 100

type TeamDirectory struct {
	Teams  []team.Team
	Failed []string
}

type TeamDetail struct {
	Team   team.Team
	Roster []player.Player
	Games  []game.Game
	Stats  []team.SeasonStats
	Teams  []team.Team
	Failed []string
}

type TeamService struct {
	teamRepo team.Repository
	gameRepo game.Repository
	pool     *workpool.Pool
	logger   *logging.Logger
}

func NewTeamService(teamRepo team.Repository, gameRepo game.Repository, pool *workpool.Pool, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		pool:     pool,
		logger:   logger,
	}
}

func (s *TeamService) List(ctx context.Context) (TeamDirectory, error) {
	ctx, span := startPage(ctx, "teams", "usecase.TeamService.List")
	defer span.End()

	var out TeamDirectory
	g := s.pool.Group(ctx)
	fetchInto(g, "teams", &out.Teams, s.teamRepo.List)
	out.Failed = settle(ctx, s.logger, g)

	sortTeams(out.Teams)
	return out, nil
}

// Detail loads a team page. The schedule is ordered by date and capped to one
// season's worth of games.
func (s *TeamService) Detail(ctx context.Context, teamID string) (TeamDetail, error) {
	ctx, span := startPage(ctx, "team_detail", "usecase.TeamService.Detail", entityAttr("team", teamID))
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamDetail{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamDetail{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	out := TeamDetail{Team: item}
	g := s.pool.Group(ctx)
	fetchInto(g, "roster", &out.Roster, func(ctx context.Context) ([]player.Player, error) {
		return s.teamRepo.ListRoster(ctx, item.ID)
	})
	fetchInto(g, "games", &out.Games, func(ctx context.Context) ([]game.Game, error) {
		return s.gameRepo.List(ctx, game.Filter{TeamID: item.ID, Limit: teamScheduleLimit})
	})
	fetchInto(g, "team_stats", &out.Stats, func(ctx context.Context) ([]team.SeasonStats, error) {
		return s.teamRepo.ListSeasonStats(ctx, item.ID)
	})
	fetchInto(g, "teams", &out.Teams, s.teamRepo.List)
	out.Failed = settle(ctx, s.logger, g)

	sortGamesByDate(out.Games)
	return out, nil
}

func sortTeams(teams []team.Team) {
	slices.SortStableFunc(teams, func(a, b team.Team) int {
		return strings.Compare(a.DisplayName(), b.DisplayName())
	})
}

// sortGamesByDate orders games oldest first; undated games go last.
func sortGamesByDate(games []game.Game) {
	slices.SortStableFunc(games, func(a, b game.Game) int {
		switch {
		case a.GameDate == nil && b.GameDate == nil:
			return 0
		case a.GameDate == nil:
			return 1
		case b.GameDate == nil:
			return -1
		}
		return strings.Compare(*a.GameDate, *b.GameDate)
	})
}
