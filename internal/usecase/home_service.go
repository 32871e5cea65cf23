package usecase

import (
	"context"

	"github.com/riskibarqy/hoops-reference/internal/domain/season"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
)

const featuredTeams = 6

type Dashboard struct {
	Teams     []team.Team
	Featured  []team.Team
	Latest    *season.Season
	Standings []season.Standing
	Leaders   season.Leaders
	Failed    []string
}

type HomeService struct {
	teamRepo   team.Repository
	seasonRepo season.Repository
	pool       *workpool.Pool
	logger     *logging.Logger
}

func NewHomeService(teamRepo team.Repository, seasonRepo season.Repository, pool *workpool.Pool, logger *logging.Logger) *HomeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &HomeService{
		teamRepo:   teamRepo,
		seasonRepo: seasonRepo,
		pool:       pool,
		logger:     logger,
	}
}

// Dashboard loads the team directory and the latest season's standings and
// leaders. The season sections are skipped when no season is known.
func (s *HomeService) Dashboard(ctx context.Context) (Dashboard, error) {
	ctx, span := startPage(ctx, "home", "usecase.HomeService.Dashboard")
	defer span.End()

	var (
		out     Dashboard
		seasons []season.Season
	)
	g := s.pool.Group(ctx)
	fetchInto(g, "teams", &out.Teams, s.teamRepo.List)
	fetchInto(g, "seasons", &seasons, s.seasonRepo.List)
	out.Failed = settle(ctx, s.logger, g)

	out.Featured = out.Teams[:min(featuredTeams, len(out.Teams))]
	if len(seasons) == 0 {
		return out, nil
	}

	sortSeasonsNewestFirst(seasons)
	latest := seasons[0]
	out.Latest = &latest

	g = s.pool.Group(ctx)
	fetchInto(g, "standings", &out.Standings, func(ctx context.Context) ([]season.Standing, error) {
		return s.seasonRepo.ListStandings(ctx, latest.ID)
	})
	fetchInto(g, "leaders", &out.Leaders, func(ctx context.Context) (season.Leaders, error) {
		return s.seasonRepo.GetLeaders(ctx, latest.ID)
	})
	out.Failed = append(out.Failed, settle(ctx, s.logger, g)...)

	return out, nil
}
