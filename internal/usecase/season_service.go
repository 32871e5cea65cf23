package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/domain/season"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
)

type SeasonIndex struct {
	Seasons []season.Season
	Failed  []string
}

type SeasonDetail struct {
	Season    season.Season
	Standings []season.Standing
	Leaders   season.Leaders
	Awards    []player.Award
	Playoffs  []season.PlayoffSeries
	Teams     []team.Team
	Failed    []string
}

type SeasonService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	pool       *workpool.Pool
	logger     *logging.Logger
}

func NewSeasonService(seasonRepo season.Repository, teamRepo team.Repository, pool *workpool.Pool, logger *logging.Logger) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeasonService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		pool:       pool,
		logger:     logger,
	}
}

// List returns every season, newest first.
func (s *SeasonService) List(ctx context.Context) (SeasonIndex, error) {
	ctx, span := startPage(ctx, "seasons", "usecase.SeasonService.List")
	defer span.End()

	var out SeasonIndex
	g := s.pool.Group(ctx)
	fetchInto(g, "seasons", &out.Seasons, s.seasonRepo.List)
	out.Failed = settle(ctx, s.logger, g)

	sortSeasonsNewestFirst(out.Seasons)
	return out, nil
}

func (s *SeasonService) Detail(ctx context.Context, seasonID string) (SeasonDetail, error) {
	ctx, span := startPage(ctx, "season_detail", "usecase.SeasonService.Detail", entityAttr("season", seasonID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return SeasonDetail{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return SeasonDetail{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return SeasonDetail{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	out := SeasonDetail{Season: item}
	s.loadSeasonSections(ctx, item.ID, &out)
	return out, nil
}

func (s *SeasonService) loadSeasonSections(ctx context.Context, seasonID string, out *SeasonDetail) {
	g := s.pool.Group(ctx)
	fetchInto(g, "standings", &out.Standings, func(ctx context.Context) ([]season.Standing, error) {
		return s.seasonRepo.ListStandings(ctx, seasonID)
	})
	fetchInto(g, "leaders", &out.Leaders, func(ctx context.Context) (season.Leaders, error) {
		return s.seasonRepo.GetLeaders(ctx, seasonID)
	})
	fetchInto(g, "awards", &out.Awards, func(ctx context.Context) ([]player.Award, error) {
		return s.seasonRepo.ListAwards(ctx, seasonID)
	})
	fetchInto(g, "playoffs", &out.Playoffs, func(ctx context.Context) ([]season.PlayoffSeries, error) {
		return s.seasonRepo.ListPlayoffSeries(ctx, seasonID)
	})
	fetchInto(g, "teams", &out.Teams, s.teamRepo.List)
	out.Failed = settle(ctx, s.logger, g)
}

func sortSeasonsNewestFirst(seasons []season.Season) {
	slices.SortStableFunc(seasons, func(a, b season.Season) int {
		return strings.Compare(seasonKey(b), seasonKey(a))
	})
}

// seasonKey orders by start year when known; ids like "2023-24" sort the same way.
func seasonKey(s season.Season) string {
	if s.StartYear != nil {
		return fmt.Sprintf("%04d", *s.StartYear)
	}
	return s.ID
}
