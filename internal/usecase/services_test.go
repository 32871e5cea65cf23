package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/riskibarqy/hoops-reference/internal/domain/contract"
	"github.com/riskibarqy/hoops-reference/internal/domain/draft"
	"github.com/riskibarqy/hoops-reference/internal/domain/game"
	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/domain/season"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
	contractmock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/contract"
	draftmock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/draft"
	gamemock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/game"
	playermock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/player"
	seasonmock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/team"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
	"github.com/stretchr/testify/mock"
)

var errUpstream = errors.New("provider status=500 body=boom")

func ptr[T any](v T) *T { return &v }

func newTestPool(t *testing.T) *workpool.Pool {
	t.Helper()
	pool, err := workpool.New(4)
	if err != nil {
		t.Fatalf("unexpected pool error: %v", err)
	}
	t.Cleanup(pool.Release)
	return pool
}

func TestPlayerService_Search_DefaultsToLetterA(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, contractmock.NewRepository(t), newTestPool(t), logging.NewNop(), 2)

	playerRepo.
		On("Search", mock.Anything, player.SearchQuery{Letter: "A", Limit: 3, Offset: 0}).
		Return([]player.Player{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}, nil).
		Once()

	got, err := service.Search(context.Background(), PlayerSearchInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Letter != "A" || got.Page != 1 {
		t.Fatalf("unexpected defaults: letter=%s page=%d", got.Letter, got.Page)
	}
	if len(got.Players) != 2 || !got.HasNext {
		t.Fatalf("unexpected page: players=%d hasNext=%v", len(got.Players), got.HasNext)
	}
}

func TestPlayerService_Search_NameOverridesLetter(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, contractmock.NewRepository(t), newTestPool(t), logging.NewNop(), 50)

	playerRepo.
		On("Search", mock.Anything, player.SearchQuery{Search: "curry", Limit: 51, Offset: 50}).
		Return([]player.Player{{ID: "curryst01"}}, nil).
		Once()

	got, err := service.Search(context.Background(), PlayerSearchInput{Search: " curry ", Letter: "z", Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HasNext || len(got.Players) != 1 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestPlayerService_Search_RejectsBadLetter(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(playermock.NewRepository(t), contractmock.NewRepository(t), newTestPool(t), logging.NewNop(), 50)

	_, err := service.Search(context.Background(), PlayerSearchInput{Letter: "ab"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_Search_UpstreamFailureRendersEmpty(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, contractmock.NewRepository(t), newTestPool(t), logging.NewNop(), 50)

	playerRepo.On("Search", mock.Anything, mock.Anything).Return(nil, errUpstream).Once()

	got, err := service.Search(context.Background(), PlayerSearchInput{Letter: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Players) != 0 || !slices.Equal(got.Failed, []string{"players"}) {
		t.Fatalf("unexpected degraded page: %+v", got)
	}
}

func TestPlayerService_Profile_NotFound(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, contractmock.NewRepository(t), newTestPool(t), logging.NewNop(), 50)

	playerRepo.On("GetByID", mock.Anything, "nobody").Return(player.Player{}, false, nil).Once()

	_, err := service.Profile(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Profile_PrimaryErrorPropagates(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, contractmock.NewRepository(t), newTestPool(t), logging.NewNop(), 50)

	playerRepo.On("GetByID", mock.Anything, "jamesle01").Return(player.Player{}, false, errUpstream).Once()

	_, err := service.Profile(context.Background(), "jamesle01")
	if !errors.Is(err, errUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestPlayerService_Profile_DegradesFailedSections(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	contractRepo := contractmock.NewRepository(t)
	service := NewPlayerService(playerRepo, contractRepo, newTestPool(t), logging.NewNop(), 50)

	id := "jamesle01"
	playerRepo.On("GetByID", mock.Anything, id).Return(player.Player{ID: id, FullName: "LeBron James"}, true, nil).Once()
	playerRepo.On("ListSeasonStats", mock.Anything, id).Return([]player.SeasonStats{{SeasonID: "2023-24"}}, nil).Once()
	playerRepo.On("ListAdvancedStats", mock.Anything, id).Return(nil, errUpstream).Once()
	playerRepo.On("ListShootingStats", mock.Anything, id).Return([]player.ShootingStats{}, nil).Once()
	playerRepo.On("ListAdjustedShooting", mock.Anything, id).Return([]player.AdjustedShooting{}, nil).Once()
	playerRepo.On("ListPlayByPlayStats", mock.Anything, id).Return([]player.PlayByPlayStats{}, nil).Once()
	playerRepo.On("ListAwards", mock.Anything, id).Return(nil, errUpstream).Once()
	contractRepo.On("ListByPlayer", mock.Anything, id).Return([]contract.Contract{{PlayerID: id}}, nil).Once()

	got, err := service.Profile(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Player.FullName != "LeBron James" || len(got.SeasonStats) != 1 || len(got.Contracts) != 1 {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.Advanced != nil || got.Awards != nil {
		t.Fatalf("failed sections should stay empty")
	}
	if !slices.Equal(got.Failed, []string{"advanced", "awards"}) {
		t.Fatalf("unexpected failed sections: %v", got.Failed)
	}
}

func TestPlayerService_GameLog_PassesSeasonThrough(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, contractmock.NewRepository(t), newTestPool(t), logging.NewNop(), 50)

	id := "curryst01"
	playerRepo.On("GetByID", mock.Anything, id).Return(player.Player{ID: id}, true, nil).Once()
	playerRepo.On("ListSeasonIDs", mock.Anything, id).Return([]string{"2015-16", "2016-17"}, nil).Once()
	playerRepo.On("ListGameLogs", mock.Anything, id, "").Return([]player.GameLog{{GameID: "g1"}}, nil).Once()

	got, err := service.GameLog(context.Background(), id, "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SeasonID != "" || len(got.Seasons) != 2 || len(got.Logs) != 1 {
		t.Fatalf("unexpected game log page: %+v", got)
	}
}

func TestTeamService_Detail_SortsScheduleAndDegrades(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	gameRepo := gamemock.NewRepository(t)
	service := NewTeamService(teamRepo, gameRepo, newTestPool(t), logging.NewNop())

	teamRepo.On("GetByID", mock.Anything, "BOS").Return(team.Team{ID: "BOS", FullName: "Boston Celtics"}, true, nil).Once()
	teamRepo.On("ListRoster", mock.Anything, "BOS").Return(nil, errUpstream).Once()
	teamRepo.On("ListSeasonStats", mock.Anything, "BOS").Return([]team.SeasonStats{{TeamID: "BOS"}}, nil).Once()
	teamRepo.On("List", mock.Anything).Return([]team.Team{{ID: "BOS"}}, nil).Once()
	gameRepo.
		On("List", mock.Anything, game.Filter{TeamID: "BOS", Limit: 100}).
		Return([]game.Game{
			{ID: "g3"},
			{ID: "g2", GameDate: ptr("2024-01-03")},
			{ID: "g1", GameDate: ptr("2024-01-01")},
		}, nil).
		Once()

	got, err := service.Detail(context.Background(), "BOS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var order []string
	for _, g := range got.Games {
		order = append(order, g.ID)
	}
	if !slices.Equal(order, []string{"g1", "g2", "g3"}) {
		t.Fatalf("unexpected schedule order: %v", order)
	}
	if !slices.Equal(got.Failed, []string{"roster"}) {
		t.Fatalf("unexpected failed sections: %v", got.Failed)
	}
}

func TestTeamService_Detail_NotFound(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, gamemock.NewRepository(t), newTestPool(t), logging.NewNop())

	teamRepo.On("GetByID", mock.Anything, "XXX").Return(team.Team{}, false, nil).Once()

	if _, err := service.Detail(context.Background(), "XXX"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGameService_Scoreboard_ValidatesDate(t *testing.T) {
	t.Parallel()

	service := NewGameService(gamemock.NewRepository(t), teammock.NewRepository(t), newTestPool(t), logging.NewNop())

	if _, err := service.Scoreboard(context.Background(), "01/05/2024"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGameService_Scoreboard_EmptyDateListsRecent(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewGameService(gameRepo, teamRepo, newTestPool(t), logging.NewNop())

	gameRepo.On("List", mock.Anything, game.Filter{Limit: 50}).Return([]game.Game{{ID: "g1"}}, nil).Once()
	teamRepo.On("List", mock.Anything).Return(nil, errUpstream).Once()

	got, err := service.Scoreboard(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Games) != 1 || !slices.Equal(got.Failed, []string{"teams"}) {
		t.Fatalf("unexpected scoreboard: %+v", got)
	}
}

func TestGameService_BoxScore_UnknownTeamUsesPlaceholder(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewGameService(gameRepo, teamRepo, newTestPool(t), logging.NewNop())

	g := game.Game{ID: "202401050BOS", HomeTeamID: "BOS", AwayTeamID: "NYK"}
	gameRepo.On("GetByID", mock.Anything, g.ID).Return(g, true, nil).Once()
	gameRepo.On("ListBoxScores", mock.Anything, g.ID).Return([]game.BoxScoreLine{{PlayerID: "p1"}}, nil).Once()
	gameRepo.On("GetStats", mock.Anything, g.ID).Return(game.TeamGameStats{}, false, nil).Once()
	teamRepo.On("GetByID", mock.Anything, "BOS").Return(team.Team{ID: "BOS", FullName: "Boston Celtics"}, true, nil).Once()
	teamRepo.On("GetByID", mock.Anything, "NYK").Return(team.Team{}, false, nil).Once()
	teamRepo.On("List", mock.Anything).Return([]team.Team{}, nil).Once()

	got, err := service.BoxScore(context.Background(), g.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Home.FullName != "Boston Celtics" || got.Away.Abbreviation != "NYK" || len(got.Lines) != 1 {
		t.Fatalf("unexpected box score page: %+v", got)
	}
	if len(got.Failed) != 0 {
		t.Fatalf("unexpected failed sections: %v", got.Failed)
	}
	if got.TeamStats != nil {
		t.Fatalf("game without team stats should leave them nil: %+v", got.TeamStats)
	}
}

func TestGameService_BoxScore_TeamStats(t *testing.T) {
	t.Parallel()

	g := game.Game{ID: "202401050BOS", HomeTeamID: "BOS", AwayTeamID: "NYK"}
	tests := []struct {
		name       string
		stats      game.TeamGameStats
		err        error
		wantPaint  int
		wantFailed []string
	}{
		{name: "loaded", stats: game.TeamGameStats{GameID: g.ID, PaintPointsHome: ptr(48)}, wantPaint: 48},
		{name: "failure degrades", err: errUpstream, wantFailed: []string{"team_stats"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gameRepo := gamemock.NewRepository(t)
			teamRepo := teammock.NewRepository(t)
			service := NewGameService(gameRepo, teamRepo, newTestPool(t), logging.NewNop())

			gameRepo.On("GetByID", mock.Anything, g.ID).Return(g, true, nil).Once()
			gameRepo.On("ListBoxScores", mock.Anything, g.ID).Return([]game.BoxScoreLine{}, nil).Once()
			gameRepo.On("GetStats", mock.Anything, g.ID).Return(tt.stats, tt.err == nil, tt.err).Once()
			teamRepo.On("GetByID", mock.Anything, mock.Anything).Return(team.Team{}, false, nil).Twice()
			teamRepo.On("List", mock.Anything).Return([]team.Team{}, nil).Once()

			got, err := service.BoxScore(context.Background(), g.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got.Failed, tt.wantFailed) {
				t.Fatalf("unexpected failed sections: %v", got.Failed)
			}
			if tt.wantPaint == 0 {
				if got.TeamStats != nil {
					t.Fatalf("unexpected team stats: %+v", got.TeamStats)
				}
				return
			}
			if got.TeamStats == nil || *got.TeamStats.PaintPointsHome != tt.wantPaint {
				t.Fatalf("unexpected team stats: %+v", got.TeamStats)
			}
		})
	}
}

func TestSeasonService_Detail_AwardsFailureDegrades(t *testing.T) {
	t.Parallel()

	seasonRepo := seasonmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewSeasonService(seasonRepo, teamRepo, newTestPool(t), logging.NewNop())

	id := "2023-24"
	seasonRepo.On("GetByID", mock.Anything, id).Return(season.Season{ID: id}, true, nil).Once()
	seasonRepo.On("ListStandings", mock.Anything, id).Return([]season.Standing{{}}, nil).Once()
	seasonRepo.On("GetLeaders", mock.Anything, id).Return(season.Leaders{"pts": {{PlayerID: "doncilu01"}}}, nil).Once()
	seasonRepo.On("ListAwards", mock.Anything, id).Return(nil, errUpstream).Once()
	seasonRepo.On("ListPlayoffSeries", mock.Anything, id).Return([]season.PlayoffSeries{}, nil).Once()
	teamRepo.On("List", mock.Anything).Return([]team.Team{}, nil).Once()

	got, err := service.Detail(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Standings) != 1 || len(got.Leaders["pts"]) != 1 {
		t.Fatalf("unexpected season detail: %+v", got)
	}
	if !slices.Equal(got.Failed, []string{"awards"}) {
		t.Fatalf("unexpected failed sections: %v", got.Failed)
	}
}

func TestSeasonService_List_NewestFirst(t *testing.T) {
	t.Parallel()

	seasonRepo := seasonmock.NewRepository(t)
	service := NewSeasonService(seasonRepo, teammock.NewRepository(t), newTestPool(t), logging.NewNop())

	seasonRepo.On("List", mock.Anything).Return([]season.Season{{ID: "2021-22"}, {ID: "2023-24"}, {ID: "2022-23"}}, nil).Once()

	got, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Seasons[0].ID != "2023-24" || got.Seasons[2].ID != "2021-22" {
		t.Fatalf("unexpected season order: %+v", got.Seasons)
	}
}

func TestDraftService_Class_FallsBackToDefaultYear(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		year string
		want int
	}{
		{name: "empty", year: "", want: 2023},
		{name: "garbage", year: "abc", want: 2023},
		{name: "before first draft", year: "1900", want: 2023},
		{name: "explicit", year: "2003", want: 2003},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			draftRepo := draftmock.NewRepository(t)
			teamRepo := teammock.NewRepository(t)
			service := NewDraftService(draftRepo, teamRepo, newTestPool(t), logging.NewNop(), 0)

			draftRepo.On("ListPicks", mock.Anything, tc.want, 60).Return([]draft.Pick{{DraftYear: tc.want}}, nil).Once()
			teamRepo.On("List", mock.Anything).Return([]team.Team{}, nil).Once()

			got, err := service.Class(context.Background(), tc.year)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Year != tc.want {
				t.Fatalf("unexpected year: got=%d want=%d", got.Year, tc.want)
			}
		})
	}
}

func TestHomeService_Dashboard_FeaturesFirstSixTeams(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	service := NewHomeService(teamRepo, seasonRepo, newTestPool(t), logging.NewNop())

	teams := make([]team.Team, 8)
	for i := range teams {
		teams[i] = team.Team{ID: string(rune('A' + i))}
	}
	teamRepo.On("List", mock.Anything).Return(teams, nil).Once()
	seasonRepo.On("List", mock.Anything).Return([]season.Season{{ID: "2022-23"}, {ID: "2023-24"}}, nil).Once()
	seasonRepo.On("ListStandings", mock.Anything, "2023-24").Return([]season.Standing{}, nil).Once()
	seasonRepo.On("GetLeaders", mock.Anything, "2023-24").Return(nil, errUpstream).Once()

	got, err := service.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Featured) != 6 || got.Featured[0].ID != "A" {
		t.Fatalf("unexpected featured teams: %+v", got.Featured)
	}
	if got.Latest == nil || got.Latest.ID != "2023-24" {
		t.Fatalf("unexpected latest season: %+v", got.Latest)
	}
	if !slices.Equal(got.Failed, []string{"leaders"}) {
		t.Fatalf("unexpected failed sections: %v", got.Failed)
	}
}

func TestHomeService_Dashboard_WithoutSeasons(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	service := NewHomeService(teamRepo, seasonRepo, newTestPool(t), logging.NewNop())

	teamRepo.On("List", mock.Anything).Return(nil, errUpstream).Once()
	seasonRepo.On("List", mock.Anything).Return(nil, errUpstream).Once()

	got, err := service.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Latest != nil || len(got.Featured) != 0 {
		t.Fatalf("unexpected dashboard: %+v", got)
	}
	if !slices.Equal(got.Failed, []string{"seasons", "teams"}) {
		t.Fatalf("unexpected failed sections: %v", got.Failed)
	}
}
