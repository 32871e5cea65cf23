package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hoops-reference/internal/domain/contract"
	"github.com/riskibarqy/hoops-reference/internal/domain/draft"
	"github.com/riskibarqy/hoops-reference/internal/domain/game"
	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
	contractmock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/contract"
	draftmock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/draft"
	franchisemock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/franchise"
	gamemock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/game"
	playermock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/player"
	seasonmock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/hoops-reference/internal/mocks/domain/team"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/resilience"
	"github.com/riskibarqy/hoops-reference/internal/platform/workpool"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("provider status=500 body=boom")

func ptr[T any](v T) *T { return &v }

type fakeUpstream struct {
	snapshot resilience.Snapshot
}

func (f fakeUpstream) Breaker() resilience.Snapshot { return f.snapshot }

type testEnv struct {
	players    *playermock.Repository
	teams      *teammock.Repository
	games      *gamemock.Repository
	seasons    *seasonmock.Repository
	drafts     *draftmock.Repository
	contracts  *contractmock.Repository
	franchises *franchisemock.Repository
	upstream   fakeUpstream
	router     http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pool, err := workpool.New(4)
	if err != nil {
		t.Fatalf("unexpected pool error: %v", err)
	}
	t.Cleanup(pool.Release)

	env := &testEnv{
		players:    playermock.NewRepository(t),
		teams:      teammock.NewRepository(t),
		games:      gamemock.NewRepository(t),
		seasons:    seasonmock.NewRepository(t),
		drafts:     draftmock.NewRepository(t),
		contracts:  contractmock.NewRepository(t),
		franchises: franchisemock.NewRepository(t),
		upstream:   fakeUpstream{snapshot: resilience.Snapshot{State: resilience.CircuitStateClosed}},
	}
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewHomeService(env.teams, env.seasons, pool, logger),
		usecase.NewPlayerService(env.players, env.contracts, pool, logger, 50),
		usecase.NewTeamService(env.teams, env.games, pool, logger),
		usecase.NewGameService(env.games, env.teams, pool, logger),
		usecase.NewSeasonService(env.seasons, env.teams, pool, logger),
		usecase.NewDraftService(env.drafts, env.teams, pool, logger, 2023),
		usecase.NewContractService(env.contracts, env.teams, pool, logger),
		usecase.NewFranchiseService(env.franchises, pool, logger),
		&env.upstream,
		logger,
	)
	env.router = NewRouter(handler, logger, RouterConfig{ServiceName: "hoops-reference-test"})
	return env
}

func (e *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func (e *testEnv) expectProfile(playerID string, awardsErr error) {
	e.players.On("GetByID", mock.Anything, playerID).
		Return(player.Player{ID: playerID, FullName: "LeBron James", Position: ptr("F")}, true, nil).Once()
	e.players.On("ListSeasonStats", mock.Anything, playerID).
		Return([]player.SeasonStats{{SeasonID: "2023-24", TeamID: "LAL"}}, nil).Once()
	e.players.On("ListAdvancedStats", mock.Anything, playerID).Return([]player.AdvancedStats{}, nil).Once()
	e.players.On("ListShootingStats", mock.Anything, playerID).Return([]player.ShootingStats{}, nil).Once()
	e.players.On("ListAdjustedShooting", mock.Anything, playerID).Return([]player.AdjustedShooting{}, nil).Once()
	e.players.On("ListPlayByPlayStats", mock.Anything, playerID).Return([]player.PlayByPlayStats{}, nil).Once()
	e.contracts.On("ListByPlayer", mock.Anything, playerID).Return([]contract.Contract{}, nil).Once()
	if awardsErr != nil {
		e.players.On("ListAwards", mock.Anything, playerID).Return(nil, awardsErr).Once()
		return
	}
	e.players.On("ListAwards", mock.Anything, playerID).Return([]player.Award{}, nil).Once()
}

func TestPlayerProfile_RendersPage(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.expectProfile("jamesle01", nil)

	rec := env.get(t, "/players/jamesle01")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type: %s", ct)
	}

	doc := parseBody(t, rec)
	require.Equal(t, "LeBron James | Hoops Reference", doc.Find("title").Text())
	require.Equal(t, 0, doc.Find(".failed-notice").Length())
	require.Contains(t, doc.Find(".player-header").Text(), "Position: F")
}

func TestPlayerProfile_PartialDataShowsNotice(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.expectProfile("jamesle01", errUpstream)

	rec := env.get(t, "/players/jamesle01")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	doc := parseBody(t, rec)
	notice := doc.Find(".failed-notice").Text()
	require.Contains(t, notice, "awards")
	require.Equal(t, 0, doc.Find(".error-panel").Length())
}

func TestPlayerProfile_ErrorStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		setup  func(*playermock.Repository)
		status int
	}{
		{
			name: "missing player",
			setup: func(repo *playermock.Repository) {
				repo.On("GetByID", mock.Anything, "nobody01").Return(player.Player{}, false, nil).Once()
			},
			status: http.StatusNotFound,
		},
		{
			name: "upstream error",
			setup: func(repo *playermock.Repository) {
				repo.On("GetByID", mock.Anything, "nobody01").Return(player.Player{}, false, errUpstream).Once()
			},
			status: http.StatusBadGateway,
		},
		{
			name: "circuit open",
			setup: func(repo *playermock.Repository) {
				repo.On("GetByID", mock.Anything, "nobody01").
					Return(player.Player{}, false, fmt.Errorf("get player: %w", usecase.ErrDependencyUnavailable)).Once()
			},
			status: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			tt.setup(env.players)

			rec := env.get(t, "/players/nobody01")
			if rec.Code != tt.status {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tt.status)
			}
			doc := parseBody(t, rec)
			require.Equal(t, 1, doc.Find(".error-panel").Length())
		})
	}
}

func TestInvalidQueriesReturnBadRequest(t *testing.T) {
	t.Parallel()

	targets := []string{
		"/players?letter=12",
		"/players?page=abc",
		"/games?date=2024-13-01",
	}
	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			rec := env.get(t, target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("unexpected status for %s: %d", target, rec.Code)
			}
		})
	}
}

func TestPlayers_PassesQueryToSearch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.players.
		On("Search", mock.Anything, player.SearchQuery{Letter: "J", Limit: 51, Offset: 50}).
		Return([]player.Player{{ID: "jamesle01", FullName: "LeBron James"}}, nil).
		Once()

	rec := env.get(t, "/players?letter=j&page=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	doc := parseBody(t, rec)
	href, ok := doc.Find(`a[href="/players/jamesle01"]`).Attr("href")
	require.True(t, ok)
	require.Equal(t, "/players/jamesle01", href)
}

func TestDraft_DefaultsYear(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.drafts.On("ListPicks", mock.Anything, 2023, 60).
		Return([]draft.Pick{{DraftYear: 2023, Round: ptr(1), OverallPick: ptr(1), PlayerID: ptr("wembavi01"), PlayerName: "Victor Wembanyama", TeamID: ptr("SAS")}}, nil).
		Once()
	env.teams.On("List", mock.Anything).Return([]team.Team{{ID: "SAS", FullName: "San Antonio Spurs", Abbreviation: "SAS"}}, nil).Once()

	rec := env.get(t, "/draft?year=soon")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	doc := parseBody(t, rec)
	require.Contains(t, doc.Find("title").Text(), "2023")
	require.Contains(t, doc.Find("main").Text(), "Victor Wembanyama")
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec := env.get(t, "/nope/at/all")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	doc := parseBody(t, rec)
	require.Equal(t, 1, doc.Find(".error-panel").Length())
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec := env.get(t, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var body healthResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body.Status)
	require.NotNil(t, body.StatsAPI)
	require.Equal(t, resilience.CircuitStateClosed, body.StatsAPI.State)

	opened := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	env.upstream.snapshot = resilience.Snapshot{State: resilience.CircuitStateOpen, ConsecutiveFailures: 5, OpenedAt: &opened}
	rec = env.get(t, "/healthz")

	body = healthResponse{}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "degraded", body.Status)
	require.Equal(t, 5, body.StatsAPI.ConsecutiveFailures)
}

func TestRequestIDHeaderIsAccepted(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.franchises.On("List", mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	req := httptest.NewRequest(http.MethodGet, "/franchises", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	doc := parseBody(t, rec)
	require.Contains(t, doc.Find(".failed-notice").Text(), "franchises")
}

func TestGameDetail_RendersTeamStats(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	g := game.Game{ID: "202401050BOS", HomeTeamID: "BOS", AwayTeamID: "NYK", HomeScore: ptr(120), AwayScore: ptr(110)}
	env.games.On("GetByID", mock.Anything, g.ID).Return(g, true, nil).Once()
	env.games.On("ListBoxScores", mock.Anything, g.ID).Return([]game.BoxScoreLine{}, nil).Once()
	env.games.On("GetStats", mock.Anything, g.ID).Return(game.TeamGameStats{
		GameID:          g.ID,
		PaintPointsHome: ptr(52),
		PaintPointsAway: ptr(40),
		LeadChanges:     ptr(7),
		TimesTied:       ptr(3),
	}, true, nil).Once()
	env.teams.On("GetByID", mock.Anything, mock.Anything).Return(team.Team{}, false, nil).Twice()
	env.teams.On("List", mock.Anything).Return([]team.Team{}, nil).Once()

	rec := env.get(t, "/games/"+g.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	doc := parseBody(t, rec)
	rows := doc.Find("#team_game_stats tbody tr")
	require.Equal(t, 2, rows.Length())
	require.Contains(t, rows.Eq(0).Text(), "40")
	require.Contains(t, rows.Eq(1).Text(), "52")
	require.Equal(t, "Lead changes: 7, Times tied: 3", strings.TrimSpace(doc.Find(".game-flow").Text()))
}
