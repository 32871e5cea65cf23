package statsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-reference/internal/domain/contract"
	"github.com/riskibarqy/hoops-reference/internal/domain/draft"
	"github.com/riskibarqy/hoops-reference/internal/domain/franchise"
	"github.com/riskibarqy/hoops-reference/internal/domain/game"
	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/domain/season"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/resilience"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
)

var (
	_ player.Repository    = (*PlayerRepository)(nil)
	_ team.Repository      = (*TeamRepository)(nil)
	_ game.Repository      = (*GameRepository)(nil)
	_ season.Repository    = (*SeasonRepository)(nil)
	_ draft.Repository     = (*DraftRepository)(nil)
	_ contract.Repository  = (*ContractRepository)(nil)
	_ franchise.Repository = (*FranchiseRepository)(nil)
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*ClientConfig)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewClient(cfg)
}

func TestGetPlayerDecodesBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/jamesle01" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"player_id":"jamesle01","full_name":"LeBron James","height_inches":81,"position":"F"}`))
	}, nil)

	got, exists, err := NewPlayerRepository(client).GetByID(context.Background(), "jamesle01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatalf("expected player to exist")
	}
	if got.FullName != "LeBron James" || got.HeightInches == nil || *got.HeightInches != 81 {
		t.Fatalf("unexpected player: %+v", got)
	}
}

func TestGetByIDNotFoundReportsMissing(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":"Player not found"}`, http.StatusNotFound)
	}, nil)

	_, exists, err := NewPlayerRepository(client).GetByID(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false on 404")
	}
	if state := client.BreakerState(); state != resilience.CircuitStateClosed {
		t.Fatalf("404 should not trip the breaker, got %s", state)
	}
}

func TestServerErrorIsReturned(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}, nil)

	_, err := NewTeamRepository(client).List(context.Background())
	if err == nil {
		t.Fatalf("expected error on 500")
	}
}

func TestBadRequestDoesNotRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "bad", http.StatusBadRequest)
	}, func(cfg *ClientConfig) { cfg.MaxRetries = 3 })

	if _, err := NewFranchiseRepository(client).List(context.Background()); err == nil {
		t.Fatalf("expected error on 400")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("unexpected call count: %d", got)
	}
}

func TestRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"franchise_id":"BOS","current_name":"Boston Celtics"}]`))
	}, func(cfg *ClientConfig) { cfg.MaxRetries = 1 })

	got, err := NewFranchiseRepository(client).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name() != "Boston Celtics" {
		t.Fatalf("unexpected franchises: %+v", got)
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("unexpected call count: %d", n)
	}
}

func TestBreakerOpensAfterThreshold(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusBadGateway)
	}, nil)
	repo := NewSeasonRepository(client)

	for i := 0; i < 2; i++ {
		if _, err := repo.List(context.Background()); err == nil {
			t.Fatalf("expected error on attempt %d", i)
		}
	}

	_, err := repo.List(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("open breaker should not reach the server, calls=%d", n)
	}
}

func TestQueryParameters(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch r.URL.Path {
		case "/games":
			if q.Get("date") != "2024-01-05" || q.Get("team_id") != "" || q.Get("limit") != "20" {
				t.Errorf("unexpected games query: %s", r.URL.RawQuery)
			}
		case "/players":
			if q.Get("letter") != "j" || q.Get("search") != "" || q.Get("offset") != "50" {
				t.Errorf("unexpected players query: %s", r.URL.RawQuery)
			}
		case "/draft/picks":
			if q.Get("year") != "2023" || q.Get("limit") != "60" {
				t.Errorf("unexpected draft query: %s", r.URL.RawQuery)
			}
		case "/players/curryst01/gamelog":
			if q.Get("season_id") != "2015-16" {
				t.Errorf("unexpected gamelog query: %s", r.URL.RawQuery)
			}
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[]`))
	}, nil)

	ctx := context.Background()
	if _, err := NewGameRepository(client).List(ctx, game.Filter{Date: "2024-01-05", Limit: 20}); err != nil {
		t.Fatalf("unexpected games error: %v", err)
	}
	if _, err := NewPlayerRepository(client).Search(ctx, player.SearchQuery{Letter: "j", Limit: 50, Offset: 50}); err != nil {
		t.Fatalf("unexpected players error: %v", err)
	}
	if _, err := NewDraftRepository(client).ListPicks(ctx, 2023, 60); err != nil {
		t.Fatalf("unexpected draft error: %v", err)
	}
	logs, err := NewPlayerRepository(client).ListGameLogs(ctx, "curryst01", "2015-16")
	if err != nil {
		t.Fatalf("unexpected gamelog error: %v", err)
	}
	if logs == nil {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestStandingsDecodeEmbeddedStats(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"team_id":"BOS","season_id":"2023-24","wins":64,"losses":18,"conference":"East","abbreviation":"BOS"}]`))
	}, nil)

	got, err := NewSeasonRepository(client).ListStandings(context.Background(), "2023-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].TeamID != "BOS" || got[0].Wins == nil || *got[0].Wins != 64 {
		t.Fatalf("unexpected standings: %+v", got)
	}
	if !got[0].InConference(season.ConferenceEast) {
		t.Fatalf("expected eastern conference")
	}
}

func TestLeadersDecodeCategoryMap(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"pts":[{"player_id":"doncilu01","full_name":"Luka Doncic","value":33.9}],"ast":[]}`))
	}, nil)

	got, err := NewSeasonRepository(client).GetLeaders(context.Background(), "2023-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got["pts"]) != 1 || got["pts"][0].Value == nil || *got["pts"][0].Value != 33.9 {
		t.Fatalf("unexpected leaders: %+v", got)
	}
}

func TestRateLimiterHonoursContext(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, func(cfg *ClientConfig) {
		cfg.RateLimit = 0.001
		cfg.RateBurst = 1
	})
	repo := NewFranchiseRepository(client)

	if _, err := repo.List(context.Background()); err != nil {
		t.Fatalf("first request should use the burst: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := repo.List(ctx); err == nil {
		t.Fatalf("expected the limiter to give up when the context ends")
	}
}

func TestGetGameStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantExists bool
	}{
		{name: "decoded", status: http.StatusOK, body: `{"game_id":"g1","pts_paint_home":48,"pts_fb_away":12,"lead_changes":9}`, wantExists: true},
		{name: "null body", status: http.StatusOK, body: `null`},
		{name: "not found", status: http.StatusNotFound, body: `{"detail":"Game not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/games/g1/stats" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, nil)

			got, exists, err := NewGameRepository(client).GetStats(context.Background(), "g1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exists != tt.wantExists {
				t.Fatalf("unexpected exists: %v", exists)
			}
			if !tt.wantExists {
				return
			}
			if got.PaintPointsHome == nil || *got.PaintPointsHome != 48 || *got.FastBreakPointsAway != 12 || *got.LeadChanges != 9 {
				t.Fatalf("unexpected stats: %+v", got)
			}
		})
	}
}

func TestSharedRequestSurvivesCancelledCaller(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		_, _ = w.Write([]byte(`[{"franchise_id":"BOS"}]`))
	}, nil)
	repo := NewFranchiseRepository(client)

	cancelledCtx, cancel := context.WithCancel(context.Background())
	cancelledErr := make(chan error, 1)
	go func() {
		_, err := repo.List(cancelledCtx)
		cancelledErr <- err
	}()
	<-started

	type listResult struct {
		got []franchise.Franchise
		err error
	}
	live := make(chan listResult, 1)
	go func() {
		got, err := repo.List(context.Background())
		live <- listResult{got: got, err: err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	if err := <-cancelledErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled caller should see its own cancellation, got %v", err)
	}

	close(release)
	res := <-live
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if len(res.got) != 1 || res.got[0].ID != "BOS" {
		t.Fatalf("unexpected franchises: %+v", res.got)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected one shared upstream call, got %d", n)
	}
	if snap := client.Breaker(); snap.State != resilience.CircuitStateClosed || snap.ConsecutiveFailures != 0 {
		t.Fatalf("unexpected breaker snapshot: %+v", snap)
	}
}

func TestRejectedRequestLeavesBreakerUntouched(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/seasons" {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		http.Error(w, "bad", http.StatusBadRequest)
	}, nil)

	if _, err := NewSeasonRepository(client).List(context.Background()); err == nil {
		t.Fatalf("expected upstream failure")
	}
	if _, err := NewFranchiseRepository(client).List(context.Background()); err == nil {
		t.Fatalf("expected rejected request")
	}
	if snap := client.Breaker(); snap.ConsecutiveFailures != 1 {
		t.Fatalf("a 400 should neither count nor reset failures: %+v", snap)
	}
}

func TestFlightTimeoutCoversRetries(t *testing.T) {
	t.Parallel()

	if got := flightTimeout(2*time.Second, 0); got != 2*time.Second {
		t.Fatalf("unexpected timeout without retries: %s", got)
	}
	if got := flightTimeout(2*time.Second, 2); got != 6*time.Second+1500*time.Millisecond {
		t.Fatalf("unexpected timeout with retries: %s", got)
	}
}
