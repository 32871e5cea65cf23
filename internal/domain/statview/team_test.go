package statview

import (
	"testing"

	"github.com/riskibarqy/hoops-reference/internal/domain/game"
	"github.com/riskibarqy/hoops-reference/internal/domain/season"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
)

func TestTeamPerGameFallsBackToRecord(t *testing.T) {
	t.Parallel()

	rows := TeamPerGame([]team.SeasonStats{{
		TeamID:   "BOS",
		SeasonID: "2023-24",
		Wins:     ptr(64),
		Losses:   ptr(18),
		Points:   ptr(9887.0),
	}})

	if got := number(t, rows[0], stattable.ColG); got != 82 {
		t.Fatalf("unexpected games: %v", got)
	}
	if got := number(t, rows[0], stattable.ColPTS); !near(got, 9887.0/82) {
		t.Fatalf("unexpected points per game: %v", got)
	}
	if got := rows[0].Get(stattable.ColSeason).Href(); got != "/leagues/2023-24" {
		t.Fatalf("unexpected season link: %q", got)
	}
}

func TestTeamAdvancedDerivesMissingRatings(t *testing.T) {
	t.Parallel()

	rows := TeamAdvanced([]team.SeasonStats{{
		SeasonID:            "2023-24",
		Wins:                ptr(50),
		Losses:              ptr(32),
		PointsPerGame:       ptr(115.5),
		OppPointsPerGame:    ptr(110.0),
		FreeThrowsMade:      ptr(1400.0),
		FieldGoalsAttempted: ptr(7000.0),
		PythagoreanWins:     ptr(52.0),
	}})

	row := rows[0]
	if got := number(t, row, stattable.ColMOV); !near(got, 5.5) {
		t.Fatalf("unexpected margin: %v", got)
	}
	if got := number(t, row, stattable.ColFTPerFGA); !near(got, 0.2) {
		t.Fatalf("unexpected ft per fga: %v", got)
	}
	if got := number(t, row, stattable.ColPL); got != 30 {
		t.Fatalf("unexpected pythagorean losses: %v", got)
	}
	if got := number(t, row, stattable.ColWLPct); !near(got, 50.0/82) {
		t.Fatalf("unexpected win pct: %v", got)
	}
}

func TestScheduleTracksRecordAndStreak(t *testing.T) {
	t.Parallel()

	games := []game.Game{
		{ID: "g1", HomeTeamID: "NYK", AwayTeamID: "BOS", HomeScore: ptr(100), AwayScore: ptr(110)},
		{ID: "g2", HomeTeamID: "NYK", AwayTeamID: "MIA", HomeScore: ptr(105), AwayScore: ptr(99)},
		{ID: "g3", HomeTeamID: "PHI", AwayTeamID: "NYK", HomeScore: ptr(90), AwayScore: ptr(101)},
		{ID: "g4", HomeTeamID: "NYK", AwayTeamID: "CHI", GameDate: ptr("2024-04-14")},
	}
	rows := Schedule(games, "NYK", Teams{"BOS": "BOS", "PHI": "PHI"})

	if len(rows) != 4 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}
	if got := rows[0].Get(stattable.ColStreak).Label(); got != "L 1" {
		t.Fatalf("unexpected first streak: %q", got)
	}
	if got := rows[2].Get(stattable.ColStreak).Label(); got != "W 2" {
		t.Fatalf("unexpected streak: %q", got)
	}
	if got := number(t, rows[2], stattable.ColW); got != 2 {
		t.Fatalf("unexpected wins: %v", got)
	}
	if got := rows[2].Get(stattable.ColGameLoc).Label(); got != "@" {
		t.Fatalf("unexpected location: %q", got)
	}
	if got := number(t, rows[2], stattable.ColTm); got != 101 {
		t.Fatalf("unexpected team points: %v", got)
	}
	if !rows[3].Get(stattable.ColResult).IsBlank() || !rows[3].Get(stattable.ColW).IsBlank() {
		t.Fatalf("unplayed game should have no result or record")
	}
	if got := rows[3].Get(stattable.ColOpp).Label(); got != "CHI" {
		t.Fatalf("unexpected opponent: %q", got)
	}
}

func standing(teamID, conf, div string, w, l int) season.Standing {
	s := season.Standing{Conference: ptr(conf), Division: ptr(div)}
	s.TeamID = teamID
	s.Wins = ptr(w)
	s.Losses = ptr(l)
	return s
}

func TestConferenceStandingsRankAndGamesBehind(t *testing.T) {
	t.Parallel()

	standings := []season.Standing{
		standing("NYK", "Eastern", "Atlantic", 50, 32),
		standing("DEN", "Western", "Northwest", 57, 25),
		standing("BOS", "East", "Atlantic", 64, 18),
		standing("MIL", "East", "Central", 49, 33),
	}
	rows := ConferenceStandings(standings, season.ConferenceEast, nil)

	if len(rows) != 3 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}
	want := []string{"BOS", "NYK", "MIL"}
	for i, id := range want {
		if got := rows[i].Get(stattable.ColTm).Label(); got != id {
			t.Fatalf("row %d: expected %s, got %s", i, id, got)
		}
		if got := number(t, rows[i], stattable.ColRk); got != float64(i+1) {
			t.Fatalf("row %d: unexpected rank %v", i, got)
		}
	}
	if got := number(t, rows[1], stattable.ColGB); got != 14 {
		t.Fatalf("unexpected games behind: %v", got)
	}

	div := DivisionStandings(standings, "Atlantic", nil)
	if len(div) != 2 {
		t.Fatalf("unexpected division row count: %d", len(div))
	}
	if id, ok := DivisionTable("Atlantic"); !ok || id != stattable.TableDivAtlantic {
		t.Fatalf("unexpected division table: %s %v", id, ok)
	}
}

func TestPlayoffSeriesOrderedByRound(t *testing.T) {
	t.Parallel()

	rows := PlayoffSeries([]season.PlayoffSeries{
		{RoundNumber: ptr(4), RoundName: ptr("Finals"), WinnerTeamID: ptr("BOS"), LoserTeamID: ptr("DAL"), WinnerWins: ptr(4), LoserWins: ptr(1)},
		{RoundNumber: ptr(1), WinnerTeamID: ptr("BOS"), LoserTeamID: ptr("MIA"), WinnerWins: ptr(4), LoserWins: ptr(1)},
	}, nil)

	if got := rows[0].Get(stattable.ColRound).Label(); got != "Round 1" {
		t.Fatalf("unexpected first round: %q", got)
	}
	if got := rows[1].Get(stattable.ColResult).Label(); got != "4-1" {
		t.Fatalf("unexpected result: %q", got)
	}
	if got := rows[1].Get(stattable.ColLoser).Href(); got != "/teams/DAL" {
		t.Fatalf("unexpected loser link: %q", got)
	}
}
