package statview

import (
	"fmt"

	"github.com/riskibarqy/hoops-reference/internal/domain/game"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
)

type teamCounting struct {
	key stattable.ColumnKey
	get func(team.SeasonStats) *float64
}

var teamCountingStats = []teamCounting{
	{stattable.ColFG, func(s team.SeasonStats) *float64 { return s.FieldGoalsMade }},
	{stattable.ColFGA, func(s team.SeasonStats) *float64 { return s.FieldGoalsAttempted }},
	{stattable.ColThreeP, func(s team.SeasonStats) *float64 { return s.ThreesMade }},
	{stattable.ColThreePA, func(s team.SeasonStats) *float64 { return s.ThreesAttempted }},
	{stattable.ColTwoP, func(s team.SeasonStats) *float64 { return s.TwosMade }},
	{stattable.ColTwoPA, func(s team.SeasonStats) *float64 { return s.TwosAttempted }},
	{stattable.ColFT, func(s team.SeasonStats) *float64 { return s.FreeThrowsMade }},
	{stattable.ColFTA, func(s team.SeasonStats) *float64 { return s.FreeThrowsAttempted }},
	{stattable.ColORB, func(s team.SeasonStats) *float64 { return s.OffensiveRebounds }},
	{stattable.ColDRB, func(s team.SeasonStats) *float64 { return s.DefensiveRebounds }},
	{stattable.ColTRB, func(s team.SeasonStats) *float64 { return s.TotalRebounds }},
	{stattable.ColAST, func(s team.SeasonStats) *float64 { return s.Assists }},
	{stattable.ColSTL, func(s team.SeasonStats) *float64 { return s.Steals }},
	{stattable.ColBLK, func(s team.SeasonStats) *float64 { return s.Blocks }},
	{stattable.ColTOV, func(s team.SeasonStats) *float64 { return s.Turnovers }},
	{stattable.ColPF, func(s team.SeasonStats) *float64 { return s.PersonalFouls }},
	{stattable.ColPTS, func(s team.SeasonStats) *float64 { return s.Points }},
}

func teamSeasonBase(s team.SeasonStats) stattable.Row {
	return stattable.Row{
		stattable.ColSeason:    seasonCell(s.SeasonID),
		stattable.ColLg:        text(s.League),
		stattable.ColW:         num(s.Wins),
		stattable.ColL:         num(s.Losses),
		stattable.ColG:         stattable.Number(float64(s.Games())),
		stattable.ColFGPct:     pctOr(s.FieldGoalPct, s.FieldGoalsMade, s.FieldGoalsAttempted),
		stattable.ColThreePPct: pctOr(s.ThreePct, s.ThreesMade, s.ThreesAttempted),
		stattable.ColTwoPPct:   pctOr(s.TwoPct, s.TwosMade, s.TwosAttempted),
		stattable.ColFTPct:     pctOr(s.FreeThrowPct, s.FreeThrowsMade, s.FreeThrowsAttempted),
	}
}

// TeamPerGame divides team totals by games, which are games played when
// reported and wins plus losses otherwise.
func TeamPerGame(stats []team.SeasonStats) []stattable.Row {
	rows := make([]stattable.Row, 0, len(stats))
	for _, s := range stats {
		row := teamSeasonBase(s)
		g := s.Games()
		row[stattable.ColMP] = perGame(s.MinutesPlayed, g)
		for _, c := range teamCountingStats {
			row[c.key] = perGame(c.get(s), g)
		}
		rows = append(rows, row)
	}
	return rows
}

func TeamTotals(stats []team.SeasonStats) []stattable.Row {
	rows := make([]stattable.Row, 0, len(stats))
	for _, s := range stats {
		row := teamSeasonBase(s)
		row[stattable.ColMP] = num(s.MinutesPlayed)
		for _, c := range teamCountingStats {
			row[c.key] = num(c.get(s))
		}
		rows = append(rows, row)
	}
	return rows
}

// TeamAdvanced maps ratings and four factors for each season.
func TeamAdvanced(stats []team.SeasonStats) []stattable.Row {
	rows := make([]stattable.Row, 0, len(stats))
	for _, s := range stats {
		row := ratingsRow(s)
		row[stattable.ColSeason] = seasonCell(s.SeasonID)
		row[stattable.ColRk] = num(s.ConferenceRank)
		rows = append(rows, row)
	}
	return rows
}

// ratingsRow holds the record, ratings, four factors and attendance columns
// shared by the team advanced table and the expanded standings.
func ratingsRow(s team.SeasonStats) stattable.Row {
	row := stattable.Row{
		stattable.ColW:          num(s.Wins),
		stattable.ColL:          num(s.Losses),
		stattable.ColWLPct:      winPct(s),
		stattable.ColGB:         num(s.GamesBehind),
		stattable.ColPSG:        num(s.PointsPerGame),
		stattable.ColPAG:        num(s.OppPointsPerGame),
		stattable.ColMOV:        num(s.PointDiff),
		stattable.ColSOS:        num(s.SOS),
		stattable.ColSRS:        num(s.SRS),
		stattable.ColORtg:       num(s.OffensiveRating),
		stattable.ColDRtg:       num(s.DefensiveRating),
		stattable.ColNRtg:       num(s.NetRating),
		stattable.ColPace:       num(s.Pace),
		stattable.ColFTr:        num(s.FreeThrowRate),
		stattable.ColThreePAr:   num(s.ThreeAttemptRate),
		stattable.ColTSPct:      num(s.TrueShootingPct),
		stattable.ColEFGPct:     num(s.EffectiveFGPct),
		stattable.ColTOVPct:     num(s.TurnoverPct),
		stattable.ColORBPct:     num(s.OffReboundPct),
		stattable.ColOppEFGPct:  num(s.OppEffectiveFGPct),
		stattable.ColOppTOVPct:  num(s.OppTurnoverPct),
		stattable.ColOppDRBPct:  num(s.OppDefReboundPct),
		stattable.ColOppFTRate:  num(s.OppFreeThrowRate),
		stattable.ColAttend:     num(s.Attendance),
		stattable.ColAttendPerG: num(s.AttendancePerGame),
	}
	if s.PointDiff == nil && s.PointsPerGame != nil && s.OppPointsPerGame != nil {
		row[stattable.ColMOV] = stattable.Number(*s.PointsPerGame - *s.OppPointsPerGame)
	}
	if ft, okFT := deref(s.FreeThrowsMade); okFT {
		if fga, okFGA := deref(s.FieldGoalsAttempted); okFGA {
			row[stattable.ColFTPerFGA] = ratioCell(ShootingPct(ft, fga))
		}
	}
	if s.PythagoreanWins != nil {
		pw := *s.PythagoreanWins
		row[stattable.ColPW] = stattable.Number(pw)
		if g := s.Games(); g > 0 {
			row[stattable.ColPL] = stattable.Number(float64(g) - pw)
		}
	}
	return row
}

func winPct(s team.SeasonStats) stattable.Cell {
	if s.WinPct != nil {
		return stattable.Number(*s.WinPct)
	}
	w, okW := deref(s.Wins)
	l, okL := deref(s.Losses)
	if !okW || !okL {
		return stattable.Blank()
	}
	return ratioCell(ShootingPct(w, w+l))
}

// Schedule maps a team's games in the order given. The running record and
// streak count completed games only.
func Schedule(games []game.Game, teamID string, teams Teams) []stattable.Row {
	rows := make([]stattable.Row, 0, len(games))
	var wins, losses, streak int
	var streakWin bool
	for i, g := range games {
		home := g.HomeTeamID == teamID
		oppID := g.HomeTeamID
		if home {
			oppID = g.AwayTeamID
		}

		row := stattable.Row{
			stattable.ColG:       stattable.Number(float64(i + 1)),
			stattable.ColDate:    dateCell(g.GameDate),
			stattable.ColStartET: text(g.GameTime),
			stattable.ColOpp:     teamCell(oppID, teams),
			stattable.ColNotes:   text(g.PlayoffRound),
		}
		if !home {
			row[stattable.ColGameLoc] = stattable.Text("@")
		}

		if g.Final() {
			us, them := *g.HomeScore, *g.AwayScore
			if !home {
				us, them = them, us
			}
			won := us > them
			if won {
				wins++
			} else {
				losses++
			}
			if streak > 0 && won == streakWin {
				streak++
			} else {
				streak, streakWin = 1, won
			}

			result := "L"
			if won {
				result = "W"
			}
			row[stattable.ColResult] = stattable.Link(GameHref(g.ID), result)
			row[stattable.ColTm] = stattable.Number(float64(us))
			row[stattable.ColOppPts] = stattable.Number(float64(them))
			row[stattable.ColW] = stattable.Number(float64(wins))
			row[stattable.ColL] = stattable.Number(float64(losses))
			row[stattable.ColStreak] = stattable.Text(streakLabel(streakWin, streak))
		}
		rows = append(rows, row)
	}
	return rows
}

func streakLabel(win bool, n int) string {
	if win {
		return fmt.Sprintf("W %d", n)
	}
	return fmt.Sprintf("L %d", n)
}
