package statview

import (
	"github.com/riskibarqy/hoops-reference/internal/domain/game"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
)

// Scoreboard maps a day's games. Finished games link to their box score.
func Scoreboard(games []game.Game, teams Teams) []stattable.Row {
	rows := make([]stattable.Row, 0, len(games))
	for _, g := range games {
		row := stattable.Row{
			stattable.ColVisitor:    teamCell(g.AwayTeamID, teams),
			stattable.ColVisitorPts: num(g.AwayScore),
			stattable.ColHome:       teamCell(g.HomeTeamID, teams),
			stattable.ColHomePts:    num(g.HomeScore),
			stattable.ColStartET:    text(g.GameTime),
			stattable.ColArena:      text(g.Arena),
			stattable.ColAttend:     num(g.Attendance),
			stattable.ColNotes:      text(g.PlayoffRound),
		}
		if g.Final() {
			row[stattable.ColBoxScore] = stattable.Link(GameHref(g.ID), "Box Score")
		}
		rows = append(rows, row)
	}
	return rows
}

var overtimeColumns = []stattable.ColumnKey{
	stattable.ColOT1, stattable.ColOT2, stattable.ColOT3, stattable.ColOT4,
}

// LineScoreSchema is the line score table trimmed to the overtimes played.
func LineScoreSchema(g game.Game) stattable.TableSchema {
	return stattable.Schema(stattable.TableLineScore).WithoutColumns(overtimeColumns[g.Overtimes():]...)
}

// LineScore maps the away team then the home team.
func LineScore(g game.Game, teams Teams) []stattable.Row {
	side := func(teamID string, score *int, periods ...*int) stattable.Row {
		row := stattable.Row{
			stattable.ColTm:    teamCell(teamID, teams),
			stattable.ColTotal: num(score),
		}
		keys := []stattable.ColumnKey{
			stattable.ColQ1, stattable.ColQ2, stattable.ColQ3, stattable.ColQ4,
			stattable.ColOT1, stattable.ColOT2, stattable.ColOT3, stattable.ColOT4,
		}
		for i, p := range periods {
			row[keys[i]] = num(p)
		}
		return row
	}
	return []stattable.Row{
		side(g.AwayTeamID, g.AwayScore, g.AwayQ1, g.AwayQ2, g.AwayQ3, g.AwayQ4, g.AwayOT1, g.AwayOT2, g.AwayOT3, g.AwayOT4),
		side(g.HomeTeamID, g.HomeScore, g.HomeQ1, g.HomeQ2, g.HomeQ3, g.HomeQ4, g.HomeOT1, g.HomeOT2, g.HomeOT3, g.HomeOT4),
	}
}

// TeamGameStats maps the away side then the home side, like LineScore.
func TeamGameStats(g game.Game, stats game.TeamGameStats, teams Teams) []stattable.Row {
	side := func(teamID string, s game.TeamSide) stattable.Row {
		return stattable.Row{
			stattable.ColTm:           teamCell(teamID, teams),
			stattable.ColPaintPts:     num(s.PaintPoints),
			stattable.ColSecondChance: num(s.SecondChancePoints),
			stattable.ColFastBreakPts: num(s.FastBreakPoints),
			stattable.ColPtsOffTOV:    num(s.PointsOffTurnovers),
			stattable.ColLargestLead:  num(s.LargestLead),
			stattable.ColTeamTRB:      num(s.TeamRebounds),
			stattable.ColTeamTOV:      num(s.TeamTurnovers),
			stattable.ColTotalTOV:     num(s.TotalTurnovers),
		}
	}
	return []stattable.Row{
		side(g.AwayTeamID, stats.Away()),
		side(g.HomeTeamID, stats.Home()),
	}
}

// LinesForTeam filters a box score to one team, keeping order.
func LinesForTeam(lines []game.BoxScoreLine, teamID string) []game.BoxScoreLine {
	var out []game.BoxScoreLine
	for _, l := range lines {
		if l.TeamID == teamID {
			out = append(out, l)
		}
	}
	return out
}

func lineName(l game.BoxScoreLine) string {
	if l.FullName != nil && *l.FullName != "" {
		return *l.FullName
	}
	return l.PlayerID
}

func sat(l game.BoxScoreLine) (string, bool) {
	if l.DidNotPlay == nil || !*l.DidNotPlay {
		return "", false
	}
	if l.DNPReason != nil && *l.DNPReason != "" {
		return *l.DNPReason, true
	}
	return "Did Not Play", true
}

// BoxScoreBasic maps each player's traditional box score line.
func BoxScoreBasic(lines []game.BoxScoreLine) []stattable.Row {
	rows := make([]stattable.Row, 0, len(lines))
	for _, l := range lines {
		row := stattable.Row{stattable.ColPlayer: playerCell(l.PlayerID, lineName(l))}
		if reason, dnp := sat(l); dnp {
			row[stattable.ColMP] = stattable.Text(reason)
			rows = append(rows, row)
			continue
		}
		row[stattable.ColMP] = num(l.MinutesPlayed)
		row[stattable.ColFG] = num(l.FieldGoalsMade)
		row[stattable.ColFGA] = num(l.FieldGoalsAttempted)
		row[stattable.ColFGPct] = pctOr(nil, l.FieldGoalsMade, l.FieldGoalsAttempted)
		row[stattable.ColThreeP] = num(l.ThreesMade)
		row[stattable.ColThreePA] = num(l.ThreesAttempted)
		row[stattable.ColThreePPct] = pctOr(nil, l.ThreesMade, l.ThreesAttempted)
		row[stattable.ColFT] = num(l.FreeThrowsMade)
		row[stattable.ColFTA] = num(l.FreeThrowsAttempted)
		row[stattable.ColFTPct] = pctOr(nil, l.FreeThrowsMade, l.FreeThrowsAttempted)
		row[stattable.ColORB] = num(l.OffensiveRebounds)
		row[stattable.ColDRB] = num(l.DefensiveRebounds)
		row[stattable.ColTRB] = num(l.TotalRebounds)
		row[stattable.ColAST] = num(l.Assists)
		row[stattable.ColSTL] = num(l.Steals)
		row[stattable.ColBLK] = num(l.Blocks)
		row[stattable.ColTOV] = num(l.Turnovers)
		row[stattable.ColPF] = num(l.PersonalFouls)
		row[stattable.ColPTS] = num(l.Points)
		row[stattable.ColPlusMinus] = num(l.PlusMinus)
		rows = append(rows, row)
	}
	return rows
}

func val(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// BoxScoreAdvanced derives shooting efficiency from each line. Rate stats that
// need team and opponent context are not in a box score line and stay blank.
func BoxScoreAdvanced(lines []game.BoxScoreLine) []stattable.Row {
	rows := make([]stattable.Row, 0, len(lines))
	for _, l := range lines {
		row := stattable.Row{stattable.ColPlayer: playerCell(l.PlayerID, lineName(l))}
		if reason, dnp := sat(l); dnp {
			row[stattable.ColMP] = stattable.Text(reason)
			rows = append(rows, row)
			continue
		}
		fga, fta := val(l.FieldGoalsAttempted), val(l.FreeThrowsAttempted)
		row[stattable.ColMP] = num(l.MinutesPlayed)
		row[stattable.ColTSPct] = ratioCell(TrueShootingPct(val(l.Points), fga, fta))
		row[stattable.ColEFGPct] = ratioCell(EffectiveFGPct(val(l.FieldGoalsMade), fga, val(l.ThreesMade)))
		row[stattable.ColThreePAr] = ratioCell(ShootingPct(val(l.ThreesAttempted), fga))
		row[stattable.ColFTr] = ratioCell(ShootingPct(fta, fga))
		rows = append(rows, row)
	}
	return rows
}

// TeamBox sums a team's player lines.
type TeamBox struct {
	TeamID                       string
	Minutes                      float64
	FGM, FGA, TPM, TPA, FTM, FTA float64
	ORB, DRB, TRB, AST, STL, BLK float64
	TOV, PF, PTS                 float64
}

func SumLines(teamID string, lines []game.BoxScoreLine) TeamBox {
	t := TeamBox{TeamID: teamID}
	for _, l := range lines {
		if l.TeamID != teamID {
			continue
		}
		t.Minutes += val(l.MinutesPlayed)
		t.FGM += val(l.FieldGoalsMade)
		t.FGA += val(l.FieldGoalsAttempted)
		t.TPM += val(l.ThreesMade)
		t.TPA += val(l.ThreesAttempted)
		t.FTM += val(l.FreeThrowsMade)
		t.FTA += val(l.FreeThrowsAttempted)
		t.ORB += val(l.OffensiveRebounds)
		t.DRB += val(l.DefensiveRebounds)
		t.TRB += val(l.TotalRebounds)
		t.AST += val(l.Assists)
		t.STL += val(l.Steals)
		t.BLK += val(l.Blocks)
		t.TOV += val(l.Turnovers)
		t.PF += val(l.PersonalFouls)
		t.PTS += val(l.Points)
	}
	return t
}

// FourFactors maps the away team then the home team. Pace and offensive rating
// use the standard possession estimate from both box scores.
func FourFactors(g game.Game, lines []game.BoxScoreLine, teams Teams) []stattable.Row {
	away := SumLines(g.AwayTeamID, lines)
	home := SumLines(g.HomeTeamID, lines)

	poss := func(t, opp TeamBox) (float64, bool) {
		return Possessions(t.FGA, t.FTA, t.FGM, t.ORB, opp.DRB, t.TOV)
	}
	awayPoss, okA := poss(away, home)
	homePoss, okH := poss(home, away)
	avgPoss, okPoss := (awayPoss+homePoss)/2, okA && okH

	side := func(t, opp TeamBox) stattable.Row {
		row := stattable.Row{
			stattable.ColTm:       teamCell(t.TeamID, teams),
			stattable.ColEFGPct:   ratioCell(EffectiveFGPct(t.FGM, t.FGA, t.TPM)),
			stattable.ColTOVPct:   ratioCell(TurnoverPct(t.TOV, t.FGA, t.FTA)),
			stattable.ColORBPct:   ratioCell(ShootingPct(t.ORB, t.ORB+opp.DRB)),
			stattable.ColFTPerFGA: ratioCell(ShootingPct(t.FTM, t.FGA)),
		}
		if okPoss && avgPoss > 0 {
			row[stattable.ColORtg] = stattable.Number(100 * t.PTS / avgPoss)
			if t.Minutes > 0 {
				row[stattable.ColPace] = stattable.Number(48 * avgPoss / (t.Minutes / 5))
			}
		}
		return row
	}
	return []stattable.Row{side(away, home), side(home, away)}
}
