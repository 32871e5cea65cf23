package statview

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/riskibarqy/hoops-reference/internal/domain/season"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
)

var divisionTables = map[string]stattable.TableID{
	"Atlantic":  stattable.TableDivAtlantic,
	"Central":   stattable.TableDivCentral,
	"Southeast": stattable.TableDivSoutheast,
	"Northwest": stattable.TableDivNorthwest,
	"Pacific":   stattable.TableDivPacific,
	"Southwest": stattable.TableDivSouthwest,
}

// Divisions lists the divisions in page order.
var Divisions = []string{"Atlantic", "Central", "Southeast", "Northwest", "Pacific", "Southwest"}

// DivisionTable returns the standings table registered for a division.
func DivisionTable(division string) (stattable.TableID, bool) {
	id, ok := divisionTables[division]
	return id, ok
}

func ConferenceTable(conf string) stattable.TableID {
	if conf == season.ConferenceWest {
		return stattable.TableConfWest
	}
	return stattable.TableConfEast
}

func standingPct(s season.Standing) float64 {
	if s.WinPct != nil {
		return *s.WinPct
	}
	w, _ := deref(s.Wins)
	l, _ := deref(s.Losses)
	pct, _ := ShootingPct(w, w+l)
	return pct
}

// SortStandings orders teams by winning percentage, then wins. Ties keep
// their upstream order.
func SortStandings(standings []season.Standing) []season.Standing {
	out := slices.Clone(standings)
	slices.SortStableFunc(out, func(a, b season.Standing) int {
		if c := cmp.Compare(standingPct(b), standingPct(a)); c != 0 {
			return c
		}
		wa, _ := deref(a.Wins)
		wb, _ := deref(b.Wins)
		return cmp.Compare(wb, wa)
	})
	return out
}

// ConferenceStandings filters to one conference and ranks it.
func ConferenceStandings(standings []season.Standing, conf string, teams Teams) []stattable.Row {
	var in []season.Standing
	for _, s := range standings {
		if s.InConference(conf) {
			in = append(in, s)
		}
	}
	return Standings(SortStandings(in), teams)
}

func DivisionStandings(standings []season.Standing, division string, teams Teams) []stattable.Row {
	var in []season.Standing
	for _, s := range standings {
		if s.Division != nil && *s.Division == division {
			in = append(in, s)
		}
	}
	return Standings(SortStandings(in), teams)
}

// Standings maps already ordered standings. Games behind is taken from the
// provider, or measured against the first row.
func Standings(standings []season.Standing, teams Teams) []stattable.Row {
	rows := make([]stattable.Row, 0, len(standings))
	var leadW, leadL float64
	for i, s := range standings {
		w, okW := deref(s.Wins)
		l, okL := deref(s.Losses)
		if i == 0 {
			leadW, leadL = w, l
		}
		row := stattable.Row{
			stattable.ColRk:     stattable.Number(float64(i + 1)),
			stattable.ColTm:     teamCell(s.TeamID, teams),
			stattable.ColW:      num(s.Wins),
			stattable.ColL:      num(s.Losses),
			stattable.ColWLPct:  winPct(s.SeasonStats),
			stattable.ColGB:     num(s.GamesBehind),
			stattable.ColPTS:    num(s.PointsPerGame),
			stattable.ColOppPts: num(s.OppPointsPerGame),
			stattable.ColSRS:    num(s.SRS),
		}
		if s.GamesBehind == nil && okW && okL {
			row[stattable.ColGB] = stattable.Number(((leadW - w) + (l - leadL)) / 2)
		}
		rows = append(rows, row)
	}
	return rows
}

// LeagueStandings maps every team with its ratings, four factors and
// attendance. It backs both the regular and the expanded standings tables.
func LeagueStandings(standings []season.Standing, teams Teams) []stattable.Row {
	rows := make([]stattable.Row, 0, len(standings))
	for _, s := range SortStandings(standings) {
		row := ratingsRow(s.SeasonStats)
		row[stattable.ColTm] = teamCell(s.TeamID, teams)
		rows = append(rows, row)
	}
	return rows
}

// LeaderBoard maps one category's leaders in rank order.
func LeaderBoard(leaders []season.Leader, teams Teams) []stattable.Row {
	rows := make([]stattable.Row, 0, len(leaders))
	for i, l := range leaders {
		rows = append(rows, stattable.Row{
			stattable.ColRk:     stattable.Number(float64(i + 1)),
			stattable.ColPlayer: playerCell(l.PlayerID, l.FullName),
			stattable.ColTm:     teamRefCell(l.TeamID, teams),
			stattable.ColValue:  num(l.Value),
		})
	}
	return rows
}

// PlayoffSeries maps series by round, keeping the order within a round.
func PlayoffSeries(series []season.PlayoffSeries, teams Teams) []stattable.Row {
	ordered := slices.Clone(series)
	slices.SortStableFunc(ordered, func(a, b season.PlayoffSeries) int {
		ra, _ := deref(a.RoundNumber)
		rb, _ := deref(b.RoundNumber)
		return cmp.Compare(ra, rb)
	})

	rows := make([]stattable.Row, 0, len(ordered))
	for _, s := range ordered {
		row := stattable.Row{
			stattable.ColRound:  roundLabel(s),
			stattable.ColWinner: teamRefCell(s.WinnerTeamID, teams),
			stattable.ColLoser:  teamRefCell(s.LoserTeamID, teams),
		}
		if s.WinnerWins != nil && s.LoserWins != nil {
			row[stattable.ColResult] = stattable.Text(fmt.Sprintf("%d-%d", *s.WinnerWins, *s.LoserWins))
		}
		rows = append(rows, row)
	}
	return rows
}

func roundLabel(s season.PlayoffSeries) stattable.Cell {
	if s.RoundName != nil && *s.RoundName != "" {
		return stattable.Text(*s.RoundName)
	}
	if s.RoundNumber != nil {
		return stattable.Text(fmt.Sprintf("Round %d", *s.RoundNumber))
	}
	return stattable.Blank()
}
