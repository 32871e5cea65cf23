package statview

import (
	"github.com/riskibarqy/hoops-reference/internal/domain/contract"
	"github.com/riskibarqy/hoops-reference/internal/domain/draft"
	"github.com/riskibarqy/hoops-reference/internal/domain/franchise"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
)

// draftUntracked are draft_stats columns the draft record has no source for.
var draftUntracked = []stattable.ColumnKey{
	stattable.ColYrs,
	stattable.ColMP,
	stattable.ColTRB,
	stattable.ColAST,
	stattable.ColFGPct,
	stattable.ColThreePPct,
	stattable.ColFTPct,
	stattable.ColMPPerG,
	stattable.ColTRBPerG,
	stattable.ColASTPerG,
	stattable.ColWS48,
	stattable.ColBPM,
}

// Draft maps a draft class in selection order. Points per game is the only
// derived column and stays blank for players without games.
func Draft(picks []draft.Pick, teams Teams) []stattable.Row {
	rows := make([]stattable.Row, 0, len(picks))
	for i, p := range picks {
		var playerID string
		if p.PlayerID != nil {
			playerID = *p.PlayerID
		}
		row := stattable.Row{
			stattable.ColRk:      stattable.Number(float64(i + 1)),
			stattable.ColPk:      num(p.OverallPick),
			stattable.ColTm:      teamRefCell(p.TeamID, teams),
			stattable.ColPlayer:  playerCell(playerID, p.PlayerName),
			stattable.ColCollege: text(p.College),
			stattable.ColG:       num(p.CareerGames),
			stattable.ColPTS:     num(p.CareerPoints),
			stattable.ColPTSPerG: stattable.Blank(),
			stattable.ColWS:      num(p.CareerWinShares),
			stattable.ColVORP:    num(p.CareerVORP),
		}
		for _, key := range draftUntracked {
			row[key] = stattable.Blank()
		}
		if p.OverallPick == nil {
			row[stattable.ColPk] = num(p.PickNumber)
		}
		if p.CareerGames != nil && *p.CareerGames > 0 {
			row[stattable.ColPTSPerG] = perGame(p.CareerPoints, *p.CareerGames)
		}
		rows = append(rows, row)
	}
	return rows
}

func Contracts(contracts []contract.Contract, teams Teams) []stattable.Row {
	rows := make([]stattable.Row, 0, len(contracts))
	for _, c := range contracts {
		name := c.PlayerID
		if c.PlayerName != nil {
			name = *c.PlayerName
		}
		rows = append(rows, stattable.Row{
			stattable.ColPlayer:     playerCell(c.PlayerID, name),
			stattable.ColTm:         teamRefCell(c.TeamID, teams),
			stattable.ColContract:   text(c.ContractType),
			stattable.ColSigned:     dateCell(c.SigningDate),
			stattable.ColYrs:        num(c.Years),
			stattable.ColTotalValue: num(c.TotalValue),
			stattable.ColGuaranteed: num(c.GuaranteedMoney),
		})
	}
	return rows
}

// Franchises maps each franchise with its all-time record. The name links to
// the current team when there is one.
func Franchises(list []franchise.Franchise) []stattable.Row {
	rows := make([]stattable.Row, 0, len(list))
	for _, f := range list {
		name := stattable.Text(f.Name())
		if f.CurrentTeamID != nil && *f.CurrentTeamID != "" {
			name = stattable.Link(TeamHref(*f.CurrentTeamID), f.Name())
		}
		row := stattable.Row{
			stattable.ColFranchise: name,
			stattable.ColFounded:   intText(f.FoundedYear),
			stattable.ColSeasons:   num(f.TotalSeasons),
			stattable.ColW:         num(f.TotalWins),
			stattable.ColL:         num(f.TotalLosses),
			stattable.ColTitles:    num(f.TotalChampionships),
		}
		w, okW := deref(f.TotalWins)
		l, okL := deref(f.TotalLosses)
		if okW && okL {
			row[stattable.ColWLPct] = ratioCell(ShootingPct(w, w+l))
		}
		rows = append(rows, row)
	}
	return rows
}
