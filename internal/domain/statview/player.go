package statview

import (
	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
)

// seasonContext fills the season, age, tm, lg and pos columns shared by every
// season-level player table.
func seasonContext(row stattable.Row, seasonID, teamID string, basic *player.SeasonStats, p player.Player) {
	row[stattable.ColSeason] = seasonCell(seasonID)
	row[stattable.ColTm] = teamCell(teamID, nil)
	row[stattable.ColPos] = text(p.Position)
	if basic != nil {
		row[stattable.ColAge] = num(basic.Age)
		row[stattable.ColLg] = text(basic.League)
	}
}

// findBasic returns the season line with the same season and team.
func findBasic(basics []player.SeasonStats, seasonID, teamID string) *player.SeasonStats {
	for i := range basics {
		if basics[i].SeasonID == seasonID && basics[i].TeamID == teamID {
			return &basics[i]
		}
	}
	return nil
}

func games(s player.SeasonStats) int {
	if s.GamesPlayed == nil {
		return 0
	}
	return *s.GamesPlayed
}

func minutes(s player.SeasonStats) float64 {
	if s.MinutesPlayed == nil {
		return 0
	}
	return *s.MinutesPlayed
}

func seasonPercentages(row stattable.Row, s player.SeasonStats) {
	row[stattable.ColFGPct] = num(s.FieldGoalPct)
	row[stattable.ColThreePPct] = num(s.ThreePct)
	row[stattable.ColTwoPPct] = num(s.TwoPct)
	row[stattable.ColEFGPct] = num(s.EffectiveFGPct)
	row[stattable.ColFTPct] = num(s.FreeThrowPct)
}

type seasonCounting struct {
	key stattable.ColumnKey
	get func(player.SeasonStats) *float64
}

var seasonCountingStats = []seasonCounting{
	{stattable.ColFG, func(s player.SeasonStats) *float64 { return s.FieldGoalsMade }},
	{stattable.ColFGA, func(s player.SeasonStats) *float64 { return s.FieldGoalsAttempted }},
	{stattable.ColThreeP, func(s player.SeasonStats) *float64 { return s.ThreesMade }},
	{stattable.ColThreePA, func(s player.SeasonStats) *float64 { return s.ThreesAttempted }},
	{stattable.ColTwoP, func(s player.SeasonStats) *float64 { return s.TwosMade }},
	{stattable.ColTwoPA, func(s player.SeasonStats) *float64 { return s.TwosAttempted }},
	{stattable.ColFT, func(s player.SeasonStats) *float64 { return s.FreeThrowsMade }},
	{stattable.ColFTA, func(s player.SeasonStats) *float64 { return s.FreeThrowsAttempted }},
	{stattable.ColORB, func(s player.SeasonStats) *float64 { return s.OffensiveRebounds }},
	{stattable.ColDRB, func(s player.SeasonStats) *float64 { return s.DefensiveRebounds }},
	{stattable.ColTRB, func(s player.SeasonStats) *float64 { return s.TotalRebounds }},
	{stattable.ColAST, func(s player.SeasonStats) *float64 { return s.Assists }},
	{stattable.ColSTL, func(s player.SeasonStats) *float64 { return s.Steals }},
	{stattable.ColBLK, func(s player.SeasonStats) *float64 { return s.Blocks }},
	{stattable.ColTOV, func(s player.SeasonStats) *float64 { return s.Turnovers }},
	{stattable.ColPF, func(s player.SeasonStats) *float64 { return s.PersonalFouls }},
	{stattable.ColPTS, func(s player.SeasonStats) *float64 { return s.Points }},
}

func seasonBase(s player.SeasonStats, p player.Player) stattable.Row {
	row := make(stattable.Row, 32)
	seasonContext(row, s.SeasonID, s.TeamID, &s, p)
	row[stattable.ColG] = num(s.GamesPlayed)
	row[stattable.ColGS] = num(s.GamesStarted)
	seasonPercentages(row, s)
	return row
}

// PerGame divides counting stats by games played.
func PerGame(stats []player.SeasonStats, p player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(stats))
	for _, s := range stats {
		row := seasonBase(s, p)
		g := games(s)
		row[stattable.ColMP] = perGame(s.MinutesPlayed, g)
		for _, c := range seasonCountingStats {
			row[c.key] = perGame(c.get(s), g)
		}
		rows = append(rows, row)
	}
	return rows
}

// Totals passes season totals through unchanged.
func Totals(stats []player.SeasonStats, p player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(stats))
	for _, s := range stats {
		row := seasonBase(s, p)
		row[stattable.ColMP] = num(s.MinutesPlayed)
		for _, c := range seasonCountingStats {
			row[c.key] = num(c.get(s))
		}
		rows = append(rows, row)
	}
	return rows
}

// Per36 scales counting stats to 36 minutes; minutes stay as season totals.
func Per36(stats []player.SeasonStats, p player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(stats))
	for _, s := range stats {
		row := seasonBase(s, p)
		mp := minutes(s)
		row[stattable.ColMP] = num(s.MinutesPlayed)
		for _, c := range seasonCountingStats {
			row[c.key] = per36(c.get(s), mp)
		}
		rows = append(rows, row)
	}
	return rows
}

// Per100 shows the provider's per-100-possession figures. Stats the provider
// does not publish per 100 possessions are left blank.
func Per100(stats []player.SeasonStats, p player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(stats))
	for _, s := range stats {
		row := seasonBase(s, p)
		row[stattable.ColMP] = num(s.MinutesPlayed)
		for _, c := range seasonCountingStats {
			row[c.key] = stattable.Blank()
		}
		row[stattable.ColPTS] = num(s.PointsPer100)
		row[stattable.ColTRB] = num(s.ReboundsPer100)
		row[stattable.ColAST] = num(s.AssistsPer100)
		row[stattable.ColORtg] = stattable.Blank()
		row[stattable.ColDRtg] = stattable.Blank()
		rows = append(rows, row)
	}
	return rows
}

// Advanced maps advanced metrics; games and minutes come from the matching
// season line.
func Advanced(adv []player.AdvancedStats, basics []player.SeasonStats, p player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(adv))
	for _, a := range adv {
		basic := findBasic(basics, a.SeasonID, a.TeamID)
		row := stattable.Row{
			stattable.ColPER:      num(a.PER),
			stattable.ColTSPct:    num(a.TrueShootingPct),
			stattable.ColThreePAr: num(a.ThreeAttemptRate),
			stattable.ColFTr:      num(a.FreeThrowRate),
			stattable.ColORBPct:   num(a.OffensiveReboundPct),
			stattable.ColDRBPct:   num(a.DefensiveReboundPct),
			stattable.ColTRBPct:   num(a.TotalReboundPct),
			stattable.ColASTPct:   num(a.AssistPct),
			stattable.ColSTLPct:   num(a.StealPct),
			stattable.ColBLKPct:   num(a.BlockPct),
			stattable.ColTOVPct:   num(a.TurnoverPct),
			stattable.ColUSGPct:   num(a.UsagePct),
			stattable.ColOWS:      num(a.OffensiveWinShares),
			stattable.ColDWS:      num(a.DefensiveWinShares),
			stattable.ColWS:       num(a.WinShares),
			stattable.ColWS48:     num(a.WinSharesPer48),
			stattable.ColOBPM:     num(a.OffensiveBPM),
			stattable.ColDBPM:     num(a.DefensiveBPM),
			stattable.ColBPM:      num(a.BoxPlusMinus),
			stattable.ColVORP:     num(a.VORP),
		}
		seasonContext(row, a.SeasonID, a.TeamID, basic, p)
		if basic != nil {
			row[stattable.ColG] = num(basic.GamesPlayed)
			row[stattable.ColMP] = num(basic.MinutesPlayed)
		}
		rows = append(rows, row)
	}
	return rows
}

func Shooting(shoot []player.ShootingStats, basics []player.SeasonStats, p player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(shoot))
	for _, s := range shoot {
		basic := findBasic(basics, s.SeasonID, s.TeamID)
		row := stattable.Row{
			stattable.ColDist:         num(s.AvgDistance),
			stattable.ColPctFGA2P:     num(s.PctFGA2P),
			stattable.ColPctFGA0To3:   num(s.PctFGA0To3),
			stattable.ColPctFGA3To10:  num(s.PctFGA3To10),
			stattable.ColPctFGA10To16: num(s.PctFGA10To16),
			stattable.ColPctFGA16To3P: num(s.PctFGA16To3P),
			stattable.ColPctFGA3P:     num(s.PctFGA3P),
			stattable.ColFGPct2P:      num(s.FGPct2P),
			stattable.ColFGPct0To3:    num(s.FGPct0To3),
			stattable.ColFGPct3To10:   num(s.FGPct3To10),
			stattable.ColFGPct10To16:  num(s.FGPct10To16),
			stattable.ColFGPct16To3P:  num(s.FGPct16To3P),
			stattable.ColFGPct3P:      num(s.FGPct3P),
			stattable.ColPctAst2P:     num(s.PctAssisted2P),
			stattable.ColPctAst3P:     num(s.PctAssisted3P),
			stattable.ColDunks:        num(s.Dunks),
			stattable.ColPctFGADunks:  num(s.PctFGADunks),
			stattable.ColCorner3PA:    num(s.Corner3Att),
			stattable.ColCorner3PPct:  num(s.Corner3Pct),
			stattable.ColHeavesAtt:    num(s.HeavesAttempts),
			stattable.ColHeavesMade:   num(s.HeavesMade),
		}
		seasonContext(row, s.SeasonID, s.TeamID, basic, p)
		if basic != nil {
			row[stattable.ColG] = num(basic.GamesPlayed)
			row[stattable.ColMP] = num(basic.MinutesPlayed)
			row[stattable.ColFGPct] = num(basic.FieldGoalPct)
		}
		rows = append(rows, row)
	}
	return rows
}

// AdjustedShooting maps league-relative shooting. The provider does not join
// age, games or minutes onto these records, so those columns stay blank.
func AdjustedShooting(adj []player.AdjustedShooting, p player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(adj))
	for _, a := range adj {
		row := stattable.Row{
			stattable.ColFG:           num(a.FGMade),
			stattable.ColFGA:          num(a.FGAttempted),
			stattable.ColFGPct:        num(a.FGPct),
			stattable.ColTwoP:         num(a.FG2Made),
			stattable.ColTwoPA:        num(a.FG2Att),
			stattable.ColTwoPPct:      num(a.FG2Pct),
			stattable.ColThreeP:       num(a.FG3Made),
			stattable.ColThreePA:      num(a.FG3Att),
			stattable.ColThreePPct:    num(a.FG3Pct),
			stattable.ColEFGPct:       num(a.EFGPct),
			stattable.ColFT:           num(a.FTMade),
			stattable.ColFTA:          num(a.FTAttempted),
			stattable.ColFTPct:        num(a.FTPct),
			stattable.ColTSPct:        num(a.TSPct),
			stattable.ColFTr:          num(a.FTRate),
			stattable.ColThreePAr:     num(a.FG3Rate),
			stattable.ColFGPlus:       num(a.FGPlus),
			stattable.ColTwoPPlus:     num(a.FG2Plus),
			stattable.ColThreePPlus:   num(a.FG3Plus),
			stattable.ColEFGPlus:      num(a.EFGPlus),
			stattable.ColFTPlus:       num(a.FTPlus),
			stattable.ColTSPlus:       num(a.TSPlus),
			stattable.ColFTrPlus:      num(a.FTRatePlus),
			stattable.ColThreePArPlus: num(a.FG3RatePlus),
		}
		seasonContext(row, a.SeasonID, a.TeamID, nil, p)
		row[stattable.ColLg] = text(a.League)
		rows = append(rows, row)
	}
	return rows
}

// PlayByPlay maps positional estimates and on/off figures. On-Off is the
// difference of the on-court and off-court plus/minus when both are known.
func PlayByPlay(pbp []player.PlayByPlayStats, basics []player.SeasonStats, p player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(pbp))
	for _, s := range pbp {
		basic := findBasic(basics, s.SeasonID, s.TeamID)
		row := stattable.Row{
			stattable.ColPGPct:          num(s.PctPG),
			stattable.ColSGPct:          num(s.PctSG),
			stattable.ColSFPct:          num(s.PctSF),
			stattable.ColPFPct:          num(s.PctPF),
			stattable.ColCPct:           num(s.PctC),
			stattable.ColOnCourt:        num(s.PlusMinusOn),
			stattable.ColBadPassTO:      num(s.BadPassTurnovers),
			stattable.ColLostBallTO:     num(s.LostBallTurnovers),
			stattable.ColShootingFouls:  num(s.ShootingFouls),
			stattable.ColOffFouls:       num(s.OffensiveFouls),
			stattable.ColShootFoulDrawn: num(s.ShootingFoulsDrawn),
			stattable.ColAndOnes:        num(s.AndOnes),
			stattable.ColBlocked:        num(s.BlockedAttempts),
		}
		if s.PlusMinusOn != nil && s.PlusMinusOff != nil {
			row[stattable.ColOnOff] = stattable.Number(*s.PlusMinusOn - *s.PlusMinusOff)
		}
		seasonContext(row, s.SeasonID, s.TeamID, basic, p)
		if basic != nil {
			row[stattable.ColG] = num(basic.GamesPlayed)
			row[stattable.ColMP] = num(basic.MinutesPlayed)
		}
		rows = append(rows, row)
	}
	return rows
}

// GameLog maps one row per game. A game the player sat out keeps its context
// columns and shows the reason under minutes.
func GameLog(logs []player.GameLog, p player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(logs))
	for i, l := range logs {
		row := stattable.Row{
			stattable.ColRk:   stattable.Number(float64(i + 1)),
			stattable.ColG:    num(l.GameNumber),
			stattable.ColDate: dateCell(l.GameDate),
			stattable.ColAge:  num(l.Age),
			stattable.ColTm:   teamCell(l.TeamID, nil),
			stattable.ColOpp:  teamRefCell(l.OpponentTeamID, nil),
		}
		if l.IsHome != nil && !*l.IsHome {
			row[stattable.ColGameLoc] = stattable.Text("@")
		}
		row[stattable.ColResult] = gameResult(l)
		if l.GameID != "" {
			if res := row[stattable.ColResult]; !res.IsBlank() {
				row[stattable.ColResult] = stattable.Link(GameHref(l.GameID), res.Label())
			}
		}

		if l.DidNotPlay != nil && *l.DidNotPlay {
			reason := "Did Not Play"
			if l.DNPReason != nil && *l.DNPReason != "" {
				reason = *l.DNPReason
			}
			row[stattable.ColMP] = stattable.Text(reason)
			rows = append(rows, row)
			continue
		}

		row[stattable.ColGS] = boolInt(l.IsStarter)
		row[stattable.ColMP] = num(l.MinutesPlayed)
		row[stattable.ColFG] = num(l.FieldGoalsMade)
		row[stattable.ColFGA] = num(l.FieldGoalsAttempted)
		row[stattable.ColFGPct] = pctOr(l.FieldGoalPct, l.FieldGoalsMade, l.FieldGoalsAttempted)
		row[stattable.ColThreeP] = num(l.ThreesMade)
		row[stattable.ColThreePA] = num(l.ThreesAttempted)
		row[stattable.ColThreePPct] = pctOr(l.ThreePct, l.ThreesMade, l.ThreesAttempted)
		row[stattable.ColFT] = num(l.FreeThrowsMade)
		row[stattable.ColFTA] = num(l.FreeThrowsAttempted)
		row[stattable.ColFTPct] = pctOr(l.FreeThrowPct, l.FreeThrowsMade, l.FreeThrowsAttempted)
		row[stattable.ColORB] = num(l.OffensiveRebounds)
		row[stattable.ColDRB] = num(l.DefensiveRebounds)
		row[stattable.ColTRB] = num(l.TotalRebounds)
		row[stattable.ColAST] = num(l.Assists)
		row[stattable.ColSTL] = num(l.Steals)
		row[stattable.ColBLK] = num(l.Blocks)
		row[stattable.ColTOV] = num(l.Turnovers)
		row[stattable.ColPF] = num(l.PersonalFouls)
		row[stattable.ColPTS] = num(l.Points)
		row[stattable.ColGmSc] = num(l.GameScore)
		row[stattable.ColPlusMinus] = num(l.PlusMinus)
		rows = append(rows, row)
	}
	return rows
}

func gameResult(l player.GameLog) stattable.Cell {
	if l.GameResult != nil && *l.GameResult != "" {
		return stattable.Text(*l.GameResult)
	}
	if l.IsWin == nil {
		return stattable.Blank()
	}
	if *l.IsWin {
		return stattable.Text("W")
	}
	return stattable.Text("L")
}

// Splits maps one row per split bucket. The split records carry no starts,
// rebound breakdown or fouls; those columns are blank.
func Splits(splits []player.Split) []stattable.Row {
	rows := make([]stattable.Row, 0, len(splits))
	for _, s := range splits {
		rows = append(rows, stattable.Row{
			stattable.ColSplitValue: stattable.Text(s.SplitValue),
			stattable.ColG:          num(s.Games),
			stattable.ColMP:         num(s.Minutes),
			stattable.ColFG:         num(s.FieldGoalsMade),
			stattable.ColFGA:        num(s.FieldGoalsAttempted),
			stattable.ColFGPct:      pctOr(s.FieldGoalPct, s.FieldGoalsMade, s.FieldGoalsAttempted),
			stattable.ColThreeP:     num(s.ThreesMade),
			stattable.ColThreePA:    num(s.ThreesAttempted),
			stattable.ColThreePPct:  pctOr(s.ThreePct, s.ThreesMade, s.ThreesAttempted),
			stattable.ColFT:         num(s.FreeThrowsMade),
			stattable.ColFTA:        num(s.FreeThrowsAttempted),
			stattable.ColFTPct:      pctOr(s.FreeThrowPct, s.FreeThrowsMade, s.FreeThrowsAttempted),
			stattable.ColTRB:        num(s.Rebounds),
			stattable.ColAST:        num(s.Assists),
			stattable.ColSTL:        num(s.Steals),
			stattable.ColBLK:        num(s.Blocks),
			stattable.ColTOV:        num(s.Turnovers),
			stattable.ColPTS:        num(s.Points),
		})
	}
	return rows
}

// GroupSplits buckets splits by split type, keeping first-seen order.
func GroupSplits(splits []player.Split) (types []string, byType map[string][]player.Split) {
	byType = make(map[string][]player.Split)
	for _, s := range splits {
		if _, ok := byType[s.SplitType]; !ok {
			types = append(types, s.SplitType)
		}
		byType[s.SplitType] = append(byType[s.SplitType], s)
	}
	return types, byType
}

// PlayerIndex maps a player search listing.
func PlayerIndex(players []player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(players))
	for _, p := range players {
		rows = append(rows, bioRow(p))
	}
	return rows
}

func bioRow(p player.Player) stattable.Row {
	row := stattable.Row{
		stattable.ColPlayer:    playerCell(p.ID, p.FullName),
		stattable.ColPos:       text(p.Position),
		stattable.ColWt:        intText(p.WeightLbs),
		stattable.ColBirthDate: dateCell(p.BirthDate),
		stattable.ColCountry:   text(p.BirthCountry),
		stattable.ColCollege:   text(p.College),
	}
	if h := p.Height(); h != "" {
		row[stattable.ColHt] = stattable.Text(h)
	}
	if p.ExperienceYears != nil {
		if *p.ExperienceYears == 0 {
			row[stattable.ColExp] = stattable.Text("R")
		} else {
			row[stattable.ColExp] = intText(p.ExperienceYears)
		}
	}
	return row
}

// Roster maps a team's players; the jersey number leads each row.
func Roster(players []player.Player) []stattable.Row {
	rows := make([]stattable.Row, 0, len(players))
	for _, p := range players {
		row := bioRow(p)
		row[stattable.ColNo] = text(p.JerseyNumber)
		rows = append(rows, row)
	}
	return rows
}

// Awards maps award voting results, for either a player or a season.
func Awards(awards []player.Award, teams Teams) []stattable.Row {
	rows := make([]stattable.Row, 0, len(awards))
	for _, a := range awards {
		name := a.PlayerID
		if a.PlayerName != nil && *a.PlayerName != "" {
			name = *a.PlayerName
		}
		rows = append(rows, stattable.Row{
			stattable.ColSeason:      seasonCell(a.SeasonID),
			stattable.ColAward:       stattable.Text(a.AwardType),
			stattable.ColRk:          num(a.Rank),
			stattable.ColPlayer:      playerCell(a.PlayerID, name),
			stattable.ColTm:          teamRefCell(a.TeamID, teams),
			stattable.ColFirstPlace:  num(a.FirstPlaceVotes),
			stattable.ColAwardPoints: num(a.TotalPoints),
			stattable.ColVoteShare:   num(a.VoteShare),
		})
	}
	return rows
}
