package stattable

import (
	"fmt"
	"slices"
)

// TableID identifies a table schema.
type TableID string

const (
	TablePerGame           TableID = "per_game"
	TableTotals            TableID = "totals"
	TablePerMinute         TableID = "per_minute"
	TablePerPoss           TableID = "per_poss"
	TableAdvanced          TableID = "advanced"
	TableShooting          TableID = "shooting"
	TableAdjShooting       TableID = "adj_shooting"
	TablePBP               TableID = "pbp"
	TablePlayerGameLog     TableID = "pgl_basic"
	TableSplits            TableID = "splits"
	TableRoster            TableID = "roster"
	TableTeamGameLog       TableID = "tgl_basic"
	TableGames             TableID = "games"
	TableConfEast          TableID = "confs_standings_E"
	TableConfWest          TableID = "confs_standings_W"
	TableDivAtlantic       TableID = "divs_standings_Atlantic"
	TableDivCentral        TableID = "divs_standings_Central"
	TableDivSoutheast      TableID = "divs_standings_Southeast"
	TableDivNorthwest      TableID = "divs_standings_Northwest"
	TableDivPacific        TableID = "divs_standings_Pacific"
	TableDivSouthwest      TableID = "divs_standings_Southwest"
	TableLineScore         TableID = "line_score"
	TableFourFactors       TableID = "four_factors"
	TableBoxBasic          TableID = "box_game_basic"
	TableBoxAdvanced       TableID = "box_game_advanced"
	TableDraft             TableID = "draft_stats"
	TablePlayoffSeries     TableID = "playoffs_series"
	TableStandingsRegular  TableID = "standings_regular"
	TableStandingsExpanded TableID = "standings_expanded"
	TableTeamPerGame       TableID = "team_per_game"
	TableTeamTotals        TableID = "team_totals"
	TableTeamAdvanced      TableID = "team_advanced"
	TableScoreboard        TableID = "scoreboard"
	TableContracts         TableID = "contracts"
	TableFranchises        TableID = "franchises"
	TablePlayersIndex      TableID = "players_index"
	TableAwards            TableID = "awards"
	TableLeaders           TableID = "leaders"
	TableTeamGameStats     TableID = "team_game_stats"
)

// ColumnGroup is one band of a two-row header.
type ColumnGroup struct {
	Title   string
	Columns []ColumnKey
}

// TableSchema is the ordered column list of a table. When Groups is set the
// concatenation of every group's columns equals Columns.
type TableSchema struct {
	ID      TableID
	Columns []ColumnKey
	Groups  []ColumnGroup
}

func (s TableSchema) Grouped() bool {
	return len(s.Groups) > 0
}

// Has reports whether key is one of the schema's columns.
func (s TableSchema) Has(key ColumnKey) bool {
	return slices.Contains(s.Columns, key)
}

// WithoutColumns returns a copy of the schema with keys removed from the flat
// list and from every group. Groups left empty are dropped.
func (s TableSchema) WithoutColumns(keys ...ColumnKey) TableSchema {
	drop := func(k ColumnKey) bool { return slices.Contains(keys, k) }

	out := TableSchema{ID: s.ID}
	for _, k := range s.Columns {
		if !drop(k) {
			out.Columns = append(out.Columns, k)
		}
	}
	for _, g := range s.Groups {
		kept := make([]ColumnKey, 0, len(g.Columns))
		for _, k := range g.Columns {
			if !drop(k) {
				kept = append(kept, k)
			}
		}
		if len(kept) > 0 {
			out.Groups = append(out.Groups, ColumnGroup{Title: g.Title, Columns: kept})
		}
	}
	return out
}

// Schema returns the schema registered for id. An unknown id panics.
func Schema(id TableID) TableSchema {
	s, ok := schemaIndex[id]
	if !ok {
		panic(fmt.Sprintf("stattable: table %q is not registered", id))
	}
	return s
}

func LookupSchema(id TableID) (TableSchema, bool) {
	s, ok := schemaIndex[id]
	return s, ok
}

// Schemas lists every registered schema in registration order.
func Schemas() []TableSchema {
	out := make([]TableSchema, len(schemas))
	copy(out, schemas)
	return out
}

var schemaIndex = func() map[TableID]TableSchema {
	out := make(map[TableID]TableSchema, len(schemas))
	for _, s := range schemas {
		if _, dup := out[s.ID]; dup {
			panic(fmt.Sprintf("stattable: duplicate table id %q", s.ID))
		}
		out[s.ID] = s
	}
	return out
}()

func cols(groups ...[]ColumnKey) []ColumnKey {
	var out []ColumnKey
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func grouped(id TableID, groups ...ColumnGroup) TableSchema {
	s := TableSchema{ID: id, Groups: groups}
	for _, g := range groups {
		s.Columns = append(s.Columns, g.Columns...)
	}
	return s
}

var (
	seasonContext = []ColumnKey{ColSeason, ColAge, ColTm, ColLg, ColPos}

	boxShooting = []ColumnKey{
		ColFG, ColFGA, ColFGPct,
		ColThreeP, ColThreePA, ColThreePPct,
	}
	boxTwos      = []ColumnKey{ColTwoP, ColTwoPA, ColTwoPPct}
	boxFreeThrow = []ColumnKey{ColFT, ColFTA, ColFTPct}
	boxRest      = []ColumnKey{
		ColORB, ColDRB, ColTRB,
		ColAST, ColSTL, ColBLK, ColTOV, ColPF, ColPTS,
	}

	seasonBox = cols(
		seasonContext,
		[]ColumnKey{ColG, ColGS, ColMP},
		boxShooting, boxTwos,
		[]ColumnKey{ColEFGPct},
		boxFreeThrow, boxRest,
	)

	standingsColumns = []ColumnKey{ColRk, ColTm, ColW, ColL, ColWLPct, ColGB, ColPTS, ColOppPts, ColSRS}
)

var schemas = []TableSchema{
	{ID: TablePerGame, Columns: seasonBox},
	{ID: TableTotals, Columns: seasonBox},
	{ID: TablePerMinute, Columns: seasonBox},
	{ID: TablePerPoss, Columns: cols(seasonBox, []ColumnKey{ColORtg, ColDRtg})},
	{ID: TableAdvanced, Columns: cols(
		seasonContext,
		[]ColumnKey{ColG, ColMP},
		[]ColumnKey{ColPER, ColTSPct, ColThreePAr, ColFTr},
		[]ColumnKey{ColORBPct, ColDRBPct, ColTRBPct, ColASTPct, ColSTLPct, ColBLKPct, ColTOVPct, ColUSGPct},
		[]ColumnKey{ColOWS, ColDWS, ColWS, ColWS48},
		[]ColumnKey{ColOBPM, ColDBPM, ColBPM, ColVORP},
	)},
	grouped(TableShooting,
		ColumnGroup{Title: "Basic", Columns: cols(seasonContext, []ColumnKey{ColG, ColMP, ColFGPct, ColDist})},
		ColumnGroup{Title: "% of FGA by Distance", Columns: []ColumnKey{
			ColPctFGA2P, ColPctFGA0To3, ColPctFGA3To10, ColPctFGA10To16, ColPctFGA16To3P, ColPctFGA3P,
		}},
		ColumnGroup{Title: "FG% by Distance", Columns: []ColumnKey{
			ColFGPct2P, ColFGPct0To3, ColFGPct3To10, ColFGPct10To16, ColFGPct16To3P, ColFGPct3P,
		}},
		ColumnGroup{Title: "% of FG Ast'd", Columns: []ColumnKey{ColPctAst2P, ColPctAst3P}},
		ColumnGroup{Title: "Dunks", Columns: []ColumnKey{ColDunks, ColPctFGADunks}},
		ColumnGroup{Title: "Corner 3s", Columns: []ColumnKey{ColCorner3PA, ColCorner3PPct}},
		ColumnGroup{Title: "Heaves", Columns: []ColumnKey{ColHeavesAtt, ColHeavesMade}},
	),
	{ID: TableAdjShooting, Columns: cols(
		seasonContext,
		[]ColumnKey{ColG, ColMP},
		[]ColumnKey{ColFG, ColFGA, ColFGPct},
		boxTwos,
		[]ColumnKey{ColThreeP, ColThreePA, ColThreePPct},
		[]ColumnKey{ColEFGPct},
		boxFreeThrow,
		[]ColumnKey{ColTSPct, ColFTr, ColThreePAr},
		[]ColumnKey{ColFGPlus, ColTwoPPlus, ColThreePPlus, ColEFGPlus, ColFTPlus, ColTSPlus, ColFTrPlus, ColThreePArPlus},
	)},
	{ID: TablePBP, Columns: cols(
		seasonContext,
		[]ColumnKey{ColG, ColMP},
		[]ColumnKey{ColPGPct, ColSGPct, ColSFPct, ColPFPct, ColCPct},
		[]ColumnKey{ColOnCourt, ColOnOff},
		[]ColumnKey{ColBadPassTO, ColLostBallTO},
		[]ColumnKey{ColShootingFouls, ColOffFouls, ColShootFoulDrawn},
		[]ColumnKey{ColAndOnes, ColBlocked},
	)},
	{ID: TablePlayerGameLog, Columns: cols(
		[]ColumnKey{ColRk, ColG, ColDate, ColAge, ColTm, ColGameLoc, ColOpp, ColResult, ColGS, ColMP},
		boxShooting, boxFreeThrow, boxRest,
		[]ColumnKey{ColGmSc, ColPlusMinus},
	)},
	{ID: TableSplits, Columns: cols(
		[]ColumnKey{ColSplitValue, ColG, ColGS, ColMP},
		boxShooting, boxFreeThrow, boxRest,
	)},
	{ID: TableRoster, Columns: []ColumnKey{
		ColNo, ColPlayer, ColPos, ColHt, ColWt, ColBirthDate, ColCountry, ColExp, ColCollege,
	}},
	{ID: TableTeamGameLog, Columns: cols(
		[]ColumnKey{ColRk, ColG, ColDate, ColOpp, ColW, ColL, ColTm, ColOppPts},
		boxShooting, boxFreeThrow, boxRest,
	)},
	{ID: TableGames, Columns: []ColumnKey{
		ColG, ColDate, ColStartET, ColGameLoc, ColOpp, ColResult, ColTm, ColOppPts, ColW, ColL, ColStreak, ColNotes,
	}},
	{ID: TableConfEast, Columns: standingsColumns},
	{ID: TableConfWest, Columns: standingsColumns},
	{ID: TableDivAtlantic, Columns: standingsColumns},
	{ID: TableDivCentral, Columns: standingsColumns},
	{ID: TableDivSoutheast, Columns: standingsColumns},
	{ID: TableDivNorthwest, Columns: standingsColumns},
	{ID: TableDivPacific, Columns: standingsColumns},
	{ID: TableDivSouthwest, Columns: standingsColumns},
	{ID: TableLineScore, Columns: []ColumnKey{
		ColTm, ColQ1, ColQ2, ColQ3, ColQ4, ColOT1, ColOT2, ColOT3, ColOT4, ColTotal,
	}},
	grouped(TableTeamGameStats,
		ColumnGroup{Title: "", Columns: []ColumnKey{ColTm}},
		ColumnGroup{Title: "Points", Columns: []ColumnKey{ColPaintPts, ColSecondChance, ColFastBreakPts, ColPtsOffTOV}},
		ColumnGroup{Title: "Flow", Columns: []ColumnKey{ColLargestLead}},
		ColumnGroup{Title: "Team", Columns: []ColumnKey{ColTeamTRB, ColTeamTOV, ColTotalTOV}},
	),
	{ID: TableFourFactors, Columns: []ColumnKey{
		ColTm, ColPace, ColEFGPct, ColTOVPct, ColORBPct, ColFTPerFGA, ColORtg,
	}},
	{ID: TableBoxBasic, Columns: cols(
		[]ColumnKey{ColPlayer, ColMP},
		boxShooting, boxFreeThrow, boxRest,
		[]ColumnKey{ColPlusMinus},
	)},
	{ID: TableBoxAdvanced, Columns: []ColumnKey{
		ColPlayer, ColMP,
		ColTSPct, ColEFGPct, ColThreePAr, ColFTr,
		ColORBPct, ColDRBPct, ColTRBPct, ColASTPct, ColSTLPct, ColBLKPct, ColTOVPct, ColUSGPct,
		ColORtg, ColDRtg, ColBPM,
	}},
	grouped(TableDraft,
		ColumnGroup{Title: "", Columns: []ColumnKey{ColRk, ColPk, ColTm, ColPlayer, ColCollege, ColYrs}},
		ColumnGroup{Title: "Totals", Columns: []ColumnKey{ColG, ColMP, ColPTS, ColTRB, ColAST}},
		ColumnGroup{Title: "Shooting", Columns: []ColumnKey{ColFGPct, ColThreePPct, ColFTPct}},
		ColumnGroup{Title: "Per Game", Columns: []ColumnKey{ColMPPerG, ColPTSPerG, ColTRBPerG, ColASTPerG}},
		ColumnGroup{Title: "Advanced", Columns: []ColumnKey{ColWS, ColWS48, ColBPM, ColVORP}},
	),
	{ID: TablePlayoffSeries, Columns: []ColumnKey{ColRound, ColWinner, ColLoser, ColResult}},
	{ID: TableStandingsRegular, Columns: []ColumnKey{
		ColTm, ColW, ColL, ColWLPct, ColGB, ColPW, ColPL, ColPSG, ColPAG,
	}},
	grouped(TableStandingsExpanded,
		ColumnGroup{Title: "", Columns: []ColumnKey{ColTm, ColW, ColL, ColWLPct, ColGB, ColPW, ColPL, ColPSG, ColPAG}},
		ColumnGroup{Title: "Ratings", Columns: []ColumnKey{ColMOV, ColSOS, ColSRS, ColORtg, ColDRtg, ColNRtg, ColPace}},
		ColumnGroup{Title: "Offense Four Factors", Columns: []ColumnKey{
			ColFTr, ColThreePAr, ColTSPct, ColEFGPct, ColTOVPct, ColORBPct, ColFTPerFGA,
		}},
		ColumnGroup{Title: "Defense Four Factors", Columns: []ColumnKey{
			ColOppEFGPct, ColOppTOVPct, ColOppDRBPct, ColOppFTRate,
		}},
		ColumnGroup{Title: "Attendance", Columns: []ColumnKey{ColAttend, ColAttendPerG}},
	),
	{ID: TableTeamPerGame, Columns: cols(
		[]ColumnKey{ColSeason, ColLg, ColW, ColL, ColG, ColMP},
		boxShooting, boxTwos, boxFreeThrow, boxRest,
	)},
	{ID: TableTeamTotals, Columns: cols(
		[]ColumnKey{ColSeason, ColLg, ColW, ColL, ColG, ColMP},
		boxShooting, boxTwos, boxFreeThrow, boxRest,
	)},
	{ID: TableTeamAdvanced, Columns: []ColumnKey{
		ColSeason, ColW, ColL, ColWLPct, ColRk, ColPW, ColPL, ColMOV, ColSOS, ColSRS,
		ColORtg, ColDRtg, ColNRtg, ColPace, ColEFGPct, ColTOVPct, ColORBPct, ColFTPerFGA,
		ColOppEFGPct, ColOppTOVPct, ColOppDRBPct, ColOppFTRate, ColAttend, ColAttendPerG,
	}},
	{ID: TableScoreboard, Columns: []ColumnKey{
		ColVisitor, ColVisitorPts, ColHome, ColHomePts, ColStartET, ColArena, ColAttend, ColNotes, ColBoxScore,
	}},
	{ID: TableContracts, Columns: []ColumnKey{
		ColPlayer, ColTm, ColContract, ColSigned, ColYrs, ColTotalValue, ColGuaranteed,
	}},
	{ID: TableFranchises, Columns: []ColumnKey{
		ColFranchise, ColFounded, ColSeasons, ColW, ColL, ColWLPct, ColTitles,
	}},
	{ID: TablePlayersIndex, Columns: []ColumnKey{
		ColPlayer, ColPos, ColHt, ColWt, ColBirthDate, ColCountry, ColCollege, ColExp,
	}},
	{ID: TableAwards, Columns: []ColumnKey{
		ColSeason, ColAward, ColRk, ColPlayer, ColTm, ColFirstPlace, ColAwardPoints, ColVoteShare,
	}},
	{ID: TableLeaders, Columns: []ColumnKey{ColRk, ColPlayer, ColTm, ColValue}},
}
