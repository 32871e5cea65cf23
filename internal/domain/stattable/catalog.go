package stattable

// catalog holds every column the site can render, in display-listing order.
var catalog = []ColumnDef{
	{Key: ColRk, Label: "Rk", Type: TypeInt},
	{Key: ColSeason, Label: "Season", Type: TypeString},
	{Key: ColAge, Label: "Age", Type: TypeInt},
	{Key: ColTm, Label: "Tm", Type: TypeString},
	{Key: ColLg, Label: "Lg", Type: TypeString},
	{Key: ColPos, Label: "Pos", Type: TypeString},
	{Key: ColG, Label: "G", Description: "Games", Type: TypeInt},
	{Key: ColGS, Label: "GS", Description: "Games Started", Type: TypeInt},
	{Key: ColMP, Label: "MP", Description: "Minutes Played", Type: TypeFloat},

	{Key: ColFG, Label: "FG", Description: "Field Goals", Type: TypeFloat},
	{Key: ColFGA, Label: "FGA", Description: "Field Goal Attempts", Type: TypeFloat},
	{Key: ColFGPct, Label: "FG%", Description: "Field Goal Percentage", Type: TypePercent},
	{Key: ColThreeP, Label: "3P", Description: "3-Point Field Goals", Type: TypeFloat},
	{Key: ColThreePA, Label: "3PA", Description: "3-Point Field Goal Attempts", Type: TypeFloat},
	{Key: ColThreePPct, Label: "3P%", Description: "3-Point Field Goal Percentage", Type: TypePercent},
	{Key: ColTwoP, Label: "2P", Description: "2-Point Field Goals", Type: TypeFloat},
	{Key: ColTwoPA, Label: "2PA", Description: "2-Point Field Goal Attempts", Type: TypeFloat},
	{Key: ColTwoPPct, Label: "2P%", Description: "2-Point Field Goal Percentage", Type: TypePercent},
	{Key: ColEFGPct, Label: "eFG%", Description: "Effective Field Goal Percentage", Type: TypePercent},
	{Key: ColFT, Label: "FT", Description: "Free Throws", Type: TypeFloat},
	{Key: ColFTA, Label: "FTA", Description: "Free Throw Attempts", Type: TypeFloat},
	{Key: ColFTPct, Label: "FT%", Description: "Free Throw Percentage", Type: TypePercent},
	{Key: ColORB, Label: "ORB", Description: "Offensive Rebounds", Type: TypeFloat},
	{Key: ColDRB, Label: "DRB", Description: "Defensive Rebounds", Type: TypeFloat},
	{Key: ColTRB, Label: "TRB", Description: "Total Rebounds", Type: TypeFloat},
	{Key: ColAST, Label: "AST", Description: "Assists", Type: TypeFloat},
	{Key: ColSTL, Label: "STL", Description: "Steals", Type: TypeFloat},
	{Key: ColBLK, Label: "BLK", Description: "Blocks", Type: TypeFloat},
	{Key: ColTOV, Label: "TOV", Description: "Turnovers", Type: TypeFloat},
	{Key: ColPF, Label: "PF", Description: "Personal Fouls", Type: TypeFloat},
	{Key: ColPTS, Label: "PTS", Description: "Points", Type: TypeFloat},
	{Key: ColMPPerG, Label: "MP", Description: "Minutes Per Game", Type: TypeFloat},
	{Key: ColPTSPerG, Label: "PTS", Description: "Points Per Game", Type: TypeFloat},
	{Key: ColTRBPerG, Label: "TRB", Description: "Rebounds Per Game", Type: TypeFloat},
	{Key: ColASTPerG, Label: "AST", Description: "Assists Per Game", Type: TypeFloat},

	{Key: ColORtg, Label: "ORtg", Description: "Offensive Rating", Type: TypeFloat},
	{Key: ColDRtg, Label: "DRtg", Description: "Defensive Rating", Type: TypeFloat},
	{Key: ColNRtg, Label: "NRtg", Description: "Net Rating", Type: TypeFloat},
	{Key: ColPER, Label: "PER", Description: "Player Efficiency Rating", Type: TypeFloat},
	{Key: ColTSPct, Label: "TS%", Description: "True Shooting Percentage", Type: TypePercent},
	{Key: ColThreePAr, Label: "3PAr", Description: "3-Point Attempt Rate", Type: TypeRatio},
	{Key: ColFTr, Label: "FTr", Description: "Free Throw Rate", Type: TypeRatio},
	{Key: ColORBPct, Label: "ORB%", Description: "Offensive Rebound Percentage", Type: TypePercent},
	{Key: ColDRBPct, Label: "DRB%", Description: "Defensive Rebound Percentage", Type: TypePercent},
	{Key: ColTRBPct, Label: "TRB%", Description: "Total Rebound Percentage", Type: TypePercent},
	{Key: ColASTPct, Label: "AST%", Description: "Assist Percentage", Type: TypePercent},
	{Key: ColSTLPct, Label: "STL%", Description: "Steal Percentage", Type: TypePercent},
	{Key: ColBLKPct, Label: "BLK%", Description: "Block Percentage", Type: TypePercent},
	{Key: ColTOVPct, Label: "TOV%", Description: "Turnover Percentage", Type: TypePercent},
	{Key: ColUSGPct, Label: "USG%", Description: "Usage Percentage", Type: TypePercent},
	{Key: ColOWS, Label: "OWS", Description: "Offensive Win Shares", Type: TypeFloat},
	{Key: ColDWS, Label: "DWS", Description: "Defensive Win Shares", Type: TypeFloat},
	{Key: ColWS, Label: "WS", Description: "Win Shares", Type: TypeFloat},
	{Key: ColWS48, Label: "WS/48", Description: "Win Shares Per 48 Minutes", Type: TypeRatio},
	{Key: ColOBPM, Label: "OBPM", Description: "Offensive Box Plus/Minus", Type: TypeFloat},
	{Key: ColDBPM, Label: "DBPM", Description: "Defensive Box Plus/Minus", Type: TypeFloat},
	{Key: ColBPM, Label: "BPM", Description: "Box Plus/Minus", Type: TypeFloat},
	{Key: ColVORP, Label: "VORP", Description: "Value Over Replacement Player", Type: TypeFloat},
	{Key: ColPace, Label: "Pace", Description: "Possessions Per 48 Minutes", Type: TypeFloat},
	{Key: ColFTPerFGA, Label: "FT/FGA", Description: "Free Throws Per Field Goal Attempt", Type: TypeRatio},
	{Key: ColOppEFGPct, Label: "eFG%", Description: "Opponent Effective Field Goal Percentage", Type: TypePercent},
	{Key: ColOppTOVPct, Label: "TOV%", Description: "Opponent Turnover Percentage", Type: TypePercent},
	{Key: ColOppDRBPct, Label: "DRB%", Description: "Defensive Rebound Percentage", Type: TypePercent},
	{Key: ColOppFTRate, Label: "FT/FGA", Description: "Opponent Free Throws Per Field Goal Attempt", Type: TypeRatio},

	{Key: ColDist, Label: "Dist.", Description: "Average Shot Distance", Type: TypeFloat},
	{Key: ColPctFGA2P, Label: "2P", Type: TypePercent},
	{Key: ColPctFGA0To3, Label: "0-3", Type: TypePercent},
	{Key: ColPctFGA3To10, Label: "3-10", Type: TypePercent},
	{Key: ColPctFGA10To16, Label: "10-16", Type: TypePercent},
	{Key: ColPctFGA16To3P, Label: "16-3P", Type: TypePercent},
	{Key: ColPctFGA3P, Label: "3P", Type: TypePercent},
	{Key: ColFGPct2P, Label: "2P", Type: TypePercent},
	{Key: ColFGPct0To3, Label: "0-3", Type: TypePercent},
	{Key: ColFGPct3To10, Label: "3-10", Type: TypePercent},
	{Key: ColFGPct10To16, Label: "10-16", Type: TypePercent},
	{Key: ColFGPct16To3P, Label: "16-3P", Type: TypePercent},
	{Key: ColFGPct3P, Label: "3P", Type: TypePercent},
	{Key: ColPctAst2P, Label: "2P", Description: "% of 2-Point Field Goals Assisted", Type: TypePercent},
	{Key: ColPctAst3P, Label: "3P", Description: "% of 3-Point Field Goals Assisted", Type: TypePercent},
	{Key: ColPctFGADunks, Label: "%FGA", Description: "% of Field Goal Attempts That Were Dunks", Type: TypePercent},
	{Key: ColDunks, Label: "#", Description: "Dunks", Type: TypeInt},
	{Key: ColCorner3PA, Label: "%3PA", Description: "% of 3-Point Attempts From the Corner", Type: TypePercent},
	{Key: ColCorner3PPct, Label: "3P%", Description: "Corner 3-Point Percentage", Type: TypePercent},
	{Key: ColHeavesAtt, Label: "Att", Description: "Heaves Attempted", Type: TypeInt},
	{Key: ColHeavesMade, Label: "Md", Description: "Heaves Made", Type: TypeInt},
	{Key: ColFGPlus, Label: "FG+", Description: "FG% Relative to League (100 = Average)", Type: TypeInt},
	{Key: ColTwoPPlus, Label: "2P+", Type: TypeInt},
	{Key: ColThreePPlus, Label: "3P+", Type: TypeInt},
	{Key: ColEFGPlus, Label: "eFG+", Type: TypeInt},
	{Key: ColFTPlus, Label: "FT+", Type: TypeInt},
	{Key: ColTSPlus, Label: "TS+", Type: TypeInt},
	{Key: ColFTrPlus, Label: "FTr+", Type: TypeInt},
	{Key: ColThreePArPlus, Label: "3PAr+", Type: TypeInt},
	{Key: ColPGPct, Label: "PG%", Description: "Share of Minutes at Point Guard", Type: TypePercent},
	{Key: ColSGPct, Label: "SG%", Type: TypePercent},
	{Key: ColSFPct, Label: "SF%", Type: TypePercent},
	{Key: ColPFPct, Label: "PF%", Type: TypePercent},
	{Key: ColCPct, Label: "C%", Type: TypePercent},
	{Key: ColOnCourt, Label: "OnCourt", Description: "Plus/Minus Per 100 Possessions On Court", Type: TypeFloat},
	{Key: ColOnOff, Label: "On-Off", Description: "On-Court Minus Off-Court Plus/Minus", Type: TypeFloat},
	{Key: ColBadPassTO, Label: "BadPass", Description: "Bad Pass Turnovers", Type: TypeInt},
	{Key: ColLostBallTO, Label: "LostBall", Description: "Lost Ball Turnovers", Type: TypeInt},
	{Key: ColShootingFouls, Label: "Shoot", Description: "Shooting Fouls Committed", Type: TypeInt},
	{Key: ColOffFouls, Label: "Off.", Description: "Offensive Fouls Committed", Type: TypeInt},
	{Key: ColShootFoulDrawn, Label: "Shoot", Description: "Shooting Fouls Drawn", Type: TypeInt},
	{Key: ColAndOnes, Label: "And1", Description: "And-One Attempts", Type: TypeInt},
	{Key: ColBlocked, Label: "Blkd", Description: "Field Goal Attempts Blocked", Type: TypeInt},

	{Key: ColDate, Label: "Date", Type: TypeDate},
	{Key: ColGameLoc, Label: "", Description: "@ for away games", Type: TypeString},
	{Key: ColOpp, Label: "Opp", Type: TypeString},
	{Key: ColResult, Label: "Result", Type: TypeString},
	{Key: ColGmSc, Label: "GmSc", Description: "Game Score", Type: TypeFloat},
	{Key: ColPlusMinus, Label: "+/-", Description: "Plus/Minus", Type: TypeInt},
	{Key: ColPlayer, Label: "Player", Type: TypeString, Align: AlignLeft},
	{Key: ColNo, Label: "No.", Type: TypeString},
	{Key: ColHt, Label: "Ht", Description: "Height", Type: TypeString},
	{Key: ColWt, Label: "Wt", Description: "Weight", Type: TypeString},
	{Key: ColBirthDate, Label: "Birth Date", Type: TypeDate},
	{Key: ColCountry, Label: "Country", Type: TypeString},
	{Key: ColExp, Label: "Exp", Description: "Years of Experience", Type: TypeString},
	{Key: ColCollege, Label: "College", Type: TypeString, Align: AlignLeft},

	{Key: ColW, Label: "W", Description: "Wins", Type: TypeInt},
	{Key: ColL, Label: "L", Description: "Losses", Type: TypeInt},
	{Key: ColWLPct, Label: "W/L%", Description: "Win-Loss Percentage", Type: TypeRatio},
	{Key: ColGB, Label: "GB", Description: "Games Behind", Type: TypeFloat},
	{Key: ColOppPts, Label: "Opp PTS", Description: "Opponent Points", Type: TypeFloat},
	{Key: ColSRS, Label: "SRS", Description: "Simple Rating System", Type: TypeFloat},
	{Key: ColStartET, Label: "Start (ET)", Type: TypeString},
	{Key: ColStreak, Label: "Streak", Type: TypeString},
	{Key: ColNotes, Label: "Notes", Type: TypeString, Align: AlignLeft},
	{Key: ColQ1, Label: "Q1", Type: TypeInt},
	{Key: ColQ2, Label: "Q2", Type: TypeInt},
	{Key: ColQ3, Label: "Q3", Type: TypeInt},
	{Key: ColQ4, Label: "Q4", Type: TypeInt},
	{Key: ColOT1, Label: "OT1", Type: TypeInt},
	{Key: ColOT2, Label: "OT2", Type: TypeInt},
	{Key: ColOT3, Label: "OT3", Type: TypeInt},
	{Key: ColOT4, Label: "OT4", Type: TypeInt},
	{Key: ColTotal, Label: "Total", Type: TypeInt},
	{Key: ColPaintPts, Label: "Paint", Description: "Points in the Paint", Type: TypeInt},
	{Key: ColSecondChance, Label: "2nd Ch", Description: "Second Chance Points", Type: TypeInt},
	{Key: ColFastBreakPts, Label: "FB", Description: "Fast Break Points", Type: TypeInt},
	{Key: ColPtsOffTOV, Label: "Off TO", Description: "Points Off Turnovers", Type: TypeInt},
	{Key: ColLargestLead, Label: "Lead", Description: "Largest Lead", Type: TypeInt},
	{Key: ColTeamTRB, Label: "Tm TRB", Description: "Team Rebounds", Type: TypeInt},
	{Key: ColTeamTOV, Label: "Tm TOV", Description: "Team Turnovers", Type: TypeInt},
	{Key: ColTotalTOV, Label: "TOV", Description: "Total Turnovers", Type: TypeInt},
	{Key: ColPk, Label: "Pk", Description: "Overall Pick", Type: TypeInt},
	{Key: ColYrs, Label: "Yrs", Description: "Years Played", Type: TypeInt},
	{Key: ColPW, Label: "PW", Description: "Pythagorean Wins", Type: TypeInt},
	{Key: ColPL, Label: "PL", Description: "Pythagorean Losses", Type: TypeInt},
	{Key: ColPSG, Label: "PS/G", Description: "Points Scored Per Game", Type: TypeFloat},
	{Key: ColPAG, Label: "PA/G", Description: "Points Allowed Per Game", Type: TypeFloat},
	{Key: ColMOV, Label: "MOV", Description: "Margin of Victory", Type: TypeFloat},
	{Key: ColSOS, Label: "SOS", Description: "Strength of Schedule", Type: TypeFloat},
	{Key: ColAttend, Label: "Attend.", Description: "Attendance", Type: TypeInt},
	{Key: ColAttendPerG, Label: "Attend./G", Description: "Attendance Per Game", Type: TypeInt},
	{Key: ColRound, Label: "Round", Type: TypeString, Align: AlignLeft},
	{Key: ColWinner, Label: "Winner", Type: TypeString},
	{Key: ColLoser, Label: "Loser", Type: TypeString},
	{Key: ColSplitValue, Label: "Split", Type: TypeString, Align: AlignLeft},

	{Key: ColVisitor, Label: "Visitor", Type: TypeString, Align: AlignLeft},
	{Key: ColVisitorPts, Label: "PTS", Description: "Visitor Points", Type: TypeInt},
	{Key: ColHome, Label: "Home", Type: TypeString, Align: AlignLeft},
	{Key: ColHomePts, Label: "PTS", Description: "Home Points", Type: TypeInt},
	{Key: ColBoxScore, Label: "", Type: TypeString},
	{Key: ColArena, Label: "Arena", Type: TypeString, Align: AlignLeft},
	{Key: ColFranchise, Label: "Franchise", Type: TypeString, Align: AlignLeft},
	{Key: ColFounded, Label: "From", Description: "Founded", Type: TypeInt},
	{Key: ColSeasons, Label: "Yrs", Description: "Seasons Played", Type: TypeInt},
	{Key: ColTitles, Label: "Champ", Description: "Championships", Type: TypeInt},
	{Key: ColContract, Label: "Type", Description: "Contract Type", Type: TypeString},
	{Key: ColSigned, Label: "Signed", Type: TypeDate},
	{Key: ColTotalValue, Label: "Value", Description: "Total Contract Value", Type: TypeCurrency, Align: AlignRight},
	{Key: ColGuaranteed, Label: "Guaranteed", Type: TypeCurrency, Align: AlignRight},
	{Key: ColAward, Label: "Award", Type: TypeString, Align: AlignLeft},
	{Key: ColFirstPlace, Label: "First", Description: "First Place Votes", Type: TypeInt},
	{Key: ColAwardPoints, Label: "Pts Won", Description: "Voting Points Won", Type: TypeInt},
	{Key: ColVoteShare, Label: "Share", Description: "Vote Share", Type: TypeRatio},
	{Key: ColValue, Label: "Value", Type: TypeFloat},
}
