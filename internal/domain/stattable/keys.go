package stattable

// Context columns.
const (
	ColRk          ColumnKey = "rk"
	ColSeason      ColumnKey = "season"
	ColAge         ColumnKey = "age"
	ColTm          ColumnKey = "tm"
	ColLg          ColumnKey = "lg"
	ColPos         ColumnKey = "pos"
	ColG           ColumnKey = "g"
	ColGS          ColumnKey = "gs"
	ColMP          ColumnKey = "mp"
	ColPlayer      ColumnKey = "player"
	ColSplitValue  ColumnKey = "split_value"
	ColDate        ColumnKey = "date"
	ColOpp         ColumnKey = "opp"
	ColGameLoc     ColumnKey = "game_location"
	ColResult      ColumnKey = "result"
	ColStartET     ColumnKey = "start_et"
	ColStreak      ColumnKey = "streak"
	ColNotes       ColumnKey = "notes"
	ColRound       ColumnKey = "round"
	ColWinner      ColumnKey = "winner"
	ColLoser       ColumnKey = "loser"
	ColPk          ColumnKey = "pk"
	ColYrs         ColumnKey = "yrs"
	ColNo          ColumnKey = "no"
	ColHt          ColumnKey = "ht"
	ColWt          ColumnKey = "wt"
	ColBirthDate   ColumnKey = "birth_date"
	ColCountry     ColumnKey = "country"
	ColExp         ColumnKey = "exp"
	ColCollege     ColumnKey = "college"
	ColVisitor     ColumnKey = "visitor"
	ColVisitorPts  ColumnKey = "visitor_pts"
	ColHome        ColumnKey = "home"
	ColHomePts     ColumnKey = "home_pts"
	ColBoxScore    ColumnKey = "box_score"
	ColArena       ColumnKey = "arena"
	ColFranchise   ColumnKey = "franchise"
	ColFounded     ColumnKey = "founded"
	ColSeasons     ColumnKey = "seasons"
	ColTitles      ColumnKey = "titles"
	ColContract    ColumnKey = "contract_type"
	ColSigned      ColumnKey = "signed"
	ColTotalValue  ColumnKey = "total_value"
	ColGuaranteed  ColumnKey = "guaranteed"
	ColAward       ColumnKey = "award"
	ColFirstPlace  ColumnKey = "first_place"
	ColAwardPoints ColumnKey = "award_pts"
	ColVoteShare   ColumnKey = "vote_share"
	ColValue       ColumnKey = "value"
)

// Box score counting stats and shooting splits.
const (
	ColFG        ColumnKey = "fg"
	ColFGA       ColumnKey = "fga"
	ColFGPct     ColumnKey = "fg_pct"
	ColThreeP    ColumnKey = "threep"
	ColThreePA   ColumnKey = "threep_att"
	ColThreePPct ColumnKey = "threep_pct"
	ColTwoP      ColumnKey = "twop"
	ColTwoPA     ColumnKey = "twop_att"
	ColTwoPPct   ColumnKey = "twop_pct"
	ColEFGPct    ColumnKey = "efg_pct"
	ColFT        ColumnKey = "ft"
	ColFTA       ColumnKey = "fta"
	ColFTPct     ColumnKey = "ft_pct"
	ColORB       ColumnKey = "orb"
	ColDRB       ColumnKey = "drb"
	ColTRB       ColumnKey = "trb"
	ColAST       ColumnKey = "ast"
	ColSTL       ColumnKey = "stl"
	ColBLK       ColumnKey = "blk"
	ColTOV       ColumnKey = "tov"
	ColPF        ColumnKey = "pf"
	ColPTS       ColumnKey = "pts"
	ColGmSc      ColumnKey = "gmsc"
	ColPlusMinus ColumnKey = "plus_minus"
	ColMPPerG    ColumnKey = "mp_per_g"
	ColPTSPerG   ColumnKey = "pts_per_g"
	ColTRBPerG   ColumnKey = "trb_per_g"
	ColASTPerG   ColumnKey = "ast_per_g"
)

// Advanced metrics.
const (
	ColORtg      ColumnKey = "ortg"
	ColDRtg      ColumnKey = "drtg"
	ColNRtg      ColumnKey = "nrtg"
	ColPER       ColumnKey = "per"
	ColTSPct     ColumnKey = "ts_pct"
	ColThreePAr  ColumnKey = "threepar"
	ColFTr       ColumnKey = "ftr"
	ColORBPct    ColumnKey = "orb_pct"
	ColDRBPct    ColumnKey = "drb_pct"
	ColTRBPct    ColumnKey = "trb_pct"
	ColASTPct    ColumnKey = "ast_pct"
	ColSTLPct    ColumnKey = "stl_pct"
	ColBLKPct    ColumnKey = "blk_pct"
	ColTOVPct    ColumnKey = "tov_pct"
	ColUSGPct    ColumnKey = "usg_pct"
	ColOWS       ColumnKey = "ows"
	ColDWS       ColumnKey = "dws"
	ColWS        ColumnKey = "ws"
	ColWS48      ColumnKey = "ws_48"
	ColOBPM      ColumnKey = "obpm"
	ColDBPM      ColumnKey = "dbpm"
	ColBPM       ColumnKey = "bpm"
	ColVORP      ColumnKey = "vorp"
	ColPace      ColumnKey = "pace"
	ColFTPerFGA  ColumnKey = "ft_per_fga"
	ColOppEFGPct ColumnKey = "efg_pct_opp"
	ColOppTOVPct ColumnKey = "tov_pct_opp"
	ColOppDRBPct ColumnKey = "drb_pct_opp"
	ColOppFTRate ColumnKey = "ft_per_fga_opp"
)

// Shooting by distance and type.
const (
	ColDist           ColumnKey = "dist"
	ColPctFGA2P       ColumnKey = "pct_fga_2p"
	ColPctFGA0To3     ColumnKey = "pct_fga_0_3"
	ColPctFGA3To10    ColumnKey = "pct_fga_3_10"
	ColPctFGA10To16   ColumnKey = "pct_fga_10_16"
	ColPctFGA16To3P   ColumnKey = "pct_fga_16_3p"
	ColPctFGA3P       ColumnKey = "pct_fga_3p"
	ColFGPct2P        ColumnKey = "fg_pct_2p"
	ColFGPct0To3      ColumnKey = "fg_pct_0_3"
	ColFGPct3To10     ColumnKey = "fg_pct_3_10"
	ColFGPct10To16    ColumnKey = "fg_pct_10_16"
	ColFGPct16To3P    ColumnKey = "fg_pct_16_3p"
	ColFGPct3P        ColumnKey = "fg_pct_3p"
	ColPctAst2P       ColumnKey = "pct_ast_2p"
	ColPctAst3P       ColumnKey = "pct_ast_3p"
	ColPctFGADunks    ColumnKey = "pct_fga_dunks"
	ColDunks          ColumnKey = "num_dunks"
	ColCorner3PA      ColumnKey = "threep_att_corner"
	ColCorner3PPct    ColumnKey = "threep_pct_corner"
	ColHeavesAtt      ColumnKey = "att_heaves"
	ColHeavesMade     ColumnKey = "made_heaves"
	ColFGPlus         ColumnKey = "fg_plus"
	ColTwoPPlus       ColumnKey = "twop_plus"
	ColThreePPlus     ColumnKey = "threep_plus"
	ColEFGPlus        ColumnKey = "efg_plus"
	ColFTPlus         ColumnKey = "ft_plus"
	ColTSPlus         ColumnKey = "ts_plus"
	ColFTrPlus        ColumnKey = "ftr_plus"
	ColThreePArPlus   ColumnKey = "threepar_plus"
	ColPGPct          ColumnKey = "pg_pct"
	ColSGPct          ColumnKey = "sg_pct"
	ColSFPct          ColumnKey = "sf_pct"
	ColPFPct          ColumnKey = "pf_pct"
	ColCPct           ColumnKey = "c_pct"
	ColOnCourt        ColumnKey = "on_court_plus_minus"
	ColOnOff          ColumnKey = "on_off_plus_minus"
	ColBadPassTO      ColumnKey = "bad_pass_to"
	ColLostBallTO     ColumnKey = "lost_ball_to"
	ColShootingFouls  ColumnKey = "shooting_fouls"
	ColOffFouls       ColumnKey = "offensive_fouls"
	ColShootFoulDrawn ColumnKey = "shooting_fouls_drawn"
	ColAndOnes        ColumnKey = "and1s"
	ColBlocked        ColumnKey = "blocked"
)

// Team records, standings and line scores.
const (
	ColW            ColumnKey = "w"
	ColL            ColumnKey = "l"
	ColWLPct        ColumnKey = "wl_pct"
	ColGB           ColumnKey = "gb"
	ColOppPts       ColumnKey = "opp_pts"
	ColSRS          ColumnKey = "srs"
	ColPW           ColumnKey = "pw"
	ColPL           ColumnKey = "pl"
	ColPSG          ColumnKey = "ps_g"
	ColPAG          ColumnKey = "pa_g"
	ColMOV          ColumnKey = "mov"
	ColSOS          ColumnKey = "sos"
	ColAttend       ColumnKey = "attend"
	ColAttendPerG   ColumnKey = "attend_g"
	ColQ1           ColumnKey = "q1"
	ColQ2           ColumnKey = "q2"
	ColQ3           ColumnKey = "q3"
	ColQ4           ColumnKey = "q4"
	ColOT1          ColumnKey = "ot1"
	ColOT2          ColumnKey = "ot2"
	ColOT3          ColumnKey = "ot3"
	ColOT4          ColumnKey = "ot4"
	ColTotal        ColumnKey = "total"
	ColPaintPts     ColumnKey = "pts_paint"
	ColSecondChance ColumnKey = "pts_2nd_chance"
	ColFastBreakPts ColumnKey = "pts_fb"
	ColPtsOffTOV    ColumnKey = "pts_off_to"
	ColLargestLead  ColumnKey = "largest_lead"
	ColTeamTRB      ColumnKey = "team_trb"
	ColTeamTOV      ColumnKey = "team_tov"
	ColTotalTOV     ColumnKey = "total_tov"
)
