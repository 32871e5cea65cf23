package player

import "fmt"

// Player is the biographical record of an athlete.
type Player struct {
	ID              string   `json:"player_id"`
	FullName        string   `json:"full_name"`
	FirstName       string   `json:"first_name,omitempty"`
	LastName        string   `json:"last_name,omitempty"`
	BirthDate       *string  `json:"birth_date,omitempty"`
	BirthCity       *string  `json:"birth_city,omitempty"`
	BirthCountry    *string  `json:"birth_country,omitempty"`
	HeightInches    *int     `json:"height_inches,omitempty"`
	WeightLbs       *int     `json:"weight_lbs,omitempty"`
	Shoots          *string  `json:"shoots,omitempty"`
	Position        *string  `json:"position,omitempty"`
	College         *string  `json:"college,omitempty"`
	DraftYear       *int     `json:"draft_year,omitempty"`
	DraftRound      *int     `json:"draft_round,omitempty"`
	DraftPick       *int     `json:"draft_pick,omitempty"`
	DraftTeamID     *string  `json:"draft_team_id,omitempty"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	JerseyNumber    *string  `json:"jersey_number,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
	HOFYear         *int     `json:"hof_year,omitempty"`
	HeadshotURL     *string  `json:"headshot_url,omitempty"`
	CareerPoints    *float64 `json:"career_points,omitempty"`
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.FullName == "" {
		return fmt.Errorf("player full name is required")
	}

	return nil
}

// PositionOrEmpty returns the listed position, or "" when unknown.
func (p Player) PositionOrEmpty() string {
	if p.Position == nil {
		return ""
	}
	return *p.Position
}

// Height formats height as feet-inches, e.g. 6-9.
func (p Player) Height() string {
	if p.HeightInches == nil || *p.HeightInches <= 0 {
		return ""
	}
	return fmt.Sprintf("%d-%d", *p.HeightInches/12, *p.HeightInches%12)
}

// SeasonStats is a player's box score line for one season and team. A TeamID
// of TOT marks the combined line of a player traded mid-season.
type SeasonStats struct {
	StatID     int64   `json:"stat_id"`
	PlayerID   string  `json:"player_id"`
	SeasonID   string  `json:"season_id"`
	TeamID     string  `json:"team_id"`
	League     *string `json:"league,omitempty"`
	SeasonType *string `json:"season_type,omitempty"`

	Age           *int     `json:"age,omitempty"`
	GamesPlayed   *int     `json:"games_played,omitempty"`
	GamesStarted  *int     `json:"games_started,omitempty"`
	MinutesPlayed *float64 `json:"minutes_played,omitempty"`

	FieldGoalsMade      *float64 `json:"field_goals_made,omitempty"`
	FieldGoalsAttempted *float64 `json:"field_goals_attempted,omitempty"`
	FieldGoalPct        *float64 `json:"field_goal_pct,omitempty"`
	ThreesMade          *float64 `json:"three_pointers_made,omitempty"`
	ThreesAttempted     *float64 `json:"three_pointers_attempted,omitempty"`
	ThreePct            *float64 `json:"three_point_pct,omitempty"`
	TwosMade            *float64 `json:"two_pointers_made,omitempty"`
	TwosAttempted       *float64 `json:"two_pointers_attempted,omitempty"`
	TwoPct              *float64 `json:"two_point_pct,omitempty"`
	EffectiveFGPct      *float64 `json:"effective_fg_pct,omitempty"`
	FreeThrowsMade      *float64 `json:"free_throws_made,omitempty"`
	FreeThrowsAttempted *float64 `json:"free_throws_attempted,omitempty"`
	FreeThrowPct        *float64 `json:"free_throw_pct,omitempty"`

	OffensiveRebounds *float64 `json:"offensive_rebounds,omitempty"`
	DefensiveRebounds *float64 `json:"defensive_rebounds,omitempty"`
	TotalRebounds     *float64 `json:"total_rebounds,omitempty"`
	Assists           *float64 `json:"assists,omitempty"`
	Steals            *float64 `json:"steals,omitempty"`
	Blocks            *float64 `json:"blocks,omitempty"`
	Turnovers         *float64 `json:"turnovers,omitempty"`
	PersonalFouls     *float64 `json:"personal_fouls,omitempty"`
	Points            *float64 `json:"points,omitempty"`

	PointsPer100   *float64 `json:"points_per_100_poss,omitempty"`
	ReboundsPer100 *float64 `json:"rebounds_per_100_poss,omitempty"`
	AssistsPer100  *float64 `json:"assists_per_100_poss,omitempty"`
}

type AdvancedStats struct {
	StatID   int64  `json:"stat_id"`
	PlayerID string `json:"player_id"`
	SeasonID string `json:"season_id"`
	TeamID   string `json:"team_id"`

	PER                 *float64 `json:"player_efficiency_rating,omitempty"`
	TrueShootingPct     *float64 `json:"true_shooting_pct,omitempty"`
	ThreeAttemptRate    *float64 `json:"three_point_attempt_rate,omitempty"`
	FreeThrowRate       *float64 `json:"free_throw_rate,omitempty"`
	OffensiveReboundPct *float64 `json:"offensive_rebound_pct,omitempty"`
	DefensiveReboundPct *float64 `json:"defensive_rebound_pct,omitempty"`
	TotalReboundPct     *float64 `json:"total_rebound_pct,omitempty"`
	AssistPct           *float64 `json:"assist_pct,omitempty"`
	StealPct            *float64 `json:"steal_pct,omitempty"`
	BlockPct            *float64 `json:"block_pct,omitempty"`
	TurnoverPct         *float64 `json:"turnover_pct,omitempty"`
	UsagePct            *float64 `json:"usage_pct,omitempty"`
	OffensiveWinShares  *float64 `json:"offensive_win_shares,omitempty"`
	DefensiveWinShares  *float64 `json:"defensive_win_shares,omitempty"`
	WinShares           *float64 `json:"win_shares,omitempty"`
	WinSharesPer48      *float64 `json:"win_shares_per_48,omitempty"`
	OffensiveBPM        *float64 `json:"offensive_box_plus_minus,omitempty"`
	DefensiveBPM        *float64 `json:"defensive_box_plus_minus,omitempty"`
	BoxPlusMinus        *float64 `json:"box_plus_minus,omitempty"`
	VORP                *float64 `json:"value_over_replacement,omitempty"`
	OffensiveRating     *float64 `json:"offensive_rating,omitempty"`
	DefensiveRating     *float64 `json:"defensive_rating,omitempty"`
	NetRating           *float64 `json:"net_rating,omitempty"`
}

// ShootingStats breaks a season's field goal attempts down by distance and type.
type ShootingStats struct {
	StatID   int64  `json:"stat_id"`
	PlayerID string `json:"player_id"`
	SeasonID string `json:"season_id"`
	TeamID   string `json:"team_id"`

	AvgDistance *float64 `json:"avg_dist_fga,omitempty"`

	PctFGA2P     *float64 `json:"pct_fga_2pt,omitempty"`
	PctFGA0To3   *float64 `json:"pct_fga_0_3,omitempty"`
	PctFGA3To10  *float64 `json:"pct_fga_3_10,omitempty"`
	PctFGA10To16 *float64 `json:"pct_fga_10_16,omitempty"`
	PctFGA16To3P *float64 `json:"pct_fga_16_3pt,omitempty"`
	PctFGA3P     *float64 `json:"pct_fga_3pt,omitempty"`

	FGPct2P     *float64 `json:"fg_pct_2pt,omitempty"`
	FGPct0To3   *float64 `json:"fg_pct_at_rim,omitempty"`
	FGPct3To10  *float64 `json:"fg_pct_3_10,omitempty"`
	FGPct10To16 *float64 `json:"fg_pct_10_16,omitempty"`
	FGPct16To3P *float64 `json:"fg_pct_16_3pt,omitempty"`
	FGPct3P     *float64 `json:"fg_pct_3pt,omitempty"`

	PctAssisted2P *float64 `json:"pct_fg_assisted_2pt,omitempty"`
	PctAssisted3P *float64 `json:"pct_fg_assisted_3pt,omitempty"`

	Dunks          *float64 `json:"dunks,omitempty"`
	PctFGADunks    *float64 `json:"pct_fga_dunks,omitempty"`
	Corner3Pct     *float64 `json:"corner_3_pct,omitempty"`
	Corner3Att     *float64 `json:"corner_3_attempts,omitempty"`
	HeavesAttempts *float64 `json:"heaves_attempted,omitempty"`
	HeavesMade     *float64 `json:"heaves_made,omitempty"`
}

type PlayByPlayStats struct {
	StatID   int64  `json:"stat_id"`
	PlayerID string `json:"player_id"`
	SeasonID string `json:"season_id"`
	TeamID   string `json:"team_id"`

	PctPG *float64 `json:"pct_pg,omitempty"`
	PctSG *float64 `json:"pct_sg,omitempty"`
	PctSF *float64 `json:"pct_sf,omitempty"`
	PctPF *float64 `json:"pct_pf,omitempty"`
	PctC  *float64 `json:"pct_c,omitempty"`

	PlusMinusOn  *float64 `json:"plus_minus_on,omitempty"`
	PlusMinusOff *float64 `json:"plus_minus_off,omitempty"`
	NetRatingOn  *float64 `json:"net_rating_on,omitempty"`
	NetRatingOff *float64 `json:"net_rating_off,omitempty"`

	BadPassTurnovers   *float64 `json:"bad_pass_turnovers,omitempty"`
	LostBallTurnovers  *float64 `json:"lost_ball_turnovers,omitempty"`
	ShootingFouls      *float64 `json:"shooting_fouls_committed,omitempty"`
	OffensiveFouls     *float64 `json:"offensive_fouls_committed,omitempty"`
	ShootingFoulsDrawn *float64 `json:"shooting_fouls_drawn,omitempty"`
	AndOnes            *float64 `json:"and_one_attempts,omitempty"`
	BlockedAttempts    *float64 `json:"blocked_field_goal_attempts,omitempty"`
}

// AdjustedShooting compares a season's shooting with the league average; the
// "plus" fields are indexed so that 100 is average.
type AdjustedShooting struct {
	PlayerID string  `json:"player_id"`
	SeasonID string  `json:"season_id"`
	TeamID   string  `json:"team_id"`
	League   *string `json:"league,omitempty"`

	FGMade      *float64 `json:"fg_made,omitempty"`
	FGAttempted *float64 `json:"fg_attempted,omitempty"`
	FGPct       *float64 `json:"fg_pct,omitempty"`
	FG2Made     *float64 `json:"fg2_made,omitempty"`
	FG2Att      *float64 `json:"fg2_attempted,omitempty"`
	FG2Pct      *float64 `json:"fg2_pct,omitempty"`
	FG3Made     *float64 `json:"fg3_made,omitempty"`
	FG3Att      *float64 `json:"fg3_attempted,omitempty"`
	FG3Pct      *float64 `json:"fg3_pct,omitempty"`
	EFGPct      *float64 `json:"efg_pct,omitempty"`
	FTMade      *float64 `json:"ft_made,omitempty"`
	FTAttempted *float64 `json:"ft_attempted,omitempty"`
	FTPct       *float64 `json:"ft_pct,omitempty"`
	TSPct       *float64 `json:"ts_pct,omitempty"`
	FTRate      *float64 `json:"ft_rate,omitempty"`
	FG3Rate     *float64 `json:"fg3_rate,omitempty"`

	FGPlus      *float64 `json:"fg_plus,omitempty"`
	FG2Plus     *float64 `json:"fg2_plus,omitempty"`
	FG3Plus     *float64 `json:"fg3_plus,omitempty"`
	EFGPlus     *float64 `json:"efg_plus,omitempty"`
	FTPlus      *float64 `json:"ft_plus,omitempty"`
	TSPlus      *float64 `json:"ts_plus,omitempty"`
	FTRatePlus  *float64 `json:"ft_rate_plus,omitempty"`
	FG3RatePlus *float64 `json:"fg3_rate_plus,omitempty"`
}

// GameLog is one game in a player's season.
type GameLog struct {
	GameID         string  `json:"game_id"`
	PlayerID       string  `json:"player_id"`
	SeasonID       string  `json:"season_id"`
	TeamID         string  `json:"team_id"`
	GameNumber     *int    `json:"game_number,omitempty"`
	GameDate       *string `json:"game_date,omitempty"`
	Age            *int    `json:"age,omitempty"`
	OpponentTeamID *string `json:"opponent_team_id,omitempty"`
	IsHome         *bool   `json:"is_home,omitempty"`
	IsWin          *bool   `json:"is_win,omitempty"`
	GameResult     *string `json:"game_result,omitempty"`
	IsStarter      *bool   `json:"is_starter,omitempty"`
	DidNotPlay     *bool   `json:"did_not_play,omitempty"`
	DNPReason      *string `json:"dnp_reason,omitempty"`

	MinutesPlayed       *float64 `json:"minutes_played,omitempty"`
	FieldGoalsMade      *float64 `json:"field_goals_made,omitempty"`
	FieldGoalsAttempted *float64 `json:"field_goals_attempted,omitempty"`
	FieldGoalPct        *float64 `json:"field_goal_pct,omitempty"`
	ThreesMade          *float64 `json:"three_pointers_made,omitempty"`
	ThreesAttempted     *float64 `json:"three_pointers_attempted,omitempty"`
	ThreePct            *float64 `json:"three_point_pct,omitempty"`
	FreeThrowsMade      *float64 `json:"free_throws_made,omitempty"`
	FreeThrowsAttempted *float64 `json:"free_throws_attempted,omitempty"`
	FreeThrowPct        *float64 `json:"free_throw_pct,omitempty"`
	OffensiveRebounds   *float64 `json:"offensive_rebounds,omitempty"`
	DefensiveRebounds   *float64 `json:"defensive_rebounds,omitempty"`
	TotalRebounds       *float64 `json:"total_rebounds,omitempty"`
	Assists             *float64 `json:"assists,omitempty"`
	Steals              *float64 `json:"steals,omitempty"`
	Blocks              *float64 `json:"blocks,omitempty"`
	Turnovers           *float64 `json:"turnovers,omitempty"`
	PersonalFouls       *float64 `json:"personal_fouls,omitempty"`
	Points              *float64 `json:"points,omitempty"`
	GameScore           *float64 `json:"game_score,omitempty"`
	PlusMinus           *float64 `json:"plus_minus,omitempty"`
}

// Split is a player's season line restricted to one bucket of a split type,
// e.g. split type "Location" with value "Home".
type Split struct {
	SplitID    int64  `json:"split_id"`
	PlayerID   string `json:"player_id"`
	SeasonID   string `json:"season_id"`
	SplitType  string `json:"split_type"`
	SplitValue string `json:"split_value"`

	Games               *int     `json:"games,omitempty"`
	Minutes             *float64 `json:"minutes,omitempty"`
	FieldGoalsMade      *float64 `json:"field_goals_made,omitempty"`
	FieldGoalsAttempted *float64 `json:"field_goals_attempted,omitempty"`
	FieldGoalPct        *float64 `json:"field_goal_pct,omitempty"`
	ThreesMade          *float64 `json:"three_pointers_made,omitempty"`
	ThreesAttempted     *float64 `json:"three_pointers_attempted,omitempty"`
	ThreePct            *float64 `json:"three_point_pct,omitempty"`
	FreeThrowsMade      *float64 `json:"free_throws_made,omitempty"`
	FreeThrowsAttempted *float64 `json:"free_throws_attempted,omitempty"`
	FreeThrowPct        *float64 `json:"free_throw_pct,omitempty"`
	Rebounds            *float64 `json:"rebounds,omitempty"`
	Assists             *float64 `json:"assists,omitempty"`
	Steals              *float64 `json:"steals,omitempty"`
	Blocks              *float64 `json:"blocks,omitempty"`
	Turnovers           *float64 `json:"turnovers,omitempty"`
	Points              *float64 `json:"points,omitempty"`
}

// Award is one voting result for a player.
type Award struct {
	AwardType       string   `json:"award_type"`
	SeasonID        string   `json:"season_id"`
	PlayerID        string   `json:"player_id"`
	PlayerName      *string  `json:"full_name,omitempty"`
	TeamID          *string  `json:"team_id,omitempty"`
	Rank            *int     `json:"rank,omitempty"`
	FirstPlaceVotes *int     `json:"first_place_votes,omitempty"`
	TotalPoints     *float64 `json:"total_points,omitempty"`
	VoteShare       *float64 `json:"vote_share,omitempty"`
}

// SearchQuery selects players either by free-text name search or by the first
// letter of the last name.
type SearchQuery struct {
	Search string
	Letter string
	Limit  int
	Offset int
}
