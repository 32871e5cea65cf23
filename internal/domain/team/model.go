package team

import "fmt"

// Team is a franchise's identity for a span of seasons.
type Team struct {
	ID            string  `json:"team_id"`
	FranchiseID   *string `json:"franchise_id,omitempty"`
	FullName      string  `json:"full_name"`
	Abbreviation  string  `json:"abbreviation"`
	Nickname      *string `json:"nickname,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	Arena         *string `json:"arena,omitempty"`
	ArenaCapacity *int    `json:"arena_capacity,omitempty"`
	FoundedYear   *int    `json:"founded_year,omitempty"`
	League        *string `json:"league,omitempty"`
	Conference    *string `json:"conference,omitempty"`
	Division      *string `json:"division,omitempty"`
	LogoURL       *string `json:"logo_url,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	Championships *int    `json:"championships,omitempty"`
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.FullName == "" {
		return fmt.Errorf("team full name is required")
	}

	return nil
}

// DisplayName prefers the full name and falls back to the abbreviation, then the id.
func (t Team) DisplayName() string {
	switch {
	case t.FullName != "":
		return t.FullName
	case t.Abbreviation != "":
		return t.Abbreviation
	default:
		return t.ID
	}
}

// SeasonStats is a team's record, ratings and box score totals for one season.
type SeasonStats struct {
	StatID     int64   `json:"stat_id"`
	TeamID     string  `json:"team_id"`
	SeasonID   string  `json:"season_id"`
	League     *string `json:"league,omitempty"`
	SeasonType *string `json:"season_type,omitempty"`

	Wins             *int     `json:"wins,omitempty"`
	Losses           *int     `json:"losses,omitempty"`
	WinPct           *float64 `json:"win_pct,omitempty"`
	GamesBehind      *float64 `json:"games_behind,omitempty"`
	ConferenceRank   *int     `json:"conference_rank,omitempty"`
	DivisionRank     *int     `json:"division_rank,omitempty"`
	PlayoffSeed      *int     `json:"playoff_seed,omitempty"`
	CurrentStreak    *string  `json:"current_streak,omitempty"`
	PointsPerGame    *float64 `json:"points_per_game,omitempty"`
	OppPointsPerGame *float64 `json:"opponent_points_per_game,omitempty"`
	PointDiff        *float64 `json:"point_differential,omitempty"`
	Pace             *float64 `json:"pace,omitempty"`
	OffensiveRating  *float64 `json:"offensive_rating,omitempty"`
	DefensiveRating  *float64 `json:"defensive_rating,omitempty"`
	NetRating        *float64 `json:"net_rating,omitempty"`
	PythagoreanWins  *float64 `json:"pythagorean_wins,omitempty"`
	SOS              *float64 `json:"strength_of_schedule,omitempty"`
	SRS              *float64 `json:"simple_rating_system,omitempty"`

	EffectiveFGPct    *float64 `json:"effective_fg_pct,omitempty"`
	TrueShootingPct   *float64 `json:"true_shooting_pct,omitempty"`
	OffReboundPct     *float64 `json:"offensive_rebound_pct,omitempty"`
	DefReboundPct     *float64 `json:"defensive_rebound_pct,omitempty"`
	TurnoverPct       *float64 `json:"turnover_pct,omitempty"`
	FreeThrowRate     *float64 `json:"free_throw_rate,omitempty"`
	ThreeAttemptRate  *float64 `json:"three_point_attempt_rate,omitempty"`
	OppEffectiveFGPct *float64 `json:"opponent_effective_fg_pct,omitempty"`
	OppTurnoverPct    *float64 `json:"opponent_turnover_pct,omitempty"`
	OppDefReboundPct  *float64 `json:"opponent_defensive_rebound_pct,omitempty"`
	OppFreeThrowRate  *float64 `json:"opponent_free_throw_rate,omitempty"`
	Attendance        *int     `json:"attendance,omitempty"`
	AttendancePerGame *int     `json:"attendance_per_game,omitempty"`

	GamesPlayed         *int     `json:"games_played,omitempty"`
	MinutesPlayed       *float64 `json:"minutes_played,omitempty"`
	FieldGoalsMade      *float64 `json:"field_goals_made,omitempty"`
	FieldGoalsAttempted *float64 `json:"field_goals_attempted,omitempty"`
	FieldGoalPct        *float64 `json:"field_goal_pct,omitempty"`
	ThreesMade          *float64 `json:"three_pointers_made,omitempty"`
	ThreesAttempted     *float64 `json:"three_pointers_attempted,omitempty"`
	ThreePct            *float64 `json:"three_point_pct,omitempty"`
	TwosMade            *float64 `json:"two_pointers_made,omitempty"`
	TwosAttempted       *float64 `json:"two_pointers_attempted,omitempty"`
	TwoPct              *float64 `json:"two_point_pct,omitempty"`
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
}

// Games is the number of games the line covers: games played when reported,
// otherwise wins plus losses.
func (s SeasonStats) Games() int {
	if s.GamesPlayed != nil {
		return *s.GamesPlayed
	}
	var n int
	if s.Wins != nil {
		n += *s.Wins
	}
	if s.Losses != nil {
		n += *s.Losses
	}
	return n
}
