package game

import "fmt"

// Game is a scheduled or completed game with its line score.
type Game struct {
	ID            string  `json:"game_id"`
	SeasonID      string  `json:"season_id"`
	GameDate      *string `json:"game_date,omitempty"`
	GameTime      *string `json:"game_time,omitempty"`
	GameType      *string `json:"game_type,omitempty"`
	HomeTeamID    string  `json:"home_team_id"`
	AwayTeamID    string  `json:"away_team_id"`
	HomeScore     *int    `json:"home_team_score,omitempty"`
	AwayScore     *int    `json:"away_team_score,omitempty"`
	Arena         *string `json:"arena,omitempty"`
	Attendance    *int    `json:"attendance,omitempty"`
	PlayoffRound  *string `json:"playoff_round,omitempty"`
	WinnerTeamID  *string `json:"winner_team_id,omitempty"`
	DurationMins  *int    `json:"game_duration_minutes,omitempty"`
	SeriesGameNum *int    `json:"series_game_number,omitempty"`

	HomeQ1  *int `json:"home_q1,omitempty"`
	HomeQ2  *int `json:"home_q2,omitempty"`
	HomeQ3  *int `json:"home_q3,omitempty"`
	HomeQ4  *int `json:"home_q4,omitempty"`
	HomeOT1 *int `json:"home_ot1,omitempty"`
	HomeOT2 *int `json:"home_ot2,omitempty"`
	HomeOT3 *int `json:"home_ot3,omitempty"`
	HomeOT4 *int `json:"home_ot4,omitempty"`
	AwayQ1  *int `json:"away_q1,omitempty"`
	AwayQ2  *int `json:"away_q2,omitempty"`
	AwayQ3  *int `json:"away_q3,omitempty"`
	AwayQ4  *int `json:"away_q4,omitempty"`
	AwayOT1 *int `json:"away_ot1,omitempty"`
	AwayOT2 *int `json:"away_ot2,omitempty"`
	AwayOT3 *int `json:"away_ot3,omitempty"`
	AwayOT4 *int `json:"away_ot4,omitempty"`
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if g.HomeTeamID == "" || g.AwayTeamID == "" {
		return fmt.Errorf("game teams are required")
	}

	return nil
}

// Final reports whether both scores are known.
func (g Game) Final() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Overtimes counts the overtime periods with a recorded score for either side.
func (g Game) Overtimes() int {
	periods := [][2]*int{
		{g.HomeOT1, g.AwayOT1},
		{g.HomeOT2, g.AwayOT2},
		{g.HomeOT3, g.AwayOT3},
		{g.HomeOT4, g.AwayOT4},
	}
	n := 0
	for i, p := range periods {
		if p[0] != nil || p[1] != nil {
			n = i + 1
		}
	}
	return n
}

// BoxScoreLine is one player's line in one game, joined with display names.
type BoxScoreLine struct {
	BoxScoreID int64   `json:"box_score_id"`
	GameID     string  `json:"game_id"`
	PlayerID   string  `json:"player_id"`
	TeamID     string  `json:"team_id"`
	IsStarter  *bool   `json:"is_starter,omitempty"`
	DidNotPlay *bool   `json:"did_not_play,omitempty"`
	DNPReason  *string `json:"dnp_reason,omitempty"`

	MinutesPlayed       *float64 `json:"minutes_played,omitempty"`
	FieldGoalsMade      *float64 `json:"field_goals_made,omitempty"`
	FieldGoalsAttempted *float64 `json:"field_goals_attempted,omitempty"`
	ThreesMade          *float64 `json:"three_pointers_made,omitempty"`
	ThreesAttempted     *float64 `json:"three_pointers_attempted,omitempty"`
	FreeThrowsMade      *float64 `json:"free_throws_made,omitempty"`
	FreeThrowsAttempted *float64 `json:"free_throws_attempted,omitempty"`
	OffensiveRebounds   *float64 `json:"offensive_rebounds,omitempty"`
	DefensiveRebounds   *float64 `json:"defensive_rebounds,omitempty"`
	TotalRebounds       *float64 `json:"total_rebounds,omitempty"`
	Assists             *float64 `json:"assists,omitempty"`
	Steals              *float64 `json:"steals,omitempty"`
	Blocks              *float64 `json:"blocks,omitempty"`
	Turnovers           *float64 `json:"turnovers,omitempty"`
	PersonalFouls       *float64 `json:"personal_fouls,omitempty"`
	Points              *float64 `json:"points,omitempty"`
	PlusMinus           *float64 `json:"plus_minus,omitempty"`
	GameScore           *float64 `json:"game_score,omitempty"`

	FullName         *string `json:"full_name,omitempty"`
	HeadshotURL      *string `json:"headshot_url,omitempty"`
	TeamAbbreviation *string `json:"team_abbreviation,omitempty"`
	TeamName         *string `json:"team_name,omitempty"`
}

// Filter narrows a game listing. Zero fields are not sent.
type Filter struct {
	Date   string
	TeamID string
	Limit  int
	Offset int
}

// TeamGameStats holds the team-level extras of a finished game, paired by
// home and away side. Lead changes and times tied belong to the game.
type TeamGameStats struct {
	GameID string `json:"game_id"`

	PaintPointsHome        *int `json:"pts_paint_home,omitempty"`
	SecondChancePointsHome *int `json:"pts_2nd_chance_home,omitempty"`
	FastBreakPointsHome    *int `json:"pts_fb_home,omitempty"`
	PointsOffTurnoversHome *int `json:"pts_off_to_home,omitempty"`
	LargestLeadHome        *int `json:"largest_lead_home,omitempty"`
	TeamReboundsHome       *int `json:"team_rebounds_home,omitempty"`
	TeamTurnoversHome      *int `json:"team_turnovers_home,omitempty"`
	TotalTurnoversHome     *int `json:"total_turnovers_home,omitempty"`

	PaintPointsAway        *int `json:"pts_paint_away,omitempty"`
	SecondChancePointsAway *int `json:"pts_2nd_chance_away,omitempty"`
	FastBreakPointsAway    *int `json:"pts_fb_away,omitempty"`
	PointsOffTurnoversAway *int `json:"pts_off_to_away,omitempty"`
	LargestLeadAway        *int `json:"largest_lead_away,omitempty"`
	TeamReboundsAway       *int `json:"team_rebounds_away,omitempty"`
	TeamTurnoversAway      *int `json:"team_turnovers_away,omitempty"`
	TotalTurnoversAway     *int `json:"total_turnovers_away,omitempty"`

	LeadChanges *int `json:"lead_changes,omitempty"`
	TimesTied   *int `json:"times_tied,omitempty"`
}

// TeamSide is one team's half of TeamGameStats.
type TeamSide struct {
	PaintPoints        *int
	SecondChancePoints *int
	FastBreakPoints    *int
	PointsOffTurnovers *int
	LargestLead        *int
	TeamRebounds       *int
	TeamTurnovers      *int
	TotalTurnovers     *int
}

func (s TeamGameStats) Home() TeamSide {
	return TeamSide{
		PaintPoints:        s.PaintPointsHome,
		SecondChancePoints: s.SecondChancePointsHome,
		FastBreakPoints:    s.FastBreakPointsHome,
		PointsOffTurnovers: s.PointsOffTurnoversHome,
		LargestLead:        s.LargestLeadHome,
		TeamRebounds:       s.TeamReboundsHome,
		TeamTurnovers:      s.TeamTurnoversHome,
		TotalTurnovers:     s.TotalTurnoversHome,
	}
}

func (s TeamGameStats) Away() TeamSide {
	return TeamSide{
		PaintPoints:        s.PaintPointsAway,
		SecondChancePoints: s.SecondChancePointsAway,
		FastBreakPoints:    s.FastBreakPointsAway,
		PointsOffTurnovers: s.PointsOffTurnoversAway,
		LargestLead:        s.LargestLeadAway,
		TeamRebounds:       s.TeamReboundsAway,
		TeamTurnovers:      s.TeamTurnoversAway,
		TotalTurnovers:     s.TotalTurnoversAway,
	}
}
