package season

import (
	"fmt"

	"github.com/riskibarqy/hoops-reference/internal/domain/team"
)

// Season is one league year, e.g. 2023-24.
type Season struct {
	ID             string  `json:"season_id"`
	League         *string `json:"league,omitempty"`
	StartYear      *int    `json:"start_year,omitempty"`
	EndYear        *int    `json:"end_year,omitempty"`
	ChampionTeamID *string `json:"champion_team_id,omitempty"`
	FinalsMVPID    *string `json:"finals_mvp_player_id,omitempty"`
	MVPID          *string `json:"mvp_player_id,omitempty"`
	ROYID          *string `json:"roy_player_id,omitempty"`
	DPOYID         *string `json:"dpoy_player_id,omitempty"`
	SixthManID     *string `json:"sixth_man_player_id,omitempty"`
	MIPID          *string `json:"mip_player_id,omitempty"`
	SalaryCap      *int64  `json:"salary_cap,omitempty"`
	LuxuryTaxLine  *int64  `json:"luxury_tax_threshold,omitempty"`
	NumTeams       *int    `json:"num_teams,omitempty"`
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}

	return nil
}

// Label renders the season as "2023-24" when both years are known.
func (s Season) Label() string {
	if s.StartYear == nil || s.EndYear == nil {
		return s.ID
	}
	return fmt.Sprintf("%d-%02d", *s.StartYear, *s.EndYear%100)
}

// Standing is a team's season line joined with its names and alignment.
type Standing struct {
	team.SeasonStats
	FullName     *string `json:"full_name,omitempty"`
	Abbreviation *string `json:"abbreviation,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
	Conference   *string `json:"conference,omitempty"`
	Division     *string `json:"division,omitempty"`
}

// Conference names as reported upstream; both long and short spellings occur.
const (
	ConferenceEast = "East"
	ConferenceWest = "West"
)

// InConference matches "East"/"Eastern" style spellings.
func (s Standing) InConference(conf string) bool {
	if s.Conference == nil {
		return false
	}
	c := *s.Conference
	switch conf {
	case ConferenceEast:
		return c == "East" || c == "Eastern"
	case ConferenceWest:
		return c == "West" || c == "Western"
	}
	return c == conf
}

// Leader is one entry of a statistical leaderboard.
type Leader struct {
	PlayerID    string   `json:"player_id"`
	FullName    string   `json:"full_name"`
	HeadshotURL *string  `json:"headshot_url,omitempty"`
	TeamID      *string  `json:"team_id,omitempty"`
	Value       *float64 `json:"value,omitempty"`
}

// Leaders maps a stat category such as "pts" to its ranked leaders.
type Leaders map[string][]Leader

// LeaderCategories lists the categories the season page shows, in order.
var LeaderCategories = []string{"pts", "trb", "ast", "ws", "per"}

// PlayoffSeries is a completed best-of series.
type PlayoffSeries struct {
	SeasonID     string  `json:"season_id"`
	RoundNumber  *int    `json:"round_number,omitempty"`
	RoundName    *string `json:"round_name,omitempty"`
	WinnerTeamID *string `json:"winner_team_id,omitempty"`
	LoserTeamID  *string `json:"loser_team_id,omitempty"`
	WinnerWins   *int    `json:"winner_wins,omitempty"`
	LoserWins    *int    `json:"loser_wins,omitempty"`
}
