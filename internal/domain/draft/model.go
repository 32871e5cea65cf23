package draft

// Pick is one selection in a draft class. The stats API tracks only a handful
// of career totals per pick.
type Pick struct {
	PickID          int      `json:"pick_id"`
	DraftYear       int      `json:"draft_year"`
	Round           *int     `json:"round,omitempty"`
	PickNumber      *int     `json:"pick_number,omitempty"`
	OverallPick     *int     `json:"overall_pick,omitempty"`
	PlayerID        *string  `json:"player_id,omitempty"`
	PlayerName      string   `json:"player_name"`
	TeamID          *string  `json:"team_id,omitempty"`
	College         *string  `json:"college,omitempty"`
	Nationality     *string  `json:"nationality,omitempty"`
	CareerGames     *int     `json:"career_games,omitempty"`
	CareerPoints    *float64 `json:"career_points,omitempty"`
	CareerWinShares *float64 `json:"career_win_shares,omitempty"`
	CareerVORP      *float64 `json:"career_vorp,omitempty"`
}

// DefaultYear is the draft class shown when no year is chosen.
const DefaultYear = 2023
