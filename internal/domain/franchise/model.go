package franchise

// Franchise is the lineage of a club across relocations and renames.
type Franchise struct {
	ID                 string  `json:"franchise_id"`
	CurrentTeamID      *string `json:"current_team_id,omitempty"`
	OriginalName       *string `json:"original_name,omitempty"`
	CurrentName        *string `json:"current_name,omitempty"`
	FoundedYear        *int    `json:"founded_year,omitempty"`
	TotalChampionships *int    `json:"total_championships,omitempty"`
	TotalSeasons       *int    `json:"total_seasons,omitempty"`
	TotalWins          *int    `json:"total_wins,omitempty"`
	TotalLosses        *int    `json:"total_losses,omitempty"`
}

// Name prefers the current name over the original one.
func (f Franchise) Name() string {
	if f.CurrentName != nil && *f.CurrentName != "" {
		return *f.CurrentName
	}
	if f.OriginalName != nil && *f.OriginalName != "" {
		return *f.OriginalName
	}
	return f.ID
}
