package statview

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
)

// TotalTeamID marks a combined line for a player who played for several teams.
const TotalTeamID = "TOT"

func SeasonHref(seasonID string) string { return "/leagues/" + seasonID }

func TeamHref(teamID string) string { return "/teams/" + teamID }

func PlayerHref(playerID string) string { return "/players/" + playerID }

func GameHref(gameID string) string { return "/boxscores/" + gameID }

// Teams resolves team ids to the label shown in team columns.
type Teams map[string]string

// TeamsOf indexes teams by id, labelled with their abbreviation.
func TeamsOf(list []team.Team) Teams {
	out := make(Teams, len(list))
	for _, t := range list {
		label := t.Abbreviation
		if label == "" {
			label = t.ID
		}
		out[t.ID] = label
	}
	return out
}

func (t Teams) label(id string) string {
	if v, ok := t[id]; ok && v != "" {
		return v
	}
	return id
}

func seasonCell(seasonID string) stattable.Cell {
	if seasonID == "" {
		return stattable.Blank()
	}
	return stattable.Link(SeasonHref(seasonID), seasonID)
}

// teamCell links to the team page; the combined TOT line stays plain text.
func teamCell(teamID string, teams Teams) stattable.Cell {
	switch teamID {
	case "":
		return stattable.Blank()
	case TotalTeamID:
		return stattable.Text(TotalTeamID)
	}
	return stattable.Link(TeamHref(teamID), teams.label(teamID))
}

func teamRefCell(teamID *string, teams Teams) stattable.Cell {
	if teamID == nil {
		return stattable.Blank()
	}
	return teamCell(*teamID, teams)
}

func playerCell(playerID, name string) stattable.Cell {
	if name == "" {
		name = playerID
	}
	if playerID == "" {
		return stattable.Text(name)
	}
	return stattable.Link(PlayerHref(playerID), name)
}

func num[T int | int64 | float64](v *T) stattable.Cell {
	return stattable.NumberOf(v)
}

func text(s *string) stattable.Cell {
	return stattable.TextOf(s)
}

func deref[T int | int64 | float64](v *T) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return float64(*v), true
}

// perGame divides a counting stat by games played. No games, or no stat,
// yields zero.
func perGame(v *float64, games int) stattable.Cell {
	if games <= 0 || v == nil || *v == 0 {
		return stattable.Number(0)
	}
	return stattable.Number(*v / float64(games))
}

// per36 scales a counting stat to 36 minutes. Non-positive minutes, or no
// stat, yields zero.
func per36(v *float64, minutes float64) stattable.Cell {
	if minutes <= 0 || v == nil || *v == 0 {
		return stattable.Number(0)
	}
	return stattable.Number(*v * 36 / minutes)
}

// pctOr passes a provider percentage through, or computes made/att when the
// provider left it out.
func pctOr(pct, made, att *float64) stattable.Cell {
	if pct != nil {
		return stattable.Number(*pct)
	}
	m, okM := deref(made)
	a, okA := deref(att)
	if !okM || !okA {
		return stattable.Blank()
	}
	return ratioCell(ShootingPct(m, a))
}

func ratioCell(v float64, ok bool) stattable.Cell {
	if !ok {
		return stattable.Blank()
	}
	return stattable.Number(v)
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate reads the date formats the stats API emits. Unparseable input is
// returned as ok=false.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateCell renders a parsed date, falling back to the raw text.
func dateCell(s *string) stattable.Cell {
	if s == nil || *s == "" {
		return stattable.Blank()
	}
	if t, ok := ParseDate(*s); ok {
		return stattable.Date(t)
	}
	return stattable.Text(*s)
}

func intText(v *int) stattable.Cell {
	if v == nil {
		return stattable.Blank()
	}
	return stattable.Text(fmt.Sprintf("%d", *v))
}

func boolInt(v *bool) stattable.Cell {
	if v == nil {
		return stattable.Blank()
	}
	if *v {
		return stattable.Number(1)
	}
	return stattable.Number(0)
}
