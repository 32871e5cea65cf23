package view

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/riskibarqy/hoops-reference/internal/domain/season"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/riskibarqy/hoops-reference/internal/domain/statview"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
)

var leaderTitles = map[string]string{
	"pts": "Points Per Game",
	"trb": "Rebounds Per Game",
	"ast": "Assists Per Game",
	"ws":  "Win Shares",
	"per": "Player Efficiency Rating",
}

func teamCard(h *htmlWriter, t team.Team) {
	h.raw(`<div class="team-card bg-white rounded shadow p-4">`)
	h.link(statview.TeamHref(t.ID), t.DisplayName())
	if t.City != nil && *t.City != "" {
		h.raw(`<p class="text-sm text-slate-500">`)
		h.text(*t.City)
		h.raw(`</p>`)
	}
	h.raw(`</div>`)
}

func HomePage(d usecase.Dashboard) templ.Component {
	return Layout("", d.Failed, component(func(h *htmlWriter) {
		h.heading("1", siteName)

		if len(d.Featured) > 0 {
			h.heading("2", "Featured Teams")
			h.raw(`<div class="featured-teams grid grid-cols-2 md:grid-cols-3 gap-4 mb-8">`)
			for _, t := range d.Featured {
				teamCard(h, t)
			}
			h.raw(`</div>`)
		}

		if d.Latest != nil {
			teams := statview.TeamsOf(d.Teams)
			h.heading("2", d.Latest.Label()+" Standings")
			conferenceTables(h, d.Standings, teams)
			leaderTables(h, d.Leaders, teams)
		}
	}))
}

func conferenceTables(h *htmlWriter, standings []season.Standing, teams statview.Teams) {
	h.table("Eastern Conference", statview.ConferenceTable(season.ConferenceEast),
		statview.ConferenceStandings(standings, season.ConferenceEast, teams))
	h.table("Western Conference", statview.ConferenceTable(season.ConferenceWest),
		statview.ConferenceStandings(standings, season.ConferenceWest, teams))
}

func leaderTables(h *htmlWriter, leaders season.Leaders, teams statview.Teams) {
	if len(leaders) == 0 {
		return
	}
	h.heading("2", "League Leaders")
	for _, cat := range season.LeaderCategories {
		list, ok := leaders[cat]
		if !ok {
			continue
		}
		h.table(leaderTitles[cat], stattable.TableLeaders, statview.LeaderBoard(list, teams))
	}
}

func TeamsPage(d usecase.TeamDirectory) templ.Component {
	return Layout("Teams", d.Failed, component(func(h *htmlWriter) {
		h.heading("1", "Teams")

		var active, defunct []team.Team
		for _, t := range d.Teams {
			if t.IsActive != nil && !*t.IsActive {
				defunct = append(defunct, t)
				continue
			}
			active = append(active, t)
		}
		teamGrid(h, "Active Franchises", active)
		teamGrid(h, "Defunct Franchises", defunct)
	}))
}

func teamGrid(h *htmlWriter, title string, teams []team.Team) {
	if len(teams) == 0 {
		return
	}
	h.heading("2", title)
	h.raw(`<div class="team-grid grid grid-cols-2 md:grid-cols-4 gap-4 mb-8">`)
	for _, t := range teams {
		teamCard(h, t)
	}
	h.raw(`</div>`)
}

func TeamPage(d usecase.TeamDetail) templ.Component {
	t := d.Team
	return Layout(t.DisplayName(), d.Failed, component(func(h *htmlWriter) {
		h.raw(`<div class="team-header mb-6">`)
		h.heading("1", t.DisplayName())
		if t.Arena != nil && *t.Arena != "" {
			h.raw(`<p class="text-sm">Arena: `)
			h.text(*t.Arena)
			h.raw(`</p>`)
		}
		if t.Championships != nil {
			h.raw(`<p class="text-sm">Championships: ` + strconv.Itoa(*t.Championships) + `</p>`)
		}
		h.raw(`</div>`)

		teams := statview.TeamsOf(d.Teams)
		h.table("Roster", stattable.TableRoster, statview.Roster(d.Roster))
		h.table("Schedule & Results", stattable.TableGames, statview.Schedule(d.Games, t.ID, teams))
		h.table("Team Per Game", stattable.TableTeamPerGame, statview.TeamPerGame(d.Stats))
		h.table("Team Totals", stattable.TableTeamTotals, statview.TeamTotals(d.Stats))
		h.table("Team Advanced", stattable.TableTeamAdvanced, statview.TeamAdvanced(d.Stats))
	}))
}
