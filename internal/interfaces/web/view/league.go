package view

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/riskibarqy/hoops-reference/internal/domain/statview"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
)

func SeasonsPage(p usecase.SeasonIndex) templ.Component {
	return Layout("Seasons", p.Failed, component(func(h *htmlWriter) {
		h.heading("1", "Seasons")
		h.raw(`<ul class="season-list grid grid-cols-2 md:grid-cols-6 gap-2">`)
		for _, s := range p.Seasons {
			h.raw(`<li>`)
			h.link(statview.SeasonHref(s.ID), s.Label())
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	}))
}

func SeasonPage(p usecase.SeasonDetail) templ.Component {
	title := p.Season.Label() + " Season Summary"

	return Layout(title, p.Failed, component(func(h *htmlWriter) {
		h.heading("1", title)
		teams := statview.TeamsOf(p.Teams)
		if p.Season.ChampionTeamID != nil {
			h.raw(`<p class="mb-4">Champion: `)
			h.link(statview.TeamHref(*p.Season.ChampionTeamID), teamLabel(teams, *p.Season.ChampionTeamID))
			h.raw(`</p>`)
		}

		conferenceTables(h, p.Standings, teams)
		for _, div := range statview.Divisions {
			rows := statview.DivisionStandings(p.Standings, div, teams)
			if len(rows) == 0 {
				continue
			}
			id, _ := statview.DivisionTable(div)
			h.table(div+" Division", id, rows)
		}

		league := statview.LeagueStandings(p.Standings, teams)
		h.table("League Standings", stattable.TableStandingsRegular, league)
		h.table("Expanded Standings", stattable.TableStandingsExpanded, league)

		leaderTables(h, p.Leaders, teams)
		if len(p.Playoffs) > 0 {
			h.table("Playoff Series", stattable.TablePlayoffSeries, statview.PlayoffSeries(p.Playoffs, teams))
		}
		if len(p.Awards) > 0 {
			h.table("Award Voting", stattable.TableAwards, statview.Awards(p.Awards, teams))
		}
	}))
}

func teamLabel(teams statview.Teams, id string) string {
	if v, ok := teams[id]; ok && v != "" {
		return v
	}
	return id
}

func DraftPage(p usecase.DraftClass) templ.Component {
	title := strconv.Itoa(p.Year) + " NBA Draft"

	return Layout(title, p.Failed, component(func(h *htmlWriter) {
		h.heading("1", title)
		h.raw(`<form class="mb-4" action="/draft" method="get"><input type="number" name="year" min="1947" value="` + strconv.Itoa(p.Year) + `" class="border px-2 py-1 rounded"> <button type="submit" class="bg-orange-600 text-white px-3 py-1 rounded">Go</button></form>`)
		h.table("", stattable.TableDraft, statview.Draft(p.Picks, statview.TeamsOf(p.Teams)))
	}))
}

func ContractsPage(p usecase.ContractList) templ.Component {
	return Layout("Player Contracts", p.Failed, component(func(h *htmlWriter) {
		h.heading("1", "Player Contracts")
		h.table("", stattable.TableContracts, statview.Contracts(p.Contracts, statview.TeamsOf(p.Teams)))
	}))
}

func FranchisesPage(p usecase.FranchiseList) templ.Component {
	return Layout("Franchises", p.Failed, component(func(h *htmlWriter) {
		h.heading("1", "Franchise Index")
		h.table("", stattable.TableFranchises, statview.Franchises(p.Franchises))
	}))
}
