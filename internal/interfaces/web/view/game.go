package view

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/riskibarqy/hoops-reference/internal/domain/game"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/riskibarqy/hoops-reference/internal/domain/statview"
	"github.com/riskibarqy/hoops-reference/internal/domain/team"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
)

func ScoreboardPage(p usecase.ScoreboardPage) templ.Component {
	title := "Recent Games"
	if p.Date != "" {
		title = "Games on " + p.Date
	}

	return Layout(title, p.Failed, component(func(h *htmlWriter) {
		h.heading("1", title)
		h.raw(`<form class="mb-4" action="/games" method="get"><input type="date" name="date" value="`)
		h.text(p.Date)
		h.raw(`" class="border px-2 py-1 rounded"> <button type="submit" class="bg-orange-600 text-white px-3 py-1 rounded">Go</button></form>`)
		h.table("", stattable.TableScoreboard, statview.Scoreboard(p.Games, statview.TeamsOf(p.Teams)))
	}))
}

func BoxScorePage(p usecase.BoxScorePage) templ.Component {
	g := p.Game
	title := p.Away.DisplayName() + " at " + p.Home.DisplayName()
	if g.GameDate != nil {
		title += ", " + *g.GameDate
	}

	return Layout(title, p.Failed, component(func(h *htmlWriter) {
		h.heading("1", title)

		teams := statview.TeamsOf(append([]team.Team{p.Home, p.Away}, p.Teams...))
		h.render(TitledTable("Line Score", statview.LineScoreSchema(g), statview.LineScore(g, teams)))
		h.table("Four Factors", stattable.TableFourFactors, statview.FourFactors(g, p.Lines, teams))
		if p.TeamStats != nil {
			h.table("Team Stats", stattable.TableTeamGameStats, statview.TeamGameStats(g, *p.TeamStats, teams))
			gameFlow(h, *p.TeamStats)
		}

		for _, side := range []team.Team{p.Away, p.Home} {
			lines := statview.LinesForTeam(p.Lines, side.ID)
			h.table(side.DisplayName()+" Basic Box Score Stats", stattable.TableBoxBasic, statview.BoxScoreBasic(lines))
			h.table(side.DisplayName()+" Advanced Box Score Stats", stattable.TableBoxAdvanced, statview.BoxScoreAdvanced(lines))
		}
	}))
}

func gameFlow(h *htmlWriter, s game.TeamGameStats) {
	if s.LeadChanges == nil && s.TimesTied == nil {
		return
	}
	h.raw(`<p class="game-flow mb-6 text-sm">`)
	if s.LeadChanges != nil {
		h.text("Lead changes: " + strconv.Itoa(*s.LeadChanges))
	}
	if s.LeadChanges != nil && s.TimesTied != nil {
		h.text(", ")
	}
	if s.TimesTied != nil {
		h.text("Times tied: " + strconv.Itoa(*s.TimesTied))
	}
	h.raw(`</p>`)
}
