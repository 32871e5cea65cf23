package view

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/riskibarqy/hoops-reference/internal/domain/statview"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func PlayersPage(p usecase.PlayerSearchPage) templ.Component {
	title := "Players: " + p.Letter
	if p.Search != "" {
		title = "Player search: " + p.Search
	}

	return Layout(title, p.Failed, component(func(h *htmlWriter) {
		h.heading("1", title)

		h.raw(`<div class="letter-nav flex flex-wrap gap-2 mb-4">`)
		for _, r := range letters {
			l := string(r)
			if p.Search == "" && l == p.Letter {
				h.raw(`<strong class="px-2">` + l + `</strong>`)
				continue
			}
			h.raw(`<a class="px-2 text-blue-700 hover:underline" href="/players?letter=` + l + `">` + l + `</a>`)
		}
		h.raw(`</div>`)

		h.table("", stattable.TablePlayersIndex, statview.PlayerIndex(p.Players))

		h.raw(`<div class="pager flex gap-4">`)
		if p.Page > 1 {
			h.link(playersPageHref(p, p.Page-1), "Previous page")
		}
		if p.HasNext {
			h.link(playersPageHref(p, p.Page+1), "Next page")
		}
		h.raw(`</div>`)
	}))
}

func playersPageHref(p usecase.PlayerSearchPage, page int) string {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	} else {
		q.Set("letter", p.Letter)
	}
	q.Set("page", strconv.Itoa(page))
	return "/players?" + q.Encode()
}

func playerHeader(h *htmlWriter, p player.Player) {
	h.raw(`<div class="player-header mb-6">`)
	h.heading("1", p.FullName)

	var facts []string
	if pos := p.PositionOrEmpty(); pos != "" {
		facts = append(facts, "Position: "+pos)
	}
	if ht := p.Height(); ht != "" {
		facts = append(facts, "Height: "+ht)
	}
	if p.WeightLbs != nil {
		facts = append(facts, "Weight: "+strconv.Itoa(*p.WeightLbs)+"lb")
	}
	if p.BirthDate != nil {
		if t, ok := statview.ParseDate(*p.BirthDate); ok {
			facts = append(facts, "Born: "+t.Format("January 2, 2006"))
		}
	}
	if p.College != nil && *p.College != "" {
		facts = append(facts, "College: "+*p.College)
	}
	if p.DraftYear != nil && p.DraftPick != nil {
		facts = append(facts, "Draft: "+strconv.Itoa(*p.DraftYear)+", pick "+strconv.Itoa(*p.DraftPick))
	}
	for _, f := range facts {
		h.raw(`<p class="text-sm">`)
		h.text(f)
		h.raw(`</p>`)
	}

	base := statview.PlayerHref(p.ID)
	h.raw(`<div class="player-subnav flex gap-4 mt-3">`)
	h.link(base, "Overview")
	h.link(base+"/gamelog", "Game Log")
	h.link(base+"/splits", "Splits")
	h.raw(`</div></div>`)
}

func PlayerPage(p usecase.PlayerProfile) templ.Component {
	return Layout(p.Player.FullName, p.Failed, component(func(h *htmlWriter) {
		playerHeader(h, p.Player)

		pl := p.Player
		h.table("Per Game", stattable.TablePerGame, statview.PerGame(p.SeasonStats, pl))
		h.table("Totals", stattable.TableTotals, statview.Totals(p.SeasonStats, pl))
		h.table("Per 36 Minutes", stattable.TablePerMinute, statview.Per36(p.SeasonStats, pl))
		h.table("Per 100 Possessions", stattable.TablePerPoss, statview.Per100(p.SeasonStats, pl))
		h.table("Advanced", stattable.TableAdvanced, statview.Advanced(p.Advanced, p.SeasonStats, pl))
		h.table("Shooting", stattable.TableShooting, statview.Shooting(p.Shooting, p.SeasonStats, pl))
		h.table("Adjusted Shooting", stattable.TableAdjShooting, statview.AdjustedShooting(p.AdjustedShooting, pl))
		h.table("Play-by-Play", stattable.TablePBP, statview.PlayByPlay(p.PlayByPlay, p.SeasonStats, pl))
		if len(p.Awards) > 0 {
			h.table("Awards", stattable.TableAwards, statview.Awards(p.Awards, nil))
		}
		if len(p.Contracts) > 0 {
			h.table("Contracts", stattable.TableContracts, statview.Contracts(p.Contracts, nil))
		}
	}))
}

func seasonPicker(h *htmlWriter, base string, seasons []string, current string) {
	if len(seasons) == 0 {
		return
	}
	h.raw(`<div class="season-picker flex flex-wrap gap-2 mb-4">`)
	for _, s := range seasons {
		if s == current {
			h.raw(`<strong class="px-2">`)
			h.text(s)
			h.raw(`</strong>`)
			continue
		}
		h.link(base+"?season="+url.QueryEscape(s), s)
	}
	h.raw(`</div>`)
}

func PlayerGameLogPage(p usecase.PlayerGameLogPage) templ.Component {
	title := p.Player.FullName + " Game Log"
	if p.SeasonID != "" {
		title += " " + p.SeasonID
	}

	return Layout(title, p.Failed, component(func(h *htmlWriter) {
		playerHeader(h, p.Player)
		seasonPicker(h, statview.PlayerHref(p.Player.ID)+"/gamelog", p.Seasons, p.SeasonID)
		h.table(title, stattable.TablePlayerGameLog, statview.GameLog(p.Logs, p.Player))
	}))
}

func PlayerSplitsPage(p usecase.PlayerSplitsPage) templ.Component {
	title := p.Player.FullName + " Splits"
	if p.SeasonID != "" {
		title += " " + p.SeasonID
	}

	return Layout(title, p.Failed, component(func(h *htmlWriter) {
		playerHeader(h, p.Player)
		seasonPicker(h, statview.PlayerHref(p.Player.ID)+"/splits", p.Seasons, p.SeasonID)

		types, byType := statview.GroupSplits(p.Splits)
		if len(types) == 0 {
			h.raw(`<p class="text-sm text-slate-500">No splits available.</p>`)
			return
		}
		for _, t := range types {
			h.table(t, stattable.TableSplits, statview.Splits(byType[t]))
		}
	}))
}
