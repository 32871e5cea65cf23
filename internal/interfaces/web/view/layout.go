package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
)

const siteName = "Hoops Reference"

// htmlWriter remembers the first write error so page code can stay linear.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) link(href, label string) {
	h.raw(`<a class="text-blue-700 hover:underline" href="`)
	h.text(string(templ.URL(href)))
	h.raw(`">`)
	h.text(label)
	h.raw(`</a>`)
}

func (h *htmlWriter) heading(level, title string) {
	h.raw(`<h` + level + ` class="font-bold mb-3">`)
	h.text(title)
	h.raw(`</h` + level + `>`)
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func (h *htmlWriter) table(title string, id stattable.TableID, rows []stattable.Row) {
	h.render(TitledTable(title, stattable.Schema(id), rows))
}

func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

var navLinks = []struct{ href, label string }{
	{"/teams", "Teams"},
	{"/players", "Players"},
	{"/leagues", "Seasons"},
	{"/games", "Scores"},
	{"/draft", "Draft"},
	{"/contracts", "Contracts"},
	{"/franchises", "Franchises"},
}

// Layout wraps body in the site chrome. failed names page sections that could
// not be loaded; they are listed in a notice above the content.
func Layout(title string, failed []string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		if title != "" {
			h.text(title + " | ")
		}
		h.text(siteName)
		h.raw(`</title><script src="https://cdn.tailwindcss.com"></script></head>`)
		h.raw(`<body class="min-h-screen bg-slate-50 flex flex-col font-sans text-slate-900">`)

		h.raw(`<nav class="bg-slate-900 text-white shadow-lg"><div class="max-w-7xl mx-auto px-4 flex items-center justify-between h-16">`)
		h.raw(`<a href="/" class="text-2xl font-bold text-orange-500">`)
		h.text(siteName)
		h.raw(`</a><div class="flex space-x-4">`)
		for _, l := range navLinks {
			h.raw(`<a class="hover:bg-slate-800 px-3 py-2 rounded-md text-sm font-medium" href="` + l.href + `">`)
			h.text(l.label)
			h.raw(`</a>`)
		}
		h.raw(`</div><form action="/players" method="get"><input name="search" type="search" placeholder="Search players" class="text-slate-900 px-3 py-1 rounded-md"></form>`)
		h.raw(`</div></nav>`)

		h.raw(`<main id="main-content" class="grow container mx-auto px-4 py-8">`)
		if len(failed) > 0 {
			h.render(FailedNotice(failed))
		}
		h.render(body)
		h.raw(`</main>`)

		h.raw(`<footer class="bg-slate-900 text-slate-400 py-6 mt-auto text-center text-sm">`)
		h.text(siteName)
		h.raw(`</footer></body></html>`)
	})
}

func FailedNotice(failed []string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div role="alert" class="failed-notice bg-amber-50 border border-amber-300 text-amber-900 px-4 py-3 rounded mb-6">`)
		h.text("Some data could not be loaded: " + strings.ReplaceAll(strings.Join(failed, ", "), "_", " ") + ".")
		h.raw(`</div>`)
	})
}

// ErrorPage is the body shown for failed requests.
func ErrorPage(status int, message string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="error-panel bg-red-50 border border-red-300 text-red-900 px-6 py-8 rounded">`)
		h.heading("1", statusTitle(status))
		h.raw(`<p>`)
		h.text(message)
		h.raw(`</p><p class="mt-4"><a class="text-blue-700 hover:underline" href="/">Back to the home page</a></p></div>`)
	})
}

func statusTitle(status int) string {
	switch status {
	case 400:
		return "Bad request"
	case 404:
		return "Page not found"
	case 503:
		return "Stats temporarily unavailable"
	case 502:
		return "Stats could not be loaded"
	default:
		return "Something went wrong"
	}
}
