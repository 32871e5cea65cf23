package view

import (
	"bytes"
	"context"
	"math"
	"strconv"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/riskibarqy/hoops-reference/internal/domain/player"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/riskibarqy/hoops-reference/internal/domain/statview"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func renderDoc(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestTableFlatHeaderAndRows(t *testing.T) {
	t.Parallel()

	schema := stattable.Schema(stattable.TableLeaders)
	rows := []stattable.Row{
		{stattable.ColRk: stattable.Number(1), stattable.ColPlayer: stattable.Link("/players/doncilu01", "Luka Doncic"), stattable.ColValue: stattable.Number(33.9)},
		{stattable.ColRk: stattable.Number(2), stattable.ColPlayer: stattable.Text("Unknown")},
	}
	doc := renderDoc(t, Table(schema, rows))

	require.Equal(t, 1, doc.Find("thead tr").Length())
	require.Equal(t, len(schema.Columns), doc.Find("thead th").Length())

	body := doc.Find("tbody tr")
	require.Equal(t, 2, body.Length())
	body.Each(func(_ int, tr *goquery.Selection) {
		require.Equal(t, len(schema.Columns), tr.Find("td").Length())
	})
	require.True(t, body.Eq(0).HasClass("bg-white"))
	require.True(t, body.Eq(1).HasClass("bg-gray-50"))

	link := body.Eq(0).Find("a")
	href, _ := link.Attr("href")
	require.Equal(t, "/players/doncilu01", href)
	require.Equal(t, "Luka Doncic", link.Text())
	require.Equal(t, "Unknown", body.Eq(1).Find("td").Eq(1).Text())
	require.Equal(t, "", body.Eq(1).Find("td").Eq(3).Text())
}

func TestTableGroupedHeader(t *testing.T) {
	t.Parallel()

	schema := stattable.Schema(stattable.TableDraft)
	doc := renderDoc(t, Table(schema, nil))

	require.Equal(t, 2, doc.Find("thead tr").Length())
	bands := doc.Find("thead tr").First().Find("th")
	require.Equal(t, len(schema.Groups), bands.Length())
	bands.Each(func(i int, th *goquery.Selection) {
		span, _ := th.Attr("colspan")
		require.Equal(t, strconv.Itoa(len(schema.Groups[i].Columns)), span)
	})
	require.Equal(t, len(schema.Columns), doc.Find("thead tr").Last().Find("th").Length())
	require.Equal(t, 0, doc.Find("tbody tr").Length())
}

func TestTableHeaderTitleAndAlignment(t *testing.T) {
	t.Parallel()

	schema := stattable.TableSchema{ID: "test", Columns: []stattable.ColumnKey{stattable.ColPlayer, stattable.ColFGPct}}
	rows := []stattable.Row{{stattable.ColFGPct: stattable.Number(math.NaN())}}
	doc := renderDoc(t, Table(schema, rows))

	th := doc.Find("thead th").Eq(1)
	title, _ := th.Attr("title")
	require.Equal(t, stattable.Column(stattable.ColFGPct).Title(), title)
	require.True(t, th.HasClass(AlignClass(stattable.Column(stattable.ColFGPct))))

	td := doc.Find("tbody td").Eq(0)
	require.True(t, td.HasClass(AlignClass(stattable.Column(stattable.ColPlayer))))
	require.Equal(t, "", doc.Find("tbody td").Eq(1).Text())
}

func TestPerGameRendersCombinedAndTeamLines(t *testing.T) {
	t.Parallel()

	p := player.Player{ID: "hardeja01", FullName: "James Harden"}
	stats := []player.SeasonStats{
		{SeasonID: "2020-21", TeamID: "TOT", GamesPlayed: ptr(44), Points: ptr(880.0)},
		{SeasonID: "2020-21", TeamID: "BOS", GamesPlayed: ptr(8), Points: ptr(160.0)},
	}
	schema := stattable.Schema(stattable.TablePerGame)
	doc := renderDoc(t, Table(schema, statview.PerGame(stats, p)))

	tmIdx, ptsIdx := -1, -1
	for i, key := range schema.Columns {
		switch key {
		case stattable.ColTm:
			tmIdx = i
		case stattable.ColPTS:
			ptsIdx = i
		}
	}
	require.NotEqual(t, -1, tmIdx)
	require.NotEqual(t, -1, ptsIdx)

	rows := doc.Find("tbody tr")
	require.Equal(t, 2, rows.Length())

	tot := rows.Eq(0).Find("td")
	require.Equal(t, 0, tot.Eq(tmIdx).Find("a").Length())
	require.Equal(t, "TOT", tot.Eq(tmIdx).Text())
	require.Equal(t, "20.0", tot.Eq(ptsIdx).Text())

	bos := rows.Eq(1).Find("td")
	href, ok := bos.Eq(tmIdx).Find("a").Attr("href")
	require.True(t, ok)
	require.Equal(t, "/teams/BOS", href)
	require.Equal(t, "20.0", bos.Eq(ptsIdx).Text())
}

func TestTableEscapesText(t *testing.T) {
	t.Parallel()

	schema := stattable.Schema(stattable.TableLeaders)
	rows := []stattable.Row{{stattable.ColPlayer: stattable.Text("<script>alert(1)</script>")}}
	doc := renderDoc(t, Table(schema, rows))

	require.Equal(t, 0, doc.Find("tbody script").Length())
	require.Equal(t, "<script>alert(1)</script>", doc.Find("tbody td").Eq(1).Text())
}

func TestLayoutListsFailedSections(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, Layout("Test", []string{"season_stats", "awards"}, component(func(h *htmlWriter) {
		h.raw(`<p id="body">ok</p>`)
	})))

	require.Equal(t, "Test | "+siteName, doc.Find("title").Text())
	require.Contains(t, doc.Find(".failed-notice").Text(), "season stats, awards")
	require.Equal(t, "ok", doc.Find("#body").Text())
}
