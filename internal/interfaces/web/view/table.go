package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"github.com/valyala/bytebufferpool"
)

const (
	tableClass = "min-w-full border-collapse border border-gray-300 text-sm"
	thClass    = "border border-gray-300 px-2 py-1 font-semibold whitespace-nowrap"
	tdClass    = "border border-gray-300 px-2 py-1 whitespace-nowrap"
)

// Table renders rows under schema as an HTML table. Rows keep their order and
// every row gets exactly one cell per schema column.
func Table(schema stattable.TableSchema, rows []stattable.Row) templ.Component {
	return TitledTable("", schema, rows)
}

// TitledTable is Table with a heading above it.
func TitledTable(title string, schema stattable.TableSchema, rows []stattable.Row) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)

		writeTable(buf, title, schema, rows)
		_, err := w.Write(buf.B)
		return err
	})
}

func writeTable(buf *bytebufferpool.ByteBuffer, title string, schema stattable.TableSchema, rows []stattable.Row) {
	defs := make([]stattable.ColumnDef, len(schema.Columns))
	for i, key := range schema.Columns {
		defs[i] = stattable.Column(key)
	}

	buf.WriteString(`<div class="overflow-x-auto mb-6">`)
	if title != "" {
		buf.WriteString(`<h3 class="text-lg font-bold mb-2">`)
		buf.WriteString(templ.EscapeString(title))
		buf.WriteString(`</h3>`)
	}
	buf.WriteString(`<table id="`)
	buf.WriteString(templ.EscapeString(string(schema.ID)))
	buf.WriteString(`" class="` + tableClass + `"><thead>`)

	if schema.Grouped() {
		buf.WriteString(`<tr class="bg-gray-100">`)
		for _, g := range schema.Groups {
			buf.WriteString(`<th colspan="`)
			buf.WriteString(strconv.Itoa(len(g.Columns)))
			buf.WriteString(`" class="` + thClass + ` text-center">`)
			buf.WriteString(templ.EscapeString(g.Title))
			buf.WriteString(`</th>`)
		}
		buf.WriteString(`</tr>`)
	}

	buf.WriteString(`<tr class="bg-gray-100">`)
	for _, def := range defs {
		buf.WriteString(`<th class="` + thClass + ` `)
		buf.WriteString(AlignClass(def))
		buf.WriteString(`" title="`)
		buf.WriteString(templ.EscapeString(def.Title()))
		buf.WriteString(`">`)
		buf.WriteString(templ.EscapeString(def.Label))
		buf.WriteString(`</th>`)
	}
	buf.WriteString(`</tr></thead><tbody>`)

	for i, row := range rows {
		if i%2 == 0 {
			buf.WriteString(`<tr class="bg-white">`)
		} else {
			buf.WriteString(`<tr class="bg-gray-50">`)
		}
		for _, def := range defs {
			buf.WriteString(`<td class="` + tdClass + ` `)
			buf.WriteString(AlignClass(def))
			buf.WriteString(`">`)
			writeCell(buf, def, row.Get(def.Key))
			buf.WriteString(`</td>`)
		}
		buf.WriteString(`</tr>`)
	}
	buf.WriteString(`</tbody></table></div>`)
}

func writeCell(buf *bytebufferpool.ByteBuffer, def stattable.ColumnDef, c stattable.Cell) {
	if c.Kind() != stattable.KindLink {
		buf.WriteString(templ.EscapeString(FormatCell(def, c)))
		return
	}
	buf.WriteString(`<a class="text-blue-700 hover:underline" href="`)
	buf.WriteString(templ.EscapeString(string(templ.URL(c.Href()))))
	buf.WriteString(`">`)
	buf.WriteString(templ.EscapeString(c.Label()))
	buf.WriteString(`</a>`)
}
