package stattable

import "fmt"

// ColumnKey names a single statistical field. Keys are unique across the catalog
// and join a table schema, the column metadata and a mapped row.
type ColumnKey string

// ColumnType selects how the renderer formats a numeric cell.
type ColumnType string

const (
	TypeInt      ColumnType = "int"
	TypeFloat    ColumnType = "float"
	TypeString   ColumnType = "string"
	TypeDate     ColumnType = "date"
	TypeRatio    ColumnType = "ratio"
	TypePercent  ColumnType = "percent"
	TypeCurrency ColumnType = "currency"
)

type Align string

const (
	AlignDefault Align = ""
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
)

// ColumnDef is the display contract of one column.
type ColumnDef struct {
	Key         ColumnKey
	Label       string
	Description string
	Type        ColumnType
	Align       Align
}

// Alignment resolves the effective alignment; unset means center.
func (d ColumnDef) Alignment() Align {
	if d.Align == AlignDefault {
		return AlignCenter
	}
	return d.Align
}

// Title is the tooltip text for the header cell.
func (d ColumnDef) Title() string {
	if d.Description != "" {
		return d.Description
	}
	return d.Label
}

var columnIndex = buildColumnIndex(catalog)

func buildColumnIndex(defs []ColumnDef) map[ColumnKey]ColumnDef {
	out := make(map[ColumnKey]ColumnDef, len(defs))
	for _, def := range defs {
		if _, dup := out[def.Key]; dup {
			panic(fmt.Sprintf("stattable: duplicate column key %q", def.Key))
		}
		out[def.Key] = def
	}
	return out
}

// Column returns the definition for key. An unknown key is a programming error
// in a schema or mapper, so it panics instead of returning an error.
func Column(key ColumnKey) ColumnDef {
	def, ok := columnIndex[key]
	if !ok {
		panic(fmt.Sprintf("stattable: column %q is not in the catalog", key))
	}
	return def
}

func LookupColumn(key ColumnKey) (ColumnDef, bool) {
	def, ok := columnIndex[key]
	return def, ok
}

// Columns lists the catalog in declaration order.
func Columns() []ColumnDef {
	out := make([]ColumnDef, len(catalog))
	copy(out, catalog)
	return out
}
