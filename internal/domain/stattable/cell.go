package stattable

import "time"

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	KindBlank Kind = iota
	KindNumber
	KindText
	KindLink
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindLink:
		return "link"
	case KindDate:
		return "date"
	default:
		return "blank"
	}
}

// Cell is one table value. The zero Cell is Blank.
type Cell struct {
	kind Kind
	num  float64
	text string
	href string
	date time.Time
}

func Blank() Cell { return Cell{} }

func Number(v float64) Cell { return Cell{kind: KindNumber, num: v} }

func Text(s string) Cell { return Cell{kind: KindText, text: s} }

// Link is an anchor to an internal page. Only the renderer turns it into markup.
func Link(href, label string) Cell { return Cell{kind: KindLink, href: href, text: label} }

func Date(t time.Time) Cell { return Cell{kind: KindDate, date: t} }

// NumberOf returns Number(*v), or Blank for a nil pointer.
func NumberOf[T int | int64 | float64](v *T) Cell {
	if v == nil {
		return Blank()
	}
	return Number(float64(*v))
}

// TextOf returns Text(*s), or Blank for nil or empty strings.
func TextOf(s *string) Cell {
	if s == nil || *s == "" {
		return Blank()
	}
	return Text(*s)
}

// DateOf returns Date(*t), or Blank for nil or zero times.
func DateOf(t *time.Time) Cell {
	if t == nil || t.IsZero() {
		return Blank()
	}
	return Date(*t)
}

func (c Cell) Kind() Kind { return c.kind }

func (c Cell) IsBlank() bool { return c.kind == KindBlank }

func (c Cell) Float() (float64, bool) { return c.num, c.kind == KindNumber }

// Label is the text of a Text or Link cell.
func (c Cell) Label() string { return c.text }

func (c Cell) Href() string { return c.href }

func (c Cell) Time() (time.Time, bool) { return c.date, c.kind == KindDate }

// Row maps a column key to its value. A missing key reads as Blank.
type Row map[ColumnKey]Cell

func (r Row) Get(key ColumnKey) Cell {
	return r[key]
}
