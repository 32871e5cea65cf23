package view

import (
	"math"
	"strconv"

	"github.com/riskibarqy/hoops-reference/internal/domain/stattable"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amounts = message.NewPrinter(language.AmericanEnglish)

// FormatNumber renders v for a column type. NaN and infinities render empty.
func FormatNumber(v float64, t stattable.ColumnType) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}

	switch t {
	case stattable.TypePercent:
		return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
	case stattable.TypeFloat:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case stattable.TypeInt:
		return strconv.FormatFloat(noNegZero(math.Round(v)), 'f', 0, 64)
	case stattable.TypeRatio:
		return strconv.FormatFloat(v, 'f', 3, 64)
	case stattable.TypeCurrency:
		return currency(v)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

func noNegZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// currency renders whole dollars with thousands separators, e.g. $47,649,433.
func currency(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-$" + amounts.Sprintf("%d", -n)
	}
	return "$" + amounts.Sprintf("%d", n)
}

// FormatCell returns the display text of a non-link cell under def.
func FormatCell(def stattable.ColumnDef, c stattable.Cell) string {
	switch c.Kind() {
	case stattable.KindNumber:
		v, _ := c.Float()
		return FormatNumber(v, def.Type)
	case stattable.KindText, stattable.KindLink:
		return c.Label()
	case stattable.KindDate:
		t, _ := c.Time()
		return t.Format("1/2/2006")
	default:
		return ""
	}
}

// AlignClass maps a column alignment to its utility class.
func AlignClass(def stattable.ColumnDef) string {
	switch def.Alignment() {
	case stattable.AlignLeft:
		return "text-left"
	case stattable.AlignRight:
		return "text-right"
	default:
		return "text-center"
	}
}
