package dashboard

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"bizdash/internal/constants"
)

// CellKind tells the renderers how to draw a cell.
type CellKind string

const (
	CellText     CellKind = "text"
	CellBadge    CellKind = "badge"
	CellProgress CellKind = "progress"
	CellToggle   CellKind = "toggle"
)

// Cell is one rendered table cell.
type Cell struct {
	Kind    CellKind `json:"kind"`
	Text    string   `json:"text"`
	Tone    string   `json:"tone,omitempty"`
	Percent int      `json:"percent,omitempty"`
	On      bool     `json:"on,omitempty"`
}

// Column describes one table column over records of type T.
type Column[T Record] struct {
	Header string
	Value  func(T) Cell
}

// Row is a filtered record projected through the table columns.
type Row struct {
	Key   string `json:"key"`
	Cells []Cell `json:"cells"`
}

// Table is the filtered table of a view; Shown of Total feeds the footer.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
	Shown   int      `json:"shown"`
	Total   int      `json:"total"`
}

// NewTable filters records by q and projects the survivors through cols.
func NewTable[T Record](records []T, q Query, cols []Column[T]) *Table {
	t := &Table{
		Columns: make([]string, len(cols)),
		Total:   len(records),
	}
	for i, c := range cols {
		t.Columns[i] = c.Header
	}

	filtered := Filter(records, q)
	t.Rows = make([]Row, 0, len(filtered))
	for _, r := range filtered {
		row := Row{Key: r.RowKey(), Cells: make([]Cell, len(cols))}
		for i, c := range cols {
			row.Cells[i] = c.Value(r)
		}
		t.Rows = append(t.Rows, row)
	}
	t.Shown = len(t.Rows)

	return t
}

// Plain returns the table cells as strings, in column order.
func (t *Table) Plain() [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		line := make([]string, len(r.Cells))
		for j, c := range r.Cells {
			line[j] = c.String()
		}
		out[i] = line
	}
	return out
}

func (c Cell) String() string {
	switch c.Kind {
	case CellProgress:
		return strconv.Itoa(c.Percent) + "%"
	case CellToggle:
		if c.On {
			return "on"
		}
		return "off"
	default:
		return c.Text
	}
}

// Text is a plain text cell.
func Text(s string) Cell { return Cell{Kind: CellText, Text: s} }

// Number is a text cell with thousands separators.
func Number(n int) Cell { return Cell{Kind: CellText, Text: humanize.Comma(int64(n))} }

// Money is a text cell formatted by FormatMoney.
func Money(v float64) Cell { return Cell{Kind: CellText, Text: FormatMoney(v)} }

// Badge is a status pill coloured by constants.Tone, gray when unknown.
func Badge(s string) Cell {
	tone, ok := constants.Tone[s]
	if !ok {
		tone = "gray"
	}
	return Cell{Kind: CellBadge, Text: s, Tone: tone}
}

// Progress is a progress bar cell, clamped by Percent.
func Progress(p int) Cell {
	p = Percent(p)
	return Cell{Kind: CellProgress, Text: strconv.Itoa(p) + "%", Percent: p}
}

// Toggle is an on/off switch cell.
func Toggle(on bool) Cell { return Cell{Kind: CellToggle, On: on} }

// Percent clamps v into [0,100]; it is the width of a progress bar.
func Percent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// FormatMoney renders v as dollars, at most two decimals: $1,234.5.
func FormatMoney(v float64) string {
	if v < 0 {
		return "-$" + humanize.CommafWithDigits(-v, 2)
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}
