// Package format renders dashboard views as terminal or Markdown text for the CLI.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"bizdash/internal/dashboard"
	"bizdash/internal/section"
)

type Mode int

const (
	ASCII Mode = iota
	Markdown
)

// Table is a thin wrapper over a go-pretty writer that renders in a fixed Mode.
type Table struct {
	w    table.Writer
	mode Mode
}

func NewTable(m Mode) *Table {
	style := table.StyleDefault
	if m == ASCII {
		style = table.StyleLight
	}
	// заголовки как есть, без FormatUpper
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault

	w := table.NewWriter()
	w.SetStyle(style)
	return &Table{w: w, mode: m}
}

func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.w.AppendHeader(row)
}

func (t *Table) Row(vals ...any) {
	t.w.AppendRow(table.Row(vals))
}

func (t *Table) Footer(vals ...any) {
	t.w.AppendFooter(table.Row(vals))
}

// AlignRight выравнивает колонки (номера с 1) по правому краю.
func (t *Table) AlignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight, AlignHeader: text.AlignRight}
	}
	t.w.SetColumnConfigs(cfgs)
}

func (t *Table) String() string {
	if t.mode == Markdown {
		return t.w.RenderMarkdown()
	}
	return t.w.Render()
}

// Sections prints every section with its tabs, one row per tab.
func Sections(out io.Writer, sections []section.Section, m Mode) error {
	t := NewTable(m)
	t.Header("Section", "Tab", "Label", "Path", "View")
	for _, s := range sections {
		for _, tab := range s.Tabs {
			t.Row(s.ID, tab.ID, tab.Label, tab.Path, string(tab.View))
		}
	}
	_, err := fmt.Fprintln(out, t.String())
	return err
}

// View prints metrics, cards and the filtered table of v.
func View(out io.Writer, v dashboard.View, m Mode) error {
	var b strings.Builder

	title := v.Title
	if m == Markdown {
		title = "## " + title
	}
	fmt.Fprintf(&b, "%s\n%s\n\n", title, v.Description)

	if len(v.Metrics) > 0 {
		t := NewTable(m)
		t.Header("Metric", "Value", "Change")
		for _, mt := range v.Metrics {
			t.Row(mt.Label, mt.Value, Trend(mt))
		}
		t.AlignRight(2, 3)
		b.WriteString(t.String())
		b.WriteString("\n\n")
	}

	for _, c := range v.Cards {
		t := NewTable(m)
		t.Header(c.Title, "")
		for _, f := range c.Fields {
			t.Row(f.Label, f.Value)
		}
		b.WriteString(t.String())
		b.WriteString("\n\n")
	}

	if v.Table != nil {
		if v.TableTitle != "" {
			b.WriteString(v.TableTitle + "\n")
		}
		t := NewTable(m)
		t.Header(v.Table.Columns...)
		if len(v.Table.Rows) == 0 {
			t.Row("No records found")
		}
		for _, row := range v.Table.Plain() {
			vals := make([]any, len(row))
			for i, s := range row {
				vals[i] = s
			}
			t.Row(vals...)
		}
		t.Footer(fmt.Sprintf("%d of %d", v.Table.Shown, v.Table.Total))
		b.WriteString(t.String())
		b.WriteString("\n")
	}

	_, err := io.WriteString(out, b.String())
	return err
}

// Trend prefixes the change with an arrow when the metric has a direction.
func Trend(m dashboard.Metric) string {
	switch m.Trend {
	case "up":
		return "↑ " + m.Change
	case "down":
		return "↓ " + m.Change
	}
	return m.Change
}
