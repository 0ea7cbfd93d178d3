package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/gratitude/pkg/viewmodel"
)

// PrettyPrint renders display models for a terminal.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Width wraps entry text; zero disables wrapping.
	Width int
}

const idWidth = len("1760428800000  ")

var spacing = strings.Repeat(" ", idWidth)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Title prints a bold underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

// Streak prints the lifetime entry counter.
func (pp *PrettyPrint) Streak(n int) {
	c := color.New(color.FgHiYellow, color.Bold)
	f := color.New(color.Faint)
	_, _ = c.Fprintf(pp.out(), "🔥 %d", n)
	switch n {
	case 1:
		_, _ = f.Fprintln(pp.out(), " Eintrag")
	default:
		_, _ = f.Fprintln(pp.out(), " Einträge")
	}
}

// Journal prints the streak header followed by every item.
func (pp *PrettyPrint) Journal(j viewmodel.Journal) {
	pp.Streak(j.Streak)
	pp.NewLine()
	if j.Empty {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), j.EmptyMessage)
		return
	}
	for _, item := range j.Items {
		pp.Item(item)
	}
}

// Item prints a single entry: date line, category chips and quoted text.
func (pp *PrettyPrint) Item(item viewmodel.Item) {
	w := pp.out()
	d := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	chip := color.New(color.FgMagenta)
	txt := color.New(color.Italic)

	indent := ""
	if pp.ShowID {
		id := strconv.FormatInt(item.ID, 10)
		_, _ = y.Fprint(w, id)
		_, _ = fmt.Fprint(w, strings.Repeat(" ", max(1, idWidth-len(id))))
		indent = spacing
	}
	_, _ = d.Fprintln(w, item.Date)

	if item.HasCategories() {
		chips := make([]string, len(item.Categories))
		for i, c := range item.Categories {
			chips[i] = chip.Sprintf("[%s]", c)
		}
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, strings.Join(chips, " "))
	}
	if item.HasText() {
		quoted := item.Quoted
		if pp.Width > 0 {
			quoted = wordwrap.String(quoted, pp.Width)
		}
		for _, line := range strings.Split(quoted, "\n") {
			_, _ = txt.Fprintf(w, "%s%s\n", indent, line)
		}
	}
	pp.NewLine()
}

// Categories prints the catalog numbered in display order.
func (pp *PrettyPrint) Categories(names []string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	num := color.New(color.FgGreen, color.Bold)
	for i, n := range names {
		tbl.AddRow(num.Sprint(strconv.Itoa(i+1)), n)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Table prints aligned key/value rows.
func (pp *PrettyPrint) Table(rows [][2]string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		tbl.AddRow(r[0], r[1])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
