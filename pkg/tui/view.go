package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/form"
	"tableflip.dev/gratitude/pkg/viewmodel"
)

const (
	saveLabel   = "Eintrag speichern 💫"
	updateLabel = "Änderungen speichern ✏️"
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	if m.app.Form.Mode() == form.ModeQuick {
		b.WriteString(m.paneStyle(paneCategories).Render(m.categoriesView()))
		b.WriteString("\n")
	}
	b.WriteString(m.paneStyle(paneText).Render(m.textView()))
	b.WriteString("\n")
	b.WriteString(m.buttonView())
	b.WriteString("\n\n")
	b.WriteString(m.paneStyle(paneEntries).Render(m.entriesView()))
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m *Model) headerView() string {
	title := m.theme.Header.Render("Dankbarkeit")
	streak := m.theme.Streak.Render(fmt.Sprintf("🔥 %d", m.view.Streak))
	mode := m.theme.Help.Render(modeLabel(m.app.Form.Mode()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", streak, "  ", mode)
}

func (m *Model) categoriesView() string {
	var b strings.Builder
	selected := len(m.app.Form.Selected())
	b.WriteString(m.theme.Title.Render("Wofür bist du heute dankbar?"))
	b.WriteString(m.theme.Help.Render(fmt.Sprintf("  %d/%d", selected, entry.MaxCategories)))
	b.WriteString("\n")

	for i, name := range m.pickerNames() {
		marker := "   "
		label := m.theme.Category.Render(name)
		if n := m.app.Form.Ordinal(name); n > 0 {
			marker = m.theme.Ordinal.Render(fmt.Sprintf("%2d ", n))
			label = m.theme.Selected.Render(name)
		}
		line := marker + label
		if m.focus == paneCategories && i == m.catCursor {
			line = marker + m.theme.Cursor.Render(name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) textView() string {
	title := "Was möchtest du noch hinzufügen?"
	if m.app.Form.Mode() == form.ModeJournal {
		title = "Dein Dankbarkeits-Tagebuch"
	}
	return m.theme.Title.Render(title) + "\n" + m.text.View()
}

func (m *Model) buttonView() string {
	label := saveLabel
	if m.app.Form.Editing() != nil {
		label = updateLabel
	}
	if !m.canSubmit() {
		return m.theme.Disabled.Render(label)
	}
	return m.theme.Button.Render(label)
}

// canSubmit includes keystrokes not yet flushed into the form.
func (m *Model) canSubmit() bool {
	return m.app.Form.CanSubmit() || strings.TrimSpace(m.text.Value()) != ""
}

func (m *Model) entriesView() string {
	if m.view.Empty {
		return m.theme.Empty.Render(m.view.EmptyMessage)
	}
	width := m.contentWidth()
	var rows []string
	for i, item := range m.view.Items {
		rows = append(rows, m.itemView(item, i == m.rowCursor && m.focus == paneEntries, width))
	}
	return strings.Join(rows, "\n\n")
}

func (m *Model) itemView(item viewmodel.Item, current bool, width int) string {
	var b strings.Builder
	date := m.theme.Date.Render(item.Date)
	if current {
		date = m.theme.Cursor.Render(item.Date)
	}
	b.WriteString(date)
	if item.HasCategories() {
		chips := make([]string, 0, len(item.Categories))
		for _, c := range item.Categories {
			chips = append(chips, m.theme.Chip.Render("["+c+"]"))
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(chips, " "))
	}
	if item.HasText() {
		b.WriteString("\n")
		b.WriteString(m.theme.Text.Render(wordwrap.String(item.Quoted, width)))
	}
	return b.String()
}

func (m *Model) footerView() string {
	if m.warning != "" {
		return m.theme.Warning.Render(m.warning)
	}
	help := "tab Feld · ␣ wählen · ctrl+s speichern · ctrl+t Modus · e bearbeiten · d löschen · q beenden"
	if m.status != "" {
		return m.theme.Status.Render(m.status) + "\n" + m.theme.Help.Render(help)
	}
	return m.theme.Help.Render(help)
}

func (m *Model) paneStyle(p pane) lipgloss.Style {
	if m.focus == p {
		return m.theme.Focused
	}
	return m.theme.Pane
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 72
	}
	return max(20, m.width-6)
}

func modeLabel(mode form.Mode) string {
	if mode == form.ModeJournal {
		return "Tagebuch"
	}
	return "Schnell"
}
