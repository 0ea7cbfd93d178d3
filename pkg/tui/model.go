// Package tui is the Bubble Tea front-end for the entry form and list.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/form"
	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/store"
	"tableflip.dev/gratitude/pkg/viewmodel"
)

type pane int

const (
	paneCategories pane = iota
	paneText
	paneEntries
)

// storeChangedMsg reports that the journal changed on disk.
type storeChangedMsg struct{}

// watchClosedMsg reports that the store watcher ended.
type watchClosedMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	app   *app.App
	ctx   context.Context
	keys  keyMap
	theme Theme

	focus     pane
	catCursor int
	rowCursor int
	text      textarea.Model

	view    viewmodel.Journal
	confirm int64 // id awaiting delete confirmation, 0 when none
	status  string
	warning string

	events <-chan store.Event
	width  int
	height int
}

// New returns a model bound to a. The context bounds the store watcher.
func New(ctx context.Context, a *app.App) *Model {
	ta := textarea.New()
	ta.Placeholder = placeholder(form.ModeQuick)
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.SetWidth(60)

	m := &Model{
		app:   a,
		ctx:   ctx,
		keys:  defaultKeys(),
		theme: DefaultTheme(),
		focus: paneCategories,
		text:  ta,
	}
	m.refresh()
	return m
}

// Run starts the program in the alternate screen and blocks until it exits.
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(New(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	if m.ctx == nil {
		return nil
	}
	events, err := m.app.Persistence.Watch(m.ctx)
	if err != nil {
		m.app.Logger.Warn("live reload disabled", "err", err)
		return nil
	}
	m.events = events
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		for ev := range events {
			if journal.Tracks(ev.Key) {
				return storeChangedMsg{}
			}
		}
		return watchClosedMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.text.SetWidth(max(20, min(msg.Width-6, 80)))
		return m, nil

	case storeChangedMsg:
		m.reloadFromDisk()
		return m, m.waitForChange()

	case watchClosedMsg:
		m.events = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == paneText {
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Force) {
		return m, tea.Quit
	}
	if m.confirm != 0 {
		return m.handleConfirm(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.app.Form.Reset()
		m.text.Reset()
		m.status = "Formular geleert."
		return m, nil
	case key.Matches(msg, m.keys.Mode):
		m.switchMode()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.nextPane(1))
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.nextPane(-1))
	}

	switch m.focus {
	case paneText:
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		m.app.Form.SetText(m.text.Value())
		return m, cmd

	case paneCategories:
		names := m.pickerNames()
		m.catCursor = clamp(m.catCursor, len(names))
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.catCursor = clamp(m.catCursor-1, len(names))
		case key.Matches(msg, m.keys.Down):
			m.catCursor = clamp(m.catCursor+1, len(names))
		case key.Matches(msg, m.keys.Toggle):
			if len(names) > 0 {
				m.toggle(names[m.catCursor])
			}
		}

	case paneEntries:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.rowCursor = clamp(m.rowCursor-1, len(m.view.Items))
		case key.Matches(msg, m.keys.Down):
			m.rowCursor = clamp(m.rowCursor+1, len(m.view.Items))
		case key.Matches(msg, m.keys.Edit):
			return m, m.edit()
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.currentItem(); ok {
				m.confirm = item.ID
				m.warning = form.DeletePrompt + " (y/n)"
			}
		}
	}
	return m, nil
}

func (m *Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.confirm
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.confirm, m.warning = 0, ""
		wasEditing := m.app.Form.Editing() != nil
		deleted, err := m.app.Form.Delete(id, nil)
		if err != nil {
			m.warning = err.Error()
			return m, nil
		}
		if deleted {
			m.status = "Eintrag gelöscht."
			if wasEditing && m.app.Form.Editing() == nil {
				m.text.Reset()
			}
		}
		m.refresh()
	case key.Matches(msg, m.keys.No):
		m.confirm, m.warning = 0, ""
		m.status = "Nichts gelöscht."
	}
	return m, nil
}

func (m *Model) toggle(name string) {
	m.warning = ""
	if _, err := m.app.Form.Toggle(name); err != nil {
		m.warning = err.Error()
	}
}

func (m *Model) submit() {
	m.app.Form.SetText(m.text.Value())
	res, err := m.app.Form.Submit()
	if err != nil {
		if !errors.Is(err, form.ErrNothingToSave) {
			m.warning = err.Error()
		}
		return
	}
	m.text.Reset()
	m.warning = ""
	if res.Created {
		m.status = "Gespeichert! ✨"
	} else {
		m.status = "Änderungen gespeichert."
	}
	m.rowCursor = 0
	m.refresh()
}

func (m *Model) edit() tea.Cmd {
	item, ok := m.currentItem()
	if !ok {
		return nil
	}
	if err := m.app.Form.Edit(item.ID); err != nil {
		m.warning = err.Error()
		return nil
	}
	m.text.SetValue(m.app.Form.Text())
	m.status = fmt.Sprintf("Bearbeite Eintrag vom %s", item.Date)
	if m.app.Form.Mode() == form.ModeJournal {
		return m.setFocus(paneText)
	}
	return m.setFocus(paneCategories)
}

func (m *Model) switchMode() {
	next := form.ModeJournal
	if m.app.Form.Mode() == form.ModeJournal {
		next = form.ModeQuick
	}
	_ = m.app.Form.SetMode(next)
	m.text.Placeholder = placeholder(next)
	if next == form.ModeJournal && m.focus == paneCategories {
		m.setFocus(paneText)
	}
}

func (m *Model) setFocus(p pane) tea.Cmd {
	m.focus = p
	if p == paneText {
		return m.text.Focus()
	}
	m.text.Blur()
	return nil
}

// nextPane cycles focus, skipping the category picker in journal mode.
func (m *Model) nextPane(step int) pane {
	order := []pane{paneCategories, paneText, paneEntries}
	if m.app.Form.Mode() == form.ModeJournal {
		order = []pane{paneText, paneEntries}
	}
	idx := 0
	for i, p := range order {
		if p == m.focus {
			idx = i
		}
	}
	idx = (idx + step + len(order)) % len(order)
	return order[idx]
}

// pickerNames is the catalog followed by selected categories it does not
// know, so custom categories of an edited entry can be deselected.
func (m *Model) pickerNames() []string {
	names := m.app.Catalog.Names()
	for _, c := range m.app.Form.Selected() {
		if _, err := m.app.Catalog.Parse(c); err != nil {
			names = append(names, c)
		}
	}
	return names
}

func (m *Model) currentItem() (viewmodel.Item, bool) {
	if m.rowCursor < 0 || m.rowCursor >= len(m.view.Items) {
		return viewmodel.Item{}, false
	}
	return m.view.Items[m.rowCursor], true
}

// reloadFromDisk picks up changes written by another process. The draft is
// kept unless its edit target disappeared.
func (m *Model) reloadFromDisk() {
	if err := m.app.Journal.Load(); err != nil {
		m.warning = err.Error()
		return
	}
	if target := m.app.Form.Editing(); target != nil {
		if _, err := m.app.Journal.Get(target.ID); err != nil {
			m.app.Form.Reset()
			m.text.Reset()
			m.status = "Der bearbeitete Eintrag wurde entfernt."
		}
	}
	m.refresh()
}

func (m *Model) refresh() {
	m.view = m.app.View()
	m.rowCursor = clamp(m.rowCursor, len(m.view.Items))
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func placeholder(mode form.Mode) string {
	if mode == form.ModeJournal {
		return "Schreibe über alles, wofür du dankbar bist. Nimm dir Zeit zum Reflektieren..."
	}
	return "Beschreibe, was dich heute besonders dankbar gemacht hat..."
}
