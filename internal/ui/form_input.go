package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/form"
)

// fieldKind identifies what a focus stop controls.
type fieldKind int

const (
	fieldRow fieldKind = iota
	fieldAllDay
	fieldStart
	fieldEnd
	fieldEveryDay
	fieldDay
)

type field struct {
	kind fieldKind
	row  form.RowID
	day  form.Day
}

// fields lists the focus stops in tab order. The time inputs drop out while
// all-day is on.
func (m Model) fields() []field {
	var out []field
	if m.state == nil {
		return out
	}
	for _, id := range m.state.Rows.IDs() {
		out = append(out, field{kind: fieldRow, row: id})
	}
	out = append(out, field{kind: fieldAllDay})
	if !m.state.Window.AllDay {
		out = append(out, field{kind: fieldStart}, field{kind: fieldEnd})
	}
	out = append(out, field{kind: fieldEveryDay})
	for _, d := range form.AllDays {
		out = append(out, field{kind: fieldDay, day: d})
	}
	return out
}

func (m Model) focused() (field, bool) {
	fs := m.fields()
	if len(fs) == 0 {
		return field{}, false
	}
	i := m.focus
	if i < 0 || i >= len(fs) {
		i = 0
	}
	return fs[i], true
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if !m.leaveFocus() {
		return m, nil
	}
	n := len(m.fields())
	if n == 0 {
		return m, nil
	}
	m.focus = ((m.focus+delta)%n + n) % n
	return m, m.enterFocus()
}

// leaveFocus closes the focused row's panel or commits the focused time
// input. It reports false when a time input holds an invalid value, which
// keeps focus where it is.
func (m *Model) leaveFocus() bool {
	f, ok := m.focused()
	if !ok {
		return true
	}
	switch f.kind {
	case fieldRow:
		m.state.Rows.ClosePanel(f.row)
		if in, ok := m.inputs[f.row]; ok {
			in.Blur()
			m.inputs[f.row] = in
		}
	case fieldStart:
		if !m.commitStart() {
			return false
		}
		m.start.Blur()
	case fieldEnd:
		if !m.commitEnd() {
			return false
		}
		m.end.Blur()
	}
	return true
}

// enterFocus focuses the input under the cursor. Entering an empty row opens
// the browse list.
func (m *Model) enterFocus() tea.Cmd {
	fs := m.fields()
	if len(fs) == 0 {
		return nil
	}
	if m.focus < 0 || m.focus >= len(fs) {
		m.focus = 0
	}
	f := fs[m.focus]
	switch f.kind {
	case fieldRow:
		in, ok := m.inputs[f.row]
		if !ok {
			return nil
		}
		cmd := in.Focus()
		in.CursorEnd()
		m.inputs[f.row] = in
		if strings.TrimSpace(in.Value()) == "" {
			_ = m.state.Rows.Browse(f.row)
			m.cursor[f.row] = 0
		}
		return cmd
	case fieldStart:
		cmd := m.start.Focus()
		m.start.CursorEnd()
		return cmd
	case fieldEnd:
		cmd := m.end.Focus()
		m.end.CursorEnd()
		return cmd
	}
	return nil
}

func (m *Model) closeFocusedPanel() {
	if f, ok := m.focused(); ok && f.kind == fieldRow {
		m.state.Rows.ClosePanel(f.row)
	}
}

// handleFieldKey routes a key to the focused field.
func (m Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f, ok := m.focused()
	if !ok {
		return m, nil
	}

	switch f.kind {
	case fieldRow:
		return m.handleRowKey(f.row, msg)

	case fieldStart, fieldEnd:
		if key.Matches(msg, m.keys.Accept) {
			if f.kind == fieldStart {
				m.commitStart()
			} else {
				m.commitEnd()
			}
			return m, nil
		}
		var cmd tea.Cmd
		if f.kind == fieldStart {
			m.start, cmd = m.start.Update(msg)
		} else {
			m.end, cmd = m.end.Update(msg)
		}
		return m, cmd

	case fieldAllDay:
		if key.Matches(msg, m.keys.Toggle) {
			m.state.Window.ToggleAllDay()
		}
	case fieldEveryDay:
		if key.Matches(msg, m.keys.Toggle) {
			m.state.Days.ToggleAll()
		}
	case fieldDay:
		if key.Matches(msg, m.keys.Toggle) {
			m.state.Days.Toggle(f.day)
		}
	}
	return m, nil
}

func (m Model) handleRowKey(id form.RowID, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, ok := m.state.Rows.Row(id)
	if !ok {
		return m, nil
	}
	panel := row.PanelOpen && len(row.Suggestions) > 0

	switch {
	case key.Matches(msg, m.keys.RemoveRow):
		m.state.Rows.RemoveRow(id)
		delete(m.inputs, id)
		delete(m.cursor, id)
		if n := len(m.fields()); m.focus >= n {
			m.focus = n - 1
		}
		return m, m.enterFocus()

	case key.Matches(msg, m.keys.Browse):
		_ = m.state.Rows.Browse(id)
		m.cursor[id] = 0
		return m, nil

	case key.Matches(msg, m.keys.Close):
		m.state.Rows.ClosePanel(id)
		return m, nil

	case panel && key.Matches(msg, m.keys.Down):
		if m.cursor[id] < len(row.Suggestions)-1 {
			m.cursor[id]++
		}
		return m, nil

	case panel && key.Matches(msg, m.keys.Up):
		if m.cursor[id] > 0 {
			m.cursor[id]--
		}
		return m, nil

	case panel && key.Matches(msg, m.keys.Accept):
		i := m.cursor[id]
		if i >= len(row.Suggestions) {
			i = 0
		}
		choice := row.Suggestions[i]
		_ = m.state.Rows.AcceptSuggestion(id, choice)
		in := m.inputs[id]
		in.SetValue(choice.Name)
		in.CursorEnd()
		m.inputs[id] = in
		m.cursor[id] = 0
		return m, nil

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Accept):
		return m, nil
	}

	in := m.inputs[id]
	before := in.Value()
	in, cmd := in.Update(msg)
	m.inputs[id] = in
	if in.Value() != before {
		_ = m.state.Rows.SetText(id, in.Value())
		m.cursor[id] = 0
	}
	return m, cmd
}

// commitTimes writes both time inputs into the window before a save.
func (m *Model) commitTimes() bool {
	if m.state.Window.AllDay {
		return true
	}
	return m.commitStart() && m.commitEnd()
}

// commitStart and commitEnd leave a rejected value in the input so it can be
// corrected; the window keeps its last valid time.
func (m *Model) commitStart() bool {
	if err := m.state.Window.SetStart(m.start.Value()); err != nil {
		m.setNotice("Start time must be HH:MM.", true)
		return false
	}
	m.start.SetValue(m.state.Window.Start)
	return true
}

func (m *Model) commitEnd() bool {
	if err := m.state.Window.SetEnd(m.end.Value()); err != nil {
		m.setNotice("End time must be HH:MM.", true)
		return false
	}
	m.end.SetValue(m.state.Window.End)
	return true
}

func validationNotice(err *form.ValidationError) string {
	return "These routes cannot be registered. Choose them from the suggestions: " +
		strings.Join(err.Names(), ", ")
}

func newRowInput(value string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Line name"
	in.CharLimit = 0 // unlimited; reference names vary in length
	in.Width = 36
	in.SetValue(value)
	return in
}

func newTimeInput() textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "HH:MM"
	in.CharLimit = 5
	in.Width = 5
	return in
}
