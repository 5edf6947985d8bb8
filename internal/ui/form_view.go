package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/form"
)

const maxVisibleSuggestions = 10

// renderForm renders the editable form.
func (m Model) renderForm() string {
	styles := m.theme.Styles()
	current, _ := m.focused()

	var b strings.Builder
	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n\n")

	b.WriteString(m.renderRoutes(styles, current))
	b.WriteString("\n")
	b.WriteString(m.renderWindow(styles, current))
	b.WriteString("\n")
	b.WriteString(m.renderDays(styles, current))

	if m.notice != "" {
		b.WriteString("\n")
		if m.noticeErr {
			b.WriteString(styles.DangerText.Render(m.notice))
		} else {
			b.WriteString(styles.InfoText.Render(m.notice))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter(styles))
	return b.String()
}

func (m Model) renderHeader(styles Styles) string {
	title := styles.AccentText.Bold(true).Render("delayalert")
	sub := styles.MutedText.Render("Delay notification settings")
	line := title + "  " + sub
	if m.width > 0 {
		return styles.Header.Width(m.width).Render(line)
	}
	return styles.Header.Render(line)
}

func (m Model) renderFooter(styles Styles) string {
	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		hints = append(hints, styles.WarningText.Render(h.Key)+" "+h.Desc)
	}
	line := strings.Join(hints, "  ")
	if m.width > 0 {
		return styles.Footer.Width(m.width).Render(line)
	}
	return styles.Footer.Render(line)
}

func (m Model) renderRoutes(styles Styles, current field) string {
	var b strings.Builder
	rows := m.state.Rows.Rows()

	heading := fmt.Sprintf("Routes %d/%d", len(rows), form.MaxRoutes)
	b.WriteString(styles.Text.Bold(true).Render(heading))
	b.WriteString("\n")

	for _, row := range rows {
		focused := current.kind == fieldRow && current.row == row.ID
		b.WriteString(m.renderRow(styles, row, focused))
		b.WriteString("\n")
		if focused && row.PanelOpen && len(row.Suggestions) > 0 {
			b.WriteString(m.renderSuggestions(styles, row))
			b.WriteString("\n")
		}
	}

	if m.state.Rows.Full() {
		b.WriteString(styles.FaintText.Render("Route limit reached"))
	} else {
		b.WriteString(styles.FaintText.Render("+ ctrl+n add route"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderRow(styles Styles, row form.Row, focused bool) string {
	box := styles.Field
	switch {
	case row.Flagged:
		box = styles.FieldError
	case focused:
		box = styles.FieldFocus
	}

	input := m.inputs[row.ID]
	marker := "  "
	if focused {
		marker = styles.AccentText.Render("> ")
	}

	var mark string
	switch {
	case row.Flagged:
		mark = styles.DangerText.Render("!")
	case row.Valid:
		mark = styles.SuccessText.Render("✓")
	default:
		mark = " "
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, marker, box.Render(input.View()), " ", mark)
}

func (m Model) renderSuggestions(styles Styles, row form.Row) string {
	cursor := m.cursor[row.ID]
	start := 0
	if cursor >= maxVisibleSuggestions {
		start = cursor - maxVisibleSuggestions + 1
	}
	end := min(start+maxVisibleSuggestions, len(row.Suggestions))

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		name := row.Suggestions[i].Name
		if i == cursor {
			lines = append(lines, styles.Selected.Render(" "+name+" "))
		} else {
			lines = append(lines, " "+name+" ")
		}
	}
	if more := len(row.Suggestions) - end; more > 0 {
		lines = append(lines, styles.FaintText.Render(fmt.Sprintf(" %d more", more)))
	}
	return lipgloss.NewStyle().MarginLeft(4).Render(styles.Panel.Render(strings.Join(lines, "\n")))
}

func (m Model) renderWindow(styles Styles, current field) string {
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Notification time"))
	b.WriteString("\n")
	b.WriteString(m.checkbox(styles, "All day", m.state.Window.AllDay, current.kind == fieldAllDay))
	b.WriteString("\n")

	timeBox := func(label string, in string, kind fieldKind) string {
		box := styles.Field
		switch {
		case m.state.Window.AllDay:
			box = styles.FieldDisabled
		case current.kind == kind:
			box = styles.FieldFocus
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, styles.MutedText.Render(label+" "), box.Render(in))
	}

	startView, endView := m.start.View(), m.end.View()
	if m.state.Window.AllDay {
		startView, endView = m.state.Window.Start, m.state.Window.End
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		"  ",
		timeBox("Start", startView, fieldStart),
		"  ",
		timeBox("End", endView, fieldEnd),
	))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderDays(styles Styles, current field) string {
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Days"))
	b.WriteString("\n")
	b.WriteString(m.checkbox(styles, "Every day", m.state.Days.All(), current.kind == fieldEveryDay))
	b.WriteString("\n")

	boxes := make([]string, 0, len(form.AllDays))
	for _, d := range form.AllDays {
		focused := current.kind == fieldDay && current.day == d
		boxes = append(boxes, m.checkbox(styles, d.Label(), m.state.Days.Selected(d), focused))
	}
	b.WriteString(strings.Join(boxes, " "))
	b.WriteString("\n")
	return b.String()
}

func (m Model) checkbox(styles Styles, label string, on, focused bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	text := box + " " + label
	if focused {
		return styles.Selected.Render("> " + text)
	}
	return styles.Text.Render("  " + text)
}

// renderStatus replaces the form while a save is in flight or just finished.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	var msg string
	switch {
	case m.statusErr:
		msg = styles.DangerText.Render(m.status)
	case m.phase == phaseFeedback:
		msg = styles.SuccessText.Render(m.status)
	default:
		msg = styles.MutedText.Render(m.status)
	}
	return m.centered(msg)
}

// renderFatal shows a blocking error in place of the form.
func (m Model) renderFatal() string {
	styles := m.theme.Styles()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(60)
	content := styles.DangerText.Render(m.fatal) + "\n\n" + styles.FaintText.Render("ctrl+c to quit")
	return m.centered(box.Render(content))
}

func (m Model) centered(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
