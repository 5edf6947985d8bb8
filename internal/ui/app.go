package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/form"
	"github.com/Seiya-Nakagawa/train-delay-alert/internal/prefs"
	"github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"
)

const (
	feedbackDuration = 1500 * time.Millisecond

	statusSaving    = "Saving..."
	statusSaved     = "Saved."
	statusSaveError = "Error: failed to save."

	fallbackBootMessage = "Error: failed to load your user information. Please try again later."
)

// Controller runs the flows that reach outside the form.
type Controller interface {
	Bootstrap(ctx context.Context) (*form.State, error)
	Save(ctx context.Context, payload form.Payload) error
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller Controller
	ThemeName  string
	PrefsPath  string
}

// phase is the top-level screen being shown.
type phase int

const (
	phaseLoading phase = iota
	phaseEditing
	phaseSaving
	phaseFeedback
	phaseFatal
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller Controller
	prefsPath  string
	keys       keyMap

	// UI state
	theme  Theme
	width  int
	height int
	phase  phase

	// Form state
	state  *form.State
	inputs map[form.RowID]textinput.Model
	cursor map[form.RowID]int
	start  textinput.Model
	end    textinput.Model
	focus  int

	// Message area: notice stays under the form, status replaces it while
	// saving, fatal replaces everything.
	notice    string
	noticeErr bool
	status    string
	statusErr bool
	fatal     string

	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:        ctx,
		controller: opts.Controller,
		prefsPath:  prefsPath,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),
		phase:      phaseLoading,
		inputs:     make(map[form.RowID]textinput.Model),
		cursor:     make(map[form.RowID]int),
		start:      newTimeInput(),
		end:        newTimeInput(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return bootCmd(m.ctx, m.controller)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bootMsg:
		return m.handleBoot(msg)

	case savedMsg:
		m.phase = phaseFeedback
		if msg.err != nil {
			m.status = statusSaveError
			m.statusErr = true
		} else {
			m.status = statusSaved
			m.statusErr = false
			m.notice = ""
		}
		return m, restoreCmd(feedbackDuration)

	case restoreMsg:
		if m.phase == phaseFeedback {
			m.phase = phaseEditing
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.phase {
	case phaseLoading:
		return "Loading..."
	case phaseFatal:
		return m.renderFatal()
	case phaseSaving, phaseFeedback:
		return m.renderStatus()
	default:
		return m.renderForm()
	}
}

func (m Model) handleBoot(msg bootMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.phase = phaseFatal
		m.fatal = fallbackBootMessage
		var friendly interface{ UserMessage() string }
		if errors.As(msg.err, &friendly) {
			m.fatal = friendly.UserMessage()
		}
		return m, nil
	}

	m.state = msg.state
	m.start.SetValue(m.state.Window.Start)
	m.end.SetValue(m.state.Window.End)
	for _, row := range m.state.Rows.Rows() {
		m.inputs[row.ID] = newRowInput(row.Text)
	}
	m.phase = phaseEditing
	m.focus = 0
	return m, m.enterFocus()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// Saving and the feedback pause ignore input so saves never overlap.
	if m.phase != phaseEditing {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.AddRow):
		return m.addRow()

	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	return m.handleFieldKey(msg)
}

// save commits pending time edits, validates and hands the payload off.
func (m Model) save() (tea.Model, tea.Cmd) {
	if !m.commitTimes() {
		return m, nil
	}

	payload, err := m.state.ValidateForSave()
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			m.setNotice(validationNotice(verr), true)
		} else {
			m.setNotice("Error: "+err.Error()+".", true)
		}
		return m, nil
	}

	m.closeFocusedPanel()
	m.phase = phaseSaving
	m.status = statusSaving
	m.statusErr = false
	return m, saveCmd(m.ctx, m.controller, payload)
}

func (m Model) addRow() (tea.Model, tea.Cmd) {
	if m.state.Rows.Full() {
		m.setNotice("You can register up to 5 routes.", true)
		return m, nil
	}
	m.leaveFocus()
	id, err := m.state.Rows.AddRow(routes.Route{})
	if err != nil {
		m.setNotice("You can register up to 5 routes.", true)
		return m, nil
	}
	m.inputs[id] = newRowInput("")
	m.focus = m.state.Rows.Len() - 1
	return m, m.enterFocus()
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Controller == nil {
		return errors.New("ui requires a controller")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}

// Messages

type bootMsg struct {
	state *form.State
	err   error
}

type savedMsg struct {
	err error
}

type restoreMsg struct{}

// Commands

func bootCmd(ctx context.Context, c Controller) tea.Cmd {
	return func() tea.Msg {
		state, err := c.Bootstrap(ctx)
		return bootMsg{state: state, err: err}
	}
}

func saveCmd(ctx context.Context, c Controller, payload form.Payload) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: c.Save(ctx, payload)}
	}
}

func restoreCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return restoreMsg{}
	})
}
