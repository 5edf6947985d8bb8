package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the form.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Save       key.Binding

	// Focus
	Next key.Binding
	Prev key.Binding

	// Route rows
	AddRow    key.Binding
	RemoveRow key.Binding
	Browse    key.Binding
	Up        key.Binding
	Down      key.Binding
	Accept    key.Binding
	Close     key.Binding

	// Checkboxes
	Toggle key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Save settings"),
		),

		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),

		AddRow: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "Add route"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "Remove route"),
		),
		Browse: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "Browse lines"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "Previous suggestion"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "Next suggestion"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Choose suggestion"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close suggestions"),
		),

		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle checkbox"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.AddRow, k.Save, k.Help, k.Quit}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.AddRow, k.RemoveRow, k.Browse, k.Up, k.Down, k.Accept, k.Close},
		{k.Toggle},
		{k.Save, k.CycleTheme, k.Help, k.Quit},
	}
}
