// Package ui is the Bubble Tea front end of delayalert.
//
// Model owns a *form.State once the Controller's Bootstrap returns and
// translates key events into form transitions: typing in a route row
// recomputes its suggestions, enter accepts the highlighted one, space
// toggles the focused checkbox. Saving validates locally first; only a
// clean payload reaches Controller.Save, and the form stays hidden behind
// the status line until the feedback pause ends.
//
// Files:
//
//   - app.go: Model, Update/View, messages and commands, Run
//   - form_input.go: focus order and per-field key handling
//   - form_view.go: rendering of the form, status and fatal screens
//   - keys.go, help.go: key bindings and the help overlay
//   - theme.go: color palettes and lipgloss styles
package ui
