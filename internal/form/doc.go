// Package form is the route selection form controller.
//
// State owns everything the user edits: an ordered Collection of at most
// MaxRoutes route rows, the notification DaySet and Window, plus the Session
// and the reference routes.Index they are checked against.
//
// Every user action maps to one transition function (Collection.SetText,
// Collection.AcceptSuggestion, DaySet.Toggle, Window.ToggleAllDay, ...).
// Rendering lives in package ui, which only translates key events into these
// calls.
//
// A row is either being edited by hand or holds an accepted suggestion.
// Hand edits always drop the resolved code, so a typed name that happens to
// equal a reference name is still rejected by State.ValidateForSave until it
// is picked from the suggestions.
//
// State is not safe for concurrent use; it is driven from a single event
// loop.
package form
