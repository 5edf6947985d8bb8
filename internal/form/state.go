package form

import (
	"strings"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"
)

// Settings is a saved configuration as returned by the settings exchange.
type Settings struct {
	UserID                string
	Routes                []routes.Route
	NotificationStartTime string
	NotificationEndTime   string
	IsAllDay              bool
	// NotificationDays is nil when the backend has never stored a selection.
	NotificationDays []string
}

// Payload is the configuration handed to the save call.
type Payload struct {
	UserID                string
	Routes                []routes.Route
	NotificationStartTime string
	NotificationEndTime   string
	IsAllDay              bool
	NotificationDays      []string
}

// State is the whole form: identity, reference data and every editable
// field. It is owned by a single event loop and is not safe for concurrent
// use.
type State struct {
	Session Session
	Index   routes.Index
	Rows    *Collection
	Days    DaySet
	Window  Window
}

// NewState materialises the form from prior settings. Saved routes beyond
// MaxRoutes are dropped; with no saved routes a single empty row is shown.
func NewState(session Session, ix routes.Index, prior Settings) *State {
	s := &State{
		Session: session,
		Index:   ix,
		Rows:    NewCollection(ix),
		Days:    NewDaySet(prior.NotificationDays),
		Window:  NewWindow(prior.NotificationStartTime, prior.NotificationEndTime, prior.IsAllDay),
	}
	for _, r := range prior.Routes {
		if _, err := s.Rows.AddRow(r); err != nil {
			break
		}
	}
	if s.Rows.Len() == 0 {
		_, _ = s.Rows.AddRow(routes.Route{})
	}
	return s
}

// ValidateForSave checks every non-empty row and builds the save payload.
// A row passes only when it carries a code and its text is an exact
// reference name; failing rows are flagged and reported in a
// *ValidationError. Calling it again without edits yields the same result.
func (s *State) ValidateForSave() (Payload, error) {
	if strings.TrimSpace(s.Session.UserID) == "" {
		return Payload{}, ErrNoSession
	}

	var invalid []InvalidRow
	for i := range s.Rows.rows {
		row := &s.Rows.rows[i]
		text := strings.TrimSpace(row.Text)
		if text == "" {
			row.Flagged = false
			continue
		}
		_, exact := s.Index.FindExact(text)
		if !row.Resolved() || !exact {
			row.Flagged = true
			row.Valid = false
			invalid = append(invalid, InvalidRow{ID: row.ID, Text: text})
			continue
		}
		row.Flagged = false
	}
	if len(invalid) > 0 {
		return Payload{}, &ValidationError{Rows: invalid}
	}

	selected := make([]routes.Route, 0, s.Rows.Len())
	for i := range s.Rows.rows {
		row := &s.Rows.rows[i]
		text := strings.TrimSpace(row.Text)
		if text == "" {
			continue
		}
		resolved := s.resolve(text, row.Code)
		row.Code = resolved.Code
		row.Valid = true
		selected = append(selected, resolved)
	}

	return Payload{
		UserID:                s.Session.UserID,
		Routes:                selected,
		NotificationStartTime: s.Window.Start,
		NotificationEndTime:   s.Window.End,
		IsAllDay:              s.Window.AllDay,
		NotificationDays:      s.Days.Codes(),
	}, nil
}

// resolve keeps the accepted code when that exact pair is a reference entry
// and falls back to the first entry with the same name otherwise.
func (s *State) resolve(name, code string) routes.Route {
	candidate := routes.Route{Name: name, Code: code}
	if s.Index.Has(candidate) {
		return candidate
	}
	r, _ := s.Index.FindExact(name)
	return r
}
