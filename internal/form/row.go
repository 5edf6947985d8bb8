package form

import "github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"

// RowID is a stable handle for one route row. Handles are never reused
// within a Collection.
type RowID int

// Mode is the edit state of a row.
type Mode int

const (
	// ModeEditing means the text was typed by hand since the last acceptance.
	ModeEditing Mode = iota
	// ModeAccepted means the text came from an accepted suggestion or from
	// saved settings carrying a code.
	ModeAccepted
)

func (m Mode) String() string {
	if m == ModeAccepted {
		return "accepted"
	}
	return "editing"
}

// Row is the state of one route slot.
type Row struct {
	ID   RowID
	Text string
	// Code is the resolved line code; empty when unresolved.
	Code string
	// Valid is set once the row resolves to a reference route.
	Valid bool
	// Flagged marks a row rejected by the last save attempt.
	Flagged bool
	Mode    Mode

	Suggestions []routes.Route
	PanelOpen   bool
}

// Resolved reports whether the row carries a code.
func (r Row) Resolved() bool {
	return r.Code != ""
}

func (r Row) clone() Row {
	if len(r.Suggestions) > 0 {
		dup := make([]routes.Route, len(r.Suggestions))
		copy(dup, r.Suggestions)
		r.Suggestions = dup
	}
	return r
}
