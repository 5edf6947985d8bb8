package form

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTooManyRoutes is returned by AddRow when the collection is full.
	ErrTooManyRoutes = fmt.Errorf("you can register up to %d routes", MaxRoutes)
	// ErrUnknownRow is returned when a RowID does not name a live row.
	ErrUnknownRow = errors.New("unknown route row")
	// ErrNoSession is returned when saving without an authenticated user.
	ErrNoSession = errors.New("no authenticated user")
	// ErrInvalidTime is returned for notification times not in HH:MM form.
	ErrInvalidTime = errors.New("time must be HH:MM")
)

// InvalidRow identifies a row rejected at save time.
type InvalidRow struct {
	ID   RowID
	Text string
}

// ValidationError lists every non-empty row that does not resolve to a
// reference route chosen from the suggestions.
type ValidationError struct {
	Rows []InvalidRow
}

func (e *ValidationError) Error() string {
	return "these routes cannot be registered, choose them from the suggestions: " + strings.Join(e.Names(), ", ")
}

// Names returns the offending row texts in display order.
func (e *ValidationError) Names() []string {
	names := make([]string, 0, len(e.Rows))
	for _, r := range e.Rows {
		names = append(names, r.Text)
	}
	return names
}
