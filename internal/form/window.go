package form

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultStartTime = "07:00"
	DefaultEndTime   = "09:00"
	timeLayout       = "15:04"
)

// Window is the notification time window. Start and End keep their values
// while AllDay is on so switching it off restores the previous window.
type Window struct {
	Start  string
	End    string
	AllDay bool
}

// NewWindow builds a Window, substituting defaults for blank or malformed
// times.
func NewWindow(start, end string, allDay bool) Window {
	w := Window{Start: DefaultStartTime, End: DefaultEndTime, AllDay: allDay}
	if v, ok := normalizeTime(start); ok {
		w.Start = v
	}
	if v, ok := normalizeTime(end); ok {
		w.End = v
	}
	return w
}

// SetStart updates the window start. Invalid input leaves it unchanged.
func (w *Window) SetStart(v string) error {
	t, ok := normalizeTime(v)
	if !ok {
		return fmt.Errorf("start %q: %w", v, ErrInvalidTime)
	}
	w.Start = t
	return nil
}

// SetEnd updates the window end. Invalid input leaves it unchanged.
func (w *Window) SetEnd(v string) error {
	t, ok := normalizeTime(v)
	if !ok {
		return fmt.Errorf("end %q: %w", v, ErrInvalidTime)
	}
	w.End = t
	return nil
}

// ToggleAllDay flips the all-day flag.
func (w *Window) ToggleAllDay() {
	w.AllDay = !w.AllDay
}

func normalizeTime(v string) (string, bool) {
	trimmed := strings.TrimSpace(v)
	if len(trimmed) != len(timeLayout) {
		return "", false
	}
	t, err := time.Parse(timeLayout, trimmed)
	if err != nil {
		return "", false
	}
	return t.Format(timeLayout), true
}
