package form

import "strings"

// Day is a day of the week in canonical Monday-first order.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayCodes = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var dayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// AllDays lists the seven days in canonical order.
var AllDays = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Code returns the wire code, e.g. "mon".
func (d Day) Code() string { return dayCodes[d] }

// Label returns a short display label, e.g. "Mon".
func (d Day) Label() string { return dayLabels[d] }

// ParseDay maps a wire code to a Day.
func ParseDay(code string) (Day, bool) {
	c := strings.ToLower(strings.TrimSpace(code))
	for i, known := range dayCodes {
		if known == c {
			return Day(i), true
		}
	}
	return 0, false
}

// DefaultDays is the selection used when no saved settings exist.
func DefaultDays() []string {
	return []string{"mon", "tue", "wed", "thu", "fri"}
}

// DaySet is the notification day selection plus its "every day" aggregate.
// The aggregate is on exactly when all seven days are selected.
type DaySet struct {
	days [7]bool
	all  bool
}

// NewDaySet selects the given day codes. A nil slice selects the weekday
// default; unknown codes are ignored.
func NewDaySet(codes []string) DaySet {
	if codes == nil {
		codes = DefaultDays()
	}
	var s DaySet
	for _, code := range codes {
		if d, ok := ParseDay(code); ok {
			s.days[d] = true
		}
	}
	s.recompute()
	return s
}

// Toggle flips one day and recomputes the aggregate.
func (s *DaySet) Toggle(d Day) {
	s.days[d] = !s.days[d]
	s.recompute()
}

// ToggleAll flips the aggregate and applies it to every day.
func (s *DaySet) ToggleAll() {
	s.SetAll(!s.all)
}

// SetAll sets the aggregate and every day to on.
func (s *DaySet) SetAll(on bool) {
	for i := range s.days {
		s.days[i] = on
	}
	s.all = on
}

// Selected reports whether d is selected.
func (s DaySet) Selected(d Day) bool { return s.days[d] }

// All reports the aggregate toggle.
func (s DaySet) All() bool { return s.all }

// Codes returns the selected day codes in canonical order.
func (s DaySet) Codes() []string {
	out := make([]string, 0, len(s.days))
	for _, d := range AllDays {
		if s.days[d] {
			out = append(out, d.Code())
		}
	}
	return out
}

func (s *DaySet) recompute() {
	all := true
	for _, on := range s.days {
		all = all && on
	}
	s.all = all
}
