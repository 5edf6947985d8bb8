package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"
)

func TestNewState_Defaults(t *testing.T) {
	s := NewState(testSession(), testIndex(), Settings{UserID: "U1234567890"})

	require.Equal(t, 1, s.Rows.Len(), "one empty row when nothing is saved")
	assert.Equal(t, "", s.Rows.Rows()[0].Text)
	assert.Equal(t, DefaultDays(), s.Days.Codes())
	assert.Equal(t, Window{Start: "07:00", End: "09:00"}, s.Window)
}

func TestNewState_FromPriorSettings(t *testing.T) {
	prior := Settings{
		UserID: "U1",
		Routes: []routes.Route{
			{Name: "Foo Line", Code: "100"},
			{Name: "Yamanote Line", Code: "11302"},
		},
		NotificationStartTime: "06:45",
		NotificationEndTime:   "08:30",
		IsAllDay:              true,
		NotificationDays:      []string{"sat", "sun"},
	}
	s := NewState(Session{UserID: "U1"}, testIndex(), prior)

	rows := s.Rows.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Yamanote Line", rows[1].Text)
	assert.Equal(t, "11302", rows[1].Code)
	assert.Equal(t, []string{"sat", "sun"}, s.Days.Codes())
	assert.Equal(t, Window{Start: "06:45", End: "08:30", AllDay: true}, s.Window)
}

func TestNewState_NameOnlySavedRouteNeedsReselect(t *testing.T) {
	prior := Settings{UserID: "U1", Routes: []routes.Route{{Name: "Yamanote Line"}}}
	s := NewState(Session{UserID: "U1"}, testIndex(), prior)

	rows := s.Rows.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Yamanote Line", rows[0].Text)
	assert.Equal(t, ModeEditing, rows[0].Mode)
	assert.False(t, rows[0].Resolved())

	_, err := s.ValidateForSave()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Yamanote Line"}, verr.Names())

	require.NoError(t, s.Rows.AcceptSuggestion(rows[0].ID, routes.Route{Name: "Yamanote Line", Code: "11302"}))
	p, err := s.ValidateForSave()
	require.NoError(t, err)
	assert.Equal(t, []routes.Route{{Name: "Yamanote Line", Code: "11302"}}, p.Routes)
}

func TestNewState_TruncatesSavedRoutes(t *testing.T) {
	var saved []routes.Route
	for i := 0; i < MaxRoutes+2; i++ {
		saved = append(saved, routes.Route{Name: "Foo Line", Code: "100"})
	}
	s := NewState(testSession(), testIndex(), Settings{Routes: saved})
	assert.Equal(t, MaxRoutes, s.Rows.Len())
}

func TestValidateForSave_BlankRowsGiveEmptyRoutes(t *testing.T) {
	s := NewState(testSession(), testIndex(), Settings{})
	id, _ := s.Rows.AddRow(routes.Route{})
	require.NoError(t, s.Rows.SetText(id, "   "))

	p, err := s.ValidateForSave()
	require.NoError(t, err)
	require.NotNil(t, p.Routes)
	assert.Empty(t, p.Routes)
	assert.Equal(t, "U1234567890", p.UserID)
	assert.Equal(t, []string{"mon", "tue", "wed", "thu", "fri"}, p.NotificationDays)
	assert.Equal(t, "07:00", p.NotificationStartTime)
	assert.Equal(t, "09:00", p.NotificationEndTime)
	assert.False(t, p.IsAllDay)
}

func TestValidateForSave_RejectsTypedExactName(t *testing.T) {
	s := NewState(testSession(), testIndex(), Settings{})
	id := s.Rows.IDs()[0]
	require.NoError(t, s.Rows.SetText(id, "Foo Line"))

	_, err := s.ValidateForSave()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Rows, 1)
	assert.Equal(t, id, verr.Rows[0].ID)
	assert.Equal(t, "Foo Line", verr.Rows[0].Text)
	assert.Contains(t, err.Error(), "Foo Line")

	row, _ := s.Rows.Row(id)
	assert.True(t, row.Flagged)
}

func TestValidateForSave_ReportsEveryBadRow(t *testing.T) {
	s := NewState(testSession(), testIndex(), Settings{Routes: []routes.Route{{Name: "Foo Line", Code: "100"}}})
	b, _ := s.Rows.AddRow(routes.Route{})
	c, _ := s.Rows.AddRow(routes.Route{})
	require.NoError(t, s.Rows.SetText(b, "Nowhere Line"))
	require.NoError(t, s.Rows.SetText(c, "Chuo"))

	_, err := s.ValidateForSave()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Nowhere Line", "Chuo"}, verr.Names())
}

func TestValidateForSave_AcceptRoundTrip(t *testing.T) {
	ix := testIndex()
	for _, r := range ix.First(ix.Len()) {
		s := NewState(testSession(), ix, Settings{})
		id := s.Rows.IDs()[0]
		require.NoError(t, s.Rows.AcceptSuggestion(id, r))

		p, err := s.ValidateForSave()
		require.NoError(t, err)
		require.Len(t, p.Routes, 1)
		assert.Equal(t, r, p.Routes[0])
	}
}

func TestValidateForSave_KeepsCodeForDuplicateNames(t *testing.T) {
	ix := routes.NewIndex([]routes.Route{
		{Name: "Tokaido Line", Code: "11301"},
		{Name: "Tokaido Line", Code: "11343"},
	})
	s := NewState(testSession(), ix, Settings{})
	id := s.Rows.IDs()[0]
	require.NoError(t, s.Rows.AcceptSuggestion(id, routes.Route{Name: "Tokaido Line", Code: "11343"}))

	p, err := s.ValidateForSave()
	require.NoError(t, err)
	assert.Equal(t, "11343", p.Routes[0].Code)
}

func TestValidateForSave_RederivesForeignCode(t *testing.T) {
	s := NewState(testSession(), testIndex(), Settings{Routes: []routes.Route{{Name: "Foo Line", Code: "stale"}}})

	p, err := s.ValidateForSave()
	require.NoError(t, err)
	assert.Equal(t, "100", p.Routes[0].Code)
	row := s.Rows.Rows()[0]
	assert.Equal(t, "100", row.Code)
}

func TestValidateForSave_Idempotent(t *testing.T) {
	s := NewState(testSession(), testIndex(), Settings{Routes: []routes.Route{{Name: "Foo Line", Code: "100"}}})
	p1, err1 := s.ValidateForSave()
	p2, err2 := s.ValidateForSave()
	assert.Equal(t, p1, p2)
	assert.Equal(t, err1, err2)

	id, _ := s.Rows.AddRow(routes.Route{})
	require.NoError(t, s.Rows.SetText(id, "bogus"))
	_, err1 = s.ValidateForSave()
	_, err2 = s.ValidateForSave()
	assert.Equal(t, err1, err2)
}

func TestValidateForSave_EmptyIndexRejectsEverything(t *testing.T) {
	var ix routes.Index
	s := NewState(testSession(), ix, Settings{Routes: []routes.Route{{Name: "Foo Line", Code: "100"}}})
	id, _ := s.Rows.AddRow(routes.Route{})
	require.NoError(t, s.Rows.SetText(id, "Yamanote Line"))
	assert.Empty(t, s.Rows.Rows()[1].Suggestions)

	_, err := s.ValidateForSave()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Rows, 2)
}

func TestValidateForSave_RequiresSession(t *testing.T) {
	s := NewState(Session{}, testIndex(), Settings{})
	_, err := s.ValidateForSave()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestValidateForSave_CarriesDaysAndWindow(t *testing.T) {
	s := NewState(testSession(), testIndex(), Settings{NotificationDays: []string{}})
	s.Days.Toggle(Sunday)
	s.Days.Toggle(Monday)
	s.Window.ToggleAllDay()

	p, err := s.ValidateForSave()
	require.NoError(t, err)
	assert.Equal(t, []string{"mon", "sun"}, p.NotificationDays)
	assert.True(t, p.IsAllDay)
	assert.Equal(t, "07:00", p.NotificationStartTime, "times are kept while all-day")
}

func TestNewSession(t *testing.T) {
	_, err := NewSession("  ")
	assert.ErrorIs(t, err, ErrNoSession)

	s, err := NewSession(" U1 ")
	require.NoError(t, err)
	assert.Equal(t, "U1", s.UserID)
}
