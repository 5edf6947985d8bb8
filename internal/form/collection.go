package form

import "github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"

// MaxRoutes is the number of route rows a user may register.
const MaxRoutes = 5

// Collection is the ordered list of route rows. Insertion order is display
// order and the length never exceeds MaxRoutes.
type Collection struct {
	index  routes.Index
	rows   []Row
	nextID RowID
}

// NewCollection returns an empty collection that suggests from ix.
func NewCollection(ix routes.Index) *Collection {
	return &Collection{index: ix, nextID: 1}
}

// Len reports the number of rows.
func (c *Collection) Len() int {
	return len(c.rows)
}

// Full reports whether AddRow would be refused.
func (c *Collection) Full() bool {
	return len(c.rows) >= MaxRoutes
}

// AddRow appends a row. A zero initial route yields an empty row; a route
// with both name and code yields a row already in the accepted state.
func (c *Collection) AddRow(initial routes.Route) (RowID, error) {
	if c.Full() {
		return 0, ErrTooManyRoutes
	}
	row := Row{ID: c.nextID, Text: initial.Name}
	if initial.Name != "" && initial.Code != "" {
		row.Code = initial.Code
		row.Valid = true
		row.Mode = ModeAccepted
	}
	c.nextID++
	c.rows = append(c.rows, row)
	return row.ID, nil
}

// RemoveRow deletes the row with id. Unknown ids are ignored.
func (c *Collection) RemoveRow(id RowID) {
	i := c.find(id)
	if i < 0 {
		return
	}
	c.rows = append(c.rows[:i], c.rows[i+1:]...)
}

// SetText records hand-typed text. Any resolved code and validity are
// dropped, the stale error mark is cleared and suggestions are recomputed.
func (c *Collection) SetText(id RowID, text string) error {
	row := c.row(id)
	if row == nil {
		return ErrUnknownRow
	}
	row.Text = text
	row.Code = ""
	row.Valid = false
	row.Flagged = false
	row.Mode = ModeEditing
	row.Suggestions = Suggest(c.index, text, false)
	row.PanelOpen = len(row.Suggestions) > 0
	return nil
}

// Browse opens the suggestion panel for id regardless of its text. An empty
// row shows the head of the reference list.
func (c *Collection) Browse(id RowID) error {
	row := c.row(id)
	if row == nil {
		return ErrUnknownRow
	}
	row.Suggestions = Suggest(c.index, row.Text, true)
	row.PanelOpen = len(row.Suggestions) > 0
	return nil
}

// AcceptSuggestion fills the row from r and closes its panel.
func (c *Collection) AcceptSuggestion(id RowID, r routes.Route) error {
	row := c.row(id)
	if row == nil {
		return ErrUnknownRow
	}
	row.Text = r.Name
	row.Code = r.Code
	row.Valid = true
	row.Flagged = false
	row.Mode = ModeAccepted
	row.Suggestions = nil
	row.PanelOpen = false
	return nil
}

// ClosePanel hides the suggestion panel for id without touching its text.
func (c *Collection) ClosePanel(id RowID) {
	if row := c.row(id); row != nil {
		row.PanelOpen = false
	}
}

// Row returns a copy of the row with id.
func (c *Collection) Row(id RowID) (Row, bool) {
	row := c.row(id)
	if row == nil {
		return Row{}, false
	}
	return row.clone(), true
}

// Rows returns a copy of every row in display order.
func (c *Collection) Rows() []Row {
	out := make([]Row, len(c.rows))
	for i, r := range c.rows {
		out[i] = r.clone()
	}
	return out
}

// IDs returns the row handles in display order.
func (c *Collection) IDs() []RowID {
	ids := make([]RowID, len(c.rows))
	for i, r := range c.rows {
		ids[i] = r.ID
	}
	return ids
}

func (c *Collection) find(id RowID) int {
	for i := range c.rows {
		if c.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection) row(id RowID) *Row {
	if i := c.find(id); i >= 0 {
		return &c.rows[i]
	}
	return nil
}
