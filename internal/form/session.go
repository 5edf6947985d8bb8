package form

import "strings"

// Session identifies the authenticated user for the lifetime of the form.
type Session struct {
	UserID string
}

// NewSession rejects a blank user id.
func NewSession(userID string) (Session, error) {
	id := strings.TrimSpace(userID)
	if id == "" {
		return Session{}, ErrNoSession
	}
	return Session{UserID: id}, nil
}
