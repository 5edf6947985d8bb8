package backend

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/form"
	"github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"
)

// exchangeRequest is posted to trade a login code for the user's settings.
type exchangeRequest struct {
	AuthorizationCode string `json:"authorizationCode"`
}

// SettingsResponse mirrors the exchange response body.
type SettingsResponse struct {
	LineUserID            string         `json:"lineUserId"`
	Routes                []savedRoute `json:"routes"`
	NotificationStartTime string       `json:"notificationStartTime"`
	NotificationEndTime   string       `json:"notificationEndTime"`
	IsAllDay              bool         `json:"isAllDay"`
	NotificationDays      []string     `json:"notificationDays"`
}

// savedRoute is one stored route. Older records hold only the line name as
// a bare string; newer ones hold the {line_name, line_cd} object.
type savedRoute routes.Route

func (r *savedRoute) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return fmt.Errorf("decode route name: %w", err)
		}
		*r = savedRoute{Name: name}
		return nil
	}
	var obj routes.Route
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return err
	}
	*r = savedRoute(obj)
	return nil
}

// SaveRequest mirrors the save request body.
type SaveRequest struct {
	LineUserID            string         `json:"lineUserId"`
	Routes                []routes.Route `json:"routes"`
	NotificationStartTime string         `json:"notificationStartTime"`
	NotificationEndTime   string         `json:"notificationEndTime"`
	IsAllDay              bool           `json:"isAllDay"`
	NotificationDays      []string       `json:"notificationDays"`
}

// Settings converts the response into form settings.
func (r SettingsResponse) Settings() form.Settings {
	return form.Settings{
		UserID:                r.LineUserID,
		Routes:                r.savedRoutes(),
		NotificationStartTime: r.NotificationStartTime,
		NotificationEndTime:   r.NotificationEndTime,
		IsAllDay:              r.IsAllDay,
		NotificationDays:      r.NotificationDays,
	}
}

func (r SettingsResponse) savedRoutes() []routes.Route {
	if r.Routes == nil {
		return nil
	}
	out := make([]routes.Route, 0, len(r.Routes))
	for _, sr := range r.Routes {
		out = append(out, routes.Route(sr))
	}
	return out
}

// NewSaveRequest converts a validated payload into the wire shape. Nil
// slices are sent as empty arrays.
func NewSaveRequest(p form.Payload) SaveRequest {
	req := SaveRequest{
		LineUserID:            p.UserID,
		Routes:                p.Routes,
		NotificationStartTime: p.NotificationStartTime,
		NotificationEndTime:   p.NotificationEndTime,
		IsAllDay:              p.IsAllDay,
		NotificationDays:      p.NotificationDays,
	}
	if req.Routes == nil {
		req.Routes = []routes.Route{}
	}
	if req.NotificationDays == nil {
		req.NotificationDays = []string{}
	}
	return req
}
