package backend

import "context"

// CalendarStatus is the backend's view of the user's Google Calendar link.
type CalendarStatus string

const (
	CalendarValid   CalendarStatus = "valid"
	CalendarExpired CalendarStatus = "expired"
	CalendarNoToken CalendarStatus = "no_token"
)

// CheckCalendar reports whether the user's calendar authorization is
// valid, expired, or absent.
func (c *Client) CheckCalendar(ctx context.Context, token string) (CalendarStatus, error) {
	var resp calendarStatusResponse
	if err := c.getJSON(ctx, EndpointCalendarCheck, "/google/calendar/check", token, &resp); err != nil {
		return "", err
	}
	return CalendarStatus(resp.Status), nil
}

// CalendarAuthURL is the backend route that starts a new authorization
// flow. The template opens it in a new browsing context; the flow itself
// is owned by the backend.
func (c *Client) CalendarAuthURL() string {
	return c.baseURL + "/google/calendar/auth"
}

// CreateGameEvent writes a game to the user's calendar.
func (c *Client) CreateGameEvent(ctx context.Context, token string, event GameEvent) error {
	return c.postJSON(ctx, EndpointCalendarEvent, "/google/calendar/event/game", token, event, nil)
}
