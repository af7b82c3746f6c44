package backend

import (
	"context"

	"mlb-companion/internal/domain/schedule"
)

// ScheduleFeed selects which schedule feed to fetch.
type ScheduleFeed string

const (
	FeedMLB   ScheduleFeed = "mlb"
	FeedLocal ScheduleFeed = "local"
)

// Schedule fetches the multi-date schedule feed, grouped by date.
func (c *Client) Schedule(ctx context.Context, token string, feed ScheduleFeed) (schedule.Feed, error) {
	if feed == "" {
		feed = FeedMLB
	}
	var resp scheduleResponse
	if err := c.getJSON(ctx, EndpointSchedule, "/schedule/"+string(feed), token, &resp); err != nil {
		return schedule.Feed{}, err
	}
	return mapSchedule(resp), nil
}
