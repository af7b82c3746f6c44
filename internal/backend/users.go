package backend

import (
	"context"

	"mlb-companion/internal/domain/users"
)

// CurrentUser fetches the profile of the authenticated user.
func (c *Client) CurrentUser(ctx context.Context, token string) (users.User, error) {
	var user users.User
	if err := c.getJSON(ctx, EndpointCurrentUser, "/users/current", token, &user); err != nil {
		return users.User{}, err
	}
	return user, nil
}
