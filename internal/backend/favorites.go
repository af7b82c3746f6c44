package backend

import (
	"context"
	"strconv"

	"mlb-companion/internal/domain/users"
)

// Favorite-team update actions accepted by the backend.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// FavoriteTeams fetches the user's favorite teams. A 204 from the
// backend means the user has none; that is an empty state, not an error.
func (c *Client) FavoriteTeams(ctx context.Context, token string, userID int) ([]users.FavoriteTeam, error) {
	var favs []users.FavoriteTeam
	if err := c.getJSON(ctx, EndpointFavorites, "/favorite-teams/user/"+strconv.Itoa(userID), token, &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

// UpdateFavoriteTeams applies one add or remove mutation for the given team names.
func (c *Client) UpdateFavoriteTeams(ctx context.Context, token string, userID int, action string, teamNames []string) error {
	return c.postJSON(ctx, EndpointUpdateFavorites, "/favorite-teams/user/"+strconv.Itoa(userID)+"/update", token, favoritesUpdateRequest{
		Action:    action,
		TeamNames: teamNames,
	}, nil)
}
