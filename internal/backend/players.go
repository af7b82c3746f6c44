package backend

import (
	"context"
	"errors"
	"strconv"

	"mlb-companion/internal/domain/players"
)

// ErrPlayerNotFound marks a player lookup whose response carried no people.
var ErrPlayerNotFound = errors.New("backend: player not found")

// Player fetches a single player by id. The upstream wraps the result in
// a one-element people array.
func (c *Client) Player(ctx context.Context, token string, id int) (players.Player, error) {
	var resp playerResponse
	if err := c.getJSON(ctx, EndpointPlayer, "/players/"+strconv.Itoa(id), token, &resp); err != nil {
		return players.Player{}, err
	}
	if len(resp.People) == 0 {
		return players.Player{}, ErrPlayerNotFound
	}
	return mapPlayer(resp.People[0]), nil
}

// PlayerPhoto fetches a player photo; the backend returns either image
// bytes or a URL to the image.
func (c *Client) PlayerPhoto(ctx context.Context, token string, id int) (Media, error) {
	return c.media(ctx, EndpointPlayerPhoto, "/players/"+strconv.Itoa(id)+"/photo", token)
}
