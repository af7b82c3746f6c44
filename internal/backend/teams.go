package backend

import (
	"context"
	"strconv"

	"mlb-companion/internal/domain/teams"
)

// Teams fetches the full team directory.
func (c *Client) Teams(ctx context.Context, token string) ([]teams.Team, error) {
	var resp teamsResponse
	if err := c.getJSON(ctx, EndpointTeams, "/teams/mlb/teams", token, &resp); err != nil {
		return nil, err
	}
	out := make([]teams.Team, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		out = append(out, mapTeam(t))
	}
	return out, nil
}

// Team fetches a single team with its current roster.
func (c *Client) Team(ctx context.Context, token string, id int) (teams.Detail, error) {
	var resp teamDetailResponse
	if err := c.getJSON(ctx, EndpointTeam, "/teams/mlb/team/"+strconv.Itoa(id), token, &resp); err != nil {
		return teams.Detail{}, err
	}
	return teams.Detail{
		Team:   mapTeam(resp.Team),
		Roster: mapRoster(resp.Roster),
	}, nil
}

// TeamLogo fetches a team logo as a binary blob.
func (c *Client) TeamLogo(ctx context.Context, token string, id int) (Media, error) {
	return c.media(ctx, EndpointTeamLogo, "/teams/mlb/team/"+strconv.Itoa(id)+"/logo", token)
}
