package users

// User mirrors the backend profile shape.
type User struct {
	ID                     int      `json:"id"`
	Username               string   `json:"username"`
	Email                  string   `json:"email"`
	FavoriteTeams          []string `json:"favoriteTeams"`
	HasGoogleCalendarToken bool     `json:"hasGoogleCalendarToken"`
}

// FavoriteTeam is the many-to-many edge between a user and a team name.
type FavoriteTeam struct {
	TeamName string `json:"teamName"`
}

// Names extracts the plain team names from a favorites list.
func Names(favs []FavoriteTeam) []string {
	out := make([]string, 0, len(favs))
	for _, f := range favs {
		out = append(out, f.TeamName)
	}
	return out
}
