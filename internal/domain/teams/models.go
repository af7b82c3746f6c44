package teams

// League or division reference attached to a team.
type Group struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Venue is the home ballpark of a team.
type Venue struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Team represents the normalized team shape proxied from the sports provider.
type Team struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	LocationName    string `json:"locationName"`
	Abbreviation    string `json:"abbreviation"`
	Venue           Venue  `json:"venue"`
	League          Group  `json:"league"`
	Division        Group  `json:"division"`
	FirstYearOfPlay string `json:"firstYearOfPlay"`
}

// RosterEntry is a single player slot on a team roster.
type RosterEntry struct {
	PersonID     int    `json:"personId"`
	FullName     string `json:"fullName"`
	PositionName string `json:"positionName"`
	JerseyNumber string `json:"jerseyNumber"`
}

// Detail is a team plus its current roster.
type Detail struct {
	Team   Team          `json:"team"`
	Roster []RosterEntry `json:"roster"`
}
