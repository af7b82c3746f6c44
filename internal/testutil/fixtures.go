package testutil

import (
	"time"

	"mlb-companion/internal/domain/schedule"
	"mlb-companion/internal/domain/teams"
	"mlb-companion/internal/domain/users"
)

// SampleGame returns a game fixture on the given date.
func SampleGame(pk int, date string, start time.Time, away, home string) schedule.Game {
	return schedule.Game{
		GamePk:       pk,
		DateTime:     start,
		OfficialDate: date,
		Away:         schedule.Participant{TeamID: pk * 10, TeamName: away},
		Home:         schedule.Participant{TeamID: pk*10 + 1, TeamName: home},
		Venue:        "Sample Park",
	}
}

// SampleFeed builds a single-day feed with the given games.
func SampleFeed(date string, games ...schedule.Game) schedule.Feed {
	return schedule.Feed{Dates: []schedule.DaySchedule{{Date: date, Games: games}}}
}

// SampleTeam returns a team fixture with the given id and name.
func SampleTeam(id int, name string) teams.Team {
	return teams.Team{
		ID:           id,
		Name:         name,
		LocationName: "Sample City",
		Abbreviation: "SMP",
		Venue:        teams.Venue{ID: id, Name: "Sample Park"},
		League:       teams.Group{ID: 1, Name: "Sample League"},
		Division:     teams.Group{ID: 2, Name: "Sample Division"},
	}
}

// SampleUser returns a user fixture.
func SampleUser(id int) users.User {
	return users.User{
		ID:       id,
		Username: "slugger",
		Email:    "slugger@example.com",
	}
}
