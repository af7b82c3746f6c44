package backend

import (
	"time"

	"mlb-companion/internal/domain/players"
	"mlb-companion/internal/domain/schedule"
	"mlb-companion/internal/domain/teams"
)

func mapSchedule(resp scheduleResponse) schedule.Feed {
	feed := schedule.Feed{Dates: make([]schedule.DaySchedule, 0, len(resp.Dates))}
	for _, d := range resp.Dates {
		day := schedule.DaySchedule{Date: d.Date, Games: make([]schedule.Game, 0, len(d.Games))}
		for _, g := range d.Games {
			day.Games = append(day.Games, mapGame(g))
		}
		feed.Dates = append(feed.Dates, day)
	}
	return feed
}

func mapGame(g wireGame) schedule.Game {
	start, err := time.Parse(time.RFC3339, g.GameDate)
	if err != nil {
		start = time.Time{}
	}
	return schedule.Game{
		GamePk:       g.GamePk,
		DateTime:     start,
		OfficialDate: g.OfficialDate,
		Home: schedule.Participant{
			TeamID:   g.Teams.Home.Team.ID,
			TeamName: g.Teams.Home.Team.Name,
		},
		Away: schedule.Participant{
			TeamID:   g.Teams.Away.Team.ID,
			TeamName: g.Teams.Away.Team.Name,
		},
		Venue: g.Venue.Name,
	}
}

func mapTeam(t wireTeam) teams.Team {
	return teams.Team{
		ID:              t.ID,
		Name:            t.Name,
		LocationName:    t.LocationName,
		Abbreviation:    t.Abbreviation,
		FirstYearOfPlay: t.FirstYearOfPlay,
		Venue:           teams.Venue{ID: t.Venue.ID, Name: t.Venue.Name},
		League:          teams.Group{ID: t.League.ID, Name: t.League.Name},
		Division:        teams.Group{ID: t.Division.ID, Name: t.Division.Name},
	}
}

func mapRoster(entries []wireRosterEntry) []teams.RosterEntry {
	out := make([]teams.RosterEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, teams.RosterEntry{
			PersonID:     e.Person.ID,
			FullName:     e.Person.FullName,
			PositionName: e.Position.Name,
			JerseyNumber: e.JerseyNumber,
		})
	}
	return out
}

func mapPlayer(p wirePlayer) players.Player {
	return players.Player{
		ID:              p.ID,
		FullName:        p.FullName,
		BirthDate:       p.BirthDate,
		CurrentAge:      p.CurrentAge,
		PrimaryPosition: p.PrimaryPosition.Name,
		Height:          p.Height,
		Weight:          p.Weight,
		MLBDebutDate:    p.MLBDebutDate,
		BatSide:         players.Handedness{Code: p.BatSide.Code, Description: p.BatSide.Description},
		PitchHand:       players.Handedness{Code: p.PitchHand.Code, Description: p.PitchHand.Description},
	}
}
