package schedule

import "time"

// Participant identifies one side of a game.
type Participant struct {
	TeamID   int    `json:"teamId"`
	TeamName string `json:"teamName"`
}

// Game is the canonical game shape used by the schedule views.
type Game struct {
	GamePk       int         `json:"gamePk"`
	DateTime     time.Time   `json:"gameDate"`
	OfficialDate string      `json:"officialDate"`
	Home         Participant `json:"home"`
	Away         Participant `json:"away"`
	Venue        string      `json:"venue"`
}

// DaySchedule groups the games of a single calendar date.
type DaySchedule struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// Feed is the full multi-date schedule payload returned by the backend.
type Feed struct {
	Dates []DaySchedule `json:"dates"`
}

// Games flattens the feed into a single slice, preserving feed order.
func (f Feed) Games() []Game {
	var out []Game
	for _, d := range f.Dates {
		out = append(out, d.Games...)
	}
	return out
}

// NextGame is the "next upcoming game" summary shown on the home page.
type NextGame struct {
	Date  string `json:"date"`
	Teams string `json:"teams"`
	Time  string `json:"time"`
	Venue string `json:"venue"`
}
