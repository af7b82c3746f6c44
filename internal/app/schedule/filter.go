package schedule

import (
	"strings"

	domain "mlb-companion/internal/domain/schedule"
)

// Filter holds the independent, optional schedule filters. Date is an
// exact day match; Team is a case-sensitive substring checked against
// both participants. FavoritesOnly restricts the base list to games
// involving a favorite team before the other filters apply, and is a
// no-op when Favorites is empty.
type Filter struct {
	Date          string
	Team          string
	FavoritesOnly bool
	Favorites     []string
}

// Apply filters the day groups. Day groups whose games all drop are
// removed entirely.
func Apply(days []domain.DaySchedule, f Filter) []domain.DaySchedule {
	if f.FavoritesOnly && len(f.Favorites) > 0 {
		days = filterGames(days, func(g domain.Game) bool {
			for _, team := range f.Favorites {
				if strings.Contains(g.Home.TeamName, team) || strings.Contains(g.Away.TeamName, team) {
					return true
				}
			}
			return false
		})
	}

	if f.Date != "" {
		filtered := make([]domain.DaySchedule, 0, len(days))
		for _, d := range days {
			if d.Date == f.Date {
				filtered = append(filtered, d)
			}
		}
		days = filtered
	}

	if f.Team != "" {
		days = filterGames(days, func(g domain.Game) bool {
			return strings.Contains(g.Home.TeamName, f.Team) || strings.Contains(g.Away.TeamName, f.Team)
		})
	}

	return days
}

func filterGames(days []domain.DaySchedule, keep func(domain.Game) bool) []domain.DaySchedule {
	out := make([]domain.DaySchedule, 0, len(days))
	for _, d := range days {
		games := make([]domain.Game, 0, len(d.Games))
		for _, g := range d.Games {
			if keep(g) {
				games = append(games, g)
			}
		}
		if len(games) > 0 {
			out = append(out, domain.DaySchedule{Date: d.Date, Games: games})
		}
	}
	return out
}
