// Package favorites reconciles the profile's favorite-team selection
// with the server-persisted list.
package favorites

import (
	"context"
	"fmt"

	"mlb-companion/internal/backend"
	"mlb-companion/internal/domain/users"
)

// Delta is the add/remove set difference between the persisted baseline
// and the user's selection.
type Delta struct {
	ToAdd    []string
	ToRemove []string
}

// Empty reports whether the save would be a no-op.
func (d Delta) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}

// Diff computes toAdd = selected − initial and toRemove = initial −
// selected, preserving order and dropping duplicates.
func Diff(initial, selected []string) Delta {
	return Delta{
		ToAdd:    subtract(selected, initial),
		ToRemove: subtract(initial, selected),
	}
}

func subtract(from, exclude []string) []string {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{}, len(from))
	for _, name := range from {
		if _, ok := excluded[name]; ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Updater applies favorite-team mutations on the backend.
type Updater interface {
	FavoriteTeams(ctx context.Context, token string, userID int) ([]users.FavoriteTeam, error)
	UpdateFavoriteTeams(ctx context.Context, token string, userID int, action string, teamNames []string) error
}

// Service loads and saves a user's favorite teams.
type Service struct {
	updater Updater
}

func NewService(updater Updater) *Service {
	return &Service{updater: updater}
}

// Current returns the persisted favorite team names.
func (s *Service) Current(ctx context.Context, token string, userID int) ([]string, error) {
	favs, err := s.updater.FavoriteTeams(ctx, token, userID)
	if err != nil {
		return nil, err
	}
	return users.Names(favs), nil
}

// Save reconciles the selection against the baseline with at most two
// mutations, one per non-empty delta direction. Saves are all-or-nothing:
// the first failed mutation aborts with an error and the baseline must be
// treated as unchanged, so a retry recomputes the same delta.
func (s *Service) Save(ctx context.Context, token string, userID int, initial, selected []string) (Delta, error) {
	delta := Diff(initial, selected)
	if delta.Empty() {
		return delta, nil
	}

	if len(delta.ToAdd) > 0 {
		if err := s.updater.UpdateFavoriteTeams(ctx, token, userID, backend.ActionAdd, delta.ToAdd); err != nil {
			return delta, fmt.Errorf("add favorite teams: %w", err)
		}
	}
	if len(delta.ToRemove) > 0 {
		if err := s.updater.UpdateFavoriteTeams(ctx, token, userID, backend.ActionRemove, delta.ToRemove); err != nil {
			return delta, fmt.Errorf("remove favorite teams: %w", err)
		}
	}
	return delta, nil
}
