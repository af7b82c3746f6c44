package teams

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domain "mlb-companion/internal/domain/teams"
)

// Directory fetches team reference data from the backend.
type Directory interface {
	Teams(ctx context.Context, token string) ([]domain.Team, error)
	Team(ctx context.Context, token string, id int) (domain.Detail, error)
}

// SortOrder toggles the team list name sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Service serves the team directory. The directory is league-wide,
// read-only reference data, so it is cached once for all sessions and
// refreshed in the background by the poller.
type Service struct {
	directory Directory

	mu        sync.RWMutex
	cached    []domain.Team
	fetchedAt time.Time
}

func NewService(directory Directory) *Service {
	return &Service{directory: directory}
}

// Query narrows and orders the team list.
type Query struct {
	Name string
	Sort SortOrder
}

// List returns the team directory filtered by name substring and sorted
// by name. It serves the shared cache when warm, falling back to a
// direct fetch with the caller's token.
func (s *Service) List(ctx context.Context, token string, q Query) ([]domain.Team, error) {
	all, err := s.all(ctx, token)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Team, 0, len(all))
	for _, t := range all {
		if q.Name == "" || strings.Contains(strings.ToLower(t.Name), strings.ToLower(q.Name)) {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if q.Sort == SortDesc {
			return out[i].Name > out[j].Name
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Detail fetches one team with its roster. Rosters change often enough
// that they are not cached.
func (s *Service) Detail(ctx context.Context, token string, id int) (domain.Detail, error) {
	return s.directory.Team(ctx, token, id)
}

// Refresh re-fetches the shared directory; called by the poller.
func (s *Service) Refresh(ctx context.Context, token string) error {
	teams, err := s.directory.Teams(ctx, token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cached = teams
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// CachedAt reports when the shared directory was last refreshed.
func (s *Service) CachedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

func (s *Service) all(ctx context.Context, token string) ([]domain.Team, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if len(cached) > 0 {
		return cached, nil
	}

	teams, err := s.directory.Teams(ctx, token)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if len(s.cached) == 0 {
		s.cached = teams
		s.fetchedAt = time.Now()
	}
	s.mu.Unlock()
	return teams, nil
}
