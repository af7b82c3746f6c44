package schedule

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mlb-companion/internal/backend"
	domain "mlb-companion/internal/domain/schedule"
	"mlb-companion/internal/session"
	"mlb-companion/internal/timeutil"
)

// Feeder fetches the schedule feed from the backend.
type Feeder interface {
	Schedule(ctx context.Context, token string, feed backend.ScheduleFeed) (domain.Feed, error)
}

// Service serves the schedule feed from a per-session, time-boxed cache.
// The feed is fetched at most once per freshness window per session;
// every view shares the cached result.
type Service struct {
	feeder Feeder
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	mu        sync.Mutex
	feed      domain.Feed
	fetchedAt time.Time
	// gen increments on every cache write. A fetch that started against
	// an older gen discards its response instead of overwriting newer state.
	gen uint64
}

// NewService constructs a Service with the given cache freshness window.
func NewService(feeder Feeder, ttl time.Duration) *Service {
	return &Service{
		feeder:  feeder,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*cacheEntry),
	}
}

// Feed returns the session's schedule, re-fetching when the cached copy
// is older than the freshness window.
func (s *Service) Feed(ctx context.Context, sess *session.Session) (domain.Feed, error) {
	entry := s.entry(sess.ID)

	entry.mu.Lock()
	if !entry.fetchedAt.IsZero() && s.now().Sub(entry.fetchedAt) < s.ttl {
		feed := entry.feed
		entry.mu.Unlock()
		return feed, nil
	}
	startGen := entry.gen
	entry.mu.Unlock()

	feed, err := s.feeder.Schedule(ctx, sess.Token, backend.FeedMLB)
	if err != nil {
		return domain.Feed{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.gen != startGen {
		// A newer fetch completed while ours was in flight; ours is stale.
		return entry.feed, nil
	}
	entry.feed = feed
	entry.fetchedAt = s.now()
	entry.gen++
	return feed, nil
}

// NextGame returns the earliest game starting strictly after now, or
// false when none is upcoming. Absence is an empty state, not an error.
func (s *Service) NextGame(ctx context.Context, sess *session.Session) (domain.NextGame, bool, error) {
	feed, err := s.Feed(ctx, sess)
	if err != nil {
		return domain.NextGame{}, false, err
	}
	next, ok := UpcomingGame(feed, s.now())
	return next, ok, nil
}

// UpcomingGame picks the earliest game with a start time strictly after now.
func UpcomingGame(feed domain.Feed, now time.Time) (domain.NextGame, bool) {
	games := feed.Games()
	future := games[:0:0]
	for _, g := range games {
		if g.DateTime.After(now) {
			future = append(future, g)
		}
	}
	if len(future) == 0 {
		return domain.NextGame{}, false
	}
	sort.Slice(future, func(i, j int) bool { return future[i].DateTime.Before(future[j].DateTime) })

	next := future[0]
	date := next.OfficialDate
	if date == "" {
		date = timeutil.FormatDate(next.DateTime)
	}
	return domain.NextGame{
		Date:  date,
		Teams: fmt.Sprintf("%s vs %s", next.Away.TeamName, next.Home.TeamName),
		Time:  timeutil.FormatClock(next.DateTime),
		Venue: next.Venue,
	}, true
}

// Drop releases the cache entry for a session; wired to the session
// store's destroy hooks.
func (s *Service) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
}

func (s *Service) entry(sessionID string) *cacheEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[sessionID]
	if !ok {
		entry = &cacheEntry{}
		s.entries[sessionID] = entry
	}
	return entry
}
