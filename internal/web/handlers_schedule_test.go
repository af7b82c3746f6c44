package web

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appschedule "mlb-companion/internal/app/schedule"
	"mlb-companion/internal/backend"
	domain "mlb-companion/internal/domain/schedule"
	"mlb-companion/internal/testutil"
)

func scheduleStub(feed domain.Feed) *testutil.StubBackend {
	return &testutil.StubBackend{
		ScheduleFn: func(context.Context, string, backend.ScheduleFeed) (domain.Feed, error) {
			return feed, nil
		},
	}
}

func TestSchedulePageRendersGames(t *testing.T) {
	start := testutil.MustParseRFC3339("2026-08-01T17:05:00Z")
	feed := testutil.SampleFeed("2026-08-01",
		testutil.SampleGame(1, "2026-08-01", start, "Chicago Cubs", "New York Mets"))
	app := newTestApp(t, scheduleStub(feed))
	_, cookie := app.loginSession(t)

	rr := testutil.ServeRequest(app.router, newRequest(http.MethodGet, "/schedule", cookie, nil))

	testutil.AssertStatus(t, rr, http.StatusOK)
	body := rr.Body.String()
	assert.Contains(t, body, "Chicago Cubs")
	assert.Contains(t, body, "New York Mets")
	assert.Contains(t, body, "2026-08-01")
}

func TestSchedulePageAppliesFilters(t *testing.T) {
	start := testutil.MustParseRFC3339("2026-08-01T17:05:00Z")
	feed := domain.Feed{Dates: []domain.DaySchedule{
		{Date: "2026-08-01", Games: []domain.Game{
			testutil.SampleGame(1, "2026-08-01", start, "Chicago Cubs", "New York Mets"),
			testutil.SampleGame(2, "2026-08-01", start, "Boston Red Sox", "New York Yankees"),
		}},
	}}
	app := newTestApp(t, scheduleStub(feed))
	_, cookie := app.loginSession(t)

	rr := testutil.ServeRequest(app.router, newRequest(http.MethodGet, "/schedule?team=Cubs", cookie, nil))

	testutil.AssertStatus(t, rr, http.StatusOK)
	body := rr.Body.String()
	assert.Contains(t, body, "Chicago Cubs")
	assert.NotContains(t, body, "Boston Red Sox")
}

func TestSchedulePageFavoritesToggleUsesPersistedList(t *testing.T) {
	start := testutil.MustParseRFC3339("2026-08-01T17:05:00Z")
	feed := domain.Feed{Dates: []domain.DaySchedule{
		{Date: "2026-08-01", Games: []domain.Game{
			testutil.SampleGame(1, "2026-08-01", start, "Chicago Cubs", "New York Mets"),
			testutil.SampleGame(2, "2026-08-01", start, "Boston Red Sox", "New York Yankees"),
		}},
	}}
	stub := scheduleStub(feed)
	stub.FavoriteTeamsFn = favoriteTeamsOf("Yankees")
	app := newTestApp(t, stub)
	_, cookie := app.loginSession(t)

	rr := testutil.ServeRequest(app.router, newRequest(http.MethodGet, "/schedule?favorites=1", cookie, nil))

	testutil.AssertStatus(t, rr, http.StatusOK)
	body := rr.Body.String()
	assert.Contains(t, body, "New York Yankees")
	assert.NotContains(t, body, "Chicago Cubs")
}

func TestScheduleURLPreservesFilters(t *testing.T) {
	filter := appschedule.Filter{Date: "2026-08-01", Team: "Cubs", FavoritesOnly: true}

	got := scheduleURL(filter, 2)

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse %q: %v", got, err)
	}
	q := parsed.Query()
	assert.Equal(t, "2026-08-01", q.Get("date"))
	assert.Equal(t, "Cubs", q.Get("team"))
	assert.Equal(t, "1", q.Get("favorites"))
	assert.Equal(t, "2", q.Get("page"))

	assert.Equal(t, "/schedule", scheduleURL(appschedule.Filter{}, 1))
}

func TestAddGameToCalendarBuildsThreeHourEvent(t *testing.T) {
	var got backend.GameEvent
	stub := &testutil.StubBackend{
		CreateGameEventFn: func(_ context.Context, _ string, event backend.GameEvent) error {
			got = event
			return nil
		},
	}
	app := newTestApp(t, stub)
	_, cookie := app.loginSession(t)

	form := url.Values{
		"summary":     {"Chicago Cubs vs New York Mets"},
		"description": {"MLB game at Citi Field"},
		"start":       {"2026-08-01T17:05:00Z"},
	}
	rr := testutil.ServeRequest(app.router, newFormRequest(http.MethodPost, "/schedule/calendar", cookie, form))

	testutil.AssertStatus(t, rr, http.StatusSeeOther)
	assert.Equal(t, "/schedule?added=1", rr.Header().Get("Location"))

	start, _ := time.Parse(time.RFC3339, got.StartDateTime)
	end, _ := time.Parse(time.RFC3339, got.EndDateTime)
	assert.Equal(t, 3*time.Hour, end.Sub(start))
	assert.Equal(t, "Chicago Cubs vs New York Mets", got.Summary)
}

func TestAddGameToCalendarRejectsBadStart(t *testing.T) {
	called := false
	stub := &testutil.StubBackend{
		CreateGameEventFn: func(context.Context, string, backend.GameEvent) error {
			called = true
			return nil
		},
	}
	app := newTestApp(t, stub)
	_, cookie := app.loginSession(t)

	form := url.Values{"summary": {"x"}, "start": {"not-a-time"}}
	rr := testutil.ServeRequest(app.router, newFormRequest(http.MethodPost, "/schedule/calendar", cookie, form))

	testutil.AssertStatus(t, rr, http.StatusSeeOther)
	assert.Contains(t, rr.Header().Get("Location"), "calendar_error=")
	assert.False(t, called, "invalid start must not reach the backend")
}
