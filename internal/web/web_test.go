package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	appchat "mlb-companion/internal/app/chat"
	appfavorites "mlb-companion/internal/app/favorites"
	appschedule "mlb-companion/internal/app/schedule"
	appteams "mlb-companion/internal/app/teams"
	apptrivia "mlb-companion/internal/app/trivia"
	"mlb-companion/internal/backend"
	"mlb-companion/internal/domain/schedule"
	"mlb-companion/internal/domain/users"
	"mlb-companion/internal/session"
	"mlb-companion/internal/testutil"
)

// testApp bundles a fully wired router plus the pieces tests poke at.
type testApp struct {
	router   http.Handler
	handler  *Handler
	stub     *testutil.StubBackend
	sessions *session.Store
	codec    *session.Codec
}

func newTestApp(t *testing.T, stub *testutil.StubBackend) *testApp {
	t.Helper()
	if stub == nil {
		stub = &testutil.StubBackend{}
	}

	sessions := session.NewStore(time.Hour)
	codec := session.NewCodec([]byte("test-signing-key"), time.Hour)

	scheduleSvc := appschedule.NewService(stub, 10*time.Minute)
	triviaSvc := apptrivia.NewService(stub)
	chatSvc := appchat.NewService(stub)
	sessions.OnDestroy(scheduleSvc.Drop)
	sessions.OnDestroy(triviaSvc.Drop)
	sessions.OnDestroy(chatSvc.Drop)

	templates, err := NewTemplateCache()
	if err != nil {
		t.Fatalf("template cache: %v", err)
	}

	logger, _ := testutil.NewBufferLogger()
	handler := NewHandler(Deps{
		API:       stub,
		Sessions:  sessions,
		Codec:     codec,
		Schedule:  scheduleSvc,
		Favorites: appfavorites.NewService(stub),
		Teams:     appteams.NewService(stub),
		Trivia:    triviaSvc,
		Chat:      chatSvc,
		Templates: templates,
		Logger:    logger,
	})

	return &testApp{
		router:   NewRouter(handler, logger, nil, nil),
		handler:  handler,
		stub:     stub,
		sessions: sessions,
		codec:    codec,
	}
}

// loginSession creates an active session and returns it with its cookie.
func (a *testApp) loginSession(t *testing.T) (*session.Session, *http.Cookie) {
	t.Helper()
	sess := a.sessions.Create("test-token", testutil.SampleUser(7))
	value, err := a.codec.Encode(sess.ID)
	if err != nil {
		t.Fatalf("encode session cookie: %v", err)
	}
	return sess, a.codec.Cookie(value)
}

func newRequest(method, path string, cookie *http.Cookie, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func newFormRequest(method, path string, cookie *http.Cookie, form url.Values) *http.Request {
	req := newRequest(method, path, cookie, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// favoriteTeamsOf builds a FavoriteTeamsFn returning the given team names.
func favoriteTeamsOf(names ...string) func(context.Context, string, int) ([]users.FavoriteTeam, error) {
	favs := make([]users.FavoriteTeam, len(names))
	for i, name := range names {
		favs[i] = users.FavoriteTeam{TeamName: name}
	}
	return func(context.Context, string, int) ([]users.FavoriteTeam, error) {
		return favs, nil
	}
}

// waitForPending blocks until the session's chat request is in flight.
func waitForPending(t *testing.T, app *testApp, sessionID string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !app.handler.chat.Pending(sessionID) {
		if time.Now().After(deadline) {
			t.Fatal("chat request never became pending")
		}
		time.Sleep(time.Millisecond)
	}
}

// unauthorizedSchedule simulates the backend rejecting the bearer token.
func unauthorizedSchedule(context.Context, string, backend.ScheduleFeed) (schedule.Feed, error) {
	return schedule.Feed{}, &backend.StatusError{Endpoint: backend.EndpointSchedule, StatusCode: http.StatusUnauthorized}
}
