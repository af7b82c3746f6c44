package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func routedClient(t *testing.T, routes map[string]http.HandlerFunc) *Client {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, RetryAttempts: 1})
}

func TestScheduleMapsWirePayload(t *testing.T) {
	client := routedClient(t, map[string]http.HandlerFunc{
		"/schedule/mlb": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"dates": [{
					"date": "2026-08-01",
					"games": [{
						"gamePk": 745123,
						"gameDate": "2026-08-01T17:05:00Z",
						"officialDate": "2026-08-01",
						"teams": {
							"away": {"team": {"id": 112, "name": "Chicago Cubs"}},
							"home": {"team": {"id": 121, "name": "New York Mets"}}
						},
						"venue": {"id": 3289, "name": "Citi Field"}
					}]
				}]
			}`))
		},
	})

	feed, err := client.Schedule(context.Background(), "token", FeedMLB)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(feed.Dates) != 1 || len(feed.Dates[0].Games) != 1 {
		t.Fatalf("feed shape = %+v", feed)
	}

	game := feed.Dates[0].Games[0]
	if game.GamePk != 745123 {
		t.Errorf("gamePk = %d", game.GamePk)
	}
	if game.Away.TeamName != "Chicago Cubs" || game.Home.TeamName != "New York Mets" {
		t.Errorf("participants = %+v / %+v", game.Away, game.Home)
	}
	if game.Venue != "Citi Field" {
		t.Errorf("venue = %q", game.Venue)
	}
	if game.DateTime.IsZero() {
		t.Error("gameDate must be parsed")
	}
}

func TestTeamUnwrapsRoster(t *testing.T) {
	client := routedClient(t, map[string]http.HandlerFunc{
		"/teams/mlb/team/112": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"team": {"id": 112, "name": "Chicago Cubs", "locationName": "Chicago"},
				"roster": [{
					"person": {"id": 592178, "fullName": "Sample Player"},
					"position": {"name": "Pitcher"},
					"jerseyNumber": "34"
				}]
			}`))
		},
	})

	detail, err := client.Team(context.Background(), "token", 112)
	if err != nil {
		t.Fatalf("team: %v", err)
	}
	if detail.Team.Name != "Chicago Cubs" {
		t.Errorf("team = %+v", detail.Team)
	}
	if len(detail.Roster) != 1 {
		t.Fatalf("roster length = %d", len(detail.Roster))
	}
	entry := detail.Roster[0]
	if entry.PersonID != 592178 || entry.FullName != "Sample Player" || entry.PositionName != "Pitcher" || entry.JerseyNumber != "34" {
		t.Errorf("roster entry = %+v", entry)
	}
}

func TestPlayerUnwrapsPeopleArray(t *testing.T) {
	client := routedClient(t, map[string]http.HandlerFunc{
		"/players/592178": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"people": [{
					"id": 592178,
					"fullName": "Sample Player",
					"primaryPosition": {"id": 1, "name": "Pitcher"},
					"batSide": {"code": "R", "description": "Right"},
					"pitchHand": {"code": "L", "description": "Left"}
				}]
			}`))
		},
	})

	player, err := client.Player(context.Background(), "token", 592178)
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if player.FullName != "Sample Player" || player.PrimaryPosition != "Pitcher" {
		t.Errorf("player = %+v", player)
	}
	if player.BatSide.Description != "Right" || player.PitchHand.Description != "Left" {
		t.Errorf("handedness = %+v / %+v", player.BatSide, player.PitchHand)
	}
}

func TestPlayerEmptyPeopleIsNotFound(t *testing.T) {
	client := routedClient(t, map[string]http.HandlerFunc{
		"/players/1": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"people": []}`))
		},
	})

	_, err := client.Player(context.Background(), "token", 1)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err = %v, want ErrPlayerNotFound", err)
	}
}

func TestFavoriteTeamsNoContentMeansEmpty(t *testing.T) {
	client := routedClient(t, map[string]http.HandlerFunc{
		"/favorite-teams/user/7": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	favs, err := client.FavoriteTeams(context.Background(), "token", 7)
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(favs) != 0 {
		t.Fatalf("favorites = %v, want empty", favs)
	}
}

func TestUpdateFavoriteTeamsPayload(t *testing.T) {
	var got favoritesUpdateRequest
	client := routedClient(t, map[string]http.HandlerFunc{
		"/favorite-teams/user/7/update": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusNoContent)
		},
	})

	err := client.UpdateFavoriteTeams(context.Background(), "token", 7, ActionAdd, []string{"Cubs", "Mets"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Action != ActionAdd || len(got.TeamNames) != 2 {
		t.Fatalf("payload = %+v", got)
	}
}

func TestMediaReturnsBytesForImages(t *testing.T) {
	client := routedClient(t, map[string]http.HandlerFunc{
		"/teams/mlb/team/112/logo": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/svg+xml")
			w.Write([]byte("<svg/>"))
		},
	})

	media, err := client.TeamLogo(context.Background(), "token", 112)
	if err != nil {
		t.Fatalf("logo: %v", err)
	}
	if media.IsURL() {
		t.Fatal("image response must not map to a URL")
	}
	if string(media.Data) != "<svg/>" || media.ContentType != "image/svg+xml" {
		t.Fatalf("media = %+v", media)
	}
}

func TestMediaReturnsURLForTextBodies(t *testing.T) {
	client := routedClient(t, map[string]http.HandlerFunc{
		"/players/592178/photo": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("https://img.example.com/592178.jpg"))
		},
	})

	media, err := client.PlayerPhoto(context.Background(), "token", 592178)
	if err != nil {
		t.Fatalf("photo: %v", err)
	}
	if !media.IsURL() || media.URL != "https://img.example.com/592178.jpg" {
		t.Fatalf("media = %+v", media)
	}
}

func TestTriviaQuestionDropsCorrectAnswer(t *testing.T) {
	client := routedClient(t, map[string]http.HandlerFunc{
		"/trivia/question": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"id": "q1",
				"question": "Who?",
				"options": ["A", "B"],
				"correctAnswer": "A"
			}`))
		},
	})

	q, err := client.TriviaQuestion(context.Background(), "token")
	if err != nil {
		t.Fatalf("question: %v", err)
	}
	if q.ID != "q1" || len(q.Options) != 2 {
		t.Fatalf("question = %+v", q)
	}
}

func TestChatUnwrapsReply(t *testing.T) {
	var got chatRequest
	client := routedClient(t, map[string]http.HandlerFunc{
		"/ai/chat/mlb": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&got)
			w.Write([]byte(`{"reply": "The Cubs."}`))
		},
	})

	reply, err := client.Chat(context.Background(), "token", "Best team?")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "The Cubs." {
		t.Fatalf("reply = %q", reply)
	}
	if got.Message != "Best team?" {
		t.Fatalf("request payload = %+v", got)
	}
}

func TestCheckCalendarStatus(t *testing.T) {
	client := routedClient(t, map[string]http.HandlerFunc{
		"/google/calendar/check": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "expired"}`))
		},
	})

	status, err := client.CheckCalendar(context.Background(), "token")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status != CalendarExpired {
		t.Fatalf("status = %q", status)
	}
}
