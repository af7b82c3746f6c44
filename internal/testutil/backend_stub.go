package testutil

import (
	"context"

	"mlb-companion/internal/backend"
	"mlb-companion/internal/domain/players"
	"mlb-companion/internal/domain/schedule"
	"mlb-companion/internal/domain/teams"
	"mlb-companion/internal/domain/trivia"
	"mlb-companion/internal/domain/users"
)

// StubBackend implements the full backend client surface with function
// fields; unset fields return zero values.
type StubBackend struct {
	LoginFn               func(ctx context.Context, username, password string) (string, error)
	RegisterFn            func(ctx context.Context, username, email, password string) error
	CurrentUserFn         func(ctx context.Context, token string) (users.User, error)
	ScheduleFn            func(ctx context.Context, token string, feed backend.ScheduleFeed) (schedule.Feed, error)
	TeamsFn               func(ctx context.Context, token string) ([]teams.Team, error)
	TeamFn                func(ctx context.Context, token string, id int) (teams.Detail, error)
	TeamLogoFn            func(ctx context.Context, token string, id int) (backend.Media, error)
	PlayerFn              func(ctx context.Context, token string, id int) (players.Player, error)
	PlayerPhotoFn         func(ctx context.Context, token string, id int) (backend.Media, error)
	FavoriteTeamsFn       func(ctx context.Context, token string, userID int) ([]users.FavoriteTeam, error)
	UpdateFavoriteTeamsFn func(ctx context.Context, token string, userID int, action string, teamNames []string) error
	CheckCalendarFn       func(ctx context.Context, token string) (backend.CalendarStatus, error)
	CreateGameEventFn     func(ctx context.Context, token string, event backend.GameEvent) error
	ChatFn                func(ctx context.Context, token, message string) (string, error)
	TriviaQuestionFn      func(ctx context.Context, token string) (trivia.Question, error)
	TriviaAnswerFn        func(ctx context.Context, token string, answer trivia.Answer) (trivia.Feedback, error)
	AuthURL               string
}

func (s *StubBackend) Login(ctx context.Context, username, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return "test-token", nil
}

func (s *StubBackend) Register(ctx context.Context, username, email, password string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password)
	}
	return nil
}

func (s *StubBackend) CurrentUser(ctx context.Context, token string) (users.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, token)
	}
	return SampleUser(1), nil
}

func (s *StubBackend) Schedule(ctx context.Context, token string, feed backend.ScheduleFeed) (schedule.Feed, error) {
	if s.ScheduleFn != nil {
		return s.ScheduleFn(ctx, token, feed)
	}
	return schedule.Feed{}, nil
}

func (s *StubBackend) Teams(ctx context.Context, token string) ([]teams.Team, error) {
	if s.TeamsFn != nil {
		return s.TeamsFn(ctx, token)
	}
	return nil, nil
}

func (s *StubBackend) Team(ctx context.Context, token string, id int) (teams.Detail, error) {
	if s.TeamFn != nil {
		return s.TeamFn(ctx, token, id)
	}
	return teams.Detail{}, nil
}

func (s *StubBackend) TeamLogo(ctx context.Context, token string, id int) (backend.Media, error) {
	if s.TeamLogoFn != nil {
		return s.TeamLogoFn(ctx, token, id)
	}
	return backend.Media{}, nil
}

func (s *StubBackend) Player(ctx context.Context, token string, id int) (players.Player, error) {
	if s.PlayerFn != nil {
		return s.PlayerFn(ctx, token, id)
	}
	return players.Player{}, nil
}

func (s *StubBackend) PlayerPhoto(ctx context.Context, token string, id int) (backend.Media, error) {
	if s.PlayerPhotoFn != nil {
		return s.PlayerPhotoFn(ctx, token, id)
	}
	return backend.Media{}, nil
}

func (s *StubBackend) FavoriteTeams(ctx context.Context, token string, userID int) ([]users.FavoriteTeam, error) {
	if s.FavoriteTeamsFn != nil {
		return s.FavoriteTeamsFn(ctx, token, userID)
	}
	return nil, nil
}

func (s *StubBackend) UpdateFavoriteTeams(ctx context.Context, token string, userID int, action string, teamNames []string) error {
	if s.UpdateFavoriteTeamsFn != nil {
		return s.UpdateFavoriteTeamsFn(ctx, token, userID, action, teamNames)
	}
	return nil
}

func (s *StubBackend) CheckCalendar(ctx context.Context, token string) (backend.CalendarStatus, error) {
	if s.CheckCalendarFn != nil {
		return s.CheckCalendarFn(ctx, token)
	}
	return backend.CalendarNoToken, nil
}

func (s *StubBackend) CalendarAuthURL() string {
	if s.AuthURL != "" {
		return s.AuthURL
	}
	return "http://backend.test/api/google/auth"
}

func (s *StubBackend) CreateGameEvent(ctx context.Context, token string, event backend.GameEvent) error {
	if s.CreateGameEventFn != nil {
		return s.CreateGameEventFn(ctx, token, event)
	}
	return nil
}

func (s *StubBackend) Chat(ctx context.Context, token, message string) (string, error) {
	if s.ChatFn != nil {
		return s.ChatFn(ctx, token, message)
	}
	return "", nil
}

func (s *StubBackend) TriviaQuestion(ctx context.Context, token string) (trivia.Question, error) {
	if s.TriviaQuestionFn != nil {
		return s.TriviaQuestionFn(ctx, token)
	}
	return trivia.Question{}, nil
}

func (s *StubBackend) TriviaAnswer(ctx context.Context, token string, answer trivia.Answer) (trivia.Feedback, error) {
	if s.TriviaAnswerFn != nil {
		return s.TriviaAnswerFn(ctx, token, answer)
	}
	return trivia.Feedback{}, nil
}
