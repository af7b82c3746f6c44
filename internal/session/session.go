// Package session holds the server-side state for one authenticated
// browser. A session is created at login, destroyed at logout or on a
// backend 401, and never mutated in between: the bearer token it carries
// is fixed for its whole lifetime. Feature state scoped to a session
// (schedule cache, trivia round, chat transcript) lives in the owning
// service, keyed by session id, and is torn down through destroy hooks.
package session

import "time"

// Session is the per-browser authenticated state.
type Session struct {
	ID        string
	Token     string
	UserID    int
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its lifetime at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
