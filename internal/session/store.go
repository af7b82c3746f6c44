package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mlb-companion/internal/domain/users"
)

// Store keeps active sessions in memory. It is created once at
// application start and lives for the whole process; individual sessions
// are reset only by logout, expiry, or a backend 401.
type Store struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	ttl       time.Duration
	now       func() time.Time
	onDestroy []func(sessionID string)
}

// NewStore constructs an empty Store with the given session lifetime.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create activates a new session for the given bearer token and user.
func (s *Store) Create(token string, user users.User) *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
	}
	if s.ttl > 0 {
		sess.ExpiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id if present and not expired. Expired
// sessions are destroyed on access.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if sess.Expired(s.now()) {
		s.Destroy(id)
		return nil, false
	}
	return sess, true
}

// Destroy removes the session and runs the registered destroy hooks so
// per-session feature state is released with it.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	_, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	hooks := s.onDestroy
	s.mu.Unlock()

	if !ok {
		return
	}
	for _, hook := range hooks {
		hook(id)
	}
}

// OnDestroy registers a hook invoked with the session id whenever a
// session is destroyed.
func (s *Store) OnDestroy(fn func(sessionID string)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onDestroy = append(s.onDestroy, fn)
	s.mu.Unlock()
}

// Len reports the number of active sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
