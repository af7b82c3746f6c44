// Package chat keeps the assistant transcript for each session. The
// transcript is append-only, in memory only, and gone when the session is.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	domain "mlb-companion/internal/domain/chat"
)

var (
	// ErrEmptyMessage is returned for blank input; nothing is sent.
	ErrEmptyMessage = errors.New("chat: empty message")
	// ErrReplyPending is returned while a reply is outstanding; at most
	// one request may be in flight per session.
	ErrReplyPending = errors.New("chat: reply pending")
)

// Assistant talks to the chat backend.
type Assistant interface {
	Chat(ctx context.Context, token, message string) (string, error)
}

// assistantDownText is appended as a bot message when the assistant call
// fails, so the transcript records the outage next to the user's message.
const assistantDownText = "Sorry, I could not reach the assistant. Please try again."

type transcript struct {
	messages []domain.Message
	pending  bool
}

// Service holds one transcript per session.
type Service struct {
	assistant Assistant

	mu          sync.Mutex
	transcripts map[string]*transcript
}

func NewService(assistant Assistant) *Service {
	return &Service{
		assistant:   assistant,
		transcripts: make(map[string]*transcript),
	}
}

// Transcript returns a copy of the session's messages in order.
func (s *Service) Transcript(sessionID string) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transcripts[sessionID]
	if !ok {
		return nil
	}
	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Pending reports whether a reply is outstanding for the session.
func (s *Service) Pending(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transcripts[sessionID]
	return ok && t.pending
}

// Send appends the user message immediately, posts it to the assistant,
// and appends the reply. On failure the transcript gets a bot message
// marking the outage and the error still propagates to the caller.
func (s *Service) Send(ctx context.Context, sessionID, token, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	s.mu.Lock()
	t, ok := s.transcripts[sessionID]
	if !ok {
		t = &transcript{}
		s.transcripts[sessionID] = t
	}
	if t.pending {
		s.mu.Unlock()
		return "", ErrReplyPending
	}
	t.pending = true
	t.messages = append(t.messages, domain.Message{Text: message, Sender: domain.SenderUser})
	s.mu.Unlock()

	reply, err := s.assistant.Chat(ctx, token, message)

	s.mu.Lock()
	defer s.mu.Unlock()
	t.pending = false
	if err != nil {
		t.messages = append(t.messages, domain.Message{Text: assistantDownText, Sender: domain.SenderBot})
		return "", err
	}
	t.messages = append(t.messages, domain.Message{Text: reply, Sender: domain.SenderBot})
	return reply, nil
}

// Drop releases the transcript for a session; wired to the session
// store's destroy hooks.
func (s *Service) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.transcripts, sessionID)
	s.mu.Unlock()
}
