// Package trivia drives the trivia widget's round state machine:
// not-started → question-loaded → answered → question-loaded → …
package trivia

import (
	"context"
	"errors"
	"sync"

	domain "mlb-companion/internal/domain/trivia"
)

var (
	// ErrNoQuestion is returned for select/submit before any question is loaded.
	ErrNoQuestion = errors.New("trivia: no active question")
	// ErrNoSelection is returned for a submit without a selected option;
	// the rejection happens before any network call.
	ErrNoSelection = errors.New("trivia: no option selected")
	// ErrAlreadyAnswered is returned when a round is interacted with
	// after its answer was submitted.
	ErrAlreadyAnswered = errors.New("trivia: question already answered")
	// ErrSubmitPending is returned while a submission is outstanding; at
	// most one answer may be in flight per round.
	ErrSubmitPending = errors.New("trivia: submission pending")
	// ErrUnknownOption is returned when the selected option is not one
	// of the question's options.
	ErrUnknownOption = errors.New("trivia: unknown option")
)

// Round is the session's current trivia state.
type Round struct {
	Question domain.Question
	Selected string
	Feedback string
	Answered bool
	Started  bool

	submitting bool
}

// Quizzer talks to the trivia backend.
type Quizzer interface {
	TriviaQuestion(ctx context.Context, token string) (domain.Question, error)
	TriviaAnswer(ctx context.Context, token string, answer domain.Answer) (domain.Feedback, error)
}

// Service holds one active round per session.
type Service struct {
	quizzer Quizzer

	mu     sync.Mutex
	rounds map[string]*Round
}

func NewService(quizzer Quizzer) *Service {
	return &Service{
		quizzer: quizzer,
		rounds:  make(map[string]*Round),
	}
}

// Round returns the session's current round state.
func (s *Service) Round(sessionID string) Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	if round, ok := s.rounds[sessionID]; ok {
		return *round
	}
	return Round{}
}

// Next fetches a fresh question and resets selection and feedback. It
// serves both the initial start and "next question" after an answer.
func (s *Service) Next(ctx context.Context, sessionID, token string) (Round, error) {
	question, err := s.quizzer.TriviaQuestion(ctx, token)
	if err != nil {
		return s.Round(sessionID), err
	}

	round := &Round{Question: question, Started: true}
	s.mu.Lock()
	s.rounds[sessionID] = round
	s.mu.Unlock()
	return *round, nil
}

// Select highlights an option locally; no network call. Selection is
// rejected once the round is answered.
func (s *Service) Select(sessionID, option string) (Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	round, ok := s.rounds[sessionID]
	if !ok || !round.Started {
		return Round{}, ErrNoQuestion
	}
	if round.Answered {
		return *round, ErrAlreadyAnswered
	}
	if !containsOption(round.Question.Options, option) {
		return *round, ErrUnknownOption
	}
	round.Selected = option
	return *round, nil
}

// Submit posts the selected answer and stores the returned feedback,
// transitioning the round into the answered state.
func (s *Service) Submit(ctx context.Context, sessionID, token string) (Round, error) {
	s.mu.Lock()
	round, ok := s.rounds[sessionID]
	if !ok || !round.Started {
		s.mu.Unlock()
		return Round{}, ErrNoQuestion
	}
	if round.Answered {
		snapshot := *round
		s.mu.Unlock()
		return snapshot, ErrAlreadyAnswered
	}
	if round.submitting {
		snapshot := *round
		s.mu.Unlock()
		return snapshot, ErrSubmitPending
	}
	if round.Selected == "" {
		snapshot := *round
		s.mu.Unlock()
		return snapshot, ErrNoSelection
	}
	round.submitting = true
	answer := domain.Answer{QuestionID: round.Question.ID, UserAnswer: round.Selected}
	s.mu.Unlock()

	feedback, err := s.quizzer.TriviaAnswer(ctx, token, answer)

	s.mu.Lock()
	defer s.mu.Unlock()
	round.submitting = false
	if err != nil {
		if current, ok := s.rounds[sessionID]; ok {
			return *current, err
		}
		return Round{}, err
	}
	current, stillThere := s.rounds[sessionID]
	if !stillThere || current.Question.ID != answer.QuestionID {
		// The round changed while the submission was in flight.
		if current != nil {
			return *current, nil
		}
		return Round{}, ErrNoQuestion
	}
	current.Feedback = feedback.Reply
	current.Answered = true
	return *current, nil
}

// Drop releases the round for a session; wired to the session store's
// destroy hooks.
func (s *Service) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.rounds, sessionID)
	s.mu.Unlock()
}

func containsOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
