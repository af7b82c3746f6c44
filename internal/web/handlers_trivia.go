package web

import (
	"errors"
	"net/http"
	"net/url"

	apptrivia "mlb-companion/internal/app/trivia"
	"mlb-companion/internal/logging"
	"mlb-companion/internal/session"
)

// TriviaNext starts a round or advances to the next question.
func (h *Handler) TriviaNext(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if _, err := h.trivia.Next(r.Context(), sess.ID, sess.Token); err != nil {
		if isUnauthorized(err) {
			h.unauthorized(w, r, sess)
			return
		}
		logging.Error(logging.FromContext(r.Context(), h.logger), "trivia question fetch failed", err)
		h.redirectTrivia(w, r, "Could not load a question, please try again")
		return
	}
	h.redirectTrivia(w, r, "")
}

// TriviaSelect records the highlighted option; nothing leaves the server.
func (h *Handler) TriviaSelect(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := r.ParseForm(); err != nil {
		h.redirectTrivia(w, r, "Invalid form submission")
		return
	}

	if _, err := h.trivia.Select(sess.ID, r.PostFormValue("option")); err != nil {
		h.redirectTrivia(w, r, triviaMessage(err))
		return
	}
	h.redirectTrivia(w, r, "")
}

// TriviaAnswer submits the selected option for grading.
func (h *Handler) TriviaAnswer(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if _, err := h.trivia.Submit(r.Context(), sess.ID, sess.Token); err != nil {
		if isUnauthorized(err) {
			h.unauthorized(w, r, sess)
			return
		}
		h.redirectTrivia(w, r, triviaMessage(err))
		return
	}
	h.redirectTrivia(w, r, "")
}

func (h *Handler) redirectTrivia(w http.ResponseWriter, r *http.Request, message string) {
	target := "/"
	if message != "" {
		target = "/?trivia_error=" + url.QueryEscape(message)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func triviaMessage(err error) string {
	switch {
	case errors.Is(err, apptrivia.ErrNoQuestion):
		return "Start the trivia game first"
	case errors.Is(err, apptrivia.ErrNoSelection):
		return "Select an answer first"
	case errors.Is(err, apptrivia.ErrAlreadyAnswered):
		return "This question was already answered"
	case errors.Is(err, apptrivia.ErrSubmitPending):
		return "Your answer is still being checked"
	case errors.Is(err, apptrivia.ErrUnknownOption):
		return "That option is not part of this question"
	default:
		return "Could not submit your answer, please try again"
	}
}
