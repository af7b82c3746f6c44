package web

import (
	"net/http"

	apptrivia "mlb-companion/internal/app/trivia"
	domainchat "mlb-companion/internal/domain/chat"
	domainschedule "mlb-companion/internal/domain/schedule"
	"mlb-companion/internal/session"
)

// nextGameView wraps the next-game widget state; no upcoming game is a
// normal empty state.
type nextGameView struct {
	Game  domainschedule.NextGame
	Found bool
}

type homeData struct {
	Username    string
	NextGame    Resource[nextGameView]
	Trivia      apptrivia.Round
	TriviaError string
	Chat        []domainchat.Message
	ChatPending bool
}

// Home renders the dashboard: next-game widget, trivia widget, chat widget.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	data := homeData{
		Username:    sess.Username,
		Trivia:      h.trivia.Round(sess.ID),
		TriviaError: r.URL.Query().Get("trivia_error"),
		Chat:        h.chat.Transcript(sess.ID),
		ChatPending: h.chat.Pending(sess.ID),
	}

	next, found, err := h.schedule.NextGame(r.Context(), sess)
	switch {
	case isUnauthorized(err):
		h.unauthorized(w, r, sess)
		return
	case err != nil:
		data.NextGame = Errored[nextGameView](err)
	default:
		data.NextGame = Ready(nextGameView{Game: next, Found: found})
	}

	h.render(w, r, http.StatusOK, "home.tmpl", data)
}
