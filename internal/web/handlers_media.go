package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mlb-companion/internal/backend"
	"mlb-companion/internal/logging"
	"mlb-companion/internal/session"
)

// TeamLogo proxies a team's logo so the browser never needs the bearer
// token. A backend that answers with a URL instead of bytes gets a
// redirect.
func (h *Handler) TeamLogo(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	h.serveMedia(w, r, sess, "teamId", h.api.TeamLogo)
}

// PlayerPhoto proxies a player's headshot; same contract as TeamLogo.
func (h *Handler) PlayerPhoto(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	h.serveMedia(w, r, sess, "playerId", h.api.PlayerPhoto)
}

func (h *Handler) serveMedia(w http.ResponseWriter, r *http.Request, sess *session.Session, pathVar string,
	fetch func(ctx context.Context, token string, id int) (backend.Media, error)) {
	id, err := strconv.Atoi(mux.Vars(r)[pathVar])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	media, err := fetch(r.Context(), sess.Token, id)
	if err != nil {
		if isUnauthorized(err) {
			writeError(w, r, http.StatusUnauthorized, "session required", h.logger)
			return
		}
		logging.Warn(logging.FromContext(r.Context(), h.logger), "media fetch failed")
		http.NotFound(w, r)
		return
	}

	if media.IsURL() {
		http.Redirect(w, r, media.URL, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", media.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(media.Data)
}
