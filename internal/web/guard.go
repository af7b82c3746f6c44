package web

import (
	"errors"
	"log/slog"
	"net/http"

	"mlb-companion/internal/backend"
	"mlb-companion/internal/logging"
	"mlb-companion/internal/session"
)

const loginPath = "/login"

// Decision is the guard's verdict for a protected path: an authorized
// session, or a redirect target. The router evaluates it before the
// protected view runs, so protected content is never rendered without a
// session (fail-closed).
type Decision struct {
	Session    *session.Session
	RedirectTo string
}

// Authorized reports whether the request carries an active session.
func (d Decision) Authorized() bool { return d.Session != nil }

// authorize resolves the session cookie into a Decision.
func (h *Handler) authorize(r *http.Request) Decision {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return Decision{RedirectTo: loginPath}
	}

	sid, err := h.codec.Decode(cookie.Value)
	if err != nil {
		logging.Warn(logging.FromContext(r.Context(), h.logger), "rejecting session cookie", slog.Any("error", err))
		return Decision{RedirectTo: loginPath}
	}

	sess, ok := h.sessions.Get(sid)
	if !ok {
		return Decision{RedirectTo: loginPath}
	}
	return Decision{Session: sess}
}

// protect gates an HTML view behind the guard.
func (h *Handler) protect(next func(http.ResponseWriter, *http.Request, *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decision := h.authorize(r)
		if !decision.Authorized() {
			http.SetCookie(w, h.codec.ExpiredCookie())
			http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
			return
		}
		next(w, r, decision.Session)
	}
}

// protectJSON gates a JSON endpoint behind the guard; fragments answer
// 401 instead of redirecting so the page script can react.
func (h *Handler) protectJSON(next func(http.ResponseWriter, *http.Request, *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decision := h.authorize(r)
		if !decision.Authorized() {
			writeError(w, r, http.StatusUnauthorized, "session required", h.logger)
			return
		}
		next(w, r, decision.Session)
	}
}

// expireSession tears down the server-side session and clears the cookie.
func (h *Handler) expireSession(w http.ResponseWriter, sess *session.Session) {
	if sess != nil {
		h.sessions.Destroy(sess.ID)
	}
	http.SetCookie(w, h.codec.ExpiredCookie())
}

// unauthorized applies the global 401 rule: clear the session and send
// the browser to the login screen, regardless of which request tripped it.
func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	logging.Warn(logging.FromContext(r.Context(), h.logger), "backend rejected session token")
	h.expireSession(w, sess)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

// isUnauthorized reports whether err is the backend's 401.
func isUnauthorized(err error) bool {
	return errors.Is(err, backend.ErrUnauthorized)
}
