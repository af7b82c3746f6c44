package web

import (
	"net/http"
	"net/url"

	appteams "mlb-companion/internal/app/teams"
	domainteams "mlb-companion/internal/domain/teams"
	"mlb-companion/internal/domain/users"
	"mlb-companion/internal/logging"
	"mlb-companion/internal/session"
)

type profileView struct {
	User      users.User
	Teams     []domainteams.Team
	Favorites []string
}

// HasFavorite reports whether a team name is in the persisted baseline;
// the template uses it to pre-check the selection boxes.
func (v profileView) HasFavorite(name string) bool {
	for _, fav := range v.Favorites {
		if fav == name {
			return true
		}
	}
	return false
}

type profileData struct {
	Profile   Resource[profileView]
	Saved     bool
	SaveError string
}

// Profile renders the account page: user info, the favorite-team editor
// seeded with the persisted baseline, and the calendar integration panel.
// The calendar status itself arrives via the status fragment so a slow
// Google check never blocks the page.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	data := profileData{
		Saved:     r.URL.Query().Get("saved") == "1",
		SaveError: r.URL.Query().Get("save_error"),
	}

	view, err := h.loadProfile(r, sess)
	switch {
	case isUnauthorized(err):
		h.unauthorized(w, r, sess)
		return
	case err != nil:
		data.Profile = Errored[profileView](err)
	default:
		data.Profile = Ready(view)
	}

	h.render(w, r, http.StatusOK, "profile.tmpl", data)
}

func (h *Handler) loadProfile(r *http.Request, sess *session.Session) (profileView, error) {
	user, err := h.api.CurrentUser(r.Context(), sess.Token)
	if err != nil {
		return profileView{}, err
	}

	teams, err := h.teams.List(r.Context(), sess.Token, appteams.Query{Sort: appteams.SortAsc})
	if err != nil {
		return profileView{}, err
	}

	favorites, err := h.favorites.Current(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		return profileView{}, err
	}

	return profileView{User: user, Teams: teams, Favorites: favorites}, nil
}

// SaveFavorites reconciles the posted selection against the baseline the
// form was rendered with. A failed save redirects back with the error;
// the baseline stays whatever the server last confirmed, so re-rendering
// the form recomputes the same delta.
func (h *Handler) SaveFavorites(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/profile?save_error="+url.QueryEscape("invalid form submission"), http.StatusSeeOther)
		return
	}

	initial := r.PostForm["initial"]
	selected := r.PostForm["team"]

	if _, err := h.favorites.Save(r.Context(), sess.Token, sess.UserID, initial, selected); err != nil {
		if isUnauthorized(err) {
			h.unauthorized(w, r, sess)
			return
		}
		logging.Error(logging.FromContext(r.Context(), h.logger), "favorites save failed", err)
		http.Redirect(w, r, "/profile?save_error="+url.QueryEscape("could not save your favorite teams"), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/profile?saved=1", http.StatusSeeOther)
}

// CalendarStatus answers the profile page's async status probe as JSON.
func (h *Handler) CalendarStatus(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	status, err := h.api.CheckCalendar(r.Context(), sess.Token)
	if err != nil {
		if isUnauthorized(err) {
			writeError(w, r, http.StatusUnauthorized, "session required", h.logger)
			return
		}
		logging.Error(logging.FromContext(r.Context(), h.logger), "calendar status check failed", err)
		writeError(w, r, http.StatusBadGateway, "calendar status unavailable", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(status)}, h.logger)
}

// ConnectCalendar hands the browser off to the Google consent flow.
func (h *Handler) ConnectCalendar(w http.ResponseWriter, r *http.Request, _ *session.Session) {
	http.Redirect(w, r, h.api.CalendarAuthURL(), http.StatusFound)
}
