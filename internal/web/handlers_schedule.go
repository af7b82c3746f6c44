package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	appschedule "mlb-companion/internal/app/schedule"
	"mlb-companion/internal/backend"
	"mlb-companion/internal/logging"
	"mlb-companion/internal/session"
)

// gameEventLength is how long a calendar entry blocks out for a game.
const gameEventLength = 3 * time.Hour

type scheduleView struct {
	Page          appschedule.Page
	Date          string
	Team          string
	ShowFavorites bool
	Favorites     []string
	PrevURL       string
	NextURL       string
}

type scheduleData struct {
	Schedule      Resource[scheduleView]
	EventAdded    bool
	CalendarError string
}

// Schedule renders the schedule grid with its independent date/team
// filters, the favorites-only toggle, and fixed-size pagination.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	query := r.URL.Query()
	filter := appschedule.Filter{
		Date:          query.Get("date"),
		Team:          query.Get("team"),
		FavoritesOnly: query.Get("favorites") == "1",
	}
	page, _ := strconv.Atoi(query.Get("page"))

	data := scheduleData{
		EventAdded:    query.Get("added") == "1",
		CalendarError: query.Get("calendar_error"),
	}

	if filter.FavoritesOnly {
		favs, err := h.favorites.Current(r.Context(), sess.Token, sess.UserID)
		if isUnauthorized(err) {
			h.unauthorized(w, r, sess)
			return
		}
		if err != nil {
			// The toggle degrades to showing all teams, same as an empty list.
			logging.Warn(logging.FromContext(r.Context(), h.logger), "favorites fetch failed", slog.Any("error", err))
		}
		filter.Favorites = favs
	}

	feed, err := h.schedule.Feed(r.Context(), sess)
	switch {
	case isUnauthorized(err):
		h.unauthorized(w, r, sess)
		return
	case err != nil:
		data.Schedule = Errored[scheduleView](err)
	default:
		filtered := appschedule.Apply(feed.Dates, filter)
		paged := appschedule.Paginate(filtered, page, h.pageSize)
		view := scheduleView{
			Page:          paged,
			Date:          filter.Date,
			Team:          filter.Team,
			ShowFavorites: filter.FavoritesOnly,
			Favorites:     filter.Favorites,
		}
		if paged.HasPrev() {
			view.PrevURL = scheduleURL(filter, paged.Number-1)
		}
		if paged.HasNext() {
			view.NextURL = scheduleURL(filter, paged.Number+1)
		}
		data.Schedule = Ready(view)
	}

	h.render(w, r, http.StatusOK, "schedule.tmpl", data)
}

// scheduleURL rebuilds the schedule query string for a pagination link,
// preserving the active filters.
func scheduleURL(filter appschedule.Filter, page int) string {
	values := url.Values{}
	if filter.Date != "" {
		values.Set("date", filter.Date)
	}
	if filter.Team != "" {
		values.Set("team", filter.Team)
	}
	if filter.FavoritesOnly {
		values.Set("favorites", "1")
	}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	if encoded := values.Encode(); encoded != "" {
		return "/schedule?" + encoded
	}
	return "/schedule"
}

// AddGameToCalendar writes one game to the user's Google Calendar and
// bounces back to the schedule with the outcome.
func (h *Handler) AddGameToCalendar(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/schedule?calendar_error="+url.QueryEscape("invalid form submission"), http.StatusSeeOther)
		return
	}

	start, err := time.Parse(time.RFC3339, r.PostFormValue("start"))
	if err != nil {
		http.Redirect(w, r, "/schedule?calendar_error="+url.QueryEscape("invalid game start time"), http.StatusSeeOther)
		return
	}

	event := backend.GameEvent{
		Summary:       r.PostFormValue("summary"),
		Description:   r.PostFormValue("description"),
		StartDateTime: start.Format(time.RFC3339),
		EndDateTime:   start.Add(gameEventLength).Format(time.RFC3339),
	}

	if err := h.api.CreateGameEvent(r.Context(), sess.Token, event); err != nil {
		if isUnauthorized(err) {
			h.unauthorized(w, r, sess)
			return
		}
		logging.Error(logging.FromContext(r.Context(), h.logger), "calendar event create failed", err)
		http.Redirect(w, r, "/schedule?calendar_error="+url.QueryEscape("could not add the game to your calendar"), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/schedule?added=1", http.StatusSeeOther)
}
