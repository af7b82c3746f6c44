package web

import (
	"log/slog"
	"net/http"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"mlb-companion/internal/metrics"
)

// NewRouter builds the route table and wraps it with recovery, CORS, and
// request logging.
func NewRouter(h *Handler, logger *slog.Logger, recorder *metrics.Recorder, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/login", h.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/register", h.RegisterPage).Methods(http.MethodGet)
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)

	r.HandleFunc("/", h.protect(h.Home)).Methods(http.MethodGet)
	r.HandleFunc("/logout", h.protect(h.Logout)).Methods(http.MethodPost)

	r.HandleFunc("/schedule", h.protect(h.Schedule)).Methods(http.MethodGet)
	r.HandleFunc("/schedule/calendar", h.protect(h.AddGameToCalendar)).Methods(http.MethodPost)

	r.HandleFunc("/profile", h.protect(h.Profile)).Methods(http.MethodGet)
	r.HandleFunc("/profile/favorites", h.protect(h.SaveFavorites)).Methods(http.MethodPost)
	r.HandleFunc("/profile/calendar/status", h.protectJSON(h.CalendarStatus)).Methods(http.MethodGet)
	r.HandleFunc("/profile/calendar/connect", h.protect(h.ConnectCalendar)).Methods(http.MethodGet)

	r.HandleFunc("/teams", h.protect(h.Teams)).Methods(http.MethodGet)
	r.HandleFunc("/team/{teamId}", h.protect(h.Team)).Methods(http.MethodGet)
	r.HandleFunc("/team/{teamId}/logo", h.protectJSON(h.TeamLogo)).Methods(http.MethodGet)
	r.HandleFunc("/player/{playerId}", h.protect(h.Player)).Methods(http.MethodGet)
	r.HandleFunc("/player/{playerId}/photo", h.protectJSON(h.PlayerPhoto)).Methods(http.MethodGet)

	r.HandleFunc("/chat", h.protectJSON(h.Chat)).Methods(http.MethodPost)

	r.HandleFunc("/trivia/next", h.protect(h.TriviaNext)).Methods(http.MethodPost)
	r.HandleFunc("/trivia/select", h.protect(h.TriviaSelect)).Methods(http.MethodPost)
	r.HandleFunc("/trivia/answer", h.protect(h.TriviaAnswer)).Methods(http.MethodPost)

	var handler http.Handler = r
	if len(allowedOrigins) > 0 {
		handler = gorilla.CORS(
			gorilla.AllowedOrigins(allowedOrigins),
			gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
			gorilla.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
			gorilla.AllowCredentials(),
		)(handler)
	}
	handler = gorilla.RecoveryHandler(gorilla.PrintRecoveryStack(true))(handler)
	return LoggingMiddleware(logger, recorder, handler)
}
