package backend

import "time"

const (
	defaultBaseURL       = "http://localhost:8080/api"
	defaultHTTPTimeout   = 10 * time.Second
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond

	maxErrorBody = 512
)

// Endpoint names used for logging and metrics attribution.
const (
	EndpointLogin           = "login"
	EndpointRegister        = "register"
	EndpointCurrentUser     = "currentUser"
	EndpointSchedule        = "schedule"
	EndpointTeams           = "teams"
	EndpointTeam            = "team"
	EndpointTeamLogo        = "teamLogo"
	EndpointPlayer          = "player"
	EndpointPlayerPhoto     = "playerPhoto"
	EndpointFavorites       = "favorites"
	EndpointUpdateFavorites = "updateFavorites"
	EndpointCalendarCheck   = "calendarCheck"
	EndpointCalendarEvent   = "calendarEvent"
	EndpointChat            = "chat"
	EndpointTriviaQuestion  = "triviaQuestion"
	EndpointTriviaAnswer    = "triviaAnswer"
)
