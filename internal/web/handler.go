package web

import (
	"context"
	"log/slog"
	"time"

	appchat "mlb-companion/internal/app/chat"
	appfavorites "mlb-companion/internal/app/favorites"
	appschedule "mlb-companion/internal/app/schedule"
	appteams "mlb-companion/internal/app/teams"
	apptrivia "mlb-companion/internal/app/trivia"
	"mlb-companion/internal/backend"
	"mlb-companion/internal/domain/players"
	"mlb-companion/internal/domain/users"
	"mlb-companion/internal/session"
)

const defaultPageSize = 3

// Backend is the slice of the REST client the web layer calls directly;
// everything else goes through the app services.
type Backend interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) error
	CurrentUser(ctx context.Context, token string) (users.User, error)
	Player(ctx context.Context, token string, id int) (players.Player, error)
	CheckCalendar(ctx context.Context, token string) (backend.CalendarStatus, error)
	CalendarAuthURL() string
	CreateGameEvent(ctx context.Context, token string, event backend.GameEvent) error
	TeamLogo(ctx context.Context, token string, id int) (backend.Media, error)
	PlayerPhoto(ctx context.Context, token string, id int) (backend.Media, error)
}

// Handler wires HTTP routes to the app services and templates.
type Handler struct {
	api       Backend
	sessions  *session.Store
	codec     *session.Codec
	schedule  *appschedule.Service
	favorites *appfavorites.Service
	teams     *appteams.Service
	trivia    *apptrivia.Service
	chat      *appchat.Service
	templates TemplateCache
	logger    *slog.Logger
	pageSize  int
	now       func() time.Time
}

// Deps collects the Handler's collaborators.
type Deps struct {
	API       Backend
	Sessions  *session.Store
	Codec     *session.Codec
	Schedule  *appschedule.Service
	Favorites *appfavorites.Service
	Teams     *appteams.Service
	Trivia    *apptrivia.Service
	Chat      *appchat.Service
	Templates TemplateCache
	Logger    *slog.Logger
	PageSize  int
}

// NewHandler constructs a Handler with defaults.
func NewHandler(deps Deps) *Handler {
	pageSize := deps.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Handler{
		api:       deps.API,
		sessions:  deps.Sessions,
		codec:     deps.Codec,
		schedule:  deps.Schedule,
		favorites: deps.Favorites,
		teams:     deps.Teams,
		trivia:    deps.Trivia,
		chat:      deps.Chat,
		templates: deps.Templates,
		logger:    deps.Logger,
		pageSize:  pageSize,
		now:       time.Now,
	}
}
