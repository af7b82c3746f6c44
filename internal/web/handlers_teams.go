package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	appteams "mlb-companion/internal/app/teams"
	domainplayers "mlb-companion/internal/domain/players"
	domainteams "mlb-companion/internal/domain/teams"
	"mlb-companion/internal/session"
)

type teamsData struct {
	Teams Resource[[]domainteams.Team]
	Query string
	Sort  string
}

// Teams renders the team directory with name search and A-Z/Z-A ordering.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	query := appteams.Query{
		Name: r.URL.Query().Get("q"),
		Sort: appteams.SortAsc,
	}
	if r.URL.Query().Get("sort") == string(appteams.SortDesc) {
		query.Sort = appteams.SortDesc
	}

	data := teamsData{Query: query.Name, Sort: string(query.Sort)}

	teams, err := h.teams.List(r.Context(), sess.Token, query)
	switch {
	case isUnauthorized(err):
		h.unauthorized(w, r, sess)
		return
	case err != nil:
		data.Teams = Errored[[]domainteams.Team](err)
	default:
		data.Teams = Ready(teams)
	}

	h.render(w, r, http.StatusOK, "teams.tmpl", data)
}

type teamData struct {
	Team Resource[domainteams.Detail]
}

// Team renders one team's profile and roster. Roster rows link to the
// player page carrying this team's path so the back link can return here.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id, err := strconv.Atoi(mux.Vars(r)["teamId"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var data teamData
	detail, err := h.teams.Detail(r.Context(), sess.Token, id)
	switch {
	case isUnauthorized(err):
		h.unauthorized(w, r, sess)
		return
	case err != nil:
		data.Team = Errored[domainteams.Detail](err)
	default:
		data.Team = Ready(detail)
	}

	h.render(w, r, http.StatusOK, "team.tmpl", data)
}

type playerData struct {
	Player   Resource[domainplayers.Player]
	BackPath string
}

// Player renders one player's bio. The optional from parameter names the
// team page that linked here; anything that is not a local team path
// falls back to the directory.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id, err := strconv.Atoi(mux.Vars(r)["playerId"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data := playerData{BackPath: backPath(r.URL.Query().Get("from"))}

	player, err := h.api.Player(r.Context(), sess.Token, id)
	switch {
	case isUnauthorized(err):
		h.unauthorized(w, r, sess)
		return
	case err != nil:
		data.Player = Errored[domainplayers.Player](err)
	default:
		data.Player = Ready(player)
	}

	h.render(w, r, http.StatusOK, "player.tmpl", data)
}

// backPath validates a back-navigation target; only local team pages are
// honored.
func backPath(from string) string {
	if strings.HasPrefix(from, "/team/") && !strings.Contains(from, "//") {
		return from
	}
	return "/teams"
}
