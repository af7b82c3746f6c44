package web

import (
	"log/slog"
	"net/http"

	"mlb-companion/internal/logging"
	"mlb-companion/internal/session"
)

type loginData struct {
	Error string
}

type registerData struct {
	Error    string
	Username string
	Email    string
}

// LoginPage renders the login form. An already-authenticated browser is
// sent home instead.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if decision := h.authorize(r); decision.Authorized() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "login.tmpl", loginData{})
}

// Login exchanges the posted credentials for a bearer token and opens a
// session around it.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "login.tmpl", loginData{Error: "Invalid form submission"})
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.render(w, r, http.StatusUnprocessableEntity, "login.tmpl", loginData{Error: "Username and password are required"})
		return
	}

	token, err := h.api.Login(r.Context(), username, password)
	if err != nil {
		logging.Warn(logging.FromContext(r.Context(), h.logger), "login failed", slog.Any("error", err))
		h.render(w, r, http.StatusUnauthorized, "login.tmpl", loginData{Error: "Invalid username or password"})
		return
	}

	user, err := h.api.CurrentUser(r.Context(), token)
	if err != nil {
		logging.Error(logging.FromContext(r.Context(), h.logger), "profile fetch after login failed", err)
		h.render(w, r, http.StatusBadGateway, "login.tmpl", loginData{Error: "Could not load your profile, please try again"})
		return
	}

	sess := h.sessions.Create(token, user)
	value, err := h.codec.Encode(sess.ID)
	if err != nil {
		h.sessions.Destroy(sess.ID)
		logging.Error(logging.FromContext(r.Context(), h.logger), "session cookie encode failed", err)
		h.render(w, r, http.StatusInternalServerError, "login.tmpl", loginData{Error: "Could not start a session, please try again"})
		return
	}

	http.SetCookie(w, h.codec.Cookie(value))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterPage renders the registration form.
func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.tmpl", registerData{})
}

// Register validates the form locally, then creates the account on the
// backend. A mismatched confirmation never reaches the network.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "register.tmpl", registerData{Error: "Invalid form submission"})
		return
	}

	data := registerData{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
	}
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")

	switch {
	case data.Username == "" || data.Email == "" || password == "":
		data.Error = "All fields are required"
	case password != confirm:
		data.Error = "Passwords do not match"
	}
	if data.Error != "" {
		h.render(w, r, http.StatusUnprocessableEntity, "register.tmpl", data)
		return
	}

	if err := h.api.Register(r.Context(), data.Username, data.Email, password); err != nil {
		logging.Warn(logging.FromContext(r.Context(), h.logger), "registration failed", slog.Any("error", err))
		data.Error = "Registration failed, please try again"
		h.render(w, r, http.StatusBadGateway, "register.tmpl", data)
		return
	}

	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

// Logout tears down the session and returns to the login screen.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	h.expireSession(w, sess)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}
