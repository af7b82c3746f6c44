package web

import (
	"encoding/json"
	"errors"
	"net/http"

	appchat "mlb-companion/internal/app/chat"
	"mlb-companion/internal/logging"
	"mlb-companion/internal/session"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat relays one assistant message for the widget's script. Blank input
// and overlapping sends are rejected before anything leaves the server.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	reply, err := h.chat.Send(r.Context(), sess.ID, sess.Token, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, appchat.ErrEmptyMessage):
			writeError(w, r, http.StatusUnprocessableEntity, "message is required", h.logger)
		case errors.Is(err, appchat.ErrReplyPending):
			writeError(w, r, http.StatusConflict, "a reply is still pending", h.logger)
		case isUnauthorized(err):
			writeError(w, r, http.StatusUnauthorized, "session required", h.logger)
		default:
			logging.Error(logging.FromContext(r.Context(), h.logger), "chat send failed", err)
			writeError(w, r, http.StatusBadGateway, "assistant unavailable", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply}, h.logger)
}
