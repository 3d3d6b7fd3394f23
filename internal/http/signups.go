package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleSignupList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "signup_list"

	signups, err := h.Signups.List(r.Context(), chi.URLParam(r, "eventID"), viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, signupsResponse{Signups: signups})
}

func (h *Handler) handleSignupCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "signup_create"

	var req signupRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if req.PlayerID != "" {
		if err := ValidateID("player_id", req.PlayerID); err != nil {
			h.writeError(w, handlerName, err)
			return
		}
	}

	s, err := h.Signups.SignUp(r.Context(), chi.URLParam(r, "eventID"), req.PlayerID, viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse{Signup: s})
}

func (h *Handler) handleSignupUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "signup_update"

	var req signupStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	s, err := h.Signups.UpdateStatus(r.Context(), chi.URLParam(r, "eventID"), chi.URLParam(r, "signupID"), req.Status, viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, signupResponse{Signup: s})
}
