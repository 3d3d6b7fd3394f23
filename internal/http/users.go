package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fairplay10x/internal/model"
)

func (h *Handler) handleUserList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_list"

	status := model.UserStatus(r.URL.Query().Get("status"))
	users, err := h.Users.List(r.Context(), status)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, usersResponse{Users: users})
}

func (h *Handler) handleUserGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_get"

	user, err := h.Users.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: user})
}

func (h *Handler) handleUserApprove(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_approve"

	user, err := h.Users.Approve(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: user})
}

func (h *Handler) handleUserSetRole(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_set_role"

	var req setRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Users.SetRole(r.Context(), chi.URLParam(r, "userID"), req.Role, viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: user})
}

func (h *Handler) handleUserLinkPlayer(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_link_player"

	var req linkPlayerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if req.PlayerID != "" {
		if err := ValidateID("player_id", req.PlayerID); err != nil {
			h.writeError(w, handlerName, err)
			return
		}
	}

	user, err := h.Users.LinkPlayer(r.Context(), chi.URLParam(r, "userID"), req.PlayerID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: user})
}

func (h *Handler) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_delete"

	if err := h.Users.Delete(r.Context(), chi.URLParam(r, "userID"), viewer(r)); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
