package http

import (
	"net/http"

	"fairplay10x/internal/service"
)

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "auth_register"

	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Auth.Register(r.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{User: user})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	const handlerName = "auth_login"

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	res, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      res.User,
	})
}
