package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fairplay10x/internal/model"
)

func (h *Handler) handlePlayerList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "player_list"

	q := r.URL.Query()
	limit, offset, err := parsePage(q.Get("limit"), q.Get("offset"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	players, err := h.Players.List(r.Context(), model.PlayerFilter{
		Position: model.Position(q.Get("position")),
		Search:   q.Get("search"),
		Limit:    limit,
		Offset:   offset,
	}, viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, playersResponse{Players: players})
}

func (h *Handler) handlePlayerGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "player_get"

	p, err := h.Players.Get(r.Context(), chi.URLParam(r, "playerID"), viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, playerResponse{Player: p})
}

func (h *Handler) handlePlayerCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "player_create"

	var req playerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	p, err := ValidatePlayerRequest(req)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	created, err := h.Players.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, playerResponse{Player: created})
}

func (h *Handler) handlePlayerUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "player_update"

	var req playerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	p, err := ValidatePlayerRequest(req)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	p.ID = chi.URLParam(r, "playerID")

	updated, err := h.Players.Update(r.Context(), p, viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, playerResponse{Player: updated})
}

func (h *Handler) handlePlayerDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "player_delete"

	if err := h.Players.Delete(r.Context(), chi.URLParam(r, "playerID")); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
