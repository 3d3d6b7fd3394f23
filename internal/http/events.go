package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fairplay10x/internal/model"
	"fairplay10x/internal/service"
)

func (h *Handler) handleEventList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "event_list"

	q := r.URL.Query()
	limit, offset, err := parsePage(q.Get("limit"), q.Get("offset"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	events, err := h.Events.List(r.Context(), model.EventFilter{
		Status:   model.EventStatus(q.Get("status")),
		Upcoming: q.Get("upcoming") == "true",
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, eventsResponse{Events: events})
}

func (h *Handler) handleEventGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "event_get"

	e, err := h.Events.Get(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, eventResponse{Event: e})
}

func (h *Handler) handleEventCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "event_create"

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateEventRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	created, err := h.Events.Create(r.Context(), eventFromRequest(req), viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, eventResponse{Event: created})
}

func (h *Handler) handleEventUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "event_update"

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateEventRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if req.PreferredTeamCount == 0 {
		h.writeError(w, handlerName, service.ErrBadRequest("preferred_team_count is required"))
		return
	}

	e := eventFromRequest(req)
	e.ID = chi.URLParam(r, "eventID")
	updated, err := h.Events.Update(r.Context(), e, viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, eventResponse{Event: updated})
}

func (h *Handler) handleEventDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "event_delete"

	if err := h.Events.Delete(r.Context(), chi.URLParam(r, "eventID"), viewer(r)); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func eventFromRequest(req eventRequest) model.Event {
	return model.Event{
		Name:               req.Name,
		Location:           req.Location,
		EventDatetime:      req.EventDatetime,
		MaxPlaces:          req.MaxPlaces,
		PreferredTeamCount: req.PreferredTeamCount,
	}
}
