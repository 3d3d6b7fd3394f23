package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleDrawGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "draw_get"

	view, err := h.Draws.GetDraw(r.Context(), chi.URLParam(r, "eventID"), viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, drawResponse{Draw: view})
}

func (h *Handler) handleDrawRun(w http.ResponseWriter, r *http.Request) {
	const handlerName = "draw_run"

	var req runDrawRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	// 0 — предпочтительное число команд события
	if req.TeamCount != 0 {
		if err := ValidateTeamCount(req.TeamCount); err != nil {
			h.writeError(w, handlerName, err)
			return
		}
	}

	view, err := h.Draws.RunDraw(r.Context(), chi.URLParam(r, "eventID"), req.TeamCount, viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, drawResponse{Draw: view})
}

func (h *Handler) handleDrawMove(w http.ResponseWriter, r *http.Request) {
	const handlerName = "draw_move"

	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateMoveRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	view, changed, err := h.Draws.MovePlayer(r.Context(), chi.URLParam(r, "eventID"), req.SignupID, req.TargetTeamNumber, req.Version, viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, moveResponse{Draw: view, Changed: changed})
}

func (h *Handler) handleDrawAssignments(w http.ResponseWriter, r *http.Request) {
	const handlerName = "draw_assignments"

	var req assignmentsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateAssignmentsRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	view, err := h.Draws.SaveAssignments(r.Context(), chi.URLParam(r, "eventID"), req.Assignments, req.Version, viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, drawResponse{Draw: view})
}

func (h *Handler) handleDrawConfirm(w http.ResponseWriter, r *http.Request) {
	const handlerName = "draw_confirm"

	var req confirmRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	view, err := h.Draws.ConfirmTeams(r.Context(), chi.URLParam(r, "eventID"), req.Version, viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, drawResponse{Draw: view})
}
