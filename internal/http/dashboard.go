package http

import "net/http"

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	const handlerName = "dashboard"

	summary, err := h.Dashboard.Summary(r.Context(), viewer(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
