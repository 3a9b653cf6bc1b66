package corehandler

import "net/http"

func (h *Handler) handleListHistory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ListHistory(r.Context())
	h.respond(w, r, http.StatusOK, rows, err)
}
