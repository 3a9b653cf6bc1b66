package corehandler

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Health(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, healthResponse{Status: "ok", DB: "connected"}, nil)
}
