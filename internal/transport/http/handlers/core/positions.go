package corehandler

import (
	"net/http"

	"hrm/internal/domain/core"
	"hrm/internal/transport/http/shared"
)

func (h *Handler) handleListPositions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ListPositions(r.Context())
	h.respond(w, r, http.StatusOK, rows, err)
}

func (h *Handler) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	pos, err := h.Service.GetPosition(r.Context(), id)
	h.respond(w, r, http.StatusOK, pos, err)
}

func (h *Handler) handleCreatePosition(w http.ResponseWriter, r *http.Request) {
	var payload core.PositionInput
	if err := shared.DecodeJSON(r, &payload); err != nil {
		h.fail(w, r, err)
		return
	}
	pos, err := h.Service.CreatePosition(r.Context(), payload)
	h.respond(w, r, http.StatusCreated, pos, err)
}

func (h *Handler) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	var payload core.PositionInput
	id, err := decodeWithID(r, &payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	pos, err := h.Service.UpdatePosition(r.Context(), id, payload)
	h.respond(w, r, http.StatusOK, pos, err)
}

func (h *Handler) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.noContent(w, r, h.Service.DeletePosition(r.Context(), id))
}
