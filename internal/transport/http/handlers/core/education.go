package corehandler

import (
	"net/http"

	"hrm/internal/domain/core"
	"hrm/internal/transport/http/shared"
)

func (h *Handler) handleListEducation(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ListEducation(r.Context())
	h.respond(w, r, http.StatusOK, rows, err)
}

func (h *Handler) handleGetEducation(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	edu, err := h.Service.GetEducation(r.Context(), id)
	h.respond(w, r, http.StatusOK, edu, err)
}

func (h *Handler) handleCreateEducation(w http.ResponseWriter, r *http.Request) {
	var payload core.EducationInput
	if err := shared.DecodeJSON(r, &payload); err != nil {
		h.fail(w, r, err)
		return
	}
	edu, err := h.Service.CreateEducation(r.Context(), payload)
	h.respond(w, r, http.StatusCreated, edu, err)
}

func (h *Handler) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	var payload core.EducationInput
	id, err := decodeWithID(r, &payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	edu, err := h.Service.UpdateEducation(r.Context(), id, payload)
	h.respond(w, r, http.StatusOK, edu, err)
}

func (h *Handler) handleDeleteEducation(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.noContent(w, r, h.Service.DeleteEducation(r.Context(), id))
}
