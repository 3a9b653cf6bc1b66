package corehandler

import (
	"net/http"

	"hrm/internal/domain/core"
	"hrm/internal/transport/http/shared"
)

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	search, _, err := shared.OptionalQuery(r, "search")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rows, err := h.Service.ListEmployees(r.Context(), search)
	h.respond(w, r, http.StatusOK, rows, err)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	emp, err := h.Service.GetEmployee(r.Context(), id)
	h.respond(w, r, http.StatusOK, emp, err)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload core.EmployeeInput
	if err := shared.DecodeJSON(r, &payload); err != nil {
		h.fail(w, r, err)
		return
	}
	ref, err := h.Service.CreateEmployee(r.Context(), payload)
	h.respond(w, r, http.StatusCreated, ref, err)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload core.EmployeeInput
	id, err := decodeWithID(r, &payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ref, err := h.Service.UpdateEmployee(r.Context(), id, payload)
	h.respond(w, r, http.StatusOK, ref, err)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.noContent(w, r, h.Service.DeleteEmployee(r.Context(), id))
}

func (h *Handler) handleEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rows, err := h.Service.EmployeeHistory(r.Context(), id)
	h.respond(w, r, http.StatusOK, rows, err)
}
