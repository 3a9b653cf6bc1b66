package corehandler

import (
	"net/http"

	"hrm/internal/domain/core"
	"hrm/internal/transport/http/shared"
)

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ListDepartments(r.Context())
	h.respond(w, r, http.StatusOK, rows, err)
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	dep, err := h.Service.GetDepartment(r.Context(), id)
	h.respond(w, r, http.StatusOK, dep, err)
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload core.DepartmentInput
	if err := shared.DecodeJSON(r, &payload); err != nil {
		h.fail(w, r, err)
		return
	}
	dep, err := h.Service.CreateDepartment(r.Context(), payload)
	h.respond(w, r, http.StatusCreated, dep, err)
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload core.DepartmentInput
	id, err := decodeWithID(r, &payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	dep, err := h.Service.UpdateDepartment(r.Context(), id, payload)
	h.respond(w, r, http.StatusOK, dep, err)
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.noContent(w, r, h.Service.DeleteDepartment(r.Context(), id))
}
