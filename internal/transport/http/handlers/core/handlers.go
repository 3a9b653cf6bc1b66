package corehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"hrm/internal/domain/core"
	"hrm/internal/transport/http/api"
	"hrm/internal/transport/http/shared"
)

const HealthPath = "/health"

type Handler struct {
	Service *core.Service
	Logger  logrus.FieldLogger
}

func NewHandler(service *core.Service, logger logrus.FieldLogger) *Handler {
	return &Handler{Service: service, Logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get(HealthPath, h.handleHealth)

	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.handleListDepartments)
		r.Post("/", h.handleCreateDepartment)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetDepartment)
			r.Put("/", h.handleUpdateDepartment)
			r.Delete("/", h.handleDeleteDepartment)
		})
	})
	r.Route("/positions", func(r chi.Router) {
		r.Get("/", h.handleListPositions)
		r.Post("/", h.handleCreatePosition)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetPosition)
			r.Put("/", h.handleUpdatePosition)
			r.Delete("/", h.handleDeletePosition)
		})
	})
	r.Route("/education", func(r chi.Router) {
		r.Get("/", h.handleListEducation)
		r.Post("/", h.handleCreateEducation)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetEducation)
			r.Put("/", h.handleUpdateEducation)
			r.Delete("/", h.handleDeleteEducation)
		})
	})
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.Put("/", h.handleUpdateEmployee)
			r.Delete("/", h.handleDeleteEmployee)
			r.Get("/history", h.handleEmployeeHistory)
		})
	})
	r.Get("/history", h.handleListHistory)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	api.WriteError(w, r, h.Logger, err)
}

// respond writes data with status or renders err.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, data any, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.WriteJSON(w, h.Logger, status, data)
}

func (h *Handler) noContent(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.NoContent(w)
}

// decodeWithID parses the {id} path parameter, then the JSON body.
func decodeWithID(r *http.Request, dst any) (int64, error) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		return 0, err
	}
	return id, shared.DecodeJSON(r, dst)
}
