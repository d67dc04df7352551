package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"hoteldesk/internal/salaries/service"
	httputil "hoteldesk/pkg/http"
	"hoteldesk/pkg/logger"
	"hoteldesk/pkg/model"
)

type SalaryHandler struct {
	service service.SalaryService
	log     *logger.Logger
}

func NewSalaryHandler(service service.SalaryService, log *logger.Logger) *SalaryHandler {
	return &SalaryHandler{
		service: service,
		log:     log,
	}
}

func (h *SalaryHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	salaries, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, salaries); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

// GetByMonth lists the records dated within the calendar month (UTC) named
// by the :year and :month parameters.
func (h *SalaryHandler) GetByMonth(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	year, month, err := httputil.YearMonth(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByMonth", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	start, end := httputil.MonthRange(year, month)
	salaries, err := h.service.GetByDateRange(r.Context(), start, end)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByMonth", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, salaries); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByMonth", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SalaryHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.SalaryInput
	if err := httputil.DecodeBody(r, &input); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	salary, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, salary); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *SalaryHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var updates model.SalaryUpdate
	if err := httputil.DecodeBody(r, &updates); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	salary, err := h.service.Update(r.Context(), id, &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, salary); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SalaryHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "Salary deleted"); err != nil {
		h.log.Error("failed to write message response", "handler", "Delete", "operation", "WriteMessage", "error", err)
	}
}

func (h *SalaryHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/salaries", h.GetAll)
	router.GET("/salaries/month/:year/:month", h.GetByMonth)
	router.POST("/salaries", h.Create)
	router.PUT("/salaries/:id", h.Update)
	router.DELETE("/salaries/:id", h.Delete)
}
