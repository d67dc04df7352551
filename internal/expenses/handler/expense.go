package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"hoteldesk/internal/expenses/service"
	httputil "hoteldesk/pkg/http"
	"hoteldesk/pkg/logger"
	"hoteldesk/pkg/model"
)

type ExpenseHandler struct {
	service service.ExpenseService
	log     *logger.Logger
}

func NewExpenseHandler(service service.ExpenseService, log *logger.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: service,
		log:     log,
	}
}

func (h *ExpenseHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	expenses, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, expenses); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

// GetByMonth lists the records dated within the calendar month (UTC) named
// by the :year and :month parameters.
func (h *ExpenseHandler) GetByMonth(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	year, month, err := httputil.YearMonth(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByMonth", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	start, end := httputil.MonthRange(year, month)
	expenses, err := h.service.GetByDateRange(r.Context(), start, end)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByMonth", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, expenses); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByMonth", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.ExpenseInput
	if err := httputil.DecodeBody(r, &input); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	expense, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, expense); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var updates model.ExpenseUpdate
	if err := httputil.DecodeBody(r, &updates); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	expense, err := h.service.Update(r.Context(), id, &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, expense); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "Expense deleted"); err != nil {
		h.log.Error("failed to write message response", "handler", "Delete", "operation", "WriteMessage", "error", err)
	}
}

func (h *ExpenseHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/expenses", h.GetAll)
	router.GET("/expenses/month/:year/:month", h.GetByMonth)
	router.POST("/expenses", h.Create)
	router.PUT("/expenses/:id", h.Update)
	router.DELETE("/expenses/:id", h.Delete)
}
