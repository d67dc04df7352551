package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"hoteldesk/internal/inventory/service"
	httputil "hoteldesk/pkg/http"
	"hoteldesk/pkg/logger"
	"hoteldesk/pkg/model"
)

type InventoryHandler struct {
	service service.InventoryService
	log     *logger.Logger
}

func NewInventoryHandler(service service.InventoryService, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		log:     log,
	}
}

func (h *InventoryHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, items); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

// Upsert answers 201 when a new item was stored and 200 when an existing
// item was restocked.
func (h *InventoryHandler) Upsert(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.InventoryInput
	if err := httputil.DecodeBody(r, &input); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upsert", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	item, created, err := h.service.Upsert(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upsert", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if created {
		if err := httputil.WriteCreated(w, item); err != nil {
			h.log.Error("failed to write created response", "handler", "Upsert", "operation", "WriteCreated", "error", err)
		}
		return
	}
	if err := httputil.WriteSuccess(w, item); err != nil {
		h.log.Error("failed to write success response", "handler", "Upsert", "operation", "WriteSuccess", "error", err)
	}
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var updates model.InventoryUpdate
	if err := httputil.DecodeBody(r, &updates); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	item, err := h.service.Update(r.Context(), id, &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, item); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "Inventory item deleted"); err != nil {
		h.log.Error("failed to write message response", "handler", "Delete", "operation", "WriteMessage", "error", err)
	}
}

func (h *InventoryHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/inventory", h.GetAll)
	router.POST("/inventory", h.Upsert)
	router.PUT("/inventory/:id", h.Update)
	router.DELETE("/inventory/:id", h.Delete)
}
