package http

import (
	"log/slog"
	"net/http"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/handler/http/response"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/maintenance"
)

type MaintenanceHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Enable(w http.ResponseWriter, r *http.Request)
	Disable(w http.ResponseWriter, r *http.Request)
}

type MaintenanceHandlerImpl struct {
	toggle *maintenance.Toggle
}

func NewMaintenanceHandler(toggle *maintenance.Toggle) MaintenanceHandler {
	return &MaintenanceHandlerImpl{toggle: toggle}
}

// Status implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]bool{"maintenance": h.toggle.Enabled()})
}

// Enable implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) Enable(w http.ResponseWriter, r *http.Request) {
	if err := h.toggle.Enable(); err != nil {
		slog.Error("Enable maintenance error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Maintenance mode enabled", nil)
}

// Disable implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) Disable(w http.ResponseWriter, r *http.Request) {
	if err := h.toggle.Disable(); err != nil {
		slog.Error("Disable maintenance error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Maintenance mode disabled", nil)
}
