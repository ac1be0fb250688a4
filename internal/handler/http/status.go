package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontohq/timeclock-backend-go/internal/domain/status"
	"github.com/pontohq/timeclock-backend-go/internal/handler/http/response"
)

type StatusHandler interface {
	Current(w http.ResponseWriter, r *http.Request)
}

type StatusHandlerImpl struct {
	statusService status.StatusService
}

func NewStatusHandler(statusService status.StatusService) StatusHandler {
	return &StatusHandlerImpl{statusService: statusService}
}

// Current implements StatusHandler.
func (s *StatusHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	snapshot, err := s.statusService.Current(r.Context(), employeeID)
	if err != nil {
		slog.Error("Current status service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}
