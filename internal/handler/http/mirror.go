package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pontohq/timeclock-backend-go/internal/domain/mirror"
	"github.com/pontohq/timeclock-backend-go/internal/handler/http/response"
)

type MirrorHandler interface {
	Build(w http.ResponseWriter, r *http.Request)
}

type MirrorHandlerImpl struct {
	mirrorService mirror.MirrorService
}

func NewMirrorHandler(mirrorService mirror.MirrorService) MirrorHandler {
	return &MirrorHandlerImpl{mirrorService: mirrorService}
}

// Build implements MirrorHandler.
func (m *MirrorHandlerImpl) Build(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Month must be a number", nil)
		return
	}

	doc, err := m.mirrorService.Build(r.Context(), employeeID, month, year)
	if err != nil {
		slog.Error("Mirror build service error", "employee_id", employeeID, "month", month, "year", year, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, doc)
}
