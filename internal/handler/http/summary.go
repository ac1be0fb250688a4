package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pontohq/timeclock-backend-go/internal/domain/summary"
	"github.com/pontohq/timeclock-backend-go/internal/handler/http/response"
)

type SummaryHandler interface {
	Day(w http.ResponseWriter, r *http.Request)
	Month(w http.ResponseWriter, r *http.Request)
}

type SummaryHandlerImpl struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &SummaryHandlerImpl{summaryService: summaryService}
}

// Day implements SummaryHandler.
func (s *SummaryHandlerImpl) Day(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	day, err := s.summaryService.DaySummary(r.Context(), employeeID, date)
	if err != nil {
		slog.Error("DaySummary service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, day)
}

// Month implements SummaryHandler.
func (s *SummaryHandlerImpl) Month(w http.ResponseWriter, r *http.Request) {
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

	monthSummary, err := s.summaryService.MonthSummary(r.Context(), employeeID, month, year)
	if err != nil {
		slog.Error("MonthSummary service error", "employee_id", employeeID, "month", month, "year", year, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthSummary)
}
