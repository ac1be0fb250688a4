package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/pontohq/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pontohq/timeclock-backend-go/internal/handler/http/response"
)

type TimeClockHandler interface {
	RegisterPunch(w http.ResponseWriter, r *http.Request)
	ListDayPunches(w http.ResponseWriter, r *http.Request)
}

type TimeClockHandlerImpl struct {
	timeClockService timeclock.TimeClockService
}

func NewTimeClockHandler(timeClockService timeclock.TimeClockService) TimeClockHandler {
	return &TimeClockHandlerImpl{timeClockService: timeClockService}
}

// RegisterPunch implements TimeClockHandler.
func (t *TimeClockHandlerImpl) RegisterPunch(w http.ResponseWriter, r *http.Request) {
	var punchReq timeclock.RegisterPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&punchReq); err != nil {
		slog.Error("RegisterPunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The session token travels in the Authorization header, not the payload.
	if punchReq.SessionToken == "" {
		punchReq.SessionToken = jwtauth.TokenFromHeader(r)
	}

	resp, err := t.timeClockService.RegisterPunch(r.Context(), punchReq)
	if err != nil {
		slog.Error("RegisterPunch service error", "employee_id", punchReq.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch registered", resp)
}

// ListDayPunches implements TimeClockHandler.
func (t *TimeClockHandlerImpl) ListDayPunches(w http.ResponseWriter, r *http.Request) {
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

	punches, err := t.timeClockService.ListDayPunches(r.Context(), employeeID, date)
	if err != nil {
		slog.Error("ListDayPunches service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, punches)
}
