package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Authenticate(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService credential.AuthService
}

func NewAuthHandler(authService credential.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Authenticate implements AuthHandler.
func (a *AuthHandlerImpl) Authenticate(w http.ResponseWriter, r *http.Request) {
	var authReq credential.AuthenticateRequest

	if err := json.NewDecoder(r.Body).Decode(&authReq); err != nil {
		slog.Error("Authenticate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Request metadata comes from the transport, never from the payload.
	authReq.IPAddress = r.RemoteAddr
	authReq.UserAgent = r.UserAgent()

	resp, err := a.authService.Authenticate(r.Context(), authReq)
	if err != nil {
		slog.Error("Authenticate service error", "method", authReq.Method, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
