package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/handler/http/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	resp    credential.AuthenticateResponse
	err     error
	lastReq credential.AuthenticateRequest
}

func (f *fakeAuthService) Authenticate(_ context.Context, req credential.AuthenticateRequest) (credential.AuthenticateResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeAuthService) ValidateSession(_ context.Context, _ string, _ string) error {
	return nil
}

func postLogin(t *testing.T, handler AuthHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(raw))
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	handler.Authenticate(rec, req)
	return rec
}

func TestAuthenticate_Success(t *testing.T) {
	svc := &fakeAuthService{resp: credential.AuthenticateResponse{
		EmployeeID:   "emp-1",
		EmployeeName: "Maria Souza",
		SessionToken: "token-abc",
		ExpiresAt:    1770000000,
	}}
	handler := NewAuthHandler(svc)

	rec := postLogin(t, handler, credential.AuthenticateRequest{
		Method:     credential.MethodPassword,
		Identifier: "emp-1",
		Credential: "secret",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "emp-1", data["employee_id"])
	assert.Equal(t, "token-abc", data["session_token"])

	// Transport metadata is filled from the request, not the payload.
	assert.Equal(t, "test-agent", svc.lastReq.UserAgent)
	assert.NotEmpty(t, svc.lastReq.IPAddress)
}

func TestAuthenticate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", credential.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account locked", credential.ErrAccountLocked, http.StatusLocked},
		{"pin expired", credential.ErrPINExpired, http.StatusUnauthorized},
		{"no credentials", credential.ErrNoCredentials, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&fakeAuthService{err: tt.err})

			rec := postLogin(t, handler, credential.AuthenticateRequest{
				Method:     credential.MethodPassword,
				Identifier: "emp-1",
				Credential: "secret",
			})

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
		})
	}
}

func TestAuthenticate_MalformedBody(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Authenticate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthenticate_ValidationErrorMapsTo422(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{err: func() error {
		req := credential.AuthenticateRequest{Method: "telepathy"}
		return req.Validate()
	}()})

	rec := postLogin(t, handler, credential.AuthenticateRequest{Method: "telepathy"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
