package token

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/clock"
)

// Service issues and validates the session tokens the credential gate hands
// out after a successful authentication. Tokens are opaque to callers.
type Service interface {
	Generate(employeeID string) (token string, expiresAt int64, err error)

	// Validate checks signature, expiry and the employee binding.
	Validate(tokenString string, employeeID string) error

	// EmployeeID extracts the employee id from a valid, unexpired token.
	EmployeeID(tokenString string) (string, error)

	JWTAuth() *jwtauth.JWTAuth
}

type sessionService struct {
	duration  time.Duration
	tokenAuth *jwtauth.JWTAuth
	clk       clock.Clock
}

func NewSessionService(secretKey string, duration time.Duration, clk clock.Clock) Service {
	return &sessionService{
		duration:  duration,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		clk:       clk,
	}
}

func (s *sessionService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *sessionService) Generate(employeeID string) (string, int64, error) {
	issuedAt := s.clk.Now()
	expiresAt := issuedAt.Add(s.duration).Unix()

	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "session",
		"iat":         issuedAt.Unix(),
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}

func (s *sessionService) Validate(tokenString string, employeeID string) error {
	id, err := s.EmployeeID(tokenString)
	if err != nil {
		return err
	}
	if id != employeeID {
		return credential.ErrInvalidSession
	}
	return nil
}

func (s *sessionService) EmployeeID(tokenString string) (string, error) {
	// Decode verifies the signature; expiry is checked against the injected
	// clock so the gate's tests stay deterministic.
	tok, err := s.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", credential.ErrInvalidSession
	}

	tokenType, ok := tok.Get("type")
	if !ok || tokenType != "session" {
		return "", credential.ErrInvalidSession
	}

	if !tok.Expiration().After(s.clk.Now()) {
		return "", credential.ErrSessionExpired
	}

	idVal, ok := tok.Get("employee_id")
	if !ok {
		return "", credential.ErrInvalidSession
	}
	employeeID, ok := idVal.(string)
	if !ok || employeeID == "" {
		return "", credential.ErrInvalidSession
	}

	return employeeID, nil
}
