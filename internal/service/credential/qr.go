package credential

import (
	"context"

	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/token"
)

// TokenQRValidator accepts QR payloads that are signed session tokens, as
// produced by the mobile app for kiosk display. The embedded employee id is
// trusted once the signature and expiry check out.
type TokenQRValidator struct {
	tokens token.Service
}

func NewTokenQRValidator(tokens token.Service) TokenQRValidator {
	return TokenQRValidator{tokens: tokens}
}

func (v TokenQRValidator) Validate(ctx context.Context, payload string) (string, error) {
	return v.tokens.EmployeeID(payload)
}

var _ credential.QRValidator = TokenQRValidator{}
