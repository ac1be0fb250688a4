package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/handler/http/response"
)

// SessionRequired rejects requests that do not carry a verified session token
// issued by the credential gate. Expiry is enforced by the verifier; the token
// type claim is checked here.
func SessionRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, credential.ErrInvalidSession)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, credential.ErrInvalidSession)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "session" || !ok {
				response.HandleError(w, credential.ErrInvalidSession)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
