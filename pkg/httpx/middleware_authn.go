package httpx

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

// AuthnMiddleware verifies HS256 bearer tokens signed with the shared
// service secret and injects the subject and scopes into the request
// context. Scopes travel in the "scope" claim as a space-delimited string,
// same as our other services.
func AuthnMiddleware(secret []byte) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
				}
				return secret, nil
			}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("jwt verify failed", "err", err)
				return
			}

			subject, _ := claims.GetSubject()
			ctx = context.WithValue(ctx, CtxKeySubject, subject)
			ctx = context.WithValue(ctx, CtxKeyScopes, scopesFromClaims(claims))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func scopesFromClaims(claims jwt.MapClaims) []string {
	scope, _ := claims["scope"].(string)
	return strings.Fields(scope)
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
