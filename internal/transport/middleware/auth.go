package middleware

import (
	"context"
	"net/http"
	"strings"
)

// authenticator resolves a bearer token into a context carrying the owner ID.
type authenticator interface {
	Authenticate(ctx context.Context, token string) (context.Context, error)
}

// Auth rejects requests without a valid bearer token. On success the owner
// ID is available to handlers through ctxutil.OwnerIDFromCtx.
func Auth(authn authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			ctx, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
