package middleware

import (
	"net/http"
	"strings"

	"github.com/inkhouse/publishing-backend/pkg/ctxutil"
)

// sessionVerifier turns a session token into a user id.
type sessionVerifier interface {
	Verify(token string) (string, error)
}

// Auth attaches the session user to the request context. Requests without
// a bearer token pass through anonymously; a bad token is rejected with 401.
// A nil verifier disables session auth entirely.
func Auth(verifier sessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		if verifier == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
		})
	}
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
