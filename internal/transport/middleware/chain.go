package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that Chain(a, b)(h) is a(b(h)): a runs first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Wrap applies route-level middleware to a single handler function.
func Wrap(h http.HandlerFunc, mws ...Middleware) http.Handler {
	return Chain(mws...)(h)
}

// writeError writes the API's JSON error shape.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
