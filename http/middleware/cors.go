package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS allows cross-origin requests from base, with credentials,
// so a client served from base can carry the session cookie.
// The RequestIDHeader is exposed to that client.
//
// If base is empty, CORS returns NoopAdapter.
func CORS(base string) Adapter {
	if base == "" {
		return NoopAdapter
	}

	return handlers.CORS(
		handlers.AllowCredentials(),
		handlers.AllowedHeaders([]string{"Accept", "Content-Type"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodPost}),
		handlers.AllowedOrigins([]string{base}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	)
}
