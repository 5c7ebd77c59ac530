package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/session"
)

// InjectSession stores the session associated with the *http.Request in *http.Request.Context
// under wanderlust.SessionKey.
//
// A session cookie that cannot be decoded, say after rotating keys, yields a fresh session.
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
func InjectSession(store session.SessionStorer) Adapter {
	if store == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, _ := store.GetSession(r)
			ctx := context.WithValue(r.Context(), wanderlust.SessionKey, s)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
