package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/session"
	"github.com/xy-planning-network/wanderlust/logger"
)

// The User defines attributes about a user in the context of middleware.
type User interface {
	HasAccess() bool
	HomePath() string
}

// UserStorer defines how to retrieve a User by their username in the context of middleware.
//
// When no User has the username, UserStorer returns an error wrapping wanderlust.ErrNotExist.
type UserStorer func(ctx context.Context, username string) (User, error)

// CurrentUser pulls the username out of the session.UserSessionable stored in the *http.Request.Context,
// reads the User fresh from storer and stores it under wanderlust.CurrentUserKey.
//
// CurrentUser never fails a request: when the User cannot be read,
// the request proceeds unauthenticated and RequireAuthed decides what happens next.
// A session naming a User who no longer exists keeps its username,
// so routes behind RequireSession can still report on it.
// Store failures are logged with l.
func CurrentUser(l logger.Logger, storer UserStorer) Adapter {
	if storer == nil {
		return NoopAdapter
	}

	if l == nil {
		l = logger.NewDiscardLogger()
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := r.Context().Value(wanderlust.SessionKey).(session.WanderSessionable)
			if !ok {
				handler.ServeHTTP(w, r)
				return
			}

			username, err := s.Username()
			if err != nil {
				// NOTE: there is no User in the session,
				// request may be accessing an unauthenticated endpoint,
				// maybe not, something for RequireAuthed to determine
				handler.ServeHTTP(w, r)
				return
			}

			user, err := storer(r.Context(), username)
			switch {
			case errors.Is(err, wanderlust.ErrNotExist):
				handler.ServeHTTP(w, r)
				return
			case err != nil:
				l.Error("cannot read current user", &logger.LogContext{
					Data:    map[string]any{"username": username},
					Error:   err,
					Request: r,
				})
				handler.ServeHTTP(w, r)
				return
			}

			if user == nil || !user.HasAccess() {
				if err := s.DeregisterUser(w, r); err != nil {
					l.Error("cannot deregister user", &logger.LogContext{Error: err, Request: r})
				}

				handler.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Cache-Control", "no-store")
			w.Header().Add("Pragma", "no-cache")

			ctx := context.WithValue(r.Context(), wanderlust.CurrentUserKey, user)
			handler.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// RequireAuthed returns a middleware.Adapter that checks whether a User is authenticated,
// and requires they be authenticated.
// When the User is authenticated, then RequireAuthed hands off to the next part of the middleware chain.
//
// Authenticated means a User is set in the request context under wanderlust.CurrentUserKey.
//
// When the User is not authenticated, and the request's "Accept" header has "application/json" in it,
// RequireAuthed writes 401 to the client.
// Otherwise, RequireAuthed redirects to the provided login URL:
// GET requests are redirected with 307 and the originally requested URL as a "next" query param,
// all others with 303.
func RequireAuthed(loginUrl string) Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Value(wanderlust.CurrentUserKey).(User); ok {
				handler.ServeHTTP(w, r)
				return
			}

			toLogin(w, r, loginUrl)
		})
	}
}

// RequireSession is RequireAuthed loosened to accept any session naming a username,
// whether or not that User could be read.
// Handlers behind it decide what to do when no User is under wanderlust.CurrentUserKey.
func RequireSession(loginUrl string) Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Value(wanderlust.CurrentUserKey).(User); ok {
				handler.ServeHTTP(w, r)
				return
			}

			if s, ok := r.Context().Value(wanderlust.SessionKey).(session.UserSessionable); ok {
				if _, err := s.Username(); err == nil {
					handler.ServeHTTP(w, r)
					return
				}
			}

			toLogin(w, r, loginUrl)
		})
	}
}

// toLogin turns away an unauthenticated request.
func toLogin(w http.ResponseWriter, r *http.Request, loginUrl string) {
	if acceptsJson(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if r.Method != http.MethodGet {
		http.Redirect(w, r, loginUrl, http.StatusSeeOther)
		return
	}

	u := loginUrl + "?next=" + url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, u, http.StatusTemporaryRedirect)
}

// acceptsJson checks the MIME types of the *http.Request "Accept" header for "application/json".
func acceptsJson(r *http.Request) bool {
	for _, v := range r.Header.Values("Accept") {
		for _, mt := range strings.Split(v, ",") {
			mt, _, _ = strings.Cut(mt, ";")
			if strings.EqualFold(strings.TrimSpace(mt), "application/json") {
				return true
			}
		}
	}

	return false
}
