package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/middleware"
	"github.com/xy-planning-network/wanderlust/http/router"
)

func teapot(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) }

func withUser(u any) middleware.Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if u != nil {
				r = r.WithContext(context.WithValue(r.Context(), wanderlust.CurrentUserKey, u))
			}
			h.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	assets := fstest.MapFS{"css/app.css": &fstest.MapFile{Data: []byte("body{}")}}

	tcs := []struct {
		name       string
		user       any
		method     string
		target     string
		expectCode int
		expectLoc  string
	}{
		{"Unauthed", nil, http.MethodGet, "/login", http.StatusTeapot, ""},
		{"Authed-No-User", nil, http.MethodGet, "/home", http.StatusTemporaryRedirect, "/login?next=%2Fhome"},
		{"Authed-User", wanderlust.User{ID: 1, Username: "alice"}, http.MethodGet, "/home", http.StatusTeapot, ""},
		{"Wrong-Method", nil, http.MethodPost, "/login", http.StatusMethodNotAllowed, ""},
		{"Not-Found", nil, http.MethodGet, "/nowhere", http.StatusNotFound, ""},
		{"Asset", nil, http.MethodGet, "/assets/css/app.css", http.StatusOK, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rt := router.New(wanderlust.Testing, assets, nil)
			rt.OnEveryRequest(withUser(tc.user))
			rt.UnauthedRoutes([]router.Route{{Path: "/login", Method: http.MethodGet, Handler: teapot}})
			rt.AuthedRoutes("/login", []router.Route{{Path: "/home", Method: http.MethodGet, Handler: teapot}})
			rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) })

			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)

			// Act
			rt.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expectCode, w.Code)
			require.Equal(t, tc.expectLoc, w.Header().Get("Location"))
		})
	}
}

func TestRouterAssetsCached(t *testing.T) {
	// Arrange
	rt := router.New(wanderlust.Testing, fstest.MapFS{"app.css": &fstest.MapFile{Data: []byte("body{}")}}, nil)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/assets/app.css", nil)

	// Act
	rt.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "body{}", w.Body.String())
	require.Equal(t, "max-age=2592000", w.Header().Get("Cache-Control"))
}

func TestRouterLogsRequests(t *testing.T) {
	tcs := []struct {
		name   string
		target string
		logged []string
	}{
		{"Unauthed", "/login", []string{"/login"}},
		{"Authed-Turned-Away", "/home", []string{"/home"}},
		{"Route-Middleware", "/list", []string{"/list"}},
		{"Not-Found", "/nowhere", []string{"/nowhere"}},
		{"Asset", "/assets/app.css", []string{"/assets/app.css"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var logged []string
			logReq := func(h http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					logged = append(logged, r.URL.Path)
					h.ServeHTTP(w, r)
				})
			}

			rt := router.New(wanderlust.Testing, fstest.MapFS{"app.css": &fstest.MapFile{Data: []byte("body{}")}}, logReq)
			rt.UnauthedRoutes([]router.Route{
				{Path: "/login", Method: http.MethodGet, Handler: teapot},
				{Path: "/list", Method: http.MethodGet, Handler: teapot, Middlewares: []middleware.Adapter{withUser(nil)}},
			})
			rt.AuthedRoutes("/login", []router.Route{{Path: "/home", Method: http.MethodGet, Handler: teapot}})
			rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) })

			// Act
			rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.target, nil))

			// Assert
			require.Equal(t, tc.logged, logged)
		})
	}
}
