package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/middleware"
	"github.com/xy-planning-network/wanderlust/http/session"
	"github.com/xy-planning-network/wanderlust/logger"
)

func TestCurrentUserNoop(t *testing.T) {
	// Arrange + Act
	actual := middleware.CurrentUser(nil, nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange + Act
	actual = middleware.CurrentUser(logger.NewDiscardLogger(), nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))
}

func TestCurrentUser(t *testing.T) {
	alice := wanderlust.User{ID: 1, Username: "alice"}

	tcs := []struct {
		name       string
		username   string
		noSession  bool
		storer     middleware.UserStorer
		accept     string
		expectCode int
		expectUser any
		expectName bool
	}{
		{
			name:       "No-Session",
			noSession:  true,
			storer:     storerOf(alice, nil),
			expectCode: http.StatusTeapot,
		},
		{
			name:       "No-User-In-Session",
			storer:     storerOf(alice, nil),
			expectCode: http.StatusTeapot,
		},
		{
			name:       "User-Found",
			username:   "alice",
			storer:     storerOf(alice, nil),
			expectCode: http.StatusTeapot,
			expectUser: alice,
			expectName: true,
		},
		{
			name:       "User-Vanished",
			username:   "ghost",
			storer:     storerOf(wanderlust.User{}, fmt.Errorf("%w: ghost", wanderlust.ErrNotExist)),
			expectCode: http.StatusTeapot,
			expectName: true,
		},
		{
			name:       "No-Access",
			username:   "alice",
			storer:     storerOf(wanderlust.User{Username: "alice"}, nil),
			expectCode: http.StatusTeapot,
		},
		{
			name:       "Store-Down",
			username:   "alice",
			storer:     storerOf(wanderlust.User{}, errors.New("connection refused")),
			expectCode: http.StatusTeapot,
			expectName: true,
		},
		{
			name:       "Store-Down-Json",
			username:   "alice",
			storer:     storerOf(wanderlust.User{}, errors.New("connection refused")),
			accept:     "application/json",
			expectCode: http.StatusTeapot,
			expectName: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com/home", nil)
			if tc.accept != "" {
				r.Header.Set("Accept", tc.accept)
			}

			var s session.Session
			if !tc.noSession {
				s, _ = session.NewStub(tc.username).GetSession(r)
				r = r.WithContext(context.WithValue(r.Context(), wanderlust.SessionKey, s))
			}

			var actualUser any
			h := http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				actualUser = rx.Context().Value(wanderlust.CurrentUserKey)
				wx.WriteHeader(http.StatusTeapot)
			})

			// Act
			middleware.CurrentUser(logger.NewDiscardLogger(), tc.storer)(h).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expectCode, w.Code)
			require.Equal(t, tc.expectUser, actualUser)
			require.NotContains(t, w.Body.String(), "connection refused")

			if tc.noSession {
				return
			}

			_, err := s.Username()
			require.Equal(t, tc.expectName, err == nil)
		})
	}
}

func TestRequireAuthed(t *testing.T) {
	tcs := []struct {
		name       string
		method     string
		target     string
		accept     string
		user       any
		expectCode int
		expectLoc  string
	}{
		{"Authed", http.MethodGet, "/home", "", wanderlust.User{ID: 1, Username: "alice"}, http.StatusTeapot, ""},
		{"Get", http.MethodGet, "/wanttogo", "", nil, http.StatusTemporaryRedirect, "/login?next=%2Fwanttogo"},
		{"Get-Query", http.MethodGet, "/paris?msg=hi", "", nil, http.StatusTemporaryRedirect, "/login?next=%2Fparis%3Fmsg%3Dhi"},
		{"Post", http.MethodPost, "/wanttogo/add", "", nil, http.StatusSeeOther, "/login"},
		{"Json", http.MethodGet, "/home", "text/html, application/json;q=0.9", nil, http.StatusUnauthorized, ""},
		{"Not-A-User", http.MethodGet, "/home", "", "alice", http.StatusTemporaryRedirect, "/login?next=%2Fhome"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)
			if tc.accept != "" {
				r.Header.Set("Accept", tc.accept)
			}
			if tc.user != nil {
				r = r.WithContext(context.WithValue(r.Context(), wanderlust.CurrentUserKey, tc.user))
			}

			// Act
			middleware.RequireAuthed("/login")(teapotHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expectCode, w.Code)
			require.Equal(t, tc.expectLoc, w.Header().Get("Location"))
		})
	}
}

func TestRequireSession(t *testing.T) {
	tcs := []struct {
		name       string
		method     string
		username   string
		noSession  bool
		user       any
		accept     string
		expectCode int
		expectLoc  string
	}{
		{"Authed", http.MethodGet, "", true, wanderlust.User{ID: 1, Username: "alice"}, "", http.StatusTeapot, ""},
		{"Username-Only", http.MethodGet, "ghost", false, nil, "", http.StatusTeapot, ""},
		{"Empty-Session", http.MethodGet, "", false, nil, "", http.StatusTemporaryRedirect, "/login?next=%2Fwanttogo"},
		{"No-Session", http.MethodGet, "", true, nil, "", http.StatusTemporaryRedirect, "/login?next=%2Fwanttogo"},
		{"Post", http.MethodPost, "", false, nil, "", http.StatusSeeOther, "/login"},
		{"Json", http.MethodGet, "", false, nil, "application/json", http.StatusUnauthorized, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, "/wanttogo", nil)
			if tc.accept != "" {
				r.Header.Set("Accept", tc.accept)
			}
			if !tc.noSession {
				s, _ := session.NewStub(tc.username).GetSession(r)
				r = r.WithContext(context.WithValue(r.Context(), wanderlust.SessionKey, s))
			}
			if tc.user != nil {
				r = r.WithContext(context.WithValue(r.Context(), wanderlust.CurrentUserKey, tc.user))
			}

			// Act
			middleware.RequireSession("/login")(teapotHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expectCode, w.Code)
			require.Equal(t, tc.expectLoc, w.Header().Get("Location"))
		})
	}
}

func storerOf(u wanderlust.User, err error) middleware.UserStorer {
	return func(_ context.Context, _ string) (middleware.User, error) {
		if err != nil {
			return nil, err
		}
		return u, nil
	}
}
