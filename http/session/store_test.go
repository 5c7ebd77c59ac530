package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	gorilla "github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/session"
)

const (
	testAuthKey    = "6d792d617574682d6b6579"
	testEncryptKey = "000102030405060708090a0b0c0d0e0f"
)

func newTestService(t *testing.T) session.Service {
	t.Helper()
	svc, err := session.NewStoreService(session.Config{
		Env:         wanderlust.Testing,
		SessionName: "wanderlust",
		AuthKey:     testAuthKey,
		EncryptKey:  testEncryptKey,
	})
	require.Nil(t, err)
	return svc
}

func TestNewStoreService(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  session.Config
	}{
		{"bad-env", session.Config{Env: "moon", SessionName: "w", AuthKey: testAuthKey, EncryptKey: testEncryptKey}},
		{"no-name", session.Config{Env: wanderlust.Testing, AuthKey: testAuthKey, EncryptKey: testEncryptKey}},
		{"auth-not-hex", session.Config{Env: wanderlust.Testing, SessionName: "w", AuthKey: "zz", EncryptKey: testEncryptKey}},
		{"auth-empty", session.Config{Env: wanderlust.Testing, SessionName: "w", EncryptKey: testEncryptKey}},
		{"encrypt-short", session.Config{Env: wanderlust.Testing, SessionName: "w", AuthKey: testAuthKey, EncryptKey: "abcd"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			svc, err := session.NewStoreService(tc.cfg)

			// Assert
			require.ErrorIs(t, err, wanderlust.ErrBadConfig)
			require.Zero(t, svc)
		})
	}
}

func TestSessionRoundTrip(t *testing.T) {
	// Arrange
	svc := newTestService(t)
	r := httptest.NewRequest(http.MethodPost, "https://example.com/login", nil)
	w := httptest.NewRecorder()

	s, err := svc.GetSession(r)
	require.Nil(t, err)

	_, err = s.Username()
	require.ErrorIs(t, err, session.ErrNoUser)

	// Act
	require.Nil(t, s.RegisterUser(w, r, "alice"))
	require.Nil(t, s.SetFlash(w, r, session.Flash{Class: session.FlashError, Msg: "hi"}))

	// Assert
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	next := httptest.NewRequest(http.MethodGet, "https://example.com/home", nil)
	next.AddCookie(cookies[len(cookies)-1])

	s, err = svc.GetSession(next)
	require.Nil(t, err)

	username, err := s.Username()
	require.Nil(t, err)
	require.Equal(t, "alice", username)
	require.Equal(t, []session.Flash{{Class: session.FlashError, Msg: "hi"}}, s.Flashes(httptest.NewRecorder(), next))
}

func TestSessionDelete(t *testing.T) {
	// Arrange
	svc := newTestService(t)
	r := httptest.NewRequest(http.MethodGet, "https://example.com/logout", nil)
	w := httptest.NewRecorder()

	s, err := svc.GetSession(r)
	require.Nil(t, err)
	require.Nil(t, s.RegisterUser(w, r, "alice"))

	// Act
	w = httptest.NewRecorder()
	require.Nil(t, s.Delete(w, r))

	// Assert
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.True(t, cookies[0].MaxAge < 0)

	_, err = s.Username()
	require.ErrorIs(t, err, session.ErrNoUser)
}

func TestStub(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	s, err := session.NewStub("alice").GetSession(r)
	require.Nil(t, err)
	u, err := s.Username()
	require.Nil(t, err)
	require.Equal(t, "alice", u)

	s, err = session.NewStub("").GetSession(r)
	require.Nil(t, err)
	_, err = s.Username()
	require.ErrorIs(t, err, session.ErrNoUser)
}

func TestUsernameNotValid(t *testing.T) {
	tcs := []struct {
		name string
		val  any
	}{
		{"Number", 42},
		{"Empty", ""},
		{"Bytes", []byte("alice")},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			g := gorilla.NewSession(gorilla.NewCookieStore([]byte(testAuthKey)), "wanderlust")
			g.Values["wanderlust-session-gorilla-user"] = tc.val
			s := session.NewSession(g)

			// Act
			username, err := s.Username()

			// Assert
			require.ErrorIs(t, err, session.ErrNotValid)
			require.ErrorIs(t, err, wanderlust.ErrNotValid)
			require.Empty(t, username)
		})
	}
}
