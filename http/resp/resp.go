package resp

import (
	"net/http"

	"github.com/xy-planning-network/wanderlust/logger"
)

// newLogContext gathers what is known about a response into a *logger.LogContext,
// returning nil when nothing is known.
func newLogContext(r *http.Request, err error, data any, user any) *logger.LogContext {
	lc := &logger.LogContext{Request: r, Error: err}
	if m, ok := data.(map[string]any); ok {
		lc.Data = m
	}

	if lu, ok := user.(logger.LogUser); ok {
		lc.User = lu
	}

	if lc.Request == nil && lc.Error == nil && lc.Data == nil && lc.User == nil {
		return nil
	}

	return lc
}

// populateUser sets the *Response's user to whoever is signed in,
// returning ErrNoUser if nobody is.
func populateUser(d Responder, r *Response) error {
	if r.user != nil {
		return nil
	}

	u, err := d.CurrentUser(r.r.Context())
	if err != nil || u == nil {
		return ErrNoUser
	}

	return User(u)(d, r)
}
