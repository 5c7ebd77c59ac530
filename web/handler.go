package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/middleware"
	"github.com/xy-planning-network/wanderlust/http/req"
	"github.com/xy-planning-network/wanderlust/http/resp"
	"github.com/xy-planning-network/wanderlust/logger"
	"github.com/xy-planning-network/wanderlust/metrics"
	"github.com/xy-planning-network/wanderlust/wanttogo"
)

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// Messages shown to the client.
const (
	msgAdded              = "Successfully added to your list."
	msgAddErr             = "An error occurred."
	msgAlreadyPresent     = "Destination already in your list."
	msgInvalidCredentials = "Invalid username or password."
	msgListErr            = "Error fetching want-to-go list"
	msgLoginErr           = "An error occurred during login."
	msgRegistered         = "Registration successful"
	msgRegistrationErr    = "An error occurred during registration."
	msgUserNotFound       = "User not found"
)

// An Authenticator verifies and registers credentials.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (wanderlust.User, error)
	Register(ctx context.Context, username, password string) error
}

// A ReturnPathSigner signs the page a form returns to and verifies it on submission.
type ReturnPathSigner interface {
	Sign(path string) (string, error)
	Verify(token string) (string, error)
}

// A WantToGoer reads and grows a User's want-to-go list.
type WantToGoer interface {
	Get(ctx context.Context, username string) ([]string, error)
	Add(ctx context.Context, username, destination string) (wanttogo.Outcome, error)
}

// Config holds the collaborators a *Handler cannot work without.
type Config struct {
	Responder   *resp.Responder
	Auth        Authenticator
	ReturnPaths ReturnPathSigner
	WantToGo    WantToGoer
}

// Handler serves every wanderlust route.
type Handler struct {
	*resp.Responder

	auth     Authenticator
	catalog  wanderlust.Catalog
	logger   logger.Logger
	metrics  metrics.Recorder
	parser   *req.Parser
	returns  ReturnPathSigner
	wantToGo WantToGoer
}

// A HandlerOptFn configures a *Handler when constructing a new one.
type HandlerOptFn func(*Handler)

// WithCatalog sets the Destinations served.
// Without it, wanderlust.DefaultCatalog is served.
func WithCatalog(c wanderlust.Catalog) HandlerOptFn {
	return func(h *Handler) {
		h.catalog = c
	}
}

// WithLogger sets the logger.Logger failures are reported through.
func WithLogger(l logger.Logger) HandlerOptFn {
	return func(h *Handler) {
		h.logger = l
	}
}

// WithMetrics records domain events with rec.
func WithMetrics(rec metrics.Recorder) HandlerOptFn {
	return func(h *Handler) {
		if rec != nil {
			h.metrics = rec
		}
	}
}

// New constructs a *Handler from cfg.
// Every field of cfg is required; a missing one returns an error wrapping wanderlust.ErrBadConfig.
func New(cfg Config, opts ...HandlerOptFn) (*Handler, error) {
	switch {
	case cfg.Responder == nil:
		return nil, fmt.Errorf("%w: nil Responder", wanderlust.ErrBadConfig)
	case cfg.Auth == nil:
		return nil, fmt.Errorf("%w: nil Authenticator", wanderlust.ErrBadConfig)
	case cfg.ReturnPaths == nil:
		return nil, fmt.Errorf("%w: nil ReturnPathSigner", wanderlust.ErrBadConfig)
	case cfg.WantToGo == nil:
		return nil, fmt.Errorf("%w: nil WantToGoer", wanderlust.ErrBadConfig)
	}

	h := &Handler{
		Responder: cfg.Responder,
		auth:      cfg.Auth,
		catalog:   wanderlust.DefaultCatalog,
		metrics:   metrics.Discard{},
		parser:    req.NewParser(),
		returns:   cfg.ReturnPaths,
		wantToGo:  cfg.WantToGo,
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.logger == nil {
		h.logger = logger.NewLogger()
	}

	return h, nil
}

// currentUser retrieves the wanderlust.User middleware.CurrentUser read for this request.
func (h *Handler) currentUser(r *http.Request) (wanderlust.User, error) {
	val, err := h.CurrentUser(r.Context())
	if err != nil {
		return wanderlust.User{}, err
	}

	u, ok := val.(wanderlust.User)
	if !ok {
		return wanderlust.User{}, fmt.Errorf("%w: current user is %T", wanderlust.ErrNotValid, val)
	}

	return u, nil
}

// html renders with h.Html.
// Html has already logged and written an error page when it fails, so nothing is left to do.
func (h *Handler) html(w http.ResponseWriter, r *http.Request, opts ...resp.Fn) {
	_ = h.Html(w, r, opts...)
}

// redirect responds with h.Redirect, falling back to a plain error.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, opts ...resp.Fn) {
	if err := h.Redirect(w, r, opts...); err != nil {
		h.Err(w, r, err)
	}
}

// flashQuery reads the messages a redirect carried in the query string.
// Values failing validation are dropped.
func (h *Handler) flashQuery(r *http.Request) flashQuery {
	var q flashQuery
	if err := h.parser.ParseQueryParams(r.URL.Query(), &q); err != nil {
		h.logInvalid(r, "dropping query", err)
		return flashQuery{}
	}

	return q
}

// logInvalid notes a request whose input failed validation, naming the failing fields.
func (h *Handler) logInvalid(r *http.Request, msg string, err error) {
	lc := &logger.LogContext{Error: err, Request: r}

	var verrs req.ValidationErrors
	if errors.As(err, &verrs) {
		lc.Data = map[string]any{"fields": verrs.Fields()}
	}

	h.logger.Debug(msg, lc)
}

func (h *Handler) logError(r *http.Request, err error, data map[string]any) {
	lc := &logger.LogContext{Data: data, Error: err, Request: r}
	if u, uerr := h.currentUser(r); uerr == nil {
		lc.User = u
	}

	h.logger.Error(err.Error(), lc)
}

// A UserFinder reads a User by their username.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (wanderlust.User, error)
}

// UserStorer adapts f for middleware.CurrentUser.
func UserStorer(f UserFinder) middleware.UserStorer {
	return func(ctx context.Context, username string) (middleware.User, error) {
		u, err := f.FindByUsername(ctx, username)
		if err != nil {
			return nil, err
		}

		return u, nil
	}
}
