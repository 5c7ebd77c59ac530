package web

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/resp"
	"github.com/xy-planning-network/wanderlust/http/session"
	"github.com/xy-planning-network/wanderlust/metrics"
)

// formPage is the data the login and registration templates render.
type formPage struct {
	Error string
	Msg   string
	Next  string
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, tmpl string, page formPage, opts ...resp.Fn) {
	h.html(w, r, append([]resp.Fn{resp.Unauthed(), resp.Tmpls(tmpl), resp.Data(page)}, opts...)...)
}

// flashErr shows msg above the next page rendered.
func flashErr(msg string) resp.Fn {
	return resp.Flash(session.Flash{Class: session.FlashError, Msg: msg})
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	q := h.flashQuery(r)
	h.renderForm(w, r, loginTmpl, formPage{Msg: q.Msg, Next: q.Next})
}

// login establishes a session for the User whose credentials were posted.
// Unknown usernames and wrong passwords are indistinguishable to the client.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var form credentialsForm
	if err := h.parser.ParseForm(r, &form); err != nil {
		h.logInvalid(r, "invalid login form", err)
		h.metrics.RecordLogin(metrics.ResultFailure)
		h.renderForm(w, r, loginTmpl, formPage{Error: msgInvalidCredentials}, resp.Code(http.StatusUnprocessableEntity))
		return
	}

	page := formPage{Error: msgInvalidCredentials, Next: form.Next}
	u, err := h.auth.Login(r.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, wanderlust.ErrInvalidCredentials):
		h.metrics.RecordLogin(metrics.ResultFailure)
		h.renderForm(w, r, loginTmpl, page, resp.Code(http.StatusUnprocessableEntity))
		return
	case err != nil:
		h.metrics.RecordLogin(metrics.ResultError)
		h.renderForm(w, r, loginTmpl, formPage{Next: form.Next}, resp.Err(err), flashErr(msgLoginErr))
		return
	}

	s, err := h.Session(r.Context())
	if err == nil {
		err = s.RegisterUser(w, r, u.Username)
	}

	if err != nil {
		h.metrics.RecordLogin(metrics.ResultError)
		h.renderForm(w, r, loginTmpl, formPage{Next: form.Next}, resp.GenericErr(err))
		return
	}

	h.metrics.RecordLogin(metrics.ResultSuccess)

	next := u.HomePath()
	if form.Next != "" {
		next = form.Next
	}

	h.redirect(w, r, resp.Url(next))
}

func (h *Handler) registrationPage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, registrationTmpl, formPage{})
}

// register creates a User from the posted credentials.
// Missing values and taken usernames both report the generic credentials message.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var form credentialsForm
	if err := h.parser.ParseForm(r, &form); err != nil {
		h.logInvalid(r, "invalid registration form", err)
		h.metrics.RecordRegistration(metrics.ResultFailure)
		h.renderForm(w, r, registrationTmpl, formPage{Error: msgInvalidCredentials}, resp.Code(http.StatusUnprocessableEntity))
		return
	}

	err := h.auth.Register(r.Context(), form.Username, form.Password)
	switch {
	case err == nil:
		h.metrics.RecordRegistration(metrics.ResultSuccess)
		h.redirect(w, r, resp.Url(LoginPath), resp.Param("msg", msgRegistered))
	case errors.Is(err, wanderlust.ErrInvalidInput), errors.Is(err, wanderlust.ErrUsernameTaken):
		h.metrics.RecordRegistration(metrics.ResultFailure)
		h.renderForm(w, r, registrationTmpl, formPage{Error: msgInvalidCredentials}, resp.Code(http.StatusUnprocessableEntity))
	default:
		h.metrics.RecordRegistration(metrics.ResultError)
		h.renderForm(w, r, registrationTmpl, formPage{}, resp.Err(err), flashErr(msgRegistrationErr))
	}
}

// logout destroys the session, if any, and returns to the login page.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if s, err := h.Session(r.Context()); err == nil {
		if err := s.Delete(w, r); err != nil {
			h.logError(r, err, nil)
		}
	}

	h.redirect(w, r, resp.Url(LoginPath))
}
