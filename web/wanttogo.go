package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/resp"
	"github.com/xy-planning-network/wanderlust/logger"
	"github.com/xy-planning-network/wanderlust/wanttogo"
)

type listItem struct {
	Name string
	Path string
}

type wantToGoPage struct {
	Username string
	Items    []listItem
}

// wantToGoList lists the destinations the current User saved.
func (h *Handler) wantToGoList(w http.ResponseWriter, r *http.Request) {
	username, err := h.listOwner(r)
	if err != nil {
		h.Err(w, r, err)
		return
	}

	names, err := h.wantToGo.Get(r.Context(), username)
	switch {
	case errors.Is(err, wanderlust.ErrUserNotFound):
		h.Err(w, r, err, resp.Code(http.StatusNotFound), resp.Msg(msgUserNotFound))
		return
	case err != nil:
		h.Err(w, r, err, resp.Msg(msgListErr))
		return
	}

	page := wantToGoPage{Username: username, Items: make([]listItem, 0, len(names))}
	for _, name := range names {
		item := listItem{Name: name}
		if d, ok := h.catalog.Lookup(name); ok {
			item.Path = d.Path()
		}
		page.Items = append(page.Items, item)
	}

	h.html(w, r, resp.Authed(), resp.Tmpls(wantToGoTmpl), resp.Data(page))
}

// listOwner names whose list a request reads:
// the current User or, failing that, whoever the session was signed in as.
func (h *Handler) listOwner(r *http.Request) (string, error) {
	if u, err := h.currentUser(r); err == nil {
		return u.Username, nil
	}

	s, err := h.Session(r.Context())
	if err != nil {
		return "", err
	}

	return s.Username()
}

// addToWantToGo puts the posted destination on the current User's list,
// returning to the page named by the signed return_to token with the outcome in the query.
//
// A missing destination returns without a message.
func (h *Handler) addToWantToGo(w http.ResponseWriter, r *http.Request) {
	var form addForm
	if err := h.parser.ParseForm(r, &form); err != nil {
		h.logInvalid(r, "invalid want-to-go form", err)
	}

	back := h.returnPath(form)
	opts := []resp.Fn{resp.Url(back), resp.Code(http.StatusSeeOther)}

	if strings.TrimSpace(form.Destination) == "" {
		h.redirect(w, r, opts...)
		return
	}

	u, err := h.currentUser(r)
	if err != nil {
		h.logError(r, err, nil)
		h.redirect(w, r, append(opts, resp.Param("err", msgAddErr))...)
		return
	}

	outcome, err := h.wantToGo.Add(r.Context(), u.Username, form.Destination)
	switch {
	case errors.Is(err, wanderlust.ErrInvalidInput):
		h.metrics.RecordWantToGoAdd("invalid")
		h.logger.Warn("cannot add to want-to-go list", &logger.LogContext{Error: err, Request: r, User: u})
		opts = append(opts, resp.Param("err", msgAddErr))
	case err != nil:
		h.metrics.RecordWantToGoAdd("error")
		h.logError(r, err, map[string]any{"destination": form.Destination})
		opts = append(opts, resp.Param("err", msgAddErr))
	case outcome == wanttogo.AlreadyPresent:
		h.metrics.RecordWantToGoAdd(outcome.String())
		opts = append(opts, resp.Param("err", msgAlreadyPresent))
	default:
		h.metrics.RecordWantToGoAdd(outcome.String())
		opts = append(opts, resp.Param("msg", msgAdded))
	}

	h.redirect(w, r, opts...)
}

// returnPath picks where an add returns to:
// the verified return_to token, else the destination's own page, else home.
func (h *Handler) returnPath(form addForm) string {
	if p, err := h.returns.Verify(form.ReturnTo); err == nil {
		return p
	}

	if d, ok := h.catalog.Lookup(strings.TrimSpace(form.Destination)); ok {
		return d.Path()
	}

	return "/home"
}
