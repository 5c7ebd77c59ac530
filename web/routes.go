package web

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/wanderlust/http/middleware"
	"github.com/xy-planning-network/wanderlust/http/resp"
	"github.com/xy-planning-network/wanderlust/http/router"
)

// Register lays out every wanderlust route on rt.
//
// Call rt.OnEveryRequest before Register so the stack applies to these routes.
func (h *Handler) Register(rt *router.Router) {
	rt.UnauthedRoutes([]router.Route{
		{Path: "/", Method: http.MethodGet, Handler: h.root},
		{Path: LoginPath, Method: http.MethodGet, Handler: h.loginPage},
		{Path: LoginPath, Method: http.MethodPost, Handler: h.login},
		{Path: "/logout", Method: http.MethodGet, Handler: h.logout},
		{Path: "/register", Method: http.MethodPost, Handler: h.register},
		{Path: "/registration", Method: http.MethodGet, Handler: h.registrationPage},
	})

	// NOTE: a session whose User has since been removed still reaches the list,
	// which answers for the missing User itself.
	rt.Handle(router.Route{
		Path:        "/wanttogo",
		Method:      http.MethodGet,
		Handler:     h.wantToGoList,
		Middlewares: []middleware.Adapter{middleware.RequireSession(LoginPath)},
	})

	authed := []router.Route{
		{Path: "/home", Method: http.MethodGet, Handler: h.home},
		{Path: "/search", Method: http.MethodPost, Handler: h.search},
		{Path: "/wanttogo/add", Method: http.MethodPost, Handler: h.addToWantToGo},
	}

	for _, c := range h.catalog.Categories() {
		authed = append(authed, router.Route{Path: c.Path(), Method: http.MethodGet, Handler: h.category(c)})
	}

	for _, d := range h.catalog {
		authed = append(authed, router.Route{Path: d.Path(), Method: http.MethodGet, Handler: h.destination(d)})
	}

	rt.AuthedRoutes(LoginPath, authed)
	rt.HandleNotFound(h.notFound)
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	h.redirect(w, r, resp.Url(LoginPath))
}

// notFound answers 404, with a page for browsers.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if acceptsHtml(r) {
		h.html(w, r, resp.Unauthed(), resp.Tmpls(notFoundTmpl), resp.Code(http.StatusNotFound))
		return
	}

	h.Err(w, r, nil, resp.Code(http.StatusNotFound))
}

func acceptsHtml(r *http.Request) bool {
	for _, v := range r.Header.Values("Accept") {
		for _, mt := range strings.Split(v, ",") {
			mt, _, _ = strings.Cut(mt, ";")
			if strings.EqualFold(strings.TrimSpace(mt), "text/html") {
				return true
			}
		}
	}

	return false
}
