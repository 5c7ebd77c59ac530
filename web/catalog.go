package web

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/resp"
	"github.com/xy-planning-network/wanderlust/logger"
)

type homePage struct {
	Categories []wanderlust.Category
}

type categoryPage struct {
	Category     wanderlust.Category
	Destinations []wanderlust.Destination
}

type destinationPage struct {
	Destination wanderlust.Destination
	Err         string
	InList      bool
	Msg         string
	ReturnTo    string
}

type searchPage struct {
	Term    string
	Results []wanderlust.Destination
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.html(w, r, resp.Authed(), resp.Tmpls(homeTmpl), resp.Data(homePage{Categories: h.catalog.Categories()}))
}

func (h *Handler) category(c wanderlust.Category) http.HandlerFunc {
	page := categoryPage{Category: c, Destinations: h.catalog.ByCategory(c)}
	return func(w http.ResponseWriter, r *http.Request) {
		h.html(w, r, resp.Authed(), resp.Tmpls(categoryTmpl), resp.Data(page))
	}
}

// destination renders d's page along with the form adding it to the want-to-go list.
// The form carries a signed token naming this page so the add returns here.
func (h *Handler) destination(d wanderlust.Destination) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := h.flashQuery(r)
		page := destinationPage{Destination: d, Err: q.Err, Msg: q.Msg}

		token, err := h.returns.Sign(d.Path())
		if err != nil {
			h.logger.Warn("cannot sign return path", &logger.LogContext{Error: err, Request: r})
		}
		page.ReturnTo = token

		if u, err := h.currentUser(r); err == nil {
			page.InList = u.WantsToGo(d.Name)
		}

		h.html(w, r, resp.Authed(), resp.Tmpls(destinationTmpl), resp.Data(page))
	}
}

// search matches the posted term against the catalog.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	var form searchForm
	if err := h.parser.ParseForm(r, &form); err != nil {
		h.logInvalid(r, "invalid search form", err)
		h.html(w, r, resp.Authed(), resp.Tmpls(searchTmpl), resp.Data(searchPage{Results: []wanderlust.Destination{}}))
		return
	}

	term := strings.ToLower(form.Search)
	h.metrics.RecordSearch()
	h.html(w, r, resp.Authed(), resp.Tmpls(searchTmpl), resp.Data(searchPage{Term: term, Results: h.catalog.Search(term)}))
}
