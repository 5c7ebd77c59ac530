package web

import (
	"embed"
	"io/fs"
)

// Templates rendered by the *Handler, named by their path in Templates().
const (
	tmplDir = "tmpl/"

	AuthedLayout   = tmplDir + "layout/authed.tmpl"
	UnauthedLayout = tmplDir + "layout/unauthed.tmpl"
	ErrorTmpl      = tmplDir + "error.tmpl"

	categoryTmpl     = tmplDir + "category.tmpl"
	destinationTmpl  = tmplDir + "destination.tmpl"
	homeTmpl         = tmplDir + "home.tmpl"
	loginTmpl        = tmplDir + "login.tmpl"
	notFoundTmpl     = tmplDir + "not_found.tmpl"
	registrationTmpl = tmplDir + "registration.tmpl"
	searchTmpl       = tmplDir + "search_results.tmpl"
	wantToGoTmpl     = tmplDir + "wanttogo.tmpl"
)

//go:embed tmpl
var templates embed.FS

//go:embed assets
var assets embed.FS

// Templates returns the filesystem holding every HTML template web renders.
func Templates() fs.FS { return templates }

// Assets returns the filesystem of static files served under /assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}

	return sub
}
