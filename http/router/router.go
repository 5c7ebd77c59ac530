package router

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/middleware"
)

const assetsPath = "/assets/"

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests for resources to their handlers.
type Router struct {
	Env           wanderlust.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment,
// serving the files in assets under /assets/.
//
// If assets is nil, no assets are served.
func New(env wanderlust.Environment, assets fs.FS, logReq middleware.Adapter) *Router {
	r := mux.NewRouter()
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	if assets != nil {
		// NOTE: direct reqs for assets to the embedded files
		r.PathPrefix(assetsPath).Handler(middleware.Chain(
			http.StripPrefix(assetsPath, http.FileServer(http.FS(assets))),
			cacheControlMiddleware(),
			logReq,
		)).Methods(http.MethodGet, http.MethodHead)
	}

	return &Router{logReq: logReq, Env: env, r: r}
}

// AuthedRoutes registers the set of Routes as those requiring authentication.
// AuthedRoutes applies the given middlewares before performing that check,
// using middleware.RequireAuthed.
//
// middleware.RequireAuthed requires loginUrl to redirect unauthenticated requests.
func (r *Router) AuthedRoutes(loginUrl string, routes []Route, middlewares ...middleware.Adapter) {
	mws := append(append([]middleware.Adapter{}, middlewares...), middleware.RequireAuthed(loginUrl))
	r.HandleRoutes(routes, mws...)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
//
// The middlewares applied to every request are applied to handler as well,
// followed by the request logger.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	mws := append(append([]middleware.Adapter{}, r.everyReqStack...), r.logReq)
	r.r.NotFoundHandler = middleware.Chain(middleware.ReportPanic(r.Env)(handler), mws...)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
//
// The request logger sits between the every-request stack and middlewares,
// so it sees the request ID and current user but also logs requests turned away.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares)+1)
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, r.logReq)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		handler := middleware.Chain(middleware.ReportPanic(r.Env)(route.Handler), mws...)
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
//
// Call OnEveryRequest before registering routes.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// UnauthedRoutes registers the set of Routes as those open to any visitor,
// applying the given middlewares.
func (r *Router) UnauthedRoutes(routes []Route, middlewares ...middleware.Adapter) {
	r.HandleRoutes(routes, middlewares...)
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
			handler.ServeHTTP(w, r)
		})
	}
}
