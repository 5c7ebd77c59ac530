/*
Package web is wanderlust's route dispatcher.

A *Handler binds the authenticator, the want-to-go list manager and the destination catalog
to HTTP routes, rendering the HTML templates embedded alongside it.
Register lays the routes out on a *router.Router:
open routes for logging in and registering,
and routes guarded by middleware.RequireAuthed for everything else.

Every failure stops here: a handler either re-renders a form with a message,
redirects with an "err" query param, or writes an HTTP error status.
*/
package web
