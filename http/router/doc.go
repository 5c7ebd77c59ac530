/*
Package router wraps [mux.Router] with conveniences for registering routes.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

Many routes share identical middleware stacks,
and small errors can lead to registering a route incorrectly,
unintentionally exposing a resource.
Thus, a [Router] provides conveniences for making a single call to register many logically associated Routes:
UnauthedRoutes for pages any visitor may see, AuthedRoutes for those behind login.
*/
package router
