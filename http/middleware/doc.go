/*
The middleware package defines what a middleware is and a set of basic middlewares.

The available middlewares are:
  - CORS
  - CurrentUser
  - ForceHTTPS
  - InjectIPAddress
  - InjectSession
  - LogRequest
  - ReportPanic
  - RequestID
  - RequireAuthed

A typical chain, applied to every request, looks like:

	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.InjectSession(sessionStore),
		middleware.CurrentUser(log, userStore),
	}

RequireAuthed then guards the routes requiring a user.
*/
package middleware
