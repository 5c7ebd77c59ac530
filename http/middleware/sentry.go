package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/wanderlust"
)

// ReportPanic recovers panics raised by handlers further down the chain,
// reporting them to Sentry and responding with 500.
//
// In development, ReportPanic does nothing.
func ReportPanic(env wanderlust.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: false,
	})

	return func(handler http.Handler) http.Handler {
		return sh.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					panic(rec)
				}
			}()

			handler.ServeHTTP(w, r)
		}))
	}
}
