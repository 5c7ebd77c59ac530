package middleware

import (
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/logger"
)

// LogRequest logs every request once it has been served using the enclosed implementation of logger.Logger.
//
// The message holds the originating IP address, method, and requested URL.
// The response status, size, request ID, and duration are logged as data.
//
// LogRequest scrubs the values for the following query keys:
// - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return handlers.CustomLoggingHandler(io.Discard, h, func(_ io.Writer, p handlers.LogFormatterParams) {
			uri := p.URL.Path
			q := p.URL.Query()
			if q.Has("password") {
				q.Set("password", wanderlust.LogMaskVal)
			}

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			msg := p.Request.Method + " " + uri
			if ip, ok := p.Request.Context().Value(wanderlust.IpAddrKey).(string); ok && ip != "" {
				msg = ip + " " + msg
			}

			data := map[string]any{
				"duration": time.Since(p.TimeStamp).String(),
				"size":     p.Size,
				"status":   p.StatusCode,
			}
			if id, ok := p.Request.Context().Value(wanderlust.RequestIDKey).(string); ok {
				data["requestID"] = id
			}

			ls.Info(msg, &logger.LogContext{Data: data})
		})
	}
}
