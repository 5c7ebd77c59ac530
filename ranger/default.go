package ranger

import (
	"context"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/middleware"
	"github.com/xy-planning-network/wanderlust/http/resp"
	"github.com/xy-planning-network/wanderlust/http/router"
	"github.com/xy-planning-network/wanderlust/http/session"
	"github.com/xy-planning-network/wanderlust/http/template"
	"github.com/xy-planning-network/wanderlust/logger"
	"github.com/xy-planning-network/wanderlust/metrics"
	"github.com/xy-planning-network/wanderlust/postgres"
	"github.com/xy-planning-network/wanderlust/users"
	"github.com/xy-planning-network/wanderlust/web"
)

// defaultLogger constructs the logger.Logger for the app,
// forwarding to Sentry when SENTRY_DSN is set.
func defaultLogger(cfg Config) logger.Logger {
	return logger.NewLogger(
		logger.WithEnv(cfg.Env.String()),
		logger.WithLevel(cfg.LogLevel),
		logger.WithSentryDSN(cfg.SentryDSN),
	)
}

// defaultDB connects to PostgreSQL and brings the users table up to date.
func defaultDB(cfg Config) (*postgres.DB, error) {
	return postgres.Connect(cfg.DB, users.Migrations, cfg.Env)
}

// defaultParser constructs a *template.Parser over the embedded templates.
//
// defaultParser makes available these functions in an HTML template:
//
//   - "env"
//   - "isDevelopment"
//   - "nonce"
func defaultParser(env wanderlust.Environment, files ...fs.FS) *template.Parser {
	p := template.NewParser(append(files, web.Templates()))
	p = p.AddFn(template.Env(env))
	p = p.AddFn("isDevelopment", env.IsDevelopment)
	p = p.AddFn(template.Nonce())

	return p
}

// defaultResponder configures the *resp.Responder used by every handler.
func defaultResponder(l logger.Logger, cfg Config, p *template.Parser) *resp.Responder {
	return resp.NewResponder(
		resp.WithAuthTemplate(web.AuthedLayout),
		resp.WithContactErrMsg(session.DefaultErrMsg),
		resp.WithErrTemplate(web.ErrorTmpl),
		resp.WithLogger(l),
		resp.WithParser(p),
		resp.WithRootUrl(cfg.BaseURL.String()),
		resp.WithUnauthTemplate(web.UnauthedLayout),
	)
}

// defaultSessionStore constructs the session.SessionStorer,
// backed by Redis when SESSION_REDIS_URL is set and by cookies otherwise.
func defaultSessionStore(cfg Config) (session.SessionStorer, error) {
	scfg := session.Config{
		AuthKey:     cfg.SessionAuthKey,
		EncryptKey:  cfg.SessionEncryptKey,
		Env:         cfg.Env,
		SessionName: cfg.SessionName,
	}

	args := []session.ServiceOpt{session.WithMaxAge(int(cfg.SessionMaxAge / time.Second))}
	if cfg.SessionRedisAddr != "" {
		args = append(args, session.WithRedis(cfg.SessionRedisAddr, cfg.SessionRedisPassword))
	} else {
		args = append(args, session.WithCookie())
	}

	return session.NewStoreService(scfg, args...)
}

// defaultRegistry constructs the registry /metrics exposes,
// including Go runtime and process metrics.
func defaultRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// defaultMiddlewares lists the middleware.Adapters applied to every request, outermost first.
func defaultMiddlewares(
	l logger.Logger,
	cfg Config,
	collector *metrics.Collector,
	sessions session.SessionStorer,
	store users.Storer,
) []middleware.Adapter {
	return []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.ForceHTTPS(cfg.Env),
		middleware.CORS(origin(cfg)),
		collector.CountRequests,
		middleware.InjectSession(sessions),
		middleware.CurrentUser(l, web.UserStorer(store)),
	}
}

// defaultRouter constructs the *router.Router serving the app.
func defaultRouter(l logger.Logger, cfg Config, mws []middleware.Adapter) *router.Router {
	route := router.New(cfg.Env, web.Assets(), middleware.LogRequest(l))
	route.OnEveryRequest(mws...)

	return route
}

// defaultServer constructs a default *http.Server.
func defaultServer(ctx context.Context, cfg Config) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Port,
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// defaultMetricsServer constructs the *http.Server exposing h at cfg.MetricsAddr,
// apart from the app so scrapes need not be public.
func defaultMetricsServer(ctx context.Context, cfg Config, h http.Handler) *http.Server {
	srv := defaultServer(ctx, cfg)
	srv.Addr = cfg.MetricsAddr
	srv.Handler = h

	return srv
}

func origin(cfg Config) string {
	if cfg.BaseURL == nil || cfg.BaseURL.Host == "" {
		return ""
	}

	return cfg.BaseURL.Scheme + "://" + cfg.BaseURL.Host
}
