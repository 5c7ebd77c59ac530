package ranger

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/auth"
	"github.com/xy-planning-network/wanderlust/http/router"
	"github.com/xy-planning-network/wanderlust/logger"
	"github.com/xy-planning-network/wanderlust/metrics"
	"github.com/xy-planning-network/wanderlust/postgres"
	"github.com/xy-planning-network/wanderlust/users"
	"github.com/xy-planning-network/wanderlust/wanttogo"
	"github.com/xy-planning-network/wanderlust/web"
)

const shutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of a wanderlust app to one another.
type Ranger struct {
	*router.Router

	cfg    *Config
	ctx    context.Context
	cancel context.CancelFunc
	db     *postgres.DB
	l      logger.Logger
	srv    *http.Server
	store  users.Storer
	tmpls  []fs.FS

	metrics    http.Handler
	metricsSrv *http.Server
}

// New constructs a Ranger from the provided options,
// filling in from the environment whatever they leave unset.
//
// Unless WithUserStore is passed, New connects to PostgreSQL and runs users.Migrations,
// returning an error wrapping wanderlust.ErrStoreUnavailable if it cannot.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.cfg == nil {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		r.cfg = &cfg
	}
	cfg := *r.cfg

	if r.l == nil {
		r.l = defaultLogger(cfg)
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.store == nil {
		r.l.Debug("connecting to database", nil)
		db, err := defaultDB(cfg)
		if err != nil {
			return nil, err
		}
		r.db = db
		r.store = users.NewStore(db)
	}

	sessions, err := defaultSessionStore(cfg)
	if err != nil {
		return nil, err
	}

	d := defaultResponder(r.l, cfg, defaultParser(cfg.Env, r.tmpls...))

	authSvc, err := auth.NewService(r.store, auth.WithCost(cfg.BcryptCost))
	if err != nil {
		return nil, err
	}

	returns, err := auth.NewReturnPaths(cfg.ReturnPathKey, auth.DefaultReturnTTL)
	if err != nil {
		return nil, err
	}

	reg := defaultRegistry()
	collector := metrics.NewCollector(reg)
	r.metrics = metrics.Handler(reg)

	h, err := web.New(
		web.Config{
			Responder:   d,
			Auth:        authSvc,
			ReturnPaths: returns,
			WantToGo:    wanttogo.NewService(r.store, wanderlust.DefaultCatalog),
		},
		web.WithLogger(r.l),
		web.WithMetrics(collector),
	)
	if err != nil {
		return nil, err
	}

	r.Router = defaultRouter(r.l, cfg, defaultMiddlewares(r.l, cfg, collector, sessions, r.store))
	h.Register(r.Router)

	if r.srv == nil {
		r.srv = defaultServer(r.ctx, cfg)
	}
	r.srv.Handler = r.Router

	if cfg.MetricsAddr != "" {
		r.metricsSrv = defaultMetricsServer(r.ctx, cfg, r.metrics)
	}

	return r, nil
}

// Cancel returns the context.CancelFunc stopping Guide.
func (r *Ranger) Cancel() context.CancelFunc { return r.cancel }

// MetricsHandler exposes the Prometheus exposition served at METRICS_ADDR.
func (r *Ranger) MetricsHandler() http.Handler { return r.metrics }

// EmitLogger exposes the logger.Logger the *Ranger logs with.
func (r *Ranger) EmitLogger() logger.Logger { return r.l }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errCh := make(chan error, 2)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}
	}()

	if r.metricsSrv != nil {
		go func() {
			r.l.Info(fmt.Sprintf("serving metrics at %s", r.metricsSrv.Addr), nil)
			if err := r.metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("could not listen for metrics: %w", err)
			}
		}()
	}

	select {
	case err := <-errCh:
		r.cancel()
		if shutErr := r.Shutdown(); shutErr != nil {
			r.l.Error(shutErr.Error(), &logger.LogContext{Error: shutErr})
		}
		return err
	case <-r.ctx.Done():
		return r.Shutdown()
	}
}

// Shutdown shuts down the web server and any metrics server,
// waiting up to five seconds for open requests,
// and closes the database connection.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	defer r.closeDB()

	if r.metricsSrv != nil {
		if err := r.metricsSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.l.Error("could not shutdown metrics server", &logger.LogContext{Error: err})
		}
	}

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}

func (r *Ranger) closeDB() {
	if r.db == nil {
		return
	}

	if err := r.db.Close(); err != nil {
		r.l.Error(err.Error(), &logger.LogContext{Error: err})
	}
}
