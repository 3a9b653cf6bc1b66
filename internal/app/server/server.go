package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"hrm/internal/domain/core"
	"hrm/internal/platform/config"
	"hrm/internal/platform/db"
	"hrm/internal/platform/metrics"
	"hrm/internal/transport/http/api"
	corehandler "hrm/internal/transport/http/handlers/core"
	"hrm/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Router  http.Handler
	Logger  *logrus.Logger
	Metrics *metrics.Collector
}

// New opens the pool and assembles the router. The caller owns the App and
// must Close it.
func New(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*App, error) {
	pool, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
		if err := collector.RegisterPool(func() metrics.PoolStats { return pool.Stat() }); err != nil {
			pool.Close()
			return nil, errors.Wrap(err, "register pool metrics")
		}
	}

	service := core.NewService(core.NewStore(pool))
	return &App{
		Config:  cfg,
		DB:      pool,
		Router:  NewRouter(cfg, service, logger, collector),
		Logger:  logger,
		Metrics: collector,
	}, nil
}

// NewRouter wires the middleware chain and routes. collector may be nil.
func NewRouter(cfg config.Config, service *core.Service, logger *logrus.Logger, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	var recorder middleware.RequestRecorder
	if collector != nil {
		recorder = collector
	}
	router.Use(middleware.Logger(logger, recorder))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes, logger))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute,
		middleware.WithRateLimitLogger(logger),
		middleware.WithExemptPaths(corehandler.HealthPath, cfg.MetricsPath),
	))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, r, logger, http.StatusNotFound, "not_found", "Not Found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, r, logger, http.StatusMethodNotAllowed, "method_not_allowed", "Method Not Allowed")
	})

	if collector != nil {
		router.Method(http.MethodGet, cfg.MetricsPath, collector.Handler())
	}

	corehandler.NewHandler(service, logger).RegisterRoutes(router)
	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadTimeout:       a.Config.ReadTimeout,
		ReadHeaderTimeout: a.Config.ReadTimeout,
		WriteTimeout:      a.Config.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.WithField("addr", a.Config.Addr).Info("HRM server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.Config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	})
	return g.Wait()
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
