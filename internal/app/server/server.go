package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"hrpulse/internal/domain/audit"
	"hrpulse/internal/domain/dashboard"
	"hrpulse/internal/domain/feedback"
	"hrpulse/internal/domain/notifications"
	"hrpulse/internal/domain/pdi"
	"hrpulse/internal/domain/profile"
	"hrpulse/internal/platform/config"
	"hrpulse/internal/platform/metrics"
	"hrpulse/internal/platform/seed"
	"hrpulse/internal/transport/http/api"
	audithandler "hrpulse/internal/transport/http/handlers/audit"
	dashboardhandler "hrpulse/internal/transport/http/handlers/dashboard"
	feedbackhandler "hrpulse/internal/transport/http/handlers/feedback"
	notificationshandler "hrpulse/internal/transport/http/handlers/notifications"
	pdihandler "hrpulse/internal/transport/http/handlers/pdi"
	profilehandler "hrpulse/internal/transport/http/handlers/profile"
	"hrpulse/internal/transport/http/middleware"
	"hrpulse/internal/transport/http/web"
)

type App struct {
	Config   config.Config
	Router   http.Handler
	Metrics  *metrics.Collector
	Audit    *audit.Service
	Feedback *feedback.Service
	Plans    *pdi.Service
}

// New loads the fixtures named by the config, or the embedded set, and
// wires the router.
func New(cfg config.Config) (*App, error) {
	data, err := seed.Load(cfg.FixturesPath)
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}
	return NewWithData(cfg, data)
}

func NewWithData(cfg config.Config, data *seed.Data) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	collector := metrics.New()
	events := audit.New(0)
	feedbackService := feedback.NewService(data.Feedback, events)
	feedbackService.Now = func() time.Time { return time.Now().In(loc) }
	planService := pdi.NewService(data.Plans, events)
	profileService := profile.NewService(data.Profile, events)
	notificationService := notifications.New(data.Notifications)
	dashboardService := dashboard.NewService(data.Dashboard, feedbackService, planService)

	pages, err := web.New(notificationService)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(slog.Default()))
	router.Use(chimw.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.MutationRateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.Metrics(collector))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if _, err := profileService.Options(ctx); err != nil {
			http.Error(w, "fixtures not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	dashboardHandler := dashboardhandler.NewHandler(dashboardService, pages)
	feedbackHandler := feedbackhandler.NewHandler(feedbackService, pages, collector)
	pdiHandler := pdihandler.NewHandler(planService, pages, collector)
	profileHandler := profilehandler.NewHandler(profileService, pages, collector)
	notificationsHandler := notificationshandler.NewHandler(notificationService)
	auditHandler := audithandler.NewHandler(events)

	router.Route("/api/v1", func(r chi.Router) {
		dashboardHandler.RegisterRoutes(r)
		feedbackHandler.RegisterRoutes(r)
		pdiHandler.RegisterRoutes(r)
		profileHandler.RegisterRoutes(r)
		notificationsHandler.RegisterRoutes(r)
		auditHandler.RegisterRoutes(r)
	})

	dashboardHandler.RegisterPages(router)
	feedbackHandler.RegisterPages(router)
	pdiHandler.RegisterPages(router)
	profileHandler.RegisterPages(router)
	notificationsHandler.RegisterPages(router)

	router.Handle("/static/*", http.StripPrefix("/static/", web.Static()))
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			api.NotFound(w, "route not found", middleware.GetRequestID(r.Context()))
			return
		}
		pages.NotFound(w, r, "This page does not exist.")
	})

	return &App{
		Config:   cfg,
		Router:   router,
		Metrics:  collector,
		Audit:    events,
		Feedback: feedbackService,
		Plans:    planService,
	}, nil
}

// Run listens on the configured address until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.Config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.Config.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln and shuts down gracefully once ctx is
// done, waiting at most the configured shutdown timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.Router,
		ReadHeaderTimeout: a.Config.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("hrpulse server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.Config.ShutdownTimeout)
		defer cancel()
		slog.Info("hrpulse server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
