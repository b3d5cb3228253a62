package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/klokku/agenda/internal/config"
	"github.com/klokku/agenda/pkg/loader"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, the calendar, router, scheduler and server lifecycle.
type Application struct {
	cfg       config.Application
	deps      *Dependencies
	router    *mux.Router
	srv       *http.Server
	scheduler *cron.Cron
}

// NewApplication loads the configuration at configPath and builds the application.
func NewApplication(ctx context.Context, configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return New(ctx, cfg)
}

// New constructs the full application and loads the calendar from the
// configured source. A missing source leaves the calendar empty.
func New(ctx context.Context, cfg config.Application) (*Application, error) {
	source, err := loader.NewSource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create event source: %w", err)
	}

	deps := BuildDependencies(source)
	if _, err := deps.CalendarService.Reload(ctx); err != nil {
		if !errors.Is(err, loader.ErrSourceNotFound) {
			return nil, err
		}
		log.Warnf("Starting with an empty calendar: %v", err)
	}

	r := mux.NewRouter()
	SetupMiddleware(r)
	RegisterRoutes(r, deps)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	app := &Application{cfg: cfg, deps: deps, router: r, srv: srv}
	if cfg.Refresh != "" {
		if err := app.scheduleReload(cfg.Refresh); err != nil {
			return nil, err
		}
	}
	return app, nil
}

func (a *Application) scheduleReload(schedule string) error {
	a.scheduler = cron.New()
	_, err := a.scheduler.AddFunc(schedule, func() {
		if _, err := a.deps.CalendarService.Reload(context.Background()); err != nil {
			log.Errorf("scheduled calendar reload failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	log.Infof("Calendar reload scheduled: %s", schedule)
	return nil
}

func (a *Application) Handler() http.Handler {
	return a.router
}

// Run starts the scheduler and the HTTP server and blocks until ctx is done or
// the server fails.
func (a *Application) Run(ctx context.Context) error {
	if a.scheduler != nil {
		a.scheduler.Start()
		defer a.scheduler.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
