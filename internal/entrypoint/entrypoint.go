package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/fleet/internal/audit"
	"github.com/mrlokans/fleet/internal/config"
	"github.com/mrlokans/fleet/internal/database"
	auditRepo "github.com/mrlokans/fleet/internal/database/audit"
	"github.com/mrlokans/fleet/internal/demo"
	http_controllers "github.com/mrlokans/fleet/internal/http"
	"github.com/mrlokans/fleet/internal/logging"
	"github.com/mrlokans/fleet/internal/metrics"
	"github.com/mrlokans/fleet/internal/scheduler"
	"github.com/mrlokans/fleet/internal/services"
	"github.com/mrlokans/fleet/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// app holds every long-lived component built from the configuration.
type app struct {
	log       *zap.Logger
	router    *gin.Engine
	facade    *services.Facade
	db        *database.Database
	auditSvc  *audit.Service
	tasks     *tasks.Client
	scheduler *scheduler.AuditCleanupScheduler

	cancelBackground context.CancelFunc
}

// newApp wires the facade, the optional audit trail, task queue,
// scheduler and metrics, and the HTTP router. Background workers are
// started; call shutdown to stop them.
func newApp(cfg *config.Config, version string, log *zap.Logger) (*app, error) {
	a := &app{log: log}
	var opts []services.Option

	if cfg.Audit.Enabled {
		db, err := database.NewDatabase(cfg.Database.Path, log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.db = db
		a.auditSvc = audit.NewService(auditRepo.NewRepository(db.DB), log)
		opts = append(opts, services.WithChangeLogger(a.auditSvc))
	} else {
		log.Info("audit trail disabled")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		opts = append(opts, services.WithChangeLogger(m))
	}

	a.facade = services.New(opts...)
	if m != nil {
		m.TrackStore(a.facade)
	}

	bgCtx, cancel := context.WithCancel(context.Background())
	a.cancelBackground = cancel

	if a.auditSvc != nil {
		if err := a.startAuditCleanup(bgCtx, cfg); err != nil {
			a.shutdown(context.Background())
			return nil, err
		}
	}

	if cfg.Demo.Seed {
		if err := demo.Seed(a.facade, log); err != nil {
			a.shutdown(context.Background())
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Facade:             a.facade,
		Logger:             log,
		AuditRetentionDays: cfg.Audit.RetentionDays,
		Metrics:            m,
		Version:            version,
	}
	// Interface fields stay nil unless the backing component exists.
	if a.db != nil {
		routerCfg.Database = a.db
		routerCfg.AuditService = a.auditSvc
	}
	if a.tasks != nil {
		routerCfg.TaskClient = a.tasks
	}
	if a.scheduler != nil {
		routerCfg.CleanupSchedule = a.scheduler
	}
	if cfg.Demo.ReadOnly {
		log.Info("demo mode enabled, write operations will be blocked")
		routerCfg.DemoMiddleware = demo.NewMiddleware(true)
	}

	a.router = http_controllers.NewRouter(routerCfg)
	return a, nil
}

// startAuditCleanup starts the task queue, when enabled, and the cron
// scheduler. Scheduled cleanups go through the queue if there is one and
// run inline otherwise.
func (a *app) startAuditCleanup(ctx context.Context, cfg *config.Config) error {
	cleanup := func(retentionDays int) error {
		deleted, err := a.auditSvc.DeleteOldEvents(time.Duration(retentionDays) * 24 * time.Hour)
		if err != nil {
			return err
		}
		a.log.Info("audit events cleaned up", zap.Int64("deleted", deleted))
		return nil
	}

	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		client, err := tasks.NewClient(cfg.Database.Path, taskCfg, a.log)
		if err != nil {
			return fmt.Errorf("failed to initialize task queue: %w", err)
		}
		a.tasks = client
		client.Register(tasks.NewCleanupAuditEventsQueue(a.auditSvc, a.log))
		client.Start(ctx)

		cleanup = func(retentionDays int) error {
			_, err := client.EnqueueAuditCleanup(retentionDays)
			return err
		}
	}

	if cfg.Audit.CleanupSchedule == "" {
		return nil
	}
	a.scheduler = scheduler.NewAuditCleanupScheduler(cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays, cleanup, a.log)
	if err := a.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start audit cleanup scheduler: %w", err)
	}
	return nil
}

// shutdown stops background work and releases storage, in reverse
// order of construction.
func (a *app) shutdown(ctx context.Context) {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.tasks != nil {
		a.tasks.Stop(ctx)
	}
	if a.cancelBackground != nil {
		a.cancelBackground()
	}
	if a.tasks != nil {
		if err := a.tasks.Close(); err != nil {
			a.log.Warn("error closing task client", zap.Error(err))
		}
	}
	if a.auditSvc != nil {
		a.auditSvc.Wait()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn("error closing database", zap.Error(err))
		}
	}
}

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// within the configured timeout.
func Serve(router http.Handler, cfg *config.Config, log *zap.Logger, onShutdown ShutdownFunc) error {
	srv := &http.Server{
		Addr:    cfg.Address(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()), zap.Duration("timeout", cfg.ShutdownTimeout()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info("server exited")
	return nil
}

func Run(cfg *config.Config, version string) error {
	log, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("starting fleet", zap.String("version", version))

	a, err := newApp(cfg, version, log)
	if err != nil {
		return err
	}

	return Serve(a.router, cfg, log, a.shutdown)
}
