package http

import (
	"go.uber.org/zap"

	"github.com/mrlokans/fleet/internal/demo"
	"github.com/mrlokans/fleet/internal/metrics"
	"github.com/mrlokans/fleet/internal/services"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Facade *services.Facade
	Logger *zap.Logger

	// Audit trail (optional)
	Database     Pinger
	AuditService AuditReader

	// Task queue client (optional)
	TaskClient         TaskRunner
	AuditRetentionDays int

	// Cron audit cleanup, reported by /health (optional)
	CleanupSchedule CleanupSchedule

	// Prometheus metrics (optional)
	Metrics *metrics.Metrics

	// Read-only demo mode (optional)
	DemoMiddleware *demo.Middleware

	// Application info
	Version string
}
