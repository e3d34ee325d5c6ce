package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/fleet/internal/audit"
	"github.com/mrlokans/fleet/internal/database"
	"github.com/mrlokans/fleet/internal/http"
	"github.com/mrlokans/fleet/internal/logging"
	"github.com/mrlokans/fleet/internal/metrics"
	"github.com/mrlokans/fleet/internal/services"
	"github.com/mrlokans/fleet/internal/tasks"

	"github.com/mikestefanello/backlite"
)

// =============================================================================
// Entity Stores
// =============================================================================

var _ http.UserStore = (*services.UserService)(nil)
var _ http.ReportStore = (*services.ReportService)(nil)
var _ http.BusStore = (*services.BusService)(nil)
var _ http.RouteStore = (*services.RouteService)(nil)

var _ http.StoreCounter = (*services.Facade)(nil)
var _ metrics.StoreCounter = (*services.Facade)(nil)

// =============================================================================
// Change Loggers
// =============================================================================

var _ services.ChangeLogger = (*audit.Service)(nil)
var _ services.ChangeLogger = (*metrics.Metrics)(nil)

// =============================================================================
// Audit Trail and Task Queue
// =============================================================================

var _ http.AuditReader = (*audit.Service)(nil)
var _ http.Pinger = (*database.Database)(nil)
var _ http.TaskRunner = (*tasks.Client)(nil)
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)
var _ backlite.Logger = (*logging.TaskLogger)(nil)
