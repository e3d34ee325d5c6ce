// Package services implements the registry facade: one coordinator per
// entity type, each owning the cross-entity rules for its type.
//
// Repositories never hold more than one lock at a time and the facade
// never calls into a repository while holding another one, so there is
// no lock ordering between entity types.
package services

import (
	"github.com/mrlokans/fleet/internal/database/memory"
	"github.com/mrlokans/fleet/internal/entities"
)

// ChangeLogger receives every mutation attempted through the facade.
// entityID is empty when a create failed before an entity existed.
type ChangeLogger interface {
	LogChange(event entities.AuditEventType, entityType, entityID string, err error)
}

type recorder struct {
	loggers []ChangeLogger
}

func (r recorder) record(event entities.AuditEventType, entityType, entityID string, err error) {
	for _, logger := range r.loggers {
		logger.LogChange(event, entityType, entityID, err)
	}
}

// Facade owns one repository per entity type and exposes the per-type
// coordinators. Build it with New; the zero value is not usable.
type Facade struct {
	Users   *UserService
	Reports *ReportService
	Buses   *BusService
	Routes  *RouteService

	userRepo   *memory.Repository[*entities.User]
	reportRepo *memory.Repository[*entities.Report]
	busRepo    *memory.Repository[*entities.Bus]
	routeRepo  *memory.Repository[*entities.Route]
}

type Option func(*options)

type options struct {
	changeLoggers []ChangeLogger
}

// WithChangeLogger records every create, update and delete. It may be
// passed more than once; loggers are called in order.
func WithChangeLogger(logger ChangeLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.changeLoggers = append(o.changeLoggers, logger)
		}
	}
}

// New creates a facade with empty stores.
func New(opts ...Option) *Facade {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	rec := recorder{loggers: o.changeLoggers}

	f := &Facade{
		userRepo:   memory.NewRepository[*entities.User](),
		reportRepo: memory.NewRepository[*entities.Report](),
		busRepo:    memory.NewRepository[*entities.Bus](),
		routeRepo:  memory.NewRepository[*entities.Route](),
	}

	f.Users = &UserService{repo: f.userRepo, recorder: rec}
	f.Reports = &ReportService{repo: f.reportRepo, recorder: rec}
	f.Buses = &BusService{
		repo:     f.busRepo,
		users:    f.userRepo,
		reports:  f.reportRepo,
		recorder: rec,
	}
	f.Routes = &RouteService{
		repo:     f.routeRepo,
		users:    f.Users,
		buses:    f.Buses,
		recorder: rec,
	}
	return f
}

// Counts returns the number of stored entities per entity type.
func (f *Facade) Counts() map[string]int {
	return map[string]int{
		entities.EntityUser:   f.userRepo.Len(),
		entities.EntityReport: f.reportRepo.Len(),
		entities.EntityBus:    f.busRepo.Len(),
		entities.EntityRoute:  f.routeRepo.Len(),
	}
}
