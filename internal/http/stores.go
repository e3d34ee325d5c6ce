package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/fleet/internal/entities"
	"github.com/mrlokans/fleet/internal/services"
)

// This file consolidates the interfaces HTTP controllers depend on. The
// facade's per-entity services satisfy the store interfaces; tests can
// pass fakes.

type UserStore interface {
	Create(in entities.UserInput) (*entities.User, error)
	Get(id string) (*entities.User, bool)
	GetByEmail(email string) (*entities.User, bool)
	GetAll() []*entities.User
	Update(id string, req entities.UserUpdate) (*entities.User, error)
	Delete(id string) (*entities.User, bool)
}

type ReportStore interface {
	Create(comment string) (*entities.Report, error)
	Get(id string) (*entities.Report, bool)
	GetAll() []*entities.Report
	Update(id string, req entities.ReportUpdate) (*entities.Report, error)
	Delete(id string) (*entities.Report, bool)
}

type BusStore interface {
	Create(req services.CreateBusRequest) (*entities.Bus, error)
	Get(id string) (*entities.Bus, bool)
	GetAll() []*entities.Bus
	Update(id string, req entities.BusUpdate) (*entities.Bus, error)
	Delete(id string)
}

type RouteStore interface {
	Create(req services.CreateRouteRequest) (*entities.Route, error)
	Get(id string) (*entities.Route, bool)
	GetAll() []*entities.Route
	GetByBus(busID string) []*entities.Route
	Update(id string, req services.UpdateRouteRequest) (*entities.Route, error)
	Delete(id string)
}

// AuditReader is the read side of the audit trail.
type AuditReader interface {
	GetEvents(entityType string, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetEventsByType(eventType entities.AuditEventType, entityType string, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetEntityHistory(entityType, entityID string) ([]entities.AuditEvent, error)
}

// TaskRunner enqueues background tasks and reports their status.
type TaskRunner interface {
	EnqueueAuditCleanup(retentionDays int) (string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
