// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Entity Stores
//
//   - UserStore, ReportStore, BusStore, RouteStore: per-entity operations
//     the REST controllers depend on (internal/http/stores.go). The
//     facade's services satisfy them (internal/services).
//   - StoreCounter: entity counts for /health and the stored_entities
//     gauge (internal/http/health.go, internal/metrics/metrics.go).
//
// ## Change Loggers
//
//   - ChangeLogger: receives every create, update and delete outcome
//     (internal/services/facade.go). The audit trail and the Prometheus
//     metrics both implement it; pass each with services.WithChangeLogger.
//
// ## Audit Trail and Task Queue
//
//   - AuditReader: paginated audit queries (internal/http/stores.go)
//   - AuditEventCleaner: retention cleanup used by the task queue
//     (internal/tasks/cleanup_audit.go)
//   - TaskRunner: enqueue and inspect background tasks (internal/http/stores.go)
//   - Pinger: storage liveness for /health (internal/http/stores.go)
//
// # Adding a New Change Logger
//
//  1. Implement LogChange:
//
//     type WebhookNotifier struct { url string }
//
//     func (n *WebhookNotifier) LogChange(event entities.AuditEventType, entityType, entityID string, err error)
//
//     var _ services.ChangeLogger = (*WebhookNotifier)(nil)
//
//  2. Pass it to services.New in entrypoint.go:
//
//     services.New(services.WithChangeLogger(notifier))
//
// # Adding a New Background Task
//
//  1. Define the task and its queue in internal/tasks/
//
//     type ReindexTask struct{}
//
//     func (t ReindexTask) Config() backlite.QueueConfig
//
//     func NewReindexQueue(...) backlite.Queue
//
//  2. Register it with the client in entrypoint.go
//
//  3. Add a case to TasksController.RunTask (internal/http/tasks.go)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
