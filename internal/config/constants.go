package config

const (
	// DefaultDatabasePath is the sqlite file holding the audit trail. The
	// task queue database is created next to it.
	DefaultDatabasePath = "./fleet.db"

	// DefaultAuditCleanupSchedule runs audit cleanup daily at 03:00.
	DefaultAuditCleanupSchedule = "0 3 * * *"
)
