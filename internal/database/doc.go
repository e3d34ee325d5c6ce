// Package database holds the persistent side of the service.
//
// Entities live in memory (see the memory sub-package) and are lost when
// the process exits. The only durable data is the audit trail, stored in
// sqlite through gorm:
//
//	database/
//	├── database.go      # Connection setup, migrations, ping
//	├── memory/          # Generic in-memory entity repository
//	└── audit/           # Audit event queries and retention
//
// Sub-packages expose a Repository type built from the shared handle:
//
//	db, err := database.NewDatabase("./fleet.db", logger)
//	auditRepo := audit.NewRepository(db.DB)
package database
