package audit

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/fleet/internal/database/audit"
	"github.com/mrlokans/fleet/internal/entities"
)

const maxErrorLength = 500

var pastTense = map[entities.AuditEventType]string{
	entities.AuditEventCreate: "Created",
	entities.AuditEventUpdate: "Updated",
	entities.AuditEventDelete: "Deleted",
}

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
	log  *zap.Logger
	wg   sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.repo.LogEvent(event); err != nil {
			s.log.Warn("failed to log audit event",
				zap.String("action", event.Action),
				zap.Error(err))
		}
	}()
}

// Wait blocks until every event handed to LogAsync has been written.
func (s *Service) Wait() {
	s.wg.Wait()
}

// LogChange records the outcome of a create, update or delete on one of
// the fleet entities. entityID is empty when a create failed before an
// identifier was assigned.
func (s *Service) LogChange(eventType entities.AuditEventType, entityType, entityID string, err error) {
	event := &entities.AuditEvent{
		EventType:   eventType,
		Action:      entityType + "_" + string(eventType),
		Description: describe(eventType, entityType, entityID, err),
		EntityType:  entityType,
		EntityID:    entityID,
		Status:      entities.AuditStatusSuccess,
		CreatedAt:   time.Now(),
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), maxErrorLength)
	}

	s.LogAsync(event)
}

func describe(eventType entities.AuditEventType, entityType, entityID string, err error) string {
	if err != nil {
		if entityID == "" {
			return fmt.Sprintf("Failed to %s %s", eventType, entityType)
		}
		return fmt.Sprintf("Failed to %s %s %s", eventType, entityType, entityID)
	}
	return fmt.Sprintf("%s %s %s", pastTense[eventType], entityType, entityID)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(entityType string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(entityType, limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(eventType entities.AuditEventType, entityType string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, entityType, limit, offset)
}

func (s *Service) GetEntityHistory(entityType, entityID string) ([]entities.AuditEvent, error) {
	return s.repo.GetEntityHistory(entityType, entityID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens s to at most maxLen characters, never splitting a
// multi-byte character.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
