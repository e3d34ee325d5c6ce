package services

import (
	"errors"
	"fmt"

	"github.com/mrlokans/fleet/internal/entities"
)

var (
	// ErrInvalidInput means the request was rejected before any entity was
	// built: "nothing created" rather than a field-level validation error.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotFound means the entity targeted by an update does not exist.
	ErrNotFound = errors.New("not found")
)

// NotFoundError reports a foreign reference that does not resolve.
type NotFoundError struct {
	Entity  string
	ID      string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func ownerNotFound(id string) *NotFoundError {
	return &NotFoundError{Entity: entities.EntityUser, ID: id, Message: fmt.Sprintf("Owner not found: %s", id)}
}

func userNotFound(id string) *NotFoundError {
	return &NotFoundError{Entity: entities.EntityUser, ID: id, Message: fmt.Sprintf("User not found: %s", id)}
}

func vehicleNotFound(id string) *NotFoundError {
	return &NotFoundError{Entity: entities.EntityBus, ID: id, Message: fmt.Sprintf("Vehicle not found: %s", id)}
}

func reportNotFound(id string) *NotFoundError {
	return &NotFoundError{Entity: entities.EntityReport, ID: id, Message: fmt.Sprintf("Report %s does not exist", id)}
}

func missing(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}
