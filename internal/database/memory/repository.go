// Package memory provides the volatile keyed store backing every entity
// type of the registry.
//
// # Usage
//
//	users := memory.NewRepository[*entities.User]()
//	err := users.Add(user)
//	found, ok := users.Get(user.ID)
//
// One Repository holds exactly one entity type and knows nothing about
// the others; resolving references between types is the facade's job.
package memory

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrDuplicateID is returned by Add when the identifier is already stored.
var ErrDuplicateID = errors.New("entity already exists")

// Entity is implemented by every storable type. Clone must return a copy
// that shares no mutable state with the receiver.
type Entity[T any] interface {
	EntityID() string
	Clone() T
}

// Repository is a concurrency-safe map of entities keyed by identifier.
// Values are copied on the way in and on the way out, so callers never
// observe or mutate stored state directly.
type Repository[T Entity[T]] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// NewRepository creates an empty repository.
func NewRepository[T Entity[T]]() *Repository[T] {
	return &Repository[T]{items: make(map[string]T)}
}

// Add stores a copy of entity.
func (r *Repository[T]) Add(entity T) error {
	id := entity.EntityID()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	r.items[id] = entity.Clone()
	r.order = append(r.order, id)
	return nil
}

// Get returns a copy of the entity with the given id. A missing id is
// reported through the boolean, not as an error.
func (r *Repository[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return item.Clone(), true
}

// GetAll returns copies of all entities in insertion order.
func (r *Repository[T]) GetAll() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id].Clone())
	}
	return out
}

// FindFirst scans in insertion order and returns the first entity for
// which match reports true.
func (r *Repository[T]) FindFirst(match func(T) bool) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if item := r.items[id]; match(item) {
			return item.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Update runs apply against a copy of the stored entity and replaces the
// stored value only when apply succeeds. The boolean is false when id is
// not stored, in which case nothing happens.
func (r *Repository[T]) Update(id string, apply func(T) error) (T, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	item, ok := r.items[id]
	if !ok {
		return zero, false, nil
	}

	working := item.Clone()
	if err := apply(working); err != nil {
		return zero, true, err
	}
	r.items[id] = working.Clone()
	return working, true, nil
}

// Delete removes the entity with the given id and reports whether it was
// present. Deleting a missing id is a no-op.
func (r *Repository[T]) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(stored string) bool { return stored == id })
	return true
}

// Len returns the number of stored entities.
func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
