// Package memory provides the in-memory store backing the catalog: a
// generic keyed collection plus repository implementations that keep the
// author<->book association consistent from both sides.
package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Pagination bounds enforced by List.
const (
	MinLimit = 1
	MaxLimit = 1000
)

// Collection is a generic keyed container that preserves insertion order.
// It is safe for concurrent use on its own; atomicity across collections
// is the DB's responsibility.
type Collection[T any] struct {
	mu    sync.RWMutex
	key   func(T) uuid.UUID
	items map[uuid.UUID]T
	order []uuid.UUID
}

// NewCollection creates an empty collection. key extracts the identifier
// of an entity.
func NewCollection[T any](key func(T) uuid.UUID) *Collection[T] {
	return &Collection[T]{
		key:   key,
		items: make(map[uuid.UUID]T),
	}
}

// Insert stores a new entity under its key.
// Returns ErrDuplicateKey if the key is already present.
func (c *Collection[T]) Insert(entity T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.key(entity)
	if _, exists := c.items[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, id)
	}

	c.items[id] = entity
	c.order = append(c.order, id)
	return nil
}

// Get returns the entity stored under id.
// Returns ErrNotFound if absent.
func (c *Collection[T]) Get(id uuid.UUID) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entity, exists := c.items[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return entity, nil
}

// Update applies mutator to the entity stored under id and returns the
// new state. The mutator must not change the entity's key.
// Returns ErrNotFound if absent.
func (c *Collection[T]) Update(id uuid.UUID, mutator func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity, exists := c.items[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	updated := mutator(entity)
	c.items[id] = updated
	return updated, nil
}

// Delete removes the entity stored under id.
// Returns ErrNotFound if absent; there is no soft delete.
func (c *Collection[T]) Delete(id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// List applies predicate to all entities in insertion order and returns
// the [offset, offset+limit) slice of matches plus the total match count
// before slicing. A nil predicate matches everything.
// Returns ErrInvalidArgument when limit is outside [MinLimit, MaxLimit]
// or offset is negative.
func (c *Collection[T]) List(predicate func(T) bool, offset, limit int) ([]T, int, error) {
	if limit < MinLimit || limit > MaxLimit {
		return nil, 0, fmt.Errorf("%w: limit %d out of range [%d,%d]", ErrInvalidArgument, limit, MinLimit, MaxLimit)
	}
	if offset < 0 {
		return nil, 0, fmt.Errorf("%w: offset %d is negative", ErrInvalidArgument, offset)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matches []T
	for _, id := range c.order {
		entity := c.items[id]
		if predicate == nil || predicate(entity) {
			matches = append(matches, entity)
		}
	}

	total := len(matches)
	if offset >= total {
		return []T{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matches[offset:end], total, nil
}

// Len returns the number of stored entities.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
