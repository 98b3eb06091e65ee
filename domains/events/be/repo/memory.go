package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-events/domains/events/be/service"
)

// MemoryRepository is an in-memory implementation for tests and local runs without Postgres.
// It enforces slug uniqueness the way the events_slug_key constraint does.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]service.Event
	bySlug map[string]uuid.UUID
	// seq preserves insertion order, the equivalent of created_at for ties.
	seq   map[uuid.UUID]int
	next  int
	clock func() time.Time
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[uuid.UUID]service.Event),
		bySlug: make(map[string]uuid.UUID),
		seq:    make(map[uuid.UUID]int),
		clock:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) GetBySlug(_ context.Context, slug string) (service.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return service.Event{}, service.ErrNotFound
	}
	return copyEvent(r.byID[id]), nil
}

func (r *MemoryRepository) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	return ok && id != excludeID, nil
}

// List returns events newest first.
func (r *MemoryRepository) List(_ context.Context) ([]service.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.ordered()
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items, nil
}

// ListSharingTags returns events other than the anchor sharing at least one tag, oldest first.
func (r *MemoryRepository) ListSharingTags(_ context.Context, anchor service.Event) ([]service.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(anchor.Tags))
	for _, tag := range anchor.Tags {
		wanted[tag] = struct{}{}
	}

	out := make([]service.Event, 0)
	for _, e := range r.ordered() {
		if e.ID == anchor.ID {
			continue
		}
		for _, tag := range e.Tags {
			if _, ok := wanted[tag]; ok {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (r *MemoryRepository) Insert(_ context.Context, event service.Event) (service.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bySlug[event.Slug]; exists {
		return service.Event{}, service.ErrDuplicateKey
	}
	if _, exists := r.byID[event.ID]; exists {
		return service.Event{}, service.ErrDuplicateKey
	}

	now := r.clock()
	event.CreatedAt, event.UpdatedAt = now, now
	event = copyEvent(event)

	r.byID[event.ID] = event
	r.bySlug[event.Slug] = event.ID
	r.seq[event.ID] = r.next
	r.next++
	return copyEvent(event), nil
}

func (r *MemoryRepository) Update(_ context.Context, event service.Event) (service.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[event.ID]
	if !ok {
		return service.Event{}, service.ErrNotFound
	}
	if owner, taken := r.bySlug[event.Slug]; taken && owner != event.ID {
		return service.Event{}, service.ErrDuplicateKey
	}

	event.CreatedAt = current.CreatedAt
	event.UpdatedAt = r.clock()
	event = copyEvent(event)

	delete(r.bySlug, current.Slug)
	r.byID[event.ID] = event
	r.bySlug[event.Slug] = event.ID
	return copyEvent(event), nil
}

// ordered returns copies in insertion order. Callers hold the lock.
func (r *MemoryRepository) ordered() []service.Event {
	items := make([]service.Event, 0, len(r.byID))
	for _, e := range r.byID {
		items = append(items, copyEvent(e))
	}
	sort.Slice(items, func(i, j int) bool { return r.seq[items[i].ID] < r.seq[items[j].ID] })
	return items
}

func copyEvent(e service.Event) service.Event {
	e.Agenda = append([]string(nil), e.Agenda...)
	e.Tags = append([]string(nil), e.Tags...)
	return e
}

// Ensure interface compliance.
var _ service.Repository = (*MemoryRepository)(nil)
