package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-events/domains/bookings/be/service"
)

type bookingKey struct {
	eventID uuid.UUID
	email   string
}

// MemoryRepository is an in-memory implementation for tests and local runs without Postgres.
// It mirrors the bookings_event_email_key constraint; event existence is checked by the service.
type MemoryRepository struct {
	mu     sync.RWMutex
	byKey  map[bookingKey]service.Booking
	counts map[uuid.UUID]int
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byKey:  make(map[bookingKey]service.Booking),
		counts: make(map[uuid.UUID]int),
	}
}

func (r *MemoryRepository) Insert(_ context.Context, booking service.Booking) (service.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.Email = strings.ToLower(strings.TrimSpace(booking.Email))
	key := bookingKey{eventID: booking.EventID, email: booking.Email}
	if _, exists := r.byKey[key]; exists {
		return service.Booking{}, service.ErrConflict
	}

	booking.CreatedAt = time.Now().UTC()
	r.byKey[key] = booking
	r.counts[booking.EventID]++
	return booking, nil
}

func (r *MemoryRepository) CountForEvent(_ context.Context, eventID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.counts[eventID], nil
}

// Ensure interface compliance.
var _ service.Repository = (*MemoryRepository)(nil)
