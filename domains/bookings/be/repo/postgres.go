package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-events/domains/bookings/be/service"
	"github.com/zenGate-Global/palmyra-events/platform/go/persistence"
)

// PostgresRepository implements the bookings repository on top of BookingStore.
type PostgresRepository struct {
	store *persistence.BookingStore
}

// NewPostgresRepository constructs a repository backed by BookingStore.
func NewPostgresRepository(store *persistence.BookingStore) *PostgresRepository {
	if store == nil {
		panic("booking store is required")
	}
	return &PostgresRepository{store: store}
}

func (r *PostgresRepository) Insert(ctx context.Context, booking service.Booking) (service.Booking, error) {
	rec, err := r.store.Create(ctx, persistence.CreateBookingParams{
		BookingID: booking.ID,
		EventID:   booking.EventID,
		Email:     booking.Email,
	})
	if err != nil {
		return service.Booking{}, mapError(err)
	}

	return service.Booking{
		ID:        rec.BookingID,
		EventID:   rec.EventID,
		Email:     rec.Email,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (r *PostgresRepository) CountForEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	return r.store.CountForEvent(ctx, eventID)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, persistence.ErrMissingReference):
		return service.ErrEventNotFound
	case errors.Is(err, persistence.ErrDuplicateKey):
		return fmt.Errorf("%w: %v", service.ErrConflict, err)
	default:
		return err
	}
}

// Ensure interface compliance.
var _ service.Repository = (*PostgresRepository)(nil)
