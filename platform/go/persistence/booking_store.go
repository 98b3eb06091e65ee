package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const BookingsTable = "bookings"

// BookingRecord represents a row in the bookings table.
type BookingRecord struct {
	BookingID uuid.UUID `db:"booking_id" json:"bookingId"`
	EventID   uuid.UUID `db:"event_id" json:"eventId"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// BookingStore exposes persistence helpers for the bookings table.
type BookingStore struct {
	pool *pgxpool.Pool
}

// NewBookingStore returns a store bound to the shared pool.
func NewBookingStore(ctx context.Context, pool *pgxpool.Pool) (*BookingStore, error) {
	if pool == nil {
		return nil, errors.New("pool is required")
	}

	return &BookingStore{pool: pool}, nil
}

// CreateBookingParams captures the fields required to insert a booking.
type CreateBookingParams struct {
	BookingID uuid.UUID
	EventID   uuid.UUID
	Email     string
}

// Create inserts a booking. A missing event surfaces as ErrMissingReference and a
// repeated (event, email) pair as ErrDuplicateKey.
func (s *BookingStore) Create(ctx context.Context, params CreateBookingParams) (BookingRecord, error) {
	if params.BookingID == uuid.Nil {
		return BookingRecord{}, errors.New("booking id is required")
	}
	if params.EventID == uuid.Nil {
		return BookingRecord{}, errors.New("event id is required")
	}

	row := s.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (booking_id, event_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING booking_id, event_id, email, created_at, updated_at
	`, BookingsTable), params.BookingID, params.EventID, strings.ToLower(strings.TrimSpace(params.Email)))

	var record BookingRecord
	if err := row.Scan(&record.BookingID, &record.EventID, &record.Email, &record.CreatedAt, &record.UpdatedAt); err != nil {
		switch {
		case isForeignKeyViolation(err):
			return BookingRecord{}, ErrMissingReference
		case isUniqueViolation(err):
			return BookingRecord{}, duplicateKeyError(err)
		default:
			return BookingRecord{}, fmt.Errorf("insert booking: %w", err)
		}
	}

	return record, nil
}

// CountForEvent returns how many bookings reference the event.
func (s *BookingStore) CountForEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE event_id = $1`, BookingsTable), eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}
