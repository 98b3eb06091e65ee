package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const EventsTable = "events"

const eventColumns = `event_id, title, slug, description, overview, image, venue, location,
		event_date, event_time, mode, audience, agenda, organizer, tags, created_at, updated_at`

// EventRecord represents a row in the events table. Slug, Date and Time are
// expected to be canonical already; the store never derives them.
type EventRecord struct {
	EventID     uuid.UUID `db:"event_id" json:"eventId"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	Overview    string    `db:"overview" json:"overview"`
	Image       string    `db:"image" json:"image"`
	Venue       string    `db:"venue" json:"venue"`
	Location    string    `db:"location" json:"location"`
	Date        string    `db:"event_date" json:"date"`
	Time        string    `db:"event_time" json:"time"`
	Mode        string    `db:"mode" json:"mode"`
	Audience    string    `db:"audience" json:"audience"`
	Agenda      []string  `db:"agenda" json:"agenda"`
	Organizer   string    `db:"organizer" json:"organizer"`
	Tags        []string  `db:"tags" json:"tags"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// EventStore exposes persistence helpers for the events table.
type EventStore struct {
	pool *pgxpool.Pool
}

// NewEventStore returns a store bound to the shared pool.
func NewEventStore(ctx context.Context, pool *pgxpool.Pool) (*EventStore, error) {
	if pool == nil {
		return nil, errors.New("pool is required")
	}

	return &EventStore{pool: pool}, nil
}

// GetBySlug returns the event with the exact slug or ErrNotFound.
func (s *EventStore) GetBySlug(ctx context.Context, slug string) (EventRecord, error) {
	row := s.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE slug = $1
	`, eventColumns, EventsTable), slug)

	record, err := scanEventRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return EventRecord{}, ErrNotFound
		}
		return EventRecord{}, fmt.Errorf("get event by slug: %w", err)
	}

	return record, nil
}

// SlugExists reports whether another event (any id other than excludeID) already owns slug.
func (s *EventStore) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s WHERE slug = $1 AND event_id <> $2
		)
	`, EventsTable), slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug %q: %w", slug, err)
	}

	return exists, nil
}

// List returns every event, newest first.
func (s *EventStore) List(ctx context.Context) ([]EventRecord, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY created_at DESC, event_id ASC
	`, eventColumns, EventsTable))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return collectEventRecords(rows)
}

// ListSharingTags returns events other than excludeID whose tags overlap the given set,
// in insertion order.
func (s *EventStore) ListSharingTags(ctx context.Context, excludeID uuid.UUID, tags []string) ([]EventRecord, error) {
	if len(tags) == 0 {
		return []EventRecord{}, nil
	}

	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE event_id <> $1 AND tags && $2::text[]
		ORDER BY created_at ASC, event_id ASC
	`, eventColumns, EventsTable), excludeID, tags)
	if err != nil {
		return nil, fmt.Errorf("list events sharing tags: %w", err)
	}

	return collectEventRecords(rows)
}

// Insert persists a prepared record. A slug collision surfaces as ErrDuplicateKey.
func (s *EventStore) Insert(ctx context.Context, record EventRecord) (EventRecord, error) {
	if record.EventID == uuid.Nil {
		return EventRecord{}, errors.New("event id is required")
	}
	if record.Slug == "" {
		return EventRecord{}, errors.New("event slug is required")
	}

	row := s.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (
			event_id, title, slug, description, overview, image, venue, location,
			event_date, event_time, mode, audience, agenda, organizer, tags, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW()
		)
		RETURNING %s
	`, EventsTable, eventColumns),
		record.EventID,
		record.Title,
		record.Slug,
		record.Description,
		record.Overview,
		record.Image,
		record.Venue,
		record.Location,
		record.Date,
		record.Time,
		record.Mode,
		record.Audience,
		record.Agenda,
		record.Organizer,
		record.Tags,
	)

	inserted, err := scanEventRecord(row)
	if err != nil {
		if isUniqueViolation(err) {
			return EventRecord{}, duplicateKeyError(err)
		}
		return EventRecord{}, fmt.Errorf("insert event: %w", err)
	}

	return inserted, nil
}

// Update overwrites every mutable column of an existing event in a single statement.
func (s *EventStore) Update(ctx context.Context, record EventRecord) (EventRecord, error) {
	if record.EventID == uuid.Nil {
		return EventRecord{}, errors.New("event id is required")
	}

	row := s.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE %s
		SET title = $2,
		    slug = $3,
		    description = $4,
		    overview = $5,
		    image = $6,
		    venue = $7,
		    location = $8,
		    event_date = $9,
		    event_time = $10,
		    mode = $11,
		    audience = $12,
		    agenda = $13,
		    organizer = $14,
		    tags = $15,
		    updated_at = NOW()
		WHERE event_id = $1
		RETURNING %s
	`, EventsTable, eventColumns),
		record.EventID,
		record.Title,
		record.Slug,
		record.Description,
		record.Overview,
		record.Image,
		record.Venue,
		record.Location,
		record.Date,
		record.Time,
		record.Mode,
		record.Audience,
		record.Agenda,
		record.Organizer,
		record.Tags,
	)

	updated, err := scanEventRecord(row)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return EventRecord{}, ErrNotFound
		case isUniqueViolation(err):
			return EventRecord{}, duplicateKeyError(err)
		default:
			return EventRecord{}, fmt.Errorf("update event: %w", err)
		}
	}

	return updated, nil
}

func collectEventRecords(rows pgx.Rows) ([]EventRecord, error) {
	defer rows.Close()

	records := make([]EventRecord, 0)
	for rows.Next() {
		record, err := scanEventRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return records, nil
}

func scanEventRecord(scanner rowScanner) (EventRecord, error) {
	var record EventRecord

	if err := scanner.Scan(
		&record.EventID,
		&record.Title,
		&record.Slug,
		&record.Description,
		&record.Overview,
		&record.Image,
		&record.Venue,
		&record.Location,
		&record.Date,
		&record.Time,
		&record.Mode,
		&record.Audience,
		&record.Agenda,
		&record.Organizer,
		&record.Tags,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return EventRecord{}, err
	}

	return record, nil
}
