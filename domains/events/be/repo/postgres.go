package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-events/domains/events/be/service"
	"github.com/zenGate-Global/palmyra-events/platform/go/persistence"
)

// PostgresRepository implements the events repository on top of EventStore.
type PostgresRepository struct {
	store *persistence.EventStore
}

// NewPostgresRepository constructs a repository backed by EventStore.
func NewPostgresRepository(store *persistence.EventStore) *PostgresRepository {
	if store == nil {
		panic("event store is required")
	}
	return &PostgresRepository{store: store}
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (service.Event, error) {
	rec, err := r.store.GetBySlug(ctx, slug)
	if err != nil {
		return service.Event{}, mapError(err)
	}
	return toServiceEvent(rec), nil
}

func (r *PostgresRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return r.store.SlugExists(ctx, slug, excludeID)
}

func (r *PostgresRepository) List(ctx context.Context) ([]service.Event, error) {
	recs, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return toServiceEvents(recs), nil
}

func (r *PostgresRepository) ListSharingTags(ctx context.Context, anchor service.Event) ([]service.Event, error) {
	recs, err := r.store.ListSharingTags(ctx, anchor.ID, anchor.Tags)
	if err != nil {
		return nil, err
	}
	return toServiceEvents(recs), nil
}

func (r *PostgresRepository) Insert(ctx context.Context, event service.Event) (service.Event, error) {
	rec, err := r.store.Insert(ctx, toRecord(event))
	if err != nil {
		return service.Event{}, mapError(err)
	}
	return toServiceEvent(rec), nil
}

func (r *PostgresRepository) Update(ctx context.Context, event service.Event) (service.Event, error) {
	rec, err := r.store.Update(ctx, toRecord(event))
	if err != nil {
		return service.Event{}, mapError(err)
	}
	return toServiceEvent(rec), nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		return service.ErrNotFound
	case errors.Is(err, persistence.ErrDuplicateKey):
		return fmt.Errorf("%w: %v", service.ErrDuplicateKey, err)
	default:
		return err
	}
}

func toRecord(e service.Event) persistence.EventRecord {
	return persistence.EventRecord{
		EventID:     e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		Overview:    e.Overview,
		Image:       e.Image,
		Venue:       e.Venue,
		Location:    e.Location,
		Date:        e.Date,
		Time:        e.Time,
		Mode:        string(e.Mode),
		Audience:    e.Audience,
		Agenda:      e.Agenda,
		Organizer:   e.Organizer,
		Tags:        e.Tags,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toServiceEvent(rec persistence.EventRecord) service.Event {
	return service.Event{
		ID:          rec.EventID,
		Title:       rec.Title,
		Slug:        rec.Slug,
		Description: rec.Description,
		Overview:    rec.Overview,
		Image:       rec.Image,
		Venue:       rec.Venue,
		Location:    rec.Location,
		Date:        rec.Date,
		Time:        rec.Time,
		Mode:        service.Mode(rec.Mode),
		Audience:    rec.Audience,
		Agenda:      rec.Agenda,
		Organizer:   rec.Organizer,
		Tags:        rec.Tags,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func toServiceEvents(recs []persistence.EventRecord) []service.Event {
	out := make([]service.Event, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toServiceEvent(rec))
	}
	return out
}

// Ensure interface compliance.
var _ service.Repository = (*PostgresRepository)(nil)
