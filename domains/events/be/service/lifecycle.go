package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-events/platform/go/normalize"
)

// Lifecycle derives the identity fields of an event (slug, canonical date and time)
// immediately before a create or update is committed.
type Lifecycle struct {
	resolver *SlugResolver
	validate *validator.Validate
	newID    func() uuid.UUID
}

// NewLifecycle builds the write pipeline on top of resolver.
func NewLifecycle(resolver *SlugResolver) *Lifecycle {
	if resolver == nil {
		panic("slug resolver is required")
	}
	return &Lifecycle{
		resolver: resolver,
		validate: newValidator(),
		newID:    uuid.New,
	}
}

// PrepareForWrite merges changes onto existing (nil for a create) and returns the record
// to persist:
//
//  1. a new or changed title gets a fresh base slug, made unique against every other event;
//  2. a new or changed raw date is normalized to YYYY-MM-DD;
//  3. a new or changed raw time is normalized to HH:MM.
//
// Fields whose source did not change keep their stored value. Any failure returns an
// error and no record, so the caller has nothing partial to write. existing is never mutated.
func (l *Lifecycle) PrepareForWrite(ctx context.Context, existing *Event, changes Changes) (Event, error) {
	var next Event
	if existing != nil {
		next = existing.clone()
	} else {
		next = Event{ID: l.newID()}
	}

	titleChanged := applyString(&next.Title, changes.Title, existing == nil)
	dateChanged := applyString(&next.Date, changes.Date, existing == nil)
	timeChanged := applyString(&next.Time, changes.Time, existing == nil)

	applyString(&next.Description, changes.Description, false)
	applyString(&next.Overview, changes.Overview, false)
	applyString(&next.Image, changes.Image, false)
	applyString(&next.Venue, changes.Venue, false)
	applyString(&next.Location, changes.Location, false)
	applyString(&next.Audience, changes.Audience, false)
	applyString(&next.Organizer, changes.Organizer, false)
	if changes.Mode != nil {
		next.Mode = Mode(strings.ToLower(strings.TrimSpace(*changes.Mode)))
	}
	if changes.Agenda != nil {
		next.Agenda = trimList(*changes.Agenda)
	}
	if changes.Tags != nil {
		next.Tags = uniqueTags(*changes.Tags)
	}

	if err := validateEvent(l.validate, next); err != nil {
		return Event{}, err
	}

	if titleChanged {
		base := normalize.GenerateSlug(next.Title)
		if base == "" {
			return Event{}, &ValidationError{Fields: FieldErrors{"title": {"title must contain at least one letter or digit"}}}
		}

		slug, err := l.resolver.ResolveUniqueSlug(ctx, base, next.ID)
		if err != nil {
			return Event{}, err
		}
		next.Slug = slug
	}

	if dateChanged {
		date, err := normalize.NormalizeDate(next.Date)
		if err != nil {
			return Event{}, err
		}
		next.Date = date
	}

	if timeChanged {
		clock, err := normalize.NormalizeTime(next.Time)
		if err != nil {
			return Event{}, err
		}
		next.Time = clock
	}

	return next, nil
}

// applyString trims and assigns an incoming value, reporting whether it differs from the
// current one. force marks the value as changed even when equal (a create).
func applyString(dst *string, incoming *string, force bool) bool {
	if incoming == nil {
		return force
	}
	value := strings.TrimSpace(*incoming)
	changed := force || value != *dst
	*dst = value
	return changed
}
