package service

import (
	"context"
	"errors"
)

// EventReader is the read side of the events repository.
type EventReader interface {
	GetBySlug(ctx context.Context, slug string) (Event, error)
	ListSharingTags(ctx context.Context, anchor Event) ([]Event, error)
}

// Lookup answers read-only queries by slug. It is safe for concurrent use.
type Lookup struct {
	reader EventReader
}

// NewLookup builds a Lookup over reader.
func NewLookup(reader EventReader) *Lookup {
	if reader == nil {
		panic("event reader is required")
	}
	return &Lookup{reader: reader}
}

// FindBySlug returns the event owning slug. A miss is reported through the boolean,
// not as an error.
func (l *Lookup) FindBySlug(ctx context.Context, slug string) (Event, bool, error) {
	event, err := l.reader.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Event{}, false, nil
		}
		return Event{}, false, err
	}
	return event, true, nil
}

// FindSimilar returns every other event sharing at least one tag with the event owning
// slug, in storage order. An unknown anchor yields an empty list.
func (l *Lookup) FindSimilar(ctx context.Context, slug string) ([]Event, error) {
	anchor, found, err := l.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !found {
		return []Event{}, nil
	}

	similar, err := l.reader.ListSharingTags(ctx, anchor)
	if err != nil {
		return nil, err
	}

	out := make([]Event, 0, len(similar))
	for _, event := range similar {
		if event.ID == anchor.ID {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}
