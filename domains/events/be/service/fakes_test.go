package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// inMemoryRepo is a minimal in-memory impl of Repository for tests. The *Fn hooks,
// when set, run before the default behavior and may short-circuit it.
type inMemoryRepo struct {
	mu     sync.Mutex
	events []Event

	slugChecks   int
	slugExistsFn func(slug string) (taken, handled bool, err error)
	insertFn     func(event Event) error
	sharingFn    func(anchor Event) ([]Event, error)
}

func newInMemoryRepo(seed ...Event) *inMemoryRepo {
	r := &inMemoryRepo{}
	for _, e := range seed {
		r.events = append(r.events, e.clone())
	}
	return r
}

func (r *inMemoryRepo) GetBySlug(_ context.Context, slug string) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Slug == slug {
			return e.clone(), nil
		}
	}
	return Event{}, ErrNotFound
}

func (r *inMemoryRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slugChecks++
	if r.slugExistsFn != nil {
		if taken, handled, err := r.slugExistsFn(slug); handled {
			return taken, err
		}
	}
	for _, e := range r.events {
		if e.Slug == slug && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryRepo) List(context.Context) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, 0, len(r.events))
	for i := len(r.events) - 1; i >= 0; i-- {
		out = append(out, r.events[i].clone())
	}
	return out, nil
}

func (r *inMemoryRepo) ListSharingTags(_ context.Context, anchor Event) ([]Event, error) {
	if r.sharingFn != nil {
		return r.sharingFn(anchor)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, 0)
	for _, e := range r.events {
		if e.ID != anchor.ID && sharesTag(e.Tags, anchor.Tags) {
			out = append(out, e.clone())
		}
	}
	return out, nil
}

func (r *inMemoryRepo) Insert(_ context.Context, event Event) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertFn != nil {
		if err := r.insertFn(event); err != nil {
			return Event{}, err
		}
	}
	for _, e := range r.events {
		if e.Slug == event.Slug {
			return Event{}, ErrDuplicateKey
		}
	}
	now := time.Now().UTC()
	event.CreatedAt, event.UpdatedAt = now, now
	r.events = append(r.events, event.clone())
	return event, nil
}

func (r *inMemoryRepo) Update(_ context.Context, event Event) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := -1
	for i, e := range r.events {
		if e.ID == event.ID {
			idx = i
			continue
		}
		if e.Slug == event.Slug {
			return Event{}, ErrDuplicateKey
		}
	}
	if idx < 0 {
		return Event{}, ErrNotFound
	}
	event.UpdatedAt = time.Now().UTC()
	r.events[idx] = event.clone()
	return event, nil
}

func sharesTag(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	msgs []Notification
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	if msg, ok := payload.(Notification); ok {
		p.msgs = append(p.msgs, msg)
	}
	return p.err
}

type countingMetrics struct {
	mu         sync.Mutex
	collisions int
	retries    int
	failed     []string
}

func (m *countingMetrics) SlugCollision() {
	m.mu.Lock()
	m.collisions++
	m.mu.Unlock()
}

func (m *countingMetrics) DuplicateKeyRetry() {
	m.mu.Lock()
	m.retries++
	m.mu.Unlock()
}

func (m *countingMetrics) NotificationFailed(routingKey string) {
	m.mu.Lock()
	m.failed = append(m.failed, routingKey)
	m.mu.Unlock()
}

func validInput(title string) CreateInput {
	return CreateInput{
		Title:       title,
		Description: "An evening of demos",
		Overview:    "Short overview",
		Image:       "https://cdn.example.com/banner.png",
		Venue:       "Main Hall",
		Location:    "Berlin, DE",
		Date:        "2025-11-15",
		Time:        "18:30",
		Mode:        "hybrid",
		Audience:    "Developers",
		Agenda:      []string{"Welcome", "Talks"},
		Organizer:   "Palmyra",
		Tags:        []string{"ai", "ml"},
	}
}

func storedEvent(slug string, tags ...string) Event {
	return Event{
		ID:          uuid.New(),
		Title:       slug,
		Slug:        slug,
		Description: "d",
		Overview:    "o",
		Image:       "https://cdn.example.com/x.png",
		Venue:       "v",
		Location:    "l",
		Date:        "2025-01-01",
		Time:        "09:00",
		Mode:        ModeOnline,
		Audience:    "a",
		Agenda:      []string{"intro"},
		Organizer:   "org",
		Tags:        tags,
	}
}

func strPtr(s string) *string { return &s }
