package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	events "github.com/zenGate-Global/palmyra-events/domains/events/be/service"
	"github.com/zenGate-Global/palmyra-events/platform/go/requesttrace"
)

type fakeLookup struct {
	events map[string]events.Event
	err    error
}

func (f *fakeLookup) GetEventBySlug(_ context.Context, slug string) (events.Event, bool, error) {
	if f.err != nil {
		return events.Event{}, false, f.err
	}
	e, ok := f.events[slug]
	return e, ok, nil
}

type memoryRepo struct {
	mu       sync.Mutex
	bookings []Booking
}

func (r *memoryRepo) Insert(_ context.Context, booking Booking) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.EventID == booking.EventID && b.Email == booking.Email {
			return Booking{}, ErrConflict
		}
	}
	r.bookings = append(r.bookings, booking)
	return booking, nil
}

func (r *memoryRepo) CountForEvent(_ context.Context, eventID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, b := range r.bookings {
		if b.EventID == eventID {
			count++
		}
	}
	return count, nil
}

type recordingPublisher struct {
	keys []string
	msgs []Notification
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.keys = append(p.keys, routingKey)
	p.msgs = append(p.msgs, payload.(Notification))
	return p.err
}

type countingMetrics struct{ created int }

func (m *countingMetrics) BookingCreated() { m.created++ }

func newFixture(t *testing.T) (Service, *memoryRepo, *recordingPublisher, *countingMetrics, events.Event) {
	t.Helper()

	event := events.Event{ID: uuid.New(), Slug: "tech-talk"}
	repo := &memoryRepo{}
	pub := &recordingPublisher{}
	metrics := &countingMetrics{}
	svc := New(repo, &fakeLookup{events: map[string]events.Event{"tech-talk": event}}, Deps{
		Logger:    zaptest.NewLogger(t),
		Publisher: pub,
		Metrics:   metrics,
	})
	return svc, repo, pub, metrics, event
}

func TestCreate(t *testing.T) {
	t.Parallel()

	svc, _, pub, metrics, event := newFixture(t)
	audit := requesttrace.Anonymous("req-9")

	booking, err := svc.Create(context.Background(), audit, "tech-talk", "  Ada@Example.COM ")
	require.NoError(t, err)
	require.Equal(t, event.ID, booking.EventID)
	require.Equal(t, "ada@example.com", booking.Email)
	require.NotEqual(t, uuid.Nil, booking.ID)

	require.Equal(t, []string{RoutingKeyBookingCreated}, pub.keys)
	require.Equal(t, "tech-talk", pub.msgs[0].EventSlug)
	require.Equal(t, "req-9", pub.msgs[0].RequestID)
	require.Equal(t, 1, metrics.created)

	count, err := svc.Count(context.Background(), "tech-talk")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCreateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		slug    string
		email   string
		wantErr error
	}{
		{name: "unknown event", slug: "ghost", email: "ada@example.com", wantErr: ErrEventNotFound},
		{name: "duplicate booking", slug: "tech-talk", email: "dup@example.com", wantErr: ErrConflict},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _, _, _, _ := newFixture(t)
			_, err := svc.Create(context.Background(), requesttrace.Anonymous(""), "tech-talk", "dup@example.com")
			require.NoError(t, err)

			_, err = svc.Create(context.Background(), requesttrace.Anonymous(""), tc.slug, tc.email)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateRejectsInvalidEmail(t *testing.T) {
	t.Parallel()

	svc, repo, pub, _, _ := newFixture(t)

	for _, email := range []string{"", "   ", "not-an-email", "a@"} {
		_, err := svc.Create(context.Background(), requesttrace.Anonymous(""), "tech-talk", email)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr), "email %q", email)
		require.Contains(t, validationErr.Fields, "email")
	}
	require.Empty(t, repo.bookings)
	require.Empty(t, pub.keys)
}

func TestCreatePublishFailureKeepsBooking(t *testing.T) {
	t.Parallel()

	svc, repo, pub, _, _ := newFixture(t)
	pub.err = errors.New("broker down")

	_, err := svc.Create(context.Background(), requesttrace.Anonymous(""), "tech-talk", "ada@example.com")
	require.NoError(t, err)
	require.Len(t, repo.bookings, 1)
}

func TestCountUnknownEvent(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newFixture(t)
	_, err := svc.Count(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestLookupFailureIsWrapped(t *testing.T) {
	t.Parallel()

	boom := errors.New("timeout")
	svc := New(&memoryRepo{}, &fakeLookup{err: boom}, Deps{})

	_, err := svc.Count(context.Background(), "tech-talk")
	require.ErrorIs(t, err, boom)
}

func TestNewRequiresDependencies(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "bookings repository is required", func() {
		New(nil, &fakeLookup{}, Deps{})
	})
	require.PanicsWithValue(t, "event lookup is required", func() {
		New(&memoryRepo{}, nil, Deps{})
	})
}
