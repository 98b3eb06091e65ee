package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	events "github.com/zenGate-Global/palmyra-events/domains/events/be/service"
	"github.com/zenGate-Global/palmyra-events/platform/go/requesttrace"
)

// RoutingKeyBookingCreated is published after a booking is stored.
const RoutingKeyBookingCreated = "booking.created"

// Domain-level error sentinel values.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrConflict      = errors.New("booking already exists")
)

// FieldErrors maps request fields to validation issues.
type FieldErrors map[string][]string

// ValidationError captures input validation problems surfaced by the service.
type ValidationError struct {
	Fields FieldErrors
}

func (v *ValidationError) Error() string {
	return "validation error"
}

// Booking is a reservation of one attendee email for one event.
type Booking struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"eventId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification is the payload published for a new booking.
type Notification struct {
	Booking   Booking `json:"booking"`
	EventSlug string  `json:"eventSlug"`
	ActorKind string  `json:"actorKind"`
	RequestID string  `json:"requestId,omitempty"`
}

// EventLookup resolves the event a booking refers to.
type EventLookup interface {
	GetEventBySlug(ctx context.Context, slug string) (events.Event, bool, error)
}

// Repository abstracts booking persistence. Insert reports a missing event as ErrEventNotFound
// and a repeated (event, email) pair as ErrConflict.
type Repository interface {
	Insert(ctx context.Context, booking Booking) (Booking, error)
	CountForEvent(ctx context.Context, eventID uuid.UUID) (int, error)
}

// Publisher announces stored bookings.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Metrics counts stored bookings.
type Metrics interface {
	BookingCreated()
}

// Deps groups the optional collaborators of the bookings service.
type Deps struct {
	Logger    *zap.Logger
	Publisher Publisher
	Metrics   Metrics
}

// Service defines the business operations for the bookings domain.
type Service interface {
	Create(ctx context.Context, audit requesttrace.AuditInfo, eventSlug, email string) (Booking, error)
	Count(ctx context.Context, eventSlug string) (int, error)
}

type service struct {
	repo     Repository
	events   EventLookup
	validate *validator.Validate
	deps     Deps
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

type noopMetrics struct{}

func (noopMetrics) BookingCreated() {}

// New constructs a bookings Service.
func New(repo Repository, lookup EventLookup, deps Deps) Service {
	if repo == nil {
		panic("bookings repository is required")
	}
	if lookup == nil {
		panic("event lookup is required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Publisher == nil {
		deps.Publisher = noopPublisher{}
	}
	if deps.Metrics == nil {
		deps.Metrics = noopMetrics{}
	}

	return &service{repo: repo, events: lookup, validate: validator.New(), deps: deps}
}

func (s *service) Create(ctx context.Context, audit requesttrace.AuditInfo, eventSlug, email string) (Booking, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validate.Var(email, "required,email"); err != nil {
		return Booking{}, &ValidationError{Fields: FieldErrors{"email": {"Please provide a valid email address"}}}
	}

	event, err := s.resolveEvent(ctx, eventSlug)
	if err != nil {
		return Booking{}, err
	}

	created, err := s.repo.Insert(ctx, Booking{ID: uuid.New(), EventID: event.ID, Email: email})
	if err != nil {
		return Booking{}, err
	}

	s.deps.Metrics.BookingCreated()
	msg := Notification{
		Booking:   created,
		EventSlug: event.Slug,
		ActorKind: string(audit.ActorKind),
		RequestID: audit.RequestID,
	}
	if err := s.deps.Publisher.Publish(ctx, RoutingKeyBookingCreated, msg); err != nil {
		s.deps.Logger.Error("publish booking notification failed",
			zap.String("booking_id", created.ID.String()),
			zap.Error(err),
		)
	}

	return created, nil
}

func (s *service) Count(ctx context.Context, eventSlug string) (int, error) {
	event, err := s.resolveEvent(ctx, eventSlug)
	if err != nil {
		return 0, err
	}
	return s.repo.CountForEvent(ctx, event.ID)
}

func (s *service) resolveEvent(ctx context.Context, slug string) (events.Event, error) {
	event, found, err := s.events.GetEventBySlug(ctx, slug)
	if err != nil {
		return events.Event{}, fmt.Errorf("resolve event: %w", err)
	}
	if !found {
		return events.Event{}, ErrEventNotFound
	}
	return event, nil
}
