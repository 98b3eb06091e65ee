package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/zenGate-Global/palmyra-events/platform/go/requesttrace"
)

// Routing keys used when announcing committed writes.
const (
	RoutingKeyEventCreated = "event.created"
	RoutingKeyEventUpdated = "event.updated"
)

// UpdateInput lists the fields an administrator may change. Nil members are left as stored.
type UpdateInput = Changes

// Notification is the payload published after a committed write.
type Notification struct {
	Event     Event  `json:"event"`
	ActorKind string `json:"actorKind"`
	UserID    string `json:"userId,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Repository abstracts event persistence. Insert and Update accept prepared records only
// and report slug collisions as ErrDuplicateKey.
type Repository interface {
	EventReader
	SlugChecker
	List(ctx context.Context) ([]Event, error)
	Insert(ctx context.Context, event Event) (Event, error)
	Update(ctx context.Context, event Event) (Event, error)
}

// Service defines the business operations for the events domain.
type Service interface {
	List(ctx context.Context) ([]Event, error)
	GetEventBySlug(ctx context.Context, slug string) (Event, bool, error)
	GetSimilarEventsBySlug(ctx context.Context, slug string) []Event
	Create(ctx context.Context, audit requesttrace.AuditInfo, input CreateInput) (Event, error)
	Update(ctx context.Context, audit requesttrace.AuditInfo, slug string, input UpdateInput) (Event, error)
}

type service struct {
	repo      Repository
	lifecycle *Lifecycle
	lookup    *Lookup
	deps      Deps
}

// New constructs an events Service backed by repo.
func New(repo Repository, deps Deps) Service {
	if repo == nil {
		panic("events repository is required")
	}
	deps = deps.withDefaults()

	return &service{
		repo:      repo,
		lifecycle: NewLifecycle(NewSlugResolver(repo, deps.Metrics)),
		lookup:    NewLookup(repo),
		deps:      deps,
	}
}

func (s *service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *service) GetEventBySlug(ctx context.Context, slug string) (Event, bool, error) {
	return s.lookup.FindBySlug(ctx, slug)
}

func (s *service) GetSimilarEventsBySlug(ctx context.Context, slug string) []Event {
	similar, err := s.lookup.FindSimilar(ctx, slug)
	if err != nil {
		s.deps.Logger.Warn("similar events lookup failed", zap.String("slug", slug), zap.Error(err))
		return []Event{}
	}
	return similar
}

func (s *service) Create(ctx context.Context, audit requesttrace.AuditInfo, input CreateInput) (Event, error) {
	changes := input.changes()

	var created Event
	err := s.withSlugRetry(ctx, "create", true, func() error {
		prepared, err := s.lifecycle.PrepareForWrite(ctx, nil, changes)
		if err != nil {
			return err
		}
		created, err = s.repo.Insert(ctx, prepared)
		return err
	})
	if err != nil {
		return Event{}, err
	}

	s.publish(ctx, audit, RoutingKeyEventCreated, created)
	return created, nil
}

func (s *service) Update(ctx context.Context, audit requesttrace.AuditInfo, slug string, input UpdateInput) (Event, error) {
	current, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return Event{}, err
	}
	if input.empty() {
		return current, nil
	}

	derivesSlug := input.Title != nil && strings.TrimSpace(*input.Title) != current.Title

	var updated Event
	err = s.withSlugRetry(ctx, "update", derivesSlug, func() error {
		prepared, err := s.lifecycle.PrepareForWrite(ctx, &current, input)
		if err != nil {
			return err
		}
		updated, err = s.repo.Update(ctx, prepared)
		return err
	})
	if err != nil {
		return Event{}, err
	}

	s.publish(ctx, audit, RoutingKeyEventUpdated, updated)
	return updated, nil
}

// withSlugRetry runs write until it succeeds or fails with anything other than a slug
// collision. Collisions are retried with a fresh resolution pass, up to the configured
// number of attempts, only when the write derives the slug itself.
func (s *service) withSlugRetry(ctx context.Context, op string, derivesSlug bool, write func() error) error {
	for attempt := 1; ; attempt++ {
		err := write()
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrDuplicateKey) || !derivesSlug || attempt >= s.deps.WriteAttempts {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		s.deps.Metrics.DuplicateKeyRetry()
		s.deps.Logger.Info("slug claimed concurrently, retrying",
			zap.String("operation", op),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.deps.WriteAttempts),
		)
	}
}

func (s *service) publish(ctx context.Context, audit requesttrace.AuditInfo, routingKey string, event Event) {
	msg := Notification{
		Event:     event,
		ActorKind: string(audit.ActorKind),
		RequestID: audit.RequestID,
	}
	if audit.UserID != nil {
		msg.UserID = *audit.UserID
	}

	if err := s.deps.Publisher.Publish(ctx, routingKey, msg); err != nil {
		s.deps.Metrics.NotificationFailed(routingKey)
		s.deps.Logger.Error("publish event notification failed",
			zap.String("routing_key", routingKey),
			zap.String("event_id", event.ID.String()),
			zap.Error(err),
		)
	}
}
