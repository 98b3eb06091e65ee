package service

import (
	"context"

	"go.uber.org/zap"
)

// Publisher announces committed writes to downstream consumers.
// Publish is called after the write is durable; a failure is logged, never rolled back.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Metrics receives counters from the identity pipeline and the publisher.
type Metrics interface {
	SlugCollision()
	DuplicateKeyRetry()
	NotificationFailed(routingKey string)
}

// Deps groups the optional collaborators of the events service.
// Nil members fall back to no-op implementations.
type Deps struct {
	Logger    *zap.Logger
	Publisher Publisher
	Metrics   Metrics
	// WriteAttempts bounds how many times a create/update re-resolves its slug after the
	// storage uniqueness constraint rejects it. Values below 1 mean a single attempt.
	WriteAttempts int
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

type noopMetrics struct{}

func (noopMetrics) SlugCollision()            {}
func (noopMetrics) DuplicateKeyRetry()        {}
func (noopMetrics) NotificationFailed(string) {}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Publisher == nil {
		d.Publisher = noopPublisher{}
	}
	if d.Metrics == nil {
		d.Metrics = noopMetrics{}
	}
	if d.WriteAttempts < 1 {
		d.WriteAttempts = 1
	}
	return d
}
