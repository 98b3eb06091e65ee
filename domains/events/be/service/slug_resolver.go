package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SlugChecker answers whether a slug is owned by any event other than excludeID.
type SlugChecker interface {
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

// SlugResolver turns a base slug into one no other event currently owns.
//
// The check is optimistic: a concurrent writer may claim the same slug between the
// check and the commit, in which case the storage constraint rejects the write with
// ErrDuplicateKey.
type SlugResolver struct {
	checker SlugChecker
	metrics Metrics
}

// NewSlugResolver builds a resolver over checker. metrics may be nil.
func NewSlugResolver(checker SlugChecker, metrics Metrics) *SlugResolver {
	if checker == nil {
		panic("slug checker is required")
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &SlugResolver{checker: checker, metrics: metrics}
}

// ResolveUniqueSlug returns baseSlug when free, otherwise the first free candidate of
// baseSlug-1, baseSlug-2, ... The suffix always extends the original base. There is no
// upper bound: thousands of same-titled events cost as many sequential lookups.
func (r *SlugResolver) ResolveUniqueSlug(ctx context.Context, baseSlug string, excludeID uuid.UUID) (string, error) {
	candidate := baseSlug
	for suffix := 1; ; suffix++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		taken, err := r.checker.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("resolve slug %q: %w", baseSlug, err)
		}
		if !taken {
			return candidate, nil
		}

		r.metrics.SlugCollision()
		candidate = fmt.Sprintf("%s-%d", baseSlug, suffix)
	}
}
