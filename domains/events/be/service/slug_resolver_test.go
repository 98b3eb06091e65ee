package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestResolveUniqueSlug(t *testing.T) {
	t.Parallel()

	self := storedEvent("launch-party")

	tests := []struct {
		name       string
		existing   []Event
		base       string
		excludeID  uuid.UUID
		want       string
		collisions int
	}{
		{
			name: "free base is returned as is",
			base: "launch-party",
			want: "launch-party",
		},
		{
			name:       "taken base gets first suffix",
			existing:   []Event{storedEvent("launch-party")},
			base:       "launch-party",
			want:       "launch-party-1",
			collisions: 1,
		},
		{
			name:       "suffix always extends the original base",
			existing:   []Event{storedEvent("launch-party"), storedEvent("launch-party-1"), storedEvent("launch-party-2")},
			base:       "launch-party",
			want:       "launch-party-3",
			collisions: 3,
		},
		{
			name:      "own slug does not count as a collision",
			existing:  []Event{self},
			base:      "launch-party",
			excludeID: self.ID,
			want:      "launch-party",
		},
		{
			name:       "gap in suffixes is reused",
			existing:   []Event{storedEvent("demo"), storedEvent("demo-2")},
			base:       "demo",
			want:       "demo-1",
			collisions: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			metrics := &countingMetrics{}
			resolver := NewSlugResolver(newInMemoryRepo(tc.existing...), metrics)

			got, err := resolver.ResolveUniqueSlug(context.Background(), tc.base, tc.excludeID)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.collisions, metrics.collisions)
		})
	}
}

func TestResolveUniqueSlugPropagatesStorageErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	repo := newInMemoryRepo()
	repo.slugExistsFn = func(string) (bool, bool, error) { return false, true, boom }

	_, err := NewSlugResolver(repo, nil).ResolveUniqueSlug(context.Background(), "demo", uuid.Nil)
	require.ErrorIs(t, err, boom)
}

func TestResolveUniqueSlugStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepo()
	repo.slugExistsFn = func(string) (bool, bool, error) { return true, true, nil }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSlugResolver(repo, nil).ResolveUniqueSlug(ctx, "demo", uuid.Nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, repo.slugChecks)
}

func TestNewSlugResolverRequiresChecker(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "slug checker is required", func() {
		NewSlugResolver(nil, nil)
	})
}
