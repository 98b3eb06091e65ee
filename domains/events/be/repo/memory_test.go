package repo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zenGate-Global/palmyra-events/domains/events/be/service"
)

func newEvent(slug string, tags ...string) service.Event {
	return service.Event{
		ID:          uuid.New(),
		Title:       slug,
		Slug:        slug,
		Description: "desc",
		Overview:    "overview",
		Image:       "https://cdn.example.com/banner.png",
		Venue:       "Main Hall",
		Location:    "Lisbon",
		Date:        "2025-01-01",
		Time:        "09:00",
		Mode:        service.ModeOffline,
		Audience:    "Developers",
		Agenda:      []string{"Intro"},
		Organizer:   "Palmyra",
		Tags:        tags,
	}
}

func TestMemoryRepositoryInsertAndLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()

	stored, err := repo.Insert(ctx, newEvent("tech-talk", "go"))
	require.NoError(t, err)
	require.False(t, stored.CreatedAt.IsZero())
	require.Equal(t, stored.CreatedAt, stored.UpdatedAt)

	got, err := repo.GetBySlug(ctx, "tech-talk")
	require.NoError(t, err)
	require.Equal(t, stored, got)

	_, err = repo.GetBySlug(ctx, "Tech-Talk")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = repo.Insert(ctx, newEvent("tech-talk", "rust"))
	require.ErrorIs(t, err, service.ErrDuplicateKey)
}

func TestMemoryRepositorySlugExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()
	stored, err := repo.Insert(ctx, newEvent("tech-talk", "go"))
	require.NoError(t, err)

	taken, err := repo.SlugExists(ctx, "tech-talk", uuid.Nil)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.SlugExists(ctx, "tech-talk", stored.ID)
	require.NoError(t, err)
	require.False(t, taken)

	taken, err = repo.SlugExists(ctx, "tech-talk-1", uuid.Nil)
	require.NoError(t, err)
	require.False(t, taken)
}

func TestMemoryRepositoryUpdateMovesSlug(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()
	stored, err := repo.Insert(ctx, newEvent("tech-talk", "go"))
	require.NoError(t, err)
	other, err := repo.Insert(ctx, newEvent("rust-night", "rust"))
	require.NoError(t, err)

	stored.Slug = "go-night"
	stored.Venue = "Annex"
	updated, err := repo.Update(ctx, stored)
	require.NoError(t, err)
	require.Equal(t, "Annex", updated.Venue)
	require.Equal(t, stored.CreatedAt, updated.CreatedAt)

	_, err = repo.GetBySlug(ctx, "tech-talk")
	require.ErrorIs(t, err, service.ErrNotFound)

	other.Slug = "go-night"
	_, err = repo.Update(ctx, other)
	require.ErrorIs(t, err, service.ErrDuplicateKey)

	_, err = repo.Update(ctx, newEvent("ghost"))
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestMemoryRepositoryOrdering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()

	anchor, err := repo.Insert(ctx, newEvent("anchor", "ai", "ml"))
	require.NoError(t, err)
	for _, e := range []service.Event{
		newEvent("first", "ml"),
		newEvent("unrelated", "cooking"),
		newEvent("second", "ai"),
	} {
		_, err := repo.Insert(ctx, e)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"second", "unrelated", "first", "anchor"}, slugs(all))

	similar, err := repo.ListSharingTags(ctx, anchor)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, slugs(similar))

	none, err := repo.ListSharingTags(ctx, newEvent("lonely", "knitting"))
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()
	stored, err := repo.Insert(ctx, newEvent("tech-talk", "go"))
	require.NoError(t, err)

	stored.Tags[0] = "mutated"

	got, err := repo.GetBySlug(ctx, "tech-talk")
	require.NoError(t, err)
	require.Equal(t, []string{"go"}, got.Tags)
}

func slugs(events []service.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Slug)
	}
	return out
}
