package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zenGate-Global/palmyra-events/platform/go/normalize"
)

func newTestLifecycle(repo *inMemoryRepo) *Lifecycle {
	return NewLifecycle(NewSlugResolver(repo, nil))
}

func TestPrepareForWriteCreateDerivesIdentity(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepo(storedEvent("launch-party"))
	input := validInput("  Launch Party ")
	input.Date = "November 15, 2025"
	input.Time = "6:30 pm"
	input.Tags = []string{" ai", "ml", "ai", ""}

	got, err := newTestLifecycle(repo).PrepareForWrite(context.Background(), nil, input.changes())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, got.ID)
	require.Equal(t, "Launch Party", got.Title)
	require.Equal(t, "launch-party-1", got.Slug)
	require.Equal(t, "2025-11-15", got.Date)
	require.Equal(t, "18:30", got.Time)
	require.Equal(t, ModeHybrid, got.Mode)
	require.Equal(t, []string{"ai", "ml"}, got.Tags)
}

func TestPrepareForWriteUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		changes    Changes
		wantSlug   string
		wantDate   string
		wantTime   string
		wantChecks int
	}{
		{
			name:     "unrelated change keeps derived fields",
			changes:  Changes{Venue: strPtr("Annex")},
			wantSlug: "tech-talk",
			wantDate: "2025-01-01",
			wantTime: "09:00",
		},
		{
			name:     "same title does not recompute slug",
			changes:  Changes{Title: strPtr("tech-talk ")},
			wantSlug: "tech-talk",
			wantDate: "2025-01-01",
			wantTime: "09:00",
		},
		{
			name:       "new title recomputes slug",
			changes:    Changes{Title: strPtr("Tech Talk: AI & Future!")},
			wantSlug:   "tech-talk-ai-future",
			wantDate:   "2025-01-01",
			wantTime:   "09:00",
			wantChecks: 1,
		},
		{
			name:     "new date is normalized",
			changes:  Changes{Date: strPtr("2025/12/01")},
			wantSlug: "tech-talk",
			wantDate: "2025-12-01",
			wantTime: "09:00",
		},
		{
			name:     "new time is normalized",
			changes:  Changes{Time: strPtr("12:05 AM")},
			wantSlug: "tech-talk",
			wantDate: "2025-01-01",
			wantTime: "00:05",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			existing := storedEvent("tech-talk", "go")
			repo := newInMemoryRepo(existing)

			got, err := newTestLifecycle(repo).PrepareForWrite(context.Background(), &existing, tc.changes)
			require.NoError(t, err)
			require.Equal(t, existing.ID, got.ID)
			require.Equal(t, tc.wantSlug, got.Slug)
			require.Equal(t, tc.wantDate, got.Date)
			require.Equal(t, tc.wantTime, got.Time)
			require.Equal(t, tc.wantChecks, repo.slugChecks)
		})
	}
}

func TestPrepareForWriteRetitleKeepsOwnSlug(t *testing.T) {
	t.Parallel()

	existing := storedEvent("launch-party", "go")
	existing.Title = "Launch party"
	repo := newInMemoryRepo(existing)

	got, err := newTestLifecycle(repo).PrepareForWrite(context.Background(), &existing, Changes{Title: strPtr("Launch Party")})
	require.NoError(t, err)
	require.Equal(t, "launch-party", got.Slug)
}

func TestPrepareForWriteAborts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*CreateInput)
		wantField string
		invalid   bool
	}{
		{name: "unparseable date", mutate: func(in *CreateInput) { in.Date = "not-a-date" }, wantField: "date", invalid: true},
		{name: "unparseable time", mutate: func(in *CreateInput) { in.Time = "25:00" }, wantField: "time", invalid: true},
		{name: "missing tags", mutate: func(in *CreateInput) { in.Tags = []string{" "} }, wantField: "tags"},
		{name: "unknown mode", mutate: func(in *CreateInput) { in.Mode = "virtual" }, wantField: "mode"},
		{name: "image not a url", mutate: func(in *CreateInput) { in.Image = "banner" }, wantField: "image"},
		{name: "title without slug characters", mutate: func(in *CreateInput) { in.Title = "!!!" }, wantField: "title"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			input := validInput("Tech Talk")
			tc.mutate(&input)

			got, err := newTestLifecycle(newInMemoryRepo()).PrepareForWrite(context.Background(), nil, input.changes())
			require.Error(t, err)
			require.Equal(t, Event{}, got)

			if tc.invalid {
				var formatErr *normalize.InvalidFormatError
				require.True(t, errors.As(err, &formatErr))
				require.Equal(t, tc.wantField, formatErr.Field)
				require.ErrorIs(t, err, normalize.ErrInvalidFormat)
				return
			}

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			require.Contains(t, validationErr.Fields, tc.wantField)
		})
	}
}

func TestPrepareForWriteDoesNotMutateExisting(t *testing.T) {
	t.Parallel()

	existing := storedEvent("tech-talk", "go")
	snapshot := existing.clone()
	tags := []string{"rust"}

	_, err := newTestLifecycle(newInMemoryRepo(existing)).PrepareForWrite(context.Background(), &existing, Changes{
		Title: strPtr("Rust Night"),
		Tags:  &tags,
	})
	require.NoError(t, err)
	require.Equal(t, snapshot, existing)
}
