package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zenGate-Global/palmyra-events/domains/bookings/be/service"
	bookings "github.com/zenGate-Global/palmyra-events/generated/go/bookings"
	"github.com/zenGate-Global/palmyra-events/platform/go/requesttrace"
)

type mockService struct {
	createFn func(ctx context.Context, audit requesttrace.AuditInfo, eventSlug, email string) (service.Booking, error)
	countFn  func(ctx context.Context, eventSlug string) (int, error)
}

func (m *mockService) Create(ctx context.Context, audit requesttrace.AuditInfo, eventSlug, email string) (service.Booking, error) {
	if m.createFn == nil {
		panic("createFn not configured")
	}
	return m.createFn(ctx, audit, eventSlug, email)
}

func (m *mockService) Count(ctx context.Context, eventSlug string) (int, error) {
	if m.countFn == nil {
		panic("countFn not configured")
	}
	return m.countFn(ctx, eventSlug)
}

func TestBookingsCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantField  string
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{
			name:       "invalid email",
			err:        &service.ValidationError{Fields: service.FieldErrors{"email": {"Please provide a valid email address"}}},
			wantStatus: http.StatusBadRequest,
			wantField:  "email",
		},
		{name: "unknown event", err: service.ErrEventNotFound, wantStatus: http.StatusNotFound},
		{name: "already booked", err: service.ErrConflict, wantStatus: http.StatusConflict},
		{name: "storage failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mockService{createFn: func(_ context.Context, _ requesttrace.AuditInfo, slug, email string) (service.Booking, error) {
				require.Equal(t, "tech-talk", slug)
				if tc.err != nil {
					return service.Booking{}, tc.err
				}
				return service.Booking{ID: uuid.New(), EventID: uuid.New(), Email: email}, nil
			}}
			h := New(svc, zaptest.NewLogger(t))

			resp, err := h.BookingsCreate(context.Background(), bookings.BookingsCreateRequestObject{
				Slug: "tech-talk",
				Body: &bookings.BookingCreate{Email: "ada@example.com"},
			})
			require.NoError(t, err)

			if tc.wantStatus == http.StatusCreated {
				success, ok := resp.(bookings.BookingsCreate201JSONResponse)
				require.True(t, ok)
				require.Equal(t, "Booking created successfully", success.Message)
				require.Equal(t, "ada@example.com", success.Booking.Email)
				return
			}

			problem, ok := resp.(bookings.BookingsCreatedefaultApplicationProblemPlusJSONResponse)
			require.True(t, ok)
			require.Equal(t, tc.wantStatus, problem.StatusCode)
			if tc.wantField != "" {
				require.NotNil(t, problem.Body.Errors)
				require.Contains(t, *problem.Body.Errors, tc.wantField)
			}
		})
	}
}

func TestBookingsCreateMissingBody(t *testing.T) {
	t.Parallel()

	h := New(&mockService{}, zaptest.NewLogger(t))

	resp, err := h.BookingsCreate(context.Background(), bookings.BookingsCreateRequestObject{Slug: "tech-talk"})
	require.NoError(t, err)

	problem, ok := resp.(bookings.BookingsCreatedefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, problem.StatusCode)
}

func TestBookingsCount(t *testing.T) {
	t.Parallel()

	svc := &mockService{countFn: func(_ context.Context, slug string) (int, error) {
		if slug == "ghost" {
			return 0, service.ErrEventNotFound
		}
		return 7, nil
	}}
	h := New(svc, zaptest.NewLogger(t))

	resp, err := h.BookingsCount(context.Background(), bookings.BookingsCountRequestObject{Slug: "tech-talk"})
	require.NoError(t, err)
	success, ok := resp.(bookings.BookingsCount200JSONResponse)
	require.True(t, ok)
	require.Equal(t, 7, success.Count)

	resp, err = h.BookingsCount(context.Background(), bookings.BookingsCountRequestObject{Slug: "ghost"})
	require.NoError(t, err)
	problem, ok := resp.(bookings.BookingsCountdefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, problem.StatusCode)
}

func TestStrictHandlerServesBookingRoutes(t *testing.T) {
	t.Parallel()

	svc := &mockService{
		countFn: func(context.Context, string) (int, error) { return 3, nil },
		createFn: func(_ context.Context, _ requesttrace.AuditInfo, _, email string) (service.Booking, error) {
			return service.Booking{ID: uuid.New(), EventID: uuid.New(), Email: email}, nil
		},
	}

	r := chi.NewRouter()
	_ = bookings.HandlerWithOptions(bookings.NewStrictHandler(New(svc, zaptest.NewLogger(t)), nil), bookings.ChiServerOptions{BaseRouter: r})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events/tech-talk/bookings/count", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"count":3}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/events/tech-talk/bookings", strings.NewReader(`{"email":"ada@example.com"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"email":"ada@example.com"`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/events/tech-talk/bookings", strings.NewReader(`{"email":`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
