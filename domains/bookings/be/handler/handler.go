package handler

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/zenGate-Global/palmyra-events/domains/bookings/be/service"
	bookings "github.com/zenGate-Global/palmyra-events/generated/go/bookings"
	"github.com/zenGate-Global/palmyra-events/generated/go/common/problemdetails"
	platformlogging "github.com/zenGate-Global/palmyra-events/platform/go/logging"
	"github.com/zenGate-Global/palmyra-events/platform/go/problem"
	"github.com/zenGate-Global/palmyra-events/platform/go/requesttrace"
)

type operation string

const (
	createOperation operation = "bookingsCreate"
	countOperation  operation = "bookingsCount"
)

var _ bookings.StrictServerInterface = (*Handler)(nil)

// Handler wires the bookings service to the generated HTTP contract.
type Handler struct {
	svc    service.Service
	logger *zap.Logger
}

// New constructs a Handler instance.
func New(svc service.Service, logger *zap.Logger) *Handler {
	if svc == nil {
		panic("bookings service is required")
	}
	if logger == nil {
		panic("logger is required")
	}

	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) BookingsCreate(ctx context.Context, request bookings.BookingsCreateRequestObject) (bookings.BookingsCreateResponseObject, error) {
	if request.Body == nil {
		details := problem.New(http.StatusBadRequest, problem.TypeValidation, "Invalid request body", "request body is required", nil)
		return bookings.BookingsCreatedefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: http.StatusBadRequest}, nil
	}

	booking, err := h.svc.Create(ctx, requesttrace.FromContextOrAnonymous(ctx), request.Slug, request.Body.Email)
	if err != nil {
		status, details := h.problemForError(ctx, err, createOperation)
		return bookings.BookingsCreatedefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: status}, nil
	}

	return bookings.BookingsCreate201JSONResponse{Message: "Booking created successfully", Booking: toAPIBooking(booking)}, nil
}

func (h *Handler) BookingsCount(ctx context.Context, request bookings.BookingsCountRequestObject) (bookings.BookingsCountResponseObject, error) {
	count, err := h.svc.Count(ctx, request.Slug)
	if err != nil {
		status, details := h.problemForError(ctx, err, countOperation)
		return bookings.BookingsCountdefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: status}, nil
	}

	return bookings.BookingsCount200JSONResponse{Count: count}, nil
}

func toAPIBooking(booking service.Booking) bookings.Booking {
	return bookings.Booking{
		Id:        booking.ID,
		EventId:   booking.EventID,
		Email:     booking.Email,
		CreatedAt: booking.CreatedAt,
	}
}

func (h *Handler) problemForError(ctx context.Context, err error, op operation) (int, problemdetails.ProblemDetails) {
	status, title, detail, problemType, fields := classifyError(err)

	logger := h.loggerFrom(ctx)
	fieldsForLog := []zap.Field{
		zap.String("operation", string(op)),
		zap.Int("status", status),
		zap.Error(err),
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("bookings operation failed", fieldsForLog...)
	case status == http.StatusNotFound:
		logger.Info("bookings resource not found", fieldsForLog...)
	default:
		logger.Warn("bookings request rejected", fieldsForLog...)
	}

	return status, problem.New(status, problemType, title, detail, fields)
}

func classifyError(err error) (status int, title, detail, problemType string, fieldErrors service.FieldErrors) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "Validation failed", "one or more fields are invalid", problem.TypeValidation, validationErr.Fields
	case errors.Is(err, service.ErrEventNotFound):
		return http.StatusNotFound, "Resource not found", "event not found", problem.TypeNotFound, nil
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, "Conflict", "this email has already booked the event", problem.TypeConflict, nil
	default:
		return http.StatusInternalServerError, "Internal server error", "an unexpected error occurred", problem.TypeInternal, nil
	}
}

func (h *Handler) loggerFrom(ctx context.Context) *zap.Logger {
	if logger, ok := platformlogging.FromContext(ctx); ok {
		return logger
	}
	return h.logger
}
