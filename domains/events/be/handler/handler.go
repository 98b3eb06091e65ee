package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/zenGate-Global/palmyra-events/domains/events/be/service"
	"github.com/zenGate-Global/palmyra-events/generated/go/common/problemdetails"
	events "github.com/zenGate-Global/palmyra-events/generated/go/events"
	platformlogging "github.com/zenGate-Global/palmyra-events/platform/go/logging"
	"github.com/zenGate-Global/palmyra-events/platform/go/normalize"
	"github.com/zenGate-Global/palmyra-events/platform/go/problem"
	"github.com/zenGate-Global/palmyra-events/platform/go/requesttrace"
	"github.com/zenGate-Global/palmyra-events/platform/go/storage"
)

const (
	messageRetrieved = "Event retrieved successfully"
	messageCreated   = "Event created successfully"
	messageUpdated   = "Event updated successfully"
)

type operation string

const (
	listOperation     operation = "eventsList"
	getOperation      operation = "eventsGet"
	similarOperation  operation = "eventsSimilar"
	createOperation   operation = "eventsCreate"
	updateOperation   operation = "eventsUpdate"
	imageOperation    operation = "eventsUploadImage"
	calendarOperation operation = "eventsCalendar"
)

var _ events.StrictServerInterface = (*Handler)(nil)

// Handler wires the events service to the generated HTTP contract. Calendar export and
// banner uploads carry binary payloads and are plain http handlers.
type Handler struct {
	svc    service.Service
	blobs  storage.BlobStore
	logger *zap.Logger
}

// New constructs a Handler instance. blobs may be nil, in which case banner uploads are rejected.
func New(svc service.Service, blobs storage.BlobStore, logger *zap.Logger) *Handler {
	if svc == nil {
		panic("events service is required")
	}
	if logger == nil {
		panic("logger is required")
	}

	return &Handler{svc: svc, blobs: blobs, logger: logger}
}

func (h *Handler) EventsList(ctx context.Context, _ events.EventsListRequestObject) (events.EventsListResponseObject, error) {
	result, err := h.svc.List(ctx)
	if err != nil {
		status, details := h.problemForError(ctx, err, listOperation)
		return events.EventsListdefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: status}, nil
	}

	return events.EventsList200JSONResponse{Items: toAPIEvents(result)}, nil
}

func (h *Handler) EventsGet(ctx context.Context, request events.EventsGetRequestObject) (events.EventsGetResponseObject, error) {
	if !normalize.ValidSlug(request.Slug) {
		details := h.rejected(ctx, getOperation, http.StatusBadRequest, problem.TypeValidation, "Invalid slug",
			"Invalid slug format. Slug must be URL-safe (lowercase letters, digits, hyphens and underscores).")
		return events.EventsGetdefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: http.StatusBadRequest}, nil
	}

	event, found, err := h.svc.GetEventBySlug(ctx, request.Slug)
	if err != nil {
		status, details := h.problemForError(ctx, err, getOperation)
		return events.EventsGetdefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: status}, nil
	}
	if !found {
		details := h.rejected(ctx, getOperation, http.StatusNotFound, problem.TypeNotFound, "Resource not found",
			fmt.Sprintf("Event with slug '%s' not found", request.Slug))
		return events.EventsGetdefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: http.StatusNotFound}, nil
	}

	return events.EventsGet200JSONResponse{Message: messageRetrieved, Event: toAPIEvent(event)}, nil
}

// EventsSimilar never fails; lookup errors degrade to an empty list inside the service.
func (h *Handler) EventsSimilar(ctx context.Context, request events.EventsSimilarRequestObject) (events.EventsSimilarResponseObject, error) {
	return events.EventsSimilar200JSONResponse{Items: toAPIEvents(h.svc.GetSimilarEventsBySlug(ctx, request.Slug))}, nil
}

func (h *Handler) EventsCreate(ctx context.Context, request events.EventsCreateRequestObject) (events.EventsCreateResponseObject, error) {
	if request.Body == nil {
		details := h.rejected(ctx, createOperation, http.StatusBadRequest, problem.TypeValidation, "Invalid request body", "request body is required")
		return events.EventsCreatedefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: http.StatusBadRequest}, nil
	}

	created, err := h.svc.Create(ctx, requesttrace.FromContextOrAnonymous(ctx), toServiceCreateInput(request.Body))
	if err != nil {
		status, details := h.problemForError(ctx, err, createOperation)
		return events.EventsCreatedefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: status}, nil
	}

	location := fmt.Sprintf("/api/v1/events/%s", created.Slug)

	return events.EventsCreate201JSONResponse{
		Headers: events.EventsCreate201ResponseHeaders{Location: location},
		Body:    events.EventEnvelope{Message: messageCreated, Event: toAPIEvent(created)},
	}, nil
}

func (h *Handler) EventsUpdate(ctx context.Context, request events.EventsUpdateRequestObject) (events.EventsUpdateResponseObject, error) {
	if request.Body == nil {
		details := h.rejected(ctx, updateOperation, http.StatusBadRequest, problem.TypeValidation, "Invalid request body", "request body is required")
		return events.EventsUpdatedefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: http.StatusBadRequest}, nil
	}

	updated, err := h.svc.Update(ctx, requesttrace.FromContextOrAnonymous(ctx), request.Slug, toServiceUpdateInput(request.Body))
	if err != nil {
		status, details := h.problemForError(ctx, err, updateOperation)
		return events.EventsUpdatedefaultApplicationProblemPlusJSONResponse{Body: details, StatusCode: status}, nil
	}

	return events.EventsUpdate200JSONResponse{Message: messageUpdated, Event: toAPIEvent(updated)}, nil
}

func toAPIEvent(event service.Event) events.Event {
	return events.Event{
		Id:          event.ID,
		Title:       event.Title,
		Slug:        event.Slug,
		Description: event.Description,
		Overview:    event.Overview,
		Image:       event.Image,
		Venue:       event.Venue,
		Location:    event.Location,
		Date:        event.Date,
		Time:        event.Time,
		Mode:        events.Mode(event.Mode),
		Audience:    event.Audience,
		Agenda:      nonNil(event.Agenda),
		Organizer:   event.Organizer,
		Tags:        nonNil(event.Tags),
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

func toAPIEvents(list []service.Event) []events.Event {
	items := make([]events.Event, 0, len(list))
	for _, event := range list {
		items = append(items, toAPIEvent(event))
	}
	return items
}

func toServiceCreateInput(body *events.EventCreate) service.CreateInput {
	return service.CreateInput{
		Title:       body.Title,
		Description: body.Description,
		Overview:    body.Overview,
		Image:       body.Image,
		Venue:       body.Venue,
		Location:    body.Location,
		Date:        body.Date,
		Time:        body.Time,
		Mode:        string(body.Mode),
		Audience:    body.Audience,
		Agenda:      body.Agenda,
		Organizer:   body.Organizer,
		Tags:        body.Tags,
	}
}

func toServiceUpdateInput(body *events.EventUpdate) service.UpdateInput {
	input := service.UpdateInput{
		Title:       body.Title,
		Description: body.Description,
		Overview:    body.Overview,
		Image:       body.Image,
		Venue:       body.Venue,
		Location:    body.Location,
		Date:        body.Date,
		Time:        body.Time,
		Audience:    body.Audience,
		Agenda:      body.Agenda,
		Organizer:   body.Organizer,
		Tags:        body.Tags,
	}

	if body.Mode != nil {
		mode := string(*body.Mode)
		input.Mode = &mode
	}

	return input
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// rejected logs and builds a problem for a failure detected by the handler itself.
func (h *Handler) rejected(ctx context.Context, op operation, status int, problemType, title, detail string) problemdetails.ProblemDetails {
	h.logOutcome(ctx, op, status, errors.New(detail))
	return problem.New(status, problemType, title, detail, nil)
}

func (h *Handler) problemForError(ctx context.Context, err error, op operation) (int, problemdetails.ProblemDetails) {
	status, title, detail, problemType, fields := classifyError(err)
	h.logOutcome(ctx, op, status, err)
	return status, problem.New(status, problemType, title, detail, fields)
}

func (h *Handler) logOutcome(ctx context.Context, op operation, status int, err error) {
	logger := h.loggerFrom(ctx)
	fieldsForLog := []zap.Field{
		zap.String("operation", string(op)),
		zap.Int("status", status),
		zap.Error(err),
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("events operation failed", fieldsForLog...)
	case status == http.StatusNotFound:
		logger.Info("events resource not found", fieldsForLog...)
	default:
		logger.Warn("events request rejected", fieldsForLog...)
	}
}

func classifyError(err error) (status int, title, detail, problemType string, fieldErrors service.FieldErrors) {
	var validationErr *service.ValidationError
	var formatErr *normalize.InvalidFormatError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest,
			"Validation failed",
			"one or more fields are invalid",
			problem.TypeValidation,
			validationErr.Fields
	case errors.As(err, &formatErr):
		return http.StatusBadRequest,
			"Validation failed",
			formatErr.Error(),
			problem.TypeValidation,
			service.FieldErrors{formatErr.Field: {formatErr.Error()}}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound,
			"Resource not found",
			"event not found",
			problem.TypeNotFound,
			nil
	case errors.Is(err, service.ErrDuplicateKey):
		return http.StatusConflict,
			"Conflict",
			"an event with the same slug was created concurrently; retry the request",
			problem.TypeConflict,
			nil
	default:
		return http.StatusInternalServerError,
			"Internal server error",
			"an unexpected error occurred",
			problem.TypeInternal,
			nil
	}
}

func (h *Handler) loggerFrom(ctx context.Context) *zap.Logger {
	if logger, ok := platformlogging.FromContext(ctx); ok {
		return logger
	}
	return h.logger
}

// writeError and writeProblem serve the hand-mounted binary routes.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, op operation) {
	_, details := h.problemForError(r.Context(), err, op)
	problem.Write(w, details)
}

func (h *Handler) writeProblem(w http.ResponseWriter, r *http.Request, op operation, status int, problemType, title, detail string) {
	problem.Write(w, h.rejected(r.Context(), op, status, problemType, title, detail))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
