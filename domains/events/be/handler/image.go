package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zenGate-Global/palmyra-events/domains/events/be/service"
	events "github.com/zenGate-Global/palmyra-events/generated/go/events"
	"github.com/zenGate-Global/palmyra-events/platform/go/problem"
	"github.com/zenGate-Global/palmyra-events/platform/go/requesttrace"
	"github.com/zenGate-Global/palmyra-events/platform/go/storage"
)

// MaxBannerBytes caps the size of an uploaded banner image.
const MaxBannerBytes = 5 << 20

// UploadImage handles POST /api/v1/events/{slug}/image. The raw request body is stored as the
// event banner and the event's image field is pointed at the stored object.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if h.blobs == nil {
		h.writeProblem(w, r, imageOperation, http.StatusServiceUnavailable, problem.TypeInternal,
			"Storage unavailable", "banner storage is not configured")
		return
	}

	contentType := r.Header.Get("Content-Type")
	ext, supported := storage.BannerExtension(contentType)
	if !supported {
		h.writeProblem(w, r, imageOperation, http.StatusUnsupportedMediaType, problem.TypeUnsupported,
			"Unsupported media type", "banner must be image/png, image/jpeg or image/webp")
		return
	}

	event, found, err := h.svc.GetEventBySlug(r.Context(), slug)
	if err != nil {
		h.writeError(w, r, err, imageOperation)
		return
	}
	if !found {
		h.writeProblem(w, r, imageOperation, http.StatusNotFound, problem.TypeNotFound,
			"Resource not found", fmt.Sprintf("Event with slug '%s' not found", slug))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBannerBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeProblem(w, r, imageOperation, http.StatusRequestEntityTooLarge, problem.TypeTooLarge,
				"Payload too large", fmt.Sprintf("banner must not exceed %d bytes", MaxBannerBytes))
			return
		}
		h.writeProblem(w, r, imageOperation, http.StatusBadRequest, problem.TypeValidation,
			"Invalid request body", err.Error())
		return
	}
	if len(body) == 0 {
		h.writeProblem(w, r, imageOperation, http.StatusBadRequest, problem.TypeValidation,
			"Invalid request body", "banner body is empty")
		return
	}

	url, err := h.blobs.Put(r.Context(), storage.BannerKey(event.ID, ext), contentType, bytes.NewReader(body))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("store banner: %w", err), imageOperation)
		return
	}

	updated, err := h.svc.Update(r.Context(), requesttrace.FromContextOrAnonymous(r.Context()), slug, service.UpdateInput{Image: &url})
	if err != nil {
		h.writeError(w, r, err, imageOperation)
		return
	}

	writeJSON(w, http.StatusOK, events.EventEnvelope{Message: messageUpdated, Event: toAPIEvent(updated)})
}
