package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/go-chi/chi/v5"

	"github.com/zenGate-Global/palmyra-events/domains/events/be/service"
	"github.com/zenGate-Global/palmyra-events/platform/go/problem"
)

const (
	calendarProductID = "-//Palmyra Events//Catalog//EN"
	calendarDuration  = "PT1H"
)

// Calendar handles GET /api/v1/events/{slug}/calendar.ics.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	event, found, err := h.svc.GetEventBySlug(r.Context(), slug)
	if err != nil {
		h.writeError(w, r, err, calendarOperation)
		return
	}
	if !found {
		h.writeProblem(w, r, calendarOperation, http.StatusNotFound, problem.TypeNotFound,
			"Resource not found", fmt.Sprintf("Event with slug '%s' not found", slug))
		return
	}

	body, err := renderCalendar(event, time.Now().UTC())
	if err != nil {
		h.writeError(w, r, err, calendarOperation)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.ics"`, event.Slug))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// renderCalendar serializes event as a VCALENDAR holding a single VEVENT. The stored
// date and time are interpreted as UTC.
func renderCalendar(event service.Event, stamp time.Time) (string, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", event.Date+" "+event.Time, time.UTC)
	if err != nil {
		return "", fmt.Errorf("parse event start: %w", err)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(calendarProductID)

	vevent := cal.AddEvent(event.ID.String())
	vevent.SetDtStampTime(stamp)
	vevent.SetStartAt(start)
	vevent.SetProperty(ical.ComponentProperty("DURATION"), calendarDuration)
	vevent.SetSummary(event.Title)
	vevent.SetDescription(event.Description)
	vevent.SetLocation(joinLocation(event.Venue, event.Location))

	return cal.Serialize(), nil
}

func joinLocation(venue, location string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{venue, location} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
