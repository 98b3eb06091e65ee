package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Domain-level error sentinel values.
var (
	ErrNotFound     = errors.New("event not found")
	ErrDuplicateKey = errors.New("event slug already exists")
)

// FieldErrors maps request fields to validation issues.
type FieldErrors map[string][]string

// ValidationError captures input validation problems surfaced by the service.
type ValidationError struct {
	Fields FieldErrors
}

func (v *ValidationError) Error() string {
	return "validation error"
}

func (f FieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

// Mode describes how attendees join an event.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeHybrid  Mode = "hybrid"
)

// Event is the catalog entry managed by the domain service.
//
// Slug, Date and Time are derived by Lifecycle.PrepareForWrite; callers never set them.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Slug        string    `json:"slug"`
	Description string    `json:"description" validate:"required"`
	Overview    string    `json:"overview" validate:"required"`
	Image       string    `json:"image" validate:"required,url"`
	Venue       string    `json:"venue" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Date        string    `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	Mode        Mode      `json:"mode" validate:"required,oneof=online offline hybrid"`
	Audience    string    `json:"audience" validate:"required"`
	Agenda      []string  `json:"agenda" validate:"required,min=1,dive,required"`
	Organizer   string    `json:"organizer" validate:"required"`
	Tags        []string  `json:"tags" validate:"required,min=1,dive,required"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (e Event) clone() Event {
	e.Agenda = append([]string(nil), e.Agenda...)
	e.Tags = append([]string(nil), e.Tags...)
	return e
}

// CreateInput defines the payload required to create an event. Date and Time accept
// any format the normalizer understands.
type CreateInput struct {
	Title       string
	Description string
	Overview    string
	Image       string
	Venue       string
	Location    string
	Date        string
	Time        string
	Mode        string
	Audience    string
	Agenda      []string
	Organizer   string
	Tags        []string
}

// Changes lists the caller-supplied fields of a write. Nil members leave the stored
// value untouched.
type Changes struct {
	Title       *string
	Description *string
	Overview    *string
	Image       *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *string
	Audience    *string
	Agenda      *[]string
	Organizer   *string
	Tags        *[]string
}

func (c Changes) empty() bool {
	return c.Title == nil && c.Description == nil && c.Overview == nil && c.Image == nil &&
		c.Venue == nil && c.Location == nil && c.Date == nil && c.Time == nil && c.Mode == nil &&
		c.Audience == nil && c.Agenda == nil && c.Organizer == nil && c.Tags == nil
}

func (in CreateInput) changes() Changes {
	return Changes{
		Title:       &in.Title,
		Description: &in.Description,
		Overview:    &in.Overview,
		Image:       &in.Image,
		Venue:       &in.Venue,
		Location:    &in.Location,
		Date:        &in.Date,
		Time:        &in.Time,
		Mode:        &in.Mode,
		Audience:    &in.Audience,
		Agenda:      &in.Agenda,
		Organizer:   &in.Organizer,
		Tags:        &in.Tags,
	}
}

// trimList trims every item and drops blanks, keeping order.
func trimList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// uniqueTags trims tags, drops blanks and repeats, keeping first-seen order.
func uniqueTags(tags []string) []string {
	trimmed := trimList(tags)
	seen := make(map[string]struct{}, len(trimmed))
	out := trimmed[:0]
	for _, tag := range trimmed {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
