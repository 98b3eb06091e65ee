// Package problem renders RFC 9457 problem details responses using the shared contract model.
package problem

import (
	"encoding/json"
	"net/http"

	"github.com/zenGate-Global/palmyra-events/generated/go/common/problemdetails"
)

// ContentType is the media type of every problem response.
const ContentType = "application/problem+json"

// Problem type URIs shared by every handler.
const (
	TypeValidation   = "https://palmyra.events/problems/validation-error"
	TypeNotFound     = "https://palmyra.events/problems/not-found"
	TypeConflict     = "https://palmyra.events/problems/conflict"
	TypeUnauthorized = "https://palmyra.events/problems/unauthorized"
	TypeForbidden    = "https://palmyra.events/problems/forbidden"
	TypeUnsupported  = "https://palmyra.events/problems/unsupported-media-type"
	TypeTooLarge     = "https://palmyra.events/problems/payload-too-large"
	TypeInternal     = "https://palmyra.events/problems/internal-error"
)

// New builds a ProblemDetails value, copying fieldErrors so callers may reuse their map.
// Empty detail and problemType are omitted from the body.
func New(status int, problemType, title, detail string, fieldErrors map[string][]string) problemdetails.ProblemDetails {
	details := problemdetails.ProblemDetails{
		Title:  title,
		Status: status,
	}

	if detail != "" {
		details.Detail = &detail
	}
	if problemType != "" {
		details.Type = &problemType
	}

	if len(fieldErrors) > 0 {
		copied := make(map[string][]string, len(fieldErrors))
		for field, messages := range fieldErrors {
			copied[field] = append([]string(nil), messages...)
		}
		details.Errors = &copied
	}

	return details
}

// Write serializes details with its status code.
func Write(w http.ResponseWriter, details problemdetails.ProblemDetails) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(details.Status)
	_ = json.NewEncoder(w).Encode(details)
}

// Unauthorized writes a 401 with a bearer challenge.
func Unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	Write(w, New(http.StatusUnauthorized, TypeUnauthorized, "Unauthorized", detail, nil))
}

// Forbidden writes a 403.
func Forbidden(w http.ResponseWriter, detail string) {
	Write(w, New(http.StatusForbidden, TypeForbidden, "Forbidden", detail, nil))
}
