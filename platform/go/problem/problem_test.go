package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zenGate-Global/palmyra-events/generated/go/common/problemdetails"
)

func TestWriteValidationProblem(t *testing.T) {
	t.Parallel()

	fields := map[string][]string{"title": {"title is required"}}
	rec := httptest.NewRecorder()

	Write(rec, New(http.StatusBadRequest, TypeValidation, "Validation failed", "one or more fields are invalid", fields))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, ContentType, rec.Header().Get("Content-Type"))

	var body problemdetails.ProblemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Type)
	require.Equal(t, TypeValidation, *body.Type)
	require.NotNil(t, body.Errors)
	require.Equal(t, []string{"title is required"}, (*body.Errors)["title"])
}

func TestNewCopiesFieldErrors(t *testing.T) {
	t.Parallel()

	fields := map[string][]string{"date": {"unrecognized date"}}
	details := New(http.StatusBadRequest, "", "Validation failed", "", fields)
	fields["date"][0] = "mutated"

	require.Nil(t, details.Type)
	require.Nil(t, details.Detail)
	require.Equal(t, "unrecognized date", (*details.Errors)["date"][0])
}

func TestUnauthorizedSetsChallenge(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Unauthorized(rec, "missing bearer token")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
	require.NotContains(t, rec.Body.String(), `"errors"`)
}
