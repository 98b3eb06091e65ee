package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
	"go.uber.org/zap"

	platformauth "github.com/zenGate-Global/palmyra-events/platform/go/auth"
	"github.com/zenGate-Global/palmyra-events/platform/go/problem"
)

// Errors returned to the OpenAPI validator by AuthenticateBearer.
var (
	ErrMissingCredentials = errors.New("missing or invalid bearer token")
	ErrMissingScope       = errors.New("caller lacks required role")
)

// AuthenticateBearer satisfies operations declaring the bearerAuth security scheme. The JWT
// middleware has already verified the token, so this only checks that credentials are
// present and carry every scope listed for the operation.
func AuthenticateBearer(_ context.Context, input *openapi3filter.AuthenticationInput) error {
	if input == nil || input.SecuritySchemeName != "bearerAuth" {
		return nil
	}

	r := input.RequestValidationInput.Request
	if r == nil {
		return fmt.Errorf("no request in validation input")
	}

	creds, ok := platformauth.UserFromContext(r.Context())
	if !ok {
		return ErrMissingCredentials
	}
	for _, scope := range input.Scopes {
		if !creds.HasRole(scope) {
			return fmt.Errorf("%w: %s", ErrMissingScope, scope)
		}
	}
	return nil
}

// OpenAPIValidator validates requests against spec and renders rejections as problem details.
// Routes not described by spec are rejected, so mount it only on the documented group.
func OpenAPIValidator(spec *openapi3.T, logger *zap.Logger) func(http.Handler) http.Handler {
	return oapimiddleware.OapiRequestValidatorWithOptions(spec, &oapimiddleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: AuthenticateBearer,
		},
		ErrorHandler: func(w http.ResponseWriter, message string, statusCode int) {
			if logger != nil {
				logger.Warn("request rejected by contract", zap.Int("status", statusCode), zap.String("reason", message))
			}
			writeContractProblem(w, message, statusCode)
		},
	})
}

func writeContractProblem(w http.ResponseWriter, message string, statusCode int) {
	switch {
	case strings.Contains(message, ErrMissingScope.Error()):
		problem.Forbidden(w, "admin role required")
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		problem.Unauthorized(w, "authentication required")
	case statusCode == http.StatusNotFound:
		problem.Write(w, problem.New(http.StatusNotFound, problem.TypeNotFound, "Resource not found", "no such route", nil))
	case statusCode >= http.StatusInternalServerError:
		problem.Write(w, problem.New(http.StatusInternalServerError, problem.TypeInternal, "Internal server error", "request could not be validated", nil))
	default:
		problem.Write(w, problem.New(http.StatusBadRequest, problem.TypeValidation, "Validation failed", message, nil))
	}
}
