package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	firebaseauth "firebase.google.com/go/v4/auth"

	"github.com/zenGate-Global/palmyra-events/platform/go/problem"
)

type ctxKey string

const ctxUserCredentials ctxKey = "EVENTS_USER_CREDENTIALS"

// RoleAdmin gates catalog writes.
const RoleAdmin = "admin"

// UserCredentials is the caller identity extracted from a verified bearer token.
type UserCredentials struct {
	ID            string
	Email         string
	EmailVerified bool
	Name          *string
	IsAdmin       bool
	Roles         []string
}

// HasRole reports whether the caller carries role, either through the isAdmin claim or
// the roles array.
func (c *UserCredentials) HasRole(role string) bool {
	if c == nil {
		return false
	}
	if role == RoleAdmin && c.IsAdmin {
		return true
	}
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// WithUser stores creds on ctx.
func WithUser(ctx context.Context, creds *UserCredentials) context.Context {
	return context.WithValue(ctx, ctxUserCredentials, creds)
}

// UserFromContext returns the credentials stored by the JWT middleware.
func UserFromContext(ctx context.Context) (*UserCredentials, bool) {
	u, ok := ctx.Value(ctxUserCredentials).(*UserCredentials)
	return u, ok && u != nil
}

// VerifyFunc validates the incoming JWT and returns its claims map.
type VerifyFunc func(ctx context.Context, token string) (map[string]interface{}, error)

// ExtractFunc converts a claims map into UserCredentials.
type ExtractFunc func(claims map[string]interface{}) (*UserCredentials, error)

// JWT parses the bearer token when present and stores the caller credentials on the
// context. Requests without a token pass through anonymously; invalid tokens are rejected.
func JWT(verify VerifyFunc, extract ExtractFunc) func(http.Handler) http.Handler {
	if verify == nil {
		panic("auth.JWT: verify func must not be nil")
	}
	if extract == nil {
		extract = DefaultCredentialExtractor
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token, found := ExtractBearerToken(r)
			if !found {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verify(r.Context(), token)
			if err != nil {
				problem.Unauthorized(w, "invalid bearer token")
				return
			}

			creds, err := extract(claims)
			if err != nil {
				problem.Unauthorized(w, "invalid token claims")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), creds)))
		})
	}
}

// RequireRole rejects anonymous callers with 401 and callers lacking role with 403.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds, ok := UserFromContext(r.Context())
			if !ok {
				problem.Unauthorized(w, "authentication required")
				return
			}
			if !creds.HasRole(role) {
				problem.Forbidden(w, fmt.Sprintf("role %q required", role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireScopes enforces the scopes a generated server wrapper stores on the request context
// under scopesKey. Operations that declare no scopes pass through.
func RequireScopes(scopesKey any) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scopes, ok := r.Context().Value(scopesKey).([]string)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			creds, ok := UserFromContext(r.Context())
			if !ok {
				problem.Unauthorized(w, "authentication required")
				return
			}
			for _, scope := range scopes {
				if !creds.HasRole(scope) {
					problem.Forbidden(w, fmt.Sprintf("role %q required", scope))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// DefaultCredentialExtractor converts standard Firebase claims into UserCredentials.
func DefaultCredentialExtractor(claims map[string]interface{}) (*UserCredentials, error) {
	if claims == nil {
		return nil, errors.New("missing claims")
	}

	id := firstStringClaim(claims, "uid", "user_id", "sub")
	if id == "" {
		return nil, errors.New("token has no subject")
	}

	return &UserCredentials{
		ID:            id,
		Email:         stringClaim(claims, "email"),
		EmailVerified: boolClaim(claims, "email_verified"),
		Name:          optionalStringClaim(claims, "name"),
		IsAdmin:       boolClaim(claims, "isAdmin"),
		Roles:         stringSliceClaim(claims, "roles"),
	}, nil
}

func boolClaim(claims map[string]interface{}, key string) bool {
	v, _ := claims[key].(bool)
	return v
}

func stringClaim(claims map[string]interface{}, key string) string {
	v, _ := claims[key].(string)
	return v
}

func optionalStringClaim(claims map[string]interface{}, key string) *string {
	if v := stringClaim(claims, key); v != "" {
		return &v
	}
	return nil
}

func firstStringClaim(claims map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v := stringClaim(claims, key); v != "" {
			return v
		}
	}
	return ""
}

// stringSliceClaim accepts both []string and the []interface{} produced by JSON decoding.
func stringSliceClaim(claims map[string]interface{}, key string) []string {
	switch v := claims[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func parseUnsignedJWTClaims(token string) (map[string]interface{}, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, errors.New("invalid token format")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	claims := make(map[string]interface{})
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return nil, fmt.Errorf("unmarshal claims: %w", err)
	}

	return claims, nil
}

// FirebaseTokenVerifier returns a VerifyFunc that validates ID tokens via Firebase Auth.
func FirebaseTokenVerifier(client *firebaseauth.Client) VerifyFunc {
	if client == nil {
		panic("firebase auth client is required")
	}
	return func(ctx context.Context, token string) (map[string]interface{}, error) {
		t, err := client.VerifyIDToken(ctx, token)
		if err != nil {
			return nil, err
		}

		claims := make(map[string]interface{}, len(t.Claims)+2)
		for k, v := range t.Claims {
			claims[k] = v
		}
		claims["uid"] = t.UID
		claims["sub"] = t.Subject

		return claims, nil
	}
}

// UnsignedTokenVerifier decodes unsigned JWT payloads without validation. Local use only.
func UnsignedTokenVerifier() VerifyFunc {
	return func(_ context.Context, token string) (map[string]interface{}, error) {
		return parseUnsignedJWTClaims(token)
	}
}
