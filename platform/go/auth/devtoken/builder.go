// Package devtoken mints unsigned Firebase-shaped ID tokens for local runs and CI,
// accepted by the API when AUTH_PROVIDER=dev.
package devtoken

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Params captures the claims of the minted token. No environment variables are read so
// the builder stays deterministic for tooling.
type Params struct {
	ProjectID     string // used for aud and iss
	UserID        string // user_id/sub (required)
	Email         string // required
	Name          string
	EmailVerified bool
	IsAdmin       bool // grants catalog writes
	Roles         []string
	ExpiresIn     time.Duration // default 1h
}

// Build returns a JWT string with alg "none" and an empty signature segment.
func Build(p Params, now time.Time) (string, error) {
	if strings.TrimSpace(p.ProjectID) == "" {
		return "", errors.New("projectID is required")
	}
	if strings.TrimSpace(p.UserID) == "" {
		return "", errors.New("userID is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return "", errors.New("email is required")
	}

	if now.IsZero() {
		now = time.Now().UTC()
	}
	expiresIn := p.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}

	payload := map[string]interface{}{
		"iss":            fmt.Sprintf("https://securetoken.google.com/%s", p.ProjectID),
		"aud":            p.ProjectID,
		"auth_time":      now.Unix(),
		"user_id":        p.UserID,
		"sub":            p.UserID,
		"iat":            now.Unix(),
		"exp":            now.Add(expiresIn).Unix(),
		"email":          p.Email,
		"email_verified": p.EmailVerified,
		"isAdmin":        p.IsAdmin,
		"firebase": map[string]interface{}{
			"identities":       map[string]interface{}{"email": []string{p.Email}},
			"sign_in_provider": "password",
		},
	}
	if p.Name != "" {
		payload["name"] = p.Name
	}
	if len(p.Roles) > 0 {
		payload["roles"] = p.Roles
	}

	headerSegment, err := encodeSegment(map[string]interface{}{"alg": "none", "typ": "JWT"})
	if err != nil {
		return "", err
	}
	payloadSegment, err := encodeSegment(payload)
	if err != nil {
		return "", err
	}

	return headerSegment + "." + payloadSegment + ".", nil
}

func encodeSegment(v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
