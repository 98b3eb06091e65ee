package normalize

import (
	"regexp"
	"strings"
)

var (
	// RE2 \s is ASCII only and skips \v; \p{Z} and U+FEFF add the Unicode spaces browsers treat as whitespace.
	slugDisallowedPattern = regexp.MustCompile(`[^\w\s\v\p{Z}\x{FEFF}-]`)
	whitespaceRunPattern  = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
	hyphenRunPattern      = regexp.MustCompile(`-+`)

	slugPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// GenerateSlug converts a free-text title into its base URL token.
//
// The title is lowercased and trimmed, every character outside word characters,
// whitespace and hyphens is removed, whitespace runs become a single hyphen and
// hyphen runs collapse into one. No length limit is applied.
//
//	"Tech Talk: AI & Future!" -> "tech-talk-ai-future"
func GenerateSlug(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = slugDisallowedPattern.ReplaceAllString(s, "")
	s = whitespaceRunPattern.ReplaceAllString(s, "-")
	s = hyphenRunPattern.ReplaceAllString(s, "-")
	return s
}

// ValidSlug reports whether slug only uses the alphabet GenerateSlug and the
// uniqueness suffixes can produce (lowercase ASCII letters, digits, underscores
// and hyphens). Request handlers use it to reject malformed lookups before
// touching storage.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}
