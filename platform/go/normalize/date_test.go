package normalize

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already canonical", input: "2025-11-15", want: "2025-11-15"},
		{name: "long form", input: "November 15, 2025", want: "2025-11-15"},
		{name: "us slashes", input: "11/15/2025", want: "2025-11-15"},
		{name: "timestamp in utc", input: "2025-11-15T10:00:00Z", want: "2025-11-15"},
		{name: "offset shifts to utc day", input: "2025-11-15T23:30:00-05:00", want: "2025-11-16"},
		{name: "surrounding whitespace", input: "  2025-01-02 ", want: "2025-01-02"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeDate(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Regexp(t, isoDatePattern, got)
		})
	}
}

func TestNormalizeDateInvalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"not-a-date", "", "   "} {
		_, err := NormalizeDate(input)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidFormat)

		var formatErr *InvalidFormatError
		require.True(t, errors.As(err, &formatErr))
		require.Equal(t, "date", formatErr.Field)
		require.Equal(t, input, formatErr.Input)
	}
}
