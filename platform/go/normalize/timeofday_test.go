package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "2:30 PM", want: "14:30"},
		{input: "12:00 AM", want: "00:00"},
		{input: "12:15 PM", want: "12:15"},
		{input: "11:59 pm", want: "23:59"},
		{input: "9:05AM", want: "09:05"},
		{input: "14:30", want: "14:30"},
		{input: "9:00", want: "09:00"},
		{input: "00:00", want: "00:00"},
		{input: " 7:45 ", want: "07:45"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeTime(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTimeInvalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"25:00",
		"12:60",
		"13:00 PM",
		"0:30 AM",
		"noon",
		"1430",
		"2:3 PM",
		"",
	}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := NormalizeTime(input)
			require.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}
