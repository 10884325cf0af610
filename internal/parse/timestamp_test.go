package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  time.Time
		expectErr bool
	}{
		{
			name:     "Full seconds form",
			input:    "2025-04-03T12:00:30",
			expected: time.Date(2025, 4, 3, 12, 0, 30, 0, time.UTC),
		},
		{
			name:     "Minute-truncated form",
			input:    "2025-04-03T12:00",
			expected: time.Date(2025, 4, 3, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "Date only",
			input:     "2025-04-03",
			expectErr: true,
		},
		{
			name:      "Zone offset not accepted",
			input:     "2025-04-03T12:00:00Z",
			expectErr: true,
		},
		{
			name:      "Garbage",
			input:     "amanhã às 12h",
			expectErr: true,
		},
		{
			name:      "Empty string",
			input:     "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Timestamp(tc.input)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrBadTimestamp)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %v, got %v", tc.expected, got)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 4, 3, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-04-03T16:00:00", FormatTimestamp(ts))
}
