package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadOccupationKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "single digit is padded",
			key:      "7",
			expected: "007",
		},
		{
			name:     "two digits are padded",
			key:      "42",
			expected: "042",
		},
		{
			name:     "two zeros are padded",
			key:      "00",
			expected: "000",
		},
		{
			name:     "three digits pass through",
			key:      "042",
			expected: "042",
		},
		{
			name:     "more than three digits pass through",
			key:      "1234",
			expected: "1234",
		},
		{
			name:     "non-digit content passes through",
			key:      "0A7",
			expected: "0A7",
		},
		{
			name:     "short non-digit content passes through",
			key:      "x",
			expected: "x",
		},
		{
			name:     "empty key passes through",
			key:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PadOccupationKey(tt.key))
		})
	}
}

func TestPadOccupationKey_Idempotent(t *testing.T) {
	for _, key := range []string{"7", "42", "042", "1234", "0A7", ""} {
		once := PadOccupationKey(key)
		twice := PadOccupationKey(once)
		assert.Equal(t, once, twice, "padding %q twice must equal padding once", key)
	}
}
