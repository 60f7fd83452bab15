package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1,500"},
		{1000000, "1,000,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCount(tt.input))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "48.57%", FormatPercent(17.0/35.0))
	assert.Equal(t, "100.00%", FormatPercent(1))
	assert.Equal(t, "0.00%", FormatPercent(0))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "12µs", FormatDuration(12345*time.Nanosecond))
	assert.Equal(t, "1ms", FormatDuration(1234567*time.Nanosecond))
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond+400*time.Microsecond))
	assert.Equal(t, "1.23s", FormatDuration(1234*time.Millisecond))
}
