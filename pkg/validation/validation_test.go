package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimAndValidate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		valid    bool
	}{
		{"London", "London", true},
		{"  New York \t", "New York", true},
		{"", "", false},
		{"   ", "", false},
		{"\n\t", "", false},
	}

	for _, tt := range tests {
		trimmed, ok := TrimAndValidate(tt.input)
		assert.Equal(t, tt.expected, trimmed, "input %q", tt.input)
		assert.Equal(t, tt.valid, ok, "input %q", tt.input)
		assert.Equal(t, tt.valid, IsNotEmpty(tt.input), "input %q", tt.input)
	}
}

func TestCoordinateRanges(t *testing.T) {
	assert.True(t, IsValidLatitude(51.5))
	assert.True(t, IsValidLatitude(-90))
	assert.True(t, IsValidLatitude(90))
	assert.False(t, IsValidLatitude(90.01))
	assert.False(t, IsValidLatitude(-91))

	assert.True(t, IsValidLongitude(-0.12))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(180.5))
	assert.False(t, IsValidLongitude(-181))
}
