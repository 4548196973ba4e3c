package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"Health", "Taxation", "Health", "Energy", "Taxation"},
			expected: []string{"Health", "Taxation", "Energy"},
		},
		{
			name:     "keeps whitespace and empty values",
			input:    []string{" Health", "", "Health", ""},
			expected: []string{" Health", "", "Health"},
		},
		{
			name:     "preserves case",
			input:    []string{"Health", "health", "HEALTH"},
			expected: []string{"Health", "health", "HEALTH"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Dedupe(tt.input))
		})
	}
}

func TestDedupeFold(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "case-insensitive duplicates keep first spelling",
			input:    []string{"HR", "s", "hr", "S", "hjres"},
			expected: []string{"HR", "s", "hjres"},
		},
		{
			name:     "empty token is kept once",
			input:    []string{"", "hr", ""},
			expected: []string{"", "hr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeFold(tt.input))
		})
	}
}
