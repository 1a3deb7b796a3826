package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "long value keeps a four-char preview",
			input:    "sk-live-abcdef123456",
			expected: "sk-l***",
		},
		{
			name:     "short value is fully masked",
			input:    "hunter2",
			expected: "***",
		},
		{
			name:     "boundary length is fully masked",
			input:    "12345678",
			expected: "***",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "***",
		},
		{
			name:     "json blob",
			input:    `{"password":"hunter2"}`,
			expected: `{"pa***`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskSecret(tt.input))
		})
	}
}
