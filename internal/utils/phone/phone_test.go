package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{
			name:     "International format",
			raw:      "+79991234567",
			expected: "+79991234567",
			ok:       true,
		},
		{
			name:     "Leading eight",
			raw:      "89991234567",
			expected: "+79991234567",
			ok:       true,
		},
		{
			name:     "Separators are dropped",
			raw:      "+7 (999) 123-45-67",
			expected: "+79991234567",
			ok:       true,
		},
		{
			name:     "Eight with separators",
			raw:      "8 999 123 45 67",
			expected: "+79991234567",
			ok:       true,
		},
		{
			name:     "Bare digits without plus",
			raw:      "79991234567",
			expected: "+79991234567",
			ok:       true,
		},
		{
			name: "Too short",
			raw:  "+7999123",
			ok:   false,
		},
		{
			name: "Too long",
			raw:  "+7999123456789012345",
			ok:   false,
		},
		{
			name: "Letters",
			raw:  "+7999abc4567",
			ok:   false,
		},
		{
			name: "Plus in the middle",
			raw:  "7999+1234567",
			ok:   false,
		},
		{
			name: "Empty string",
			raw:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("+79991234567"))
	assert.True(t, Valid("8 (999) 123-45-67"))
	assert.False(t, Valid("not a phone"))
	assert.False(t, Valid(""))
}
