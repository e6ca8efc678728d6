package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqBy(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "keeps the first occurrence and the order",
			input:    []string{"b", "a", "b", "c", "a"},
			expected: []string{"b", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UniqBy(tt.input, func(s string) string { return s }))
		})
	}
}

func TestEmptyThenNil(t *testing.T) {
	assert.Nil(t, EmptyThenNil(""))
	assert.Equal(t, "x", *EmptyThenNil("x"))
	assert.Equal(t, "", SafeDereference(nil))
	assert.Equal(t, 3, OrDefault(nil, 3))
	assert.Equal(t, 4, OrDefault(Ptr(4), 3))
}
