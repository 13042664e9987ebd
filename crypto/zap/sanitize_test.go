//go:build unit

package zap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain string untouched", input: "hello world", expected: "hello world"},
		{name: "newline escaped", input: "a\nb", expected: `a\nb`},
		{name: "carriage return escaped", input: "a\rb", expected: `a\rb`},
		{name: "tab escaped", input: "a\tb", expected: `a\tb`},
		{name: "mixed control characters", input: "x\n\r\ty", expected: `x\n\r\ty`},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizeString(tt.input))
		})
	}
}
