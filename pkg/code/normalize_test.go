package code_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/codekit/pkg/code"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "uppercases lowercase input",
			input:    "deutdeff",
			expected: "DEUTDEFF",
		},
		{
			name:     "removes internal whitespace entirely",
			input:    "de 12 34",
			expected: "DE1234",
		},
		{
			name:     "removes leading and trailing whitespace",
			input:    "  gb29 nwbk 6016 1331 9268 19  ",
			expected: "GB29NWBK60161331926819",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\tde\nut\r\nde ff\t",
			expected: "DEUTDEFF",
		},
		{
			name:     "removes unicode whitespace",
			input:    "de ut de　ff",
			expected: "DEUTDEFF",
		},
		{
			name:     "applies full case mapping",
			input:    "straße",
			expected: "STRASSE",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace-only string",
			input:    " \t\n  ",
			expected: "",
		},
		{
			name:     "already canonical input is unchanged",
			input:    "DEUTDEFF",
			expected: "DEUTDEFF",
		},
		{
			name:     "digits and punctuation pass through",
			input:    "us-042 / 7b",
			expected: "US-042/7B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := code.Normalize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeInvariants(t *testing.T) {
	inputs := []string{
		"",
		"deutdeff",
		"  gb29 nwbk 6016 1331 9268 19  ",
		"de 12 34",
		"Mixed\tCase\nWith Spaces",
		"straße",
		"ŁÓDŹ bank",
		"already-CANONICAL-42",
	}

	t.Run("result contains no whitespace and no lowercase", func(t *testing.T) {
		for _, s := range inputs {
			for _, r := range code.Normalize(s) {
				assert.False(t, unicode.IsSpace(r), "whitespace %q survived normalizing %q", r, s)
				assert.False(t, unicode.IsLower(r), "lowercase %q survived normalizing %q", r, s)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, s := range inputs {
			once := code.Normalize(s)
			assert.Equal(t, once, code.Normalize(once), "normalizing %q twice diverged", s)
		}
	})
}
