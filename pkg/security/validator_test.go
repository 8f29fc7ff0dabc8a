package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSearchQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expectError bool
		errorMsg    string
		expected    string
	}{
		{
			name:     "valid empty query",
			query:    "",
			expected: "",
		},
		{
			name:     "valid single word",
			query:    "gardening",
			expected: "gardening",
		},
		{
			name:     "valid query with spaces",
			query:    "weekend cooking",
			expected: "weekend cooking",
		},
		{
			name:     "valid query with allowed punctuation",
			query:    "go-1.22_notes",
			expected: "go-1.22_notes",
		},
		{
			name:     "valid query with leading and trailing spaces",
			query:    "  weekend cooking  ",
			expected: "weekend cooking",
		},
		{
			name:        "query too long",
			query:       string(make([]rune, MaxSearchQueryLength+1)),
			expectError: true,
			errorMsg:    "search query too long",
		},
		{
			name:        "SQL injection attempt - UNION",
			query:       "title UNION SELECT * FROM users",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "SQL injection attempt - OR condition",
			query:       "title OR 1=1",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "SQL injection attempt - comment",
			query:       "title --",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "SQL injection attempt - DROP",
			query:       "title; DROP TABLE posts",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "XSS attempt - script",
			query:       "<script>alert('xss')</script>",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "invalid characters - ampersand",
			query:       "tips&tricks",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "invalid characters - semicolon",
			query:       "tips;tricks",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateSearchQuery(tt.query)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Empty(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestSanitizeSearchString(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "empty string",
			query:    "",
			expected: "",
		},
		{
			name:     "plain string",
			query:    "gardening",
			expected: "gardening",
		},
		{
			name:     "percent wildcard escaped",
			query:    "50% off",
			expected: "50\\% off",
		},
		{
			name:     "underscore wildcard escaped",
			query:    "go_notes",
			expected: "go\\_notes",
		},
		{
			name:     "multiple wildcards",
			query:    "%go_%",
			expected: "\\%go\\_\\%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeSearchString(tt.query)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsValidSearchChar(t *testing.T) {
	valid := []rune{'a', 'Z', '5', ' ', '-', '_', '.', '@', '+', '#', '*'}
	for _, c := range valid {
		assert.True(t, isValidSearchChar(c), "expected %q to be allowed", c)
	}

	invalid := []rune{';', '&', '<', '>', '\'', '"', '('}
	for _, c := range invalid {
		assert.False(t, isValidSearchChar(c), "expected %q to be rejected", c)
	}
}
