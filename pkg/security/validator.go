package security

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// MaxSearchQueryLength caps post search input before it reaches the
// database layer.
const MaxSearchQueryLength = 100

// injectionPatterns match input that has no business being in a title
// or subtitle search: SQL keywords, boolean tautologies, comment
// markers and markup.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(union|select|insert|update|delete|drop|create|alter|exec|execute)`),
	regexp.MustCompile(`(?i)(or|and)\s+\d+\s*=\s*\d+`),
	regexp.MustCompile(`(?i)(or|and)\s+['"].*['"]\s*=\s*['"].*['"]`),
	regexp.MustCompile(`(?i)(--|#|/\*|\*/)`),
	regexp.MustCompile(`(?i)(waitfor|delay|benchmark|sleep)`),
	regexp.MustCompile(`(?i)(<script|</script|javascript:|vbscript:|onload=|onerror=)`),
}

// ValidateSearchQuery screens a post search query before it is used in
// a LIKE expression. An empty query is valid and means "no filter".
func ValidateSearchQuery(query string) (string, error) {
	if query == "" {
		return "", nil
	}

	if len(query) > MaxSearchQueryLength {
		return "", errors.New("search query too long")
	}

	query = strings.TrimSpace(query)

	lower := strings.ToLower(query)
	for _, pattern := range injectionPatterns {
		if pattern.MatchString(lower) {
			return "", errors.New("search query contains invalid characters")
		}
	}

	for _, char := range query {
		if !isValidSearchChar(char) {
			return "", errors.New("search query contains invalid characters")
		}
	}

	return query, nil
}

// isValidSearchChar allows letters, digits, spaces and the punctuation
// that shows up in real post titles.
func isValidSearchChar(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsNumber(char) ||
		char == ' ' || char == '-' || char == '_' || char == '.' ||
		char == '@' || char == '+' || char == '#' || char == '*'
}

// SanitizeSearchString escapes LIKE wildcards so a query matches them
// literally.
func SanitizeSearchString(query string) string {
	if query == "" {
		return ""
	}

	query = strings.ReplaceAll(query, "%", "\\%")
	query = strings.ReplaceAll(query, "_", "\\_")

	return query
}
