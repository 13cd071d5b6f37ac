// File: internal/services/language_service.go
package services

import "regexp"

// Script-range patterns checked in fixed order; the first match wins.
var languagePatterns = []struct {
	code    string
	pattern *regexp.Regexp
}{
	{"bn", regexp.MustCompile(`[\x{0980}-\x{09FF}]`)}, // Bengali
	{"ar", regexp.MustCompile(`[\x{0600}-\x{06FF}]`)}, // Arabic
	{"zh", regexp.MustCompile(`[\x{4E00}-\x{9FFF}]`)}, // CJK
}

// DetectLanguage guesses the language of a message from its Unicode script.
// Anything without a matching script falls through to "en".
func DetectLanguage(text string) string {
	for _, p := range languagePatterns {
		if p.pattern.MatchString(text) {
			return p.code
		}
	}
	return "en"
}
