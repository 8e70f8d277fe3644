package tutor

import (
	"html"
	"regexp"
	"strings"
)

var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script.*?>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+=`),
	regexp.MustCompile(`(?i)data:`),
	regexp.MustCompile(`(?i)vbscript:`),
}

// SanitizeInput HTML-escapes student input and strips script-injection
// patterns before it reaches storage or the model.
func SanitizeInput(text string) string {
	if text == "" {
		return ""
	}
	text = html.EscapeString(text)
	for _, pattern := range dangerousPatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}
