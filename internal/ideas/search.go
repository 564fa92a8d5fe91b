package ideas

import (
	"net/url"
	"strings"

	"fedventura-backend/internal/advisor"
)

// SearchURL builds the provider search page for a course title. Unknown
// providers fall back to a general web search.
func SearchURL(query, provider string) string {
	q := strings.ReplaceAll(url.QueryEscape(strings.TrimSpace(query)), "+", "%20")
	switch provider {
	case advisor.ProviderLinkedIn:
		return "https://www.linkedin.com/learning/search?keywords=" + q
	case advisor.ProviderUdemy:
		return "https://www.udemy.com/courses/search/?q=" + q
	case advisor.ProviderCoursera:
		return "https://www.coursera.org/search?query=" + q
	default:
		return "https://www.google.com/search?q=" + q + "+online+course"
	}
}
