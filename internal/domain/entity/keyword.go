package entity

import "strings"

// ContainsKeywords reports whether text contains at least one keyword,
// ignoring case. Empty text never matches.
func ContainsKeywords(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
