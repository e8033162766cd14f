package normalize

import (
	"regexp"
	"strings"
)

// SkillsResult splits matched skills into required and preferred. Both
// lists may legitimately be empty: when a description carries no known
// keyword, nothing is invented to fill the gap.
type SkillsResult struct {
	Required  []string
	Preferred []string
}

// DefaultPreferredMarkers are the section headings that switch keyword
// matching from "required" to "preferred" territory.
var DefaultPreferredMarkers = []string{
	"desirable",
	"preferred",
	"nice to have",
	"bonus points",
	"advantageous",
}

// Skills keyword-matches the description against a domain keyword list,
// assigning matches after the first preferred-section marker to the
// preferred list. Matching is case-insensitive on token boundaries.
func Skills(description string, keywords []string, preferredMarkers []string) SkillsResult {
	var result SkillsResult

	text := strings.ToLower(CleanText(description))
	if text == "" || len(keywords) == 0 {
		return result
	}
	if preferredMarkers == nil {
		preferredMarkers = DefaultPreferredMarkers
	}

	//everything from the earliest marker on is the preferred zone
	split := len(text)
	for _, marker := range preferredMarkers {
		if idx := strings.Index(text, strings.ToLower(marker)); idx >= 0 && idx < split {
			split = idx
		}
	}
	requiredZone, preferredZone := text[:split], text[split:]

	seen := map[string]bool{}
	for _, kw := range keywords {
		key := strings.ToLower(strings.TrimSpace(kw))
		if key == "" || seen[key] {
			continue
		}
		switch {
		case containsKeyword(requiredZone, key):
			result.Required = append(result.Required, kw)
			seen[key] = true
		case containsKeyword(preferredZone, key):
			result.Preferred = append(result.Preferred, kw)
			seen[key] = true
		}
	}

	return result
}

// containsKeyword matches on non-alphanumeric boundaries so "go" does not
// fire inside "google" while "c++" and ".net" still match.
func containsKeyword(text, keyword string) bool {
	re, err := regexp.Compile(`(?i)(^|[^a-z0-9+#.])` + regexp.QuoteMeta(keyword) + `([^a-z0-9+#.]|$)`)
	if err != nil {
		return strings.Contains(text, keyword)
	}
	return re.MatchString(text)
}
