package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var absoluteLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
}

var relativeRegex = regexp.MustCompile(`(?i)\b(\d+|an?)\s*(minute|hour|day|week|month)s?\s*ago\b`)

// PostedDate resolves posted-date text to an absolute instant. Absolute
// formats (DD/MM/YYYY, D Month YYYY) are tried first, then relative phrases
// against now. Unrecognized text resolves to now and ok=false — a run needs
// a sortable date even when the source omits one, so the result is never
// zero.
func PostedDate(raw string, now time.Time) (time.Time, bool) {
	text := CleanText(raw)
	if text == "" {
		return now, false
	}

	for _, layout := range absoluteLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts, true
		}
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "today"), strings.Contains(lower, "just posted"), strings.Contains(lower, "just now"):
		return now, true
	case strings.Contains(lower, "yesterday"):
		return now.AddDate(0, 0, -1), true
	}

	if m := relativeRegex.FindStringSubmatch(lower); m != nil {
		n := 1
		if m[1] != "a" && m[1] != "an" {
			n, _ = strconv.Atoi(m[1])
		}
		switch m[2] {
		case "minute":
			return now.Add(-time.Duration(n) * time.Minute), true
		case "hour":
			return now.Add(-time.Duration(n) * time.Hour), true
		case "day":
			return now.AddDate(0, 0, -n), true
		case "week":
			return now.AddDate(0, 0, -7*n), true
		case "month":
			return now.AddDate(0, -n, 0), true
		}
	}

	return now, false
}
