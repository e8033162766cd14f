package normalize

import (
	"html"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CleanText unescapes HTML entities and collapses all whitespace runs into
// single spaces.
func CleanText(value string) string {
	value = html.UnescapeString(value)
	return strings.Join(strings.Fields(value), " ")
}

// HTMLToText flattens an HTML fragment into clean text. Falls back to the
// raw string when the fragment does not parse.
func HTMLToText(raw string) string {
	if raw == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return CleanText(raw)
	}
	return CleanText(doc.Text())
}

// Name lowercases and strips diacritics so that company/location lookups
// hit the same row for "Café Sydney" and "Cafe Sydney".
func Name(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, str)
	if err != nil {
		result = str
	}
	return strings.ToLower(CleanText(result))
}

var slugTrailingID = regexp.MustCompile(`^\d+$`)

// TitleFromURL derives a placeholder title from the URL slug, for postings
// whose title could not be extracted. The title is never left empty.
func TitleFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "Untitled position"
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	//walk backwards past numeric ID segments to the slug
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if seg == "" || slugTrailingID.MatchString(seg) {
			continue
		}
		seg = strings.TrimSuffix(seg, ".html")
		words := strings.FieldsFunc(seg, func(r rune) bool {
			return r == '-' || r == '_'
		})
		if len(words) == 0 {
			continue
		}
		for j, w := range words {
			if len(w) > 0 {
				words[j] = strings.ToUpper(w[:1]) + w[1:]
			}
		}
		return strings.Join(words, " ")
	}
	return "Untitled position"
}

// Truncate bounds a string to max bytes without splitting a word when it
// can help it.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if idx := strings.LastIndex(cut, " "); idx > max/2 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}
