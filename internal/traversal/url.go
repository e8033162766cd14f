package traversal

import (
	"net/url"
	"strings"
)

// NormalizeURL resolves href against base and strips query and fragment,
// so tracking parameters never make one posting look like two.
func NormalizeURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if !ref.IsAbs() {
		baseURL, err := url.Parse(base)
		if err != nil {
			return ""
		}
		ref = baseURL.ResolveReference(ref)
	}

	ref.RawQuery = ""
	ref.Fragment = ""
	return strings.TrimSuffix(ref.String(), "/")
}
