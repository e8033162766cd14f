package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// NavError reports a navigation that failed after every wait policy was
// tried. It marks exactly one link as failed; it never aborts the run.
type NavError struct {
	URL      string
	Attempts int
	Last     error
}

func (e *NavError) Error() string {
	return fmt.Sprintf("navigation to %s failed after %d attempts: %v", e.URL, e.Attempts, e.Last)
}

func (e *NavError) Unwrap() error { return e.Last }

// waitPolicies is the retry ladder: each attempt uses a progressively
// weaker wait condition, so a page that never reaches network idle can
// still be scraped off its DOM.
var waitPolicies = []*playwright.WaitUntilState{
	playwright.WaitUntilStateNetworkidle,
	playwright.WaitUntilStateLoad,
	playwright.WaitUntilStateDomcontentloaded,
}

// Navigate drives page to url, weakening the wait policy on each retry.
// The caller blocks until the chosen wait condition fires or the timeout
// expires on the final attempt.
func Navigate(page playwright.Page, url string, timeoutMs float64, log zerolog.Logger) error {
	var last error
	for i, policy := range waitPolicies {
		_, err := page.Goto(url, playwright.PageGotoOptions{
			WaitUntil: policy,
			Timeout:   playwright.Float(timeoutMs),
		})
		if err == nil {
			if i > 0 {
				log.Debug().Str("url", url).Int("attempt", i+1).Msg("🔁 Navigation succeeded on weakened wait policy")
			}
			return nil
		}
		last = err
		log.Debug().Str("url", url).Err(err).Int("attempt", i+1).Msg("⚠️ Navigation attempt failed")
	}
	return &NavError{URL: url, Attempts: len(waitPolicies), Last: last}
}
