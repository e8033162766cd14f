package traversal

import (
	"context"
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"go-jobharvest-automation/internal/browser"
	"go-jobharvest-automation/internal/extract"
	"go-jobharvest-automation/internal/sites"
)

// ErrNoListings means the very first listing page yielded zero job links.
// That is a listing failure for the whole run, unlike a later empty page
// which just marks the end of results.
var ErrNoListings = errors.New("no job links found on first listing page")

const navTimeoutMs = 30000

// Link is one discovered detail-page URL together with the fields already
// extracted from its listing card. Card data is the floor that detail-page
// enrichment later builds on.
type Link struct {
	URL    string
	Fields extract.RawFields
}

// Collector drives pagination over a board's listing pages and harvests
// candidate detail links in discovery order.
type Collector struct {
	profile  *sites.Profile
	delayMin int
	delayMax int
	log      zerolog.Logger
}

func NewCollector(profile *sites.Profile, delayMin, delayMax int, log zerolog.Logger) *Collector {
	return &Collector{profile: profile, delayMin: delayMin, delayMax: delayMax, log: log}
}

// Collect walks listing pages starting at startPage until maxPages is
// reached or a page yields no new links. Links are deduplicated by
// normalized URL; each page fetch is idempotent so the walk is restartable.
func (c *Collector) Collect(ctx context.Context, page playwright.Page, maxPages, startPage int) ([]Link, error) {
	seen := mapset.NewSet[string]()
	var links []Link

	pageNum := startPage
	for visited := 0; visited < maxPages; visited++ {
		if err := ctx.Err(); err != nil {
			return links, err
		}

		if err := c.openListingPage(page, pageNum, visited); err != nil {
			if visited == 0 {
				return nil, fmt.Errorf("first listing page: %w", err)
			}
			c.log.Warn().Err(err).Int("page", pageNum).Msg("⚠️ Listing page failed, stopping traversal")
			break
		}

		browser.RandomDelay(c.delayMin, c.delayMax)

		newLinks, err := c.harvest(page, seen)
		if err != nil {
			if visited == 0 {
				return nil, err
			}
			break
		}

		c.log.Info().Int("page", pageNum).Int("new_links", len(newLinks)).Msg("📦 Listing page harvested")

		if len(newLinks) == 0 {
			if visited == 0 {
				return nil, ErrNoListings
			}
			//end of results, not an error
			break
		}
		links = append(links, newLinks...)
		pageNum++
	}

	return links, nil
}

// openListingPage advances to the page for this iteration according to the
// profile's pagination mode.
func (c *Collector) openListingPage(page playwright.Page, pageNum, visited int) error {
	switch c.profile.Pagination {
	case sites.PaginateURLParam:
		return browser.Navigate(page, c.profile.PageURL(pageNum), navTimeoutMs, c.log)

	case sites.PaginateNextControl:
		if visited == 0 {
			return browser.Navigate(page, c.profile.PageURL(pageNum), navTimeoutMs, c.log)
		}
		next := page.Locator(c.profile.NextSelector).First()
		visible, err := next.IsVisible()
		if err != nil || !visible {
			return errors.New("next control not present")
		}
		if err := next.Click(); err != nil {
			return fmt.Errorf("next control click: %w", err)
		}
		browser.RandomDelay(c.delayMin, c.delayMax)
		return nil

	case sites.PaginateInfiniteScroll:
		if visited == 0 {
			return browser.Navigate(page, c.profile.PageURL(pageNum), navTimeoutMs, c.log)
		}
		if err := browser.HumanScroll(page); err != nil {
			return fmt.Errorf("scroll: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown pagination mode %q", c.profile.Pagination)
}

// harvest extracts card fields from every job card currently on the page,
// keeping only links whose shape the profile accepts and that were not
// seen before.
func (c *Collector) harvest(page playwright.Page, seen mapset.Set[string]) ([]Link, error) {
	cards, err := page.Locator(c.profile.CardSelector).All()
	if err != nil {
		return nil, fmt.Errorf("job cards: %w", err)
	}

	var links []Link
	for _, card := range cards {
		fields := extract.Fields(extract.NewLocatorElement(card), c.profile.Card)
		normalized := NormalizeURL(page.URL(), fields.Href)
		if normalized == "" || !c.profile.LinkShape.MatchString(normalized) {
			continue
		}
		if !seen.Add(normalized) {
			continue
		}
		fields.Href = normalized
		links = append(links, Link{URL: normalized, Fields: fields})
	}
	return links, nil
}
