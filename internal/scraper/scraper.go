// Package scraper is the playwright-backed implementation of the pipeline
// collaborators. One SiteScraper drives one board profile per run: a
// long-lived listing page for traversal plus one short-lived detail tab at
// a time for enrichment — never more than two pages open at once.
package scraper

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"go-jobharvest-automation/internal/browser"
	"go-jobharvest-automation/internal/extract"
	"go-jobharvest-automation/internal/sites"
	"go-jobharvest-automation/internal/traversal"
	"go-jobharvest-automation/utils"
)

const detailTimeoutMs = 30000

type Options struct {
	MaxPages  int
	StartPage int
	DelayMin  int
	DelayMax  int
}

type SiteScraper struct {
	profile    *sites.Profile
	browserCtx playwright.BrowserContext
	listing    playwright.Page
	collector  *traversal.Collector
	shots      *utils.ScreenshotDebugger
	opts       Options
	log        zerolog.Logger
}

func New(browserCtx playwright.BrowserContext, profile *sites.Profile, opts Options, log zerolog.Logger) (*SiteScraper, error) {
	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not open listing page: %w", err)
	}

	return &SiteScraper{
		profile:    profile,
		browserCtx: browserCtx,
		listing:    page,
		collector:  traversal.NewCollector(profile, opts.DelayMin, opts.DelayMax, log),
		shots:      utils.NewScreenshotDebugger(log),
		opts:       opts,
		log:        log,
	}, nil
}

// Collect walks the board's listing pages on the long-lived driver page.
func (s *SiteScraper) Collect(ctx context.Context) ([]traversal.Link, error) {
	links, err := s.collector.Collect(ctx, s.listing, s.opts.MaxPages, s.opts.StartPage)
	if err != nil {
		s.shots.Capture(s.listing, s.profile.Name+"-listing-failed")
		return links, err
	}
	return links, nil
}

// Enrich opens the link in a fresh tab, runs the detail cascade and
// overlays the result on the listing-card fields. The tab is always
// closed before the next link is processed.
func (s *SiteScraper) Enrich(ctx context.Context, link traversal.Link) (extract.RawFields, error) {
	if err := ctx.Err(); err != nil {
		return link.Fields, err
	}

	detail, err := s.browserCtx.NewPage()
	if err != nil {
		return link.Fields, fmt.Errorf("could not open detail page: %w", err)
	}
	defer detail.Close()

	browser.RandomDelay(s.opts.DelayMin, s.opts.DelayMax)

	if err := browser.Navigate(detail, link.URL, detailTimeoutMs, s.log); err != nil {
		s.shots.Capture(detail, s.profile.Name+"-detail-failed")
		return link.Fields, err
	}

	fields := extract.Fields(extract.NewLocatorElement(detail.Locator("body")), s.profile.Detail)
	merged := extract.Merge(link.Fields, fields)
	merged.Href = link.URL
	return merged, nil
}

func (s *SiteScraper) Close() {
	if s.listing != nil {
		s.listing.Close()
	}
}
