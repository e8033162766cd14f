// Package pipeline sequences one scrape run: traversal, per-link
// extraction, normalization and persistence, with counters for the run
// summary. Links are processed in discovery order on a single logical
// thread; a bad page fails one link, never the run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"go-jobharvest-automation/internal/database"
	"go-jobharvest-automation/internal/extract"
	"go-jobharvest-automation/internal/models"
	"go-jobharvest-automation/internal/normalize"
	"go-jobharvest-automation/internal/traversal"
)

// LinkCollector walks listing pages and returns detail links in discovery
// order.
type LinkCollector interface {
	Collect(ctx context.Context) ([]traversal.Link, error)
}

// Enricher opens a link's detail page and overlays its fields on top of
// the listing-card data.
type Enricher interface {
	Enrich(ctx context.Context, link traversal.Link) (extract.RawFields, error)
}

// JobStore performs the atomic dedup-then-insert for one draft.
type JobStore interface {
	Upsert(ctx context.Context, draft *models.JobDraft) (database.UpsertResult, error)
}

// SeenCache short-circuits links already processed by an earlier run.
type SeenCache interface {
	IsSeen(url string) bool
	Add(urls ...string)
}

// linkState tracks a link through its forward-only lifecycle. Failures at
// any stage jump straight to stateFailed.
type linkState int

const (
	statePending linkState = iota
	stateExtracted
	stateNormalized
	statePersisted
	stateDuplicate
	stateFailed
)

func (s linkState) String() string {
	switch s {
	case statePending:
		return "pending"
	case stateExtracted:
		return "extracted"
	case stateNormalized:
		return "normalized"
	case statePersisted:
		return "persisted"
	case stateDuplicate:
		return "duplicate"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the structured run summary. Success is false only for fatal
// setup failures (no browser, or zero links on the first listing page);
// per-link failures are counted and the run goes on.
type Result struct {
	Success    bool   `json:"success"`
	Scraped    int    `json:"scraped"`
	Saved      int    `json:"saved"`
	Duplicates int    `json:"duplicates"`
	Errors     int    `json:"errors"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}

type Pipeline struct {
	collector LinkCollector
	enricher  Enricher
	store     JobStore
	seen      SeenCache

	source           string
	runID            string
	jobLimit         int
	skillKeywords    []string
	preferredMarkers []string
	now              func() time.Time

	log zerolog.Logger
}

type Config struct {
	Source           string
	RunID            string
	JobLimit         int
	SkillKeywords    []string
	PreferredMarkers []string
}

func New(collector LinkCollector, enricher Enricher, store JobStore, seen SeenCache, cfg Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		collector:        collector,
		enricher:         enricher,
		store:            store,
		seen:             seen,
		source:           cfg.Source,
		runID:            cfg.RunID,
		jobLimit:         cfg.JobLimit,
		skillKeywords:    cfg.SkillKeywords,
		preferredMarkers: cfg.PreferredMarkers,
		now:              time.Now,
		log:              log,
	}
}

// Run executes the full pipeline once. The stop condition (job limit or
// cancellation) is checked between links only, so a link that has started
// always reaches a terminal state.
func (p *Pipeline) Run(ctx context.Context) Result {
	var res Result

	links, err := p.collector.Collect(ctx)
	if err != nil {
		p.log.Error().Err(err).Msg("❌ Listing traversal failed")
		res.Error = err.Error()
		return res
	}
	p.log.Info().Int("links", len(links)).Msg("🔗 Traversal complete")

	processed := 0
	for _, link := range links {
		if ctx.Err() != nil {
			p.log.Warn().Msg("🛑 Run cancelled, stopping between links")
			break
		}
		if p.jobLimit > 0 && processed >= p.jobLimit {
			p.log.Info().Int("limit", p.jobLimit).Msg("🧮 Job limit reached")
			break
		}
		processed++

		state := p.processLink(ctx, link, &res)
		p.log.Debug().Str("url", link.URL).Stringer("state", state).Msg("Link reached terminal state")
	}

	res.Success = true
	res.Message = fmt.Sprintf("scraped %d, saved %d, duplicates %d, errors %d",
		res.Scraped, res.Saved, res.Duplicates, res.Errors)
	return res
}

// processLink carries one link from pending to a terminal state.
func (p *Pipeline) processLink(ctx context.Context, link traversal.Link, res *Result) linkState {
	if p.seen != nil && p.seen.IsSeen(link.URL) {
		res.Duplicates++
		p.log.Debug().Str("url", link.URL).Msg("♻️ Seen in an earlier run, skipping")
		return stateDuplicate
	}

	fields, err := p.enricher.Enrich(ctx, link)
	if err != nil {
		res.Errors++
		p.log.Warn().Err(err).Str("url", link.URL).Msg("⚠️ Detail page failed")
		return stateFailed
	}
	res.Scraped++

	draft := normalize.Draft(fields, normalize.DraftOptions{
		Now:              p.now(),
		Source:           p.source,
		RunID:            p.runID,
		SkillKeywords:    p.skillKeywords,
		PreferredMarkers: p.preferredMarkers,
	})

	result, err := p.store.Upsert(ctx, draft)
	if err != nil && result.Outcome != database.OutcomeFailed {
		result.Outcome = database.OutcomeFailed
		result.Reason = err.Error()
	}

	switch result.Outcome {
	case database.OutcomeCreated:
		res.Saved++
		if p.seen != nil {
			p.seen.Add(link.URL)
		}
		p.log.Info().Str("title", draft.Title).Str("company", draft.CompanyName).Msg("✅ Saved")
		return statePersisted
	case database.OutcomeDuplicate:
		res.Duplicates++
		if p.seen != nil {
			p.seen.Add(link.URL)
		}
		p.log.Debug().Str("title", draft.Title).Msg("♻️ Duplicate")
		return stateDuplicate
	default:
		res.Errors++
		p.log.Warn().Str("title", draft.Title).Str("reason", result.Reason).Msg("⚠️ Persistence failed")
		return stateFailed
	}
}
