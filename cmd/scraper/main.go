package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"go-jobharvest-automation/internal/browser"
	"go-jobharvest-automation/internal/config"
	"go-jobharvest-automation/internal/database"
	"go-jobharvest-automation/internal/dedup"
	"go-jobharvest-automation/internal/pipeline"
	"go-jobharvest-automation/internal/reporter"
	"go-jobharvest-automation/internal/scraper"
	"go-jobharvest-automation/internal/sites"
	"go-jobharvest-automation/internal/writer"
)

var cli struct {
	Site      string `help:"Board profile to scrape." default:"jora"`
	JobLimit  int    `help:"Stop after this many jobs (0 = no limit)."`
	MaxPages  int    `help:"Listing page ceiling." default:"5"`
	StartPage int    `help:"1-based listing page to start from." default:"1"`
	Headless  bool   `help:"Run the browser headless." default:"true" negatable:""`
	Config    string `help:"Path to config.yaml." type:"path"`
	Verbose   bool   `help:"Enable debug logging."`
}

const (
	runTimeout   = 30 * time.Minute
	writeTimeout = 15 * time.Second
)

func main() {
	kong.Parse(&cli,
		kong.Name("jobharvest"),
		kong.Description("Scrapes job boards into a canonical Postgres store."),
	)

	runID := uuid.NewString()
	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Str("run_id", runID).Str("site", cli.Site).
		Logger()

	res := run(log, runID)

	printResult(res)
	saveReport(res, log)

	if !res.Success {
		os.Exit(1)
	}
}

func run(log zerolog.Logger, runID string) pipeline.Result {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fatal(log, nil, "", fmt.Errorf("config: %w", err))
	}

	profile, err := sites.Lookup(cli.Site)
	if err != nil {
		return fatal(log, nil, "", err)
	}
	if override, ok := cfg.SiteListingURLs[profile.Name]; ok {
		profile.ListingURL = override
	}

	rep, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ Telegram reporter unavailable, continuing without")
	} else if rep != nil {
		log.Info().Msg("🤖 Telegram reporter initialized")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	session := browser.SessionConfig{
		Headless:       cli.Headless,
		UserAgent:      cfg.UserAgent,
		Locale:         cfg.Locale,
		Timezone:       cfg.Timezone,
		ViewportWidth:  cfg.ViewportWidth,
		ViewportHeight: cfg.ViewportHeight,
	}
	cookiePath := filepath.Join(cfg.CookiesPath, "cookies-"+profile.Name+".json")
	if loaded, err := browser.LoadCookies(cookiePath); err == nil {
		log.Info().Int("cookies", len(loaded)).Msg("🍪 Cookies loaded")
		session.Cookies = loaded
	}

	mgr, err := browser.NewManager(ctx, session, log)
	if err != nil {
		return fatal(log, rep, cli.Site, fmt.Errorf("browser setup: %w", err))
	}
	defer mgr.Close()

	browserCtx, err := mgr.NewContext()
	if err != nil {
		return fatal(log, rep, cli.Site, fmt.Errorf("browser context: %w", err))
	}

	repo, err := database.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fatal(log, rep, cli.Site, fmt.Errorf("database: %w", err))
	}
	defer repo.Close()

	w := writer.New(repo, 8, writeTimeout, log)
	defer w.Close()

	siteScraper, err := scraper.New(browserCtx, profile, scraper.Options{
		MaxPages:  cli.MaxPages,
		StartPage: cli.StartPage,
		DelayMin:  cfg.DelayMinMs,
		DelayMax:  cfg.DelayMaxMs,
	}, log)
	if err != nil {
		return fatal(log, rep, cli.Site, err)
	}
	defer siteScraper.Close()

	seen := dedup.NewSeenCache(cfg.CachePath, log)

	p := pipeline.New(siteScraper, siteScraper, w, seen, pipeline.Config{
		Source:           profile.Name,
		RunID:            runID,
		JobLimit:         cli.JobLimit,
		SkillKeywords:    cfg.SkillKeywords,
		PreferredMarkers: cfg.PreferredMarkers,
	}, log)

	log.Info().Int("max_pages", cli.MaxPages).Int("job_limit", cli.JobLimit).Msg("🚀 Starting run")
	res := p.Run(ctx)
	log.Info().
		Int("scraped", res.Scraped).Int("saved", res.Saved).
		Int("duplicates", res.Duplicates).Int("errors", res.Errors).
		Msg("🏁 Run finished")

	if rep != nil {
		if err := rep.SendSummary(cli.Site, res); err != nil {
			log.Warn().Err(err).Msg("⚠️ Failed to send run summary")
		}
	}
	return res
}

// fatal turns a setup error into the failed run result. Nothing was
// scraped; the exit code will reflect it.
func fatal(log zerolog.Logger, rep *reporter.TelegramReporter, site string, err error) pipeline.Result {
	log.Error().Err(err).Msg("❌ Fatal setup error")
	res := pipeline.Result{Success: false, Error: err.Error()}
	if rep != nil {
		rep.SendSummary(site, res)
	}
	return res
}

func printResult(res pipeline.Result) {
	data, err := json.Marshal(res)
	if err != nil {
		fmt.Println(`{"success":false,"error":"could not marshal result"}`)
		return
	}
	fmt.Println(string(data))
}

// saveReport keeps a dated JSON copy of each run summary under logs/.
func saveReport(res pipeline.Result, log zerolog.Logger) {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to create logs directory")
		return
	}

	filename := fmt.Sprintf("run-%s-%s.json", cli.Site, time.Now().Format("2006-01-02_15-04-05"))
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to marshal run report")
		return
	}
	if err := os.WriteFile(filepath.Join(logDir, filename), data, 0644); err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to write run report")
		return
	}
	log.Info().Str("file", filename).Msg("📁 Run report saved")
}
