package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// SessionConfig carries the browser identity for a run: viewport, locale,
// timezone and user agent all come from configuration, never hard-coded
// into the engine.
type SessionConfig struct {
	Headless       bool
	UserAgent      string
	Locale         string
	Timezone       string
	ViewportWidth  int
	ViewportHeight int
	Cookies        []playwright.OptionalCookie
}

// Manager owns the Playwright runtime and one Chromium instance for the
// lifetime of a run.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     SessionConfig
	log     zerolog.Logger
}

// NewManager launches Playwright and a Chromium browser. Failure here is a
// fatal setup error: without a browser there is no run.
func NewManager(ctx context.Context, cfg SessionConfig, log zerolog.Logger) (*Manager, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium: %w", err)
	}

	log.Info().Bool("headless", cfg.Headless).Msg("🚀 Browser launched")
	return &Manager{pw: pw, browser: b, cfg: cfg, log: log}, nil
}

// NewContext creates a browser context with the configured identity and
// any preloaded cookies.
func (m *Manager) NewContext() (playwright.BrowserContext, error) {
	opts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  m.cfg.ViewportWidth,
			Height: m.cfg.ViewportHeight,
		},
		Locale:     playwright.String(m.cfg.Locale),
		TimezoneId: playwright.String(m.cfg.Timezone),
	}
	if m.cfg.UserAgent != "" {
		opts.UserAgent = playwright.String(m.cfg.UserAgent)
	}

	browserCtx, err := m.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if len(m.cfg.Cookies) > 0 {
		if err := browserCtx.AddCookies(m.cfg.Cookies); err != nil {
			m.log.Warn().Err(err).Msg("⚠️ Could not preload cookies, continuing without")
		} else {
			m.log.Debug().Int("cookies", len(m.cfg.Cookies)).Msg("🍪 Cookies preloaded")
		}
	}

	return browserCtx, nil
}

func (m *Manager) Close() error {
	if m.browser != nil {
		if err := m.browser.Close(); err != nil {
			return err
		}
	}
	if m.pw != nil {
		return m.pw.Stop()
	}
	return nil
}
