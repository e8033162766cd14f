package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// ScreenshotDebugger captures full-page screenshots of pages that blocked
// or failed, so selector drift on a remote board can be diagnosed after
// the run.
type ScreenshotDebugger struct {
	outputDir string
	log       zerolog.Logger
}

func NewScreenshotDebugger(log zerolog.Logger) *ScreenshotDebugger {
	dir := filepath.Join(".", "logs", "screenshots")
	os.MkdirAll(dir, 0755)
	return &ScreenshotDebugger{outputDir: dir, log: log}
}

func (s *ScreenshotDebugger) Capture(page playwright.Page, name string) error {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.png", name, timestamp))

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("⚠️ Failed to capture screenshot")
		return err
	}

	s.log.Debug().Str("path", path).Msg("📸 Screenshot saved")
	return nil
}
