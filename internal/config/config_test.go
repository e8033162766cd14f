package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
database_url: postgres://localhost/jobs
delay_min_ms: 500
skill_keywords:
  - Welding
  - Forklift
site_listing_urls:
  jora: https://au.jora.com/j?q=welder&p=%d
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/jobs", cfg.DatabaseURL)
	assert.Equal(t, 500, cfg.DelayMinMs)
	assert.Equal(t, 2500, cfg.DelayMaxMs, "default applied")
	assert.Equal(t, "en-AU", cfg.Locale)
	assert.Equal(t, "Australia/Sydney", cfg.Timezone)
	assert.Equal(t, []string{"Welding", "Forklift"}, cfg.SkillKeywords)
	assert.Contains(t, cfg.SiteListingURLs, "jora")
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: en-AU\n"), 0644))

	t.Setenv("DATABASE_URL", "")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database_url: postgres://file/db\n"), 0644))

	t.Setenv("DATABASE_URL", "postgres://env/db")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
}
