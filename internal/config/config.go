// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultPath = "configs/config.yaml"

type Config struct {
	//Output store
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`

	//Optional run-summary notifications
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Browser identity
	UserAgent      string `yaml:"user_agent"`
	Locale         string `yaml:"locale"`
	Timezone       string `yaml:"timezone"`
	ViewportWidth  int    `yaml:"viewport_width"`
	ViewportHeight int    `yaml:"viewport_height"`

	//Human-like pacing bounds, milliseconds
	DelayMinMs int `yaml:"delay_min_ms"`
	DelayMaxMs int `yaml:"delay_max_ms"`

	//Paths
	CookiesPath string `yaml:"cookies_path"`
	CachePath   string `yaml:"cache_path"`

	//Per-site listing URL overrides (keyed by profile name)
	SiteListingURLs map[string]string `yaml:"site_listing_urls"`

	//Normalization keyword tables, injected as data
	SkillKeywords    []string `yaml:"skill_keywords"`
	PreferredMarkers []string `yaml:"preferred_markers"`
}

// Load reads the YAML config (path may be empty for the default), applies
// env overrides and fills defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = defaultPath
		if env := os.Getenv("JOBHARVEST_CONFIG"); env != "" {
			path = env
		}
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read config %s: %w", path, err)
		}
		//no file: env + defaults only
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	//Override with env vars
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseURL = dsn
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.Locale == "" {
		cfg.Locale = "en-AU"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Australia/Sydney"
	}
	if cfg.ViewportWidth == 0 {
		cfg.ViewportWidth = 1366
	}
	if cfg.ViewportHeight == 0 {
		cfg.ViewportHeight = 768
	}
	if cfg.DelayMinMs == 0 {
		cfg.DelayMinMs = 800
	}
	if cfg.DelayMaxMs == 0 {
		cfg.DelayMaxMs = 2500
	}
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}

	//Validate required fields
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.DelayMaxMs < cfg.DelayMinMs {
		return nil, fmt.Errorf("delay_max_ms must be >= delay_min_ms")
	}

	return cfg, nil
}
