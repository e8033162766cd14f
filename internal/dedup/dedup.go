package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type seenEntry struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

// SeenCache is a file-backed record of normalized posting URLs already
// processed by earlier runs. It lets a rerun skip known links before ever
// touching the database; Postgres stays the source of truth for
// duplicates.
type SeenCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
	log      zerolog.Logger
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewSeenCache creates or loads the cache under cacheDir. Entries older
// than thirty days are dropped on load; boards rarely keep postings up
// longer than that.
func NewSeenCache(cacheDir string, log zerolog.Logger) *SeenCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to create cache directory")
	}
	cache := &SeenCache{
		filePath: filepath.Join(cacheDir, "seen_jobs.json"),
		seen:     make(map[string]int64),
		log:      log,
	}
	cache.load()
	return cache
}

// IsSeen checks whether a normalized URL was processed by an earlier run.
func (sc *SeenCache) IsSeen(url string) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	_, exists := sc.seen[url]
	return exists
}

// Add marks URLs as seen and persists the cache when anything changed.
func (sc *SeenCache) Add(urls ...string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, url := range urls {
		if _, exists := sc.seen[url]; !exists {
			sc.seen[url] = now
			changed = true
		}
	}

	if changed {
		sc.save()
	}
}

func (sc *SeenCache) load() {
	data, err := os.ReadFile(sc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			sc.log.Warn().Err(err).Msg("⚠️ Failed to read seen cache")
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		sc.log.Warn().Err(err).Msg("⚠️ Failed to parse seen cache")
		return
	}

	cutoff := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			sc.seen[e.URL] = e.Timestamp
			loaded++
		}
	}
	sc.log.Info().Int("loaded", loaded).Int("expired", len(entries)-loaded).Msg("📋 Seen cache loaded")
}

func (sc *SeenCache) save() {
	entries := make([]seenEntry, 0, len(sc.seen))
	for url, ts := range sc.seen {
		entries = append(entries, seenEntry{URL: url, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		sc.log.Warn().Err(err).Msg("⚠️ Failed to marshal seen cache")
		return
	}
	if err := os.WriteFile(sc.filePath, data, 0644); err != nil {
		sc.log.Warn().Err(err).Msg("⚠️ Failed to write seen cache")
	}
}
