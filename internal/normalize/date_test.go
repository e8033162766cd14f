package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

func TestPostedDateAbsolute(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"15/03/2026", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"5/3/2026", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"5 March 2026", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"12 Aug 2026", time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)},
		{"2026-08-01", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := PostedDate(tt.raw, now)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostedDateRelative(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"today", now},
		{"Just posted", now},
		{"yesterday", now.AddDate(0, 0, -1)},
		{"3 days ago", now.AddDate(0, 0, -3)},
		{"2 hours ago", now.Add(-2 * time.Hour)},
		{"an hour ago", now.Add(-time.Hour)},
		{"1 week ago", now.AddDate(0, 0, -7)},
		{"2 months ago", now.AddDate(0, -2, 0)},
		{"Posted 5 days ago", now.AddDate(0, 0, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := PostedDate(tt.raw, now)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostedDateNeverZero(t *testing.T) {
	for _, raw := range []string{"", "ongoing role", "ASAP", "apply before the weekend"} {
		got, ok := PostedDate(raw, now)
		assert.False(t, ok)
		assert.Equal(t, now, got, "unrecognized text resolves to now, never to a zero value")
	}
}
