package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	tests := []struct {
		raw  string
		want LocationInfo
	}{
		{"Parramatta, NSW", LocationInfo{City: "Parramatta", State: "New South Wales", Country: "Australia"}},
		{"Melbourne, VIC, Australia", LocationInfo{City: "Melbourne", State: "Victoria", Country: "Australia"}},
		{"Brisbane QLD", LocationInfo{City: "Brisbane", State: "Queensland", Country: "Australia"}},
		{"Sydney", LocationInfo{City: "Sydney", State: "New South Wales", Country: "Australia"}},
		{"NSW", LocationInfo{State: "New South Wales", Country: "Australia"}},
		{"Tasmania", LocationInfo{State: "Tasmania", Country: "Australia"}},
		{"Wagga Wagga, New South Wales", LocationInfo{City: "Wagga Wagga", State: "New South Wales", Country: "Australia"}},
		{"Byron Bay", LocationInfo{City: "Byron Bay", Country: "Australia"}},
		{"", LocationInfo{Country: "Australia"}},
		{"Australia", LocationInfo{Country: "Australia"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Location(tt.raw))
		})
	}
}
