package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		href string
		want string
	}{
		{
			name: "strips tracking query",
			base: "https://au.jora.com/j?q=&p=1",
			href: "https://au.jora.com/job/boilermaker-88421?from=serp&tk=abc123",
			want: "https://au.jora.com/job/boilermaker-88421",
		},
		{
			name: "resolves relative href",
			base: "https://www.careerone.com.au/jobs/in-australia?page=2",
			href: "/job/12345",
			want: "https://www.careerone.com.au/job/12345",
		},
		{
			name: "strips fragment and trailing slash",
			base: "https://example.com.au/list",
			href: "https://example.com.au/job/9/#apply",
			want: "https://example.com.au/job/9",
		},
		{
			name: "empty href",
			base: "https://example.com.au",
			href: "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.base, tt.href))
		})
	}
}
