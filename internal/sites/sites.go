// Site adapters are data, not code: each board contributes a Profile of
// selector cascades, a link-shape predicate and a pagination mode. The
// engine that consumes them is shared.

package sites

import (
	"fmt"
	"regexp"
	"sort"

	"go-jobharvest-automation/internal/extract"
)

type PaginationMode string

const (
	//PaginateURLParam increments a page parameter in the listing URL
	PaginateURLParam PaginationMode = "url_param"
	//PaginateNextControl clicks a "next" control
	PaginateNextControl PaginationMode = "next_control"
	//PaginateInfiniteScroll scrolls until no new cards appear
	PaginateInfiniteScroll PaginationMode = "infinite_scroll"
)

type Profile struct {
	Name string

	//ListingURL is a template with one %d verb for the page number
	ListingURL string

	//LinkShape accepts candidate detail-page URLs
	LinkShape *regexp.Regexp

	CardSelector string
	NextSelector string
	Pagination   PaginationMode

	Card   extract.FieldStrategies
	Detail extract.FieldStrategies
}

// PageURL renders the listing URL for a 1-based page number.
func (p *Profile) PageURL(page int) string {
	return fmt.Sprintf(p.ListingURL, page)
}

var registry = map[string]*Profile{}

func register(p *Profile) {
	registry[p.Name] = p
}

// Lookup returns the profile for a board name.
func Lookup(name string) (*Profile, error) {
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown site %q (available: %v)", name, Names())
	}
	return p, nil
}

// Names lists the registered boards, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
