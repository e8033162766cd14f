package sites

import (
	"regexp"

	"go-jobharvest-automation/internal/extract"
)

func init() {
	register(joraProfile())
	register(careerOneProfile())
	register(gumtreeProfile())
}

// Each profile lists its cascades most-specific selector first; the first
// acceptable result wins, so ordering is the whole contract.

func joraProfile() *Profile {
	return &Profile{
		Name:         "jora",
		ListingURL:   "https://au.jora.com/j?q=&l=Australia&p=%d",
		LinkShape:    regexp.MustCompile(`/job/[a-z0-9-]+-\d+`),
		CardSelector: "div.job-card, article.result",
		Pagination:   PaginateURLParam,
		Card: extract.FieldStrategies{
			Title: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "h2.job-title a"},
				{Kind: extract.KindSelector, Selector: "h2 a"},
				{Kind: extract.KindSelector, Selector: "h2"},
			},
			Company: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "span.job-company"},
				{Kind: extract.KindSelector, Selector: ".company"},
			},
			Location: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "a.job-location"},
				{Kind: extract.KindSelector, Selector: ".location"},
			},
			Salary: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "div.job-salary"},
				{Kind: extract.KindPattern, Pattern: `\$[\d,]+(?:\.\d+)?(?:\s*k)?(?:\s*-\s*\$[\d,]+(?:\.\d+)?(?:\s*k)?)?[^.\n]{0,30}`},
			},
			PostedAgo: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "span.job-listed-date"},
				{Kind: extract.KindPattern, Pattern: `(?i)((?:\d+|an?)\s*(?:minute|hour|day|week|month)s?\s*ago|today|yesterday|just posted)`},
			},
			Link: []extract.Strategy{
				{Kind: extract.KindAttribute, Selector: "h2.job-title a", Attribute: "href"},
				{Kind: extract.KindAttribute, Selector: "a", Attribute: "href"},
			},
		},
		Detail: extract.FieldStrategies{
			Title: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "h1.job-title"},
				{Kind: extract.KindSelector, Selector: "h1"},
			},
			Company: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "span.company"},
			},
			Location: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "span.location"},
			},
			Salary: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: ".job-info .salary"},
				{Kind: extract.KindPattern, Pattern: `\$[\d,]+(?:\.\d+)?(?:\s*k)?(?:\s*-\s*\$[\d,]+(?:\.\d+)?(?:\s*k)?)?[^.\n]{0,30}`},
			},
			JobType: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: ".job-info .work-type"},
				{Kind: extract.KindPattern, Pattern: `(?i)\b(full[ -]?time|part[ -]?time|casual|contract|temporary|internship|freelance|permanent)\b`},
			},
			Description: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "#job-description-container"},
				{Kind: extract.KindSelector, Selector: ".job-description"},
			},
			PostedAgo: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: ".listed-date"},
				{Kind: extract.KindPattern, Pattern: `(?i)((?:\d+|an?)\s*(?:minute|hour|day|week|month)s?\s*ago|today|yesterday)`},
			},
		},
	}
}

func careerOneProfile() *Profile {
	return &Profile{
		Name:         "careerone",
		ListingURL:   "https://www.careerone.com.au/jobs/in-australia?page=%d",
		LinkShape:    regexp.MustCompile(`/jobs/in-[a-z-]+/|/job/\d+`),
		CardSelector: "[data-automation='job-card'], div.job-card",
		NextSelector: "a[aria-label='Next'], button.pagination-next",
		Pagination:   PaginateNextControl,
		Card: extract.FieldStrategies{
			Title: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='job-title']"},
				{Kind: extract.KindSelector, Selector: "h2 a"},
				{Kind: extract.KindSelector, Selector: "h3"},
			},
			Company: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='job-company']"},
				{Kind: extract.KindSelector, Selector: ".job-card__company"},
			},
			Location: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='job-location']"},
				{Kind: extract.KindSelector, Selector: ".job-card__location"},
			},
			Salary: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='job-salary']"},
				{Kind: extract.KindPattern, Pattern: `\$[\d,]+(?:\.\d+)?(?:\s*k)?(?:\s*-\s*\$[\d,]+(?:\.\d+)?(?:\s*k)?)?[^.\n]{0,30}`},
			},
			JobType: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='job-work-type']"},
			},
			PostedAgo: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='job-listed-date']"},
				{Kind: extract.KindPattern, Pattern: `(?i)((?:\d+|an?)\s*(?:minute|hour|day|week|month)s?\s*ago|today|yesterday)`},
			},
			Link: []extract.Strategy{
				{Kind: extract.KindAttribute, Selector: "a[data-automation='job-link']", Attribute: "href"},
				{Kind: extract.KindAttribute, Selector: "h2 a", Attribute: "href"},
				{Kind: extract.KindAttribute, Selector: "a", Attribute: "href"},
			},
		},
		Detail: extract.FieldStrategies{
			Title: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "h1[data-automation='job-title']"},
				{Kind: extract.KindSelector, Selector: "h1"},
			},
			Company: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='advertiser-name']"},
			},
			Location: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='job-detail-location']"},
			},
			Salary: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='job-detail-salary']"},
			},
			JobType: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='job-detail-work-type']"},
				{Kind: extract.KindPattern, Pattern: `(?i)\b(full[ -]?time|part[ -]?time|casual|contract|temporary|internship|freelance|permanent)\b`},
			},
			Description: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='jobAdDetails']"},
				{Kind: extract.KindSelector, Selector: ".job-description"},
			},
			PostedAgo: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "[data-automation='job-detail-date']"},
			},
		},
	}
}

func gumtreeProfile() *Profile {
	return &Profile{
		Name:         "gumtree",
		ListingURL:   "https://www.gumtree.com.au/s-jobs/page-%d/c9302",
		LinkShape:    regexp.MustCompile(`/s-ad/(?:[a-z0-9-]+/)+\d+`),
		CardSelector: "a.user-ad-row, div.user-ad-collection-new-design__wrapper a",
		Pagination:   PaginateInfiniteScroll,
		Card: extract.FieldStrategies{
			Title: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "span.user-ad-row-new-design__title-span"},
				{Kind: extract.KindSelector, Selector: ".user-ad-row__title"},
			},
			Location: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "div.user-ad-row-new-design__location"},
				{Kind: extract.KindSelector, Selector: ".user-ad-row__location"},
			},
			Salary: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "span.user-ad-price__price"},
			},
			PostedAgo: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "div.user-ad-row-new-design__age"},
			},
			Link: []extract.Strategy{
				{Kind: extract.KindAttribute, Selector: "", Attribute: "href"},
				{Kind: extract.KindAttribute, Selector: "a", Attribute: "href"},
			},
		},
		Detail: extract.FieldStrategies{
			Title: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "h1#ad-title"},
				{Kind: extract.KindSelector, Selector: "h1"},
			},
			Company: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "div.seller-profile__username"},
			},
			Location: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "a.ad-details__ad-attribute-value--location"},
				{Kind: extract.KindPattern, Pattern: `(?i)([A-Za-z ]+,\s*(?:NSW|VIC|QLD|SA|WA|TAS|ACT|NT))`},
			},
			Salary: []extract.Strategy{
				{Kind: extract.KindPattern, Pattern: `\$[\d,]+(?:\.\d+)?(?:\s*k)?(?:\s*-\s*\$[\d,]+(?:\.\d+)?(?:\s*k)?)?[^.\n]{0,30}`},
			},
			JobType: []extract.Strategy{
				{Kind: extract.KindPattern, Pattern: `(?i)\b(full[ -]?time|part[ -]?time|casual|contract|temporary)\b`},
			},
			Description: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "div#ad-description-details"},
				{Kind: extract.KindSelector, Selector: ".vip-ad-description"},
			},
			PostedAgo: []extract.Strategy{
				{Kind: extract.KindSelector, Selector: "div.ad-details__listed-date"},
			},
		},
	}
}
